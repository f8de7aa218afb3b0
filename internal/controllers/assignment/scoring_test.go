package assignmentController

import (
	"testing"
	"time"

	. "rentall/internal/models"

	"github.com/stretchr/testify/assert"
)

var scoringNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func window(startDay, endDay int) (time.Time, time.Time) {
	return scoringNow.AddDate(0, 0, startDay), scoringNow.AddDate(0, 0, endDay)
}

func targetReservation() *Reservation {
	dateOut, dateDue := window(5, 8)
	return &Reservation{
		BaseModel:         BaseModel{ID: 1},
		VehicleClassID:    1,
		LocationCodeOut:   "LAX",
		DateOut:           dateOut,
		DateDue:           dateDue,
		ReservationStatus: StatusConfirmed,
	}
}

func bookedVehicle(id, year, mileage int, bookings ...[2]int) Vehicle {
	vehicle := Vehicle{
		BaseModel:      BaseModel{ID: id},
		Year:           year,
		Mileage:        mileage,
		VehicleClassID: 1,
	}
	for i, booking := range bookings {
		dateOut, dateDue := window(booking[0], booking[1])
		vehicle.Reservations = append(vehicle.Reservations, Reservation{
			BaseModel:         BaseModel{ID: 100 + id*10 + i},
			DateOut:           dateOut,
			DateDue:           dateDue,
			ReservationStatus: StatusConfirmed,
		})
	}
	return vehicle
}

func TestScoreVehicle(t *testing.T) {
	reservation := targetReservation()

	tests := []struct {
		name        string
		vehicle     Vehicle
		wantScore   int
		wantReasons []string
	}{
		{
			name:      "current year, low mileage, idle",
			vehicle:   bookedVehicle(1, 2025, 8_000),
			wantScore: 135,
			wantReasons: []string{
				"no scheduling conflicts",
				"brand new vehicle",
				"low mileage",
				"no upcoming reservations",
			},
		},
		{
			name:      "next model year gets no age bonus",
			vehicle:   bookedVehicle(7, 2026, 40_000),
			wantScore: 110,
			wantReasons: []string{
				"no scheduling conflicts",
				"no upcoming reservations",
			},
		},
		{
			name:      "one year old, idle",
			vehicle:   bookedVehicle(2, 2024, 30_000),
			wantScore: 120,
			wantReasons: []string{
				"no scheduling conflicts",
				"very new vehicle",
				"no upcoming reservations",
			},
		},
		{
			name:      "old high mileage, idle",
			vehicle:   bookedVehicle(3, 2018, 140_000),
			wantScore: 85,
			wantReasons: []string{
				"no scheduling conflicts",
				"older vehicle",
				"high mileage",
				"no upcoming reservations",
			},
		},
		{
			name:      "conflicting booking",
			vehicle:   bookedVehicle(4, 2023, 40_000, [2]int{6, 9}),
			wantScore: 10,
			wantReasons: []string{
				"has overlapping reservation",
			},
		},
		{
			name:      "conflict on an old worn vehicle floors at zero",
			vehicle:   bookedVehicle(5, 2017, 150_000, [2]int{6, 9}),
			wantScore: 0,
			wantReasons: []string{
				"has overlapping reservation",
				"older vehicle",
				"high mileage",
			},
		},
		{
			name: "heavily booked but conflict-free",
			vehicle: bookedVehicle(6, 2023, 40_000,
				[2]int{10, 12}, [2]int{14, 16}, [2]int{20, 22}),
			wantScore: 95,
			wantReasons: []string{
				"no scheduling conflicts",
				"vehicle heavily booked",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reasons := scoreVehicle(&tt.vehicle, reservation, scoringNow)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantReasons, reasons)
		})
	}
}

func TestScoreVehicleIgnoresOwnAndInactiveReservations(t *testing.T) {
	reservation := targetReservation()

	vehicle := bookedVehicle(1, 2023, 40_000)
	dateOut, dateDue := window(5, 8)
	vehicle.Reservations = []Reservation{
		// The reservation being scored, already attached to this vehicle.
		{BaseModel: BaseModel{ID: reservation.ID}, DateOut: dateOut, DateDue: dateDue,
			ReservationStatus: StatusConfirmed},
		// Cancelled bookings do not occupy the vehicle.
		{BaseModel: BaseModel{ID: 900}, DateOut: dateOut, DateDue: dateDue,
			ReservationStatus: StatusCancelled},
	}

	score, reasons := scoreVehicle(&vehicle, reservation, scoringNow)
	assert.Equal(t, 110, score)
	assert.Contains(t, reasons, "no scheduling conflicts")
	assert.Contains(t, reasons, "no upcoming reservations")
}

// A conflicted vehicle can collect at most 100-90+15+10 = 35 points, so it
// can never outrank a conflict-free vehicle that still scores above zero.
func TestConflictedVehicleNeverBeatsConflictFree(t *testing.T) {
	reservation := targetReservation()

	bestConflicted := bookedVehicle(1, 2025, 5_000, [2]int{6, 9})
	worstFree := bookedVehicle(2, 2010, 200_000,
		[2]int{10, 12}, [2]int{14, 16}, [2]int{20, 22})

	conflictedScore, _ := scoreVehicle(&bestConflicted, reservation, scoringNow)
	freeScore, _ := scoreVehicle(&worstFree, reservation, scoringNow)

	assert.Greater(t, freeScore, 0)
	assert.Greater(t, freeScore, conflictedScore)
}
