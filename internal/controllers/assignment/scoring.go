package assignmentController

import (
	"time"

	. "rentall/internal/models"
	"rentall/internal/utils"
)

const baseScore = 100

// scoringRule inspects one factor of a candidate vehicle. A zero delta with a
// non-empty reason is valid: the factor still shows up in the explanation.
// An empty reason means the factor had nothing to say about this vehicle.
type scoringRule func(vehicle *Vehicle, reservation *Reservation, now time.Time) (delta int, reason string)

// Evaluated in declared order; the reason list keeps this order so the
// explanation reads the same for every vehicle.
var scoringRules = []scoringRule{
	dateConflictRule,
	vehicleAgeRule,
	mileageRule,
	bookingLoadRule,
}

// scoreVehicle ranks a candidate for a reservation window. Scores start at
// 100 and are floored at 0; a 0 means the vehicle should never be picked.
func scoreVehicle(vehicle *Vehicle, reservation *Reservation, now time.Time) (int, []string) {
	score := baseScore
	reasons := make([]string, 0, len(scoringRules))

	for _, rule := range scoringRules {
		delta, reason := rule(vehicle, reservation, now)
		score += delta
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	if score < 0 {
		score = 0
	}

	return score, reasons
}

// The conflict penalty dominates every possible bonus, so a conflicted
// vehicle can never outrank a conflict-free one that scores above zero.
func dateConflictRule(vehicle *Vehicle, reservation *Reservation, now time.Time) (int, string) {
	for _, other := range vehicle.Reservations {
		if other.ID == reservation.ID || !other.ReservationStatus.IsActive() {
			continue
		}
		if utils.RangesOverlap(other.DateOut, other.DateDue, reservation.DateOut, reservation.DateDue) {
			return -90, "has overlapping reservation"
		}
	}
	return 0, "no scheduling conflicts"
}

func vehicleAgeRule(vehicle *Vehicle, reservation *Reservation, now time.Time) (int, string) {
	switch age := now.Year() - vehicle.Year; {
	case age == 0:
		return 15, "brand new vehicle"
	case age == 1:
		return 10, "very new vehicle"
	case age > 5:
		return -10, "older vehicle"
	default:
		return 0, ""
	}
}

func mileageRule(vehicle *Vehicle, reservation *Reservation, now time.Time) (int, string) {
	switch {
	case vehicle.Mileage < 20_000:
		return 10, "low mileage"
	case vehicle.Mileage > 100_000:
		return -15, "high mileage"
	default:
		return 0, ""
	}
}

func bookingLoadRule(vehicle *Vehicle, reservation *Reservation, now time.Time) (int, string) {
	upcoming := 0
	for _, other := range vehicle.Reservations {
		if other.ID == reservation.ID || !other.ReservationStatus.IsActive() {
			continue
		}
		if !other.DateOut.Before(now) {
			upcoming++
		}
	}

	switch {
	case upcoming == 0:
		return 10, "no upcoming reservations"
	case upcoming >= 3:
		return -5, "vehicle heavily booked"
	default:
		return 0, ""
	}
}
