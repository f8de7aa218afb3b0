package reservationController

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	. "rentall/internal/models"
)

type ScheduleRequest struct {
	LocationCode   string `json:"locationCode,omitempty"`
	VehicleClassID *int   `json:"vehicleClassId,omitempty"`
	DateFrom       string `json:"dateFrom"`
	DateTo         string `json:"dateTo"`
}

type ScheduleClassRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ScheduleLocationRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ScheduleCustomerRef struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ScheduleReservation struct {
	ID                int                 `json:"id"`
	ReservationNumber string              `json:"reservationNumber"`
	Customer          ScheduleCustomerRef `json:"customer"`
	DateOut           time.Time           `json:"dateOut"`
	DateDue           time.Time           `json:"dateDue"`
	ReservationStatus ReservationStatus   `json:"reservationStatus"`
	EstimatedTotal    decimal.Decimal     `json:"estimatedTotal"`
}

type ScheduleVehicle struct {
	ID           int                   `json:"id"`
	UnitNumber   string                `json:"unitNumber"`
	Make         string                `json:"make"`
	Model        string                `json:"model"`
	Year         int                   `json:"year"`
	Color        string                `json:"color"`
	VehicleClass ScheduleClassRef      `json:"vehicleClass"`
	Location     ScheduleLocationRef   `json:"location"`
	Reservations []ScheduleReservation `json:"reservations"`
}

type UnassignedReservation struct {
	ID                int                 `json:"id"`
	ReservationNumber string              `json:"reservationNumber"`
	Customer          ScheduleCustomerRef `json:"customer"`
	VehicleClass      ScheduleClassRef    `json:"vehicleClass"`
	LocationCodeOut   string              `json:"locationCodeOut"`
	LocationCodeDue   string              `json:"locationCodeDue"`
	DateOut           time.Time           `json:"dateOut"`
	DateDue           time.Time           `json:"dateDue"`
	ReservationStatus ReservationStatus   `json:"reservationStatus"`
}

type ScheduleResult struct {
	DateFrom               time.Time               `json:"dateFrom"`
	DateTo                 time.Time               `json:"dateTo"`
	Vehicles               []ScheduleVehicle       `json:"vehicles"`
	UnassignedReservations []UnassignedReservation `json:"unassignedReservations"`
}

// GetSchedule projects the fleet timeline for a window: each vehicle with the
// active reservations booked against it, plus the active reservations that
// still have no vehicle. Dates may be anywhere in time; dispatchers look
// backwards too.
func (c *ReservationController) GetSchedule(
	ctx context.Context,
	request *ScheduleRequest,
) (*ScheduleResult, error) {
	dateFrom, err := ParseDateTime(request.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: dateFrom: %s", ErrInvalidDateRange, err.Error())
	}
	dateTo, err := ParseDateTime(request.DateTo)
	if err != nil {
		return nil, fmt.Errorf("%w: dateTo: %s", ErrInvalidDateRange, err.Error())
	}
	if !dateTo.After(dateFrom) {
		return nil, fmt.Errorf("%w: dateTo must be after dateFrom", ErrInvalidDateRange)
	}

	vehicles, err := c.vehicleRepo.ListForSchedule(
		ctx, request.LocationCode, request.VehicleClassID, dateFrom, dateTo,
	)
	if err != nil {
		return nil, err
	}

	unassigned, err := c.reservationRepo.ListUnassigned(
		ctx, request.LocationCode, request.VehicleClassID, &dateFrom, &dateTo,
	)
	if err != nil {
		return nil, err
	}

	result := &ScheduleResult{
		DateFrom:               dateFrom,
		DateTo:                 dateTo,
		Vehicles:               make([]ScheduleVehicle, 0, len(vehicles)),
		UnassignedReservations: make([]UnassignedReservation, 0, len(unassigned)),
	}

	for _, vehicle := range vehicles {
		row := ScheduleVehicle{
			ID:           vehicle.ID,
			UnitNumber:   vehicle.UnitNumber,
			Make:         vehicle.Make,
			Model:        vehicle.Model,
			Year:         vehicle.Year,
			Color:        vehicle.Color,
			Reservations: make([]ScheduleReservation, 0, len(vehicle.Reservations)),
		}
		if vehicle.VehicleClass != nil {
			row.VehicleClass = ScheduleClassRef{ID: vehicle.VehicleClass.ID, Name: vehicle.VehicleClass.Name}
		}
		if vehicle.Location != nil {
			row.Location = ScheduleLocationRef{Code: vehicle.Location.Code, Name: vehicle.Location.Name}
		}

		for _, reservation := range vehicle.Reservations {
			entry := ScheduleReservation{
				ID:                reservation.ID,
				ReservationNumber: reservation.ReservationNumber,
				DateOut:           reservation.DateOut,
				DateDue:           reservation.DateDue,
				ReservationStatus: reservation.ReservationStatus,
				EstimatedTotal:    reservation.EstimatedTotal,
			}
			if reservation.Customer != nil {
				entry.Customer = ScheduleCustomerRef{
					FirstName: reservation.Customer.FirstName,
					LastName:  reservation.Customer.LastName,
				}
			}
			row.Reservations = append(row.Reservations, entry)
		}

		result.Vehicles = append(result.Vehicles, row)
	}

	for _, reservation := range unassigned {
		entry := UnassignedReservation{
			ID:                reservation.ID,
			ReservationNumber: reservation.ReservationNumber,
			LocationCodeOut:   reservation.LocationCodeOut,
			LocationCodeDue:   reservation.LocationCodeDue,
			DateOut:           reservation.DateOut,
			DateDue:           reservation.DateDue,
			ReservationStatus: reservation.ReservationStatus,
		}
		if reservation.Customer != nil {
			entry.Customer = ScheduleCustomerRef{
				FirstName: reservation.Customer.FirstName,
				LastName:  reservation.Customer.LastName,
			}
		}
		if reservation.VehicleClass != nil {
			entry.VehicleClass = ScheduleClassRef{
				ID:   reservation.VehicleClass.ID,
				Name: reservation.VehicleClass.Name,
			}
		}
		result.UnassignedReservations = append(result.UnassignedReservations, entry)
	}

	return result, nil
}
