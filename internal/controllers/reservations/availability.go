package reservationController

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AvailabilityRequest struct {
	VehicleClassID  int    `json:"vehicleClassId"`
	LocationCodeOut string `json:"locationCodeOut"`
	LocationCodeDue string `json:"locationCodeDue"`
	DateOut         string `json:"dateOut"`
	DateDue         string `json:"dateDue"`
}

type AvailableVehicle struct {
	ID         int    `json:"id"`
	UnitNumber string `json:"unitNumber"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	Color      string `json:"color"`
}

type AvailabilityResult struct {
	VehicleClassID    int                `json:"vehicleClassId"`
	LocationCodeOut   string             `json:"locationCodeOut"`
	LocationCodeDue   string             `json:"locationCodeDue"`
	DateOut           time.Time          `json:"dateOut"`
	DateDue           time.Time          `json:"dateDue"`
	TotalVehicles     int                `json:"totalVehicles"`
	AvailableCount    int                `json:"availableCount"`
	OccupiedCount     int                `json:"occupiedCount"`
	AvailableVehicles []AvailableVehicle `json:"availableVehicles"`
}

// CheckAvailability counts how many vehicles of a class at the pickup
// location are free for the requested window. A vehicle is occupied when any
// of its active reservations overlaps the window.
func (c *ReservationController) CheckAvailability(
	ctx context.Context,
	request *AvailabilityRequest,
) (*AvailabilityResult, error) {
	dateOut, err := ParseDateTime(request.DateOut)
	if err != nil {
		return nil, fmt.Errorf("%w: dateOut: %s", ErrInvalidDateRange, err.Error())
	}
	dateDue, err := ParseDateTime(request.DateDue)
	if err != nil {
		return nil, fmt.Errorf("%w: dateDue: %s", ErrInvalidDateRange, err.Error())
	}
	if err := c.validateDates(dateOut, dateDue); err != nil {
		return nil, err
	}

	if _, err := c.classRepo.GetByID(ctx, request.VehicleClassID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: vehicle class %d", ErrNotFound, request.VehicleClassID)
		}
		return nil, err
	}

	vehicles, err := c.vehicleRepo.ListCandidatesOverlapping(
		ctx, request.VehicleClassID, request.LocationCodeOut, dateOut, dateDue,
	)
	if err != nil {
		return nil, err
	}

	result := &AvailabilityResult{
		VehicleClassID:    request.VehicleClassID,
		LocationCodeOut:   request.LocationCodeOut,
		LocationCodeDue:   request.LocationCodeDue,
		DateOut:           dateOut,
		DateDue:           dateDue,
		TotalVehicles:     len(vehicles),
		AvailableVehicles: []AvailableVehicle{},
	}

	for _, vehicle := range vehicles {
		if len(vehicle.Reservations) > 0 {
			result.OccupiedCount++
			continue
		}
		result.AvailableCount++
		result.AvailableVehicles = append(result.AvailableVehicles, AvailableVehicle{
			ID:         vehicle.ID,
			UnitNumber: vehicle.UnitNumber,
			Make:       vehicle.Make,
			Model:      vehicle.Model,
			Year:       vehicle.Year,
			Color:      vehicle.Color,
		})
	}

	return result, nil
}
