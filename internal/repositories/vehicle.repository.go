package repositories

import (
	"context"
	"rentall/internal/database"
	. "rentall/internal/models"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type VehicleRepository interface {
	GetByID(ctx context.Context, id int) (*Vehicle, error)
	// ListCandidates returns AVAILABLE vehicles of a class at a location with
	// all their active reservations preloaded, for scoring.
	ListCandidates(ctx context.Context, vehicleClassID int, locationCode string) ([]Vehicle, error)
	// ListCandidatesOverlapping is like ListCandidates but preloads only the
	// active reservations overlapping the given window, for availability counts.
	ListCandidatesOverlapping(ctx context.Context, vehicleClassID int, locationCode string, dateOut, dateDue time.Time) ([]Vehicle, error)
	// ListForSchedule returns AVAILABLE vehicles (optionally filtered) ordered
	// by class name then unit number, with active reservations overlapping the
	// window preloaded newest-pickup-last.
	ListForSchedule(ctx context.Context, locationCode string, vehicleClassID *int, dateFrom, dateTo time.Time) ([]Vehicle, error)
	// ListForUtilization returns the whole fleet (optionally by location) with
	// CONFIRMED/CHECKED_OUT reservations overlapping the window preloaded.
	ListForUtilization(ctx context.Context, locationCode string, from, to time.Time) ([]Vehicle, error)
}

type vehicleRepository struct {
	db  database.DB
	log logger.Logger
}

func NewVehicleRepository(db database.DB) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: logger.New("vehicleRepository"),
	}
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int) (*Vehicle, error) {
	var vehicle Vehicle
	err := r.db.SQLWithContext(ctx).
		Preload("VehicleClass").
		First(&vehicle, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, r.log.Function("GetByID").Err("failed to get vehicle", err, "id", id)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) ListCandidates(
	ctx context.Context,
	vehicleClassID int,
	locationCode string,
) ([]Vehicle, error) {
	log := r.log.Function("ListCandidates")

	var vehicles []Vehicle
	err := r.candidateQuery(ctx, vehicleClassID, locationCode).
		Preload("Reservations", func(db *gorm.DB) *gorm.DB {
			return db.Where("reservation_status IN ?", ActiveStatuses())
		}).
		Find(&vehicles).Error
	if err != nil {
		return nil, log.Err("failed to list candidate vehicles", err,
			"vehicleClassID", vehicleClassID, "locationCode", locationCode)
	}

	return vehicles, nil
}

func (r *vehicleRepository) ListCandidatesOverlapping(
	ctx context.Context,
	vehicleClassID int,
	locationCode string,
	dateOut, dateDue time.Time,
) ([]Vehicle, error) {
	log := r.log.Function("ListCandidatesOverlapping")

	var vehicles []Vehicle
	err := r.candidateQuery(ctx, vehicleClassID, locationCode).
		Preload("Reservations", func(db *gorm.DB) *gorm.DB {
			return db.Where("reservation_status IN ?", ActiveStatuses()).
				Where("date_out < ? AND date_due > ?", dateDue, dateOut)
		}).
		Find(&vehicles).Error
	if err != nil {
		return nil, log.Err("failed to list vehicles with overlapping reservations", err,
			"vehicleClassID", vehicleClassID, "locationCode", locationCode)
	}

	return vehicles, nil
}

func (r *vehicleRepository) candidateQuery(
	ctx context.Context,
	vehicleClassID int,
	locationCode string,
) *gorm.DB {
	return r.db.SQLWithContext(ctx).Model(&Vehicle{}).
		Joins("JOIN locations ON locations.id = vehicles.location_id").
		Where("vehicles.vehicle_class_id = ?", vehicleClassID).
		Where("locations.code = ?", locationCode).
		Where("vehicles.status = ?", VehicleStatusAvailable)
}

func (r *vehicleRepository) ListForSchedule(
	ctx context.Context,
	locationCode string,
	vehicleClassID *int,
	dateFrom, dateTo time.Time,
) ([]Vehicle, error) {
	log := r.log.Function("ListForSchedule")

	query := r.db.SQLWithContext(ctx).Model(&Vehicle{}).
		Joins("JOIN vehicle_classes ON vehicle_classes.id = vehicles.vehicle_class_id").
		Where("vehicles.status = ?", VehicleStatusAvailable)

	if locationCode != "" {
		query = query.
			Joins("JOIN locations ON locations.id = vehicles.location_id").
			Where("locations.code = ?", locationCode)
	}
	if vehicleClassID != nil {
		query = query.Where("vehicles.vehicle_class_id = ?", *vehicleClassID)
	}

	var vehicles []Vehicle
	err := query.
		Preload("VehicleClass").
		Preload("Location").
		Preload("Reservations", func(db *gorm.DB) *gorm.DB {
			return db.Where("reservation_status IN ?", ActiveStatuses()).
				Where("date_out < ? AND date_due > ?", dateTo, dateFrom).
				Order("date_out ASC")
		}).
		Preload("Reservations.Customer").
		Preload("Reservations.VehicleClass").
		Order("vehicle_classes.name ASC, vehicles.unit_number ASC").
		Find(&vehicles).Error
	if err != nil {
		return nil, log.Err("failed to list vehicles for schedule", err,
			"locationCode", locationCode)
	}

	return vehicles, nil
}

func (r *vehicleRepository) ListForUtilization(
	ctx context.Context,
	locationCode string,
	from, to time.Time,
) ([]Vehicle, error) {
	log := r.log.Function("ListForUtilization")

	query := r.db.SQLWithContext(ctx).Model(&Vehicle{})
	if locationCode != "" {
		query = query.
			Joins("JOIN locations ON locations.id = vehicles.location_id").
			Where("locations.code = ?", locationCode)
	}

	var vehicles []Vehicle
	err := query.
		Preload("VehicleClass").
		Preload("Reservations", func(db *gorm.DB) *gorm.DB {
			return db.Where("reservation_status IN ?",
				[]ReservationStatus{StatusConfirmed, StatusCheckedOut}).
				Where("date_out < ? AND date_due > ?", to, from)
		}).
		Find(&vehicles).Error
	if err != nil {
		return nil, log.Err("failed to list vehicles for utilization", err,
			"locationCode", locationCode)
	}

	return vehicles, nil
}
