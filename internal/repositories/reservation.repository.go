package repositories

import (
	"context"
	"rentall/internal/database"
	. "rentall/internal/models"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ReservationListFilters narrows List; zero values mean "no filter".
type ReservationListFilters struct {
	CustomerID      *int
	VehicleClassID  *int
	VehicleID       *int
	LocationCodeOut string
	Statuses        []ReservationStatus
	DateOutFrom     *time.Time
	DateDueTo       *time.Time
}

type ReservationListOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// sortColumns whitelists sortable fields so request input never reaches
// the ORDER BY clause directly.
var sortColumns = map[string]string{
	"createdAt":         "created_at",
	"updatedAt":         "updated_at",
	"dateOut":           "date_out",
	"dateDue":           "date_due",
	"reservationNumber": "reservation_number",
	"reservationStatus": "reservation_status",
	"estimatedTotal":    "estimated_total",
}

type ReservationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reservation *Reservation) error
	GetByID(ctx context.Context, id int) (*Reservation, error)
	GetWithAudit(ctx context.Context, id int) (*Reservation, error)
	Update(ctx context.Context, tx *gorm.DB, id int, updates map[string]any) (*Reservation, error)
	List(ctx context.Context, filters ReservationListFilters, opts ReservationListOptions) ([]Reservation, int64, error)
	CountOverlapping(ctx context.Context, vehicleID int, dateOut, dateDue time.Time, excludeID int) (int64, error)
	ListUnassigned(ctx context.Context, locationCode string, vehicleClassID *int, from, to *time.Time) ([]Reservation, error)
	LastNumberForPrefix(ctx context.Context, prefix string) (string, error)
}

type reservationRepository struct {
	db  database.DB
	log logger.Logger
}

func NewReservationRepository(db database.DB) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: logger.New("reservationRepository"),
	}
}

func (r *reservationRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	reservation *Reservation,
) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(reservation).Error; err != nil {
		// Duplicated key is expected under concurrent number allocation and
		// handled by the caller, so it is not worth an error-level entry.
		if err == gorm.ErrDuplicatedKey {
			log.Warn(
				"duplicate reservation number",
				"reservationNumber", reservation.ReservationNumber,
			)
			return err
		}
		return log.Err("failed to create reservation", err,
			"reservationNumber", reservation.ReservationNumber)
	}

	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int) (*Reservation, error) {
	var reservation Reservation
	err := r.db.SQLWithContext(ctx).
		Preload("Customer").
		Preload("VehicleClass").
		Preload("Vehicle").
		Preload("PickupLocation").
		Preload("DropoffLocation").
		Preload("RateHead").
		First(&reservation, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, r.log.Function("GetByID").
			Err("failed to get reservation", err, "id", id)
	}

	return &reservation, nil
}

func (r *reservationRepository) GetWithAudit(ctx context.Context, id int) (*Reservation, error) {
	var reservation Reservation
	err := r.db.SQLWithContext(ctx).
		Preload("Customer").
		Preload("VehicleClass").
		Preload("Vehicle").
		Preload("PickupLocation").
		Preload("DropoffLocation").
		Preload("RateHead").
		Preload("AuditLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at DESC").Limit(10)
		}).
		First(&reservation, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, r.log.Function("GetWithAudit").
			Err("failed to get reservation with audit trail", err, "id", id)
	}

	return &reservation, nil
}

func (r *reservationRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	updates map[string]any,
) (*Reservation, error) {
	log := r.log.Function("Update")

	result := tx.WithContext(ctx).Model(&Reservation{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, log.Err("failed to update reservation", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var reservation Reservation
	err := tx.WithContext(ctx).
		Preload("Customer").
		Preload("VehicleClass").
		Preload("Vehicle").
		Preload("PickupLocation").
		Preload("DropoffLocation").
		Preload("RateHead").
		First(&reservation, "id = ?", id).Error
	if err != nil {
		return nil, log.Err("failed to reload reservation after update", err, "id", id)
	}

	return &reservation, nil
}

func (r *reservationRepository) List(
	ctx context.Context,
	filters ReservationListFilters,
	opts ReservationListOptions,
) ([]Reservation, int64, error) {
	log := r.log.Function("List")

	query := r.db.SQLWithContext(ctx).Model(&Reservation{})

	if filters.CustomerID != nil {
		query = query.Where("customer_id = ?", *filters.CustomerID)
	}
	if filters.VehicleClassID != nil {
		query = query.Where("vehicle_class_id = ?", *filters.VehicleClassID)
	}
	if filters.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filters.VehicleID)
	}
	if filters.LocationCodeOut != "" {
		query = query.Where("location_code_out = ?", filters.LocationCodeOut)
	}
	if len(filters.Statuses) > 0 {
		query = query.Where("reservation_status IN ?", filters.Statuses)
	}
	if filters.DateOutFrom != nil {
		query = query.Where("date_out >= ?", *filters.DateOutFrom)
	}
	if filters.DateDueTo != nil {
		query = query.Where("date_due <= ?", *filters.DateDueTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, log.Err("failed to count reservations", err)
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	column, ok := sortColumns[opts.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if opts.SortOrder == "asc" {
		direction = "ASC"
	}

	var reservations []Reservation
	err := query.
		Preload("Customer").
		Preload("VehicleClass").
		Preload("Vehicle").
		Preload("PickupLocation").
		Preload("DropoffLocation").
		Order(column + " " + direction).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, log.Err("failed to list reservations", err)
	}

	return reservations, total, nil
}

func (r *reservationRepository) CountOverlapping(
	ctx context.Context,
	vehicleID int,
	dateOut, dateDue time.Time,
	excludeID int,
) (int64, error) {
	log := r.log.Function("CountOverlapping")

	// Half-open overlap: [aOut, aDue) and [bOut, bDue) intersect iff
	// aOut < bDue AND bOut < aDue.
	query := r.db.SQLWithContext(ctx).Model(&Reservation{}).
		Where("vehicle_id = ?", vehicleID).
		Where("reservation_status IN ?", ActiveStatuses()).
		Where("date_out < ? AND date_due > ?", dateDue, dateOut)

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, log.Err("failed to count overlapping reservations", err,
			"vehicleID", vehicleID)
	}

	return count, nil
}

func (r *reservationRepository) ListUnassigned(
	ctx context.Context,
	locationCode string,
	vehicleClassID *int,
	from, to *time.Time,
) ([]Reservation, error) {
	log := r.log.Function("ListUnassigned")

	query := r.db.SQLWithContext(ctx).Model(&Reservation{}).
		Where("vehicle_id IS NULL").
		Where("reservation_status IN ?", []ReservationStatus{StatusQuote, StatusConfirmed})

	if locationCode != "" {
		query = query.Where("location_code_out = ?", locationCode)
	}
	if vehicleClassID != nil {
		query = query.Where("vehicle_class_id = ?", *vehicleClassID)
	}
	if from != nil && to != nil {
		query = query.Where("date_out < ? AND date_due > ?", *to, *from)
	}

	var reservations []Reservation
	err := query.
		Preload("Customer").
		Preload("VehicleClass").
		Preload("PickupLocation").
		Preload("DropoffLocation").
		Order("date_out ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, log.Err("failed to list unassigned reservations", err)
	}

	return reservations, nil
}

func (r *reservationRepository) LastNumberForPrefix(
	ctx context.Context,
	prefix string,
) (string, error) {
	log := r.log.Function("LastNumberForPrefix")

	var numbers []string
	err := r.db.SQLWithContext(ctx).Model(&Reservation{}).
		Where("reservation_number LIKE ?", prefix+"%").
		Order("reservation_number DESC").
		Limit(1).
		Pluck("reservation_number", &numbers).Error
	if err != nil {
		return "", log.Err("failed to find last reservation number", err, "prefix", prefix)
	}

	if len(numbers) == 0 {
		return "", nil
	}
	return numbers[0], nil
}
