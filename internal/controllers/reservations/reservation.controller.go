package reservationController

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	. "rentall/internal/models"
	"rentall/internal/repositories"
	"rentall/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// Pickups slightly in the past are tolerated so a reservation entered at
	// the counter is not rejected mid-handover.
	pastDateGracePeriod = time.Hour

	// Attempts to insert with a freshly allocated number before giving up.
	// Collisions only happen when two creates race the same sequence value.
	maxNumberAttempts = 3

	defaultActor = "system"
)

// Failure kinds surfaced by the reservation engine. Handlers map these to
// response codes with errors.Is; messages carry the offending entity.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrPastDate          = errors.New("pickup date is in the past")
	ErrTerminalState     = errors.New("reservation state forbids this operation")
	ErrClassMismatch     = errors.New("vehicle class mismatch")
	ErrNoVehicleAssigned = errors.New("no vehicle assigned")
)

type CreateReservationRequest struct {
	CustomerID      int    `json:"customerId"`
	VehicleClassID  int    `json:"vehicleClassId"`
	LocationCodeOut string `json:"locationCodeOut"`
	LocationCodeDue string `json:"locationCodeDue"`
	DateOut         string `json:"dateOut"`
	DateDue         string `json:"dateDue"`
	RateCode        string `json:"rateCode"`
	EstimatedMiles  *int   `json:"estimatedMiles,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CustomerNotes   string `json:"customerNotes,omitempty"`
	CreatedBy       string `json:"createdBy,omitempty"`
}

type UpdateReservationRequest struct {
	DateOut           *string            `json:"dateOut,omitempty"`
	DateDue           *string            `json:"dateDue,omitempty"`
	LocationCodeOut   *string            `json:"locationCodeOut,omitempty"`
	LocationCodeDue   *string            `json:"locationCodeDue,omitempty"`
	VehicleClassID    *int               `json:"vehicleClassId,omitempty"`
	RateCode          *string            `json:"rateCode,omitempty"`
	EstimatedMiles    *int               `json:"estimatedMiles,omitempty"`
	Notes             *string            `json:"notes,omitempty"`
	CustomerNotes     *string            `json:"customerNotes,omitempty"`
	ReservationStatus *ReservationStatus `json:"reservationStatus,omitempty"`
	ModifiedBy        string             `json:"modifiedBy,omitempty"`
}

type ListReservationsRequest struct {
	CustomerID      *int
	VehicleClassID  *int
	VehicleID       *int
	LocationCodeOut string
	Statuses        []ReservationStatus
	DateFrom        string
	DateTo          string
	Page            int
	Limit           int
	SortBy          string
	SortOrder       string
}

type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type ListReservationsResult struct {
	Data []Reservation `json:"data"`
	Meta ListMeta      `json:"meta"`
}

type AssignVehicleResult struct {
	Reservation             *Reservation `json:"reservation"`
	OverbookingWarning      bool         `json:"overbookingWarning"`
	OverlappingReservations int          `json:"overlappingReservations"`
}

// NumberAllocator yields the next reservation number.
type NumberAllocator interface {
	Next(ctx context.Context) (string, error)
}

// TxExecutor runs a function inside a database transaction.
type TxExecutor interface {
	Execute(ctx context.Context, fn func(context.Context, *gorm.DB) error) error
}

type ReservationControllerInterface interface {
	Create(ctx context.Context, request *CreateReservationRequest) (*Reservation, error)
	Get(ctx context.Context, id int) (*Reservation, error)
	List(ctx context.Context, request *ListReservationsRequest) (*ListReservationsResult, error)
	Update(ctx context.Context, id int, request *UpdateReservationRequest) (*Reservation, error)
	Cancel(ctx context.Context, id int, cancelledBy string) (*Reservation, error)
	AssignVehicle(ctx context.Context, id, vehicleID int, assignedBy string) (*AssignVehicleResult, error)
	UnassignVehicle(ctx context.Context, id int, unassignedBy string) (*Reservation, error)
	CheckAvailability(ctx context.Context, request *AvailabilityRequest) (*AvailabilityResult, error)
	GetSchedule(ctx context.Context, request *ScheduleRequest) (*ScheduleResult, error)
}

type ReservationController struct {
	reservationRepo repositories.ReservationRepository
	vehicleRepo     repositories.VehicleRepository
	customerRepo    repositories.CustomerRepository
	locationRepo    repositories.LocationRepository
	rateRepo        repositories.RateHeadRepository
	classRepo       repositories.VehicleClassRepository
	auditRepo       repositories.AuditLogRepository
	numbers         NumberAllocator
	tx              TxExecutor
	now             func() time.Time
}

func New(repos repositories.Repository, svc services.Service) ReservationControllerInterface {
	return &ReservationController{
		reservationRepo: repos.Reservation,
		vehicleRepo:     repos.Vehicle,
		customerRepo:    repos.Customer,
		locationRepo:    repos.Location,
		rateRepo:        repos.RateHead,
		classRepo:       repos.VehicleClass,
		auditRepo:       repos.AuditLog,
		numbers:         svc.ReservationNumber,
		tx:              svc.Transaction,
		now:             time.Now,
	}
}

// ParseDateTime parses the RFC3339 timestamps exchanged at the API boundary.
func ParseDateTime(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, errors.New("datetime is required")
	}

	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Time{}, errors.New("invalid datetime format, expected RFC3339")
	}

	return t, nil
}

func (c *ReservationController) validateDates(dateOut, dateDue time.Time) error {
	if !dateDue.After(dateOut) {
		return fmt.Errorf("%w: return date must be after pickup date", ErrInvalidDateRange)
	}

	if dateOut.Before(c.now().Add(-pastDateGracePeriod)) {
		return fmt.Errorf("%w: cannot create reservations in the past", ErrPastDate)
	}

	return nil
}

// audit writes the mandatory trail entry for a mutation. Every mutating path
// in this controller ends here; none writes its own entry inline.
func (c *ReservationController) audit(
	ctx context.Context,
	tx *gorm.DB,
	reservationID int,
	action AuditAction,
	oldValues, newValues any,
	changedBy string,
) error {
	entry := &ReservationAuditLog{
		ReservationID: reservationID,
		Action:        action,
		ChangedBy:     changedBy,
	}

	newJSON, err := json.Marshal(newValues)
	if err != nil {
		return fmt.Errorf("failed to marshal audit new values: %w", err)
	}
	entry.NewValues = datatypes.JSON(newJSON)

	if oldValues != nil {
		oldJSON, err := json.Marshal(oldValues)
		if err != nil {
			return fmt.Errorf("failed to marshal audit old values: %w", err)
		}
		entry.OldValues = datatypes.JSON(oldJSON)
	}

	return c.auditRepo.Create(ctx, tx, entry)
}

func (c *ReservationController) Create(
	ctx context.Context,
	request *CreateReservationRequest,
) (*Reservation, error) {
	log := logger.New("reservationController").Function("Create")

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

	if _, err := c.customerRepo.GetByID(ctx, request.CustomerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, request.CustomerID)
		}
		return nil, err
	}

	class, err := c.classRepo.GetByID(ctx, request.VehicleClassID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: vehicle class %d", ErrNotFound, request.VehicleClassID)
		}
		return nil, err
	}

	for _, code := range []string{request.LocationCodeOut, request.LocationCodeDue} {
		if _, err := c.locationRepo.GetByCode(ctx, code); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: location %s", ErrNotFound, code)
			}
			return nil, err
		}
	}

	if _, err := c.rateRepo.GetByCode(ctx, request.RateCode); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: rate code %s", ErrNotFound, request.RateCode)
		}
		return nil, err
	}

	estimatedDays := estimateDays(dateOut, dateDue)
	estimatedTotal := estimateTotal(class, request.RateCode, estimatedDays, request.EstimatedMiles)

	createdBy := request.CreatedBy
	if createdBy == "" {
		createdBy = defaultActor
	}

	number, err := c.numbers.Next(ctx)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		reservation := &Reservation{
			ReservationNumber: number,
			CustomerID:        request.CustomerID,
			VehicleClassID:    request.VehicleClassID,
			LocationCodeOut:   request.LocationCodeOut,
			LocationCodeDue:   request.LocationCodeDue,
			DateOut:           dateOut,
			DateDue:           dateDue,
			RateCode:          request.RateCode,
			EstimatedDays:     estimatedDays,
			EstimatedTotal:    estimatedTotal,
			EstimatedMiles:    request.EstimatedMiles,
			Notes:             request.Notes,
			CustomerNotes:     request.CustomerNotes,
			ReservationStatus: StatusQuote,
			CreatedBy:         createdBy,
			ModifiedBy:        createdBy,
		}

		err = c.tx.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
			if err := c.reservationRepo.Create(ctx, tx, reservation); err != nil {
				return err
			}
			return c.audit(ctx, tx, reservation.ID, AuditCreated, nil, reservation, createdBy)
		})
		if err == nil {
			log.Info("Reservation created",
				"reservationID", reservation.ID,
				"reservationNumber", reservation.ReservationNumber,
				"estimatedTotal", reservation.EstimatedTotal,
			)
			return reservation, nil
		}

		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}

		number, err = c.numbers.Next(ctx)
		if err != nil {
			return nil, err
		}
	}

	return nil, log.Err("failed to allocate a unique reservation number", err,
		"attempts", maxNumberAttempts)
}

func (c *ReservationController) Get(ctx context.Context, id int) (*Reservation, error) {
	reservation, err := c.reservationRepo.GetWithAudit(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: reservation %d", ErrNotFound, id)
		}
		return nil, err
	}

	return reservation, nil
}

func (c *ReservationController) List(
	ctx context.Context,
	request *ListReservationsRequest,
) (*ListReservationsResult, error) {
	filters := repositories.ReservationListFilters{
		CustomerID:      request.CustomerID,
		VehicleClassID:  request.VehicleClassID,
		VehicleID:       request.VehicleID,
		LocationCodeOut: request.LocationCodeOut,
		Statuses:        request.Statuses,
	}

	if request.DateFrom != "" {
		from, err := ParseDateTime(request.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: dateFrom: %s", ErrInvalidDateRange, err.Error())
		}
		filters.DateOutFrom = &from
	}
	if request.DateTo != "" {
		to, err := ParseDateTime(request.DateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: dateTo: %s", ErrInvalidDateRange, err.Error())
		}
		filters.DateDueTo = &to
	}

	page := request.Page
	if page < 1 {
		page = 1
	}
	limit := request.Limit
	if limit < 1 {
		limit = repositories.DefaultPageSize
	}
	if limit > repositories.MaxPageSize {
		limit = repositories.MaxPageSize
	}

	reservations, total, err := c.reservationRepo.List(ctx, filters, repositories.ReservationListOptions{
		Page:      page,
		Limit:     limit,
		SortBy:    request.SortBy,
		SortOrder: request.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ListReservationsResult{
		Data: reservations,
		Meta: ListMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}, nil
}

func (c *ReservationController) Update(
	ctx context.Context,
	id int,
	request *UpdateReservationRequest,
) (*Reservation, error) {
	log := logger.New("reservationController").Function("Update")

	existing, err := c.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: reservation %d", ErrNotFound, id)
		}
		return nil, err
	}

	if existing.ReservationStatus.IsTerminal() {
		return nil, fmt.Errorf("%w: cannot modify %s reservation",
			ErrTerminalState, strings.ToLower(string(existing.ReservationStatus)))
	}

	effectiveDateOut := existing.DateOut
	effectiveDateDue := existing.DateDue
	if request.DateOut != nil {
		effectiveDateOut, err = ParseDateTime(*request.DateOut)
		if err != nil {
			return nil, fmt.Errorf("%w: dateOut: %s", ErrInvalidDateRange, err.Error())
		}
	}
	if request.DateDue != nil {
		effectiveDateDue, err = ParseDateTime(*request.DateDue)
		if err != nil {
			return nil, fmt.Errorf("%w: dateDue: %s", ErrInvalidDateRange, err.Error())
		}
	}

	if request.DateOut != nil || request.DateDue != nil {
		if err := c.validateDates(effectiveDateOut, effectiveDateDue); err != nil {
			return nil, err
		}
	}

	if request.ReservationStatus != nil &&
		!existing.ReservationStatus.CanTransitionTo(*request.ReservationStatus) {
		return nil, fmt.Errorf("%w: cannot change %s reservation to %s",
			ErrTerminalState, strings.ToLower(string(existing.ReservationStatus)),
			strings.ToLower(string(*request.ReservationStatus)))
	}

	modifiedBy := request.ModifiedBy
	if modifiedBy == "" {
		modifiedBy = defaultActor
	}

	updates := map[string]any{"modified_by": modifiedBy}

	if request.DateOut != nil {
		updates["date_out"] = effectiveDateOut
	}
	if request.DateDue != nil {
		updates["date_due"] = effectiveDateDue
	}
	if request.LocationCodeOut != nil {
		if _, err := c.locationRepo.GetByCode(ctx, *request.LocationCodeOut); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: location %s", ErrNotFound, *request.LocationCodeOut)
			}
			return nil, err
		}
		updates["location_code_out"] = *request.LocationCodeOut
	}
	if request.LocationCodeDue != nil {
		if _, err := c.locationRepo.GetByCode(ctx, *request.LocationCodeDue); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: location %s", ErrNotFound, *request.LocationCodeDue)
			}
			return nil, err
		}
		updates["location_code_due"] = *request.LocationCodeDue
	}
	if request.VehicleClassID != nil {
		updates["vehicle_class_id"] = *request.VehicleClassID
	}
	if request.RateCode != nil {
		if _, err := c.rateRepo.GetByCode(ctx, *request.RateCode); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: rate code %s", ErrNotFound, *request.RateCode)
			}
			return nil, err
		}
		updates["rate_code"] = *request.RateCode
	}
	if request.EstimatedMiles != nil {
		updates["estimated_miles"] = *request.EstimatedMiles
	}
	if request.Notes != nil {
		updates["notes"] = *request.Notes
	}
	if request.CustomerNotes != nil {
		updates["customer_notes"] = *request.CustomerNotes
	}
	if request.ReservationStatus != nil {
		updates["reservation_status"] = *request.ReservationStatus
	}

	// Estimates stay consistent with whatever inputs the patch touched.
	if request.DateOut != nil || request.DateDue != nil || request.VehicleClassID != nil ||
		request.RateCode != nil || request.EstimatedMiles != nil {
		effectiveClassID := existing.VehicleClassID
		if request.VehicleClassID != nil {
			effectiveClassID = *request.VehicleClassID
		}
		class, err := c.classRepo.GetByID(ctx, effectiveClassID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: vehicle class %d", ErrNotFound, effectiveClassID)
			}
			return nil, err
		}

		effectiveRateCode := existing.RateCode
		if request.RateCode != nil {
			effectiveRateCode = *request.RateCode
		}
		effectiveMiles := existing.EstimatedMiles
		if request.EstimatedMiles != nil {
			effectiveMiles = request.EstimatedMiles
		}

		estimatedDays := estimateDays(effectiveDateOut, effectiveDateDue)
		updates["estimated_days"] = estimatedDays
		updates["estimated_total"] = estimateTotal(class, effectiveRateCode, estimatedDays, effectiveMiles)
	}

	action := AuditModified
	if request.ReservationStatus != nil {
		action = AuditStatusChanged
	}

	var updated *Reservation
	err = c.tx.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		updated, err = c.reservationRepo.Update(ctx, tx, id, updates)
		if err != nil {
			return err
		}
		return c.audit(ctx, tx, id, action, existing, updated, modifiedBy)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Reservation updated", "reservationID", id, "action", action)

	return updated, nil
}

func (c *ReservationController) Cancel(
	ctx context.Context,
	id int,
	cancelledBy string,
) (*Reservation, error) {
	log := logger.New("reservationController").Function("Cancel")

	existing, err := c.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: reservation %d", ErrNotFound, id)
		}
		return nil, err
	}

	if existing.ReservationStatus == StatusCancelled {
		return nil, fmt.Errorf("%w: reservation is already cancelled", ErrTerminalState)
	}
	if !existing.ReservationStatus.CanTransitionTo(StatusCancelled) {
		return nil, fmt.Errorf("%w: cannot cancel %s reservation",
			ErrTerminalState, strings.ToLower(string(existing.ReservationStatus)))
	}

	if cancelledBy == "" {
		cancelledBy = defaultActor
	}

	updates := map[string]any{
		"reservation_status": StatusCancelled,
		"vehicle_id":         nil, // cancellation releases any assigned vehicle
		"modified_by":        cancelledBy,
	}

	var updated *Reservation
	err = c.tx.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		updated, err = c.reservationRepo.Update(ctx, tx, id, updates)
		if err != nil {
			return err
		}
		return c.audit(ctx, tx, id, AuditCancelled, existing, updated, cancelledBy)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Reservation cancelled", "reservationID", id, "cancelledBy", cancelledBy)

	return updated, nil
}

func (c *ReservationController) AssignVehicle(
	ctx context.Context,
	id, vehicleID int,
	assignedBy string,
) (*AssignVehicleResult, error) {
	log := logger.New("reservationController").Function("AssignVehicle")

	existing, err := c.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: reservation %d", ErrNotFound, id)
		}
		return nil, err
	}

	if existing.ReservationStatus.IsTerminal() {
		return nil, fmt.Errorf("%w: cannot assign vehicle to %s reservation",
			ErrTerminalState, strings.ToLower(string(existing.ReservationStatus)))
	}

	vehicle, err := c.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: vehicle %d", ErrNotFound, vehicleID)
		}
		return nil, err
	}

	if vehicle.VehicleClassID != existing.VehicleClassID {
		expected, got := classNames(existing, vehicle)
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrClassMismatch, expected, got)
	}

	// Overlap with other active reservations on the same vehicle is advisory:
	// the desk can overbook deliberately, so it warns rather than blocks.
	overlapCount, err := c.reservationRepo.CountOverlapping(
		ctx, vehicleID, existing.DateOut, existing.DateDue, id,
	)
	if err != nil {
		return nil, err
	}

	if assignedBy == "" {
		assignedBy = defaultActor
	}

	updates := map[string]any{
		"vehicle_id":  vehicleID,
		"modified_by": assignedBy,
	}

	var updated *Reservation
	err = c.tx.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		updated, err = c.reservationRepo.Update(ctx, tx, id, updates)
		if err != nil {
			return err
		}
		return c.audit(ctx, tx, id, AuditVehicleAssigned, existing, updated, assignedBy)
	})
	if err != nil {
		return nil, err
	}

	if overlapCount > 0 {
		log.Warn("Vehicle assigned with overlapping reservations",
			"reservationID", id, "vehicleID", vehicleID, "overlaps", overlapCount)
	} else {
		log.Info("Vehicle assigned", "reservationID", id, "vehicleID", vehicleID)
	}

	return &AssignVehicleResult{
		Reservation:             updated,
		OverbookingWarning:      overlapCount > 0,
		OverlappingReservations: int(overlapCount),
	}, nil
}

func (c *ReservationController) UnassignVehicle(
	ctx context.Context,
	id int,
	unassignedBy string,
) (*Reservation, error) {
	log := logger.New("reservationController").Function("UnassignVehicle")

	existing, err := c.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: reservation %d", ErrNotFound, id)
		}
		return nil, err
	}

	if existing.ReservationStatus == StatusCheckedOut ||
		existing.ReservationStatus == StatusCompleted {
		return nil, fmt.Errorf("%w: cannot unassign vehicle from %s reservation",
			ErrTerminalState, strings.ToLower(string(existing.ReservationStatus)))
	}

	if existing.VehicleID == nil {
		return nil, fmt.Errorf("%w: reservation %d has no vehicle assigned",
			ErrNoVehicleAssigned, id)
	}

	if unassignedBy == "" {
		unassignedBy = defaultActor
	}

	updates := map[string]any{
		"vehicle_id":  nil,
		"modified_by": unassignedBy,
	}

	var updated *Reservation
	err = c.tx.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		updated, err = c.reservationRepo.Update(ctx, tx, id, updates)
		if err != nil {
			return err
		}
		return c.audit(ctx, tx, id, AuditVehicleUnassigned, existing, updated, unassignedBy)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Vehicle unassigned", "reservationID", id)

	return updated, nil
}

func classNames(reservation *Reservation, vehicle *Vehicle) (string, string) {
	expected := fmt.Sprintf("class %d", reservation.VehicleClassID)
	if reservation.VehicleClass != nil {
		expected = reservation.VehicleClass.Name
	}
	got := fmt.Sprintf("class %d", vehicle.VehicleClassID)
	if vehicle.VehicleClass != nil {
		got = vehicle.VehicleClass.Name
	}
	return expected, got
}
