package reservationController

import (
	"context"
	"testing"
	"time"

	. "rentall/internal/models"
	"rentall/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

// fakeTx runs the transaction body directly; fakes below do not need a real
// *gorm.DB.
type fakeTx struct{}

func (fakeTx) Execute(ctx context.Context, fn func(context.Context, *gorm.DB) error) error {
	return fn(ctx, nil)
}

type fakeNumbers struct {
	queue []string
	calls int
}

func (f *fakeNumbers) Next(ctx context.Context) (string, error) {
	f.calls++
	number := f.queue[0]
	if len(f.queue) > 1 {
		f.queue = f.queue[1:]
	}
	return number, nil
}

type fakeReservationRepo struct {
	repositories.ReservationRepository
	byID         map[int]*Reservation
	created      []*Reservation
	createErrs   []error
	lastUpdates  map[string]any
	overlapCount int64
	unassigned   []Reservation
	nextID       int
}

func (f *fakeReservationRepo) Create(ctx context.Context, tx *gorm.DB, reservation *Reservation) error {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	f.nextID++
	reservation.ID = f.nextID
	f.created = append(f.created, reservation)
	return nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int) (*Reservation, error) {
	reservation, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *reservation
	return &clone, nil
}

func (f *fakeReservationRepo) GetWithAudit(ctx context.Context, id int) (*Reservation, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeReservationRepo) Update(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	updates map[string]any,
) (*Reservation, error) {
	reservation, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	f.lastUpdates = updates

	clone := *reservation
	if v, ok := updates["reservation_status"]; ok {
		clone.ReservationStatus = v.(ReservationStatus)
	}
	if v, ok := updates["vehicle_id"]; ok {
		if v == nil {
			clone.VehicleID = nil
		} else {
			id := v.(int)
			clone.VehicleID = &id
		}
	}
	if v, ok := updates["estimated_days"]; ok {
		clone.EstimatedDays = v.(decimal.Decimal)
	}
	if v, ok := updates["estimated_total"]; ok {
		clone.EstimatedTotal = v.(decimal.Decimal)
	}
	if v, ok := updates["date_out"]; ok {
		clone.DateOut = v.(time.Time)
	}
	if v, ok := updates["date_due"]; ok {
		clone.DateDue = v.(time.Time)
	}
	if v, ok := updates["modified_by"]; ok {
		clone.ModifiedBy = v.(string)
	}
	f.byID[id] = &clone

	result := clone
	return &result, nil
}

func (f *fakeReservationRepo) CountOverlapping(
	ctx context.Context,
	vehicleID int,
	dateOut, dateDue time.Time,
	excludeID int,
) (int64, error) {
	return f.overlapCount, nil
}

func (f *fakeReservationRepo) ListUnassigned(
	ctx context.Context,
	locationCode string,
	vehicleClassID *int,
	from, to *time.Time,
) ([]Reservation, error) {
	return f.unassigned, nil
}

type fakeVehicleRepo struct {
	repositories.VehicleRepository
	byID       map[int]*Vehicle
	candidates []Vehicle
	scheduled  []Vehicle
}

func (f *fakeVehicleRepo) GetByID(ctx context.Context, id int) (*Vehicle, error) {
	vehicle, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return vehicle, nil
}

func (f *fakeVehicleRepo) ListCandidatesOverlapping(
	ctx context.Context,
	vehicleClassID int,
	locationCode string,
	dateOut, dateDue time.Time,
) ([]Vehicle, error) {
	return f.candidates, nil
}

func (f *fakeVehicleRepo) ListForSchedule(
	ctx context.Context,
	locationCode string,
	vehicleClassID *int,
	dateFrom, dateTo time.Time,
) ([]Vehicle, error) {
	return f.scheduled, nil
}

type fakeCustomerRepo struct {
	repositories.CustomerRepository
	byID map[int]*Customer
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id int) (*Customer, error) {
	customer, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return customer, nil
}

type fakeLocationRepo struct {
	repositories.LocationRepository
	byCode map[string]*Location
}

func (f *fakeLocationRepo) GetByCode(ctx context.Context, code string) (*Location, error) {
	location, ok := f.byCode[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return location, nil
}

type fakeRateRepo struct {
	repositories.RateHeadRepository
	byCode map[string]*RateHead
}

func (f *fakeRateRepo) GetByCode(ctx context.Context, code string) (*RateHead, error) {
	rate, ok := f.byCode[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rate, nil
}

type fakeClassRepo struct {
	repositories.VehicleClassRepository
	byID map[int]*VehicleClass
}

func (f *fakeClassRepo) GetByID(ctx context.Context, id int) (*VehicleClass, error) {
	class, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return class, nil
}

type fakeAuditRepo struct {
	repositories.AuditLogRepository
	entries []*ReservationAuditLog
}

func (f *fakeAuditRepo) Create(ctx context.Context, tx *gorm.DB, entry *ReservationAuditLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

type fixture struct {
	controller  *ReservationController
	reservation *fakeReservationRepo
	vehicle     *fakeVehicleRepo
	audit       *fakeAuditRepo
	numbers     *fakeNumbers
}

func newFixture() *fixture {
	economy := &VehicleClass{
		BaseModel:   BaseModel{ID: 1},
		Name:        "Economy",
		DailyRate:   decimal.RequireFromString("45.00"),
		MileageRate: decimal.RequireFromString("0.25"),
	}
	suv := &VehicleClass{
		BaseModel: BaseModel{ID: 2},
		Name:      "SUV",
		DailyRate: decimal.RequireFromString("85.00"),
	}

	f := &fixture{
		reservation: &fakeReservationRepo{byID: map[int]*Reservation{}},
		vehicle:     &fakeVehicleRepo{byID: map[int]*Vehicle{}},
		audit:       &fakeAuditRepo{},
		numbers:     &fakeNumbers{queue: []string{"RES-2025-00001"}},
	}

	f.controller = &ReservationController{
		reservationRepo: f.reservation,
		vehicleRepo:     f.vehicle,
		customerRepo: &fakeCustomerRepo{byID: map[int]*Customer{
			1: {BaseModel: BaseModel{ID: 1}, FirstName: "Ada", LastName: "Reyes"},
		}},
		locationRepo: &fakeLocationRepo{byCode: map[string]*Location{
			"LAX": {BaseModel: BaseModel{ID: 1}, Code: "LAX", Name: "Los Angeles Airport"},
			"SFO": {BaseModel: BaseModel{ID: 2}, Code: "SFO", Name: "San Francisco Airport"},
		}},
		rateRepo: &fakeRateRepo{byCode: map[string]*RateHead{
			"STANDARD": {Code: "STANDARD"},
			"WEEKEND":  {Code: "WEEKEND"},
		}},
		classRepo: &fakeClassRepo{byID: map[int]*VehicleClass{1: economy, 2: suv}},
		auditRepo: f.audit,
		numbers:   f.numbers,
		tx:        fakeTx{},
		now:       func() time.Time { return testNow },
	}

	return f
}

func createRequest() *CreateReservationRequest {
	return &CreateReservationRequest{
		CustomerID:      1,
		VehicleClassID:  1,
		LocationCodeOut: "LAX",
		LocationCodeDue: "LAX",
		DateOut:         testNow.AddDate(0, 0, 5).Format(time.RFC3339),
		DateDue:         testNow.AddDate(0, 0, 8).Format(time.RFC3339),
		RateCode:        "STANDARD",
		CreatedBy:       "agent.smith",
	}
}

func TestCreateReservation(t *testing.T) {
	f := newFixture()

	reservation, err := f.controller.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, "RES-2025-00001", reservation.ReservationNumber)
	assert.Equal(t, StatusQuote, reservation.ReservationStatus)
	assert.Equal(t, "agent.smith", reservation.CreatedBy)
	assert.True(t, reservation.EstimatedDays.Equal(decimal.RequireFromString("3.00")),
		"days = %s", reservation.EstimatedDays)
	assert.True(t, reservation.EstimatedTotal.Equal(decimal.RequireFromString("135.00")),
		"total = %s", reservation.EstimatedTotal)

	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, AuditCreated, f.audit.entries[0].Action)
	assert.Equal(t, "agent.smith", f.audit.entries[0].ChangedBy)
	assert.Nil(t, f.audit.entries[0].OldValues)
}

func TestCreateReservationWeekendRate(t *testing.T) {
	f := newFixture()

	request := createRequest()
	request.RateCode = "WEEKEND"

	reservation, err := f.controller.Create(context.Background(), request)
	require.NoError(t, err)

	assert.True(t, reservation.EstimatedTotal.Equal(decimal.RequireFromString("121.50")),
		"total = %s", reservation.EstimatedTotal)
}

func TestCreateReservationWithMileage(t *testing.T) {
	f := newFixture()

	miles := 200
	request := createRequest()
	request.EstimatedMiles = &miles

	reservation, err := f.controller.Create(context.Background(), request)
	require.NoError(t, err)

	// 3 days * 45.00 + 200 miles * 0.25
	assert.True(t, reservation.EstimatedTotal.Equal(decimal.RequireFromString("185.00")),
		"total = %s", reservation.EstimatedTotal)
}

func TestCreateReservationValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateReservationRequest)
		wantErr error
	}{
		{
			name: "due before out",
			mutate: func(r *CreateReservationRequest) {
				r.DateOut, r.DateDue = r.DateDue, r.DateOut
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "due equals out",
			mutate: func(r *CreateReservationRequest) {
				r.DateDue = r.DateOut
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "pickup beyond past grace",
			mutate: func(r *CreateReservationRequest) {
				r.DateOut = testNow.Add(-2 * time.Hour).Format(time.RFC3339)
				r.DateDue = testNow.AddDate(0, 0, 2).Format(time.RFC3339)
			},
			wantErr: ErrPastDate,
		},
		{
			name: "unknown customer",
			mutate: func(r *CreateReservationRequest) {
				r.CustomerID = 404
			},
			wantErr: ErrNotFound,
		},
		{
			name: "unknown location",
			mutate: func(r *CreateReservationRequest) {
				r.LocationCodeDue = "JFK"
			},
			wantErr: ErrNotFound,
		},
		{
			name: "unknown rate code",
			mutate: func(r *CreateReservationRequest) {
				r.RateCode = "HOLIDAY"
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			request := createRequest()
			tt.mutate(request)

			_, err := f.controller.Create(context.Background(), request)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.audit.entries)
		})
	}
}

func TestCreateReservationWithinPastGrace(t *testing.T) {
	f := newFixture()

	request := createRequest()
	request.DateOut = testNow.Add(-30 * time.Minute).Format(time.RFC3339)
	request.DateDue = testNow.AddDate(0, 0, 2).Format(time.RFC3339)

	_, err := f.controller.Create(context.Background(), request)
	assert.NoError(t, err)
}

func TestCreateReservationRetriesOnDuplicateNumber(t *testing.T) {
	f := newFixture()
	f.reservation.createErrs = []error{gorm.ErrDuplicatedKey}
	f.numbers.queue = []string{"RES-2025-00007", "RES-2025-00008"}

	reservation, err := f.controller.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, "RES-2025-00008", reservation.ReservationNumber)
	assert.Equal(t, 2, f.numbers.calls)
	require.Len(t, f.audit.entries, 1)
}

func TestCreateReservationGivesUpAfterRepeatedDuplicates(t *testing.T) {
	f := newFixture()
	f.reservation.createErrs = []error{
		gorm.ErrDuplicatedKey,
		gorm.ErrDuplicatedKey,
		gorm.ErrDuplicatedKey,
	}

	_, err := f.controller.Create(context.Background(), createRequest())
	assert.Error(t, err)
	assert.Empty(t, f.audit.entries)
}

func seedReservation(f *fixture, status ReservationStatus, vehicleID *int) *Reservation {
	reservation := &Reservation{
		BaseModel:         BaseModel{ID: 10},
		ReservationNumber: "RES-2025-00010",
		CustomerID:        1,
		VehicleClassID:    1,
		VehicleID:         vehicleID,
		LocationCodeOut:   "LAX",
		LocationCodeDue:   "LAX",
		DateOut:           testNow.AddDate(0, 0, 5),
		DateDue:           testNow.AddDate(0, 0, 8),
		RateCode:          "STANDARD",
		EstimatedDays:     decimal.RequireFromString("3.00"),
		EstimatedTotal:    decimal.RequireFromString("135.00"),
		ReservationStatus: status,
	}
	f.reservation.byID[reservation.ID] = reservation
	return reservation
}

func TestUpdateReservation(t *testing.T) {
	f := newFixture()
	seedReservation(f, StatusQuote, nil)

	newDue := testNow.AddDate(0, 0, 9).Format(time.RFC3339)
	updated, err := f.controller.Update(context.Background(), 10, &UpdateReservationRequest{
		DateDue:    &newDue,
		ModifiedBy: "agent.jones",
	})
	require.NoError(t, err)

	// Window grew to 4 days, so the estimate follows.
	assert.True(t, updated.EstimatedDays.Equal(decimal.RequireFromString("4.00")))
	assert.True(t, updated.EstimatedTotal.Equal(decimal.RequireFromString("180.00")))

	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, AuditModified, f.audit.entries[0].Action)
	assert.NotNil(t, f.audit.entries[0].OldValues)
}

func TestUpdateReservationStatusChange(t *testing.T) {
	f := newFixture()
	seedReservation(f, StatusQuote, nil)

	status := StatusConfirmed
	updated, err := f.controller.Update(context.Background(), 10, &UpdateReservationRequest{
		ReservationStatus: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, updated.ReservationStatus)
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, AuditStatusChanged, f.audit.entries[0].Action)
}

func TestUpdateReservationRejectsIllegalTransition(t *testing.T) {
	f := newFixture()
	seedReservation(f, StatusQuote, nil)

	status := StatusCompleted
	_, err := f.controller.Update(context.Background(), 10, &UpdateReservationRequest{
		ReservationStatus: &status,
	})
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestUpdateReservationTerminalState(t *testing.T) {
	for _, status := range []ReservationStatus{StatusCompleted, StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture()
			seedReservation(f, status, nil)

			notes := "revised"
			_, err := f.controller.Update(context.Background(), 10, &UpdateReservationRequest{
				Notes: &notes,
			})
			assert.ErrorIs(t, err, ErrTerminalState)
		})
	}
}

func TestUpdateReservationNotFound(t *testing.T) {
	f := newFixture()

	notes := "revised"
	_, err := f.controller.Update(context.Background(), 99, &UpdateReservationRequest{
		Notes: &notes,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelReservation(t *testing.T) {
	f := newFixture()
	vehicleID := 3
	seedReservation(f, StatusConfirmed, &vehicleID)

	cancelled, err := f.controller.Cancel(context.Background(), 10, "agent.smith")
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, cancelled.ReservationStatus)
	assert.Nil(t, cancelled.VehicleID, "cancellation releases the vehicle")

	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, AuditCancelled, f.audit.entries[0].Action)
}

func TestCancelReservationCheckedOut(t *testing.T) {
	f := newFixture()
	seedReservation(f, StatusCheckedOut, nil)

	_, err := f.controller.Cancel(context.Background(), 10, "")
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestCancelReservationAlreadyCancelled(t *testing.T) {
	f := newFixture()
	seedReservation(f, StatusCancelled, nil)

	_, err := f.controller.Cancel(context.Background(), 10, "")
	require.ErrorIs(t, err, ErrTerminalState)
	assert.Contains(t, err.Error(), "already cancelled")
}

func TestAssignVehicle(t *testing.T) {
	f := newFixture()
	seedReservation(f, StatusConfirmed, nil)
	f.vehicle.byID[3] = &Vehicle{
		BaseModel:      BaseModel{ID: 3},
		UnitNumber:     "A-103",
		VehicleClassID: 1,
	}

	result, err := f.controller.AssignVehicle(context.Background(), 10, 3, "agent.smith")
	require.NoError(t, err)

	require.NotNil(t, result.Reservation.VehicleID)
	assert.Equal(t, 3, *result.Reservation.VehicleID)
	assert.False(t, result.OverbookingWarning)

	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, AuditVehicleAssigned, f.audit.entries[0].Action)
}

func TestAssignVehicleOverbookingWarning(t *testing.T) {
	f := newFixture()
	seedReservation(f, StatusConfirmed, nil)
	f.reservation.overlapCount = 2
	f.vehicle.byID[3] = &Vehicle{BaseModel: BaseModel{ID: 3}, VehicleClassID: 1}

	result, err := f.controller.AssignVehicle(context.Background(), 10, 3, "")
	require.NoError(t, err)

	assert.True(t, result.OverbookingWarning)
	assert.Equal(t, 2, result.OverlappingReservations)
	require.Len(t, f.audit.entries, 1, "warning does not block the assignment")
}

func TestAssignVehicleClassMismatch(t *testing.T) {
	f := newFixture()
	seedReservation(f, StatusConfirmed, nil)
	f.vehicle.byID[4] = &Vehicle{BaseModel: BaseModel{ID: 4}, VehicleClassID: 2}

	_, err := f.controller.AssignVehicle(context.Background(), 10, 4, "")
	assert.ErrorIs(t, err, ErrClassMismatch)
	assert.Empty(t, f.audit.entries)
}

func TestAssignVehicleTerminalState(t *testing.T) {
	f := newFixture()
	seedReservation(f, StatusCancelled, nil)
	f.vehicle.byID[3] = &Vehicle{BaseModel: BaseModel{ID: 3}, VehicleClassID: 1}

	_, err := f.controller.AssignVehicle(context.Background(), 10, 3, "")
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestUnassignVehicle(t *testing.T) {
	f := newFixture()
	vehicleID := 3
	seedReservation(f, StatusConfirmed, &vehicleID)

	updated, err := f.controller.UnassignVehicle(context.Background(), 10, "agent.smith")
	require.NoError(t, err)

	assert.Nil(t, updated.VehicleID)
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, AuditVehicleUnassigned, f.audit.entries[0].Action)
}

func TestUnassignVehicleNoneAssigned(t *testing.T) {
	f := newFixture()
	seedReservation(f, StatusConfirmed, nil)

	_, err := f.controller.UnassignVehicle(context.Background(), 10, "")
	assert.ErrorIs(t, err, ErrNoVehicleAssigned)
}

func TestUnassignVehicleCheckedOut(t *testing.T) {
	f := newFixture()
	vehicleID := 3
	seedReservation(f, StatusCheckedOut, &vehicleID)

	_, err := f.controller.UnassignVehicle(context.Background(), 10, "")
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestCheckAvailability(t *testing.T) {
	f := newFixture()
	f.vehicle.candidates = []Vehicle{
		{BaseModel: BaseModel{ID: 1}, UnitNumber: "A-101"},
		{
			BaseModel:    BaseModel{ID: 2},
			UnitNumber:   "A-102",
			Reservations: []Reservation{{BaseModel: BaseModel{ID: 50}}},
		},
		{BaseModel: BaseModel{ID: 3}, UnitNumber: "A-103"},
	}

	result, err := f.controller.CheckAvailability(context.Background(), &AvailabilityRequest{
		VehicleClassID:  1,
		LocationCodeOut: "LAX",
		LocationCodeDue: "LAX",
		DateOut:         testNow.AddDate(0, 0, 5).Format(time.RFC3339),
		DateDue:         testNow.AddDate(0, 0, 8).Format(time.RFC3339),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalVehicles)
	assert.Equal(t, 2, result.AvailableCount)
	assert.Equal(t, 1, result.OccupiedCount)
	require.Len(t, result.AvailableVehicles, 2)
	assert.Equal(t, "A-101", result.AvailableVehicles[0].UnitNumber)
	assert.Equal(t, "A-103", result.AvailableVehicles[1].UnitNumber)
}

func TestCheckAvailabilityPastWindow(t *testing.T) {
	f := newFixture()
	f.vehicle.candidates = []Vehicle{{BaseModel: BaseModel{ID: 1}, UnitNumber: "A-101"}}

	// A window entirely in the past is rejected the same way create rejects it.
	_, err := f.controller.CheckAvailability(context.Background(), &AvailabilityRequest{
		VehicleClassID:  1,
		LocationCodeOut: "LAX",
		DateOut:         testNow.AddDate(0, 0, -10).Format(time.RFC3339),
		DateDue:         testNow.AddDate(0, 0, -7).Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestCheckAvailabilityInvalidWindow(t *testing.T) {
	f := newFixture()

	_, err := f.controller.CheckAvailability(context.Background(), &AvailabilityRequest{
		VehicleClassID:  1,
		LocationCodeOut: "LAX",
		DateOut:         testNow.AddDate(0, 0, 8).Format(time.RFC3339),
		DateDue:         testNow.AddDate(0, 0, 5).Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGetSchedule(t *testing.T) {
	f := newFixture()
	f.vehicle.scheduled = []Vehicle{
		{
			BaseModel:    BaseModel{ID: 1},
			UnitNumber:   "A-101",
			VehicleClass: &VehicleClass{BaseModel: BaseModel{ID: 1}, Name: "Economy"},
			Location:     &Location{Code: "LAX", Name: "Los Angeles Airport"},
			Reservations: []Reservation{
				{
					BaseModel:         BaseModel{ID: 20},
					ReservationNumber: "RES-2025-00020",
					Customer:          &Customer{FirstName: "Ada", LastName: "Reyes"},
					ReservationStatus: StatusConfirmed,
				},
			},
		},
	}
	f.reservation.unassigned = []Reservation{
		{
			BaseModel:         BaseModel{ID: 21},
			ReservationNumber: "RES-2025-00021",
			VehicleClass:      &VehicleClass{BaseModel: BaseModel{ID: 1}, Name: "Economy"},
			ReservationStatus: StatusQuote,
		},
	}

	result, err := f.controller.GetSchedule(context.Background(), &ScheduleRequest{
		LocationCode: "LAX",
		DateFrom:     testNow.Format(time.RFC3339),
		DateTo:       testNow.AddDate(0, 0, 14).Format(time.RFC3339),
	})
	require.NoError(t, err)

	require.Len(t, result.Vehicles, 1)
	assert.Equal(t, "A-101", result.Vehicles[0].UnitNumber)
	assert.Equal(t, "Economy", result.Vehicles[0].VehicleClass.Name)
	require.Len(t, result.Vehicles[0].Reservations, 1)
	assert.Equal(t, "Ada", result.Vehicles[0].Reservations[0].Customer.FirstName)

	require.Len(t, result.UnassignedReservations, 1)
	assert.Equal(t, "RES-2025-00021", result.UnassignedReservations[0].ReservationNumber)
}

func TestGetNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.controller.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
