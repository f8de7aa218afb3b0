package assignmentController

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	reservations "rentall/internal/controllers/reservations"
	. "rentall/internal/models"
	"rentall/internal/repositories"
	"rentall/internal/services"
	"rentall/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActorAutoAssign marks reservations touched by the machine rather than a
// person; it appears in modified_by and in the audit trail.
const ActorAutoAssign = "AI_AUTO_ASSIGN"

const maxRecommendations = 5

type VehicleScore struct {
	VehicleID  int      `json:"vehicleId"`
	UnitNumber string   `json:"unitNumber"`
	Make       string   `json:"make"`
	Model      string   `json:"model"`
	Year       int      `json:"year"`
	Mileage    int      `json:"mileage"`
	Score      int      `json:"score"`
	Reasons    []string `json:"reasons"`
}

type Assignment struct {
	ReservationID     int      `json:"reservationId"`
	ReservationNumber string   `json:"reservationNumber"`
	VehicleID         int      `json:"vehicleId"`
	UnitNumber        string   `json:"unitNumber"`
	Score             int      `json:"score"`
	Reasons           []string `json:"reasons"`
}

type AssignmentFailure struct {
	ReservationID     int    `json:"reservationId"`
	ReservationNumber string `json:"reservationNumber"`
	Reason            string `json:"reason"`
}

type AutoAssignResult struct {
	Assigned    int                 `json:"assigned"`
	Failed      int                 `json:"failed"`
	Assignments []Assignment        `json:"assignments"`
	Errors      []AssignmentFailure `json:"errors"`
}

type RecommendationsResult struct {
	ReservationID     int            `json:"reservationId"`
	ReservationNumber string         `json:"reservationNumber"`
	AlreadyAssigned   bool           `json:"alreadyAssigned"`
	AssignedVehicleID *int           `json:"assignedVehicleId,omitempty"`
	Recommendations   []VehicleScore `json:"recommendations"`
}

type UtilizationRequest struct {
	LocationCode string `json:"locationCode,omitempty"`
	DateFrom     string `json:"dateFrom"`
	DateTo       string `json:"dateTo"`
}

type ClassUtilization struct {
	VehicleClassID   int     `json:"vehicleClassId"`
	VehicleClassName string  `json:"vehicleClassName"`
	Vehicles         int     `json:"vehicles"`
	BookedDays       float64 `json:"bookedDays"`
	FleetDays        float64 `json:"fleetDays"`
	UtilizationPct   float64 `json:"utilizationPct"`
}

type UtilizationResult struct {
	DateFrom       time.Time          `json:"dateFrom"`
	DateTo         time.Time          `json:"dateTo"`
	FleetSize      int                `json:"fleetSize"`
	BookedDays     float64            `json:"bookedDays"`
	FleetDays      float64            `json:"fleetDays"`
	UtilizationPct float64            `json:"utilizationPct"`
	Classes        []ClassUtilization `json:"classes"`
}

// TxExecutor runs a function inside a database transaction.
type TxExecutor interface {
	Execute(ctx context.Context, fn func(context.Context, *gorm.DB) error) error
}

type AssignmentControllerInterface interface {
	AutoAssign(ctx context.Context, locationCode string) (*AutoAssignResult, error)
	Recommendations(ctx context.Context, reservationID int) (*RecommendationsResult, error)
	FleetUtilization(ctx context.Context, request *UtilizationRequest) (*UtilizationResult, error)
}

type AssignmentController struct {
	reservationRepo repositories.ReservationRepository
	vehicleRepo     repositories.VehicleRepository
	auditRepo       repositories.AuditLogRepository
	tx              TxExecutor
	now             func() time.Time
}

func New(repos repositories.Repository, svc services.Service) AssignmentControllerInterface {
	return &AssignmentController{
		reservationRepo: repos.Reservation,
		vehicleRepo:     repos.Vehicle,
		auditRepo:       repos.AuditLog,
		tx:              svc.Transaction,
		now:             time.Now,
	}
}

// AutoAssign walks every unassigned QUOTE/CONFIRMED reservation, earliest
// pickup first, and gives each the best-scoring free vehicle of its class at
// its pickup location. One reservation's failure never aborts the batch.
func (c *AssignmentController) AutoAssign(
	ctx context.Context,
	locationCode string,
) (*AutoAssignResult, error) {
	log := logger.New("assignmentController").Function("AutoAssign")

	unassigned, err := c.reservationRepo.ListUnassigned(ctx, locationCode, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	result := &AutoAssignResult{
		Assignments: []Assignment{},
		Errors:      []AssignmentFailure{},
	}

	for i := range unassigned {
		reservation := &unassigned[i]

		best, err := c.findBestVehicle(ctx, reservation)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, AssignmentFailure{
				ReservationID:     reservation.ID,
				ReservationNumber: reservation.ReservationNumber,
				Reason:            err.Error(),
			})
			continue
		}
		if best == nil {
			result.Failed++
			result.Errors = append(result.Errors, AssignmentFailure{
				ReservationID:     reservation.ID,
				ReservationNumber: reservation.ReservationNumber,
				Reason:            "no suitable vehicle found",
			})
			continue
		}

		if err := c.persistAssignment(ctx, reservation, best); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, AssignmentFailure{
				ReservationID:     reservation.ID,
				ReservationNumber: reservation.ReservationNumber,
				Reason:            err.Error(),
			})
			continue
		}

		result.Assigned++
		result.Assignments = append(result.Assignments, Assignment{
			ReservationID:     reservation.ID,
			ReservationNumber: reservation.ReservationNumber,
			VehicleID:         best.VehicleID,
			UnitNumber:        best.UnitNumber,
			Score:             best.Score,
			Reasons:           best.Reasons,
		})
	}

	log.Info("Auto-assignment completed",
		"locationCode", locationCode,
		"assigned", result.Assigned,
		"failed", result.Failed,
	)

	return result, nil
}

// persistAssignment writes the vehicle reference and the machine-actor audit
// entry as one unit, outside the overbooking-warning path of manual
// assignment. Conflicted candidates never win the scoring, so the warning
// computation has nothing to add here.
func (c *AssignmentController) persistAssignment(
	ctx context.Context,
	reservation *Reservation,
	best *VehicleScore,
) error {
	return c.tx.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		updated, err := c.reservationRepo.Update(ctx, tx, reservation.ID, map[string]any{
			"vehicle_id":  best.VehicleID,
			"modified_by": ActorAutoAssign,
		})
		if err != nil {
			return err
		}

		oldJSON, err := json.Marshal(reservation)
		if err != nil {
			return fmt.Errorf("failed to marshal audit old values: %w", err)
		}
		newJSON, err := json.Marshal(map[string]any{
			"reservation":  updated,
			"autoAssigned": true,
			"score":        best.Score,
			"reasons":      best.Reasons,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal audit new values: %w", err)
		}

		return c.auditRepo.Create(ctx, tx, &ReservationAuditLog{
			ReservationID: reservation.ID,
			Action:        AuditVehicleAssigned,
			OldValues:     datatypes.JSON(oldJSON),
			NewValues:     datatypes.JSON(newJSON),
			ChangedBy:     ActorAutoAssign,
		})
	})
}

// findBestVehicle returns the top-scoring candidate, or nil when no candidate
// scores above zero. Ties go to the lowest vehicle id so repeated runs over
// the same data always pick the same unit.
func (c *AssignmentController) findBestVehicle(
	ctx context.Context,
	reservation *Reservation,
) (*VehicleScore, error) {
	candidates, err := c.vehicleRepo.ListCandidates(
		ctx, reservation.VehicleClassID, reservation.LocationCodeOut,
	)
	if err != nil {
		return nil, err
	}

	scores := c.scoreCandidates(candidates, reservation)
	if len(scores) == 0 || scores[0].Score == 0 {
		return nil, nil
	}

	return &scores[0], nil
}

func (c *AssignmentController) scoreCandidates(
	candidates []Vehicle,
	reservation *Reservation,
) []VehicleScore {
	now := c.now()

	scores := make([]VehicleScore, 0, len(candidates))
	for i := range candidates {
		vehicle := &candidates[i]
		score, reasons := scoreVehicle(vehicle, reservation, now)
		scores = append(scores, VehicleScore{
			VehicleID:  vehicle.ID,
			UnitNumber: vehicle.UnitNumber,
			Make:       vehicle.Make,
			Model:      vehicle.Model,
			Year:       vehicle.Year,
			Mileage:    vehicle.Mileage,
			Score:      score,
			Reasons:    reasons,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].VehicleID < scores[j].VehicleID
	})

	return scores
}

// Recommendations scores every candidate for an unassigned reservation and
// returns the top ones with their reason lists. Already-assigned reservations
// report their vehicle instead of a ranking.
func (c *AssignmentController) Recommendations(
	ctx context.Context,
	reservationID int,
) (*RecommendationsResult, error) {
	reservation, err := c.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: reservation %d", reservations.ErrNotFound, reservationID)
		}
		return nil, err
	}

	result := &RecommendationsResult{
		ReservationID:     reservation.ID,
		ReservationNumber: reservation.ReservationNumber,
		Recommendations:   []VehicleScore{},
	}

	if reservation.VehicleID != nil {
		result.AlreadyAssigned = true
		result.AssignedVehicleID = reservation.VehicleID
		return result, nil
	}

	candidates, err := c.vehicleRepo.ListCandidates(
		ctx, reservation.VehicleClassID, reservation.LocationCodeOut,
	)
	if err != nil {
		return nil, err
	}

	scores := c.scoreCandidates(candidates, reservation)
	if len(scores) > maxRecommendations {
		scores = scores[:maxRecommendations]
	}
	result.Recommendations = scores

	return result, nil
}

// defaultUtilizationWindowDays is used when the caller gives no dates: the
// report covers the upcoming month.
const defaultUtilizationWindowDays = 30

// FleetUtilization reports booked days against fleet capacity for a window,
// overall and per class. Reservation windows are clamped to the requested
// range so a month-long rental only counts its in-window days.
func (c *AssignmentController) FleetUtilization(
	ctx context.Context,
	request *UtilizationRequest,
) (*UtilizationResult, error) {
	dateFrom := c.now()
	if request.DateFrom != "" {
		var err error
		dateFrom, err = reservations.ParseDateTime(request.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: dateFrom: %s", reservations.ErrInvalidDateRange, err.Error())
		}
	}

	dateTo := dateFrom.AddDate(0, 0, defaultUtilizationWindowDays)
	if request.DateTo != "" {
		var err error
		dateTo, err = reservations.ParseDateTime(request.DateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: dateTo: %s", reservations.ErrInvalidDateRange, err.Error())
		}
	}

	if !dateTo.After(dateFrom) {
		return nil, fmt.Errorf("%w: dateTo must be after dateFrom", reservations.ErrInvalidDateRange)
	}

	vehicles, err := c.vehicleRepo.ListForUtilization(ctx, request.LocationCode, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	windowDays := dateTo.Sub(dateFrom).Hours() / 24

	byClass := map[int]*ClassUtilization{}
	classOrder := []int{}

	result := &UtilizationResult{
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		FleetSize: len(vehicles),
		Classes:   []ClassUtilization{},
	}

	for i := range vehicles {
		vehicle := &vehicles[i]

		entry, ok := byClass[vehicle.VehicleClassID]
		if !ok {
			entry = &ClassUtilization{VehicleClassID: vehicle.VehicleClassID}
			if vehicle.VehicleClass != nil {
				entry.VehicleClassName = vehicle.VehicleClass.Name
			}
			byClass[vehicle.VehicleClassID] = entry
			classOrder = append(classOrder, vehicle.VehicleClassID)
		}

		entry.Vehicles++
		entry.FleetDays += windowDays

		for _, reservation := range vehicle.Reservations {
			entry.BookedDays += clampedDays(
				reservation.DateOut, reservation.DateDue, dateFrom, dateTo,
			)
		}
	}

	sort.Ints(classOrder)
	for _, classID := range classOrder {
		entry := byClass[classID]
		entry.BookedDays = roundTo(entry.BookedDays, 2)
		entry.UtilizationPct = percentage(entry.BookedDays, entry.FleetDays)
		result.BookedDays += entry.BookedDays
		result.FleetDays += entry.FleetDays
		result.Classes = append(result.Classes, *entry)
	}

	result.BookedDays = roundTo(result.BookedDays, 2)
	result.UtilizationPct = percentage(result.BookedDays, result.FleetDays)

	return result, nil
}

// clampedDays is the in-window portion of a reservation, in fractional days.
func clampedDays(dateOut, dateDue, windowFrom, windowTo time.Time) float64 {
	if !utils.RangesOverlap(dateOut, dateDue, windowFrom, windowTo) {
		return 0
	}

	start := dateOut
	if start.Before(windowFrom) {
		start = windowFrom
	}
	end := dateDue
	if end.After(windowTo) {
		end = windowTo
	}

	return end.Sub(start).Hours() / 24
}

func percentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return roundTo(part/whole*100, 1)
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
