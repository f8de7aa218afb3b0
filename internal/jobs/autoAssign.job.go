package jobs

import (
	"context"

	assignmentController "rentall/internal/controllers/assignment"
	"rentall/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// AutoAssignJob sweeps all locations nightly and gives unassigned
// reservations their best available vehicle, so the morning dispatch starts
// from a mostly-assigned board.
type AutoAssignJob struct {
	assignments assignmentController.AssignmentControllerInterface
	log         logger.Logger
}

func NewAutoAssignJob(
	assignments assignmentController.AssignmentControllerInterface,
) *AutoAssignJob {
	return &AutoAssignJob{
		assignments: assignments,
		log:         logger.New("autoAssignJob"),
	}
}

func (j *AutoAssignJob) Name() string {
	return "auto-assign-vehicles"
}

func (j *AutoAssignJob) Schedule() services.Schedule {
	return services.Daily
}

func (j *AutoAssignJob) Execute(ctx context.Context) error {
	result, err := j.assignments.AutoAssign(ctx, "")
	if err != nil {
		return j.log.Function("Execute").Err("nightly auto-assignment failed", err)
	}

	j.log.Function("Execute").Info("Nightly auto-assignment finished",
		"assigned", result.Assigned,
		"failed", result.Failed,
	)

	return nil
}
