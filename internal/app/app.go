package app

import (
	"context"

	"rentall/config"
	"rentall/internal/database"
	"rentall/internal/jobs"
	"rentall/internal/repositories"
	"rentall/internal/services"

	assignmentController "rentall/internal/controllers/assignment"
	reservationController "rentall/internal/controllers/reservations"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database database.DB
	Config   config.Config

	// Services
	TransactionService       *services.TransactionService
	ReservationNumberService *services.ReservationNumberService
	SchedulerService         *services.SchedulerService

	// Repositories
	Repos repositories.Repository

	// Controllers
	ReservationController reservationController.ReservationControllerInterface
	AssignmentController  assignmentController.AssignmentControllerInterface
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)
	svc := services.New(db, repos)

	reservations := reservationController.New(repos, svc)
	assignments := assignmentController.New(repos, svc)

	app := &App{
		Database:                 db,
		Config:                   config,
		TransactionService:       svc.Transaction,
		ReservationNumberService: svc.ReservationNumber,
		SchedulerService:         svc.Scheduler,
		Repos:                    repos,
		ReservationController:    reservations,
		AssignmentController:     assignments,
	}

	if config.SchedulerEnabled {
		if err := svc.Scheduler.AddJob(jobs.NewAutoAssignJob(assignments)); err != nil {
			return &App{}, log.Err("failed to register auto-assign job", err)
		}
		svc.Scheduler.Start()
	}

	log.Info("Application initialized", "schedulerEnabled", config.SchedulerEnabled)

	return app, nil
}

func (a *App) Shutdown(ctx context.Context) error {
	log := logger.New("app").Function("Shutdown")

	if a.SchedulerService != nil {
		a.SchedulerService.Stop()
	}

	if err := a.Database.Close(); err != nil {
		return log.Err("failed to close database", err)
	}

	log.Info("Application shut down cleanly")

	return nil
}
