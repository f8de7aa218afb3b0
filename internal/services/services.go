package services

import (
	"rentall/internal/database"
	"rentall/internal/repositories"
)

type Service struct {
	Transaction       *TransactionService
	ReservationNumber *ReservationNumberService
	Scheduler         *SchedulerService
}

func New(db database.DB, repos repositories.Repository) Service {
	return Service{
		Transaction:       NewTransactionService(db),
		ReservationNumber: NewReservationNumberService(repos.Reservation),
		Scheduler:         NewSchedulerService(),
	}
}
