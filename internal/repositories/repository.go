package repositories

import (
	"rentall/internal/database"
)

type Repository struct {
	Reservation  ReservationRepository
	Vehicle      VehicleRepository
	Customer     CustomerRepository
	Location     LocationRepository
	RateHead     RateHeadRepository
	VehicleClass VehicleClassRepository
	AuditLog     AuditLogRepository
}

func New(db database.DB) Repository {
	return Repository{
		Reservation:  NewReservationRepository(db),
		Vehicle:      NewVehicleRepository(db),
		Customer:     NewCustomerRepository(db),
		Location:     NewLocationRepository(db), // reference repos cache through valkey
		RateHead:     NewRateHeadRepository(db),
		VehicleClass: NewVehicleClassRepository(db),
		AuditLog:     NewAuditLogRepository(db),
	}
}
