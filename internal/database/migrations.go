package database

import (
	"rentall/internal/models"

	logger "github.com/Bparsons0904/goLogger"
)

// ModelsToMigrate lists every model in dependency order, leaves first.
func ModelsToMigrate() []any {
	return []any{
		&models.Location{},
		&models.RateHead{},
		&models.VehicleClass{},
		&models.Customer{},
		&models.Vehicle{},
		&models.Reservation{},
		&models.ReservationAuditLog{},
	}
}

// MigrateModels runs GORM AutoMigrate for all models
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	for _, model := range ModelsToMigrate() {
		if err := db.SQL.AutoMigrate(model); err != nil {
			log.Error("Failed to migrate model", "model", model, "error", err)
			return err
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}

// CreateIndexes creates additional indexes that GORM doesn't create automatically
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		// Overlap queries scan a vehicle's active reservations by window.
		"CREATE INDEX IF NOT EXISTS idx_reservations_vehicle_window ON reservations(vehicle_id, date_out, date_due) WHERE reservation_status IN ('QUOTE', 'CONFIRMED', 'CHECKED_OUT')",
		// Unassigned-reservation scans for auto-assign and the timeline.
		"CREATE INDEX IF NOT EXISTS idx_reservations_unassigned ON reservations(location_code_out, date_out) WHERE vehicle_id IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_reservation_changed_at ON reservation_audit_logs(reservation_id, changed_at DESC)",
	}

	for _, index := range indexes {
		if err := db.SQL.Exec(index).Error; err != nil {
			log.Error("Failed to create index", "index", index, "error", err)
			return err
		}
	}

	log.Info("Database indexes created successfully")
	return nil
}
