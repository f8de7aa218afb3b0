package repositories

import (
	"context"
	"rentall/internal/database"
	. "rentall/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

// AuditLogRepository is append-only on purpose: audit entries are never
// updated or deleted once written.
type AuditLogRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *ReservationAuditLog) error
}

type auditLogRepository struct {
	db  database.DB
	log logger.Logger
}

func NewAuditLogRepository(db database.DB) AuditLogRepository {
	return &auditLogRepository{
		db:  db,
		log: logger.New("auditLogRepository"),
	}
}

func (r *auditLogRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	entry *ReservationAuditLog,
) error {
	if err := tx.WithContext(ctx).Create(entry).Error; err != nil {
		return r.log.Function("Create").Err("failed to create audit log entry", err,
			"reservationID", entry.ReservationID, "action", entry.Action)
	}

	return nil
}
