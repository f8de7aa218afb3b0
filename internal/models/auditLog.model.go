package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditAction string

const (
	AuditCreated           AuditAction = "CREATED"
	AuditModified          AuditAction = "MODIFIED"
	AuditStatusChanged     AuditAction = "STATUS_CHANGED"
	AuditCancelled         AuditAction = "CANCELLED"
	AuditVehicleAssigned   AuditAction = "VEHICLE_ASSIGNED"
	AuditVehicleUnassigned AuditAction = "VEHICLE_UNASSIGNED"
)

// ReservationAuditLog is append-only: rows are written by every mutating
// reservation operation and never updated or deleted afterward.
type ReservationAuditLog struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuidv7()" json:"id"`
	ReservationID int            `gorm:"type:int;not null;index"               json:"reservationId"`
	Action        AuditAction    `gorm:"type:text;not null"                    json:"action"`
	OldValues     datatypes.JSON `gorm:"type:jsonb"                            json:"oldValues"`
	NewValues     datatypes.JSON `gorm:"type:jsonb;not null"                   json:"newValues"`
	ChangedBy     string         `gorm:"type:text;not null;default:'system'"   json:"changedBy"`
	ChangedAt     time.Time      `gorm:"autoCreateTime;index"                  json:"changedAt"`
}
