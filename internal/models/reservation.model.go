package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	StatusQuote      ReservationStatus = "QUOTE"
	StatusConfirmed  ReservationStatus = "CONFIRMED"
	StatusCheckedOut ReservationStatus = "CHECKED_OUT"
	StatusCompleted  ReservationStatus = "COMPLETED"
	StatusCancelled  ReservationStatus = "CANCELLED"
)

// statusTransitions is the single source of truth for the reservation state
// machine. Every operation that changes status consults this table instead of
// doing its own comparisons.
var statusTransitions = map[ReservationStatus][]ReservationStatus{
	StatusQuote:      {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func (s ReservationStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is permitted.
func (s ReservationStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0 && s.IsValid()
}

// IsActive reports whether the reservation occupies its vehicle for
// overlap and availability purposes.
func (s ReservationStatus) IsActive() bool {
	return s == StatusQuote || s == StatusConfirmed || s == StatusCheckedOut
}

// ActiveStatuses is the status set considered when computing overlaps.
func ActiveStatuses() []ReservationStatus {
	return []ReservationStatus{StatusQuote, StatusConfirmed, StatusCheckedOut}
}

type Reservation struct {
	BaseModel
	ReservationNumber string            `gorm:"type:text;not null;uniqueIndex"              json:"reservationNumber"`
	CustomerID        int               `gorm:"type:int;not null;index"                     json:"customerId"`
	Customer          *Customer         `gorm:"foreignKey:CustomerID"                       json:"customer,omitempty"`
	VehicleClassID    int               `gorm:"type:int;not null;index"                     json:"vehicleClassId"`
	VehicleClass      *VehicleClass     `gorm:"foreignKey:VehicleClassID"                   json:"vehicleClass,omitempty"`
	VehicleID         *int              `gorm:"type:int;index"                              json:"vehicleId"`
	Vehicle           *Vehicle          `gorm:"foreignKey:VehicleID"                        json:"vehicle,omitempty"`
	LocationCodeOut   string            `gorm:"type:text;not null;index"                    json:"locationCodeOut"`
	PickupLocation    *Location         `gorm:"foreignKey:LocationCodeOut;references:Code"  json:"pickupLocation,omitempty"`
	LocationCodeDue   string            `gorm:"type:text;not null"                          json:"locationCodeDue"`
	DropoffLocation   *Location         `gorm:"foreignKey:LocationCodeDue;references:Code"  json:"dropoffLocation,omitempty"`
	DateOut           time.Time         `gorm:"not null;index"                              json:"dateOut"`
	DateDue           time.Time         `gorm:"not null;index"                              json:"dateDue"`
	RateCode          string            `gorm:"type:text;not null"                          json:"rateCode"`
	RateHead          *RateHead         `gorm:"foreignKey:RateCode;references:Code"         json:"rateHead,omitempty"`
	EstimatedDays     decimal.Decimal   `gorm:"type:decimal(6,2);not null"                  json:"estimatedDays"`
	EstimatedTotal    decimal.Decimal   `gorm:"type:decimal(10,2);not null"                 json:"estimatedTotal"`
	EstimatedMiles    *int              `gorm:"type:int"                                    json:"estimatedMiles"`
	Notes             string            `gorm:"type:text"                                   json:"notes"`
	CustomerNotes     string            `gorm:"type:text"                                   json:"customerNotes"`
	ReservationStatus ReservationStatus `gorm:"type:text;not null;default:'QUOTE';index"    json:"reservationStatus"`
	CreatedBy         string            `gorm:"type:text;not null;default:'system'"         json:"createdBy"`
	ModifiedBy        string            `gorm:"type:text;not null;default:'system'"         json:"modifiedBy"`

	AuditLogs []ReservationAuditLog `gorm:"foreignKey:ReservationID" json:"auditLogs,omitempty"`
}
