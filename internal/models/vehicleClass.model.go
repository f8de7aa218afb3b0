package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// VehicleClass is the bookable unit of inventory: reservations are taken
// against a class, and a concrete vehicle of that class is assigned later.
type VehicleClass struct {
	BaseModel
	Name        string          `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Description string          `gorm:"type:text"                      json:"description"`
	DailyRate   decimal.Decimal `gorm:"type:decimal(8,2);not null"     json:"dailyRate"`
	WeeklyRate  decimal.Decimal `gorm:"type:decimal(8,2)"              json:"weeklyRate"`
	MonthlyRate decimal.Decimal `gorm:"type:decimal(10,2)"             json:"monthlyRate"`
	MileageRate decimal.Decimal `gorm:"type:decimal(6,2)"              json:"mileageRate"`
	Capacity    int             `gorm:"type:int"                       json:"capacity"`
	Features    datatypes.JSON  `gorm:"type:jsonb"                     json:"features"`
}
