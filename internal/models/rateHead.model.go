package models

type RateHead struct {
	BaseModel
	Code        string `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name        string `gorm:"type:text;not null"             json:"name"`
	Description string `gorm:"type:text"                      json:"description"`
	IsActive    bool   `gorm:"type:bool;default:true"         json:"isActive"`
}
