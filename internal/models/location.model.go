package models

// Location is a rental branch keyed by its short code (LAX, SFO, ...).
// Reference data: read-only from the reservation engine's perspective.
type Location struct {
	BaseModel
	Code           string `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name           string `gorm:"type:text;not null"             json:"name"`
	Address        string `gorm:"type:text"                      json:"address"`
	City           string `gorm:"type:text"                      json:"city"`
	State          string `gorm:"type:text"                      json:"state"`
	ZipCode        string `gorm:"type:text"                      json:"zipCode"`
	Phone          string `gorm:"type:text"                      json:"phone"`
	Email          string `gorm:"type:text"                      json:"email"`
	OperatingHours string `gorm:"type:text"                      json:"operatingHours"`
}
