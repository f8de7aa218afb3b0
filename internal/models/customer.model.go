package models

type Customer struct {
	BaseModel
	FirstName     string `gorm:"type:text;not null"        json:"firstName"`
	LastName      string `gorm:"type:text;not null"        json:"lastName"`
	Email         string `gorm:"type:text;uniqueIndex"     json:"email"`
	Phone         string `gorm:"type:text"                 json:"phone"`
	LicenseNumber string `gorm:"type:text"                 json:"licenseNumber"`
	Address       string `gorm:"type:text"                 json:"address"`
	City          string `gorm:"type:text"                 json:"city"`
	State         string `gorm:"type:text"                 json:"state"`
	ZipCode       string `gorm:"type:text"                 json:"zipCode"`
}
