package models

type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "AVAILABLE"
	VehicleStatusMaintenance  VehicleStatus = "MAINTENANCE"
	VehicleStatusOutOfService VehicleStatus = "OUT_OF_SERVICE"
)

// Vehicle is owned by fleet management; the reservation engine only ever
// reads it. Assignment touches the reservation's vehicle reference, never
// the vehicle row.
type Vehicle struct {
	BaseModel
	UnitNumber     string        `gorm:"type:text;not null;uniqueIndex"       json:"unitNumber"`
	Make           string        `gorm:"type:text;not null"                   json:"make"`
	Model          string        `gorm:"type:text;not null"                   json:"model"`
	Year           int           `gorm:"type:int;not null"                    json:"year"`
	Color          string        `gorm:"type:text"                            json:"color"`
	VIN            string        `gorm:"type:text;uniqueIndex"                json:"vin"`
	LicensePlate   string        `gorm:"type:text"                            json:"licensePlate"`
	Mileage        int           `gorm:"type:int;default:0"                   json:"mileage"`
	Status         VehicleStatus `gorm:"type:text;default:'AVAILABLE';index"  json:"status"`
	VehicleClassID int           `gorm:"type:int;not null;index"              json:"vehicleClassId"`
	VehicleClass   *VehicleClass `gorm:"foreignKey:VehicleClassID"            json:"vehicleClass,omitempty"`
	LocationID     int           `gorm:"type:int;not null;index"              json:"locationId"`
	Location       *Location     `gorm:"foreignKey:LocationID"                json:"location,omitempty"`
	Reservations   []Reservation `gorm:"foreignKey:VehicleID"                 json:"reservations,omitempty"`
}
