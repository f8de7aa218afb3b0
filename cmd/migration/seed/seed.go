package seed

import (
	. "rentall/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed loads a small demo fleet across three branches. Safe to re-run only
// after a clean: rows are inserted blindly, relying on the prior drop.
func Seed(db *gorm.DB, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding development data")

	locations := []Location{
		{Code: "LAX", Name: "Los Angeles Airport", City: "Los Angeles", State: "CA",
			Phone: "310-555-0142", OperatingHours: "06:00-23:00"},
		{Code: "SFO", Name: "San Francisco Airport", City: "San Francisco", State: "CA",
			Phone: "650-555-0171", OperatingHours: "06:00-23:00"},
		{Code: "SDO", Name: "San Diego Downtown", City: "San Diego", State: "CA",
			Phone: "619-555-0108", OperatingHours: "08:00-20:00"},
	}
	if err := db.Create(&locations).Error; err != nil {
		return log.Err("failed to seed locations", err)
	}

	rates := []RateHead{
		{Code: "STANDARD", Name: "Standard Rate", Description: "Full daily rate"},
		{Code: "WEEKEND", Name: "Weekend Rate", Description: "10% off the daily rate"},
		{Code: "CORPORATE", Name: "Corporate Rate", Description: "15% off the daily rate"},
	}
	if err := db.Create(&rates).Error; err != nil {
		return log.Err("failed to seed rate heads", err)
	}

	classes := []VehicleClass{
		{
			Name:        "Economy",
			Description: "Compact and fuel efficient",
			DailyRate:   decimal.RequireFromString("45.00"),
			WeeklyRate:  decimal.RequireFromString("270.00"),
			MileageRate: decimal.RequireFromString("0.25"),
			Capacity:    4,
			Features:    datatypes.JSON(`["bluetooth","usb_charging"]`),
		},
		{
			Name:        "Midsize",
			Description: "Comfortable sedan",
			DailyRate:   decimal.RequireFromString("60.00"),
			WeeklyRate:  decimal.RequireFromString("360.00"),
			MileageRate: decimal.RequireFromString("0.30"),
			Capacity:    5,
			Features:    datatypes.JSON(`["bluetooth","usb_charging","cruise_control"]`),
		},
		{
			Name:        "SUV",
			Description: "Room for the whole family",
			DailyRate:   decimal.RequireFromString("85.00"),
			WeeklyRate:  decimal.RequireFromString("510.00"),
			MileageRate: decimal.RequireFromString("0.35"),
			Capacity:    7,
			Features:    datatypes.JSON(`["bluetooth","awd","roof_rack"]`),
		},
		{
			Name:        "Luxury",
			Description: "Premium experience",
			DailyRate:   decimal.RequireFromString("150.00"),
			WeeklyRate:  decimal.RequireFromString("900.00"),
			MileageRate: decimal.RequireFromString("0.50"),
			Capacity:    5,
			Features:    datatypes.JSON(`["leather","heated_seats","premium_audio"]`),
		},
	}
	if err := db.Create(&classes).Error; err != nil {
		return log.Err("failed to seed vehicle classes", err)
	}

	vehicles := []Vehicle{
		{UnitNumber: "A-101", Make: "Toyota", Model: "Corolla", Year: 2025, Color: "White",
			VIN: "JT2BF22K1W0123451", Mileage: 3_200, VehicleClassID: classes[0].ID, LocationID: locations[0].ID},
		{UnitNumber: "A-102", Make: "Honda", Model: "Civic", Year: 2024, Color: "Silver",
			VIN: "JT2BF22K1W0123452", Mileage: 18_500, VehicleClassID: classes[0].ID, LocationID: locations[0].ID},
		{UnitNumber: "A-103", Make: "Nissan", Model: "Versa", Year: 2019, Color: "Blue",
			VIN: "JT2BF22K1W0123453", Mileage: 112_000, VehicleClassID: classes[0].ID, LocationID: locations[1].ID},
		{UnitNumber: "B-201", Make: "Toyota", Model: "Camry", Year: 2024, Color: "Black",
			VIN: "JT2BF22K1W0123454", Mileage: 22_000, VehicleClassID: classes[1].ID, LocationID: locations[0].ID},
		{UnitNumber: "B-202", Make: "Honda", Model: "Accord", Year: 2023, Color: "Gray",
			VIN: "JT2BF22K1W0123455", Mileage: 41_000, VehicleClassID: classes[1].ID, LocationID: locations[1].ID},
		{UnitNumber: "C-301", Make: "Toyota", Model: "Highlander", Year: 2025, Color: "White",
			VIN: "JT2BF22K1W0123456", Mileage: 5_100, VehicleClassID: classes[2].ID, LocationID: locations[0].ID},
		{UnitNumber: "C-302", Make: "Ford", Model: "Explorer", Year: 2018, Color: "Red",
			VIN: "JT2BF22K1W0123457", Mileage: 98_000, VehicleClassID: classes[2].ID, LocationID: locations[2].ID},
		{UnitNumber: "D-401", Make: "BMW", Model: "530i", Year: 2024, Color: "Black",
			VIN: "JT2BF22K1W0123458", Mileage: 12_000, VehicleClassID: classes[3].ID, LocationID: locations[0].ID},
	}
	if err := db.Create(&vehicles).Error; err != nil {
		return log.Err("failed to seed vehicles", err)
	}

	customers := []Customer{
		{FirstName: "Ada", LastName: "Reyes", Email: "ada.reyes@example.com",
			Phone: "213-555-0190", LicenseNumber: "D1234567", City: "Los Angeles", State: "CA"},
		{FirstName: "Marcus", LastName: "Chen", Email: "marcus.chen@example.com",
			Phone: "415-555-0134", LicenseNumber: "D2345678", City: "San Francisco", State: "CA"},
		{FirstName: "Priya", LastName: "Natarajan", Email: "priya.natarajan@example.com",
			Phone: "619-555-0156", LicenseNumber: "D3456789", City: "San Diego", State: "CA"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return log.Err("failed to seed customers", err)
	}

	log.Info("Seed data loaded",
		"locations", len(locations),
		"vehicleClasses", len(classes),
		"vehicles", len(vehicles),
		"customers", len(customers),
	)

	return nil
}
