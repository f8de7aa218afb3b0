package reservationController

import (
	"time"

	. "rentall/internal/models"

	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

// Rate codes carrying a discount off the class daily rate. STANDARD and any
// unrecognized code bill at full price.
var rateMultipliers = map[string]decimal.Decimal{
	"WEEKEND":   decimal.RequireFromString("0.90"),
	"CORPORATE": decimal.RequireFromString("0.85"),
}

// estimateDays converts the rental window to fractional days, rounded to two
// decimal places. Partial days bill proportionally.
func estimateDays(dateOut, dateDue time.Time) decimal.Decimal {
	hours := decimal.NewFromFloat(dateDue.Sub(dateOut).Hours())
	return hours.Div(decimal.NewFromInt(hoursPerDay)).Round(2)
}

// estimateTotal prices the reservation: days at the class daily rate, plus
// projected mileage at the class mileage rate, then the rate-code multiplier.
// Rounded half-up to cents.
func estimateTotal(
	class *VehicleClass,
	rateCode string,
	estimatedDays decimal.Decimal,
	estimatedMiles *int,
) decimal.Decimal {
	total := class.DailyRate.Mul(estimatedDays)

	if estimatedMiles != nil && *estimatedMiles > 0 {
		miles := decimal.NewFromInt(int64(*estimatedMiles))
		total = total.Add(class.MileageRate.Mul(miles))
	}

	if multiplier, ok := rateMultipliers[rateCode]; ok {
		total = total.Mul(multiplier)
	}

	return total.Round(2)
}
