package services

import (
	"time"

	"github.com/shopspring/decimal"

	"memberclub/internal/models/db_models"
)

// Fixed discount multipliers for longer commitments: quarterly plans are
// 5% off the naive 3x monthly price, yearly plans 15% off the 12x price.
var (
	quarterlyMultiplier = decimal.RequireFromString("0.95")
	yearlyMultiplier    = decimal.RequireFromString("0.85")

	three  = decimal.NewFromInt(3)
	twelve = decimal.NewFromInt(12)
)

// BasePriceForTierLevel returns the monthly base price in INR for a tier
// level (1=SILVER, 2=GOLD, 3=PLATINUM).
func BasePriceForTierLevel(level int) decimal.Decimal {
	switch level {
	case 1:
		return decimal.NewFromInt(299)
	case 2:
		return decimal.NewFromInt(499)
	case 3:
		return decimal.NewFromInt(799)
	default:
		return decimal.NewFromInt(299)
	}
}

// PlanPrice derives a plan's price from the tier's monthly base price.
func PlanPrice(basePrice decimal.Decimal, planType db_models.PlanType) decimal.Decimal {
	switch planType {
	case db_models.PlanTypeQuarterly:
		return basePrice.Mul(three).Mul(quarterlyMultiplier).Round(2)
	case db_models.PlanTypeYearly:
		return basePrice.Mul(twelve).Mul(yearlyMultiplier).Round(2)
	default:
		return basePrice.Round(2)
	}
}

// MonthlyEquivalent is the per-month cost of a plan, 2dp half-up.
func MonthlyEquivalent(price decimal.Decimal, durationInMonths int) decimal.Decimal {
	return price.DivRound(decimal.NewFromInt(int64(durationInMonths)), 2)
}

// Savings is the amount saved by choosing this plan over paying the monthly
// baseline for the same number of months. Zero for monthly plans.
func Savings(price decimal.Decimal, durationInMonths int, monthlyBaseline decimal.Decimal) decimal.Decimal {
	return monthlyBaseline.Mul(decimal.NewFromInt(int64(durationInMonths))).Sub(price)
}

// ProRatedDelta computes the billing adjustment for swapping plans
// mid-term. Positive means the member owes money, negative is a credit.
// With no days remaining the full new plan price is charged (reactivation).
func ProRatedDelta(start, end, now time.Time, oldPrice, newPrice decimal.Decimal) decimal.Decimal {
	totalDays := db_models.DaysBetween(start, end)
	remainingDays := db_models.DaysBetween(now, end)

	if remainingDays <= 0 || totalDays <= 0 {
		return newPrice
	}

	remaining := decimal.NewFromInt(remainingDays)
	total := decimal.NewFromInt(totalDays)

	unusedOldValue := oldPrice.Mul(remaining).DivRound(total, 2)
	newProportionalCost := newPrice.Mul(remaining).DivRound(total, 2)

	return newProportionalCost.Sub(unusedOldValue)
}
