package services

import (
	"testing"
	"time"

	"memberclub/internal/models/db_models"
)

func TestPlanPrice(t *testing.T) {
	cases := []struct {
		level    int
		planType db_models.PlanType
		expected string
	}{
		{1, db_models.PlanTypeMonthly, "299"},
		{1, db_models.PlanTypeQuarterly, "852.15"},
		{1, db_models.PlanTypeYearly, "3049.80"},
		{2, db_models.PlanTypeMonthly, "499"},
		{2, db_models.PlanTypeQuarterly, "1422.15"},
		{2, db_models.PlanTypeYearly, "5089.80"},
		{3, db_models.PlanTypeMonthly, "799"},
		{3, db_models.PlanTypeQuarterly, "2277.15"},
		{3, db_models.PlanTypeYearly, "8149.80"},
	}

	for _, tc := range cases {
		got := PlanPrice(BasePriceForTierLevel(tc.level), tc.planType)
		if !got.Equal(dec(t, tc.expected)) {
			t.Errorf("level %d %s: expected %s, got %s", tc.level, tc.planType, tc.expected, got)
		}
	}
}

func TestBasePriceForUnknownLevelFallsBackToLowest(t *testing.T) {
	assertDecimal(t, "299", BasePriceForTierLevel(0))
	assertDecimal(t, "299", BasePriceForTierLevel(99))
}

func TestMonthlyEquivalent(t *testing.T) {
	assertDecimal(t, "254.15", MonthlyEquivalent(dec(t, "3049.80"), 12))
	assertDecimal(t, "284.05", MonthlyEquivalent(dec(t, "852.15"), 3))
	assertDecimal(t, "499", MonthlyEquivalent(dec(t, "499"), 1))
}

func TestSavings(t *testing.T) {
	// Yearly SILVER vs paying monthly for 12 months.
	assertDecimal(t, "538.20", Savings(dec(t, "3049.80"), 12, dec(t, "299")))
	// Quarterly GOLD.
	assertDecimal(t, "74.85", Savings(dec(t, "1422.15"), 3, dec(t, "499")))
	// Monthly plan saves nothing against itself.
	assertDecimal(t, "0", Savings(dec(t, "299"), 1, dec(t, "299")))
}

func TestProRatedDeltaFullTermEqualsFlatDifference(t *testing.T) {
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	delta := ProRatedDelta(start, end, start, dec(t, "499"), dec(t, "799"))
	assertDecimal(t, "300", delta)
}

func TestProRatedDeltaMidTerm(t *testing.T) {
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0) // 31 days
	now := start.AddDate(0, 0, 10) // 21 days remain

	// 799*21/31 = 541.26, 499*21/31 = 338.03, each rounded half-up.
	delta := ProRatedDelta(start, end, now, dec(t, "499"), dec(t, "799"))
	assertDecimal(t, "203.23", delta)
}

func TestProRatedDeltaDowngradeCredits(t *testing.T) {
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	delta := ProRatedDelta(start, end, start, dec(t, "799"), dec(t, "299"))
	assertDecimal(t, "-500", delta)
}

func TestProRatedDeltaExpiredTermChargesFullNewPrice(t *testing.T) {
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	now := end.AddDate(0, 0, 5)

	delta := ProRatedDelta(start, end, now, dec(t, "499"), dec(t, "799"))
	assertDecimal(t, "799", delta)
}

func TestProRatedDeltaDegenerateTerm(t *testing.T) {
	at := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	delta := ProRatedDelta(at, at, at, dec(t, "499"), dec(t, "799"))
	assertDecimal(t, "799", delta)
}
