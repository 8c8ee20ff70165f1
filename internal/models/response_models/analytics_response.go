package response_models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RevenueAnalytics struct {
	TotalRevenue                  decimal.Decimal `json:"totalRevenue"`
	Currency                      string          `json:"currency"`
	AverageRevenuePerSubscription decimal.Decimal `json:"averageRevenuePerSubscription"`
}

type MembershipAnalytics struct {
	TierPopularity       map[string]int `json:"tierPopularity"`
	PlanTypeDistribution map[string]int `json:"planTypeDistribution"`
	TotalActivePlans     int            `json:"totalActivePlans"`
}

type AnalyticsSummary struct {
	TotalSubscriptions  int       `json:"totalSubscriptions"`
	ActiveSubscriptions int       `json:"activeSubscriptions"`
	GeneratedAt         time.Time `json:"generatedAt"`
}

type AnalyticsResponse struct {
	Revenue    RevenueAnalytics    `json:"revenue"`
	Membership MembershipAnalytics `json:"membership"`
	Summary    AnalyticsSummary    `json:"summary"`
}

type HealthMetrics struct {
	TotalUsers          int            `json:"totalUsers"`
	ActiveSubscriptions int            `json:"activeSubscriptions"`
	AvailablePlans      int            `json:"availablePlans"`
	MembershipTiers     int            `json:"membershipTiers"`
	TierDistribution    map[string]int `json:"tierDistribution"`
}

type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Version   string        `json:"version"`
	Metrics   HealthMetrics `json:"metrics"`
}
