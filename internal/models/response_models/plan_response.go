package response_models

import "github.com/shopspring/decimal"

// MembershipPlanResponse combines plan data with tier benefits plus the
// derived monthly-equivalent price and savings against the monthly baseline.
type MembershipPlanResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Type             string          `json:"type"`
	Price            decimal.Decimal `json:"price"`
	DurationInMonths int             `json:"durationInMonths"`
	IsActive         bool            `json:"isActive"`

	Tier               string          `json:"tier"`
	TierLevel          int             `json:"tierLevel"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	FreeDelivery       bool            `json:"freeDelivery"`
	ExclusiveDeals     bool            `json:"exclusiveDeals"`
	EarlyAccess        bool            `json:"earlyAccess"`
	PrioritySupport    bool            `json:"prioritySupport"`
	MaxCouponsPerMonth int             `json:"maxCouponsPerMonth"`
	DeliveryDays       int             `json:"deliveryDays"`
	AdditionalBenefits string          `json:"additionalBenefits"`

	MonthlyPrice decimal.Decimal `json:"monthlyPrice"`
	Savings      decimal.Decimal `json:"savings"`
}
