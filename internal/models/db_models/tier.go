package db_models

import (
	"github.com/shopspring/decimal"
)

// MembershipTier is seeded once at startup and never mutated afterwards.
// Level ranks the tiers: 1=SILVER, 2=GOLD, 3=PLATINUM.
type MembershipTier struct {
	BaseModel
	Name               string          `gorm:"uniqueIndex;not null" json:"name"`
	Description        string          `gorm:"not null" json:"description"`
	Level              int             `gorm:"not null" json:"level"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"discountPercentage"`
	FreeDelivery       bool            `gorm:"not null" json:"freeDelivery"`
	ExclusiveDeals     bool            `gorm:"not null" json:"exclusiveDeals"`
	EarlyAccess        bool            `gorm:"not null" json:"earlyAccess"`
	PrioritySupport    bool            `gorm:"not null" json:"prioritySupport"`
	MaxCouponsPerMonth int             `gorm:"not null" json:"maxCouponsPerMonth"`
	DeliveryDays       int             `gorm:"not null" json:"deliveryDays"`
	AdditionalBenefits string          `gorm:"type:text" json:"additionalBenefits"`

	Plans []MembershipPlan `gorm:"foreignKey:TierID" json:"-"`
}

// DefaultTiers returns the three fixed tiers the system ships with.
func DefaultTiers() []MembershipTier {
	return []MembershipTier{
		{
			Name:               "SILVER",
			Description:        "Essential benefits for new members",
			Level:              1,
			DiscountPercentage: decimal.NewFromFloat(5.00),
			FreeDelivery:       false,
			ExclusiveDeals:     false,
			EarlyAccess:        false,
			PrioritySupport:    false,
			MaxCouponsPerMonth: 2,
			DeliveryDays:       5,
			AdditionalBenefits: "Basic member perks and content access",
		},
		{
			Name:               "GOLD",
			Description:        "Premium benefits with free delivery",
			Level:              2,
			DiscountPercentage: decimal.NewFromFloat(10.00),
			FreeDelivery:       true,
			ExclusiveDeals:     true,
			EarlyAccess:        true,
			PrioritySupport:    false,
			MaxCouponsPerMonth: 5,
			DeliveryDays:       3,
			AdditionalBenefits: "Free delivery, exclusive deals, early sale access",
		},
		{
			Name:               "PLATINUM",
			Description:        "Ultimate tier with all premium features",
			Level:              3,
			DiscountPercentage: decimal.NewFromFloat(15.00),
			FreeDelivery:       true,
			ExclusiveDeals:     true,
			EarlyAccess:        true,
			PrioritySupport:    true,
			MaxCouponsPerMonth: 10,
			DeliveryDays:       1,
			AdditionalBenefits: "All benefits plus priority support and same-day delivery",
		},
	}
}
