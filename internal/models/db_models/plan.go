package db_models

import (
	"github.com/shopspring/decimal"
)

type PlanType string

const (
	PlanTypeMonthly   PlanType = "MONTHLY"
	PlanTypeQuarterly PlanType = "QUARTERLY"
	PlanTypeYearly    PlanType = "YEARLY"
)

// PlanTypeDurations maps each plan type to its duration in months.
var PlanTypeDurations = map[PlanType]int{
	PlanTypeMonthly:   1,
	PlanTypeQuarterly: 3,
	PlanTypeYearly:    12,
}

func ParsePlanType(s string) (PlanType, bool) {
	switch PlanType(s) {
	case PlanTypeMonthly, PlanTypeQuarterly, PlanTypeYearly:
		return PlanType(s), true
	}
	return "", false
}

// MembershipPlan is a purchasable (tier, duration) pairing. Prices are
// frozen once a subscription references the plan; paidAmount never follows
// later price edits.
type MembershipPlan struct {
	BaseModel
	Name             string          `gorm:"not null" json:"name"`
	Description      string          `gorm:"not null" json:"description"`
	Type             PlanType        `gorm:"not null" json:"type"`
	Price            decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	DurationInMonths int             `gorm:"not null" json:"durationInMonths"`
	IsActive         bool            `gorm:"not null;default:true" json:"isActive"`

	TierID int64          `gorm:"not null;index" json:"tierId"`
	Tier   MembershipTier `gorm:"foreignKey:TierID" json:"-"`
}
