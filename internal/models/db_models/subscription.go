package db_models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "ACTIVE"
	SubStatusExpired   SubscriptionStatus = "EXPIRED"
	SubStatusCancelled SubscriptionStatus = "CANCELLED"
	SubStatusSuspended SubscriptionStatus = "SUSPENDED"
	SubStatusPending   SubscriptionStatus = "PENDING"
)

func ParseSubscriptionStatus(s string) (SubscriptionStatus, bool) {
	switch SubscriptionStatus(s) {
	case SubStatusActive, SubStatusExpired, SubStatusCancelled, SubStatusSuspended, SubStatusPending:
		return SubscriptionStatus(s), true
	}
	return "", false
}

// allowedTransitions is the single source of truth for the subscription
// state machine. CANCELLED is terminal.
var allowedTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubStatusActive:    {SubStatusCancelled, SubStatusSuspended, SubStatusExpired},
	SubStatusPending:   {SubStatusActive, SubStatusCancelled},
	SubStatusSuspended: {SubStatusActive, SubStatusCancelled},
	SubStatusExpired:   {SubStatusActive},
	SubStatusCancelled: {},
}

// CanTransitionTo reports whether the lifecycle table permits moving from s to next.
func (s SubscriptionStatus) CanTransitionTo(next SubscriptionStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Subscription is the mutable aggregate root linking a user to a plan.
// Lifecycle operations only ever change status; rows are never deleted.
type Subscription struct {
	BaseModel
	UserID int64 `gorm:"not null;index" json:"userId"`
	PlanID int64 `gorm:"not null;index" json:"planId"`

	Status          SubscriptionStatus `gorm:"not null;index" json:"status"`
	StartDate       time.Time          `gorm:"not null" json:"startDate"`
	EndDate         time.Time          `gorm:"not null" json:"endDate"`
	NextBillingDate time.Time          `gorm:"not null" json:"nextBillingDate"`

	// Net amount attributed to this subscription in INR. Pro-rated plan
	// changes adjust it up or down; a negative value is an open credit.
	PaidAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"paidAmount"`

	AutoRenewal        bool       `gorm:"not null" json:"autoRenewal"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`

	User User           `gorm:"foreignKey:UserID" json:"-"`
	Plan MembershipPlan `gorm:"foreignKey:PlanID" json:"-"`
}

// IsActive reports whether the subscription is currently usable.
func (s *Subscription) IsActive(now time.Time) bool {
	return s.Status == SubStatusActive && now.Before(s.EndDate)
}

// IsExpired reports whether the subscription has run out.
func (s *Subscription) IsExpired(now time.Time) bool {
	return s.Status == SubStatusExpired || now.After(s.EndDate)
}

// DaysRemaining returns full days left in the term, 0 once expired.
func (s *Subscription) DaysRemaining(now time.Time) int64 {
	if s.IsExpired(now) {
		return 0
	}
	return DaysBetween(now, s.EndDate)
}

// DaysBetween counts full days from a to b, truncating partial days.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int64 {
	return int64(b.Sub(a).Hours() / 24)
}
