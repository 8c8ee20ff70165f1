package response_models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubscriptionResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`

	PlanID    int64  `json:"planId"`
	PlanName  string `json:"planName"`
	PlanType  string `json:"planType"`
	Tier      string `json:"tier"`
	TierLevel int    `json:"tierLevel"`

	PaidAmount      decimal.Decimal `json:"paidAmount"`
	Status          string          `json:"status"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	NextBillingDate time.Time       `json:"nextBillingDate"`
	AutoRenewal     bool            `json:"autoRenewal"`

	DaysRemaining int64 `json:"daysRemaining"`
	IsActive      bool  `json:"isActive"`

	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`

	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	FreeDelivery       bool            `json:"freeDelivery"`
	ExclusiveDeals     bool            `json:"exclusiveDeals"`
	EarlyAccess        bool            `json:"earlyAccess"`
	PrioritySupport    bool            `json:"prioritySupport"`
	MaxCouponsPerMonth int             `json:"maxCouponsPerMonth"`
	DeliveryDays       int             `json:"deliveryDays"`
	AdditionalBenefits string          `json:"additionalBenefits"`
}
