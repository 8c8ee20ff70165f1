package request_models

type SubscriptionRequest struct {
	UserID      int64 `json:"userId" binding:"required"`
	PlanID      int64 `json:"planId" binding:"required"`
	AutoRenewal bool  `json:"autoRenewal"`
}

// SubscriptionUpdateRequest carries a partial update; nil fields are left
// untouched.
type SubscriptionUpdateRequest struct {
	AutoRenewal *bool   `json:"autoRenewal,omitempty"`
	NewPlanID   *int64  `json:"newPlanId,omitempty"`
	Status      *string `json:"status,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

type CancelSubscriptionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type PlanChangeRequest struct {
	NewPlanID int64 `json:"newPlanId" binding:"required"`
}
