package utils

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrTierNotFound         = errors.New("tier not found")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")

	ErrEmailExists               = errors.New("email already exists")
	ErrActiveSubscriptionExists  = errors.New("user already has an active subscription")
	ErrUserHasActiveSubscription = errors.New("user has an active subscription")

	ErrInvalidStatusTransition   = errors.New("invalid status transition")
	ErrInvalidSubscriptionStatus = errors.New("operation not allowed for subscription status")
	ErrInvalidUpgrade            = errors.New("new plan must be higher tier or longer duration")
	ErrInvalidDowngrade          = errors.New("new plan must be of lower tier")

	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidPlanID     = errors.New("invalid plan id")
	ErrInvalidPlanType   = errors.New("invalid plan type")
	ErrInvalidUserStatus = errors.New("invalid user status")
	ErrInactivePlan      = errors.New("cannot subscribe to inactive plan")
	ErrInvalidPhone      = errors.New("invalid indian phone number")
	ErrInvalidPincode    = errors.New("invalid indian pincode")

	ErrDatabaseError = errors.New("database error")
)
