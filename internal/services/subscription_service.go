package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"memberclub/internal/models/db_models"
	"memberclub/internal/models/request_models"
	"memberclub/internal/models/response_models"
	"memberclub/internal/repositories"
	"memberclub/pkg/utils"
)

const defaultCancellationReason = "Updated via API"

// renewalWindow is how far ahead of nextBillingDate the renewal sweep
// extends auto-renewing subscriptions.
const renewalWindow = 24 * time.Hour

type SubscriptionServiceInterface interface {
	CreateSubscription(ctx context.Context, req request_models.SubscriptionRequest) (response_models.SubscriptionResponse, error)
	UpdateSubscription(ctx context.Context, id int64, req request_models.SubscriptionUpdateRequest) (response_models.SubscriptionResponse, error)
	CancelSubscription(ctx context.Context, id int64, reason string) (response_models.SubscriptionResponse, error)
	RenewSubscription(ctx context.Context, id int64) (response_models.SubscriptionResponse, error)
	UpgradeSubscription(ctx context.Context, id int64, newPlanID int64) (response_models.SubscriptionResponse, error)
	DowngradeSubscription(ctx context.Context, id int64, newPlanID int64) (response_models.SubscriptionResponse, error)

	GetSubscriptionByID(ctx context.Context, id int64) (response_models.SubscriptionResponse, error)
	GetActiveSubscription(ctx context.Context, userID int64) (response_models.SubscriptionResponse, error)
	GetUserSubscriptions(ctx context.Context, userID int64) ([]response_models.SubscriptionResponse, error)
	GetAllSubscriptions(ctx context.Context) ([]response_models.SubscriptionResponse, error)

	ProcessExpiredSubscriptions(ctx context.Context) (int, error)
	ProcessRenewals(ctx context.Context) (int, error)
}

type SubscriptionService struct {
	subRepo  repositories.ISubscriptionRepository
	planRepo repositories.IPlanRepository
	userRepo repositories.IUserRepository
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewSubscriptionService(
	subRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
	userRepo repositories.IUserRepository,
	logger *zap.SugaredLogger,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subRepo:  subRepo,
		planRepo: planRepo,
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *SubscriptionService) CreateSubscription(ctx context.Context, req request_models.SubscriptionRequest) (response_models.SubscriptionResponse, error) {
	if req.UserID <= 0 {
		return response_models.SubscriptionResponse{}, utils.ErrInvalidUserID
	}
	if req.PlanID <= 0 {
		return response_models.SubscriptionResponse{}, utils.ErrInvalidPlanID
	}

	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.SubscriptionResponse{}, utils.ErrUserNotFound
	}

	plan, err := s.planRepo.FindPlanByID(ctx, req.PlanID)
	if err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.SubscriptionResponse{}, utils.ErrPlanNotFound
	}
	if !plan.IsActive {
		return response_models.SubscriptionResponse{}, utils.ErrInactivePlan
	}

	now := s.now()

	existing, err := s.subRepo.FindActiveSubscriptionForUser(ctx, req.UserID, now)
	if err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.SubscriptionResponse{}, utils.ErrActiveSubscriptionExists
	}

	endDate := now.AddDate(0, plan.DurationInMonths, 0)

	sub := db_models.Subscription{
		UserID:          user.ID,
		PlanID:          plan.ID,
		Status:          db_models.SubStatusActive,
		StartDate:       now,
		EndDate:         endDate,
		NextBillingDate: endDate,
		PaidAmount:      plan.Price,
		AutoRenewal:     req.AutoRenewal,
		User:            *user,
		Plan:            *plan,
	}

	if err := s.subRepo.CreateSubscription(ctx, &sub); err != nil {
		// The partial unique index on (user_id) WHERE status='ACTIVE'
		// closes the check-then-insert race under concurrent requests.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response_models.SubscriptionResponse{}, utils.ErrActiveSubscriptionExists
		}
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}

	s.logger.Infow("subscription created",
		"subscription_id", sub.ID, "user_id", user.ID, "plan", plan.Name)

	return s.convert(sub), nil
}

func (s *SubscriptionService) UpdateSubscription(ctx context.Context, id int64, req request_models.SubscriptionUpdateRequest) (response_models.SubscriptionResponse, error) {
	sub, err := s.findSubscription(ctx, id)
	if err != nil {
		return response_models.SubscriptionResponse{}, err
	}

	now := s.now()
	hasChanges := false

	if req.AutoRenewal != nil && *req.AutoRenewal != sub.AutoRenewal {
		sub.AutoRenewal = *req.AutoRenewal
		hasChanges = true
	}

	if req.NewPlanID != nil {
		if *req.NewPlanID <= 0 {
			return response_models.SubscriptionResponse{}, utils.ErrInvalidPlanID
		}
		if *req.NewPlanID != sub.PlanID {
			newPlan, err := s.loadActivePlan(ctx, *req.NewPlanID)
			if err != nil {
				return response_models.SubscriptionResponse{}, err
			}
			s.applyPlanChange(sub, newPlan, now)
			hasChanges = true
		}
	}

	if req.Status != nil {
		newStatus, ok := db_models.ParseSubscriptionStatus(*req.Status)
		if !ok {
			return response_models.SubscriptionResponse{}, utils.ErrInvalidStatusTransition
		}
		if newStatus != sub.Status {
			if !sub.Status.CanTransitionTo(newStatus) {
				return response_models.SubscriptionResponse{}, utils.ErrInvalidStatusTransition
			}
			sub.Status = newStatus
			if newStatus == db_models.SubStatusCancelled {
				reason := defaultCancellationReason
				if req.Reason != nil {
					reason = *req.Reason
				}
				cancelledAt := now
				sub.CancelledAt = &cancelledAt
				sub.CancellationReason = reason
				sub.AutoRenewal = false
			}
			hasChanges = true
		}
	}

	if !hasChanges {
		s.logger.Debugw("no changes detected for subscription update", "subscription_id", id)
		return s.convert(*sub), nil
	}

	if err := s.subRepo.SaveSubscription(ctx, sub); err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}

	s.logger.Infow("subscription updated", "subscription_id", id)
	return s.convert(*sub), nil
}

func (s *SubscriptionService) CancelSubscription(ctx context.Context, id int64, reason string) (response_models.SubscriptionResponse, error) {
	sub, err := s.findSubscription(ctx, id)
	if err != nil {
		return response_models.SubscriptionResponse{}, err
	}

	if sub.Status != db_models.SubStatusActive {
		return response_models.SubscriptionResponse{}, utils.ErrInvalidSubscriptionStatus
	}

	cancelledAt := s.now()
	sub.Status = db_models.SubStatusCancelled
	sub.CancelledAt = &cancelledAt
	sub.CancellationReason = reason
	sub.AutoRenewal = false

	if err := s.subRepo.SaveSubscription(ctx, sub); err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}

	s.logger.Infow("subscription cancelled", "subscription_id", id, "reason", reason)
	return s.convert(*sub), nil
}

// RenewSubscription restarts an EXPIRED subscription from "now", not from
// the old end date. paidAmount is intentionally untouched.
func (s *SubscriptionService) RenewSubscription(ctx context.Context, id int64) (response_models.SubscriptionResponse, error) {
	sub, err := s.findSubscription(ctx, id)
	if err != nil {
		return response_models.SubscriptionResponse{}, err
	}

	if sub.Status != db_models.SubStatusExpired {
		return response_models.SubscriptionResponse{}, utils.ErrInvalidSubscriptionStatus
	}

	now := s.now()
	endDate := now.AddDate(0, sub.Plan.DurationInMonths, 0)

	sub.Status = db_models.SubStatusActive
	sub.StartDate = now
	sub.EndDate = endDate
	sub.NextBillingDate = endDate

	if err := s.subRepo.SaveSubscription(ctx, sub); err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}

	s.logger.Infow("subscription renewed", "subscription_id", id)
	return s.convert(*sub), nil
}

// UpgradeSubscription moves an ACTIVE subscription to a higher tier, or to
// a longer duration within the same tier. The pro-rated delta for the
// remaining term is charged; with the full period remaining this equals
// the flat price difference.
func (s *SubscriptionService) UpgradeSubscription(ctx context.Context, id int64, newPlanID int64) (response_models.SubscriptionResponse, error) {
	sub, err := s.findSubscription(ctx, id)
	if err != nil {
		return response_models.SubscriptionResponse{}, err
	}

	if sub.Status != db_models.SubStatusActive {
		return response_models.SubscriptionResponse{}, utils.ErrInvalidSubscriptionStatus
	}

	newPlan, err := s.loadActivePlan(ctx, newPlanID)
	if err != nil {
		return response_models.SubscriptionResponse{}, err
	}

	currentPlan := sub.Plan
	isUpgrade := newPlan.Tier.Level > currentPlan.Tier.Level ||
		(newPlan.Tier.Level == currentPlan.Tier.Level &&
			newPlan.DurationInMonths > currentPlan.DurationInMonths)

	if !isUpgrade {
		return response_models.SubscriptionResponse{}, utils.ErrInvalidUpgrade
	}

	s.applyPlanChange(sub, newPlan, s.now())

	if err := s.subRepo.SaveSubscription(ctx, sub); err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}

	s.logger.Infow("subscription upgraded",
		"subscription_id", id, "from", currentPlan.Name, "to", newPlan.Name)
	return s.convert(*sub), nil
}

// DowngradeSubscription moves an ACTIVE subscription to a lower tier. The
// same pro-ration as upgrades applies, which normally credits paidAmount.
func (s *SubscriptionService) DowngradeSubscription(ctx context.Context, id int64, newPlanID int64) (response_models.SubscriptionResponse, error) {
	sub, err := s.findSubscription(ctx, id)
	if err != nil {
		return response_models.SubscriptionResponse{}, err
	}

	if sub.Status != db_models.SubStatusActive {
		return response_models.SubscriptionResponse{}, utils.ErrInvalidSubscriptionStatus
	}

	newPlan, err := s.loadActivePlan(ctx, newPlanID)
	if err != nil {
		return response_models.SubscriptionResponse{}, err
	}

	if newPlan.Tier.Level >= sub.Plan.Tier.Level {
		return response_models.SubscriptionResponse{}, utils.ErrInvalidDowngrade
	}

	from := sub.Plan.Name
	s.applyPlanChange(sub, newPlan, s.now())

	if err := s.subRepo.SaveSubscription(ctx, sub); err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}

	s.logger.Infow("subscription downgraded",
		"subscription_id", id, "from", from, "to", newPlan.Name)
	return s.convert(*sub), nil
}

func (s *SubscriptionService) GetSubscriptionByID(ctx context.Context, id int64) (response_models.SubscriptionResponse, error) {
	sub, err := s.findSubscription(ctx, id)
	if err != nil {
		return response_models.SubscriptionResponse{}, err
	}
	return s.convert(*sub), nil
}

func (s *SubscriptionService) GetActiveSubscription(ctx context.Context, userID int64) (response_models.SubscriptionResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.SubscriptionResponse{}, utils.ErrUserNotFound
	}

	sub, err := s.subRepo.FindActiveSubscriptionForUser(ctx, userID, s.now())
	if err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}
	if sub == nil {
		return response_models.SubscriptionResponse{}, utils.ErrSubscriptionNotFound
	}
	return s.convert(*sub), nil
}

func (s *SubscriptionService) GetUserSubscriptions(ctx context.Context, userID int64) ([]response_models.SubscriptionResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	subs, err := s.subRepo.FindSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.convertAll(subs), nil
}

func (s *SubscriptionService) GetAllSubscriptions(ctx context.Context) ([]response_models.SubscriptionResponse, error) {
	subs, err := s.subRepo.FindAllSubscriptions(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.convertAll(subs), nil
}

// ProcessExpiredSubscriptions sweeps every ACTIVE subscription past its end
// date into EXPIRED. Safe to run repeatedly; a failing record is logged and
// skipped so it never aborts the batch.
func (s *SubscriptionService) ProcessExpiredSubscriptions(ctx context.Context) (int, error) {
	subs, err := s.subRepo.FindSubscriptionsByStatus(ctx, db_models.SubStatusActive)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	now := s.now()
	processed := 0
	for i := range subs {
		sub := &subs[i]
		if !sub.EndDate.Before(now) {
			continue
		}
		sub.Status = db_models.SubStatusExpired
		if err := s.subRepo.SaveSubscription(ctx, sub); err != nil {
			s.logger.Errorw("failed to expire subscription",
				"subscription_id", sub.ID, "error", err)
			continue
		}
		processed++
	}

	s.logger.Infow("processed expired subscriptions", "count", processed)
	return processed, nil
}

// ProcessRenewals extends every auto-renewing ACTIVE subscription whose
// next billing date falls within the renewal window.
func (s *SubscriptionService) ProcessRenewals(ctx context.Context) (int, error) {
	now := s.now()
	subs, err := s.subRepo.FindSubscriptionsDueForRenewal(ctx, now.Add(renewalWindow))
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	processed := 0
	for i := range subs {
		sub := &subs[i]
		newEndDate := sub.EndDate.AddDate(0, sub.Plan.DurationInMonths, 0)
		sub.EndDate = newEndDate
		sub.NextBillingDate = newEndDate
		if err := s.subRepo.SaveSubscription(ctx, sub); err != nil {
			s.logger.Errorw("failed to renew subscription",
				"subscription_id", sub.ID, "error", err)
			continue
		}
		processed++
	}

	s.logger.Infow("processed subscription renewals", "count", processed)
	return processed, nil
}

func (s *SubscriptionService) findSubscription(ctx context.Context, id int64) (*db_models.Subscription, error) {
	sub, err := s.subRepo.FindSubscriptionByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (s *SubscriptionService) loadActivePlan(ctx context.Context, planID int64) (*db_models.MembershipPlan, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	if !plan.IsActive {
		return nil, utils.ErrInactivePlan
	}
	return plan, nil
}

// applyPlanChange is the single pro-ration path used by update, upgrade and
// downgrade: swap the plan, recompute the term from the original start date
// and the new duration, and settle the remaining-term price difference.
func (s *SubscriptionService) applyPlanChange(sub *db_models.Subscription, newPlan *db_models.MembershipPlan, now time.Time) {
	delta := ProRatedDelta(sub.StartDate, sub.EndDate, now, sub.Plan.Price, newPlan.Price)

	sub.PlanID = newPlan.ID
	sub.Plan = *newPlan

	newEndDate := sub.StartDate.AddDate(0, newPlan.DurationInMonths, 0)
	sub.EndDate = newEndDate
	sub.NextBillingDate = newEndDate
	sub.PaidAmount = sub.PaidAmount.Add(delta)
}

func (s *SubscriptionService) convertAll(subs []db_models.Subscription) []response_models.SubscriptionResponse {
	result := make([]response_models.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		result = append(result, s.convert(sub))
	}
	return result
}

func (s *SubscriptionService) convert(sub db_models.Subscription) response_models.SubscriptionResponse {
	now := s.now()
	return response_models.SubscriptionResponse{
		ID:                 sub.ID,
		UserID:             sub.UserID,
		UserName:           sub.User.Name,
		UserEmail:          sub.User.Email,
		PlanID:             sub.PlanID,
		PlanName:           sub.Plan.Name,
		PlanType:           string(sub.Plan.Type),
		Tier:               sub.Plan.Tier.Name,
		TierLevel:          sub.Plan.Tier.Level,
		PaidAmount:         sub.PaidAmount,
		Status:             string(sub.Status),
		StartDate:          sub.StartDate,
		EndDate:            sub.EndDate,
		NextBillingDate:    sub.NextBillingDate,
		AutoRenewal:        sub.AutoRenewal,
		DaysRemaining:      sub.DaysRemaining(now),
		IsActive:           sub.IsActive(now),
		CancelledAt:        sub.CancelledAt,
		CancellationReason: sub.CancellationReason,
		DiscountPercentage: sub.Plan.Tier.DiscountPercentage,
		FreeDelivery:       sub.Plan.Tier.FreeDelivery,
		ExclusiveDeals:     sub.Plan.Tier.ExclusiveDeals,
		EarlyAccess:        sub.Plan.Tier.EarlyAccess,
		PrioritySupport:    sub.Plan.Tier.PrioritySupport,
		MaxCouponsPerMonth: sub.Plan.Tier.MaxCouponsPerMonth,
		DeliveryDays:       sub.Plan.Tier.DeliveryDays,
		AdditionalBenefits: sub.Plan.Tier.AdditionalBenefits,
	}
}
