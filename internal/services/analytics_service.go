package services

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"memberclub/internal/models/db_models"
	"memberclub/internal/models/response_models"
	"memberclub/internal/repositories"
	"memberclub/pkg/utils"
)

type AnalyticsServiceInterface interface {
	GetAnalytics(ctx context.Context) (response_models.AnalyticsResponse, error)
	GetHealth(ctx context.Context) (response_models.HealthResponse, error)
}

type AnalyticsService struct {
	subRepo  repositories.ISubscriptionRepository
	planRepo repositories.IPlanRepository
	tierRepo repositories.ITierRepository
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewAnalyticsService(
	subRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
	tierRepo repositories.ITierRepository,
	logger *zap.SugaredLogger,
) AnalyticsServiceInterface {
	return &AnalyticsService{
		subRepo:  subRepo,
		planRepo: planRepo,
		tierRepo: tierRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// GetAnalytics folds over the full subscription collection on every call;
// this is a point-in-time read, not a hot path.
func (a *AnalyticsService) GetAnalytics(ctx context.Context) (response_models.AnalyticsResponse, error) {
	allSubs, err := a.subRepo.FindAllSubscriptions(ctx)
	if err != nil {
		return response_models.AnalyticsResponse{}, utils.ErrDatabaseError
	}

	activePlans, err := a.planRepo.FindActivePlans(ctx)
	if err != nil {
		return response_models.AnalyticsResponse{}, utils.ErrDatabaseError
	}

	activeSubs := lo.Filter(allSubs, func(s db_models.Subscription, _ int) bool {
		return s.Status == db_models.SubStatusActive
	})

	totalRevenue := decimal.Zero
	for _, sub := range activeSubs {
		totalRevenue = totalRevenue.Add(sub.PaidAmount)
	}

	// Average is across all subscriptions, not just active ones.
	averageRevenue := decimal.Zero
	if len(allSubs) > 0 {
		averageRevenue = totalRevenue.DivRound(decimal.NewFromInt(int64(len(allSubs))), 2)
	}

	tierPopularity := lo.CountValuesBy(activeSubs, func(s db_models.Subscription) string {
		return s.Plan.Tier.Name
	})
	planTypeDistribution := lo.CountValuesBy(activeSubs, func(s db_models.Subscription) string {
		return string(s.Plan.Type)
	})

	return response_models.AnalyticsResponse{
		Revenue: response_models.RevenueAnalytics{
			TotalRevenue:                  totalRevenue,
			Currency:                      "INR",
			AverageRevenuePerSubscription: averageRevenue,
		},
		Membership: response_models.MembershipAnalytics{
			TierPopularity:       tierPopularity,
			PlanTypeDistribution: planTypeDistribution,
			TotalActivePlans:     len(activePlans),
		},
		Summary: response_models.AnalyticsSummary{
			TotalSubscriptions:  len(allSubs),
			ActiveSubscriptions: len(activeSubs),
			GeneratedAt:         a.now(),
		},
	}, nil
}

func (a *AnalyticsService) GetHealth(ctx context.Context) (response_models.HealthResponse, error) {
	allSubs, err := a.subRepo.FindAllSubscriptions(ctx)
	if err != nil {
		return response_models.HealthResponse{}, utils.ErrDatabaseError
	}

	activePlans, err := a.planRepo.FindActivePlans(ctx)
	if err != nil {
		return response_models.HealthResponse{}, utils.ErrDatabaseError
	}

	tiers, err := a.tierRepo.FindAllTiers(ctx)
	if err != nil {
		return response_models.HealthResponse{}, utils.ErrDatabaseError
	}

	activeSubs := lo.Filter(allSubs, func(s db_models.Subscription, _ int) bool {
		return s.Status == db_models.SubStatusActive
	})

	subscribedUsers := lo.UniqBy(allSubs, func(s db_models.Subscription) int64 {
		return s.UserID
	})

	return response_models.HealthResponse{
		Status:    "UP",
		Timestamp: a.now(),
		Version:   "1.0.0",
		Metrics: response_models.HealthMetrics{
			TotalUsers:          len(subscribedUsers),
			ActiveSubscriptions: len(activeSubs),
			AvailablePlans:      len(activePlans),
			MembershipTiers:     len(tiers),
			TierDistribution: lo.CountValuesBy(activeSubs, func(s db_models.Subscription) string {
				return s.Plan.Tier.Name
			}),
		},
	}, nil
}
