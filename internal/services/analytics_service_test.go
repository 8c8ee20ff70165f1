package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberclub/internal/models/request_models"
)

func newTestAnalyticsService(store *memStore, clock *testClock) *AnalyticsService {
	return &AnalyticsService{
		subRepo:  store,
		planRepo: store,
		tierRepo: store,
		logger:   testLogger(),
		now:      clock.Now,
	}
}

func analyticsFixture(t *testing.T) (*memStore, *testClock) {
	t.Helper()
	store := newMemStore()
	clock := newTestClock()
	seedTestCatalog(t, store)
	subSvc := newTestSubscriptionService(store, clock)
	ctx := context.Background()

	// One active GOLD monthly, one cancelled SILVER monthly.
	user1 := seedTestUser(t, store, "karan@example.com")
	user2 := seedTestUser(t, store, "ananya@example.com")

	_, err := subSvc.CreateSubscription(ctx, request_models.SubscriptionRequest{
		UserID: user1,
		PlanID: planIDByName(t, store, "GOLD Monthly"),
	})
	require.NoError(t, err)

	cancelled, err := subSvc.CreateSubscription(ctx, request_models.SubscriptionRequest{
		UserID: user2,
		PlanID: planIDByName(t, store, "SILVER Monthly"),
	})
	require.NoError(t, err)
	_, err = subSvc.CancelSubscription(ctx, cancelled.ID, "not for me")
	require.NoError(t, err)

	return store, clock
}

func TestGetAnalytics(t *testing.T) {
	store, clock := analyticsFixture(t)
	svc := newTestAnalyticsService(store, clock)

	resp, err := svc.GetAnalytics(context.Background())
	require.NoError(t, err)

	// Revenue counts only active subscriptions; the average divides by all.
	assert.True(t, resp.Revenue.TotalRevenue.Equal(dec(t, "499")),
		"revenue %s", resp.Revenue.TotalRevenue)
	assert.True(t, resp.Revenue.AverageRevenuePerSubscription.Equal(dec(t, "249.50")),
		"average %s", resp.Revenue.AverageRevenuePerSubscription)
	assert.Equal(t, "INR", resp.Revenue.Currency)

	assert.Equal(t, map[string]int{"GOLD": 1}, resp.Membership.TierPopularity)
	assert.Equal(t, map[string]int{"MONTHLY": 1}, resp.Membership.PlanTypeDistribution)
	assert.Equal(t, 9, resp.Membership.TotalActivePlans)

	assert.Equal(t, 2, resp.Summary.TotalSubscriptions)
	assert.Equal(t, 1, resp.Summary.ActiveSubscriptions)
	assert.Equal(t, clock.Now(), resp.Summary.GeneratedAt)
}

func TestGetAnalyticsEmpty(t *testing.T) {
	store := newMemStore()
	clock := newTestClock()
	seedTestCatalog(t, store)
	svc := newTestAnalyticsService(store, clock)

	resp, err := svc.GetAnalytics(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.Revenue.TotalRevenue.IsZero())
	assert.True(t, resp.Revenue.AverageRevenuePerSubscription.IsZero())
	assert.Equal(t, 0, resp.Summary.TotalSubscriptions)
	assert.Empty(t, resp.Membership.TierPopularity)
}

func TestGetHealth(t *testing.T) {
	store, clock := analyticsFixture(t)
	svc := newTestAnalyticsService(store, clock)

	resp, err := svc.GetHealth(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "UP", resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, clock.Now(), resp.Timestamp)

	// Both members have subscription history, only one is active.
	assert.Equal(t, 2, resp.Metrics.TotalUsers)
	assert.Equal(t, 1, resp.Metrics.ActiveSubscriptions)
	assert.Equal(t, 9, resp.Metrics.AvailablePlans)
	assert.Equal(t, 3, resp.Metrics.MembershipTiers)
	assert.Equal(t, map[string]int{"GOLD": 1}, resp.Metrics.TierDistribution)
}
