package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"memberclub/internal/models/db_models"
)

// testClock is a settable clock injected into the services under test so
// billing math is deterministic.
type testClock struct {
	current time.Time
}

func newTestClock() *testClock {
	return &testClock{current: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	return c.current
}

func (c *testClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// seedTestCatalog runs the real seeding path so tests exercise the same
// tiers and plans production starts with.
func seedTestCatalog(t *testing.T, store *memStore) {
	t.Helper()
	catalog := NewCatalogService(store, store, testLogger())
	if err := catalog.InitializeDefaultData(context.Background()); err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}
}

func seedTestUser(t *testing.T, store *memStore, email string) int64 {
	t.Helper()
	user := db_models.User{
		Name:        "Test Member",
		Email:       email,
		PhoneNumber: "9876543210",
		Address:     "12 HSR Layout",
		City:        "Bangalore",
		State:       "Karnataka",
		Pincode:     "560102",
		Status:      db_models.UserStatusActive,
	}
	if err := store.CreateUser(context.Background(), &user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return user.ID
}

func planIDByName(t *testing.T, store *memStore, name string) int64 {
	t.Helper()
	for _, p := range store.plans {
		if p.Name == name {
			return p.ID
		}
	}
	t.Fatalf("plan %q not seeded", name)
	return 0
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func assertDecimal(t *testing.T, expected string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(dec(t, expected)) {
		t.Fatalf("expected %s, got %s", expected, got)
	}
}

func newTestSubscriptionService(store *memStore, clock *testClock) *SubscriptionService {
	return &SubscriptionService{
		subRepo:  store,
		planRepo: store,
		userRepo: store,
		logger:   testLogger(),
		now:      clock.Now,
	}
}
