package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"memberclub/internal/models/db_models"
)

// memStore is an in-memory stand-in for the gorm repositories. Reads hand
// out copies with associations attached, writes only persist through the
// explicit Create/Save calls, mirroring how the real store behaves.
type memStore struct {
	users []db_models.User
	tiers []db_models.MembershipTier
	plans []db_models.MembershipPlan
	subs  []db_models.Subscription

	nextUserID int64
	nextTierID int64
	nextPlanID int64
	nextSubID  int64

	subSaveCalls  int
	failSaveIDs   map[int64]bool
	failPlanNames map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		failSaveIDs:   map[int64]bool{},
		failPlanNames: map[string]bool{},
	}
}

// ---- IUserRepository

func (m *memStore) FindUserByID(_ context.Context, id int64) (*db_models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) FindAllUsers(_ context.Context) ([]db_models.User, error) {
	return append([]db_models.User(nil), m.users...), nil
}

func (m *memStore) CreateUser(_ context.Context, user *db_models.User) error {
	m.nextUserID++
	user.ID = m.nextUserID
	m.users = append(m.users, *user)
	return nil
}

func (m *memStore) SaveUser(_ context.Context, user *db_models.User) error {
	for i := range m.users {
		if m.users[i].ID == user.ID {
			m.users[i] = *user
			return nil
		}
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *memStore) DeleteUser(_ context.Context, user *db_models.User) error {
	for i := range m.users {
		if m.users[i].ID == user.ID {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return nil
}

// ---- ITierRepository

func (m *memStore) FindAllTiers(_ context.Context) ([]db_models.MembershipTier, error) {
	tiers := append([]db_models.MembershipTier(nil), m.tiers...)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Level < tiers[j].Level })
	return tiers, nil
}

func (m *memStore) FindTierByName(_ context.Context, name string) (*db_models.MembershipTier, error) {
	for _, t := range m.tiers {
		if t.Name == name {
			cp := t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindTierByID(_ context.Context, id int64) (*db_models.MembershipTier, error) {
	for _, t := range m.tiers {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateTier(_ context.Context, tier *db_models.MembershipTier) error {
	m.nextTierID++
	tier.ID = m.nextTierID
	m.tiers = append(m.tiers, *tier)
	return nil
}

// ---- IPlanRepository

func (m *memStore) attachPlan(p db_models.MembershipPlan) db_models.MembershipPlan {
	for _, t := range m.tiers {
		if t.ID == p.TierID {
			p.Tier = t
			break
		}
	}
	return p
}

func (m *memStore) FindPlanByID(_ context.Context, id int64) (*db_models.MembershipPlan, error) {
	for _, p := range m.plans {
		if p.ID == id {
			cp := m.attachPlan(p)
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindAllPlans(_ context.Context) ([]db_models.MembershipPlan, error) {
	plans := make([]db_models.MembershipPlan, 0, len(m.plans))
	for _, p := range m.plans {
		plans = append(plans, m.attachPlan(p))
	}
	return plans, nil
}

func (m *memStore) FindActivePlans(_ context.Context) ([]db_models.MembershipPlan, error) {
	var plans []db_models.MembershipPlan
	for _, p := range m.plans {
		if p.IsActive {
			plans = append(plans, m.attachPlan(p))
		}
	}
	return plans, nil
}

func (m *memStore) FindActivePlansByTier(_ context.Context, tierID int64) ([]db_models.MembershipPlan, error) {
	var plans []db_models.MembershipPlan
	for _, p := range m.plans {
		if p.IsActive && p.TierID == tierID {
			plans = append(plans, m.attachPlan(p))
		}
	}
	return plans, nil
}

func (m *memStore) FindActivePlansByType(_ context.Context, planType db_models.PlanType) ([]db_models.MembershipPlan, error) {
	var plans []db_models.MembershipPlan
	for _, p := range m.plans {
		if p.IsActive && p.Type == planType {
			plans = append(plans, m.attachPlan(p))
		}
	}
	return plans, nil
}

func (m *memStore) CreatePlan(_ context.Context, plan *db_models.MembershipPlan) error {
	if m.failPlanNames[plan.Name] {
		return errors.New("simulated insert failure")
	}
	m.nextPlanID++
	plan.ID = m.nextPlanID
	m.plans = append(m.plans, *plan)
	return nil
}

// ---- ISubscriptionRepository

func (m *memStore) attachSub(s db_models.Subscription) db_models.Subscription {
	for _, u := range m.users {
		if u.ID == s.UserID {
			s.User = u
			break
		}
	}
	for _, p := range m.plans {
		if p.ID == s.PlanID {
			s.Plan = m.attachPlan(p)
			break
		}
	}
	return s
}

func (m *memStore) FindSubscriptionByID(_ context.Context, id int64) (*db_models.Subscription, error) {
	for _, s := range m.subs {
		if s.ID == id {
			cp := m.attachSub(s)
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindActiveSubscriptionForUser(_ context.Context, userID int64, now time.Time) (*db_models.Subscription, error) {
	for _, s := range m.subs {
		if s.UserID == userID && s.Status == db_models.SubStatusActive && s.EndDate.After(now) {
			cp := m.attachSub(s)
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindSubscriptionsByUser(_ context.Context, userID int64) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	for _, s := range m.subs {
		if s.UserID == userID {
			subs = append(subs, m.attachSub(s))
		}
	}
	return subs, nil
}

func (m *memStore) FindAllSubscriptions(_ context.Context) ([]db_models.Subscription, error) {
	subs := make([]db_models.Subscription, 0, len(m.subs))
	for _, s := range m.subs {
		subs = append(subs, m.attachSub(s))
	}
	return subs, nil
}

func (m *memStore) FindSubscriptionsByStatus(_ context.Context, status db_models.SubscriptionStatus) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	for _, s := range m.subs {
		if s.Status == status {
			subs = append(subs, m.attachSub(s))
		}
	}
	return subs, nil
}

func (m *memStore) FindSubscriptionsDueForRenewal(_ context.Context, cutoff time.Time) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	for _, s := range m.subs {
		if s.AutoRenewal && s.Status == db_models.SubStatusActive && !s.NextBillingDate.After(cutoff) {
			subs = append(subs, m.attachSub(s))
		}
	}
	return subs, nil
}

func (m *memStore) CreateSubscription(_ context.Context, sub *db_models.Subscription) error {
	m.nextSubID++
	sub.ID = m.nextSubID
	m.subs = append(m.subs, *sub)
	return nil
}

func (m *memStore) SaveSubscription(_ context.Context, sub *db_models.Subscription) error {
	if m.failSaveIDs[sub.ID] {
		return errors.New("simulated save failure")
	}
	m.subSaveCalls++
	for i := range m.subs {
		if m.subs[i].ID == sub.ID {
			m.subs[i] = *sub
			return nil
		}
	}
	m.subs = append(m.subs, *sub)
	return nil
}
