package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"memberclub/internal/models/db_models"
	"memberclub/internal/models/response_models"
	"memberclub/internal/repositories"
	"memberclub/pkg/utils"
)

type CatalogServiceInterface interface {
	InitializeDefaultData(ctx context.Context) error

	GetAllTiers(ctx context.Context) ([]db_models.MembershipTier, error)
	GetTierByName(ctx context.Context, name string) (*db_models.MembershipTier, error)

	GetAllPlans(ctx context.Context) ([]response_models.MembershipPlanResponse, error)
	GetActivePlans(ctx context.Context) ([]response_models.MembershipPlanResponse, error)
	GetPlansByTier(ctx context.Context, tierName string) ([]response_models.MembershipPlanResponse, error)
	GetPlansByType(ctx context.Context, planType string) ([]response_models.MembershipPlanResponse, error)
	GetPlanByID(ctx context.Context, id int64) (*response_models.MembershipPlanResponse, error)
	GetGroupedPlans(ctx context.Context) (map[string]map[string]response_models.MembershipPlanResponse, error)
	ComparePlans(ctx context.Context, ids []int64) ([]response_models.MembershipPlanResponse, error)
}

type CatalogService struct {
	tierRepo repositories.ITierRepository
	planRepo repositories.IPlanRepository
	logger   *zap.SugaredLogger
}

func NewCatalogService(
	tierRepo repositories.ITierRepository,
	planRepo repositories.IPlanRepository,
	logger *zap.SugaredLogger,
) CatalogServiceInterface {
	return &CatalogService{
		tierRepo: tierRepo,
		planRepo: planRepo,
		logger:   logger,
	}
}

// InitializeDefaultData seeds the 3 tiers and their 9 plans. Idempotence is
// per tier and per plan, so a startup interrupted mid-seed resumes where it
// stopped instead of leaving the catalog permanently incomplete.
func (c *CatalogService) InitializeDefaultData(ctx context.Context) error {
	for _, tier := range db_models.DefaultTiers() {
		existing, err := c.tierRepo.FindTierByName(ctx, tier.Name)
		if err != nil {
			return fmt.Errorf("look up tier %s: %w", tier.Name, err)
		}
		if existing == nil {
			tier := tier
			if err := c.tierRepo.CreateTier(ctx, &tier); err != nil {
				return fmt.Errorf("create tier %s: %w", tier.Name, err)
			}
			existing = &tier
			c.logger.Infow("created tier",
				"tier", tier.Name, "discount", tier.DiscountPercentage)
		}
		if err := c.createDefaultPlansForTier(ctx, existing); err != nil {
			return err
		}
	}

	return nil
}

func (c *CatalogService) createDefaultPlansForTier(ctx context.Context, tier *db_models.MembershipTier) error {
	existing, err := c.planRepo.FindActivePlansByTier(ctx, tier.ID)
	if err != nil {
		return fmt.Errorf("look up plans for tier %s: %w", tier.Name, err)
	}
	seeded := make(map[db_models.PlanType]bool, len(existing))
	for _, plan := range existing {
		seeded[plan.Type] = true
	}

	basePrice := BasePriceForTierLevel(tier.Level)

	plans := []db_models.MembershipPlan{
		{
			Name:             tier.Name + " Monthly",
			Description:      "Monthly " + tier.Name + " membership",
			Type:             db_models.PlanTypeMonthly,
			Price:            PlanPrice(basePrice, db_models.PlanTypeMonthly),
			DurationInMonths: db_models.PlanTypeDurations[db_models.PlanTypeMonthly],
			TierID:           tier.ID,
			IsActive:         true,
		},
		{
			Name:             tier.Name + " Quarterly",
			Description:      "Quarterly " + tier.Name + " membership with savings",
			Type:             db_models.PlanTypeQuarterly,
			Price:            PlanPrice(basePrice, db_models.PlanTypeQuarterly),
			DurationInMonths: db_models.PlanTypeDurations[db_models.PlanTypeQuarterly],
			TierID:           tier.ID,
			IsActive:         true,
		},
		{
			Name:             tier.Name + " Yearly",
			Description:      "Yearly " + tier.Name + " membership with maximum savings",
			Type:             db_models.PlanTypeYearly,
			Price:            PlanPrice(basePrice, db_models.PlanTypeYearly),
			DurationInMonths: db_models.PlanTypeDurations[db_models.PlanTypeYearly],
			TierID:           tier.ID,
			IsActive:         true,
		},
	}

	for i := range plans {
		if seeded[plans[i].Type] {
			continue
		}
		if err := c.planRepo.CreatePlan(ctx, &plans[i]); err != nil {
			return fmt.Errorf("create plan %s: %w", plans[i].Name, err)
		}
		c.logger.Infow("created plan", "plan", plans[i].Name)
	}
	return nil
}

func (c *CatalogService) GetAllTiers(ctx context.Context) ([]db_models.MembershipTier, error) {
	tiers, err := c.tierRepo.FindAllTiers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tiers, nil
}

func (c *CatalogService) GetTierByName(ctx context.Context, name string) (*db_models.MembershipTier, error) {
	tier, err := c.tierRepo.FindTierByName(ctx, strings.ToUpper(name))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tier == nil {
		return nil, utils.ErrTierNotFound
	}
	return tier, nil
}

func (c *CatalogService) GetAllPlans(ctx context.Context) ([]response_models.MembershipPlanResponse, error) {
	plans, err := c.planRepo.FindAllPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return c.convertPlans(ctx, plans)
}

func (c *CatalogService) GetActivePlans(ctx context.Context) ([]response_models.MembershipPlanResponse, error) {
	plans, err := c.planRepo.FindActivePlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return c.convertPlans(ctx, plans)
}

func (c *CatalogService) GetPlansByTier(ctx context.Context, tierName string) ([]response_models.MembershipPlanResponse, error) {
	tier, err := c.tierRepo.FindTierByName(ctx, strings.ToUpper(tierName))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tier == nil {
		return nil, utils.ErrTierNotFound
	}

	plans, err := c.planRepo.FindActivePlansByTier(ctx, tier.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return c.convertPlans(ctx, plans)
}

func (c *CatalogService) GetPlansByType(ctx context.Context, planType string) ([]response_models.MembershipPlanResponse, error) {
	parsed, ok := db_models.ParsePlanType(strings.ToUpper(planType))
	if !ok {
		return nil, utils.ErrInvalidPlanType
	}

	plans, err := c.planRepo.FindActivePlansByType(ctx, parsed)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return c.convertPlans(ctx, plans)
}

func (c *CatalogService) GetPlanByID(ctx context.Context, id int64) (*response_models.MembershipPlanResponse, error) {
	plan, err := c.planRepo.FindPlanByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	resp, err := c.convertPlan(ctx, *plan)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetGroupedPlans arranges active plans as tier name -> plan type -> plan,
// the shape the storefront renders directly.
func (c *CatalogService) GetGroupedPlans(ctx context.Context) (map[string]map[string]response_models.MembershipPlanResponse, error) {
	plans, err := c.GetActivePlans(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]map[string]response_models.MembershipPlanResponse)
	for _, plan := range plans {
		if grouped[plan.Tier] == nil {
			grouped[plan.Tier] = make(map[string]response_models.MembershipPlanResponse)
		}
		grouped[plan.Tier][plan.Type] = plan
	}
	return grouped, nil
}

func (c *CatalogService) ComparePlans(ctx context.Context, ids []int64) ([]response_models.MembershipPlanResponse, error) {
	result := make([]response_models.MembershipPlanResponse, 0, len(ids))
	for _, id := range ids {
		resp, err := c.GetPlanByID(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}

func (c *CatalogService) convertPlans(ctx context.Context, plans []db_models.MembershipPlan) ([]response_models.MembershipPlanResponse, error) {
	result := make([]response_models.MembershipPlanResponse, 0, len(plans))
	for _, plan := range plans {
		resp, err := c.convertPlan(ctx, plan)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

func (c *CatalogService) convertPlan(ctx context.Context, plan db_models.MembershipPlan) (response_models.MembershipPlanResponse, error) {
	savings := decimal.Zero

	// Savings only make sense against the monthly plan of the same tier.
	if plan.Type != db_models.PlanTypeMonthly {
		tierPlans, err := c.planRepo.FindActivePlansByTier(ctx, plan.TierID)
		if err != nil {
			return response_models.MembershipPlanResponse{}, utils.ErrDatabaseError
		}
		for _, p := range tierPlans {
			if p.Type == db_models.PlanTypeMonthly {
				savings = Savings(plan.Price, plan.DurationInMonths, p.Price)
				break
			}
		}
	}

	return response_models.MembershipPlanResponse{
		ID:                 plan.ID,
		Name:               plan.Name,
		Description:        plan.Description,
		Type:               string(plan.Type),
		Price:              plan.Price,
		DurationInMonths:   plan.DurationInMonths,
		IsActive:           plan.IsActive,
		Tier:               plan.Tier.Name,
		TierLevel:          plan.Tier.Level,
		DiscountPercentage: plan.Tier.DiscountPercentage,
		FreeDelivery:       plan.Tier.FreeDelivery,
		ExclusiveDeals:     plan.Tier.ExclusiveDeals,
		EarlyAccess:        plan.Tier.EarlyAccess,
		PrioritySupport:    plan.Tier.PrioritySupport,
		MaxCouponsPerMonth: plan.Tier.MaxCouponsPerMonth,
		DeliveryDays:       plan.Tier.DeliveryDays,
		AdditionalBenefits: plan.Tier.AdditionalBenefits,
		MonthlyPrice:       MonthlyEquivalent(plan.Price, plan.DurationInMonths),
		Savings:            savings,
	}, nil
}
