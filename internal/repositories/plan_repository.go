package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"memberclub/internal/models/db_models"
)

type IPlanRepository interface {
	FindPlanByID(ctx context.Context, id int64) (*db_models.MembershipPlan, error)
	FindAllPlans(ctx context.Context) ([]db_models.MembershipPlan, error)
	FindActivePlans(ctx context.Context) ([]db_models.MembershipPlan, error)
	FindActivePlansByTier(ctx context.Context, tierID int64) ([]db_models.MembershipPlan, error)
	FindActivePlansByType(ctx context.Context, planType db_models.PlanType) ([]db_models.MembershipPlan, error)
	CreatePlan(ctx context.Context, plan *db_models.MembershipPlan) error
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) FindPlanByID(ctx context.Context, id int64) (*db_models.MembershipPlan, error) {
	var plan db_models.MembershipPlan
	err := r.db.WithContext(ctx).Preload("Tier").First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) FindAllPlans(ctx context.Context) ([]db_models.MembershipPlan, error) {
	var plans []db_models.MembershipPlan
	err := r.db.WithContext(ctx).Preload("Tier").Order("id").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) FindActivePlans(ctx context.Context) ([]db_models.MembershipPlan, error) {
	var plans []db_models.MembershipPlan
	err := r.db.WithContext(ctx).Preload("Tier").
		Where("is_active = TRUE").Order("id").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) FindActivePlansByTier(ctx context.Context, tierID int64) ([]db_models.MembershipPlan, error) {
	var plans []db_models.MembershipPlan
	err := r.db.WithContext(ctx).Preload("Tier").
		Where("tier_id = ? AND is_active = TRUE", tierID).Order("id").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) FindActivePlansByType(ctx context.Context, planType db_models.PlanType) ([]db_models.MembershipPlan, error) {
	var plans []db_models.MembershipPlan
	err := r.db.WithContext(ctx).Preload("Tier").
		Where("type = ? AND is_active = TRUE", planType).Order("id").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) CreatePlan(ctx context.Context, plan *db_models.MembershipPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}
