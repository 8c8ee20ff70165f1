package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"memberclub/internal/models/db_models"
)

type ITierRepository interface {
	FindAllTiers(ctx context.Context) ([]db_models.MembershipTier, error)
	FindTierByName(ctx context.Context, name string) (*db_models.MembershipTier, error)
	FindTierByID(ctx context.Context, id int64) (*db_models.MembershipTier, error)
	CreateTier(ctx context.Context, tier *db_models.MembershipTier) error
}

type TierRepository struct {
	db *gorm.DB
}

func NewTierRepository(db *gorm.DB) ITierRepository {
	return &TierRepository{db: db}
}

func (r *TierRepository) FindAllTiers(ctx context.Context) ([]db_models.MembershipTier, error) {
	var tiers []db_models.MembershipTier
	err := r.db.WithContext(ctx).Order("level").Find(&tiers).Error
	if err != nil {
		return nil, err
	}
	return tiers, nil
}

func (r *TierRepository) FindTierByName(ctx context.Context, name string) (*db_models.MembershipTier, error) {
	var tier db_models.MembershipTier
	err := r.db.WithContext(ctx).First(&tier, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tier, nil
}

func (r *TierRepository) FindTierByID(ctx context.Context, id int64) (*db_models.MembershipTier, error) {
	var tier db_models.MembershipTier
	err := r.db.WithContext(ctx).First(&tier, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tier, nil
}

func (r *TierRepository) CreateTier(ctx context.Context, tier *db_models.MembershipTier) error {
	return r.db.WithContext(ctx).Create(tier).Error
}
