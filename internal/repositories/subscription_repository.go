package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"memberclub/internal/models/db_models"
)

type ISubscriptionRepository interface {
	FindSubscriptionByID(ctx context.Context, id int64) (*db_models.Subscription, error)
	FindActiveSubscriptionForUser(ctx context.Context, userID int64, now time.Time) (*db_models.Subscription, error)
	FindSubscriptionsByUser(ctx context.Context, userID int64) ([]db_models.Subscription, error)
	FindAllSubscriptions(ctx context.Context) ([]db_models.Subscription, error)
	FindSubscriptionsByStatus(ctx context.Context, status db_models.SubscriptionStatus) ([]db_models.Subscription, error)
	FindSubscriptionsDueForRenewal(ctx context.Context, cutoff time.Time) ([]db_models.Subscription, error)
	CreateSubscription(ctx context.Context, sub *db_models.Subscription) error
	SaveSubscription(ctx context.Context, sub *db_models.Subscription) error
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("User").Preload("Plan").Preload("Plan.Tier")
}

func (r *SubscriptionRepository) FindSubscriptionByID(ctx context.Context, id int64) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.preloaded(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) FindActiveSubscriptionForUser(ctx context.Context, userID int64, now time.Time) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.preloaded(ctx).
		Where("user_id = ? AND status = ? AND end_date > ?", userID, db_models.SubStatusActive, now).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) FindSubscriptionsByUser(ctx context.Context, userID int64) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.preloaded(ctx).
		Where("user_id = ?", userID).Order("created_at DESC").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SubscriptionRepository) FindAllSubscriptions(ctx context.Context) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.preloaded(ctx).Order("id").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SubscriptionRepository) FindSubscriptionsByStatus(ctx context.Context, status db_models.SubscriptionStatus) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.preloaded(ctx).Where("status = ?", status).Order("id").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SubscriptionRepository) FindSubscriptionsDueForRenewal(ctx context.Context, cutoff time.Time) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.preloaded(ctx).
		Where("auto_renewal = TRUE AND status = ? AND next_billing_date <= ?", db_models.SubStatusActive, cutoff).
		Order("id").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, sub *db_models.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubscriptionRepository) SaveSubscription(ctx context.Context, sub *db_models.Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}
