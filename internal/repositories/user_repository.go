package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"memberclub/internal/models/db_models"
)

type IUserRepository interface {
	FindUserByID(ctx context.Context, id int64) (*db_models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*db_models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAllUsers(ctx context.Context) ([]db_models.User, error)
	CreateUser(ctx context.Context, user *db_models.User) error
	SaveUser(ctx context.Context, user *db_models.User) error
	DeleteUser(ctx context.Context, user *db_models.User) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindUserByID(ctx context.Context, id int64) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).
		Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) FindAllUsers(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) SaveUser(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) DeleteUser(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Delete(user).Error
}
