package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"memberclub/internal/models/db_models"
	"memberclub/internal/models/request_models"
	"memberclub/internal/models/response_models"
	"memberclub/internal/repositories"
	"memberclub/pkg/utils"
)

type UserServiceInterface interface {
	CreateUser(ctx context.Context, req request_models.UserRequest) (response_models.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req request_models.UserRequest) (response_models.UserResponse, error)
	GetUserByID(ctx context.Context, id int64) (response_models.UserResponse, error)
	GetUserByEmail(ctx context.Context, email string) (response_models.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]response_models.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
	SeedDemoUsers(ctx context.Context) error
}

type UserService struct {
	userRepo repositories.IUserRepository
	subRepo  repositories.ISubscriptionRepository
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewUserService(
	userRepo repositories.IUserRepository,
	subRepo repositories.ISubscriptionRepository,
	logger *zap.SugaredLogger,
) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		subRepo:  subRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (u *UserService) CreateUser(ctx context.Context, req request_models.UserRequest) (response_models.UserResponse, error) {
	if err := validateContactFields(req); err != nil {
		return response_models.UserResponse{}, err
	}

	exists, err := u.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return response_models.UserResponse{}, utils.ErrDatabaseError
	}
	if exists {
		return response_models.UserResponse{}, utils.ErrEmailExists
	}

	user := db_models.User{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Status:      db_models.UserStatusActive,
	}

	if err := u.userRepo.CreateUser(ctx, &user); err != nil {
		return response_models.UserResponse{}, utils.ErrDatabaseError
	}

	u.logger.Infow("user created", "user_id", user.ID, "email", user.Email)
	return convertUser(user), nil
}

func (u *UserService) UpdateUser(ctx context.Context, id int64, req request_models.UserRequest) (response_models.UserResponse, error) {
	if err := validateContactFields(req); err != nil {
		return response_models.UserResponse{}, err
	}

	user, err := u.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return response_models.UserResponse{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.UserResponse{}, utils.ErrUserNotFound
	}

	if user.Email != req.Email {
		exists, err := u.userRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return response_models.UserResponse{}, utils.ErrDatabaseError
		}
		if exists {
			return response_models.UserResponse{}, utils.ErrEmailExists
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.PhoneNumber = req.PhoneNumber
	user.Address = req.Address
	user.City = req.City
	user.State = req.State
	user.Pincode = req.Pincode

	if req.Status != "" {
		status, ok := db_models.ParseUserStatus(req.Status)
		if !ok {
			return response_models.UserResponse{}, utils.ErrInvalidUserStatus
		}
		user.Status = status
	}

	if err := u.userRepo.SaveUser(ctx, user); err != nil {
		return response_models.UserResponse{}, utils.ErrDatabaseError
	}

	u.logger.Infow("user updated", "user_id", user.ID)
	return convertUser(*user), nil
}

func (u *UserService) GetUserByID(ctx context.Context, id int64) (response_models.UserResponse, error) {
	user, err := u.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return response_models.UserResponse{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.UserResponse{}, utils.ErrUserNotFound
	}
	return convertUser(*user), nil
}

func (u *UserService) GetUserByEmail(ctx context.Context, email string) (response_models.UserResponse, error) {
	user, err := u.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return response_models.UserResponse{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.UserResponse{}, utils.ErrUserNotFound
	}
	return convertUser(*user), nil
}

func (u *UserService) GetAllUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := u.userRepo.FindAllUsers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, convertUser(user))
	}
	return result, nil
}

// DeleteUser refuses to remove a user who still holds an unexpired ACTIVE
// subscription; the subscription must be cancelled first.
func (u *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := u.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	active, err := u.subRepo.FindActiveSubscriptionForUser(ctx, id, u.now())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if active != nil {
		return utils.ErrUserHasActiveSubscription
	}

	if err := u.userRepo.DeleteUser(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}

	u.logger.Infow("user deleted", "user_id", id)
	return nil
}

// SeedDemoUsers creates a few demo accounts. Gated behind SEED_DEMO_USERS
// at bootstrap; skips silently when users already exist.
func (u *UserService) SeedDemoUsers(ctx context.Context) error {
	existing, err := u.userRepo.FindAllUsers(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	demo := []request_models.UserRequest{
		{
			Name: "Karan Singh", Email: "karan.singh@example.com",
			PhoneNumber: "9876543210", Address: "12 HSR Layout",
			City: "Bangalore", State: "Karnataka", Pincode: "560102",
		},
		{
			Name: "Ananya Sharma", Email: "ananya.sharma@example.com",
			PhoneNumber: "9876543211", Address: "23 Andheri West",
			City: "Mumbai", State: "Maharashtra", Pincode: "400058",
		},
		{
			Name: "Rohit Agarwal", Email: "rohit.agarwal@example.com",
			PhoneNumber: "9876543212", Address: "45 Connaught Place",
			City: "New Delhi", State: "Delhi", Pincode: "110001",
		},
	}

	for _, req := range demo {
		if _, err := u.CreateUser(ctx, req); err != nil {
			u.logger.Warnw("demo user seed skipped", "email", req.Email, "error", err)
		}
	}
	return nil
}

func validateContactFields(req request_models.UserRequest) error {
	if !utils.IsValidIndianPhone(req.PhoneNumber) {
		return utils.ErrInvalidPhone
	}
	if !utils.IsValidPincode(req.Pincode) {
		return utils.ErrInvalidPincode
	}
	return nil
}

func convertUser(user db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		City:        user.City,
		State:       user.State,
		Pincode:     user.Pincode,
		Status:      string(user.Status),
	}
}
