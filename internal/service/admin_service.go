package service

import (
	"context"
	"errors"

	"fitnesshub/internal/domain"
	"fitnesshub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrNotATrainer        = errors.New("user is not a trainer")
	ErrInvalidPlanDetails = errors.New("invalid subscription plan details")
)

// UserUpdate carries the fields an admin may edit on an account. Nil
// pointers leave the field untouched.
type UserUpdate struct {
	Name           *string
	IsActive       *bool
	Specialization *string
	Experience     *int
}

type AdminService interface {
	// Users
	ListUsers(ctx context.Context, role domain.Role, search string) ([]domain.User, error)
	PendingTrainers(ctx context.Context) ([]domain.User, error)
	ApproveTrainer(ctx context.Context, trainerID primitive.ObjectID) (*domain.User, error)
	UpdateUser(ctx context.Context, userID primitive.ObjectID, updates UserUpdate) (*domain.User, error)
	DeactivateUser(ctx context.Context, userID primitive.ObjectID) error
	GetStatistics(ctx context.Context) (*domain.PlatformStats, error)

	// Subscription plans
	CreateSubscriptionPlan(ctx context.Context, plan domain.SubscriptionPlan) (*domain.SubscriptionPlan, error)
	ListSubscriptionPlans(ctx context.Context) ([]domain.SubscriptionPlan, error)
	UpdateSubscriptionPlan(ctx context.Context, planID primitive.ObjectID, updates domain.SubscriptionPlan) (*domain.SubscriptionPlan, error)
	DeleteSubscriptionPlan(ctx context.Context, planID primitive.ObjectID) error
}

// adminService implements the AdminService interface.
type adminService struct {
	userRepo repository.UserRepository
	planRepo repository.SubscriptionPlanRepository
}

// NewAdminService creates a new instance of adminService.
func NewAdminService(userRepo repository.UserRepository, planRepo repository.SubscriptionPlanRepository) AdminService {
	return &adminService{
		userRepo: userRepo,
		planRepo: planRepo,
	}
}

// === Users ===

// ListUsers returns accounts for the admin overview.
func (s *adminService) ListUsers(ctx context.Context, role domain.Role, search string) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx, role, search)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// PendingTrainers returns trainer applications awaiting approval.
func (s *adminService) PendingTrainers(ctx context.Context) ([]domain.User, error) {
	trainers, err := s.userRepo.FindPendingTrainers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trainers {
		trainers[i].PasswordHash = ""
	}
	return trainers, nil
}

// ApproveTrainer flips the approval flag on a trainer application, making
// the trainer visible and subscribable to members.
func (s *adminService) ApproveTrainer(ctx context.Context, trainerID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsTrainer() {
		return nil, ErrNotATrainer
	}

	if err := s.userRepo.SetApproved(ctx, trainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.IsApproved = true
	user.PasswordHash = ""
	return user, nil
}

// UpdateUser applies the provided edits to an account.
func (s *adminService) UpdateUser(ctx context.Context, userID primitive.ObjectID, updates UserUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.IsActive != nil {
		user.IsActive = *updates.IsActive
	}
	if updates.Specialization != nil {
		user.Specialization = *updates.Specialization
	}
	if updates.Experience != nil {
		user.Experience = *updates.Experience
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// DeactivateUser soft-deactivates an account. Accounts are never
// hard-deleted so subscription references stay intact.
func (s *adminService) DeactivateUser(ctx context.Context, userID primitive.ObjectID) error {
	err := s.userRepo.SetActive(ctx, userID, false)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// GetStatistics returns the platform counters, computed at query time.
func (s *adminService) GetStatistics(ctx context.Context) (*domain.PlatformStats, error) {
	return s.userRepo.CountStatistics(ctx)
}

// === Subscription Plans ===

// CreateSubscriptionPlan validates and creates a commercial tier.
func (s *adminService) CreateSubscriptionPlan(ctx context.Context, plan domain.SubscriptionPlan) (*domain.SubscriptionPlan, error) {
	if err := validatePlan(&plan); err != nil {
		return nil, err
	}
	plan.IsActive = true

	id, err := s.planRepo.Create(ctx, &plan)
	if err != nil {
		return nil, err
	}
	plan.ID = id
	return &plan, nil
}

// ListSubscriptionPlans returns all plans, inactive included, for the admin view.
func (s *adminService) ListSubscriptionPlans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	return s.planRepo.GetAll(ctx, false)
}

// UpdateSubscriptionPlan edits a plan. Existing subscriptions are
// unaffected; they carry price and date snapshots.
func (s *adminService) UpdateSubscriptionPlan(ctx context.Context, planID primitive.ObjectID, updates domain.SubscriptionPlan) (*domain.SubscriptionPlan, error) {
	if err := validatePlan(&updates); err != nil {
		return nil, err
	}

	existing, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubscriptionPlanNotFound
		}
		return nil, err
	}

	updates.ID = existing.ID
	if err := s.planRepo.Update(ctx, &updates); err != nil {
		return nil, err
	}
	return s.planRepo.GetByID(ctx, planID)
}

// DeleteSubscriptionPlan soft-deletes a plan.
func (s *adminService) DeleteSubscriptionPlan(ctx context.Context, planID primitive.ObjectID) error {
	err := s.planRepo.Deactivate(ctx, planID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSubscriptionPlanNotFound
	}
	return err
}

// validatePlan enforces the commercial tier invariants: positive duration,
// non-negative price, at least one feature, a known tier.
func validatePlan(plan *domain.SubscriptionPlan) error {
	if plan.Name == "" || plan.Duration <= 0 || plan.Price < 0 || len(plan.Features) == 0 {
		return ErrInvalidPlanDetails
	}
	if !domain.ValidPlanType(plan.PlanType) {
		return ErrInvalidPlanDetails
	}
	return nil
}
