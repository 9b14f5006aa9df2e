package repository

import (
	"context"

	"fitnesshub/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound       = RepositoryError("not found")
	ErrDuplicateEmail = RepositoryError("email already registered")
	ErrUpdateFailed   = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// FindTrainers returns approved, active trainers, optionally filtered by a
	// case-insensitive substring on name/specialization, newest first.
	FindTrainers(ctx context.Context, search, specialization string) ([]domain.User, error)
	FindPendingTrainers(ctx context.Context) ([]domain.User, error)
	List(ctx context.Context, role domain.Role, search string) ([]domain.User, error)
	SetApproved(ctx context.Context, trainerID primitive.ObjectID) error
	SetActive(ctx context.Context, userID primitive.ObjectID, active bool) error
	Update(ctx context.Context, user *domain.User) error
	CountStatistics(ctx context.Context) (*domain.PlatformStats, error)
}

// SubscriptionPlanRepository manages the admin-owned commercial tiers.
type SubscriptionPlanRepository interface {
	Create(ctx context.Context, plan *domain.SubscriptionPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SubscriptionPlan, error)
	GetAll(ctx context.Context, activeOnly bool) ([]domain.SubscriptionPlan, error)
	Update(ctx context.Context, plan *domain.SubscriptionPlan) error
	Deactivate(ctx context.Context, id primitive.ObjectID) error
}

// DietPlanRepository manages trainer-authored diet plans.
type DietPlanRepository interface {
	Create(ctx context.Context, plan *domain.DietPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DietPlan, error)
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID, activeOnly bool) ([]domain.DietPlan, error)
	Update(ctx context.Context, plan *domain.DietPlan) error
	Deactivate(ctx context.Context, id, trainerID primitive.ObjectID) error
}

// WorkoutPlanRepository manages trainer-authored workout plans.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID, activeOnly bool) ([]domain.WorkoutPlan, error)
	Update(ctx context.Context, plan *domain.WorkoutPlan) error
	Deactivate(ctx context.Context, id, trainerID primitive.ObjectID) error
}

// SubscriptionRepository is the subscription ledger. Creation inserts exactly
// one record; every aggregate (subscriber counts, revenue) is derived by
// querying, never by maintaining counters.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Subscription, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Subscription, error)
	GetCompletedByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Subscription, error)
	CountCompletedByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (int64, error)
}

// MediaRepository stores plan media metadata. The file bytes live in S3.
type MediaRepository interface {
	Create(ctx context.Context, media *domain.PlanMedia) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanMedia, error)
	GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.PlanMedia, error)
}
