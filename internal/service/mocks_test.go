package service

import (
	"context"
	"time"

	"fitnesshub/internal/domain"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock type for the UserRepository interface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindTrainers(ctx context.Context, search, specialization string) ([]domain.User, error) {
	args := m.Called(ctx, search, specialization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindPendingTrainers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, role domain.Role, search string) ([]domain.User, error) {
	args := m.Called(ctx, role, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SetApproved(ctx context.Context, trainerID primitive.ObjectID) error {
	args := m.Called(ctx, trainerID)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, userID primitive.ObjectID, active bool) error {
	args := m.Called(ctx, userID, active)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CountStatistics(ctx context.Context) (*domain.PlatformStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformStats), args.Error(1)
}

// MockSubscriptionPlanRepository is a mock type for the SubscriptionPlanRepository interface.
type MockSubscriptionPlanRepository struct {
	mock.Mock
}

func (m *MockSubscriptionPlanRepository) Create(ctx context.Context, plan *domain.SubscriptionPlan) (primitive.ObjectID, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockSubscriptionPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SubscriptionPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionPlan), args.Error(1)
}

func (m *MockSubscriptionPlanRepository) GetAll(ctx context.Context, activeOnly bool) ([]domain.SubscriptionPlan, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubscriptionPlan), args.Error(1)
}

func (m *MockSubscriptionPlanRepository) Update(ctx context.Context, plan *domain.SubscriptionPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockSubscriptionPlanRepository) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDietPlanRepository is a mock type for the DietPlanRepository interface.
type MockDietPlanRepository struct {
	mock.Mock
}

func (m *MockDietPlanRepository) Create(ctx context.Context, plan *domain.DietPlan) (primitive.ObjectID, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockDietPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DietPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DietPlan), args.Error(1)
}

func (m *MockDietPlanRepository) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID, activeOnly bool) ([]domain.DietPlan, error) {
	args := m.Called(ctx, trainerID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DietPlan), args.Error(1)
}

func (m *MockDietPlanRepository) Update(ctx context.Context, plan *domain.DietPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockDietPlanRepository) Deactivate(ctx context.Context, id, trainerID primitive.ObjectID) error {
	args := m.Called(ctx, id, trainerID)
	return args.Error(0)
}

// MockWorkoutPlanRepository is a mock type for the WorkoutPlanRepository interface.
type MockWorkoutPlanRepository struct {
	mock.Mock
}

func (m *MockWorkoutPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockWorkoutPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkoutPlan), args.Error(1)
}

func (m *MockWorkoutPlanRepository) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID, activeOnly bool) ([]domain.WorkoutPlan, error) {
	args := m.Called(ctx, trainerID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkoutPlan), args.Error(1)
}

func (m *MockWorkoutPlanRepository) Update(ctx context.Context, plan *domain.WorkoutPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockWorkoutPlanRepository) Deactivate(ctx context.Context, id, trainerID primitive.ObjectID) error {
	args := m.Called(ctx, id, trainerID)
	return args.Error(0)
}

// MockSubscriptionRepository is a mock type for the SubscriptionRepository interface.
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) (primitive.ObjectID, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockSubscriptionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetCompletedByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Subscription, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) CountCompletedByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, trainerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockMediaRepository is a mock type for the MediaRepository interface.
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(ctx context.Context, media *domain.PlanMedia) (primitive.ObjectID, error) {
	args := m.Called(ctx, media)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockMediaRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanMedia, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlanMedia), args.Error(1)
}

func (m *MockMediaRepository) GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.PlanMedia, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlanMedia), args.Error(1)
}

// MockFileStorage is a mock type for the storage.FileStorage interface.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, contentType, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}
