package service

import (
	"context"
	"testing"

	"fitnesshub/internal/domain"
	"fitnesshub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAdminServiceForTest() (AdminService, *MockUserRepository, *MockSubscriptionPlanRepository) {
	userRepo := new(MockUserRepository)
	planRepo := new(MockSubscriptionPlanRepository)
	return NewAdminService(userRepo, planRepo), userRepo, planRepo
}

func TestApproveTrainer_Success(t *testing.T) {
	svc, userRepo, _ := newAdminServiceForTest()
	ctx := context.Background()

	trainerID := primitive.NewObjectID()
	userRepo.On("GetByID", ctx, trainerID).
		Return(&domain.User{ID: trainerID, Role: domain.RoleTrainer, IsActive: true, PasswordHash: "hash"}, nil)
	userRepo.On("SetApproved", ctx, trainerID).Return(nil)

	trainer, err := svc.ApproveTrainer(ctx, trainerID)

	assert.NoError(t, err)
	assert.True(t, trainer.IsApproved)
	assert.Empty(t, trainer.PasswordHash)
}

func TestApproveTrainer_RejectsNonTrainer(t *testing.T) {
	svc, userRepo, _ := newAdminServiceForTest()
	ctx := context.Background()

	userID := primitive.NewObjectID()
	userRepo.On("GetByID", ctx, userID).
		Return(&domain.User{ID: userID, Role: domain.RoleUser, IsActive: true}, nil)

	_, err := svc.ApproveTrainer(ctx, userID)

	assert.ErrorIs(t, err, ErrNotATrainer)
	userRepo.AssertNotCalled(t, "SetApproved", mock.Anything, mock.Anything)
}

func TestApproveTrainer_NotFound(t *testing.T) {
	svc, userRepo, _ := newAdminServiceForTest()
	ctx := context.Background()

	trainerID := primitive.NewObjectID()
	userRepo.On("GetByID", ctx, trainerID).Return(nil, repository.ErrNotFound)

	_, err := svc.ApproveTrainer(ctx, trainerID)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_AppliesOnlyProvidedFields(t *testing.T) {
	svc, userRepo, _ := newAdminServiceForTest()
	ctx := context.Background()

	userID := primitive.NewObjectID()
	existing := &domain.User{
		ID:             userID,
		Name:           "Old Name",
		Role:           domain.RoleTrainer,
		IsActive:       true,
		Specialization: "cardio",
		Experience:     3,
	}
	userRepo.On("GetByID", ctx, userID).Return(existing, nil)
	userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	newName := "New Name"
	updated, err := svc.UpdateUser(ctx, userID, UserUpdate{Name: &newName})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "cardio", updated.Specialization)
	assert.Equal(t, 3, updated.Experience)
	assert.True(t, updated.IsActive)
}

func TestDeactivateUser_SoftDelete(t *testing.T) {
	svc, userRepo, _ := newAdminServiceForTest()
	ctx := context.Background()

	userID := primitive.NewObjectID()
	userRepo.On("SetActive", ctx, userID, false).Return(nil)

	err := svc.DeactivateUser(ctx, userID)

	assert.NoError(t, err)
	userRepo.AssertCalled(t, "SetActive", ctx, userID, false)
}

func TestDeactivateUser_NotFound(t *testing.T) {
	svc, userRepo, _ := newAdminServiceForTest()
	ctx := context.Background()

	userID := primitive.NewObjectID()
	userRepo.On("SetActive", ctx, userID, false).Return(repository.ErrNotFound)

	err := svc.DeactivateUser(ctx, userID)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers_StripsPasswordHashes(t *testing.T) {
	svc, userRepo, _ := newAdminServiceForTest()
	ctx := context.Background()

	userRepo.On("List", ctx, domain.RoleUser, "").
		Return([]domain.User{{Name: "A", PasswordHash: "h1"}, {Name: "B", PasswordHash: "h2"}}, nil)

	users, err := svc.ListUsers(ctx, domain.RoleUser, "")

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestGetStatistics_DelegatesToRepository(t *testing.T) {
	svc, userRepo, _ := newAdminServiceForTest()
	ctx := context.Background()

	stats := &domain.PlatformStats{TotalUsers: 12, TotalTrainers: 4, ApprovedTrainers: 3, PendingTrainers: 1, ActiveUsers: 11, InactiveUsers: 1}
	userRepo.On("CountStatistics", ctx).Return(stats, nil)

	got, err := svc.GetStatistics(ctx)

	assert.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestCreateSubscriptionPlan_Valid(t *testing.T) {
	svc, _, planRepo := newAdminServiceForTest()
	ctx := context.Background()

	newID := primitive.NewObjectID()
	planRepo.On("Create", ctx, mock.AnythingOfType("*domain.SubscriptionPlan")).
		Run(func(args mock.Arguments) {
			assert.True(t, args.Get(1).(*domain.SubscriptionPlan).IsActive)
		}).
		Return(newID, nil)

	plan, err := svc.CreateSubscriptionPlan(ctx, domain.SubscriptionPlan{
		Name:     "Quarterly",
		Duration: 90,
		Price:    129.99,
		Features: []string{"chat support", "weekly check-in"},
		PlanType: domain.PlanTypePremium,
	})

	assert.NoError(t, err)
	assert.Equal(t, newID, plan.ID)
}

func TestCreateSubscriptionPlan_Invalid(t *testing.T) {
	cases := []struct {
		name string
		plan domain.SubscriptionPlan
	}{
		{"missing name", domain.SubscriptionPlan{Duration: 30, Features: []string{"x"}, PlanType: domain.PlanTypeBasic}},
		{"zero duration", domain.SubscriptionPlan{Name: "P", Features: []string{"x"}, PlanType: domain.PlanTypeBasic}},
		{"negative price", domain.SubscriptionPlan{Name: "P", Duration: 30, Price: -1, Features: []string{"x"}, PlanType: domain.PlanTypeBasic}},
		{"no features", domain.SubscriptionPlan{Name: "P", Duration: 30, PlanType: domain.PlanTypeBasic}},
		{"unknown tier", domain.SubscriptionPlan{Name: "P", Duration: 30, Features: []string{"x"}, PlanType: "platinum"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, planRepo := newAdminServiceForTest()

			_, err := svc.CreateSubscriptionPlan(context.Background(), tc.plan)

			assert.ErrorIs(t, err, ErrInvalidPlanDetails)
			planRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateSubscriptionPlan_NotFound(t *testing.T) {
	svc, _, planRepo := newAdminServiceForTest()
	ctx := context.Background()

	planID := primitive.NewObjectID()
	planRepo.On("GetByID", ctx, planID).Return(nil, repository.ErrNotFound)

	_, err := svc.UpdateSubscriptionPlan(ctx, planID, domain.SubscriptionPlan{
		Name: "P", Duration: 30, Features: []string{"x"}, PlanType: domain.PlanTypeBasic,
	})

	assert.ErrorIs(t, err, ErrSubscriptionPlanNotFound)
}

func TestDeleteSubscriptionPlan_SoftDelete(t *testing.T) {
	svc, _, planRepo := newAdminServiceForTest()
	ctx := context.Background()

	planID := primitive.NewObjectID()
	planRepo.On("Deactivate", ctx, planID).Return(nil)

	err := svc.DeleteSubscriptionPlan(ctx, planID)

	assert.NoError(t, err)
	planRepo.AssertCalled(t, "Deactivate", ctx, planID)
}
