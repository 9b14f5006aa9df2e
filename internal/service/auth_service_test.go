package service

import (
	"context"
	"testing"
	"time"

	"fitnesshub/internal/domain"
	"fitnesshub/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret-key"

func newAuthServiceForTest() (AuthService, *MockUserRepository) {
	userRepo := new(MockUserRepository)
	return NewAuthService(userRepo, testJWTSecret, time.Hour), userRepo
}

func TestRegister_MemberStartsActive(t *testing.T) {
	svc, userRepo := newAuthServiceForTest()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "sam@example.com").Return(nil, repository.ErrNotFound)

	newID := primitive.NewObjectID()
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*domain.User)
			assert.True(t, user.IsActive)
			assert.False(t, user.IsApproved)
			assert.NotEqual(t, "secret123", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		}).
		Return(newID, nil)

	user, err := svc.Register(ctx, RegisterInput{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "secret123",
		Role:     domain.RoleUser,
	})

	assert.NoError(t, err)
	assert.Equal(t, newID, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestRegister_TrainerStartsUnapproved(t *testing.T) {
	svc, userRepo := newAuthServiceForTest()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "alex@example.com").Return(nil, repository.ErrNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*domain.User)
			assert.Equal(t, domain.RoleTrainer, user.Role)
			assert.False(t, user.IsApproved)
			assert.Equal(t, "yoga", user.Specialization)
			assert.Equal(t, 5, user.Experience)
		}).
		Return(primitive.NewObjectID(), nil)

	user, err := svc.Register(ctx, RegisterInput{
		Name:           "Alex",
		Email:          "alex@example.com",
		Password:       "secret123",
		Role:           domain.RoleTrainer,
		Specialization: "yoga",
		Experience:     5,
	})

	assert.NoError(t, err)
	assert.False(t, user.IsApproved)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, userRepo := newAuthServiceForTest()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "taken@example.com").
		Return(&domain.User{Email: "taken@example.com"}, nil)

	_, err := svc.Register(ctx, RegisterInput{
		Name: "X", Email: "taken@example.com", Password: "secret123", Role: domain.RoleUser,
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmailRaceOnInsert(t *testing.T) {
	svc, userRepo := newAuthServiceForTest()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "race@example.com").Return(nil, repository.ErrNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Return(primitive.NilObjectID, repository.ErrDuplicateEmail)

	_, err := svc.Register(ctx, RegisterInput{
		Name: "X", Email: "race@example.com", Password: "secret123", Role: domain.RoleUser,
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func loginFixtureUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           primitive.NewObjectID(),
		Name:         "Sam",
		Email:        "sam@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo := newAuthServiceForTest()
	ctx := context.Background()

	fixture := loginFixtureUser(t, "secret123")
	userRepo.On("GetByEmail", ctx, "sam@example.com").Return(fixture, nil)

	token, user, err := svc.Login(ctx, "sam@example.com", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.PasswordHash)

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, fixture.ID.Hex(), claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.Equal(t, "fitnesshub", claims.Issuer)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo := newAuthServiceForTest()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "sam@example.com").Return(loginFixtureUser(t, "secret123"), nil)

	_, _, err := svc.Login(ctx, "sam@example.com", "wrong-password")

	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, userRepo := newAuthServiceForTest()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound)

	_, _, err := svc.Login(ctx, "ghost@example.com", "whatever1")

	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLogin_DeactivatedAccountRefused(t *testing.T) {
	svc, userRepo := newAuthServiceForTest()
	ctx := context.Background()

	fixture := loginFixtureUser(t, "secret123")
	fixture.IsActive = false
	userRepo.On("GetByEmail", ctx, "sam@example.com").Return(fixture, nil)

	_, _, err := svc.Login(ctx, "sam@example.com", "secret123")

	assert.ErrorIs(t, err, ErrAccountDisabled)
}
