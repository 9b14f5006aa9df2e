package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitnesshub/internal/domain"
	"fitnesshub/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrSubscriptionPlanNotFound = errors.New("subscription plan not found")
	ErrTrainerNotFound          = errors.New("trainer not found")
	ErrDietPlanNotFound         = errors.New("diet plan not found")
	ErrWorkoutPlanNotFound      = errors.New("workout plan not found")
	ErrPlanNotOwnedByTrainer    = errors.New("plan does not belong to the selected trainer")
)

// TrainerListing is an approved trainer enriched with their active content
// and a derived subscriber count, for the member-facing discovery view.
type TrainerListing struct {
	Trainer         domain.User          `json:"trainer"`
	DietPlans       []domain.DietPlan    `json:"dietPlans"`
	WorkoutPlans    []domain.WorkoutPlan `json:"workoutPlans"`
	SubscriberCount int64                `json:"subscriberCount"`
}

// SubscribeInput is a member's subscription selection. Diet and workout
// plans are optional add-ons.
type SubscribeInput struct {
	TrainerID          primitive.ObjectID
	SubscriptionPlanID primitive.ObjectID
	DietPlanID         *primitive.ObjectID
	WorkoutPlanID      *primitive.ObjectID
}

// SubscriptionDetail is a subscription with its references resolved to
// their display entities, for confirmation rendering.
type SubscriptionDetail struct {
	Subscription domain.Subscription      `json:"subscription"`
	Trainer      *domain.User             `json:"trainer,omitempty"`
	Plan         *domain.SubscriptionPlan `json:"subscriptionPlan,omitempty"`
	DietPlan     *domain.DietPlan         `json:"dietPlan,omitempty"`
	WorkoutPlan  *domain.WorkoutPlan      `json:"workoutPlan,omitempty"`
}

type MemberService interface {
	ListTrainers(ctx context.Context, search, specialization string) ([]TrainerListing, error)
	ListSubscriptionPlans(ctx context.Context) ([]domain.SubscriptionPlan, error)
	Subscribe(ctx context.Context, userID primitive.ObjectID, input SubscribeInput) (*SubscriptionDetail, error)
	MySubscriptions(ctx context.Context, userID primitive.ObjectID) ([]SubscriptionDetail, error)
}

// memberService implements the MemberService interface.
type memberService struct {
	userRepo         repository.UserRepository
	planRepo         repository.SubscriptionPlanRepository
	dietPlanRepo     repository.DietPlanRepository
	workoutPlanRepo  repository.WorkoutPlanRepository
	subscriptionRepo repository.SubscriptionRepository
}

// NewMemberService creates a new instance of memberService.
func NewMemberService(
	userRepo repository.UserRepository,
	planRepo repository.SubscriptionPlanRepository,
	dietPlanRepo repository.DietPlanRepository,
	workoutPlanRepo repository.WorkoutPlanRepository,
	subscriptionRepo repository.SubscriptionRepository,
) MemberService {
	return &memberService{
		userRepo:         userRepo,
		planRepo:         planRepo,
		dietPlanRepo:     dietPlanRepo,
		workoutPlanRepo:  workoutPlanRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// ListTrainers returns approved, active trainers matching the optional
// filters, each enriched with active plans and a subscriber count derived
// by counting completed subscriptions at query time.
func (s *memberService) ListTrainers(ctx context.Context, search, specialization string) ([]TrainerListing, error) {
	trainers, err := s.userRepo.FindTrainers(ctx, search, specialization)
	if err != nil {
		return nil, err
	}

	listings := make([]TrainerListing, 0, len(trainers))
	for _, trainer := range trainers {
		dietPlans, err := s.dietPlanRepo.GetByTrainerID(ctx, trainer.ID, true)
		if err != nil {
			return nil, err
		}
		workoutPlans, err := s.workoutPlanRepo.GetByTrainerID(ctx, trainer.ID, true)
		if err != nil {
			return nil, err
		}
		count, err := s.subscriptionRepo.CountCompletedByTrainerID(ctx, trainer.ID)
		if err != nil {
			return nil, err
		}

		trainer.PasswordHash = ""
		listings = append(listings, TrainerListing{
			Trainer:         trainer,
			DietPlans:       dietPlans,
			WorkoutPlans:    workoutPlans,
			SubscriberCount: count,
		})
	}
	return listings, nil
}

// ListSubscriptionPlans returns the active commercial tiers.
func (s *memberService) ListSubscriptionPlans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	return s.planRepo.GetAll(ctx, true)
}

// Subscribe runs the subscription creation workflow: validate every
// referenced entity, compute the derived fields, then persist exactly one
// ledger record. Validation is fail-fast; nothing is written until all
// reads succeed.
//
// Duplicate subscriptions (same member, trainer and plan) are permitted:
// each call creates a fresh record with its own transaction identifier.
func (s *memberService) Subscribe(ctx context.Context, userID primitive.ObjectID, input SubscribeInput) (*SubscriptionDetail, error) {
	if userID == primitive.NilObjectID || input.TrainerID == primitive.NilObjectID || input.SubscriptionPlanID == primitive.NilObjectID {
		return nil, errors.New("user ID, trainer ID and subscription plan ID are required")
	}

	// 1. The commercial plan must exist.
	plan, err := s.planRepo.GetByID(ctx, input.SubscriptionPlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubscriptionPlanNotFound
		}
		return nil, err
	}

	// 2. The trainer must be subscribable under the same policy that gates
	// the listing: role=trainer, approved and active.
	trainer, err := s.userRepo.GetByID(ctx, input.TrainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	if !trainer.Subscribable() {
		return nil, ErrTrainerNotFound
	}

	// 3. Optional add-on plans must exist and belong to the selected trainer.
	var dietPlan *domain.DietPlan
	if input.DietPlanID != nil && *input.DietPlanID != primitive.NilObjectID {
		dietPlan, err = s.dietPlanRepo.GetByID(ctx, *input.DietPlanID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrDietPlanNotFound
			}
			return nil, err
		}
		if dietPlan.TrainerID != trainer.ID {
			return nil, ErrPlanNotOwnedByTrainer
		}
	}

	var workoutPlan *domain.WorkoutPlan
	if input.WorkoutPlanID != nil && *input.WorkoutPlanID != primitive.NilObjectID {
		workoutPlan, err = s.workoutPlanRepo.GetByID(ctx, *input.WorkoutPlanID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrWorkoutPlanNotFound
			}
			return nil, err
		}
		if workoutPlan.TrainerID != trainer.ID {
			return nil, ErrPlanNotOwnedByTrainer
		}
	}

	// 4. Compute derived fields. Amount and EndDate are snapshots: later
	// plan edits never touch this record.
	startDate := time.Now().UTC()
	sub := &domain.Subscription{
		UserID:             userID,
		TrainerID:          trainer.ID,
		SubscriptionPlanID: plan.ID,
		StartDate:          startDate,
		EndDate:            startDate.AddDate(0, 0, plan.Duration),
		Amount:             plan.Price,
		// No payment gateway is integrated; payment always succeeds.
		PaymentStatus: domain.PaymentCompleted,
		Status:        domain.SubscriptionActive,
		TransactionID: newTransactionID(),
	}
	if dietPlan != nil {
		sub.DietPlanID = &dietPlan.ID
	}
	if workoutPlan != nil {
		sub.WorkoutPlanID = &workoutPlan.ID
	}

	subID, err := s.subscriptionRepo.Create(ctx, sub)
	if err != nil {
		return nil, err
	}
	sub.ID = subID

	trainer.PasswordHash = ""
	return &SubscriptionDetail{
		Subscription: *sub,
		Trainer:      trainer,
		Plan:         plan,
		DietPlan:     dietPlan,
		WorkoutPlan:  workoutPlan,
	}, nil
}

// MySubscriptions returns a member's subscriptions, newest first, each
// resolved against its trainer and plan references.
func (s *memberService) MySubscriptions(ctx context.Context, userID primitive.ObjectID) ([]SubscriptionDetail, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}

	subs, err := s.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]SubscriptionDetail, 0, len(subs))
	for _, sub := range subs {
		detail := SubscriptionDetail{Subscription: sub}

		// A dangling reference (deactivated trainer, edited plan) still
		// renders: the subscription carries its own snapshots.
		if trainer, err := s.userRepo.GetByID(ctx, sub.TrainerID); err == nil {
			trainer.PasswordHash = ""
			detail.Trainer = trainer
		}
		if plan, err := s.planRepo.GetByID(ctx, sub.SubscriptionPlanID); err == nil {
			detail.Plan = plan
		}
		if sub.DietPlanID != nil {
			if dp, err := s.dietPlanRepo.GetByID(ctx, *sub.DietPlanID); err == nil {
				detail.DietPlan = dp
			}
		}
		if sub.WorkoutPlanID != nil {
			if wp, err := s.workoutPlanRepo.GetByID(ctx, *sub.WorkoutPlanID); err == nil {
				detail.WorkoutPlan = wp
			}
		}
		details = append(details, detail)
	}
	return details, nil
}

// newTransactionID synthesizes a collision-resistant transaction identifier:
// a millisecond timestamp plus a random UUID-derived suffix.
func newTransactionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("TXN%d%s", time.Now().UnixMilli(), suffix)
}
