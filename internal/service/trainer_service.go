package service

import (
	"context"
	"errors"
	"fmt"

	"fitnesshub/internal/domain"
	"fitnesshub/internal/repository"
	"fitnesshub/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanAccessDenied = errors.New("access denied: trainer does not own this plan")
	ErrMediaNotFound    = errors.New("plan media not found")
	ErrURLGeneration    = errors.New("failed to generate storage URL")
)

// SubscriberEntry is one paid subscription resolved with the member who
// bought it and the plan they bought.
type SubscriberEntry struct {
	Subscription domain.Subscription      `json:"subscription"`
	Member       *domain.User             `json:"member,omitempty"`
	Plan         *domain.SubscriptionPlan `json:"subscriptionPlan,omitempty"`
}

// SubscriberReport is the trainer's subscriber view: completed
// subscriptions plus aggregates computed on read.
type SubscriberReport struct {
	Subscribers     []SubscriberEntry `json:"subscribers"`
	SubscriberCount int64             `json:"subscriberCount"`
	TotalRevenue    float64           `json:"totalRevenue"`
}

// MediaUploadRequest describes the file a trainer wants to attach to a plan.
type MediaUploadRequest struct {
	PlanID      primitive.ObjectID
	PlanKind    domain.PlanKind
	FileName    string
	ContentType string
	Size        int64
}

type TrainerService interface {
	// Diet plans
	CreateDietPlan(ctx context.Context, trainerID primitive.ObjectID, plan domain.DietPlan) (*domain.DietPlan, error)
	GetDietPlans(ctx context.Context, trainerID primitive.ObjectID) ([]domain.DietPlan, error)
	UpdateDietPlan(ctx context.Context, trainerID, planID primitive.ObjectID, updates domain.DietPlan) (*domain.DietPlan, error)
	DeleteDietPlan(ctx context.Context, trainerID, planID primitive.ObjectID) error

	// Workout plans
	CreateWorkoutPlan(ctx context.Context, trainerID primitive.ObjectID, plan domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	GetWorkoutPlans(ctx context.Context, trainerID primitive.ObjectID) ([]domain.WorkoutPlan, error)
	UpdateWorkoutPlan(ctx context.Context, trainerID, planID primitive.ObjectID, updates domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	DeleteWorkoutPlan(ctx context.Context, trainerID, planID primitive.ObjectID) error

	// Subscribers
	GetSubscribers(ctx context.Context, trainerID primitive.ObjectID) (*SubscriberReport, error)

	// Plan media
	RequestMediaUpload(ctx context.Context, trainerID primitive.ObjectID, req MediaUploadRequest) (*domain.PlanMedia, string, error)
	GetMediaDownloadURL(ctx context.Context, trainerID, mediaID primitive.ObjectID) (string, error)
}

// trainerService implements the TrainerService interface.
type trainerService struct {
	userRepo         repository.UserRepository
	dietPlanRepo     repository.DietPlanRepository
	workoutPlanRepo  repository.WorkoutPlanRepository
	subscriptionRepo repository.SubscriptionRepository
	planRepo         repository.SubscriptionPlanRepository
	mediaRepo        repository.MediaRepository
	fileStorage      storage.FileStorage
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(
	userRepo repository.UserRepository,
	dietPlanRepo repository.DietPlanRepository,
	workoutPlanRepo repository.WorkoutPlanRepository,
	subscriptionRepo repository.SubscriptionRepository,
	planRepo repository.SubscriptionPlanRepository,
	mediaRepo repository.MediaRepository,
	fileStorage storage.FileStorage,
) TrainerService {
	return &trainerService{
		userRepo:         userRepo,
		dietPlanRepo:     dietPlanRepo,
		workoutPlanRepo:  workoutPlanRepo,
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		mediaRepo:        mediaRepo,
		fileStorage:      fileStorage,
	}
}

// === Diet Plans ===

// CreateDietPlan creates a new diet plan owned by the trainer.
func (s *trainerService) CreateDietPlan(ctx context.Context, trainerID primitive.ObjectID, plan domain.DietPlan) (*domain.DietPlan, error) {
	if trainerID == primitive.NilObjectID {
		return nil, errors.New("trainer ID is required")
	}
	plan.TrainerID = trainerID
	plan.IsActive = true

	id, err := s.dietPlanRepo.Create(ctx, &plan)
	if err != nil {
		return nil, err
	}
	plan.ID = id
	return &plan, nil
}

// GetDietPlans returns all of the trainer's diet plans, inactive included,
// so the trainer sees soft-deleted content too.
func (s *trainerService) GetDietPlans(ctx context.Context, trainerID primitive.ObjectID) ([]domain.DietPlan, error) {
	return s.dietPlanRepo.GetByTrainerID(ctx, trainerID, false)
}

// UpdateDietPlan modifies a diet plan the trainer owns.
func (s *trainerService) UpdateDietPlan(ctx context.Context, trainerID, planID primitive.ObjectID, updates domain.DietPlan) (*domain.DietPlan, error) {
	existing, err := s.dietPlanRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDietPlanNotFound
		}
		return nil, err
	}
	if existing.TrainerID != trainerID {
		return nil, ErrPlanAccessDenied
	}

	updates.ID = planID
	updates.TrainerID = trainerID
	if err := s.dietPlanRepo.Update(ctx, &updates); err != nil {
		return nil, err
	}
	return s.dietPlanRepo.GetByID(ctx, planID)
}

// DeleteDietPlan soft-deletes a diet plan the trainer owns. Existing
// subscriptions referencing the plan keep resolving.
func (s *trainerService) DeleteDietPlan(ctx context.Context, trainerID, planID primitive.ObjectID) error {
	err := s.dietPlanRepo.Deactivate(ctx, planID, trainerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrDietPlanNotFound
	}
	return err
}

// === Workout Plans ===

// CreateWorkoutPlan creates a new workout plan owned by the trainer.
func (s *trainerService) CreateWorkoutPlan(ctx context.Context, trainerID primitive.ObjectID, plan domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	if trainerID == primitive.NilObjectID {
		return nil, errors.New("trainer ID is required")
	}
	plan.TrainerID = trainerID
	plan.IsActive = true

	id, err := s.workoutPlanRepo.Create(ctx, &plan)
	if err != nil {
		return nil, err
	}
	plan.ID = id
	return &plan, nil
}

// GetWorkoutPlans returns all of the trainer's workout plans, inactive included.
func (s *trainerService) GetWorkoutPlans(ctx context.Context, trainerID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	return s.workoutPlanRepo.GetByTrainerID(ctx, trainerID, false)
}

// UpdateWorkoutPlan modifies a workout plan the trainer owns.
func (s *trainerService) UpdateWorkoutPlan(ctx context.Context, trainerID, planID primitive.ObjectID, updates domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	existing, err := s.workoutPlanRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutPlanNotFound
		}
		return nil, err
	}
	if existing.TrainerID != trainerID {
		return nil, ErrPlanAccessDenied
	}

	updates.ID = planID
	updates.TrainerID = trainerID
	if err := s.workoutPlanRepo.Update(ctx, &updates); err != nil {
		return nil, err
	}
	return s.workoutPlanRepo.GetByID(ctx, planID)
}

// DeleteWorkoutPlan soft-deletes a workout plan the trainer owns.
func (s *trainerService) DeleteWorkoutPlan(ctx context.Context, trainerID, planID primitive.ObjectID) error {
	err := s.workoutPlanRepo.Deactivate(ctx, planID, trainerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutPlanNotFound
	}
	return err
}

// === Subscribers ===

// GetSubscribers returns the trainer's completed subscriptions, each
// resolved with the member and the purchased plan, plus subscriber count
// and revenue total. Both aggregates are summed on read — the ledger never
// maintains counters.
func (s *trainerService) GetSubscribers(ctx context.Context, trainerID primitive.ObjectID) (*SubscriberReport, error) {
	if trainerID == primitive.NilObjectID {
		return nil, errors.New("trainer ID is required")
	}

	subs, err := s.subscriptionRepo.GetCompletedByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	report := &SubscriberReport{
		Subscribers:     make([]SubscriberEntry, 0, len(subs)),
		SubscriberCount: int64(len(subs)),
	}
	for _, sub := range subs {
		entry := SubscriberEntry{Subscription: sub}
		if member, err := s.userRepo.GetByID(ctx, sub.UserID); err == nil {
			member.PasswordHash = ""
			entry.Member = member
		}
		if plan, err := s.planRepo.GetByID(ctx, sub.SubscriptionPlanID); err == nil {
			entry.Plan = plan
		}
		report.TotalRevenue += sub.Amount
		report.Subscribers = append(report.Subscribers, entry)
	}
	return report, nil
}

// === Plan Media ===

// RequestMediaUpload verifies the trainer owns the target plan, records the
// media metadata, and returns a presigned PUT URL the trainer uploads the
// file through.
func (s *trainerService) RequestMediaUpload(ctx context.Context, trainerID primitive.ObjectID, req MediaUploadRequest) (*domain.PlanMedia, string, error) {
	if req.FileName == "" || req.ContentType == "" {
		return nil, "", errors.New("file name and content type are required")
	}

	switch req.PlanKind {
	case domain.PlanKindDiet:
		plan, err := s.dietPlanRepo.GetByID(ctx, req.PlanID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, "", ErrDietPlanNotFound
			}
			return nil, "", err
		}
		if plan.TrainerID != trainerID {
			return nil, "", ErrPlanAccessDenied
		}
	case domain.PlanKindWorkout:
		plan, err := s.workoutPlanRepo.GetByID(ctx, req.PlanID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, "", ErrWorkoutPlanNotFound
			}
			return nil, "", err
		}
		if plan.TrainerID != trainerID {
			return nil, "", ErrPlanAccessDenied
		}
	default:
		return nil, "", errors.New("plan kind must be diet or workout")
	}

	objectKey := fmt.Sprintf("plan-media/%s/%s/%s", trainerID.Hex(), req.PlanID.Hex(), uuid.NewString())

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, "", ErrURLGeneration
	}

	media := &domain.PlanMedia{
		TrainerID:   trainerID,
		PlanID:      req.PlanID,
		PlanKind:    req.PlanKind,
		S3ObjectKey: objectKey,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Size:        req.Size,
	}
	mediaID, err := s.mediaRepo.Create(ctx, media)
	if err != nil {
		return nil, "", err
	}
	media.ID = mediaID

	return media, uploadURL, nil
}

// GetMediaDownloadURL returns a presigned GET URL for media the trainer owns.
func (s *trainerService) GetMediaDownloadURL(ctx context.Context, trainerID, mediaID primitive.ObjectID) (string, error) {
	media, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrMediaNotFound
		}
		return "", err
	}
	if media.TrainerID != trainerID {
		return "", ErrPlanAccessDenied
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, media.S3ObjectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrURLGeneration
	}
	return url, nil
}
