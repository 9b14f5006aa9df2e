package api

import (
	"errors"
	"net/http"

	"fitnesshub/internal/domain"
	"fitnesshub/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainerHandler serves the trainer-facing surface: plan authoring,
// subscriber reporting and plan media.
type TrainerHandler struct {
	trainerService service.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// --- DTOs ---

type MealRequest struct {
	MealType    domain.MealType `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Description string          `json:"description" binding:"required"`
	Calories    int             `json:"calories" binding:"min=0"`
}

type DietPlanRequest struct {
	Title          string                `json:"title" binding:"required"`
	Description    string                `json:"description"`
	Duration       int                   `json:"duration" binding:"required,min=1"` // weeks
	CaloriesPerDay int                   `json:"caloriesPerDay" binding:"required,min=1"`
	TargetAudience domain.TargetAudience `json:"targetAudience" binding:"required,oneof=weight_loss muscle_gain maintenance general_fitness"`
	Price          float64               `json:"price" binding:"min=0"`
	Meals          []MealRequest         `json:"meals" binding:"dive"`
}

type ExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	Sets        int    `json:"sets" binding:"required,min=1"`
	Reps        int    `json:"reps" binding:"required,min=1"`
	RestTime    int    `json:"restTime" binding:"min=0"` // seconds
	Description string `json:"description"`
}

type WorkoutPlanRequest struct {
	Title          string                `json:"title" binding:"required"`
	Description    string                `json:"description"`
	Duration       int                   `json:"duration" binding:"required,min=1"` // weeks
	Difficulty     domain.Difficulty     `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	TargetAudience domain.TargetAudience `json:"targetAudience" binding:"required,oneof=weight_loss muscle_gain maintenance general_fitness"`
	Price          float64               `json:"price" binding:"min=0"`
	Exercises      []ExerciseRequest     `json:"exercises" binding:"dive"`
}

type MediaUploadURLRequest struct {
	PlanKind    domain.PlanKind `json:"planKind" binding:"required,oneof=diet workout"`
	FileName    string          `json:"fileName" binding:"required"`
	ContentType string          `json:"contentType" binding:"required"`
	Size        int64           `json:"size" binding:"min=0"`
}

type MediaUploadURLResponse struct {
	Media     domain.PlanMedia `json:"media"`
	UploadURL string           `json:"uploadUrl"`
}

type MediaDownloadURLResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

// --- Diet Plan Handlers ---

// CreateDietPlan godoc
// @Summary Create a diet plan
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body DietPlanRequest true "Diet plan details"
// @Success 201 {object} domain.DietPlan
// @Router /trainer/diet-plans [post]
func (h *TrainerHandler) CreateDietPlan(c *gin.Context) {
	var req DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	plan, err := h.trainerService.CreateDietPlan(c.Request.Context(), trainerID, mapDietPlanRequest(req))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create diet plan.")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetDietPlans godoc
// @Summary List the trainer's diet plans
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.DietPlan
// @Router /trainer/diet-plans [get]
func (h *TrainerHandler) GetDietPlans(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	plans, err := h.trainerService.GetDietPlans(c.Request.Context(), trainerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve diet plans.")
		return
	}
	if plans == nil {
		plans = []domain.DietPlan{}
	}

	c.JSON(http.StatusOK, plans)
}

// UpdateDietPlan godoc
// @Summary Update a diet plan the trainer owns
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Diet plan ObjectID hex"
// @Param plan body DietPlanRequest true "Updated diet plan details"
// @Success 200 {object} domain.DietPlan
// @Router /trainer/diet-plans/{id} [put]
func (h *TrainerHandler) UpdateDietPlan(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid diet plan ID format.")
		return
	}

	var req DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	updates := mapDietPlanRequest(req)
	updates.IsActive = true
	plan, err := h.trainerService.UpdateDietPlan(c.Request.Context(), trainerID, planID, updates)
	if err != nil {
		mapTrainerPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeleteDietPlan godoc
// @Summary Soft-delete a diet plan the trainer owns
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Diet plan ObjectID hex"
// @Success 200 {object} gin.H
// @Router /trainer/diet-plans/{id} [delete]
func (h *TrainerHandler) DeleteDietPlan(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid diet plan ID format.")
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	if err := h.trainerService.DeleteDietPlan(c.Request.Context(), trainerID, planID); err != nil {
		mapTrainerPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Diet plan deleted successfully"})
}

// --- Workout Plan Handlers ---

// CreateWorkoutPlan godoc
// @Summary Create a workout plan
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body WorkoutPlanRequest true "Workout plan details"
// @Success 201 {object} domain.WorkoutPlan
// @Router /trainer/workout-plans [post]
func (h *TrainerHandler) CreateWorkoutPlan(c *gin.Context) {
	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	plan, err := h.trainerService.CreateWorkoutPlan(c.Request.Context(), trainerID, mapWorkoutPlanRequest(req))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create workout plan.")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetWorkoutPlans godoc
// @Summary List the trainer's workout plans
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.WorkoutPlan
// @Router /trainer/workout-plans [get]
func (h *TrainerHandler) GetWorkoutPlans(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	plans, err := h.trainerService.GetWorkoutPlans(c.Request.Context(), trainerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout plans.")
		return
	}
	if plans == nil {
		plans = []domain.WorkoutPlan{}
	}

	c.JSON(http.StatusOK, plans)
}

// UpdateWorkoutPlan godoc
// @Summary Update a workout plan the trainer owns
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout plan ObjectID hex"
// @Param plan body WorkoutPlanRequest true "Updated workout plan details"
// @Success 200 {object} domain.WorkoutPlan
// @Router /trainer/workout-plans/{id} [put]
func (h *TrainerHandler) UpdateWorkoutPlan(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout plan ID format.")
		return
	}

	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	updates := mapWorkoutPlanRequest(req)
	updates.IsActive = true
	plan, err := h.trainerService.UpdateWorkoutPlan(c.Request.Context(), trainerID, planID, updates)
	if err != nil {
		mapTrainerPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeleteWorkoutPlan godoc
// @Summary Soft-delete a workout plan the trainer owns
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout plan ObjectID hex"
// @Success 200 {object} gin.H
// @Router /trainer/workout-plans/{id} [delete]
func (h *TrainerHandler) DeleteWorkoutPlan(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout plan ID format.")
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	if err := h.trainerService.DeleteWorkoutPlan(c.Request.Context(), trainerID, planID); err != nil {
		mapTrainerPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout plan deleted successfully"})
}

// --- Subscriber Handlers ---

// GetSubscribers godoc
// @Summary List the trainer's paid subscribers with aggregates
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.SubscriberReport
// @Router /trainer/subscribers [get]
func (h *TrainerHandler) GetSubscribers(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	report, err := h.trainerService.GetSubscribers(c.Request.Context(), trainerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve subscribers.")
		return
	}

	c.JSON(http.StatusOK, report)
}

// --- Plan Media Handlers ---

// RequestMediaUploadURL godoc
// @Summary Get a presigned upload URL for plan media
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Plan ObjectID hex"
// @Param media body MediaUploadURLRequest true "File details"
// @Success 201 {object} MediaUploadURLResponse
// @Router /trainer/plans/{planId}/media-upload-url [post]
func (h *TrainerHandler) RequestMediaUploadURL(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("planId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	var req MediaUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	media, uploadURL, err := h.trainerService.RequestMediaUpload(c.Request.Context(), trainerID, service.MediaUploadRequest{
		PlanID:      planID,
		PlanKind:    req.PlanKind,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Size:        req.Size,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDietPlanNotFound), errors.Is(err, service.ErrWorkoutPlanNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPlanAccessDenied):
			abortWithError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrURLGeneration):
			abortWithError(c, http.StatusInternalServerError, "Could not generate upload URL.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to prepare media upload.")
		}
		return
	}

	c.JSON(http.StatusCreated, MediaUploadURLResponse{Media: *media, UploadURL: uploadURL})
}

// GetMediaDownloadURL godoc
// @Summary Get a presigned download URL for plan media the trainer owns
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Param mediaId path string true "Media ObjectID hex"
// @Success 200 {object} MediaDownloadURLResponse
// @Router /trainer/media/{mediaId}/download-url [get]
func (h *TrainerHandler) GetMediaDownloadURL(c *gin.Context) {
	mediaID, err := primitive.ObjectIDFromHex(c.Param("mediaId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid media ID format.")
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	url, err := h.trainerService.GetMediaDownloadURL(c.Request.Context(), trainerID, mediaID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMediaNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPlanAccessDenied):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL.")
		}
		return
	}

	c.JSON(http.StatusOK, MediaDownloadURLResponse{DownloadURL: url})
}

// --- Helpers ---

func mapDietPlanRequest(req DietPlanRequest) domain.DietPlan {
	meals := make([]domain.Meal, len(req.Meals))
	for i, m := range req.Meals {
		meals[i] = domain.Meal{
			MealType:    m.MealType,
			Description: m.Description,
			Calories:    m.Calories,
		}
	}
	return domain.DietPlan{
		Title:          req.Title,
		Description:    req.Description,
		Duration:       req.Duration,
		CaloriesPerDay: req.CaloriesPerDay,
		TargetAudience: req.TargetAudience,
		Price:          req.Price,
		Meals:          meals,
	}
}

func mapWorkoutPlanRequest(req WorkoutPlanRequest) domain.WorkoutPlan {
	exercises := make([]domain.Exercise, len(req.Exercises))
	for i, e := range req.Exercises {
		exercises[i] = domain.Exercise{
			Name:        e.Name,
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestTime:    e.RestTime,
			Description: e.Description,
		}
	}
	return domain.WorkoutPlan{
		Title:          req.Title,
		Description:    req.Description,
		Duration:       req.Duration,
		Difficulty:     req.Difficulty,
		TargetAudience: req.TargetAudience,
		Price:          req.Price,
		Exercises:      exercises,
	}
}

// mapTrainerPlanError maps plan CRUD service errors to HTTP statuses.
func mapTrainerPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDietPlanNotFound), errors.Is(err, service.ErrWorkoutPlanNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPlanAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to process plan.")
	}
}
