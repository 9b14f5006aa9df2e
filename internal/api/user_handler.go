package api

import (
	"errors"
	"net/http"

	"fitnesshub/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler serves the member-facing surface: trainer discovery, plan
// browsing and the subscription workflow.
type UserHandler struct {
	memberService service.MemberService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(memberService service.MemberService) *UserHandler {
	return &UserHandler{memberService: memberService}
}

// --- DTOs ---

// SubscribeRequest is the member's subscription selection. Unknown or
// malformed ids are rejected here, before the workflow runs.
type SubscribeRequest struct {
	TrainerID          string `json:"trainerId" binding:"required"`
	SubscriptionPlanID string `json:"subscriptionPlanId" binding:"required"`
	DietPlanID         string `json:"dietPlanId"`
	WorkoutPlanID      string `json:"workoutPlanId"`
}

// --- Handler Methods ---

// GetTrainers godoc
// @Summary List approved trainers with their plans and subscriber counts
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match on name or specialization"
// @Param specialization query string false "Substring match on specialization"
// @Success 200 {array} service.TrainerListing
// @Router /user/trainers [get]
func (h *UserHandler) GetTrainers(c *gin.Context) {
	search := c.Query("search")
	specialization := c.Query("specialization")

	trainers, err := h.memberService.ListTrainers(c.Request.Context(), search, specialization)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve trainers.")
		return
	}

	c.JSON(http.StatusOK, trainers)
}

// GetSubscriptionPlans godoc
// @Summary List active subscription plans
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.SubscriptionPlan
// @Router /user/subscription-plans [get]
func (h *UserHandler) GetSubscriptionPlans(c *gin.Context) {
	plans, err := h.memberService.ListSubscriptionPlans(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve subscription plans.")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// Subscribe godoc
// @Summary Subscribe to a trainer through a subscription plan
// @Description Validates the selection, then persists one subscription with
// @Description computed validity dates, a price snapshot and a fresh transaction id.
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subscription body SubscribeRequest true "Subscription selection"
// @Success 201 {object} gin.H "message + populated subscription"
// @Failure 404 {object} gin.H "Referenced plan or trainer not found"
// @Router /user/subscribe [post]
func (h *UserHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	input, err := buildSubscribeInput(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.memberService.Subscribe(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriptionPlanNotFound),
			errors.Is(err, service.ErrTrainerNotFound),
			errors.Is(err, service.ErrDietPlanNotFound),
			errors.Is(err, service.ErrWorkoutPlanNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPlanNotOwnedByTrainer):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create subscription.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Subscription created successfully",
		"subscription": detail,
	})
}

// GetMySubscriptions godoc
// @Summary List the member's subscriptions, newest first
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.SubscriptionDetail
// @Router /user/my-subscriptions [get]
func (h *UserHandler) GetMySubscriptions(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	subs, err := h.memberService.MySubscriptions(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve subscriptions.")
		return
	}

	c.JSON(http.StatusOK, subs)
}

// buildSubscribeInput converts the request's hex ids into ObjectIDs,
// rejecting malformed values before the workflow sees them.
func buildSubscribeInput(req SubscribeRequest) (service.SubscribeInput, error) {
	var input service.SubscribeInput

	trainerID, err := primitive.ObjectIDFromHex(req.TrainerID)
	if err != nil {
		return input, errors.New("invalid trainer ID format")
	}
	planID, err := primitive.ObjectIDFromHex(req.SubscriptionPlanID)
	if err != nil {
		return input, errors.New("invalid subscription plan ID format")
	}
	input.TrainerID = trainerID
	input.SubscriptionPlanID = planID

	if req.DietPlanID != "" {
		dietID, err := primitive.ObjectIDFromHex(req.DietPlanID)
		if err != nil {
			return input, errors.New("invalid diet plan ID format")
		}
		input.DietPlanID = &dietID
	}
	if req.WorkoutPlanID != "" {
		workoutID, err := primitive.ObjectIDFromHex(req.WorkoutPlanID)
		if err != nil {
			return input, errors.New("invalid workout plan ID format")
		}
		input.WorkoutPlanID = &workoutID
	}
	return input, nil
}
