package api

import (
	"errors"
	"net/http"

	"fitnesshub/internal/domain"
	"fitnesshub/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler serves the admin surface: user management, trainer
// approvals, platform statistics and subscription plan catalog.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// --- DTOs ---

type UpdateUserRequest struct {
	Name           *string `json:"name"`
	IsActive       *bool   `json:"isActive"`
	Specialization *string `json:"specialization"`
	Experience     *int    `json:"experience"`
}

type SubscriptionPlanRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Duration    int             `json:"duration" binding:"required,min=1"` // days
	Price       float64         `json:"price" binding:"min=0"`
	Features    []string        `json:"features" binding:"required,min=1"`
	PlanType    domain.PlanType `json:"planType" binding:"required,oneof=basic premium vip custom"`
	IsActive    *bool           `json:"isActive"`
}

// --- User Management Handlers ---

// GetUsers godoc
// @Summary List users, optionally filtered by role and search text
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role (admin, trainer, user)"
// @Param search query string false "Match against name or email"
// @Success 200 {array} UserResponse
// @Router /admin/users [get]
func (h *AdminHandler) GetUsers(c *gin.Context) {
	role := domain.Role(c.Query("role"))
	search := c.Query("search")

	users, err := h.adminService.ListUsers(c.Request.Context(), role, search)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve users.")
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(users))
}

// GetPendingTrainers godoc
// @Summary List trainers awaiting approval
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Router /admin/trainers/pending [get]
func (h *AdminHandler) GetPendingTrainers(c *gin.Context) {
	trainers, err := h.adminService.PendingTrainers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve pending trainers.")
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(trainers))
}

// ApproveTrainer godoc
// @Summary Approve a pending trainer account
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ObjectID hex"
// @Success 200 {object} UserResponse
// @Router /admin/trainers/{id}/approve [put]
func (h *AdminHandler) ApproveTrainer(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format.")
		return
	}

	trainer, err := h.adminService.ApproveTrainer(c.Request.Context(), trainerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotATrainer):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to approve trainer.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Trainer approved successfully",
		"trainer": MapUserToResponse(trainer),
	})
}

// UpdateUser godoc
// @Summary Update a user's profile fields
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ObjectID hex"
// @Param user body UpdateUserRequest true "Fields to update"
// @Success 200 {object} UserResponse
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.adminService.UpdateUser(c.Request.Context(), userID, service.UserUpdate{
		Name:           req.Name,
		IsActive:       req.IsActive,
		Specialization: req.Specialization,
		Experience:     req.Experience,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update user.")
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// DeleteUser godoc
// @Summary Deactivate a user account
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ObjectID hex"
// @Success 200 {object} gin.H
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	if err := h.adminService.DeactivateUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to deactivate user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deactivated successfully"})
}

// GetStatistics godoc
// @Summary Platform user statistics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.PlatformStats
// @Router /admin/reports/statistics [get]
func (h *AdminHandler) GetStatistics(c *gin.Context) {
	stats, err := h.adminService.GetStatistics(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute statistics.")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// --- Subscription Plan Handlers ---

// CreateSubscriptionPlan godoc
// @Summary Create a subscription plan
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body SubscriptionPlanRequest true "Plan details"
// @Success 201 {object} domain.SubscriptionPlan
// @Router /admin/subscription-plans [post]
func (h *AdminHandler) CreateSubscriptionPlan(c *gin.Context) {
	var req SubscriptionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.adminService.CreateSubscriptionPlan(c.Request.Context(), mapSubscriptionPlanRequest(req))
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlanDetails) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create subscription plan.")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetSubscriptionPlans godoc
// @Summary List all subscription plans, including deactivated ones
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.SubscriptionPlan
// @Router /admin/subscription-plans [get]
func (h *AdminHandler) GetSubscriptionPlans(c *gin.Context) {
	plans, err := h.adminService.ListSubscriptionPlans(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve subscription plans.")
		return
	}
	if plans == nil {
		plans = []domain.SubscriptionPlan{}
	}

	c.JSON(http.StatusOK, plans)
}

// UpdateSubscriptionPlan godoc
// @Summary Update a subscription plan
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ObjectID hex"
// @Param plan body SubscriptionPlanRequest true "Updated plan details"
// @Success 200 {object} domain.SubscriptionPlan
// @Router /admin/subscription-plans/{id} [put]
func (h *AdminHandler) UpdateSubscriptionPlan(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	var req SubscriptionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.adminService.UpdateSubscriptionPlan(c.Request.Context(), planID, mapSubscriptionPlanRequest(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriptionPlanNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidPlanDetails):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update subscription plan.")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeleteSubscriptionPlan godoc
// @Summary Deactivate a subscription plan
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ObjectID hex"
// @Success 200 {object} gin.H
// @Router /admin/subscription-plans/{id} [delete]
func (h *AdminHandler) DeleteSubscriptionPlan(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	if err := h.adminService.DeleteSubscriptionPlan(c.Request.Context(), planID); err != nil {
		if errors.Is(err, service.ErrSubscriptionPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to deactivate subscription plan.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription plan deactivated successfully"})
}

func mapSubscriptionPlanRequest(req SubscriptionPlanRequest) domain.SubscriptionPlan {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return domain.SubscriptionPlan{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Features:    req.Features,
		PlanType:    req.PlanType,
		IsActive:    isActive,
	}
}
