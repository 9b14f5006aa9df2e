package api

import (
	"net/http"

	"fitnesshub/internal/domain"
	"fitnesshub/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all API routes on the given router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	memberService service.MemberService,
	trainerService service.TrainerService,
	adminService service.AdminService,
) {
	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(memberService)
	trainerHandler := NewTrainerHandler(trainerService)
	adminHandler := NewAdminHandler(adminService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// --- Member Routes ---
	userGroup := api.Group("/user")
	userGroup.Use(authMiddleware, RoleMiddleware(domain.RoleUser))
	{
		userGroup.GET("/trainers", userHandler.GetTrainers)
		userGroup.GET("/subscription-plans", userHandler.GetSubscriptionPlans)
		userGroup.POST("/subscribe", userHandler.Subscribe)
		userGroup.GET("/my-subscriptions", userHandler.GetMySubscriptions)
	}

	// --- Trainer Routes ---
	trainerGroup := api.Group("/trainer")
	trainerGroup.Use(authMiddleware, RoleMiddleware(domain.RoleTrainer))
	{
		trainerGroup.POST("/diet-plans", trainerHandler.CreateDietPlan)
		trainerGroup.GET("/diet-plans", trainerHandler.GetDietPlans)
		trainerGroup.PUT("/diet-plans/:id", trainerHandler.UpdateDietPlan)
		trainerGroup.DELETE("/diet-plans/:id", trainerHandler.DeleteDietPlan)

		trainerGroup.POST("/workout-plans", trainerHandler.CreateWorkoutPlan)
		trainerGroup.GET("/workout-plans", trainerHandler.GetWorkoutPlans)
		trainerGroup.PUT("/workout-plans/:id", trainerHandler.UpdateWorkoutPlan)
		trainerGroup.DELETE("/workout-plans/:id", trainerHandler.DeleteWorkoutPlan)

		trainerGroup.GET("/subscribers", trainerHandler.GetSubscribers)

		trainerGroup.POST("/plans/:planId/media-upload-url", trainerHandler.RequestMediaUploadURL)
		trainerGroup.GET("/media/:mediaId/download-url", trainerHandler.GetMediaDownloadURL)
	}

	// --- Admin Routes ---
	adminGroup := api.Group("/admin")
	adminGroup.Use(authMiddleware, RoleMiddleware(domain.RoleAdmin))
	{
		adminGroup.GET("/users", adminHandler.GetUsers)
		adminGroup.PUT("/users/:id", adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", adminHandler.DeleteUser)

		adminGroup.GET("/trainers/pending", adminHandler.GetPendingTrainers)
		adminGroup.PUT("/trainers/:id/approve", adminHandler.ApproveTrainer)

		adminGroup.GET("/reports/statistics", adminHandler.GetStatistics)

		adminGroup.POST("/subscription-plans", adminHandler.CreateSubscriptionPlan)
		adminGroup.GET("/subscription-plans", adminHandler.GetSubscriptionPlans)
		adminGroup.PUT("/subscription-plans/:id", adminHandler.UpdateSubscriptionPlan)
		adminGroup.DELETE("/subscription-plans/:id", adminHandler.DeleteSubscriptionPlan)
	}
}
