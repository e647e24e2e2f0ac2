package routes

import (
	"net/http"

	"admission-portal-api/controllers"
	"admission-portal-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, admissions *controllers.AdmissionController) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/auth/register", controllers.Register)
			public.POST("/auth/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Admission Portal API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/profile", controllers.GetProfile)

			// Submission is open to any authenticated user
			protected.POST("/admissions", admissions.Submit)

			// Admin-only review workflow
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/admissions", admissions.List)
				admin.GET("/admissions/:id", admissions.Get)
				admin.PATCH("/admissions/:id/status", admissions.UpdateStatus)
				admin.POST("/admissions/:id/resend-email", admissions.ResendEmail)
				admin.GET("/email-logs", admissions.EmailLogs)

				admin.GET("/dashboard/stats", controllers.GetDashboardStats)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})
}
