package main

import (
	"log"
	"os"

	"admission-portal-api/config"
	"admission-portal-api/controllers"
	"admission-portal-api/middleware"
	"admission-portal-api/models"
	"admission-portal-api/monitor"
	"admission-portal-api/routes"
	"admission-portal-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize database and cache
	config.InitDB()
	config.InitCache()

	if err := config.DB.AutoMigrate(&models.User{}, &models.Admission{}, &models.EmailLog{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// The mailer is built once here and handed to the notification service;
	// nil means SMTP is unconfigured and dispatches degrade to recorded skips.
	mailer := config.NewMailerFromEnv()
	if mailer == nil {
		log.Println("SMTP not configured, status emails will be skipped")
	}

	notifications := services.NewNotificationService(config.DB, mailer)
	admissionSvc := services.NewAdmissionService(config.DB, notifications)
	admissionCtl := controllers.NewAdmissionController(admissionSvc)

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Security headers
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	router.Use(middleware.CORSMiddleware())

	// Ops surface
	monitor.RegisterStatusRoute(router, mailer != nil)
	monitor.RegisterMonitorPage(router)
	monitor.RegisterLogsRoute(router)

	routes.SetupRoutes(router, admissionCtl)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
