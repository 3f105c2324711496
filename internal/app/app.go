package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"traders-bloc/pkg/config"
	"traders-bloc/pkg/jwt"
	"traders-bloc/pkg/logger"
	"traders-bloc/pkg/middleware"
	"traders-bloc/pkg/queue"
	"traders-bloc/pkg/s3"

	platformHTTP "traders-bloc/internal/controller/http"
	"traders-bloc/internal/repo/persistent"
	"traders-bloc/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "traders-bloc/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client, s3Client *s3.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize Repositories
	userRepo := persistent.NewUserRepository(db)
	appUserRepo := persistent.NewAppUserRepository(db)
	adminRepo := persistent.NewAdminRepository(db)
	activityRepo := persistent.NewActivityLogRepository(db)
	vendorRepo := persistent.NewVendorRepository(db)
	invoiceRepo := persistent.NewInvoiceRepository(db)
	milestoneRepo := persistent.NewMilestoneRepository(db)
	fundingRequestRepo := persistent.NewFundingRequestRepository(db)
	kycRepo := persistent.NewKYCRepository(db)
	notificationRepo := persistent.NewNotificationRepository(db)
	reportRepo := persistent.NewReportRepository(db)

	// Initialize UseCases
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, adminRepo, userRepo, activityRepo, redisClient, queueClient, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, appUserRepo, adminRepo, notificationUseCase, jwtService, log)
	userUseCase := usecase.NewUserUseCase(userRepo, invoiceRepo, milestoneRepo, fundingRequestRepo, kycRepo, vendorRepo, notificationRepo, notificationUseCase, s3Client, log)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, invoiceRepo, milestoneRepo, fundingRequestRepo, kycRepo, vendorRepo, notificationRepo, activityRepo, reportRepo, notificationUseCase, redisClient, log)
	superAdminUseCase := usecase.NewSuperAdminUseCase(adminRepo, activityRepo, log)

	// Initialize HTTP handlers
	authHandler := platformHTTP.NewAuthHandler(authUseCase, log)
	userHandler := platformHTTP.NewUserHandler(userUseCase, notificationUseCase, log)
	adminHandler := platformHTTP.NewAdminHandler(adminUseCase, log)
	superAdminHandler := platformHTTP.NewSuperAdminHandler(superAdminUseCase, log)
	notificationHandler := platformHTTP.NewNotificationHandler(notificationUseCase, redisClient, queueClient, jwtService, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/unauthorized", func(c *gin.Context) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this resource"})
	})

	api := r.Group("/api/v1")

	// Public routes - rate limited by client IP
	auth := api.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(redisClient, cfg.AuthRateLimit, time.Minute))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/register-app-user", authHandler.RegisterAppUser)
		auth.POST("/login", authHandler.Login)
	}

	// WebSocket endpoint - handles authentication internally via query parameter
	api.GET("/notifications/stream", notificationHandler.Stream)

	// Protected routes - require authentication
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.GET("/notifications", userHandler.GetNotifications)
		protected.PATCH("/notifications/:id/read", userHandler.MarkNotificationRead)

		users := protected.Group("/users")
		{
			users.GET("/me", userHandler.GetProfile)
			users.PUT("/me", userHandler.UpdateProfile)
			users.POST("/kyc", userHandler.SubmitKYCDocuments)
			users.POST("/documents", userHandler.UploadDocument)
			users.GET("/vendors", userHandler.ListVendors)

			users.POST("/invoices", userHandler.CreateInvoice)
			users.GET("/invoices", userHandler.ListInvoices)
			users.PUT("/invoices/:id", userHandler.UpdateInvoice)
			users.DELETE("/invoices/:id", userHandler.DeleteInvoice)

			users.POST("/milestones", userHandler.CreateMilestone)
			users.PUT("/milestones/:id", userHandler.UpdateMilestone)
			users.DELETE("/milestones/:id", userHandler.DeleteMilestone)

			users.POST("/funding-requests", userHandler.CreateFundingRequest)
		}

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRoleRedirect(middleware.AdminRole, "/unauthorized"))
		{
			admin.GET("/dashboard", adminHandler.GetDashboard)
			admin.GET("/reports", adminHandler.GetReport)
			admin.GET("/profile", adminHandler.GetProfile)
			admin.PUT("/profile", adminHandler.UpdateAdminData)

			admin.GET("/milestones", adminHandler.ListMilestones)
			admin.GET("/milestones/:id", adminHandler.GetMilestone)
			admin.PATCH("/milestones/:id/status", adminHandler.UpdateMilestoneStatus)

			admin.GET("/invoices", adminHandler.ListInvoices)
			admin.GET("/invoices/:id", adminHandler.GetInvoice)
			admin.PATCH("/invoices/:id/status", adminHandler.UpdateInvoiceStatus)

			admin.GET("/funding-requests", adminHandler.ListFundingRequests)
			admin.GET("/funding-requests/:id", adminHandler.GetFundingRequest)
			admin.PATCH("/funding-requests/:id/status", adminHandler.UpdateFundingRequestStatus)

			admin.GET("/kyc", adminHandler.ListKYCDocuments)
			admin.GET("/kyc/:id", adminHandler.GetKYCDocument)
			admin.PATCH("/kyc/:id/status", adminHandler.UpdateKYCStatus)

			admin.GET("/vendors", adminHandler.ListVendors)
			admin.POST("/vendors", adminHandler.CreateVendor)
			admin.PUT("/vendors/:id", adminHandler.UpdateVendor)

			admin.GET("/notifications/queue", notificationHandler.QueueStatus)
		}

		superAdmin := protected.Group("/super-admin")
		superAdmin.Use(middleware.RequireRoleRedirect(middleware.SuperAdminRole, "/unauthorized"))
		{
			superAdmin.POST("/admins", superAdminHandler.CreateAdmin)
			superAdmin.PATCH("/admins/:id/status", superAdminHandler.UpdateAdminStatus)
			superAdmin.PATCH("/admins/:id/permissions", superAdminHandler.UpdateAdminPermissions)
			superAdmin.DELETE("/admins/:id", superAdminHandler.DeleteAdmin)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start processing the notification delivery queue in a goroutine
	go func() {
		log.Info("Starting notification delivery processor...")

		err := queueClient.ConsumeNotificationTasks(func(task map[string]interface{}) error {
			log.Info("[DELIVERY] Received task from RabbitMQ queue: %+v", task)
			return notificationUseCase.HandleDeliveryTask(task)
		})
		if err != nil {
			log.Error("Error starting notification queue consumer: %v", err)
		}
	}()

	// Start server in a goroutine
	go func() {
		log.Info("Traders Bloc starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Traders Bloc exited")
}
