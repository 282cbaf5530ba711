package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"magala-server/internal/config"
	"magala-server/internal/handlers"
	"magala-server/internal/middleware"
	"magala-server/internal/repository"
	"magala-server/internal/services"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	profileService := services.NewProfileService(profileRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, profileRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	adminService := services.NewAdminService(profileRepo, appointmentRepo, paymentRepo, auditLogRepo, cfg.AuditLogFetchLimit)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(profileService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
		}

		// The caller's own profile; reachable before a profile exists so it
		// can be created.
		profileRoutes := private.Group("/profile")
		{
			profileRoutes.GET("", profileHandler.GetProfile)
			profileRoutes.POST("", profileHandler.CreateProfile)
			profileRoutes.PUT("", profileHandler.UpdateProfile)
		}

		// Approved professionals, for booking
		private.GET("/professionnels", profileHandler.GetProfessionnels)

		// Routes below need the caller's profile loaded
		withProfile := private.Group("")
		withProfile.Use(middleware.ProfileMiddleware(profileRepo))
		{
			appointmentRoutes := withProfile.Group("/appointments")
			{
				appointmentRoutes.GET("", appointmentHandler.GetAppointments)
				appointmentRoutes.POST("", appointmentHandler.BookAppointment)
			}

			paymentRoutes := withProfile.Group("/payments")
			{
				paymentRoutes.GET("", paymentHandler.GetPayments)
			}

			// Admin console routes
			adminRoutes := withProfile.Group("/admin")
			adminRoutes.Use(middleware.AdminMiddleware()) // Only admins
			{
				adminRoutes.GET("/users", adminHandler.GetUsers)
				adminRoutes.PATCH("/users/:id/role", adminHandler.UpdateUserRole)
				adminRoutes.PATCH("/users/:id/status", adminHandler.UpdateUserStatus)
				adminRoutes.GET("/appointments", adminHandler.GetAppointments)
				adminRoutes.PATCH("/appointments/:id/cancel", adminHandler.CancelAppointment)
				adminRoutes.GET("/payments", adminHandler.GetPayments)
				adminRoutes.PATCH("/payments/:id/refund", adminHandler.RefundPayment)
				adminRoutes.GET("/audit-logs", adminHandler.GetAuditLogs)
			}
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
