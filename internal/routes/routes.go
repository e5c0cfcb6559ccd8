package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/config"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/handlers"
	infraRepo "github.com/Ashugithubb/BookSaloon-Backend/internal/infra/repository"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/mail"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/middleware"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/notify"
	ucAppointment "github.com/Ashugithubb/BookSaloon-Backend/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	notifySink := notify.NewSink(db, rdb)
	notifier := notify.NewDispatcher(notifySink, log)

	mailer := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	slotsUC := ucAppointment.NewGetSlots(appointmentRepo)

	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		notifier,
	)

	statusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		notifier,
	)

	initiateUC := ucAppointment.NewInitiateCompletion(
		appointmentRepo,
		mailer,
		log,
	)

	verifyUC := ucAppointment.NewVerifyCompletion(
		appointmentRepo,
		notifier,
	)

	claimUC := ucAppointment.NewClaimAppointment(
		appointmentRepo,
		notifier,
	)

	cleanupUC := ucAppointment.NewCleanupExpiredPending(appointmentRepo)

	dayListUC := ucAppointment.NewListBusinessDay(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	hoursHandler := handlers.NewBusinessHoursHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)

	publicHandler := handlers.NewPublicHandler(db, cfg, slotsUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		cfg,
		appointmentRepo,
		bookUC,
		statusUC,
		initiateUC,
		verifyUC,
		claimUC,
		cleanupUC,
		dayListUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/businesses", publicHandler.ListBusinesses)
			publicAPI.GET("/businesses/:id/services", publicHandler.ListServices)
			publicAPI.GET("/businesses/:id/slots", publicHandler.Slots)
			publicAPI.GET("/businesses/:id/reviews", publicHandler.ListReviews)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/notifications", notificationHandler.List)

			secured.GET("/business", businessHandler.GetMine)
			secured.PATCH("/business", businessHandler.UpdateMine)

			secured.GET("/business/services", serviceHandler.List)
			secured.POST("/business/services", serviceHandler.Create)
			secured.PATCH("/business/services/:id", serviceHandler.Update)

			secured.GET("/business/staff", staffHandler.List)
			secured.POST("/business/staff", staffHandler.Create)

			secured.GET("/business/hours", hoursHandler.Get)
			secured.PUT("/business/hours", hoursHandler.Update)

			secured.POST("/reviews", reviewHandler.Create)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/appointments/mine", appointmentHandler.ListMine)
			secured.GET("/business/appointments", appointmentHandler.ListBusinessDay)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.POST("/appointments/:id/complete/initiate", appointmentHandler.InitiateCompletion)
			secured.POST("/appointments/:id/complete/verify", appointmentHandler.VerifyCompletion)
			secured.POST("/appointments/:id/claim", appointmentHandler.Claim)
			secured.POST("/business/appointments/cleanup", appointmentHandler.Cleanup)
		}
	}
}
