package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbershop-bg/booking-api/internal/cache"
	"github.com/barbershop-bg/booking-api/internal/config"
	"github.com/barbershop-bg/booking-api/internal/feed"
	"github.com/barbershop-bg/booking-api/internal/handlers"
	infraRepo "github.com/barbershop-bg/booking-api/internal/infra/repository"
	"github.com/barbershop-bg/booking-api/internal/media"
	"github.com/barbershop-bg/booking-api/internal/middleware"
	"github.com/barbershop-bg/booking-api/internal/notification"
	"github.com/barbershop-bg/booking-api/internal/timezone"
	ucBooking "github.com/barbershop-bg/booking-api/internal/usecase/booking"
)

type Deps struct {
	DB    *gorm.DB
	Cfg   *config.Config
	SMS   notification.Sender
	Cache *cache.AvailabilityCache
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	loc := timezone.Location(d.Cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)

	smsDispatcher := notification.NewDispatcher(d.SMS)
	feedDispatcher := feed.NewDispatcher(feed.NewWriter(d.DB))

	storage := media.NewStorage(d.Cfg)

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		loc,
		smsDispatcher,
		feedDispatcher,
		d.Cache,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		d.Cache,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		loc,
		smsDispatcher,
		feedDispatcher,
		d.Cache,
	)

	statusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		loc,
		d.Cache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Cfg)
	userHandler := handlers.NewUserHandler(d.DB)
	adminUsersHandler := handlers.NewAdminUsersHandler(d.DB)

	serviceHandler := handlers.NewServiceHandler(d.DB, storage)
	scheduleHandler := handlers.NewScheduleHandler(d.DB)
	notificationHandler := handlers.NewNotificationHandler(d.DB)

	bookingHandler := handlers.NewBookingHandler(
		d.DB,
		createBookingUC,
		availabilityUC,
		cancelBookingUC,
		statusUC,
		loc,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/bookings/available-slots", bookingHandler.AvailableSlots)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED USERS
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Cfg))
		{
			secured.GET("/users/me", userHandler.GetMe)
			secured.PATCH("/users/me", userHandler.UpdateMe)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/my", bookingHandler.MyBookings)
			secured.GET("/bookings/:id", bookingHandler.GetByID)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(d.Cfg), middleware.RequireAdmin())
		{
			admin.GET("/bookings", bookingHandler.ListAll)
			admin.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
			admin.DELETE("/bookings/:id", bookingHandler.Delete)

			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)
			admin.POST("/services/:id/image", serviceHandler.UploadImage)

			admin.GET("/schedule", scheduleHandler.List)
			admin.POST("/schedule", scheduleHandler.Create)
			admin.GET("/schedule/:day", scheduleHandler.GetByDay)
			admin.PUT("/schedule/:day", scheduleHandler.Update)
			admin.DELETE("/schedule/:day", scheduleHandler.Delete)

			admin.GET("/users", adminUsersHandler.List)
			admin.PATCH("/users/:id/role", adminUsersHandler.UpdateRole)

			admin.GET("/notifications", notificationHandler.List)
			admin.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			admin.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)
		}
	}
}
