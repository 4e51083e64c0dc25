package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbershop-bg/booking-api/internal/cache"
	"github.com/barbershop-bg/booking-api/internal/config"
	dbpkg "github.com/barbershop-bg/booking-api/internal/db"
	infraRepo "github.com/barbershop-bg/booking-api/internal/infra/repository"
	"github.com/barbershop-bg/booking-api/internal/jobs"
	"github.com/barbershop-bg/booking-api/internal/middleware"
	"github.com/barbershop-bg/booking-api/internal/notification"
	"github.com/barbershop-bg/booking-api/internal/routes"
	"github.com/barbershop-bg/booking-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	sms := notification.NewSenderFromConfig(cfg)
	availabilityCache := cache.New(cfg.RedisAddr)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:    db,
		Cfg:   cfg,
		SMS:   sms,
		Cache: availabilityCache,
	})

	scheduler := jobs.NewScheduler(
		infraRepo.NewBookingGormRepository(db),
		sms,
		timezone.Location(cfg.Timezone),
	)
	scheduler.Start(context.Background())

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
