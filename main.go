package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"tripplanner/config"
	"tripplanner/internal/feed"
	"tripplanner/internal/handler"
	"tripplanner/internal/middleware"
	"tripplanner/internal/planner"
	"tripplanner/internal/repository"
	"tripplanner/internal/service"
	"tripplanner/pkg/database"
	"tripplanner/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	sessions := planner.NewStore(rdb, cfg.SessionTTL)

	// RabbitMQ: checkout publishes booking events, the feed consumer fans
	// them out to websocket subscribers.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	hub := feed.NewHub()
	feed.NewBookingFeed(hub).Start(msgs)

	// Repositories
	tripRepo := repository.NewTripRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	statusRepo := repository.NewStatusRepository(db)

	// Services
	plannerSvc := service.NewPlannerService(sessions)
	catalogSvc := service.NewCatalogService(catalogRepo)
	checkoutSvc := service.NewCheckoutService(sessions, tripRepo, bookingRepo, publisher)
	tripSvc := service.NewTripService(bookingRepo, tripRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	if cfg.RateLimitRPS > 0 {
		e.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, int(cfg.RateLimitRPS)).Limit)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "trip-planner"})
	})

	handler.NewPlannerHandler(plannerSvc).RegisterRoutes(e)
	handler.NewCatalogHandler(catalogSvc).RegisterRoutes(e)
	handler.NewCheckoutHandler(checkoutSvc).RegisterRoutes(e)
	handler.NewTripHandler(tripSvc).RegisterRoutes(e)
	handler.NewStatusHandler(statusRepo).RegisterRoutes(e)
	handler.NewFeedHandler(hub).RegisterRoutes(e)

	log.Printf("Trip Planner starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
