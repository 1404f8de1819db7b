// Package main is the entry point for the fee engine HTTP server.
// It initializes all dependencies, sets up the HTTP server,
// schedules the storage accrual batch and starts the application.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reship/internal/app"
	"reship/internal/config"
	"reship/internal/handlers"
	"reship/internal/repositories"
	"reship/internal/routes"
	"reship/internal/services/accrual"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	config.LoadEnv()

	// Initialize databases (PostgreSQL + Redis)
	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repositories.Close()

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Periodic check of connection pool stats
	go func() {
		ticker := time.NewTicker(config.GetDurationEnv("DB_STATS_INTERVAL", time.Minute))
		defer ticker.Stop()
		for range ticker.C {
			stats := sqlDB.Stats()
			log.Printf("DB Stats: Open=%d, Idle=%d, InUse=%d, WaitCount=%d, WaitDuration=%s",
				stats.OpenConnections, stats.Idle, stats.InUse, stats.WaitCount, stats.WaitDuration)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := accrual.NewPrometheusCollector(registry)

	services := app.NewServices(repositories.DB, repositories.CacheService, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if interval := config.GetDurationEnv("ACCRUAL_INTERVAL", 0); interval > 0 {
		services.StartAccrualTicker(ctx, interval)
		log.Printf("Scheduled storage accrual every %s", interval)
	}

	server := fiber.New(fiber.Config{
		AppName:      "reship fee engine",
		ReadTimeout:  config.GetDurationEnv("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: config.GetDurationEnv("HTTP_WRITE_TIMEOUT", 30*time.Second),
	})

	server.Use(recover.New())
	server.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,HEAD",
	}))
	server.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	server.Use("/api/quotes", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("QUOTE_RATE_LIMIT", 60),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	server.Get("/health", handlers.HealthCheck(map[string]handlers.Pinger{
		"database": sqlDB,
		"redis":    handlers.PingFunc(repositories.CacheService.HealthCheck),
	}))
	server.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	routes.SetupRoutes(server, services, config.GetEnv("JWT_SECRET", ""))

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Warning: server shutdown: %v", err)
		}
	}()

	if err := server.Listen(":" + config.GetEnv("PORT", "3000")); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
