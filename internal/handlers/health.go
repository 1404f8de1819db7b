package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger is anything the health check can probe.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

const healthTimeout = 2 * time.Second

// HealthCheck reports each dependency as "connected" or its error.
// The status is 503 when any dependency is down.
func HealthCheck(deps map[string]Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		status := "ok"
		services := fiber.Map{}
		for name, dep := range deps {
			if err := dep.PingContext(ctx); err != nil {
				services[name] = err.Error()
				status = "degraded"
				continue
			}
			services[name] = "connected"
		}

		code := fiber.StatusOK
		if status != "ok" {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"version":  "1.0.0",
			"services": services,
		})
	}
}
