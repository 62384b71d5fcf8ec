package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/observability"
)

// HelloHandler serves the public landing endpoints.
type HelloHandler struct {
	serviceName string
	metrics     *observability.Metrics
}

// NewHelloHandler constructs handler.
func NewHelloHandler(serviceName string, metrics *observability.Metrics) *HelloHandler {
	return &HelloHandler{serviceName: serviceName, metrics: metrics}
}

// Root GET / and GET /hello.
func (h *HelloHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Welcome to " + h.serviceName})
}

// Greeting GET /greeting and GET /api/greeting.
func (h *HelloHandler) Greeting(c *fiber.Ctx) error {
	name := c.Query("name", "there")
	return c.JSON(fiber.Map{"message": "Hello, " + name + "!"})
}

// Status GET /status and GET /api/status.
func (h *HelloHandler) Status(c *fiber.Ctx) error {
	requests, errs, denied := h.metrics.Totals()
	return c.JSON(fiber.Map{
		"status":  "up",
		"service": h.serviceName,
		"counters": fiber.Map{
			"requests":    requests,
			"errors":      errs,
			"auth_denied": denied,
		},
	})
}
