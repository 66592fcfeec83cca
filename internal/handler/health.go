package handler

import (
	"summa-reader/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports the state of the cache and the document source
type HealthHandler struct {
	health service.HealthService
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(health service.HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

// Check godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := h.health.Check(c.UserContext())
	if resp.Status == service.StatusDown {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
