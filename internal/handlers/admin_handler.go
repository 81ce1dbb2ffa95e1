package handlers

import (
	"auramarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles HTTP requests for the admin overview.
type AdminHandler struct {
	service *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

// RegisterRoutes registers the admin routes; the caller mounts them
// behind the admin role gate.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Get("/overview", h.HandleOverview)
}

// HandleOverview returns platform-wide totals.
func (h *AdminHandler) HandleOverview(c *fiber.Ctx) error {
	stats, err := h.service.GetPlatformStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute platform stats",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}
