package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/models"
	"storefront/internal/services"
)

// SettingsHandler handles HTTP requests for the site settings record.
type SettingsHandler struct {
	service *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		service: service,
	}
}

// RegisterRoutes registers the settings routes with the Fiber app. Updating
// passes through the admin guard; reading is public.
func (h *SettingsHandler) RegisterRoutes(router fiber.Router, adminOnly fiber.Handler) {
	router.Get("/settings", h.HandleGetSettings)
	router.Put("/settings", adminOnly, h.HandleUpdateSettings)
}

// HandleGetSettings returns the current settings. When no row exists the
// defaults are served without being persisted.
func (h *SettingsHandler) HandleGetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings()
	if err != nil {
		log.Printf("Error fetching settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch settings",
		})
	}
	return c.JSON(settings)
}

// HandleUpdateSettings upserts the settings record.
func (h *SettingsHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	var input models.SettingsUpdate
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing settings update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	settings, err := h.service.UpdateSettings(input)
	if err != nil {
		log.Printf("Error updating settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update settings",
		})
	}
	return c.JSON(settings)
}
