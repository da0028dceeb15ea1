package server

import (
	"oneiro/internal/models"
	"oneiro/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCredits handles GET /api/credits
func (s *Server) GetCredits(c *fiber.Ctx) error {
	credit, err := s.accountService.GetCredits(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"credits": credit.Amount})
}

// GetSettings handles GET /api/settings
func (s *Server) GetSettings(c *fiber.Ctx) error {
	settings, err := s.accountService.GetSettings(c.Context(), currentUserID(c), detectLanguage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"settings": settings})
}

// UpdateSettings handles PUT /api/settings
func (s *Server) UpdateSettings(c *fiber.Ctx) error {
	var req struct {
		Language string `json:"language"`
		Theme    string `json:"theme"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	settings, err := s.accountService.UpdateSettings(c.Context(), service.UpdateSettingsInput{
		UserID:   currentUserID(c),
		Language: req.Language,
		Theme:    req.Theme,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"settings": settings})
}

// GetNotifications handles GET /api/notifications
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	notifications, err := s.accountService.GetNotifications(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}
	return c.JSON(fiber.Map{"notifications": notifications})
}

// MarkNotificationsRead handles PUT /api/notifications/read
func (s *Server) MarkNotificationsRead(c *fiber.Ctx) error {
	var req struct {
		NotificationIDs []uint `json:"notificationIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	err := s.accountService.MarkNotificationsRead(c.Context(), currentUserID(c), req.NotificationIDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
