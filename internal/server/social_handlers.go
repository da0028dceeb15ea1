package server

import (
	"oneiro/internal/models"
	"oneiro/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST /api/likes. Liking answers 201, unliking 200.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	var req struct {
		DreamID uint `json:"dreamId"`
	}
	if err := c.BodyParser(&req); err != nil || req.DreamID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("dreamId is required"))
	}

	liked, err := s.socialService.ToggleLike(c.Context(), req.DreamID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	status := fiber.StatusOK
	if liked {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"liked": liked})
}

// CreateComment handles POST /api/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		DreamID uint   `json:"dreamId"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil || req.DreamID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("dreamId is required"))
	}

	comment, err := s.socialService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:  currentUserID(c),
		DreamID: req.DreamID,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// UpdateComment handles PUT /api/comments
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	var req struct {
		CommentID uint   `json:"commentId"`
		Content   string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil || req.CommentID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("commentId is required"))
	}

	comment, err := s.socialService.UpdateComment(c.Context(), service.UpdateCommentInput{
		UserID:    currentUserID(c),
		CommentID: req.CommentID,
		Content:   req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"comment": comment})
}

// DeleteComment handles DELETE /api/comments
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	var req struct {
		CommentID uint `json:"commentId"`
	}
	if err := c.BodyParser(&req); err != nil || req.CommentID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("commentId is required"))
	}

	err := s.socialService.DeleteComment(c.Context(), service.DeleteCommentInput{
		UserID:    currentUserID(c),
		CommentID: req.CommentID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
