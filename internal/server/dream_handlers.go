package server

import (
	"time"

	"oneiro/internal/models"
	"oneiro/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateDream handles POST /api/dreams
func (s *Server) CreateDream(c *fiber.Ctx) error {
	var req struct {
		Title          string     `json:"title"`
		Description    string     `json:"description"`
		Date           *time.Time `json:"date"`
		IsPublic       bool       `json:"isPublic"`
		InterpretDream bool       `json:"interpretDream"`
		GenerateImage  bool       `json:"generateImage"`
		ImageType      string     `json:"imageType"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	result, err := s.dreamService.CreateDream(c.Context(), service.CreateDreamInput{
		UserID:                 currentUserID(c),
		Title:                  req.Title,
		Description:            req.Description,
		Date:                   date,
		IsPublic:               req.IsPublic,
		GenerateInterpretation: req.InterpretDream,
		GenerateImage:          req.GenerateImage,
		ImageStyle:             req.ImageType,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.attachToken(result.Dream); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"dream":          result.Dream,
		"creditsUsed":    result.CreditsUsed,
		"interpretation": result.Interpreted,
		"imageGenerated": result.ImageGenerated,
	})
}

// GetMyDreams handles GET /api/dreams
func (s *Server) GetMyDreams(c *fiber.Ctx) error {
	p := parsePagination(c)

	list, err := s.dreamService.ListMyDreams(c.Context(), currentUserID(c), p.Page, p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return s.respondDreamList(c, list)
}

// GetPublicDreams handles GET /api/feed
func (s *Server) GetPublicDreams(c *fiber.Ctx) error {
	p := parsePagination(c)

	list, err := s.dreamService.ListPublicDreams(c.Context(), p.Page, p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return s.respondDreamList(c, list)
}

func (s *Server) respondDreamList(c *fiber.Ctx, list *service.DreamList) error {
	if err := s.attachTokens(list.Dreams); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	// Keep the shape stable for clients: an empty page serializes as [].
	dreams := list.Dreams
	if dreams == nil {
		dreams = []*models.Dream{}
	}

	return c.JSON(fiber.Map{
		"dreams":      dreams,
		"totalPages":  list.TotalPages,
		"currentPage": list.CurrentPage,
	})
}

// GetDream handles GET /api/dreams/:token
func (s *Server) GetDream(c *fiber.Ctx) error {
	dreamID, err := s.decodeDreamToken(c)
	if err != nil {
		return nil
	}

	dream, err := s.dreamService.GetDream(c.Context(), dreamID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.attachToken(dream); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"dream": dream})
}

// UpdateDream handles PUT /api/dreams/:token
func (s *Server) UpdateDream(c *fiber.Ctx) error {
	dreamID, err := s.decodeDreamToken(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Date        *time.Time `json:"date"`
		IsPublic    *bool      `json:"isPublic"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	dream, err := s.dreamService.UpdateDream(c.Context(), service.UpdateDreamInput{
		UserID:      currentUserID(c),
		DreamID:     dreamID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.attachToken(dream); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"dream": dream})
}

// DeleteDream handles DELETE /api/dreams/:token
func (s *Server) DeleteDream(c *fiber.Ctx) error {
	dreamID, err := s.decodeDreamToken(c)
	if err != nil {
		return nil
	}

	if err := s.dreamService.DeleteDream(c.Context(), dreamID, currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
