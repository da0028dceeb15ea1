package server

import (
	"errors"
	"strconv"

	"oneiro/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed page/limit query parameters.
type Pagination struct {
	Page  int
	Limit int
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

// parsePagination extracts page and limit query parameters.
func parsePagination(c *fiber.Ctx) Pagination {
	page := c.QueryInt("page", 1)
	if page <= 0 {
		page = 1
	}

	limit := c.QueryInt("limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return Pagination{Page: page, Limit: limit}
}

// currentUserID returns the authenticated user id placed by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// decodeDreamToken resolves the :token route parameter to a dream id.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) decodeDreamToken(c *fiber.Ctx) (uint, error) {
	raw := c.Params("token")

	plaintext, err := s.tokens.Decrypt(raw)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid dream token"))
		return 0, errResponseWritten
	}

	id, err := strconv.ParseUint(plaintext, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid dream token"))
		return 0, errResponseWritten
	}

	return uint(id), nil
}

// attachToken fills the transient Token field so clients can address the
// dream without seeing its numeric id.
func (s *Server) attachToken(dream *models.Dream) error {
	encoded, err := s.tokens.Encrypt(strconv.FormatUint(uint64(dream.ID), 10))
	if err != nil {
		return err
	}
	dream.Token = encoded
	return nil
}

func (s *Server) attachTokens(dreams []*models.Dream) error {
	for _, dream := range dreams {
		if err := s.attachToken(dream); err != nil {
			return err
		}
	}
	return nil
}

// respondServiceError maps an application error to its HTTP status.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
