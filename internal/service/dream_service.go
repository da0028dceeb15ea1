// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"log/slog"
	"time"

	"oneiro/internal/ai"
	"oneiro/internal/cache"
	"oneiro/internal/middleware"
	"oneiro/internal/models"
	"oneiro/internal/observability"
	"oneiro/internal/repository"
)

// creditCostPerEnrichment is the price of one AI enrichment operation.
const creditCostPerEnrichment = 1

type DreamService struct {
	dreamRepo   repository.DreamRepository
	creditRepo  repository.CreditRepository
	interpreter ai.Interpreter
	illustrator ai.Illustrator
}

type CreateDreamInput struct {
	UserID                 uint
	Title                  string
	Description            string
	Date                   time.Time
	IsPublic               bool
	GenerateInterpretation bool
	GenerateImage          bool
	ImageStyle             string
}

type UpdateDreamInput struct {
	UserID      uint
	DreamID     uint
	Title       *string
	Description *string
	Date        *time.Time
	IsPublic    *bool
}

// CreateDreamResult reports the persisted dream together with what the AI
// enrichment actually delivered. CreditsUsed counts only enrichments that
// succeeded.
type CreateDreamResult struct {
	Dream          *models.Dream
	CreditsUsed    int
	Interpreted    bool
	ImageGenerated bool
}

// DreamList is a page of dreams with pagination metadata.
type DreamList struct {
	Dreams      []*models.Dream
	TotalPages  int
	CurrentPage int
}

func NewDreamService(
	dreamRepo repository.DreamRepository,
	creditRepo repository.CreditRepository,
	interpreter ai.Interpreter,
	illustrator ai.Illustrator,
) *DreamService {
	return &DreamService{
		dreamRepo:   dreamRepo,
		creditRepo:  creditRepo,
		interpreter: interpreter,
		illustrator: illustrator,
	}
}

// CreateDream persists the dream and runs the requested AI enrichments.
// Credits are checked before anything is written and charged only for
// enrichments that actually succeeded; an AI failure degrades the dream
// instead of failing the request.
func (s *DreamService) CreateDream(ctx context.Context, in CreateDreamInput) (*CreateDreamResult, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Description == "" {
		return nil, models.NewValidationError("Description is required")
	}

	requested := 0
	if in.GenerateInterpretation {
		requested += creditCostPerEnrichment
	}
	if in.GenerateImage {
		requested += creditCostPerEnrichment
	}

	if requested > 0 {
		credit, err := s.creditRepo.GetOrCreate(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		if credit.Amount < requested {
			return nil, models.NewForbiddenError("Insufficient credits")
		}
	}

	dream := &models.Dream{
		Title:       in.Title,
		Description: in.Description,
		Date:        models.NormalizeDreamDate(in.Date),
		IsPublic:    in.IsPublic,
		UserID:      in.UserID,
	}
	// The style is only recorded when an image was actually requested.
	if in.GenerateImage && in.ImageStyle != "" {
		style := in.ImageStyle
		dream.ImageStyle = &style
	}

	if err := s.dreamRepo.Create(ctx, dream); err != nil {
		return nil, err
	}

	result := &CreateDreamResult{}
	confirmed := 0

	if in.GenerateInterpretation {
		interpretation, err := s.interpreter.Interpret(ctx, in.Description)
		if err != nil {
			middleware.Logger.WarnContext(ctx, "Dream interpretation failed",
				slog.Uint64("dream_id", uint64(dream.ID)),
				slog.String("error", err.Error()),
			)
		} else if err := s.dreamRepo.SetInterpretation(ctx, dream.ID, interpretation); err != nil {
			middleware.Logger.ErrorContext(ctx, "Failed to persist interpretation",
				slog.Uint64("dream_id", uint64(dream.ID)),
				slog.String("error", err.Error()),
			)
		} else {
			result.Interpreted = true
			confirmed += creditCostPerEnrichment
		}
	}

	if in.GenerateImage {
		imageURL, err := s.illustrator.Illustrate(ctx, in.Description, in.ImageStyle)
		if err != nil || imageURL == "" {
			middleware.Logger.WarnContext(ctx, "Dream image generation failed",
				slog.Uint64("dream_id", uint64(dream.ID)),
				slog.Any("error", err),
			)
		} else if err := s.dreamRepo.SetImageURL(ctx, dream.ID, imageURL); err != nil {
			middleware.Logger.ErrorContext(ctx, "Failed to persist image URL",
				slog.Uint64("dream_id", uint64(dream.ID)),
				slog.String("error", err.Error()),
			)
		} else {
			result.ImageGenerated = true
			confirmed += creditCostPerEnrichment
		}
	}

	if confirmed > 0 {
		if err := s.creditRepo.Deduct(ctx, in.UserID, confirmed); err != nil {
			// The enrichment fields are already persisted; the charge is the
			// integrity boundary, so its failure is fatal for the request.
			cache.InvalidateCredits(ctx, in.UserID)
			middleware.Logger.ErrorContext(ctx, "Failed to charge credits",
				slog.Uint64("user_id", uint64(in.UserID)),
				slog.Int("amount", confirmed),
				slog.String("error", err.Error()),
			)
			return nil, models.NewInternalError(err)
		}
		observability.CreditsCharged.Add(float64(confirmed))
		cache.InvalidateCredits(ctx, in.UserID)
	}

	// Re-read so the response carries the enrichment columns and the embedded
	// associations.
	persisted, err := s.dreamRepo.GetByID(ctx, dream.ID)
	if err != nil {
		return nil, err
	}
	if persisted == nil {
		return nil, models.NewNotFoundError("Dream", dream.ID)
	}

	result.Dream = persisted
	result.CreditsUsed = confirmed
	return result, nil
}

// GetDream returns the dream when it belongs to the user. Dreams owned by
// others are reported as not found rather than forbidden.
func (s *DreamService) GetDream(ctx context.Context, dreamID, userID uint) (*models.Dream, error) {
	var dream models.Dream
	err := cache.Aside(ctx, cache.DreamKey(dreamID), &dream, cache.DreamTTL, func() error {
		found, err := s.dreamRepo.GetByID(ctx, dreamID)
		if err != nil {
			return err
		}
		if found == nil {
			return models.NewNotFoundError("Dream", dreamID)
		}
		dream = *found
		return nil
	})
	if err != nil {
		return nil, err
	}
	if dream.UserID != userID {
		return nil, models.NewNotFoundError("Dream", dreamID)
	}
	return &dream, nil
}

func (s *DreamService) UpdateDream(ctx context.Context, in UpdateDreamInput) (*models.Dream, error) {
	dream, err := s.dreamRepo.GetByIDForUser(ctx, in.DreamID, in.UserID)
	if err != nil {
		return nil, err
	}
	if dream == nil {
		return nil, models.NewNotFoundError("Dream", in.DreamID)
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title is required")
		}
		dream.Title = *in.Title
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, models.NewValidationError("Description is required")
		}
		dream.Description = *in.Description
	}
	if in.Date != nil {
		dream.Date = models.NormalizeDreamDate(*in.Date)
	}
	if in.IsPublic != nil {
		dream.IsPublic = *in.IsPublic
	}

	if err := s.dreamRepo.Update(ctx, dream); err != nil {
		return nil, err
	}
	cache.InvalidateDream(ctx, in.DreamID)

	return s.dreamRepo.GetByID(ctx, in.DreamID)
}

func (s *DreamService) DeleteDream(ctx context.Context, dreamID, userID uint) error {
	dream, err := s.dreamRepo.GetByIDForUser(ctx, dreamID, userID)
	if err != nil {
		return err
	}
	if dream == nil {
		return models.NewNotFoundError("Dream", dreamID)
	}

	if err := s.dreamRepo.Delete(ctx, dreamID); err != nil {
		return err
	}
	cache.InvalidateDream(ctx, dreamID)
	return nil
}

// ListMyDreams returns the user's own dreams, private ones included.
func (s *DreamService) ListMyDreams(ctx context.Context, userID uint, page, limit int) (*DreamList, error) {
	dreams, total, err := s.dreamRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}
	return paginate(dreams, total, page, limit), nil
}

// ListPublicDreams returns the shared feed.
func (s *DreamService) ListPublicDreams(ctx context.Context, page, limit int) (*DreamList, error) {
	dreams, total, err := s.dreamRepo.ListPublic(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return paginate(dreams, total, page, limit), nil
}

func paginate(dreams []*models.Dream, total int64, page, limit int) *DreamList {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &DreamList{
		Dreams:      dreams,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}
