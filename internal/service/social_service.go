package service

import (
	"context"
	"errors"
	"strings"

	"oneiro/internal/cache"
	"oneiro/internal/models"
	"oneiro/internal/repository"
)

const maxCommentLen = 2000

type SocialService struct {
	socialRepo repository.SocialRepository
	dreamRepo  repository.DreamRepository
}

type CreateCommentInput struct {
	UserID  uint
	DreamID uint
	Content string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewSocialService(
	socialRepo repository.SocialRepository,
	dreamRepo repository.DreamRepository,
) *SocialService {
	return &SocialService{
		socialRepo: socialRepo,
		dreamRepo:  dreamRepo,
	}
}

// ToggleLike flips the user's like on the dream and reports whether the dream
// ends up liked.
func (s *SocialService) ToggleLike(ctx context.Context, dreamID, userID uint) (bool, error) {
	liked, err := s.socialRepo.ToggleLike(ctx, dreamID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDreamNotFound) {
			return false, models.NewNotFoundError("Dream", dreamID)
		}
		return false, err
	}
	cache.InvalidateDream(ctx, dreamID)
	return liked, nil
}

func (s *SocialService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.DreamComment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 2000 characters)")
	}

	comment := &models.DreamComment{
		Content: content,
		DreamID: in.DreamID,
		UserID:  in.UserID,
	}
	if err := s.socialRepo.CreateComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrDreamNotFound) {
			return nil, models.NewNotFoundError("Dream", in.DreamID)
		}
		return nil, err
	}
	cache.InvalidateDream(ctx, in.DreamID)

	return s.socialRepo.GetCommentByID(ctx, comment.ID)
}

// UpdateComment is restricted to the comment's author.
func (s *SocialService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.DreamComment, error) {
	comment, err := s.socialRepo.GetCommentByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, models.NewNotFoundError("Comment", in.CommentID)
	}
	if comment.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own comments")
	}

	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	comment.Content = content
	if err := s.socialRepo.UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	cache.InvalidateDream(ctx, comment.DreamID)

	return s.socialRepo.GetCommentByID(ctx, comment.ID)
}

// DeleteComment is allowed for the comment's author and for the owner of the
// dream the comment sits on.
func (s *SocialService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.socialRepo.GetCommentByID(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return models.NewNotFoundError("Comment", in.CommentID)
	}

	if comment.UserID != in.UserID {
		dream, err := s.dreamRepo.GetByID(ctx, comment.DreamID)
		if err != nil {
			return err
		}
		if dream == nil || dream.UserID != in.UserID {
			return models.NewForbiddenError("You can only delete your own comments")
		}
	}

	if err := s.socialRepo.DeleteComment(ctx, in.CommentID); err != nil {
		return err
	}
	cache.InvalidateDream(ctx, comment.DreamID)
	return nil
}
