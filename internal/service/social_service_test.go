package service

import (
	"context"
	"testing"

	"oneiro/internal/models"
	"oneiro/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike_MapsMissingDream(t *testing.T) {
	social := noopSocialRepo()
	social.toggleLikeFn = func(_ context.Context, _, _ uint) (bool, error) {
		return false, repository.ErrDreamNotFound
	}
	svc := NewSocialService(social, noopDreamRepo())

	_, err := svc.ToggleLike(context.Background(), 99, 1)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestToggleLike_ReportsResultingState(t *testing.T) {
	social := noopSocialRepo()
	liked := true
	social.toggleLikeFn = func(_ context.Context, _, _ uint) (bool, error) {
		liked = !liked
		return liked, nil
	}
	svc := NewSocialService(social, noopDreamRepo())

	first, err := svc.ToggleLike(context.Background(), 1, 1)
	require.NoError(t, err)
	second, err := svc.ToggleLike(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCreateComment_TrimsContent(t *testing.T) {
	var created *models.DreamComment
	social := noopSocialRepo()
	social.createCommentFn = func(_ context.Context, comment *models.DreamComment) error {
		comment.ID = 5
		created = comment
		return nil
	}
	svc := NewSocialService(social, noopDreamRepo())

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		DreamID: 1,
		Content: "  what a dream  ",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "what a dream", created.Content)
}

func TestCreateComment_RejectsWhitespaceOnly(t *testing.T) {
	social := noopSocialRepo()
	social.createCommentFn = func(_ context.Context, _ *models.DreamComment) error {
		t.Fatal("whitespace-only content must not reach the repository")
		return nil
	}
	svc := NewSocialService(social, noopDreamRepo())

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		DreamID: 1,
		Content: "   \n\t ",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUpdateComment_AuthorOnly(t *testing.T) {
	social := noopSocialRepo()
	social.getCommentByIDFn = func(_ context.Context, id uint) (*models.DreamComment, error) {
		return &models.DreamComment{ID: id, UserID: 7, DreamID: 1, Content: "original"}, nil
	}
	svc := NewSocialService(social, noopDreamRepo())

	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		UserID:    42,
		CommentID: 1,
		Content:   "hijacked",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestDeleteComment_DreamOwnerMayModerate(t *testing.T) {
	social := noopSocialRepo()
	social.getCommentByIDFn = func(_ context.Context, id uint) (*models.DreamComment, error) {
		return &models.DreamComment{ID: id, UserID: 7, DreamID: 3}, nil
	}
	deleted := false
	social.deleteCommentFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}

	dreams := noopDreamRepo()
	dreams.getByIDFn = func(_ context.Context, id uint) (*models.Dream, error) {
		return &models.Dream{ID: id, UserID: 42}, nil
	}
	svc := NewSocialService(social, dreams)

	// User 42 owns the dream, so they may delete user 7's comment.
	err := svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 42, CommentID: 1})
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteComment_StrangerForbidden(t *testing.T) {
	social := noopSocialRepo()
	social.getCommentByIDFn = func(_ context.Context, id uint) (*models.DreamComment, error) {
		return &models.DreamComment{ID: id, UserID: 7, DreamID: 3}, nil
	}

	dreams := noopDreamRepo()
	dreams.getByIDFn = func(_ context.Context, id uint) (*models.Dream, error) {
		return &models.Dream{ID: id, UserID: 8}, nil
	}
	svc := NewSocialService(social, dreams)

	err := svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 42, CommentID: 1})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestDeleteComment_MissingComment(t *testing.T) {
	social := noopSocialRepo()
	social.getCommentByIDFn = func(_ context.Context, _ uint) (*models.DreamComment, error) {
		return nil, nil
	}
	svc := NewSocialService(social, noopDreamRepo())

	err := svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 1, CommentID: 99})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
