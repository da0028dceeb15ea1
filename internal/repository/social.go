package repository

import (
	"context"
	"errors"

	"oneiro/internal/models"

	"gorm.io/gorm"
)

// ErrDreamNotFound is returned by social operations targeting a dream that
// does not exist.
var ErrDreamNotFound = errors.New("dream not found")

// SocialRepository defines interface for like and comment operations
type SocialRepository interface {
	// ToggleLike likes the dream when no like exists and removes the like
	// otherwise. It reports whether the dream ends up liked by the user.
	ToggleLike(ctx context.Context, dreamID, userID uint) (bool, error)
	// CreateComment inserts the comment and, when the author is not the
	// dream's owner, a COMMENT notification, in one transaction.
	CreateComment(ctx context.Context, comment *models.DreamComment) error
	GetCommentByID(ctx context.Context, id uint) (*models.DreamComment, error)
	UpdateComment(ctx context.Context, comment *models.DreamComment) error
	DeleteComment(ctx context.Context, id uint) error
}

type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository creates a new SocialRepository
func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) ToggleLike(ctx context.Context, dreamID, userID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dream models.Dream
		if err := tx.Select("id", "user_id").First(&dream, dreamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDreamNotFound
			}
			return err
		}

		var like models.DreamLike
		err := tx.Where("dream_id = ? AND user_id = ?", dreamID, userID).First(&like).Error
		switch {
		case err == nil:
			// Unlike: remove the like and its notification.
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			liked = false
			return tx.Where("dream_id = ? AND type = ?", dreamID, models.NotificationTypeLike).
				Delete(&models.Notification{}).Error

		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.DreamLike{DreamID: dreamID, UserID: userID}).Error; err != nil {
				return err
			}
			liked = true
			// Owners are not notified about their own likes.
			if userID == dream.UserID {
				return nil
			}
			return tx.Create(&models.Notification{
				Type:    models.NotificationTypeLike,
				UserID:  dream.UserID,
				DreamID: dreamID,
			}).Error

		default:
			return err
		}
	})
	return liked, err
}

func (r *socialRepository) CreateComment(ctx context.Context, comment *models.DreamComment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dream models.Dream
		if err := tx.Select("id", "user_id").First(&dream, comment.DreamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDreamNotFound
			}
			return err
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		// Owners are not notified about their own comments.
		if comment.UserID == dream.UserID {
			return nil
		}
		return tx.Create(&models.Notification{
			Type:    models.NotificationTypeComment,
			UserID:  dream.UserID,
			DreamID: comment.DreamID,
		}).Error
	})
}

func (r *socialRepository) GetCommentByID(ctx context.Context, id uint) (*models.DreamComment, error) {
	var comment models.DreamComment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *socialRepository) UpdateComment(ctx context.Context, comment *models.DreamComment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *socialRepository) DeleteComment(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.DreamComment{}, id).Error
}
