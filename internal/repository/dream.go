package repository

import (
	"context"
	"errors"

	"oneiro/internal/models"

	"gorm.io/gorm"
)

// DreamRepository defines interface for dream operations
type DreamRepository interface {
	Create(ctx context.Context, dream *models.Dream) error
	GetByID(ctx context.Context, id uint) (*models.Dream, error)
	// GetByIDForUser returns the dream only when it belongs to userID.
	GetByIDForUser(ctx context.Context, id, userID uint) (*models.Dream, error)
	SetInterpretation(ctx context.Context, id uint, interpretation string) error
	SetImageURL(ctx context.Context, id uint, imageURL string) error
	Update(ctx context.Context, dream *models.Dream) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint, page, limit int) ([]*models.Dream, int64, error)
	ListPublic(ctx context.Context, page, limit int) ([]*models.Dream, int64, error)
}

type dreamRepository struct {
	db *gorm.DB
}

// NewDreamRepository creates a new DreamRepository
func NewDreamRepository(db *gorm.DB) DreamRepository {
	return &dreamRepository{db: db}
}

func (r *dreamRepository) Create(ctx context.Context, dream *models.Dream) error {
	return r.db.WithContext(ctx).Create(dream).Error
}

// withAssociations loads everything the list and detail payloads embed.
func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Likes").
		Preload("Comments").
		Preload("Comments.User")
}

func (r *dreamRepository) GetByID(ctx context.Context, id uint) (*models.Dream, error) {
	var dream models.Dream
	if err := withAssociations(r.db.WithContext(ctx)).First(&dream, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dream, nil
}

func (r *dreamRepository) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Dream, error) {
	var dream models.Dream
	err := withAssociations(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&dream).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dream, nil
}

func (r *dreamRepository) SetInterpretation(ctx context.Context, id uint, interpretation string) error {
	return r.db.WithContext(ctx).
		Model(&models.Dream{}).
		Where("id = ?", id).
		Update("interpretation", interpretation).Error
}

func (r *dreamRepository) SetImageURL(ctx context.Context, id uint, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&models.Dream{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

func (r *dreamRepository) Update(ctx context.Context, dream *models.Dream) error {
	return r.db.WithContext(ctx).Save(dream).Error
}

func (r *dreamRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Dream{}, id).Error
}

func (r *dreamRepository) ListByUser(ctx context.Context, userID uint, page, limit int) ([]*models.Dream, int64, error) {
	return r.list(ctx, "user_id = ?", userID, page, limit)
}

func (r *dreamRepository) ListPublic(ctx context.Context, page, limit int) ([]*models.Dream, int64, error) {
	return r.list(ctx, "is_public = ?", true, page, limit)
}

// list applies the shared count + order + page window over the filter.
func (r *dreamRepository) list(ctx context.Context, cond string, arg interface{}, page, limit int) ([]*models.Dream, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Dream{}).Where(cond, arg).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dreams []*models.Dream
	err := withAssociations(r.db.WithContext(ctx)).
		Where(cond, arg).
		Order("date desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&dreams).Error
	if err != nil {
		return nil, 0, err
	}
	return dreams, total, nil
}
