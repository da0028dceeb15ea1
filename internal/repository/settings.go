package repository

import (
	"context"
	"errors"

	"oneiro/internal/models"

	"gorm.io/gorm"
)

// SettingsRepository defines interface for user settings operations
type SettingsRepository interface {
	// GetOrCreate returns the user's settings, creating a row with the given
	// language (or the default when empty) on first access.
	GetOrCreate(ctx context.Context, userID uint, language string) (*models.UserSettings, error)
	Upsert(ctx context.Context, userID uint, language, theme string) (*models.UserSettings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetOrCreate(ctx context.Context, userID uint, language string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if language == "" {
		language = models.DefaultLanguage
	}
	settings = models.UserSettings{
		UserID:   userID,
		Language: language,
		Theme:    models.DefaultTheme,
	}
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, userID uint, language, theme string) (*models.UserSettings, error) {
	settings, err := r.GetOrCreate(ctx, userID, language)
	if err != nil {
		return nil, err
	}

	if language != "" {
		settings.Language = language
	}
	if theme != "" {
		settings.Theme = theme
	}
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
