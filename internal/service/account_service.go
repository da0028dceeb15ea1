package service

import (
	"context"

	"oneiro/internal/cache"
	"oneiro/internal/models"
	"oneiro/internal/repository"
)

// AccountService groups the per-user housekeeping surfaces: the credit
// balance, presentation settings, and the notification inbox.
type AccountService struct {
	creditRepo       repository.CreditRepository
	settingsRepo     repository.SettingsRepository
	notificationRepo repository.NotificationRepository
}

type UpdateSettingsInput struct {
	UserID   uint
	Language string
	Theme    string
}

func NewAccountService(
	creditRepo repository.CreditRepository,
	settingsRepo repository.SettingsRepository,
	notificationRepo repository.NotificationRepository,
) *AccountService {
	return &AccountService{
		creditRepo:       creditRepo,
		settingsRepo:     settingsRepo,
		notificationRepo: notificationRepo,
	}
}

// GetCredits returns the user's balance, granting the default amount on first
// access.
func (s *AccountService) GetCredits(ctx context.Context, userID uint) (*models.Credit, error) {
	var credit models.Credit
	err := cache.Aside(ctx, cache.CreditsKey(userID), &credit, cache.CreditsTTL, func() error {
		found, err := s.creditRepo.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		credit = *found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &credit, nil
}

// GetSettings returns the user's settings, lazily creating them. The language
// hint seeds the row on first access only.
func (s *AccountService) GetSettings(ctx context.Context, userID uint, languageHint string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := cache.Aside(ctx, cache.SettingsKey(userID), &settings, cache.SettingsTTL, func() error {
		found, err := s.settingsRepo.GetOrCreate(ctx, userID, languageHint)
		if err != nil {
			return err
		}
		settings = *found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *AccountService) UpdateSettings(ctx context.Context, in UpdateSettingsInput) (*models.UserSettings, error) {
	if in.Language == "" && in.Theme == "" {
		return nil, models.NewValidationError("Nothing to update")
	}

	settings, err := s.settingsRepo.Upsert(ctx, in.UserID, in.Language, in.Theme)
	if err != nil {
		return nil, err
	}
	cache.InvalidateSettings(ctx, in.UserID)
	return settings, nil
}

// GetNotifications returns the newest unread notifications for the user.
func (s *AccountService) GetNotifications(ctx context.Context, userID uint) ([]*models.Notification, error) {
	return s.notificationRepo.ListUnread(ctx, userID)
}

// MarkNotificationsRead acknowledges the given notifications for the user.
func (s *AccountService) MarkNotificationsRead(ctx context.Context, userID uint, ids []uint) error {
	if len(ids) == 0 {
		return models.NewValidationError("Notification ids are required")
	}
	return s.notificationRepo.MarkRead(ctx, userID, ids)
}
