package service

import (
	"context"
	"testing"

	"oneiro/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settingsRepoStub struct {
	getOrCreateFn func(context.Context, uint, string) (*models.UserSettings, error)
	upsertFn      func(context.Context, uint, string, string) (*models.UserSettings, error)
}

func (s *settingsRepoStub) GetOrCreate(ctx context.Context, userID uint, language string) (*models.UserSettings, error) {
	return s.getOrCreateFn(ctx, userID, language)
}
func (s *settingsRepoStub) Upsert(ctx context.Context, userID uint, language, theme string) (*models.UserSettings, error) {
	return s.upsertFn(ctx, userID, language, theme)
}

type notificationRepoStub struct {
	createFn     func(context.Context, *models.Notification) error
	listUnreadFn func(context.Context, uint) ([]*models.Notification, error)
	markReadFn   func(context.Context, uint, []uint) error
}

func (s *notificationRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notificationRepoStub) ListUnread(ctx context.Context, userID uint) ([]*models.Notification, error) {
	return s.listUnreadFn(ctx, userID)
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, userID uint, ids []uint) error {
	return s.markReadFn(ctx, userID, ids)
}

func newAccountService(
	credits *creditRepoStub,
	settings *settingsRepoStub,
	notifications *notificationRepoStub,
) *AccountService {
	if credits == nil {
		credits = creditRepoWithBalance(models.DefaultCreditAmount)
	}
	if settings == nil {
		settings = &settingsRepoStub{
			getOrCreateFn: func(_ context.Context, userID uint, language string) (*models.UserSettings, error) {
				if language == "" {
					language = models.DefaultLanguage
				}
				return &models.UserSettings{UserID: userID, Language: language, Theme: models.DefaultTheme}, nil
			},
			upsertFn: func(_ context.Context, userID uint, language, theme string) (*models.UserSettings, error) {
				return &models.UserSettings{UserID: userID, Language: language, Theme: theme}, nil
			},
		}
	}
	if notifications == nil {
		notifications = &notificationRepoStub{
			createFn:     func(_ context.Context, _ *models.Notification) error { return nil },
			listUnreadFn: func(_ context.Context, _ uint) ([]*models.Notification, error) { return nil, nil },
			markReadFn:   func(_ context.Context, _ uint, _ []uint) error { return nil },
		}
	}
	return NewAccountService(credits, settings, notifications)
}

func TestGetCredits_LazyGrant(t *testing.T) {
	svc := newAccountService(nil, nil, nil)

	credit, err := svc.GetCredits(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCreditAmount, credit.Amount)
}

func TestGetSettings_LanguageHint(t *testing.T) {
	svc := newAccountService(nil, nil, nil)

	settings, err := svc.GetSettings(context.Background(), 1, "en-US")
	require.NoError(t, err)
	assert.Equal(t, "en-US", settings.Language)

	settings, err = svc.GetSettings(context.Background(), 2, "")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLanguage, settings.Language)
}

func TestUpdateSettings_RequiresSomething(t *testing.T) {
	svc := newAccountService(nil, nil, nil)

	_, err := svc.UpdateSettings(context.Background(), UpdateSettingsInput{UserID: 1})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestMarkNotificationsRead_RequiresIDs(t *testing.T) {
	marked := false
	notifications := &notificationRepoStub{
		createFn:     func(_ context.Context, _ *models.Notification) error { return nil },
		listUnreadFn: func(_ context.Context, _ uint) ([]*models.Notification, error) { return nil, nil },
		markReadFn: func(_ context.Context, _ uint, _ []uint) error {
			marked = true
			return nil
		},
	}
	svc := newAccountService(nil, nil, notifications)

	err := svc.MarkNotificationsRead(context.Background(), 1, nil)
	require.Error(t, err)
	assert.False(t, marked)

	require.NoError(t, svc.MarkNotificationsRead(context.Background(), 1, []uint{1, 2}))
	assert.True(t, marked)
}
