package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	dreamKeyPrefix    = "dream:%d"
	creditsKeyPrefix  = "credits:%d"
	settingsKeyPrefix = "settings:%d"
)

const (
	DreamTTL    = 10 * time.Minute
	CreditsTTL  = 1 * time.Minute
	SettingsTTL = 10 * time.Minute
)

func DreamKey(dreamID uint) string {
	return fmt.Sprintf(dreamKeyPrefix, dreamID)
}

func CreditsKey(userID uint) string {
	return fmt.Sprintf(creditsKeyPrefix, userID)
}

func SettingsKey(userID uint) string {
	return fmt.Sprintf(settingsKeyPrefix, userID)
}

func InvalidateDream(ctx context.Context, dreamID uint) {
	Invalidate(ctx, DreamKey(dreamID))
}

func InvalidateCredits(ctx context.Context, userID uint) {
	Invalidate(ctx, CreditsKey(userID))
}

func InvalidateSettings(ctx context.Context, userID uint) {
	Invalidate(ctx, SettingsKey(userID))
}
