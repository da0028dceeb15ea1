package repository

import (
	"context"

	"oneiro/internal/models"

	"gorm.io/gorm"
)

// unreadNotificationLimit caps how many unread notifications a single fetch
// returns.
const unreadNotificationLimit = 10

// NotificationRepository defines interface for notification operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	// ListUnread returns the newest unread notifications for the user, with
	// the originating dream preloaded.
	ListUnread(ctx context.Context, userID uint) ([]*models.Notification, error)
	// MarkRead marks the given notifications as read, scoped to the user so
	// nobody can acknowledge someone else's notifications.
	MarkRead(ctx context.Context, userID uint, ids []uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) ListUnread(ctx context.Context, userID uint) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.WithContext(ctx).
		Preload("Dream").
		Where("user_id = ? AND read = ?", userID, false).
		Order("created_at desc").
		Limit(unreadNotificationLimit).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Update("read", true).Error
}
