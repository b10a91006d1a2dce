package repository

import (
	"context"
	"errors"

	"govportal/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	Create(ctx context.Context, notif *models.Notification) error
	ListByProfile(ctx context.Context, profileID uint, unreadOnly bool, limit, offset int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context, profileID uint) error
	Delete(ctx context.Context, id uint) error
	CountUnread(ctx context.Context, profileID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a new NotificationRepository
// implementation.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var notif models.Notification
	if err := readDB(r.db).WithContext(ctx).First(&notif, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Notification", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &notif, nil
}

func (r *notificationRepository) Create(ctx context.Context, notif *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notif).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *notificationRepository) ListByProfile(ctx context.Context, profileID uint, unreadOnly bool, limit, offset int) ([]models.Notification, error) {
	q := readDB(r.db).WithContext(ctx).Where("profile_id = ?", profileID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var notifs []models.Notification
	if err := q.
		Order("created_at DESC").
		Limit(clampLimit(limit, 50)).
		Offset(offset).
		Find(&notifs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifs, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, profileID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("profile_id = ? AND is_read = ?", profileID, false).
		Update("is_read", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the notification permanently. Dismissed notifications are
// never resurrected.
func (r *notificationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Notification{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, profileID uint) (int64, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Notification{}).
		Where("profile_id = ? AND is_read = ?", profileID, false).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
