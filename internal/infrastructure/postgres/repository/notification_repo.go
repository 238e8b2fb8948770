package repository

import (
	"errors"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/mappers"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultNotificationRepository struct {
	DB *gorm.DB
}

func NewDefaultNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{DB: db}
}

func (r *DefaultNotificationRepository) CreateNotification(n *domain.Notification) error {
	return r.DB.Create(mappers.ToGORMNotification(n)).Error
}

func (r *DefaultNotificationRepository) GetByUserID(userID string, page, limit int64) ([]*domain.Notification, int64, error) {
	var notifModels []models.NotificationModel
	var total int64

	query := r.DB.Model(&models.NotificationModel{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(int(offset)).Limit(int(limit)).Find(&notifModels).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]*domain.Notification, 0, len(notifModels))
	for i := range notifModels {
		notifications = append(notifications, mappers.ToDomainNotification(&notifModels[i]))
	}
	return notifications, total, nil
}

func (r *DefaultNotificationRepository) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *DefaultNotificationRepository) GetNotificationByID(notificationID string) (*domain.Notification, error) {
	var n models.NotificationModel
	if err := r.DB.First(&n, "id = ?", notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return mappers.ToDomainNotification(&n), nil
}

// MarkRead on an already-read row is a no-op, matching the idempotent contract.
func (r *DefaultNotificationRepository) MarkRead(notificationID string) error {
	return r.DB.Model(&models.NotificationModel{}).
		Where("id = ?", notificationID).
		Update("read", true).Error
}

func (r *DefaultNotificationRepository) MarkAllRead(userID string) error {
	return r.DB.Model(&models.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
