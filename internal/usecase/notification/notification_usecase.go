package notification

import (
	"log/slog"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/google/uuid"
)

type DefaultNotificationUsecase struct {
	NotificationRepo domain.NotificationRepository
	UserRepo         domain.UserRepository
}

func NewDefaultNotificationUsecase(notificationRepo domain.NotificationRepository, userRepo domain.UserRepository) *DefaultNotificationUsecase {
	return &DefaultNotificationUsecase{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
	}
}

// Notify appends one immutable notification for one user.
func (uc *DefaultNotificationUsecase) Notify(userID string, notifType domain.NotificationType, title, message string, orderID *string) error {
	return uc.NotificationRepo.CreateNotification(&domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		OrderID:   orderID,
		Read:      false,
		CreatedAt: time.Now(),
	})
}

// NotifyAdmins broadcasts to every admin user. At-least-once and unordered; a
// write failure for one admin does not stop the rest.
func (uc *DefaultNotificationUsecase) NotifyAdmins(notifType domain.NotificationType, title, message string, orderID *string) error {
	admins, err := uc.UserRepo.GetUsersByRole(domain.RoleAdmin)
	if err != nil {
		return err
	}

	for _, admin := range admins {
		if err := uc.Notify(admin.ID, notifType, title, message, orderID); err != nil {
			slog.Error("admin notification write failed", "admin_id", admin.ID, "error", err.Error())
		}
	}
	return nil
}

func (uc *DefaultNotificationUsecase) List(userID string, page, limit int64) ([]*domain.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.NotificationRepo.GetByUserID(userID, page, limit)
}

func (uc *DefaultNotificationUsecase) UnreadCount(userID string) (int64, error) {
	return uc.NotificationRepo.CountUnread(userID)
}

// MarkRead is idempotent; re-marking a read notification is a no-op.
func (uc *DefaultNotificationUsecase) MarkRead(notificationID string, actor domain.Actor) error {
	n, err := uc.NotificationRepo.GetNotificationByID(notificationID)
	if err != nil {
		return err
	}
	if n.UserID != actor.UserID {
		return domain.ErrForbidden
	}
	if n.Read {
		return nil
	}
	return uc.NotificationRepo.MarkRead(notificationID)
}

func (uc *DefaultNotificationUsecase) MarkAllRead(userID string) error {
	return uc.NotificationRepo.MarkAllRead(userID)
}
