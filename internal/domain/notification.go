package domain

import "time"

type NotificationType string

const (
	NotifOrderStatus NotificationType = "order_status"
	NotifOrderPlaced NotificationType = "order_placed"
	NotifPayment     NotificationType = "payment"
	NotifDeliveryOtp NotificationType = "delivery_otp"
	NotifAdminAlert  NotificationType = "admin_alert"
)

type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	OrderID   *string
	Read      bool
	CreatedAt time.Time
}

type NotificationRepository interface {
	CreateNotification(n *Notification) error
	GetByUserID(userID string, page, limit int64) ([]*Notification, int64, error)
	CountUnread(userID string) (int64, error)
	GetNotificationByID(notificationID string) (*Notification, error)
	MarkRead(notificationID string) error
	MarkAllRead(userID string) error
}
