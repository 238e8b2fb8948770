package models

import (
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
)

type NotificationModel struct {
	ID        string                  `gorm:"primaryKey;type:uuid"`
	UserID    string                  `gorm:"type:uuid;index:idx_user_read;not null"`
	Type      domain.NotificationType `gorm:"not null"`
	Title     string
	Message   string
	OrderID   *string `gorm:"type:uuid"`
	Read      bool    `gorm:"index:idx_user_read;default:false"`
	CreatedAt time.Time
}
