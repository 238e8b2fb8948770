package models

import (
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"gorm.io/datatypes"
)

type PaymentModel struct {
	ID            string               `gorm:"primaryKey;type:uuid"`
	OrderID       string               `gorm:"type:uuid;index;not null"`
	CustomerID    string               `gorm:"type:uuid;index;not null"`
	Amount        string               `gorm:"type:numeric(12,2);not null"`
	Method        domain.PaymentMethod `gorm:"not null"`
	Status        domain.PaymentStatus `gorm:"index;not null"`
	TransactionID *string              `gorm:"index"`
	// Raw gateway payload, audit only.
	GatewayResponse datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
