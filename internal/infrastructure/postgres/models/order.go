package models

import (
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
)

// Money columns are numeric in postgres but carried as strings end to end, so
// the commercial snapshot survives byte-for-byte.
type OrderModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	OrderNumber     string `gorm:"uniqueIndex;not null"`
	CustomerID      string `gorm:"type:uuid;index;not null"`
	Quantity        int64  `gorm:"not null"`
	RatePerLiter    string `gorm:"type:numeric(12,2)"`
	Subtotal        string `gorm:"type:numeric(12,2)"`
	DeliveryCharges string `gorm:"type:numeric(12,2)"`
	GST             string `gorm:"type:numeric(12,2)"`
	TotalAmount     string `gorm:"type:numeric(12,2)"`
	DeliveryAddress string `gorm:"not null"`
	DeliveryLat     *float64
	DeliveryLng     *float64
	AddressID       *string `gorm:"type:uuid"`
	ScheduledDate   string
	ScheduledTime   string
	Status          domain.OrderStatus `gorm:"index:idx_status_created;not null"`
	DriverID        *string            `gorm:"type:uuid;index"`
	DeliveryOtp     *string
	CancelReason    string
	CreatedAt       time.Time `gorm:"index:idx_status_created"`
	UpdatedAt       time.Time
}
