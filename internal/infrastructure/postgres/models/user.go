package models

import (
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
)

type UserModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	Name      string          `gorm:"not null"`
	Phone     string          `gorm:"uniqueIndex"`
	Role      domain.UserRole `gorm:"index;not null"`
	Active    bool            `gorm:"default:true"`
	LastLat   *float64
	LastLng   *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AddressModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"type:uuid;index;not null"`
	Label     string
	Address   string `gorm:"not null"`
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
}

type SettingModel struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}
