package repository

import (
	"errors"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/mappers"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetOrdersByCustomerID(customerID string, page, limit int64) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	query := r.DB.Model(&models.OrderModel{}).Where("customer_id = ?", customerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(int(offset)).Limit(int(limit)).Find(&orderModels).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*domain.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, mappers.ToDomainOrder(&orderModels[i]))
	}
	return orders, total, nil
}

// TransitionStatus is the single write path for status, driver and OTP fields.
// The WHERE clause carries the expected status, so a concurrent writer that got
// there first leaves RowsAffected at zero instead of being overwritten.
func (r *DefaultOrderRepository) TransitionStatus(orderID string, expected, target domain.OrderStatus, patch *domain.StatusPatch) error {
	updates := map[string]interface{}{
		"status":     target,
		"updated_at": time.Now(),
	}
	if patch != nil {
		if patch.DriverID != nil {
			updates["driver_id"] = *patch.DriverID
		}
		if patch.DeliveryOtp != nil {
			updates["delivery_otp"] = *patch.DeliveryOtp
		}
		if patch.ClearOtp {
			updates["delivery_otp"] = nil
		}
		if patch.CancelReason != nil {
			updates["cancel_reason"] = *patch.CancelReason
		}
	}

	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, expected).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.DB.Model(&models.OrderModel{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrOrderNotFound
		}
		return domain.ErrConcurrentModification
	}
	return nil
}

func (r *DefaultOrderRepository) SetDeliveryOtp(orderID string, code string, requiredStatus domain.OrderStatus) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, requiredStatus).
		Updates(map[string]interface{}{
			"delivery_otp": code,
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

func (r *DefaultOrderRepository) FindStalePending(olderThan time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.
		Where("status = ? AND created_at < ?", domain.StatusPending, olderThan).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, mappers.ToDomainOrder(&orderModels[i]))
	}
	return orders, nil
}
