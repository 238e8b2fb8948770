package repository

import (
	"errors"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/mappers"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePayment(payment *domain.Payment) error {
	paymentModel := mappers.ToGORMPayment(payment)
	if err := r.DB.Create(paymentModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultPaymentRepository) GetPaymentByID(paymentID string) (*domain.Payment, error) {
	var payment models.PaymentModel
	if err := r.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&payment), nil
}

func (r *DefaultPaymentRepository) GetPaymentsByOrderID(orderID string) ([]*domain.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.DB.Where("order_id = ?", orderID).Order("created_at DESC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]*domain.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		payments = append(payments, mappers.ToDomainPayment(&paymentModels[i]))
	}
	return payments, nil
}

func (r *DefaultPaymentRepository) GetCompletedByOrderID(orderID string) (*domain.Payment, error) {
	var payment models.PaymentModel
	err := r.DB.
		Where("order_id = ? AND status = ?", orderID, domain.PaymentCompleted).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&payment), nil
}

func (r *DefaultPaymentRepository) GetByTransactionID(transactionID string) (*domain.Payment, error) {
	var payment models.PaymentModel
	if err := r.DB.First(&payment, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&payment), nil
}

func (r *DefaultPaymentRepository) UpdatePaymentStatus(paymentID string, status domain.PaymentStatus, transactionID *string, gatewayResponse []byte) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if transactionID != nil {
		updates["transaction_id"] = *transactionID
	}
	if gatewayResponse != nil {
		updates["gateway_response"] = gatewayResponse
	}
	return r.DB.Model(&models.PaymentModel{}).Where("id = ?", paymentID).Updates(updates).Error
}

// CompleteIfProcessing guards the demo deferred settlement: the flip only lands
// while the row is still processing.
func (r *DefaultPaymentRepository) CompleteIfProcessing(paymentID string, transactionID string) error {
	res := r.DB.Model(&models.PaymentModel{}).
		Where("id = ? AND status = ?", paymentID, domain.PaymentProcessing).
		Updates(map[string]interface{}{
			"status":         domain.PaymentCompleted,
			"transaction_id": transactionID,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *DefaultPaymentRepository) FailProcessingByOrderID(orderID string) error {
	return r.DB.Model(&models.PaymentModel{}).
		Where("order_id = ? AND status = ?", orderID, domain.PaymentProcessing).
		Updates(map[string]interface{}{
			"status":     domain.PaymentFailed,
			"updated_at": time.Now(),
		}).Error
}
