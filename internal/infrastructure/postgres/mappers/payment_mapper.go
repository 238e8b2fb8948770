package mappers

import (
	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/models"
	"gorm.io/datatypes"
)

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:              model.ID,
		OrderID:         model.OrderID,
		CustomerID:      model.CustomerID,
		Amount:          mustDecimal(model.Amount),
		Method:          model.Method,
		Status:          model.Status,
		TransactionID:   model.TransactionID,
		GatewayResponse: []byte(model.GatewayResponse),
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:              payment.ID,
		OrderID:         payment.OrderID,
		CustomerID:      payment.CustomerID,
		Amount:          payment.Amount.StringFixed(2),
		Method:          payment.Method,
		Status:          payment.Status,
		TransactionID:   payment.TransactionID,
		GatewayResponse: datatypes.JSON(payment.GatewayResponse),
		CreatedAt:       payment.CreatedAt,
		UpdatedAt:       payment.UpdatedAt,
	}
}
