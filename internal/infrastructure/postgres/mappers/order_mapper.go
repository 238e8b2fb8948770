package mappers

import (
	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:              model.ID,
		OrderNumber:     model.OrderNumber,
		CustomerID:      model.CustomerID,
		Quantity:        model.Quantity,
		RatePerLiter:    mustDecimal(model.RatePerLiter),
		Subtotal:        mustDecimal(model.Subtotal),
		DeliveryCharges: mustDecimal(model.DeliveryCharges),
		GST:             mustDecimal(model.GST),
		TotalAmount:     mustDecimal(model.TotalAmount),
		DeliveryAddress: model.DeliveryAddress,
		DeliveryLat:     model.DeliveryLat,
		DeliveryLng:     model.DeliveryLng,
		AddressID:       model.AddressID,
		ScheduledDate:   model.ScheduledDate,
		ScheduledTime:   model.ScheduledTime,
		Status:          model.Status,
		DriverID:        model.DriverID,
		DeliveryOtp:     model.DeliveryOtp,
		CancelReason:    model.CancelReason,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerID:      order.CustomerID,
		Quantity:        order.Quantity,
		RatePerLiter:    order.RatePerLiter.StringFixed(2),
		Subtotal:        order.Subtotal.StringFixed(2),
		DeliveryCharges: order.DeliveryCharges.StringFixed(2),
		GST:             order.GST.StringFixed(2),
		TotalAmount:     order.TotalAmount.StringFixed(2),
		DeliveryAddress: order.DeliveryAddress,
		DeliveryLat:     order.DeliveryLat,
		DeliveryLng:     order.DeliveryLng,
		AddressID:       order.AddressID,
		ScheduledDate:   order.ScheduledDate,
		ScheduledTime:   order.ScheduledTime,
		Status:          order.Status,
		DriverID:        order.DriverID,
		DeliveryOtp:     order.DeliveryOtp,
		CancelReason:    order.CancelReason,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// mustDecimal trusts numeric columns we wrote ourselves; a corrupt value
// surfaces as zero rather than a panic in a read path.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
