package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
)

// afterCompletion runs the non-critical legs of a settled payment: customer
// notification, admin webhook, kafka event. None of them can fail the payment.
func (uc *DefaultPaymentUsecase) afterCompletion(ctx context.Context, order *domain.Order, transactionID string) {
	orderID := order.ID
	if err := uc.Notifications.Notify(order.CustomerID, domain.NotifPayment,
		"Payment received",
		fmt.Sprintf("Payment of %s for order %s was received.", order.TotalAmount.StringFixed(2), order.OrderNumber),
		&orderID); err != nil {
		slog.Error("payment notification failed", "order_id", order.ID, "error", err.Error())
	}

	go func(o domain.Order) {
		actx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := uc.AdminNotifier.NotifyOrderEvent(actx, domain.AdminEvent{
			Event:       "payment.completed",
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			Status:      string(o.Status),
			Amount:      o.TotalAmount.StringFixed(2),
			Timestamp:   time.Now(),
		})
		if err != nil && uc.Metrics != nil {
			uc.Metrics.WebhookOutboundFailures.WithLabelValues("admin").Inc()
		}
	}(*order)

	go func(o domain.Order) {
		err := uc.Publisher.PublishOrderEvent(domain.OrderEvent{
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			CustomerID:  o.CustomerID,
			Status:      string(o.Status),
			Amount:      o.TotalAmount.StringFixed(2),
			Event:       "payment.completed",
		})
		if err != nil {
			slog.Error("failed to publish kafka payment event", "order_id", o.ID, "error", err.Error())
		}
	}(*order)
}

func (uc *DefaultPaymentUsecase) GetPaymentsByOrderID(ctx context.Context, orderID string, actor domain.Actor) ([]*domain.Payment, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && order.CustomerID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return uc.PaymentRepo.GetPaymentsByOrderID(orderID)
}
