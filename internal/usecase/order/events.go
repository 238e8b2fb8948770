package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
)

// emitOrderEvent fans one lifecycle change out to the admin dashboard webhook
// and the kafka event stream. Both legs run off the request path and a failure
// in either never reaches the caller.
func (uc *DefaultOrderUsecase) emitOrderEvent(ctx context.Context, order *domain.Order, event string) {
	go func(o domain.Order) {
		actx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := uc.AdminNotifier.NotifyOrderEvent(actx, domain.AdminEvent{
			Event:       event,
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			Status:      string(o.Status),
			Amount:      o.TotalAmount.StringFixed(2),
			Timestamp:   time.Now(),
		})
		if err != nil {
			uc.recordWebhookFailure("admin")
		}
	}(*order)

	go func(o domain.Order) {
		err := uc.Publisher.PublishOrderEvent(domain.OrderEvent{
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			CustomerID:  o.CustomerID,
			Status:      string(o.Status),
			Amount:      o.TotalAmount.StringFixed(2),
			Event:       event,
		})
		if err != nil {
			slog.Error("failed to publish kafka order event", "order_id", o.ID, "event", event, "error", err.Error())
		}
	}(*order)
}
