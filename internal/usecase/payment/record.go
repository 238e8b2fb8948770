package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/scheduler"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record registers a payment attempt for an order. Cash-on-delivery stays
// pending until physical delivery; settlement is never separately confirmed by
// this service. Other methods taken through this endpoint are demo settlements:
// a processing row plus a deferred completion that a cancellation can stop.
// A caller-declared amount must match the frozen order total exactly; the
// persisted amount always comes from the order, never from the caller.
func (uc *DefaultPaymentUsecase) Record(ctx context.Context, orderID string, method domain.PaymentMethod, declaredAmount *decimal.Decimal, actor domain.Actor) (*domain.Payment, error) {
	if !domain.ValidPaymentMethod(method) {
		return nil, fmt.Errorf("unknown payment method %q: %w", method, domain.ErrInvalidState)
	}

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && order.CustomerID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	if order.Status == domain.StatusCancelled {
		return nil, fmt.Errorf("order is cancelled: %w", domain.ErrInvalidState)
	}
	if declaredAmount != nil && !declaredAmount.Equal(order.TotalAmount) {
		return nil, fmt.Errorf("declared %s, order total is %s: %w",
			declaredAmount.StringFixed(2), order.TotalAmount.StringFixed(2), domain.ErrAmountMismatch)
	}

	if _, err := uc.PaymentRepo.GetCompletedByOrderID(orderID); err == nil {
		return nil, domain.ErrPaymentExists
	} else if !errors.Is(err, domain.ErrPaymentNotFound) {
		return nil, err
	}

	now := time.Now()
	payment := &domain.Payment{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Amount:     order.TotalAmount,
		Method:     method,
		Status:     domain.PaymentPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if method != domain.MethodCOD {
		payment.Status = domain.PaymentProcessing
	}

	if err := uc.PaymentRepo.CreatePayment(payment); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.PaymentsRecordedTotal.WithLabelValues(string(method)).Inc()
	}

	if method != domain.MethodCOD {
		uc.scheduleDemoCompletion(payment.ID, order.ID)
	}

	return payment, nil
}

// scheduleDemoCompletion defers the simulated settlement off the request
// thread. The task re-reads the order at fire time, so even a completion that
// escaped Cancel cannot settle a cancelled order.
func (uc *DefaultPaymentUsecase) scheduleDemoCompletion(paymentID, orderID string) {
	uc.Scheduler.Schedule(scheduler.PaymentCompletionKey(orderID), uc.DemoDelay, func() {
		order, err := uc.OrderRepo.GetOrderByID(orderID)
		if err != nil {
			slog.Error("demo settlement read failed", "order_id", orderID, "error", err.Error())
			return
		}
		if order.Status == domain.StatusCancelled {
			if err := uc.PaymentRepo.FailProcessingByOrderID(orderID); err != nil {
				slog.Error("failing payment of cancelled order", "order_id", orderID, "error", err.Error())
			}
			return
		}

		transactionID := "demo_" + uuid.NewString()
		if err := uc.PaymentRepo.CompleteIfProcessing(paymentID, transactionID); err != nil {
			if !errors.Is(err, domain.ErrPaymentNotFound) {
				slog.Error("demo settlement failed", "payment_id", paymentID, "error", err.Error())
			}
			return
		}

		uc.afterCompletion(context.Background(), order, transactionID)
	})
}
