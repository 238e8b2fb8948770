package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/google/uuid"
)

type InitiateResult struct {
	GatewayOrderID string
	Amount         string
	Currency       string
}

// InitiateGateway opens a gateway-side order for the exact order total. No
// payment row is written yet; that happens in Verify.
func (uc *DefaultPaymentUsecase) InitiateGateway(ctx context.Context, orderID string, actor domain.Actor) (*InitiateResult, error) {
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
	if _, err := uc.PaymentRepo.GetCompletedByOrderID(orderID); err == nil {
		return nil, domain.ErrPaymentExists
	} else if !errors.Is(err, domain.ErrPaymentNotFound) {
		return nil, err
	}

	gatewayOrderID, err := uc.Gateway.CreateGatewayOrder(ctx, order.TotalAmount, uc.Currency, order.OrderNumber)
	if err != nil {
		return nil, err
	}

	return &InitiateResult{
		GatewayOrderID: gatewayOrderID,
		Amount:         order.TotalAmount.StringFixed(2),
		Currency:       uc.Currency,
	}, nil
}

type VerifyInput struct {
	OrderID          string
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

// VerifyGateway authenticates the checkout callback and persists the completed
// payment. The HMAC check is the sole authenticity gate. The call is
// idempotent: a replay with the same gateway payment id returns the already
// completed payment untouched, and fires no second round of notifications.
// Payment completion does not confirm the order; dispatch stays a separate fact.
func (uc *DefaultPaymentUsecase) VerifyGateway(ctx context.Context, input *VerifyInput, actor domain.Actor) (*domain.Payment, error) {
	order, err := uc.OrderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && order.CustomerID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	if existing, err := uc.PaymentRepo.GetCompletedByOrderID(input.OrderID); err == nil {
		return existing, nil
	} else if !errors.Is(err, domain.ErrPaymentNotFound) {
		return nil, err
	}

	if !uc.Gateway.VerifySignature(input.GatewayOrderID, input.GatewayPaymentID, input.Signature) {
		if uc.Metrics != nil {
			uc.Metrics.SignatureFailures.Inc()
		}
		slog.Error("payment signature rejected",
			"order_id", input.OrderID,
			"gateway_order_id", input.GatewayOrderID,
			"gateway_payment_id", input.GatewayPaymentID,
			"supplied_prefix", sigPrefix(input.Signature),
		)
		return nil, domain.ErrInvalidSignature
	}

	fetched, err := uc.Gateway.FetchPayment(ctx, input.GatewayPaymentID)
	if err != nil {
		return nil, err
	}

	method := domain.PaymentMethod(fetched.Method)
	if !domain.ValidPaymentMethod(method) || method == domain.MethodCOD {
		method = domain.MethodCards
	}

	now := time.Now()
	transactionID := input.GatewayPaymentID
	payment := &domain.Payment{
		ID:              uuid.NewString(),
		OrderID:         order.ID,
		CustomerID:      order.CustomerID,
		Amount:          order.TotalAmount,
		Method:          method,
		Status:          domain.PaymentCompleted,
		TransactionID:   &transactionID,
		GatewayResponse: fetched.Raw,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.PaymentRepo.CreatePayment(payment); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.PaymentsVerifiedTotal.Inc()
	}

	uc.afterCompletion(ctx, order, transactionID)

	return payment, nil
}

// sigPrefix keeps enough of a bad signature to investigate without logging
// secret-derived material in full.
func sigPrefix(signature string) string {
	if len(signature) <= 8 {
		return signature
	}
	return signature[:8]
}
