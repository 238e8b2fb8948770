package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fueldash/fuel-order-service/internal/domain"
)

type TransitionInput struct {
	OrderID  string
	Expected domain.OrderStatus
	Target   domain.OrderStatus
	Actor    domain.Actor
	DriverID *string
	Patch    *domain.StatusPatch
}

var statusMessages = map[domain.OrderStatus]string{
	domain.StatusConfirmed: "Your order has been confirmed. A driver is on the way to pick up your fuel.",
	domain.StatusInTransit: "Your fuel is in transit. Keep your delivery code ready.",
	domain.StatusDelivered: "Your fuel has been delivered. Thank you for your order.",
	domain.StatusCancelled: "Your order has been cancelled.",
}

// Transition is the single entry point for status changes. The edge is checked
// against the legal graph first; the write itself is a compare-and-swap, so a
// concurrent writer makes this call fail rather than be silently merged over.
func (uc *DefaultOrderUsecase) Transition(ctx context.Context, input *TransitionInput) (*domain.Order, error) {
	if !domain.ValidStatus(input.Target) {
		return nil, fmt.Errorf("unknown target status %q: %w", input.Target, domain.ErrInvalidTransition)
	}
	if !domain.CanTransition(input.Expected, input.Target) {
		return nil, fmt.Errorf("%s -> %s: %w", input.Expected, input.Target, domain.ErrInvalidTransition)
	}

	patch := input.Patch
	if input.DriverID != nil {
		if patch == nil {
			patch = &domain.StatusPatch{}
		}
		patch.DriverID = input.DriverID
	}
	// Leaving in_transit retires the active delivery code.
	if input.Expected == domain.StatusInTransit && input.Target == domain.StatusDelivered {
		if patch == nil {
			patch = &domain.StatusPatch{}
		}
		patch.ClearOtp = true
	}

	if err := uc.OrderRepo.TransitionStatus(input.OrderID, input.Expected, input.Target, patch); err != nil {
		if err == domain.ErrConcurrentModification {
			uc.recordTransitionConflict()
		}
		return nil, err
	}

	order, err := uc.OrderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}

	uc.recordTransitionMetrics(input.Expected, input.Target, string(input.Actor.Role))

	orderID := order.ID
	if msg, ok := statusMessages[input.Target]; ok {
		if err := uc.Notifications.Notify(order.CustomerID, domain.NotifOrderStatus,
			fmt.Sprintf("Order %s %s", order.OrderNumber, input.Target), msg, &orderID); err != nil {
			slog.Error("status notification failed", "order_id", order.ID, "error", err.Error())
		}
	}

	uc.emitOrderEvent(ctx, order, "order.status_changed")

	return order, nil
}
