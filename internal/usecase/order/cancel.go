package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/scheduler"
)

// CancelOrder is sugar over Transition targeting cancelled. Only the owning
// customer or an admin may cancel, and only from pending or confirmed. A cod
// payment attached to the order is left untouched.
func (uc *DefaultOrderUsecase) CancelOrder(ctx context.Context, orderID, reason string, actor domain.Actor) (*domain.Order, error) {
	if reason == "" {
		return nil, fmt.Errorf("cancellation reason required: %w", domain.ErrInvalidState)
	}

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && order.CustomerID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	if order.Status != domain.StatusPending && order.Status != domain.StatusConfirmed {
		return nil, fmt.Errorf("%s -> cancelled: %w", order.Status, domain.ErrInvalidTransition)
	}

	updated, err := uc.Transition(ctx, &TransitionInput{
		OrderID:  orderID,
		Expected: order.Status,
		Target:   domain.StatusCancelled,
		Actor:    actor,
		Patch:    &domain.StatusPatch{CancelReason: &reason},
	})
	if err != nil {
		return nil, err
	}

	// A pending demo settlement must not complete against a cancelled order.
	uc.Scheduler.Cancel(scheduler.PaymentCompletionKey(orderID))

	uc.recordOrderCancelledMetrics(string(actor.Role))

	return updated, nil
}

// CancelStalePending sweeps orders stuck in pending past the configured age,
// cancelling each through the same compare-and-swap path as everything else.
func (uc *DefaultOrderUsecase) CancelStalePending(ctx context.Context, olderThan time.Time) error {
	stale, err := uc.OrderRepo.FindStalePending(olderThan)
	if err != nil {
		return err
	}

	for _, order := range stale {
		_, err := uc.CancelOrder(ctx, order.ID, "auto-cancelled: unconfirmed for too long", domain.Actor{
			UserID: "system",
			Role:   domain.RoleAdmin,
		})
		if err != nil && !errors.Is(err, domain.ErrConcurrentModification) && !errors.Is(err, domain.ErrInvalidTransition) {
			return fmt.Errorf("auto-cancel order %s: %w", order.ID, err)
		}
	}
	return nil
}
