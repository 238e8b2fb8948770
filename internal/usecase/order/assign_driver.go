package order

import (
	"context"
	"fmt"

	"github.com/fueldash/fuel-order-service/internal/domain"
)

// AssignDriver sets the driver and moves the order pending -> confirmed in one
// compare-and-swap write. Dispatch only: no other actor may call this.
func (uc *DefaultOrderUsecase) AssignDriver(ctx context.Context, orderID, driverID string, actor domain.Actor) (*domain.Order, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	driver, err := uc.UserRepo.GetUserByID(driverID)
	if err != nil {
		return nil, err
	}
	if driver.Role != domain.RoleDriver {
		return nil, fmt.Errorf("user %s is not a driver: %w", driverID, domain.ErrInvalidState)
	}
	if !driver.Active {
		return nil, domain.ErrDriverInactive
	}

	return uc.Transition(ctx, &TransitionInput{
		OrderID:  orderID,
		Expected: domain.StatusPending,
		Target:   domain.StatusConfirmed,
		Actor:    actor,
		DriverID: &driverID,
	})
}
