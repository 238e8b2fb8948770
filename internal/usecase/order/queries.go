package order

import (
	"context"

	"github.com/fueldash/fuel-order-service/internal/domain"
)

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && order.CustomerID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (uc *DefaultOrderUsecase) GetOrdersByCustomerID(ctx context.Context, customerID string, page, limit int64) ([]*domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.OrderRepo.GetOrdersByCustomerID(customerID, page, limit)
}
