package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

type CreateOrderInput struct {
	CustomerID    string
	Quantity      int64
	Address       string
	Latitude      *float64
	Longitude     *float64
	AddressID     *string
	ScheduledDate string
	ScheduledTime string
}

// Order numbers are human-readable, unique and never reused. The alphabet
// avoids lookalike characters.
var orderNumberGen = func() func() string {
	gen, err := nanoid.CustomASCII("0123456789ABCDEFGHJKMNPQRSTVWXYZ", 10)
	if err != nil {
		panic(err)
	}
	return gen
}()

// CreateOrder freezes the pricing snapshot and persists the order in pending.
// Every order starts at pending; no caller can pick an initial status.
func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *CreateOrderInput) (*domain.Order, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", domain.ErrInvalidState)
	}
	if !domain.ValidTimeSlot(input.ScheduledTime) {
		return nil, fmt.Errorf("scheduled time %q is not an offered slot: %w", input.ScheduledTime, domain.ErrInvalidState)
	}
	if _, err := time.Parse("2006-01-02", input.ScheduledDate); err != nil {
		return nil, fmt.Errorf("scheduled date must be YYYY-MM-DD: %w", domain.ErrInvalidState)
	}

	address := input.Address
	lat, lng := input.Latitude, input.Longitude
	if input.AddressID != nil {
		saved, err := uc.AddressRepo.GetAddressByID(*input.AddressID)
		if err != nil {
			return nil, err
		}
		if saved.UserID != input.CustomerID {
			return nil, domain.ErrForbidden
		}
		address = saved.Address
		lat, lng = saved.Latitude, saved.Longitude
	}
	if address == "" {
		return nil, fmt.Errorf("delivery address required: %w", domain.ErrInvalidState)
	}

	snapshot, err := uc.PricingUsecase.Snapshot(input.Quantity)
	if err != nil {
		return nil, fmt.Errorf("pricing snapshot: %w", err)
	}

	now := time.Now()
	order := &domain.Order{
		ID:              uuid.NewString(),
		OrderNumber:     "FD-" + orderNumberGen(),
		CustomerID:      input.CustomerID,
		Quantity:        input.Quantity,
		RatePerLiter:    snapshot.RatePerLiter,
		Subtotal:        snapshot.Subtotal,
		DeliveryCharges: snapshot.DeliveryCharges,
		GST:             snapshot.GST,
		TotalAmount:     snapshot.TotalAmount,
		DeliveryAddress: address,
		DeliveryLat:     lat,
		DeliveryLng:     lng,
		AddressID:       input.AddressID,
		ScheduledDate:   input.ScheduledDate,
		ScheduledTime:   input.ScheduledTime,
		Status:          domain.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, err
	}

	uc.recordOrderCreatedMetrics(order)

	orderID := order.ID
	if err := uc.Notifications.Notify(order.CustomerID, domain.NotifOrderPlaced,
		"Order placed",
		fmt.Sprintf("Your order %s for %dL has been placed and is awaiting confirmation.", order.OrderNumber, order.Quantity),
		&orderID); err != nil {
		slog.Error("order placed notification failed", "order_id", order.ID, "error", err.Error())
	}
	if err := uc.Notifications.NotifyAdmins(domain.NotifAdminAlert,
		"New order",
		fmt.Sprintf("Order %s placed for %s.", order.OrderNumber, order.TotalAmount.StringFixed(2)),
		&orderID); err != nil {
		slog.Error("admin broadcast failed", "order_id", order.ID, "error", err.Error())
	}

	uc.emitOrderEvent(ctx, order, "order.created")

	go func(o domain.Order) {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.DriverNotifier.NotifyNewOrder(dctx, &o); err != nil {
			uc.recordWebhookFailure("driver")
		}
	}(*order)

	return order, nil
}
