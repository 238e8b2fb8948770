package order

import (
	"context"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/metrics"
	"github.com/fueldash/fuel-order-service/internal/scheduler"
	"github.com/fueldash/fuel-order-service/internal/usecase/notification"
	"github.com/fueldash/fuel-order-service/internal/usecase/pricing"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*domain.Order, error)
	Transition(ctx context.Context, input *TransitionInput) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string, actor domain.Actor) (*domain.Order, error)
	AssignDriver(ctx context.Context, orderID, driverID string, actor domain.Actor) (*domain.Order, error)

	GetOrderByID(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error)
	GetOrdersByCustomerID(ctx context.Context, customerID string, page, limit int64) ([]*domain.Order, int64, error)
	CancelStalePending(ctx context.Context, olderThan time.Time) error
}

type DefaultOrderUsecase struct {
	OrderRepo      domain.OrderRepository
	UserRepo       domain.UserRepository
	AddressRepo    domain.AddressRepository
	PricingUsecase *pricing.DefaultPricingUsecase
	Notifications  *notification.DefaultNotificationUsecase
	AdminNotifier  domain.AdminNotifier
	DriverNotifier domain.DriverNotifier
	Publisher      domain.EventPublisher
	Scheduler      *scheduler.Scheduler
	Metrics        *metrics.OrderMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	userRepo domain.UserRepository,
	addressRepo domain.AddressRepository,
	pricingUsecase *pricing.DefaultPricingUsecase,
	notifications *notification.DefaultNotificationUsecase,
	adminNotifier domain.AdminNotifier,
	driverNotifier domain.DriverNotifier,
	publisher domain.EventPublisher,
	sched *scheduler.Scheduler,
	orderMetrics *metrics.OrderMetrics) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:      orderRepo,
		UserRepo:       userRepo,
		AddressRepo:    addressRepo,
		PricingUsecase: pricingUsecase,
		Notifications:  notifications,
		AdminNotifier:  adminNotifier,
		DriverNotifier: driverNotifier,
		Publisher:      publisher,
		Scheduler:      sched,
		Metrics:        orderMetrics,
	}
}
