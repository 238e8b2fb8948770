package payment

import (
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/metrics"
	"github.com/fueldash/fuel-order-service/internal/scheduler"
)

type notifier interface {
	Notify(userID string, notifType domain.NotificationType, title, message string, orderID *string) error
}

// DefaultPaymentUsecase owns every write to payment rows. It asks the order
// state machine for nothing: payment completion and dispatch are independent
// facts, and neither nudges the other.
type DefaultPaymentUsecase struct {
	PaymentRepo   domain.PaymentRepository
	OrderRepo     domain.OrderRepository
	Gateway       domain.PaymentGateway
	Notifications notifier
	AdminNotifier domain.AdminNotifier
	Publisher     domain.EventPublisher
	Scheduler     *scheduler.Scheduler
	Metrics       *metrics.OrderMetrics

	Currency  string
	DemoDelay time.Duration
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	orderRepo domain.OrderRepository,
	gateway domain.PaymentGateway,
	notifications notifier,
	adminNotifier domain.AdminNotifier,
	publisher domain.EventPublisher,
	sched *scheduler.Scheduler,
	m *metrics.OrderMetrics,
	currency string,
	demoDelay time.Duration) *DefaultPaymentUsecase {

	return &DefaultPaymentUsecase{
		PaymentRepo:   paymentRepo,
		OrderRepo:     orderRepo,
		Gateway:       gateway,
		Notifications: notifications,
		AdminNotifier: adminNotifier,
		Publisher:     publisher,
		Scheduler:     sched,
		Metrics:       m,
		Currency:      currency,
		DemoDelay:     demoDelay,
	}
}
