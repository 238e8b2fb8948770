package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
)

// Locker serializes OTP generation per order id so two fresh codes can never
// race each other to the driver system.
type Locker interface {
	Acquire(ctx context.Context, key, token string) error
	Release(ctx context.Context, key, token string) error
}

type GenerateResult struct {
	Code      string
	Forwarded bool
}

type DefaultOtpUsecase struct {
	OrderRepo      domain.OrderRepository
	DriverNotifier domain.DriverNotifier
	Notifications  notifier
	Lock           Locker
	Metrics        *metrics.OrderMetrics
}

type notifier interface {
	Notify(userID string, notifType domain.NotificationType, title, message string, orderID *string) error
}

func NewDefaultOtpUsecase(orderRepo domain.OrderRepository, driverNotifier domain.DriverNotifier, notifications notifier, lock Locker, m *metrics.OrderMetrics) *DefaultOtpUsecase {
	return &DefaultOtpUsecase{
		OrderRepo:      orderRepo,
		DriverNotifier: driverNotifier,
		Notifications:  notifications,
		Lock:           lock,
		Metrics:        m,
	}
}

// Generate issues a fresh 6-digit code for an in-transit order, invalidating
// any earlier code. Forwarding to the driver system is best-effort: a failed
// forward is reported in the result, never as an error.
func (uc *DefaultOtpUsecase) Generate(ctx context.Context, orderID string, actor domain.Actor) (*GenerateResult, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleCustomer && order.CustomerID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	if order.Status != domain.StatusInTransit {
		return nil, fmt.Errorf("order is %s, delivery code requires in_transit: %w", order.Status, domain.ErrInvalidState)
	}

	token := uuid.NewString()
	lockCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := uc.Lock.Acquire(lockCtx, orderID, token); err != nil {
		return nil, fmt.Errorf("acquiring otp lock: %w", err)
	}
	defer func() {
		if err := uc.Lock.Release(context.Background(), orderID, token); err != nil {
			slog.Error("otp lock release failed", "order_id", orderID, "error", err.Error())
		}
	}()

	code, err := sixDigits()
	if err != nil {
		return nil, err
	}

	// The status guard repeats inside the write, so a webhook that moved the
	// order concurrently makes this fail instead of attaching a code to the
	// wrong state.
	if err := uc.OrderRepo.SetDeliveryOtp(orderID, code, domain.StatusInTransit); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.OtpGeneratedTotal.Inc()
	}

	if err := uc.Notifications.Notify(order.CustomerID, domain.NotifDeliveryOtp,
		"Delivery verification code",
		fmt.Sprintf("Share code %s with the driver to confirm delivery of order %s.", code, order.OrderNumber),
		&order.ID); err != nil {
		slog.Error("otp notification failed", "order_id", orderID, "error", err.Error())
	}

	forwarded := true
	fctx, fcancel := context.WithTimeout(ctx, 5*time.Second)
	defer fcancel()
	if err := uc.DriverNotifier.ForwardDeliveryOtp(fctx, order.ID, order.OrderNumber, code); err != nil {
		forwarded = false
		if uc.Metrics != nil {
			uc.Metrics.WebhookOutboundFailures.WithLabelValues("driver").Inc()
		}
	}

	return &GenerateResult{Code: code, Forwarded: forwarded}, nil
}

// EnsureForTransit generates a code right after a webhook moved the order into
// in_transit, unless one is already set. Runs as the system, not the customer.
func (uc *DefaultOtpUsecase) EnsureForTransit(ctx context.Context, orderID string) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		slog.Error("otp auto-generation read failed", "order_id", orderID, "error", err.Error())
		return
	}
	if order.Status != domain.StatusInTransit || order.DeliveryOtp != nil {
		return
	}

	if _, err := uc.Generate(ctx, orderID, domain.Actor{UserID: "system", Role: domain.RoleAdmin}); err != nil {
		slog.Error("otp auto-generation failed", "order_id", orderID, "error", err.Error())
	}
}

func sixDigits() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
