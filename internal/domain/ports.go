package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AdminEvent describes an order/payment change pushed to the external admin
// dashboard. Delivery is best-effort: a failed push never fails the operation
// that produced the event.
type AdminEvent struct {
	Event       string    `json:"event"`
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type AdminNotifier interface {
	NotifyOrderEvent(ctx context.Context, event AdminEvent) error
}

// DriverNotifier pushes new-order and OTP events to the external driver
// application, authenticated by a shared secret. Same best-effort policy.
type DriverNotifier interface {
	NotifyNewOrder(ctx context.Context, order *Order) error
	ForwardDeliveryOtp(ctx context.Context, orderID, orderNumber, code string) error
}

// GatewayPayment is the provider's view of a settled payment, fetched after
// signature verification.
type GatewayPayment struct {
	PaymentID string
	OrderID   string
	Method    string
	Status    string
	Raw       []byte
}

type PaymentGateway interface {
	CreateGatewayOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (gatewayOrderID string, err error)
	FetchPayment(ctx context.Context, gatewayPaymentID string) (*GatewayPayment, error)
	// VerifySignature recomputes the HMAC over "gatewayOrderID|gatewayPaymentID"
	// with the server-held secret and compares in constant time.
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}

// EventPublisher is the message-queue port for order lifecycle events.
type EventPublisher interface {
	PublishOrderEvent(event OrderEvent) error
}

type OrderEvent struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	CustomerID  string `json:"customer_id"`
	Status      string `json:"status"`
	Amount      string `json:"amount"`
	Event       string `json:"event"`
}
