package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCOD        PaymentMethod = "cod"
	MethodUPI        PaymentMethod = "upi"
	MethodCards      PaymentMethod = "cards"
	MethodNetbanking PaymentMethod = "netbanking"
	MethodWallet     PaymentMethod = "wallet"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCOD, MethodUPI, MethodCards, MethodNetbanking, MethodWallet:
		return true
	}
	return false
}

type Payment struct {
	ID            string
	OrderID       string
	CustomerID    string
	Amount        decimal.Decimal
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID *string
	// GatewayResponse is raw gateway JSON kept for audit. It is never parsed
	// for business decisions.
	GatewayResponse []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PaymentRepository interface {
	CreatePayment(payment *Payment) error
	GetPaymentByID(paymentID string) (*Payment, error)
	GetPaymentsByOrderID(orderID string) ([]*Payment, error)
	// GetCompletedByOrderID returns ErrPaymentNotFound when the order has no
	// completed payment yet.
	GetCompletedByOrderID(orderID string) (*Payment, error)
	GetByTransactionID(transactionID string) (*Payment, error)
	UpdatePaymentStatus(paymentID string, status PaymentStatus, transactionID *string, gatewayResponse []byte) error
	// CompleteIfProcessing flips a processing payment to completed; a no-op
	// returning ErrPaymentNotFound when the row left processing already.
	CompleteIfProcessing(paymentID string, transactionID string) error
	FailProcessingByOrderID(orderID string) error
}
