package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusInTransit OrderStatus = "in_transit"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// legalEdges is the full transition graph. delivered and cancelled are terminal.
var legalEdges = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered},
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range legalEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// TimeSlots are the only accepted delivery windows.
var TimeSlots = []string{"09:00", "11:00", "13:00", "15:00", "17:00", "19:00"}

func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// PricingSnapshot is the commercial terms frozen onto an order at creation.
// Once written they are never recomputed, even if settings change later.
type PricingSnapshot struct {
	RatePerLiter    decimal.Decimal
	Subtotal        decimal.Decimal
	DeliveryCharges decimal.Decimal
	GST             decimal.Decimal
	TotalAmount     decimal.Decimal
}

type DeliveryTarget struct {
	Address   string
	Latitude  *float64
	Longitude *float64
	AddressID *string
}

type Order struct {
	ID              string
	OrderNumber     string
	CustomerID      string
	Quantity        int64
	RatePerLiter    decimal.Decimal
	Subtotal        decimal.Decimal
	DeliveryCharges decimal.Decimal
	GST             decimal.Decimal
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLng     *float64
	AddressID       *string
	ScheduledDate   string
	ScheduledTime   string
	Status          OrderStatus
	DriverID        *string
	DeliveryOtp     *string
	CancelReason    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StatusPatch carries the fields that must change together with a status
// compare-and-swap. Status, driver and OTP move in one write or not at all.
type StatusPatch struct {
	DriverID     *string
	DeliveryOtp  *string
	ClearOtp     bool
	CancelReason *string
}

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	GetOrdersByCustomerID(customerID string, page, limit int64) ([]*Order, int64, error)
	// TransitionStatus applies target only if the persisted status still equals
	// expected. Returns ErrConcurrentModification when the guard fails and
	// ErrOrderNotFound when the row does not exist.
	TransitionStatus(orderID string, expected, target OrderStatus, patch *StatusPatch) error
	// SetDeliveryOtp overwrites the active code, guarded on the given status.
	SetDeliveryOtp(orderID string, code string, requiredStatus OrderStatus) error
	FindStalePending(olderThan time.Time) ([]*Order, error)
}
