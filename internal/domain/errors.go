package domain

import "errors"

var (
	ErrInvalidTransition      = errors.New("illegal status transition")
	ErrConcurrentModification = errors.New("order was modified by another actor")
	ErrInvalidState           = errors.New("operation not allowed in current order state")
	ErrInvalidSignature       = errors.New("payment signature verification failed")
	ErrUpstreamUnavailable    = errors.New("upstream system unavailable")
	ErrOrderNotFound          = errors.New("order not found")
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrPaymentExists          = errors.New("completed payment already exists for order")
	ErrAmountMismatch         = errors.New("payment amount does not match order total")
	ErrForbidden              = errors.New("actor is not allowed to perform this operation")
	ErrDriverInactive         = errors.New("driver is not active")
	ErrUserNotFound           = errors.New("user not found")
	ErrAddressNotFound        = errors.New("address not found")
	ErrNotificationNotFound   = errors.New("notification not found")
)
