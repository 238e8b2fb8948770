package handlers

import (
	"errors"
	"net/http"

	"github.com/fueldash/fuel-order-service/internal/delivery/http/dto/response"
	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps domain sentinels to HTTP codes. Every rejection carries a
// distinguishable reason string; codes and signatures are never echoed.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAddressNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrConcurrentModification):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrPaymentExists):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrAmountMismatch),
		errors.Is(err, domain.ErrDriverInactive):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		status, message = http.StatusBadGateway, err.Error()
	}

	c.JSON(status, response.ErrorResponse{Error: message})
}
