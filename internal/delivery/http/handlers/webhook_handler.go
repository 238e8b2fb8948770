package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fueldash/fuel-order-service/internal/delivery/http/dto/request"
	"github.com/fueldash/fuel-order-service/internal/delivery/http/dto/response"
	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/metrics"
	"github.com/fueldash/fuel-order-service/internal/usecase/order"
	"github.com/fueldash/fuel-order-service/internal/usecase/otp"
	"github.com/gin-gonic/gin"
)

// WebhookHandler is the authenticated inbound boundary for the external driver
// application. Authentication itself happens in middleware, before this code
// or any storage is touched.
type WebhookHandler struct {
	OrderUsecase order.OrderUsecase
	OtpUsecase   *otp.DefaultOtpUsecase
	UserRepo     domain.UserRepository
	Metrics      *metrics.OrderMetrics
}

func NewWebhookHandler(orderUsecase order.OrderUsecase, otpUsecase *otp.DefaultOtpUsecase, userRepo domain.UserRepository, m *metrics.OrderMetrics) *WebhookHandler {
	return &WebhookHandler{
		OrderUsecase: orderUsecase,
		OtpUsecase:   otpUsecase,
		UserRepo:     userRepo,
		Metrics:      m,
	}
}

// DeliveryStatus applies a driver-side status report. The expected current
// status is whatever this service reads now; if the driver's view was stale the
// compare-and-swap fails and the driver system gets a 409 to re-fetch on.
func (h *WebhookHandler) DeliveryStatus(c *gin.Context) {
	var req request.DeliveryStatusWebhook
	if err := c.ShouldBindJSON(&req); err != nil {
		h.record("invalid_payload")
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	target := domain.OrderStatus(req.Status)
	actor := domain.Actor{UserID: "driver-system", Role: domain.RoleDriver}

	current, err := h.OrderUsecase.GetOrderByID(c.Request.Context(), req.OrderID, domain.Actor{UserID: "driver-system", Role: domain.RoleAdmin})
	if err != nil {
		h.record("not_found")
		writeError(c, err)
		return
	}

	// An at-least-once driver system may replay the status we already hold.
	if current.Status == target {
		h.record("unchanged")
		c.JSON(http.StatusOK, gin.H{"status": string(current.Status), "changed": false})
		return
	}

	updated, err := h.OrderUsecase.Transition(c.Request.Context(), &order.TransitionInput{
		OrderID:  req.OrderID,
		Expected: current.Status,
		Target:   target,
		Actor:    actor,
		DriverID: req.DriverID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConcurrentModification):
			h.record("conflict")
		case errors.Is(err, domain.ErrInvalidTransition):
			h.record("illegal_edge")
		default:
			h.record("error")
		}
		writeError(c, err)
		return
	}

	h.record("applied")

	if req.DriverID != nil && req.Latitude != nil && req.Longitude != nil {
		if err := h.UserRepo.UpdateDriverPosition(*req.DriverID, *req.Latitude, *req.Longitude); err != nil {
			slog.Error("driver position update failed", "driver_id", *req.DriverID, "error", err.Error())
		}
	}

	// Entering in_transit issues the delivery code without waiting for the
	// customer to ask.
	if updated.Status == domain.StatusInTransit {
		h.OtpUsecase.EnsureForTransit(c.Request.Context(), updated.ID)
	}

	c.JSON(http.StatusOK, gin.H{"status": string(updated.Status), "changed": true})
}

// Test is a connectivity probe: auth middleware already ran, so reaching here
// means the secret matched.
func (h *WebhookHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *WebhookHandler) record(outcome string) {
	if h.Metrics == nil {
		return
	}
	h.Metrics.WebhookInboundTotal.WithLabelValues(outcome).Inc()
}
