package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
)

// HTTPDriverNotifier is the outbound half of the driver-app integration:
// new-order pushes and OTP forwarding.
type HTTPDriverNotifier struct {
	BaseURL string
	Secret  string
	client  *http.Client
}

func NewHTTPDriverNotifier(baseURL, secret string, timeout time.Duration) *HTTPDriverNotifier {
	return &HTTPDriverNotifier{
		BaseURL: baseURL,
		Secret:  secret,
		client:  &http.Client{Timeout: timeout},
	}
}

type newOrderPayload struct {
	OrderID       string   `json:"orderId"`
	OrderNumber   string   `json:"orderNumber"`
	Quantity      int64    `json:"quantity"`
	Address       string   `json:"deliveryAddress"`
	Latitude      *float64 `json:"deliveryLatitude,omitempty"`
	Longitude     *float64 `json:"deliveryLongitude,omitempty"`
	ScheduledDate string   `json:"scheduledDate"`
	ScheduledTime string   `json:"scheduledTime"`
	TotalAmount   string   `json:"totalAmount"`
}

func (n *HTTPDriverNotifier) NotifyNewOrder(ctx context.Context, order *domain.Order) error {
	payload := newOrderPayload{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		Quantity:      order.Quantity,
		Address:       order.DeliveryAddress,
		Latitude:      order.DeliveryLat,
		Longitude:     order.DeliveryLng,
		ScheduledDate: order.ScheduledDate,
		ScheduledTime: order.ScheduledTime,
		TotalAmount:   order.TotalAmount.StringFixed(2),
	}
	return n.post(ctx, "/webhooks/new-order", payload)
}

type otpPayload struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Otp         string `json:"otp"`
}

func (n *HTTPDriverNotifier) ForwardDeliveryOtp(ctx context.Context, orderID, orderNumber, code string) error {
	return n.post(ctx, "/webhooks/delivery-otp", otpPayload{
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Otp:         code,
	})
}

func (n *HTTPDriverNotifier) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s%s", n.BaseURL, path), bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Secret", n.Secret)

	resp, err := n.client.Do(req)
	if err != nil {
		slog.Error("driver webhook failed", "path", path, "error", err.Error())
		return domain.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("driver webhook rejected", "path", path, "status", resp.StatusCode)
		return domain.ErrUpstreamUnavailable
	}
	return nil
}
