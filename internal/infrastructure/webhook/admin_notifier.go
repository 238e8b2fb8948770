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

// HTTPAdminNotifier pushes order/payment events to the external admin
// dashboard. Calls are time-bounded and never retried here; reliability beyond
// one attempt is the caller's problem.
type HTTPAdminNotifier struct {
	BaseURL string
	Secret  string
	client  *http.Client
}

func NewHTTPAdminNotifier(baseURL, secret string, timeout time.Duration) *HTTPAdminNotifier {
	return &HTTPAdminNotifier{
		BaseURL: baseURL,
		Secret:  secret,
		client:  &http.Client{Timeout: timeout},
	}
}

func (n *HTTPAdminNotifier) NotifyOrderEvent(ctx context.Context, event domain.AdminEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/webhooks/orders", n.BaseURL), bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Secret", n.Secret)

	resp, err := n.client.Do(req)
	if err != nil {
		slog.Error("admin webhook failed", "event", event.Event, "order_id", event.OrderID, "error", err.Error())
		return domain.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("admin webhook rejected", "event", event.Event, "order_id", event.OrderID, "status", resp.StatusCode)
		return domain.ErrUpstreamUnavailable
	}
	return nil
}
