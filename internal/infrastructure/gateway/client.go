package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/shopspring/decimal"
)

// HTTPPaymentGateway talks to the external card/UPI/netbanking provider. The
// provider's checkout protocol is two-step: create a gateway-side order, then
// verify the signed callback.
type HTTPPaymentGateway struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	client    *http.Client
}

func NewHTTPPaymentGateway(baseURL, keyID, keySecret string, timeout time.Duration) *HTTPPaymentGateway {
	return &HTTPPaymentGateway{
		BaseURL:   baseURL,
		KeyID:     keyID,
		KeySecret: keySecret,
		client:    &http.Client{Timeout: timeout},
	}
}

type createOrderRequest struct {
	// Amount in minor units, the convention of card gateways.
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (g *HTTPPaymentGateway) CreateGatewayOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (string, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amount.Mul(decimal.NewFromInt(100)).IntPart(),
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/orders", g.BaseURL), bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.KeyID, g.KeySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", domain.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e errorResponse
		if err := json.Unmarshal(respBody, &e); err == nil && e.Error != "" {
			return "", errors.New(e.Error)
		}
		return "", domain.ErrUpstreamUnavailable
	}

	var created createOrderResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (g *HTTPPaymentGateway) FetchPayment(ctx context.Context, gatewayPaymentID string) (*domain.GatewayPayment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/payments/%s", g.BaseURL, gatewayPaymentID), nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(g.KeyID, g.KeySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.ErrUpstreamUnavailable
	}

	var payment struct {
		ID      string `json:"id"`
		OrderID string `json:"order_id"`
		Method  string `json:"method"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(respBody, &payment); err != nil {
		return nil, err
	}

	return &domain.GatewayPayment{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		Method:    payment.Method,
		Status:    payment.Status,
		Raw:       respBody,
	}, nil
}

// VerifySignature is the sole authenticity check of the checkout callback.
// HMAC-SHA256 over "gatewayOrderID|gatewayPaymentID" with the key secret,
// hex-encoded, compared in constant time.
func (g *HTTPPaymentGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.KeySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
