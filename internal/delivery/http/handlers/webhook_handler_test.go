package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fueldash/fuel-order-service/internal/delivery/http/middleware"
	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/usecase/order"
	"github.com/fueldash/fuel-order-service/internal/usecase/otp"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "test-webhook-secret"

// orderStore is a shared in-memory order table. It counts reads so tests can
// prove that rejected requests never reached storage.
type orderStore struct {
	mu      sync.Mutex
	orders  map[string]*domain.Order
	touched int
}

func newOrderStore(orders ...*domain.Order) *orderStore {
	s := &orderStore{orders: make(map[string]*domain.Order)}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (s *orderStore) CreateOrder(order *domain.Order) error { return nil }

func (s *orderStore) GetOrderByID(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched++
	o, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *orderStore) GetOrdersByCustomerID(customerID string, page, limit int64) ([]*domain.Order, int64, error) {
	return nil, 0, nil
}

func (s *orderStore) TransitionStatus(orderID string, expected, target domain.OrderStatus, patch *domain.StatusPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched++
	o, ok := s.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Status != expected {
		return domain.ErrConcurrentModification
	}
	o.Status = target
	if patch != nil {
		if patch.DriverID != nil {
			o.DriverID = patch.DriverID
		}
		if patch.ClearOtp {
			o.DeliveryOtp = nil
		}
	}
	return nil
}

func (s *orderStore) SetDeliveryOtp(orderID string, code string, requiredStatus domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok || o.Status != requiredStatus {
		return domain.ErrInvalidState
	}
	o.DeliveryOtp = &code
	return nil
}

func (s *orderStore) FindStalePending(olderThan time.Time) ([]*domain.Order, error) {
	return nil, nil
}

func (s *orderStore) reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}

// stubOrderUsecase drives the shared store through the same edge checks and
// compare-and-swap as the real usecase, without its notification fanout.
type stubOrderUsecase struct {
	store *orderStore
	// beforeTransition simulates a writer racing in between the handler's
	// read and its compare-and-swap.
	beforeTransition func()
}

func (u *stubOrderUsecase) CreateOrder(ctx context.Context, input *order.CreateOrderInput) (*domain.Order, error) {
	return nil, nil
}

func (u *stubOrderUsecase) Transition(ctx context.Context, input *order.TransitionInput) (*domain.Order, error) {
	if !domain.ValidStatus(input.Target) || !domain.CanTransition(input.Expected, input.Target) {
		return nil, fmt.Errorf("%s -> %s: %w", input.Expected, input.Target, domain.ErrInvalidTransition)
	}
	if u.beforeTransition != nil {
		u.beforeTransition()
	}
	patch := input.Patch
	if input.DriverID != nil {
		if patch == nil {
			patch = &domain.StatusPatch{}
		}
		patch.DriverID = input.DriverID
	}
	if err := u.store.TransitionStatus(input.OrderID, input.Expected, input.Target, patch); err != nil {
		return nil, err
	}
	return u.store.GetOrderByID(input.OrderID)
}

func (u *stubOrderUsecase) CancelOrder(ctx context.Context, orderID, reason string, actor domain.Actor) (*domain.Order, error) {
	return nil, nil
}

func (u *stubOrderUsecase) AssignDriver(ctx context.Context, orderID, driverID string, actor domain.Actor) (*domain.Order, error) {
	return nil, nil
}

func (u *stubOrderUsecase) GetOrderByID(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error) {
	return u.store.GetOrderByID(orderID)
}

func (u *stubOrderUsecase) GetOrdersByCustomerID(ctx context.Context, customerID string, page, limit int64) ([]*domain.Order, int64, error) {
	return nil, 0, nil
}

func (u *stubOrderUsecase) CancelStalePending(ctx context.Context, olderThan time.Time) error {
	return nil
}

type noopDriverNotifier struct{}

func (noopDriverNotifier) NotifyNewOrder(ctx context.Context, order *domain.Order) error { return nil }
func (noopDriverNotifier) ForwardDeliveryOtp(ctx context.Context, orderID, orderNumber, code string) error {
	return nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(userID string, notifType domain.NotificationType, title, message string, orderID *string) error {
	return nil
}

type noopLock struct{}

func (noopLock) Acquire(ctx context.Context, key, token string) error { return nil }
func (noopLock) Release(ctx context.Context, key, token string) error { return nil }

type recordingUserRepo struct {
	mu        sync.Mutex
	positions map[string][2]float64
}

func (r *recordingUserRepo) GetUserByID(userID string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *recordingUserRepo) GetUsersByRole(role domain.UserRole) ([]*domain.User, error) {
	return nil, nil
}

func (r *recordingUserRepo) UpdateDriverPosition(driverID string, lat, lng float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.positions == nil {
		r.positions = make(map[string][2]float64)
	}
	r.positions[driverID] = [2]float64{lat, lng}
	return nil
}

func newWebhookRouter(store *orderStore, userRepo *recordingUserRepo) (*gin.Engine, *stubOrderUsecase) {
	gin.SetMode(gin.TestMode)

	usecase := &stubOrderUsecase{store: store}
	otpUsecase := otp.NewDefaultOtpUsecase(store, noopDriverNotifier{}, noopNotifier{}, noopLock{}, nil)
	handler := NewWebhookHandler(usecase, otpUsecase, userRepo, nil)

	r := gin.New()
	webhooks := r.Group("/webhooks", middleware.WebhookAuth(webhookSecret))
	webhooks.POST("/delivery-status", handler.DeliveryStatus)
	webhooks.POST("/test", handler.Test)
	return r, usecase
}

func postWebhook(r *gin.Engine, secret string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/delivery-status", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-Webhook-Secret", secret)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func transitOrder(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:          "order-1",
		OrderNumber: "FD-TEST000001",
		CustomerID:  "customer-1",
		Status:      status,
	}
}

func TestWebhookRejectsBadSecretBeforeStorage(t *testing.T) {
	store := newOrderStore(transitOrder(domain.StatusConfirmed))
	r, _ := newWebhookRouter(store, &recordingUserRepo{})

	payload := gin.H{"orderId": "order-1", "status": "in_transit"}

	t.Run("missing secret", func(t *testing.T) {
		w := postWebhook(r, "", payload)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := postWebhook(r, "guessed-secret", payload)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	assert.Equal(t, 0, store.reads(), "rejected requests must not touch storage")
}

func TestWebhookRejectsBadPayload(t *testing.T) {
	store := newOrderStore(transitOrder(domain.StatusConfirmed))
	r, _ := newWebhookRouter(store, &recordingUserRepo{})

	for name, payload := range map[string]gin.H{
		"missing order id":            {"status": "in_transit"},
		"missing status":              {"orderId": "order-1"},
		"status outside driver edges": {"orderId": "order-1", "status": "cancelled"},
		"unknown status":              {"orderId": "order-1", "status": "teleported"},
	} {
		t.Run(name, func(t *testing.T) {
			w := postWebhook(r, webhookSecret, payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestWebhookAppliesTransitionAndIssuesOtp(t *testing.T) {
	store := newOrderStore(transitOrder(domain.StatusConfirmed))
	userRepo := &recordingUserRepo{}
	r, _ := newWebhookRouter(store, userRepo)

	w := postWebhook(r, webhookSecret, gin.H{
		"orderId":   "order-1",
		"status":    "in_transit",
		"driverId":  "driver-1",
		"latitude":  12.97,
		"longitude": 77.59,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Changed bool   `json:"changed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "in_transit", resp.Status)
	assert.True(t, resp.Changed)

	stored, err := store.GetOrderByID("order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInTransit, stored.Status)
	require.NotNil(t, stored.DriverID)
	assert.Equal(t, "driver-1", *stored.DriverID)

	// Entering in_transit issued a delivery code without a customer request.
	require.NotNil(t, stored.DeliveryOtp)
	assert.Len(t, *stored.DeliveryOtp, 6)

	userRepo.mu.Lock()
	assert.Equal(t, [2]float64{12.97, 77.59}, userRepo.positions["driver-1"])
	userRepo.mu.Unlock()
}

func TestWebhookReplaySameStatusIsNoop(t *testing.T) {
	store := newOrderStore(transitOrder(domain.StatusInTransit))
	r, _ := newWebhookRouter(store, &recordingUserRepo{})

	w := postWebhook(r, webhookSecret, gin.H{"orderId": "order-1", "status": "in_transit"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Changed bool   `json:"changed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Changed)
	assert.Equal(t, "in_transit", resp.Status)
}

func TestWebhookIllegalEdgeRejected(t *testing.T) {
	store := newOrderStore(transitOrder(domain.StatusPending))
	r, _ := newWebhookRouter(store, &recordingUserRepo{})

	// pending -> delivered skips the whole middle of the lifecycle.
	w := postWebhook(r, webhookSecret, gin.H{"orderId": "order-1", "status": "delivered"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stored, err := store.GetOrderByID("order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestWebhookStaleViewGetsConflict(t *testing.T) {
	store := newOrderStore(transitOrder(domain.StatusConfirmed))
	r, usecase := newWebhookRouter(store, &recordingUserRepo{})

	// Another writer moves the order after the handler read it but before
	// the compare-and-swap. The webhook caller gets a 409 to re-fetch on.
	usecase.beforeTransition = func() {
		store.mu.Lock()
		store.orders["order-1"].Status = domain.StatusInTransit
		store.mu.Unlock()
	}

	w := postWebhook(r, webhookSecret, gin.H{"orderId": "order-1", "status": "in_transit"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWebhookUnknownOrder(t *testing.T) {
	store := newOrderStore()
	r, _ := newWebhookRouter(store, &recordingUserRepo{})

	w := postWebhook(r, webhookSecret, gin.H{"orderId": "ghost", "status": "in_transit"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebhookTestEndpoint(t *testing.T) {
	store := newOrderStore()
	r, _ := newWebhookRouter(store, &recordingUserRepo{})

	req := httptest.NewRequest(http.MethodPost, "/webhooks/test", nil)
	req.Header.Set("X-Webhook-Secret", webhookSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
