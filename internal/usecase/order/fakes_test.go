package order

import (
	"context"
	"sync"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/scheduler"
	"github.com/fueldash/fuel-order-service/internal/usecase/notification"
	"github.com/fueldash/fuel-order-service/internal/usecase/pricing"
)

// fakeOrderRepo applies the same compare-and-swap discipline as the postgres
// repository, under a mutex instead of a WHERE clause.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetOrdersByCustomerID(customerID string, page, limit int64) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) TransitionStatus(orderID string, expected, target domain.OrderStatus, patch *domain.StatusPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Status != expected {
		return domain.ErrConcurrentModification
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	if patch != nil {
		if patch.DriverID != nil {
			o.DriverID = patch.DriverID
		}
		if patch.DeliveryOtp != nil {
			o.DeliveryOtp = patch.DeliveryOtp
		}
		if patch.ClearOtp {
			o.DeliveryOtp = nil
		}
		if patch.CancelReason != nil {
			o.CancelReason = *patch.CancelReason
		}
	}
	return nil
}

func (r *fakeOrderRepo) SetDeliveryOtp(orderID string, code string, requiredStatus domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok || o.Status != requiredStatus {
		return domain.ErrInvalidState
	}
	o.DeliveryOtp = &code
	o.UpdatedAt = time.Now()
	return nil
}

func (r *fakeOrderRepo) FindStalePending(olderThan time.Time) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, o := range r.orders {
		if o.Status == domain.StatusPending && o.CreatedAt.Before(olderThan) {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*domain.Notification
}

func (r *fakeNotificationRepo) CreateNotification(n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *fakeNotificationRepo) GetByUserID(userID string, page, limit int64) ([]*domain.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) CountUnread(userID string) (int64, error) { return 0, nil }

func (r *fakeNotificationRepo) GetNotificationByID(id string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkRead(id string) error        { return nil }
func (r *fakeNotificationRepo) MarkAllRead(userID string) error { return nil }

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetUserByID(userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUsersByRole(role domain.UserRole) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateDriverPosition(driverID string, lat, lng float64) error { return nil }

type fakeAddressRepo struct {
	addresses map[string]*domain.Address
}

func (r *fakeAddressRepo) GetAddressByID(id string) (*domain.Address, error) {
	a, ok := r.addresses[id]
	if !ok {
		return nil, domain.ErrAddressNotFound
	}
	return a, nil
}

func (r *fakeAddressRepo) GetAddressesByUserID(userID string) ([]*domain.Address, error) {
	return nil, nil
}

func (r *fakeAddressRepo) CreateAddress(a *domain.Address) error { return nil }

type fakeAdminNotifier struct {
	mu     sync.Mutex
	events []domain.AdminEvent
}

func (n *fakeAdminNotifier) NotifyOrderEvent(ctx context.Context, event domain.AdminEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

type fakeDriverNotifier struct {
	mu        sync.Mutex
	newOrders []string
	otps      []string
	fail      bool
}

func (n *fakeDriverNotifier) NotifyNewOrder(ctx context.Context, order *domain.Order) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return domain.ErrUpstreamUnavailable
	}
	n.newOrders = append(n.newOrders, order.ID)
	return nil
}

func (n *fakeDriverNotifier) ForwardDeliveryOtp(ctx context.Context, orderID, orderNumber, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return domain.ErrUpstreamUnavailable
	}
	n.otps = append(n.otps, code)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
}

func (p *fakePublisher) PublishOrderEvent(event domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type fixture struct {
	uc        *DefaultOrderUsecase
	orderRepo *fakeOrderRepo
	userRepo  *fakeUserRepo
	notifRepo *fakeNotificationRepo
	admin     *fakeAdminNotifier
	driver    *fakeDriverNotifier
	publisher *fakePublisher
}

func newFixture(users ...*domain.User) *fixture {
	orderRepo := newFakeOrderRepo()
	userRepo := newFakeUserRepo(users...)
	notifRepo := &fakeNotificationRepo{}
	admin := &fakeAdminNotifier{}
	driver := &fakeDriverNotifier{}
	publisher := &fakePublisher{}

	settingRepo := &fakeSettingRepo{values: map[string]string{}}
	pricingUsecase := pricing.NewDefaultPricingUsecase(settingRepo)
	notifications := notification.NewDefaultNotificationUsecase(notifRepo, userRepo)

	uc := NewDefaultOrderUsecase(
		orderRepo,
		userRepo,
		&fakeAddressRepo{addresses: map[string]*domain.Address{}},
		pricingUsecase,
		notifications,
		admin,
		driver,
		publisher,
		scheduler.New(),
		nil,
	)

	return &fixture{
		uc:        uc,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		admin:     admin,
		driver:    driver,
		publisher: publisher,
	}
}

type fakeSettingRepo struct {
	values map[string]string
}

func (r *fakeSettingRepo) GetSetting(key string) (string, bool, error) {
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *fakeSettingRepo) UpsertSetting(key, value string) error {
	r.values[key] = value
	return nil
}

func (r *fakeSettingRepo) ListSettings() ([]*domain.Setting, error) { return nil, nil }
