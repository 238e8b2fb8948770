package response

import (
	"github.com/fueldash/fuel-order-service/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type OrderResponse struct {
	ID              string   `json:"id"`
	OrderNumber     string   `json:"orderNumber"`
	CustomerID      string   `json:"customerId"`
	Quantity        int64    `json:"quantity"`
	RatePerLiter    string   `json:"ratePerLiter"`
	Subtotal        string   `json:"subtotal"`
	DeliveryCharges string   `json:"deliveryCharges"`
	GST             string   `json:"gst"`
	TotalAmount     string   `json:"totalAmount"`
	DeliveryAddress string   `json:"deliveryAddress"`
	Latitude        *float64 `json:"deliveryLatitude,omitempty"`
	Longitude       *float64 `json:"deliveryLongitude,omitempty"`
	ScheduledDate   string   `json:"scheduledDate"`
	ScheduledTime   string   `json:"scheduledTime"`
	Status          string   `json:"status"`
	DriverID        *string  `json:"driverId,omitempty"`
	CancelReason    string   `json:"cancelReason,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

func ToOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerID:      order.CustomerID,
		Quantity:        order.Quantity,
		RatePerLiter:    order.RatePerLiter.StringFixed(2),
		Subtotal:        order.Subtotal.StringFixed(2),
		DeliveryCharges: order.DeliveryCharges.StringFixed(2),
		GST:             order.GST.StringFixed(2),
		TotalAmount:     order.TotalAmount.StringFixed(2),
		DeliveryAddress: order.DeliveryAddress,
		Latitude:        order.DeliveryLat,
		Longitude:       order.DeliveryLng,
		ScheduledDate:   order.ScheduledDate,
		ScheduledTime:   order.ScheduledTime,
		Status:          string(order.Status),
		DriverID:        order.DriverID,
		CancelReason:    order.CancelReason,
		CreatedAt:       order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       order.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"orderId"`
	Amount        string  `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	TransactionID *string `json:"transactionId,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

func ToPaymentResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		Amount:        payment.Amount.StringFixed(2),
		Method:        string(payment.Method),
		Status:        string(payment.Status),
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type NotificationResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	OrderID   *string `json:"orderId,omitempty"`
	Read      bool    `json:"read"`
	CreatedAt string  `json:"createdAt"`
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		OrderID:   n.OrderID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
