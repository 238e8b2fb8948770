package request

type CreateOrderRequest struct {
	Quantity        int64    `json:"quantity" binding:"required,min=1"`
	DeliveryAddress string   `json:"deliveryAddress"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	AddressID       *string  `json:"addressId"`
	ScheduledDate   string   `json:"scheduledDate" binding:"required"`
	ScheduledTime   string   `json:"scheduledTime" binding:"required"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AssignDriverRequest struct {
	DriverID string `json:"driverId" binding:"required"`
}
