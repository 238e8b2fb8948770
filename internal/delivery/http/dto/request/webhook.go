package request

// DeliveryStatusWebhook is what the external driver application pushes in.
// Status is restricted to the edges a driver can drive.
type DeliveryStatusWebhook struct {
	OrderID   string   `json:"orderId" binding:"required"`
	Status    string   `json:"status" binding:"required,oneof=confirmed in_transit delivered"`
	DriverID  *string  `json:"driverId"`
	Timestamp *string  `json:"timestamp"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}
