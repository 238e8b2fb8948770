package request

type CreatePaymentRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Method  string `json:"method" binding:"required,oneof=cod upi cards netbanking wallet"`
	// Amount, when supplied, must equal the order total exactly.
	Amount string `json:"amount"`
}

type GatewayCreateOrderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

type GatewayVerifyRequest struct {
	OrderID          string `json:"orderId" binding:"required"`
	GatewayOrderID   string `json:"gatewayOrderId" binding:"required"`
	GatewayPaymentID string `json:"gatewayPaymentId" binding:"required"`
	Signature        string `json:"signature" binding:"required"`
}
