package handlers

import (
	"net/http"

	"github.com/fueldash/fuel-order-service/internal/delivery/http/dto/request"
	"github.com/fueldash/fuel-order-service/internal/delivery/http/dto/response"
	"github.com/fueldash/fuel-order-service/internal/delivery/http/middleware"
	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/usecase/payment"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	PaymentUsecase *payment.DefaultPaymentUsecase
}

func NewPaymentHandler(paymentUsecase *payment.DefaultPaymentUsecase) *PaymentHandler {
	return &PaymentHandler{PaymentUsecase: paymentUsecase}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var declaredAmount *decimal.Decimal
	if req.Amount != "" {
		d, err := decimal.NewFromString(req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "amount must be a decimal"})
			return
		}
		declaredAmount = &d
	}

	actor := middleware.ActorFrom(c)
	created, err := h.PaymentUsecase.Record(c.Request.Context(), req.OrderID, domain.PaymentMethod(req.Method), declaredAmount, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.ToPaymentResponse(created))
}

func (h *PaymentHandler) GatewayCreateOrder(c *gin.Context) {
	var req request.GatewayCreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor := middleware.ActorFrom(c)
	result, err := h.PaymentUsecase.InitiateGateway(c.Request.Context(), req.OrderID, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"gatewayOrderId": result.GatewayOrderID,
		"amount":         result.Amount,
		"currency":       result.Currency,
	})
}

func (h *PaymentHandler) GatewayVerify(c *gin.Context) {
	var req request.GatewayVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor := middleware.ActorFrom(c)
	verified, err := h.PaymentUsecase.VerifyGateway(c.Request.Context(), &payment.VerifyInput{
		OrderID:          req.OrderID,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Signature:        req.Signature,
	}, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ToPaymentResponse(verified))
}

func (h *PaymentHandler) ListByOrder(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	payments, err := h.PaymentUsecase.GetPaymentsByOrderID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		writeError(c, err)
		return
	}

	items := make([]response.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, response.ToPaymentResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"payments": items})
}
