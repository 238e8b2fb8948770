package handlers

import (
	"net/http"

	"github.com/fueldash/fuel-order-service/internal/delivery/http/dto/request"
	"github.com/fueldash/fuel-order-service/internal/delivery/http/dto/response"
	"github.com/fueldash/fuel-order-service/internal/delivery/http/middleware"
	"github.com/fueldash/fuel-order-service/internal/usecase/order"
	"github.com/fueldash/fuel-order-service/internal/usecase/otp"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	OrderUsecase order.OrderUsecase
	OtpUsecase   *otp.DefaultOtpUsecase
}

func NewOrderHandler(orderUsecase order.OrderUsecase, otpUsecase *otp.DefaultOtpUsecase) *OrderHandler {
	return &OrderHandler{
		OrderUsecase: orderUsecase,
		OtpUsecase:   otpUsecase,
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor := middleware.ActorFrom(c)
	created, err := h.OrderUsecase.CreateOrder(c.Request.Context(), &order.CreateOrderInput{
		CustomerID:    actor.UserID,
		Quantity:      req.Quantity,
		Address:       req.DeliveryAddress,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		AddressID:     req.AddressID,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.ToOrderResponse(created))
}

func (h *OrderHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	page := parseInt64(c.Query("page"), 1)
	limit := parseInt64(c.Query("limit"), 20)

	orders, total, err := h.OrderUsecase.GetOrdersByCustomerID(c.Request.Context(), actor.UserID, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	items := make([]response.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, response.ToOrderResponse(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": items, "total": total})
}

func (h *OrderHandler) Get(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	found, err := h.OrderUsecase.GetOrderByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ToOrderResponse(found))
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	var req request.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor := middleware.ActorFrom(c)
	cancelled, err := h.OrderUsecase.CancelOrder(c.Request.Context(), c.Param("id"), req.Reason, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ToOrderResponse(cancelled))
}

// GenerateOtp issues a fresh delivery verification code. The forwarded flag
// tells the caller whether the push to the driver system landed, so a failed
// forward can be retried by calling again.
func (h *OrderHandler) GenerateOtp(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	result, err := h.OtpUsecase.Generate(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"otp": result.Code, "forwarded": result.Forwarded})
}

func (h *OrderHandler) AssignDriver(c *gin.Context) {
	var req request.AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor := middleware.ActorFrom(c)
	assigned, err := h.OrderUsecase.AssignDriver(c.Request.Context(), c.Param("id"), req.DriverID, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ToOrderResponse(assigned))
}
