package handlers

import (
	"net/http"

	"github.com/fueldash/fuel-order-service/internal/delivery/http/dto/request"
	"github.com/fueldash/fuel-order-service/internal/delivery/http/dto/response"
	"github.com/fueldash/fuel-order-service/internal/usecase/pricing"
	"github.com/gin-gonic/gin"
)

// SettingsHandler is the admin surface over the pricing parameters that
// PricingSnapshot consumes. Changes only affect orders created afterwards.
type SettingsHandler struct {
	PricingUsecase *pricing.DefaultPricingUsecase
}

func NewSettingsHandler(pricingUsecase *pricing.DefaultPricingUsecase) *SettingsHandler {
	return &SettingsHandler{PricingUsecase: pricingUsecase}
}

func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.PricingUsecase.ListSettings()
	if err != nil {
		writeError(c, err)
		return
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	c.JSON(http.StatusOK, gin.H{"settings": values})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.PricingUsecase.UpdateSetting(c.Param("key"), req.Value); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
