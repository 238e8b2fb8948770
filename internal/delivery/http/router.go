package http

import (
	"github.com/fueldash/fuel-order-service/internal/config"
	"github.com/fueldash/fuel-order-service/internal/delivery/http/handlers"
	"github.com/fueldash/fuel-order-service/internal/delivery/http/middleware"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup registers the full HTTP surface: customer REST, admin surface, the
// driver webhook boundary and the metrics endpoint.
func Setup(
	r *gin.Engine,
	cfg *config.OrderConfig,
	orderHandler *handlers.OrderHandler,
	paymentHandler *handlers.PaymentHandler,
	webhookHandler *handlers.WebhookHandler,
	notificationHandler *handlers.NotificationHandler,
	settingsHandler *handlers.SettingsHandler,
	m *metrics.OrderMetrics,
) {
	r.Use(middleware.Metrics(m))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authed := r.Group("/", middleware.JWTAuth(cfg.Auth.JWTSecret))
	{
		authed.POST("/orders", orderHandler.Create)
		authed.GET("/orders", orderHandler.List)
		authed.GET("/orders/:id", orderHandler.Get)
		authed.POST("/orders/:id/cancel", orderHandler.Cancel)
		authed.POST("/orders/:id/generate-otp", orderHandler.GenerateOtp)
		authed.GET("/orders/:id/payments", paymentHandler.ListByOrder)

		authed.POST("/payments", paymentHandler.Create)
		authed.POST("/payments/gateway/create-order", paymentHandler.GatewayCreateOrder)
		authed.POST("/payments/gateway/verify", paymentHandler.GatewayVerify)

		authed.GET("/notifications", notificationHandler.List)
		authed.POST("/notifications/:id/read", notificationHandler.MarkRead)
		authed.POST("/notifications/read-all", notificationHandler.MarkAllRead)

		admin := authed.Group("/", middleware.RequireAdmin())
		{
			admin.PUT("/orders/:id/assign-driver", orderHandler.AssignDriver)
			admin.GET("/admin/settings", settingsHandler.List)
			admin.PUT("/admin/settings/:key", settingsHandler.Update)
		}
	}

	webhooks := r.Group("/webhooks", middleware.WebhookAuth(cfg.DriverWebhook.Secret))
	{
		webhooks.POST("/delivery-status", webhookHandler.DeliveryStatus)
		webhooks.POST("/test", webhookHandler.Test)
	}
}
