package handlers

import (
	"net/http"

	"github.com/fueldash/fuel-order-service/internal/delivery/http/dto/response"
	"github.com/fueldash/fuel-order-service/internal/delivery/http/middleware"
	"github.com/fueldash/fuel-order-service/internal/usecase/notification"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	NotificationUsecase *notification.DefaultNotificationUsecase
}

func NewNotificationHandler(notificationUsecase *notification.DefaultNotificationUsecase) *NotificationHandler {
	return &NotificationHandler{NotificationUsecase: notificationUsecase}
}

func (h *NotificationHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	page := parseInt64(c.Query("page"), 1)
	limit := parseInt64(c.Query("limit"), 20)

	notifications, total, err := h.NotificationUsecase.List(actor.UserID, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	unread, err := h.NotificationUsecase.UnreadCount(actor.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	items := make([]response.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, response.ToNotificationResponse(n))
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items, "total": total, "unread": unread})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if err := h.NotificationUsecase.MarkRead(c.Param("id"), actor); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if err := h.NotificationUsecase.MarkAllRead(actor.UserID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
