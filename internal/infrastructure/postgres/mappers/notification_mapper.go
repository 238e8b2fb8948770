package mappers

import (
	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/models"
)

func ToDomainNotification(model *models.NotificationModel) *domain.Notification {
	return &domain.Notification{
		ID:        model.ID,
		UserID:    model.UserID,
		Type:      model.Type,
		Title:     model.Title,
		Message:   model.Message,
		OrderID:   model.OrderID,
		Read:      model.Read,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMNotification(n *domain.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		OrderID:   n.OrderID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		Role:      model.Role,
		Active:    model.Active,
		LastLat:   model.LastLat,
		LastLng:   model.LastLng,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToDomainAddress(model *models.AddressModel) *domain.Address {
	return &domain.Address{
		ID:        model.ID,
		UserID:    model.UserID,
		Label:     model.Label,
		Address:   model.Address,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		CreatedAt: model.CreatedAt,
	}
}
