package repository

import (
	"errors"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/mappers"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	var user models.UserModel
	if err := r.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&user), nil
}

func (r *DefaultUserRepository) GetUsersByRole(role domain.UserRole) ([]*domain.User, error) {
	var userModels []models.UserModel
	if err := r.DB.Where("role = ?", role).Find(&userModels).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, mappers.ToDomainUser(&userModels[i]))
	}
	return users, nil
}

func (r *DefaultUserRepository) UpdateDriverPosition(driverID string, lat, lng float64) error {
	return r.DB.Model(&models.UserModel{}).
		Where("id = ? AND role = ?", driverID, domain.RoleDriver).
		Updates(map[string]interface{}{
			"last_lat":   lat,
			"last_lng":   lng,
			"updated_at": time.Now(),
		}).Error
}

type DefaultAddressRepository struct {
	DB *gorm.DB
}

func NewDefaultAddressRepository(db *gorm.DB) *DefaultAddressRepository {
	return &DefaultAddressRepository{DB: db}
}

func (r *DefaultAddressRepository) GetAddressByID(addressID string) (*domain.Address, error) {
	var address models.AddressModel
	if err := r.DB.First(&address, "id = ?", addressID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}
	return mappers.ToDomainAddress(&address), nil
}

func (r *DefaultAddressRepository) GetAddressesByUserID(userID string) ([]*domain.Address, error) {
	var addressModels []models.AddressModel
	if err := r.DB.Where("user_id = ?", userID).Find(&addressModels).Error; err != nil {
		return nil, err
	}
	addresses := make([]*domain.Address, 0, len(addressModels))
	for i := range addressModels {
		addresses = append(addresses, mappers.ToDomainAddress(&addressModels[i]))
	}
	return addresses, nil
}

func (r *DefaultAddressRepository) CreateAddress(address *domain.Address) error {
	return r.DB.Create(&models.AddressModel{
		ID:        address.ID,
		UserID:    address.UserID,
		Label:     address.Label,
		Address:   address.Address,
		Latitude:  address.Latitude,
		Longitude: address.Longitude,
		CreatedAt: address.CreatedAt,
	}).Error
}
