package repository

import (
	"errors"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultSettingRepository struct {
	DB *gorm.DB
}

func NewDefaultSettingRepository(db *gorm.DB) *DefaultSettingRepository {
	return &DefaultSettingRepository{DB: db}
}

func (r *DefaultSettingRepository) GetSetting(key string) (string, bool, error) {
	var setting models.SettingModel
	if err := r.DB.First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return setting.Value, true, nil
}

func (r *DefaultSettingRepository) UpsertSetting(key, value string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.SettingModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}).Error
}

func (r *DefaultSettingRepository) ListSettings() ([]*domain.Setting, error) {
	var settingModels []models.SettingModel
	if err := r.DB.Order("key").Find(&settingModels).Error; err != nil {
		return nil, err
	}
	settings := make([]*domain.Setting, 0, len(settingModels))
	for _, m := range settingModels {
		settings = append(settings, &domain.Setting{Key: m.Key, Value: m.Value})
	}
	return settings, nil
}
