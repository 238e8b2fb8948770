package pricing

import (
	"fmt"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Defaults apply whenever a pricing setting has never been configured.
var (
	defaultRatePerLiter   = decimal.RequireFromString("70.50")
	defaultDeliveryCharge = decimal.RequireFromString("300")
	defaultGSTRate        = decimal.RequireFromString("0.18")
)

type DefaultPricingUsecase struct {
	SettingRepo domain.SettingRepository
}

func NewDefaultPricingUsecase(settingRepo domain.SettingRepository) *DefaultPricingUsecase {
	return &DefaultPricingUsecase{SettingRepo: settingRepo}
}

// Snapshot freezes the current pricing parameters into an immutable commercial
// snapshot. GST is charged on the delivery fee, not on the fuel subtotal; that
// is the business rule, not an accident.
func (uc *DefaultPricingUsecase) Snapshot(quantity int64) (*domain.PricingSnapshot, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	rate, err := uc.setting(domain.SettingFuelRatePerLiter, defaultRatePerLiter)
	if err != nil {
		return nil, err
	}
	deliveryCharge, err := uc.setting(domain.SettingDeliveryCharge, defaultDeliveryCharge)
	if err != nil {
		return nil, err
	}
	gstRate, err := uc.setting(domain.SettingGSTRate, defaultGSTRate)
	if err != nil {
		return nil, err
	}

	subtotal := rate.Mul(decimal.NewFromInt(quantity)).Round(2)
	gst := deliveryCharge.Mul(gstRate).Round(2)
	total := subtotal.Add(deliveryCharge).Add(gst).Round(2)

	return &domain.PricingSnapshot{
		RatePerLiter:    rate.Round(2),
		Subtotal:        subtotal,
		DeliveryCharges: deliveryCharge.Round(2),
		GST:             gst,
		TotalAmount:     total,
	}, nil
}

func (uc *DefaultPricingUsecase) setting(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	value, ok, err := uc.SettingRepo.GetSetting(key)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reading setting %s: %w", key, err)
	}
	if !ok {
		return fallback, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("setting %s holds a non-decimal value: %w", key, err)
	}
	return d, nil
}

// UpdateSetting validates and stores one pricing parameter. Existing orders
// keep their frozen snapshots.
func (uc *DefaultPricingUsecase) UpdateSetting(key, value string) error {
	switch key {
	case domain.SettingFuelRatePerLiter, domain.SettingDeliveryCharge, domain.SettingGSTRate:
	default:
		return fmt.Errorf("unknown pricing setting %q", key)
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("setting %s must be a decimal: %w", key, err)
	}
	if d.IsNegative() {
		return fmt.Errorf("setting %s must not be negative", key)
	}

	return uc.SettingRepo.UpsertSetting(key, d.String())
}

func (uc *DefaultPricingUsecase) ListSettings() ([]*domain.Setting, error) {
	return uc.SettingRepo.ListSettings()
}
