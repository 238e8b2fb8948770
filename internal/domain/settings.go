package domain

// Keys for the pricing parameters PricingSnapshot reads. Each falls back to a
// default when the row is absent.
const (
	SettingFuelRatePerLiter = "fuel_rate_per_liter"
	SettingDeliveryCharge   = "delivery_charge"
	SettingGSTRate          = "gst_rate"
)

type Setting struct {
	Key   string
	Value string
}

type SettingRepository interface {
	// GetSetting returns ok=false when the key has never been set.
	GetSetting(key string) (value string, ok bool, err error)
	UpsertSetting(key, value string) error
	ListSettings() ([]*Setting, error)
}
