package pricing

import (
	"testing"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingRepo struct {
	values map[string]string
}

func (r *fakeSettingRepo) GetSetting(key string) (string, bool, error) {
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *fakeSettingRepo) UpsertSetting(key, value string) error {
	r.values[key] = value
	return nil
}

func (r *fakeSettingRepo) ListSettings() ([]*domain.Setting, error) {
	var out []*domain.Setting
	for k, v := range r.values {
		out = append(out, &domain.Setting{Key: k, Value: v})
	}
	return out, nil
}

func TestSnapshotExactArithmetic(t *testing.T) {
	uc := NewDefaultPricingUsecase(&fakeSettingRepo{values: map[string]string{
		domain.SettingFuelRatePerLiter: "70.50",
		domain.SettingDeliveryCharge:   "300",
		domain.SettingGSTRate:          "0.18",
	}})

	snap, err := uc.Snapshot(500)
	require.NoError(t, err)

	// GST is charged on the delivery fee only.
	assert.Equal(t, "70.50", snap.RatePerLiter.StringFixed(2))
	assert.Equal(t, "35250.00", snap.Subtotal.StringFixed(2))
	assert.Equal(t, "300.00", snap.DeliveryCharges.StringFixed(2))
	assert.Equal(t, "54.00", snap.GST.StringFixed(2))
	assert.Equal(t, "35604.00", snap.TotalAmount.StringFixed(2))
}

func TestSnapshotDefaultsWhenUnset(t *testing.T) {
	uc := NewDefaultPricingUsecase(&fakeSettingRepo{values: map[string]string{}})

	snap, err := uc.Snapshot(10)
	require.NoError(t, err)

	assert.Equal(t, "70.50", snap.RatePerLiter.StringFixed(2))
	assert.Equal(t, "705.00", snap.Subtotal.StringFixed(2))
	assert.Equal(t, "300.00", snap.DeliveryCharges.StringFixed(2))
	assert.Equal(t, "54.00", snap.GST.StringFixed(2))
	assert.Equal(t, "1059.00", snap.TotalAmount.StringFixed(2))
}

func TestSnapshotRejectsNonPositiveQuantity(t *testing.T) {
	uc := NewDefaultPricingUsecase(&fakeSettingRepo{values: map[string]string{}})

	_, err := uc.Snapshot(0)
	assert.Error(t, err)
	_, err = uc.Snapshot(-5)
	assert.Error(t, err)
}

func TestUpdateSettingValidation(t *testing.T) {
	repo := &fakeSettingRepo{values: map[string]string{}}
	uc := NewDefaultPricingUsecase(repo)

	require.NoError(t, uc.UpdateSetting(domain.SettingFuelRatePerLiter, "82.75"))
	assert.Equal(t, "82.75", repo.values[domain.SettingFuelRatePerLiter])

	assert.Error(t, uc.UpdateSetting(domain.SettingFuelRatePerLiter, "not-a-number"))
	assert.Error(t, uc.UpdateSetting(domain.SettingDeliveryCharge, "-1"))
	assert.Error(t, uc.UpdateSetting("random_key", "5"))
}

func TestSnapshotFrozenAgainstLaterChanges(t *testing.T) {
	repo := &fakeSettingRepo{values: map[string]string{}}
	uc := NewDefaultPricingUsecase(repo)

	before, err := uc.Snapshot(100)
	require.NoError(t, err)

	require.NoError(t, uc.UpdateSetting(domain.SettingFuelRatePerLiter, "99.99"))

	after, err := uc.Snapshot(100)
	require.NoError(t, err)

	assert.Equal(t, "7050.00", before.Subtotal.StringFixed(2))
	assert.Equal(t, "9999.00", after.Subtotal.StringFixed(2))
}
