package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBase(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		unit      string
		unitType  UnitType
		wantValue float64
		wantUnit  string
	}{
		{"cups to ml", 2, "cups", UnitVolume, 480, "ml"},
		{"tablespoon to ml", 3, "tbsp.", UnitVolume, 45, "ml"},
		{"quart to ml", 1, "quart", UnitVolume, 960, "ml"},
		{"liter to ml", 1.5, "l", UnitVolume, 1500, "ml"},
		{"pound to g", 1, "lb", UnitWeight, 453.6, "g"},
		{"ounces to g", 2, "oz", UnitWeight, 56.7, "g"},
		{"kilogram to g", 0.5, "kg", UnitWeight, 500, "g"},
		{"mixed case unit", 1, "Cups", UnitVolume, 240, "ml"},

		// 查不到的單位與個數原樣通過
		{"unknown unit preserved", 2, "pinch", UnitVolume, 2, "pinch"},
		{"count passes through", 3, "", UnitCount, 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, unit := ToBase(tt.quantity, tt.unit, tt.unitType)
			assert.InDelta(t, tt.wantValue, value, 1e-9)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestToPreferredImperialVolume(t *testing.T) {
	tests := []struct {
		name         string
		baseValue    float64
		wantQuantity float64
		wantUnit     string
		wantFlOz     string
	}{
		{"whole cups", 960, 4, "cups", "32 fl oz"},
		{"single cup", 240, 1, "cup", "8 fl oz"},
		{"eighth cup threshold", 30, 0.125, "cups", "1 fl oz"},
		{"falls back to tbsp", 20, 20.0 / 15, "tbsp", "2/3 fl oz"},
		{"half tbsp threshold", 7.5, 0.5, "tbsp", "1/4 fl oz"},
		{"tiny amounts in tsp", 5, 1, "tsp", "1/6 fl oz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPreferred(tt.baseValue, UnitVolume, SystemImperial)
			assert.InDelta(t, tt.wantQuantity, got.Quantity, 1e-9)
			assert.Equal(t, tt.wantUnit, got.Unit)
			assert.Equal(t, tt.wantFlOz, got.FlOz)
		})
	}
}

func TestToPreferredImperialWeight(t *testing.T) {
	// 滿 16 oz 進位為磅
	lb := ToPreferred(453.6, UnitWeight, SystemImperial)
	assert.InDelta(t, 1, lb.Quantity, 1e-9)
	assert.Equal(t, "lb", lb.Unit)

	oz := ToPreferred(100, UnitWeight, SystemImperial)
	assert.InDelta(t, 100/28.35, oz.Quantity, 1e-9)
	assert.Equal(t, "oz", oz.Unit)
}

func TestToPreferredMetric(t *testing.T) {
	volume := ToPreferred(960, UnitVolume, SystemMetric)
	assert.InDelta(t, 960, volume.Quantity, 1e-9)
	assert.Equal(t, "ml", volume.Unit)
	assert.Empty(t, volume.FlOz)

	weight := ToPreferred(500, UnitWeight, SystemMetric)
	assert.InDelta(t, 500, weight.Quantity, 1e-9)
	assert.Equal(t, "g", weight.Unit)
}

// 以系統原生單位表達的量，換算到基準再換回來要還原
func TestConvertRoundTrip(t *testing.T) {
	base, _ := ToBase(2, "cups", UnitVolume)
	got := ToPreferred(base, UnitVolume, SystemImperial)
	assert.InDelta(t, 2, got.Quantity, 1e-9)
	assert.Equal(t, "cups", got.Unit)

	base, _ = ToBase(500, "ml", UnitVolume)
	metric := ToPreferred(base, UnitVolume, SystemMetric)
	assert.InDelta(t, 500, metric.Quantity, 1e-9)
	assert.Equal(t, "ml", metric.Unit)

	base, _ = ToBase(2, "lbs", UnitWeight)
	weight := ToPreferred(base, UnitWeight, SystemImperial)
	assert.InDelta(t, 2, weight.Quantity, 1e-9)
	assert.Equal(t, "lb", weight.Unit)
}

func TestToPreferredCount(t *testing.T) {
	got := ToPreferred(3, UnitCount, SystemImperial)
	assert.InDelta(t, 3, got.Quantity, 1e-9)
	assert.Empty(t, got.Unit)
}
