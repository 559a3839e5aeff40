package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shoplist-generator/internal/core/units"
)

func TestMatchUnit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantUnit string
		wantType units.UnitType
		wantRest string
		ok       bool
	}{
		{"full word cups", "cups flour", "cups", units.UnitVolume, "flour", true},
		{"abbreviation with period", "c. sugar", "c.", units.UnitVolume, "sugar", true},
		{"tablespoon", "tbsp olive oil", "tbsp", units.UnitVolume, "olive oil", true},
		{"fluid ounces", "fl oz cream", "fl oz", units.UnitVolume, "cream", true},
		{"weight ounces", "oz cream cheese", "oz", units.UnitWeight, "cream cheese", true},
		{"pounds", "lbs ground beef", "lbs", units.UnitWeight, "ground beef", true},
		{"metric grams", "g dark chocolate", "g", units.UnitWeight, "dark chocolate", true},
		{"case insensitive", "Cups flour", "cups", units.UnitVolume, "flour", true},
		{"unit at end of string", "tsp", "tsp", units.UnitVolume, "", true},
		{"comma boundary", "cup, packed brown sugar", "cup", units.UnitVolume, "packed brown sugar", true},

		// "c" 不能比對到 "corn"、"oz" 不能比對到 "ozone"
		{"no match inside word", "corn kernels", "", units.UnitCount, "corn kernels", false},
		{"oz needs boundary", "ozone water", "", units.UnitCount, "ozone water", false},
		{"no unit at all", "eggs", "", units.UnitCount, "eggs", false},

		// 單位後緊接數字時放棄比對
		{"digit after unit rejected", "cups 2% milk", "", units.UnitCount, "cups 2% milk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, unitType, rest, ok := MatchUnit(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantUnit, unit)
			assert.Equal(t, tt.wantType, unitType)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

// 長名稱必須先於短縮寫被比對到
func TestMatchUnitLongestFirst(t *testing.T) {
	unit, unitType, rest, ok := MatchUnit("tablespoons melted butter")

	assert.True(t, ok)
	assert.Equal(t, "tablespoons", unit)
	assert.Equal(t, units.UnitVolume, unitType)
	assert.Equal(t, "melted butter", rest)
}
