package units

import (
	"fmt"
	"strings"
)

// 英制顯示的可讀性門檻
const (
	minCupDisplayML  = mlPerCup / 8        // 1/8 cup 以上才用 cup 顯示
	minTbspDisplayML = mlPerTablespoon / 2.0 // 1/2 tbsp 以上才用 tbsp 顯示
	ouncesPerPound   = 16
)

// Preferred 依單位制換算後的顯示量
type Preferred struct {
	Quantity float64
	Unit     string
	// FlOz 英制容量附帶的液體盎司標註，方便對照
	FlOz string
}

// ToBase 將 (數量, 單位, 類型) 換算成基準單位（毫升或公克）。
// 查不到的單位原樣保留，不做丟棄；個數類型直接通過。
func ToBase(quantity float64, unit string, unitType UnitType) (float64, string) {
	key := strings.ToLower(strings.TrimSpace(unit))
	switch unitType {
	case UnitVolume:
		if factor, ok := VolumeFactors[key]; ok {
			return quantity * factor, BaseVolumeUnit
		}
	case UnitWeight:
		if factor, ok := WeightFactors[key]; ok {
			return quantity * factor, BaseWeightUnit
		}
	}
	return quantity, unit
}

// ToPreferred 將基準量換算成偏好單位制的顯示量。
// 英制容量選擇「數量仍夠大可讀」的最大單位：cup、tbsp、tsp 依序退位；
// 英制重量滿 16 oz 進位為磅。公制直接回傳 ml/g，個數原樣通過。
func ToPreferred(baseValue float64, unitType UnitType, system System) Preferred {
	switch unitType {
	case UnitVolume:
		if system == SystemMetric {
			return Preferred{Quantity: baseValue, Unit: BaseVolumeUnit}
		}
		flOz := fmt.Sprintf("%s fl oz", FormatQuantity(baseValue/mlPerFluidOunce))
		switch {
		case baseValue >= minCupDisplayML:
			q := baseValue / mlPerCup
			return Preferred{Quantity: q, Unit: cupUnitName(q), FlOz: flOz}
		case baseValue >= minTbspDisplayML:
			return Preferred{Quantity: baseValue / mlPerTablespoon, Unit: "tbsp", FlOz: flOz}
		default:
			return Preferred{Quantity: baseValue / mlPerTeaspoon, Unit: "tsp", FlOz: flOz}
		}
	case UnitWeight:
		if system == SystemMetric {
			return Preferred{Quantity: baseValue, Unit: BaseWeightUnit}
		}
		oz := baseValue / gPerOunce
		if oz >= ouncesPerPound {
			return Preferred{Quantity: oz / ouncesPerPound, Unit: "lb"}
		}
		return Preferred{Quantity: oz, Unit: "oz"}
	}
	return Preferred{Quantity: baseValue}
}

// cupUnitName 依顯示值決定單複數
func cupUnitName(quantity float64) string {
	if FormatQuantity(quantity) == "1" {
		return "cup"
	}
	return "cups"
}
