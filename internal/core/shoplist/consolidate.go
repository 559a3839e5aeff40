package shoplist

import (
	"fmt"

	"shoplist-generator/internal/core/parse"
	"shoplist-generator/internal/core/recipe"
	"shoplist-generator/internal/core/units"
)

// Contribution 單筆食材對彙總結果的貢獻，已乘上食譜倍率並換算成基準單位
type Contribution struct {
	BaseValue    float64        `json:"base_value"`
	BaseUnit     string         `json:"base_unit,omitempty"`
	UnitType     units.UnitType `json:"unit_type"`
	OriginalUnit string         `json:"original_unit,omitempty"`
	SourceLabel  string         `json:"source"`
}

// Display 一筆彙總後的顯示量
type Display struct {
	Quantity  float64        `json:"quantity"`
	Formatted string         `json:"formatted"`
	Unit      string         `json:"unit,omitempty"`
	UnitType  units.UnitType `json:"unit_type"`
	FlOz      string         `json:"fl_oz,omitempty"`
}

// Entry 購物清單上的一個項目。同一正規鍵下同時存在量測類
// 與個數類貢獻時，以 GroupedQuantities 並列呈現，不強行合併。
type Entry struct {
	CanonicalName     string         `json:"canonical_name"`
	DisplayName       string         `json:"display_name"`
	Contributions     []Contribution `json:"contributions"`
	Display           *Display       `json:"display,omitempty"`
	GroupedQuantities []Display      `json:"grouped_quantities,omitempty"`
}

// unitGroup 依原始單位字串分開追蹤的累計量。
// baseUnit 記錄換算結果，查不到換算表的單位保持原樣。
type unitGroup struct {
	unit     string
	unitType units.UnitType
	baseUnit string
	total    float64
}

// Consolidate 把所有啟用食譜的食材依倍率加權後彙總成
// 正規名稱對應的購物清單項目。每次呼叫都從四個輸入重新計算，
// 沒有任何增量快取，結果是輸入的純函數，重算必然得到相同結果。
func Consolidate(recipes []recipe.Recipe, activeIDs map[string]bool, multipliers map[string]float64, system units.System) map[string]Entry {
	type accumulator struct {
		displayName   string
		contributions []Contribution
		groups        []unitGroup
	}

	accs := make(map[string]*accumulator)
	for _, r := range recipes {
		if !activeIDs[r.ID] {
			continue
		}
		multiplier, ok := multipliers[r.ID]
		if !ok {
			multiplier = 1
		}
		label := sourceLabel(r.Name, multiplier)

		for _, ing := range r.Ingredients {
			baseValue, baseUnit := units.ToBase(ing.Quantity*multiplier, ing.Unit, ing.UnitType)
			key := parse.NormalizeName(ing.Name)
			if key == "" {
				continue
			}

			acc := accs[key]
			if acc == nil {
				acc = &accumulator{displayName: ing.Name}
				accs[key] = acc
			}
			acc.contributions = append(acc.contributions, Contribution{
				BaseValue:    baseValue,
				BaseUnit:     baseUnit,
				UnitType:     ing.UnitType,
				OriginalUnit: ing.Unit,
				SourceLabel:  label,
			})
			addToGroup(&acc.groups, ing.Unit, ing.UnitType, baseUnit, baseValue)
		}
	}

	entries := make(map[string]Entry, len(accs))
	for key, acc := range accs {
		entry := Entry{
			CanonicalName: key,
			DisplayName:   acc.displayName,
			Contributions: acc.contributions,
		}

		// 各單位群先分開追蹤，之後再依類型加總、一次換算成偏好顯示。
		// 換算表查不到的單位不能混進類型總量，以原始單位獨立呈現。
		var volumeTotal, weightTotal, countTotal float64
		var hasVolume, hasWeight, hasCount bool
		var unconverted []unitGroup
		for _, group := range acc.groups {
			switch {
			case group.unitType == units.UnitVolume && group.baseUnit == units.BaseVolumeUnit:
				volumeTotal += group.total
				hasVolume = true
			case group.unitType == units.UnitWeight && group.baseUnit == units.BaseWeightUnit:
				weightTotal += group.total
				hasWeight = true
			case group.unitType == units.UnitCount:
				countTotal += group.total
				hasCount = true
			default:
				unconverted = append(unconverted, group)
			}
		}

		var displays []Display
		if hasVolume {
			displays = append(displays, toDisplay(volumeTotal, units.UnitVolume, system))
		}
		if hasWeight {
			displays = append(displays, toDisplay(weightTotal, units.UnitWeight, system))
		}
		if hasCount {
			displays = append(displays, toDisplay(countTotal, units.UnitCount, system))
		}
		for _, group := range unconverted {
			displays = append(displays, Display{
				Quantity:  group.total,
				Formatted: units.FormatQuantity(group.total),
				Unit:      group.unit,
				UnitType:  group.unitType,
			})
		}

		if len(displays) == 1 {
			entry.Display = &displays[0]
		} else if len(displays) > 1 {
			entry.GroupedQuantities = displays
		}

		entries[key] = entry
	}

	return entries
}

// addToGroup 依原始單位字串累計，"2 cups" 和 "3 tbsp" 分開追蹤
func addToGroup(groups *[]unitGroup, unit string, unitType units.UnitType, baseUnit string, baseValue float64) {
	for i := range *groups {
		if (*groups)[i].unit == unit && (*groups)[i].unitType == unitType {
			(*groups)[i].total += baseValue
			return
		}
	}
	*groups = append(*groups, unitGroup{unit: unit, unitType: unitType, baseUnit: baseUnit, total: baseValue})
}

func toDisplay(baseTotal float64, unitType units.UnitType, system units.System) Display {
	preferred := units.ToPreferred(baseTotal, unitType, system)
	return Display{
		Quantity:  preferred.Quantity,
		Formatted: units.FormatQuantity(preferred.Quantity),
		Unit:      preferred.Unit,
		UnitType:  unitType,
		FlOz:      preferred.FlOz,
	}
}

// sourceLabel 標註貢獻來源，倍率不為 1 時附上倍數
func sourceLabel(name string, multiplier float64) string {
	if multiplier == 1 {
		return name
	}
	return fmt.Sprintf("%s (×%s)", name, units.FormatQuantity(multiplier))
}
