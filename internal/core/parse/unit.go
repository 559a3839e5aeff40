package parse

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"shoplist-generator/internal/core/units"
)

// 單位詞彙表依名稱長度由長到短排序，確保 "cups" 先於 "c" 被比對
var (
	volumeUnitNames = sortedUnitNames(units.VolumeFactors)
	weightUnitNames = sortedUnitNames(units.WeightFactors)
)

func sortedUnitNames(factors map[string]float64) []string {
	names := make([]string, 0, len(factors))
	for name := range factors {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

// MatchUnit 在剩餘文字開頭尋找最長的單位名稱，先查容量表再查重量表。
// 單位後面必須是空白、逗號、句點或字串結尾，避免 "c" 比對到 "corn"、
// "oz" 比對到 "ozone"。若單位後緊接著數字，代表真正的切分點在別處，
// 放棄這個候選繼續往下找。都比對不到時整段剩餘文字就是食材名稱，
// 類型視為個數。
func MatchUnit(remainder string) (unit string, unitType units.UnitType, rest string, ok bool) {
	tables := []struct {
		names    []string
		unitType units.UnitType
	}{
		{volumeUnitNames, units.UnitVolume},
		{weightUnitNames, units.UnitWeight},
	}

	for _, table := range tables {
		for _, name := range table.names {
			if len(remainder) < len(name) {
				continue
			}
			if !strings.EqualFold(remainder[:len(name)], name) {
				continue
			}
			after := remainder[len(name):]
			if !unitBoundary(after) {
				continue
			}
			rest := strings.TrimLeft(after, " \t.,")
			if r, size := utf8.DecodeRuneInString(rest); size > 0 && unicode.IsDigit(r) {
				// 單位後接數字，可能是第二個數量，換下一個候選
				continue
			}
			return name, table.unitType, rest, true
		}
	}

	return "", units.UnitCount, remainder, false
}

// unitBoundary 檢查單位結尾是否為合法邊界
func unitBoundary(after string) bool {
	if after == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(after)
	return unicode.IsSpace(r) || r == ',' || r == '.'
}
