package parse

import (
	"strings"

	"shoplist-generator/internal/core/units"
)

// MeasurePair 組合量測中的單一 (數量, 單位) 配對，保留給顯示用
type MeasurePair struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ParsedIngredient 單行食材文字的解析結果。建立後不再修改，
// 重新解析或編輯時整筆替換。JSON 欄位採 camelCase，
// 與既有匯出資料的往返格式一致。
type ParsedIngredient struct {
	Quantity      float64        `json:"quantity"`
	Unit          string         `json:"unit,omitempty"`
	UnitType      units.UnitType `json:"unitType"`
	Name          string         `json:"ingredient"`
	Notes         string         `json:"notes,omitempty"`
	OriginalLine  string         `json:"originalLine"`
	IsCombined    bool           `json:"isCombined,omitempty"`
	OriginalPairs []MeasurePair  `json:"originalPairs,omitempty"`
}

// 明顯不是食材的行首詞
var headerPrefixes = []string{
	"instructions", "directions", "method", "serves", "servings",
	"prep", "cook time", "total time", "ingredients", "notes",
	"step", "yield",
}

// 會被移入 notes 的前置處理與描述詞
var prepWords = map[string]bool{
	"chopped": true, "minced": true, "diced": true, "sliced": true,
	"grated": true, "shredded": true, "peeled": true, "crushed": true,
	"melted": true, "softened": true, "beaten": true, "fresh": true,
	"freshly": true, "finely": true, "coarsely": true, "thinly": true,
	"roughly": true, "large": true, "small": true, "medium": true,
	"ripe": true, "raw": true, "cooked": true, "ground": true,
	"whole": true, "optional": true, "divided": true, "packed": true,
	"sifted": true, "cold": true, "warm": true, "hot": true,
	"dried": true, "frozen": true, "canned": true, "drained": true,
	"rinsed": true, "cubed": true, "halved": true, "quartered": true,
	"trimmed": true, "boneless": true, "skinless": true,
}

// ParseLine 解析單行食材文字。標題行與無法解析的行回傳 ok=false，
// 呼叫端直接略過，不視為錯誤。
func ParseLine(line string) (*ParsedIngredient, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || isHeaderLine(trimmed) {
		return nil, false
	}

	// "+" 組合量測："1 c. + 2 tbsp. butter"
	if strings.Contains(trimmed, "+") {
		if ing := parseCombined(trimmed); ing != nil {
			return ing, true
		}
	}

	var (
		quantity = 1.0
		unit     string
		unitType = units.UnitCount
		name     = trimmed
	)

	if value, consumed, ok := ExtractQuantity(trimmed); ok {
		quantity = value
		remainder := strings.TrimSpace(trimmed[consumed:])
		if u, t, rest, matched := MatchUnit(remainder); matched {
			unit, unitType, name = u, t, rest
		} else {
			name = remainder
		}
	}

	name, notes := splitNotes(name)
	if name == "" {
		return nil, false
	}

	return &ParsedIngredient{
		Quantity:     quantity,
		Unit:         unit,
		UnitType:     unitType,
		Name:         name,
		Notes:        notes,
		OriginalLine: line,
	}, true
}

// isHeaderLine 判斷是否為標題、份量等非食材行
func isHeaderLine(trimmed string) bool {
	lower := strings.ToLower(trimmed)
	for _, prefix := range headerPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return strings.HasSuffix(trimmed, ":")
}

// parseCombined 解析以 "+" 串接的組合量測。每一段都必須是
// 獨立的數量加單位，且類型一致、至少兩段，才合併成單一筆：
// 數量為基準單位加總，原始配對保留給顯示。不符合時回傳 nil，
// 由呼叫端改走一般解析。
func parseCombined(line string) *ParsedIngredient {
	segments := strings.Split(line, "+")
	if len(segments) < 2 {
		return nil
	}

	var (
		pairs    []MeasurePair
		unitType units.UnitType
		total    float64
		name     string
	)

	for i, segment := range segments {
		segment = strings.TrimSpace(segment)
		value, consumed, ok := ExtractQuantity(segment)
		if !ok {
			return nil
		}
		remainder := strings.TrimSpace(segment[consumed:])
		u, t, rest, matched := MatchUnit(remainder)
		if !matched || t == units.UnitCount {
			return nil
		}
		if i == 0 {
			unitType = t
		} else if t != unitType {
			// 類型不一致的配對不能合併
			return nil
		}
		base, _ := units.ToBase(value, u, t)
		total += base
		pairs = append(pairs, MeasurePair{Quantity: value, Unit: u})
		name = rest
	}

	if len(pairs) < 2 {
		return nil
	}

	name, notes := splitNotes(name)
	if name == "" {
		return nil
	}

	baseUnit := units.BaseVolumeUnit
	if unitType == units.UnitWeight {
		baseUnit = units.BaseWeightUnit
	}

	return &ParsedIngredient{
		Quantity:      total,
		Unit:          baseUnit,
		UnitType:      unitType,
		Name:          name,
		Notes:         notes,
		OriginalLine:  line,
		IsCombined:    true,
		OriginalPairs: pairs,
	}
}

// splitNotes 把破折號之後的文字、第一組括號內容，
// 以及名稱兩端的處理詞都折進 notes，留下乾淨的食材名稱
func splitNotes(name string) (string, string) {
	var notes []string

	if idx := strings.Index(name, "—"); idx >= 0 {
		if tail := strings.TrimSpace(name[idx+len("—"):]); tail != "" {
			notes = append(notes, tail)
		}
		name = name[:idx]
	}

	if open := strings.Index(name, "("); open >= 0 {
		if close := strings.Index(name[open:], ")"); close > 0 {
			if inner := strings.TrimSpace(name[open+1 : open+close]); inner != "" {
				notes = append(notes, inner)
			}
			name = name[:open] + name[open+close+1:]
		}
	}

	words := strings.Fields(name)
	for len(words) > 0 && isPrepWord(words[0]) {
		notes = append(notes, trimWordPunct(words[0]))
		words = words[1:]
	}
	for len(words) > 0 && isPrepWord(words[len(words)-1]) {
		notes = append(notes, trimWordPunct(words[len(words)-1]))
		words = words[:len(words)-1]
	}

	cleaned := strings.Trim(strings.Join(words, " "), " ,.")
	return cleaned, strings.Join(notes, ", ")
}

func isPrepWord(word string) bool {
	return prepWords[strings.ToLower(trimWordPunct(word))]
}

func trimWordPunct(word string) string {
	return strings.Trim(word, ",.;")
}
