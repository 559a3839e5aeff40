package parse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// vulgarFractions Unicode 分數字符對應的數值
var vulgarFractions = map[rune]float64{
	'¼': 1.0 / 4, '½': 1.0 / 2, '¾': 3.0 / 4,
	'⅐': 1.0 / 7, '⅑': 1.0 / 9, '⅒': 1.0 / 10,
	'⅓': 1.0 / 3, '⅔': 2.0 / 3,
	'⅕': 1.0 / 5, '⅖': 2.0 / 5, '⅗': 3.0 / 5, '⅘': 4.0 / 5,
	'⅙': 1.0 / 6, '⅚': 5.0 / 6,
	'⅛': 1.0 / 8, '⅜': 3.0 / 8, '⅝': 5.0 / 8, '⅞': 7.0 / 8,
}

var (
	rangeRe     = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)`)
	mixedFracRe = regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)`)
	asciiFracRe = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)`)
	slashNumRe  = regexp.MustCompile(`^/\s*\d`)
	decimalRe   = regexp.MustCompile(`^\d+\.\d+`)
	integerRe   = regexp.MustCompile(`^\d+`)
)

// ExtractQuantity 從已去除前導空白的片段開頭辨識數量，
// 回傳數值與消耗的位元組數。樣式依嚴格順序嘗試：
// 整數區間、Unicode 分數（帶整數、不帶整數）、ASCII 帶分數、
// ASCII 真分數、小數、最後才是純整數。辨識不到時 ok 為 false，
// 呼叫端將整行視為數量 1 的食材名稱。
func ExtractQuantity(text string) (value float64, consumed int, ok bool) {
	// 整數區間 "6-8"：購物清單寧多勿少，取上界
	if m := rangeRe.FindStringSubmatch(text); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo == nil && errHi == nil && hi >= lo {
			return float64(hi), len(m[0]), true
		}
	}

	// 數字緊接或隔空白接 Unicode 分數："1½"、"1 ½"
	if digits := integerRe.FindString(text); digits != "" {
		rest := text[len(digits):]
		if r, size := utf8.DecodeRuneInString(rest); size > 0 {
			if frac, isFrac := vulgarFractions[r]; isFrac {
				whole, _ := strconv.Atoi(digits)
				return float64(whole) + frac, len(digits) + size, true
			}
		}
		trimmed := strings.TrimLeft(rest, " \t")
		if ws := len(rest) - len(trimmed); ws > 0 {
			if r, size := utf8.DecodeRuneInString(trimmed); size > 0 {
				if frac, isFrac := vulgarFractions[r]; isFrac {
					whole, _ := strconv.Atoi(digits)
					return float64(whole) + frac, len(digits) + ws + size, true
				}
			}
		}
	}

	// 獨立的 Unicode 分數："½ cup"
	if r, size := utf8.DecodeRuneInString(text); size > 0 {
		if frac, isFrac := vulgarFractions[r]; isFrac {
			return frac, size, true
		}
	}

	// ASCII 帶分數 "1 1/2"，分子必須小於分母
	if m := mixedFracRe.FindStringSubmatch(text); m != nil {
		whole, _ := strconv.Atoi(m[1])
		num, _ := strconv.Atoi(m[2])
		den, _ := strconv.Atoi(m[3])
		if den > 0 && num < den {
			return float64(whole) + float64(num)/float64(den), len(m[0]), true
		}
	}

	// 獨立的 ASCII 真分數 "1/2"
	if m := asciiFracRe.FindStringSubmatch(text); m != nil {
		num, _ := strconv.Atoi(m[1])
		den, _ := strconv.Atoi(m[2])
		if den > 0 && num < den {
			return float64(num) / float64(den), len(m[0]), true
		}
	}

	// 小數 "1.5"
	if m := decimalRe.FindString(text); m != "" {
		v, err := strconv.ParseFloat(m, 64)
		if err == nil {
			return v, len(m), true
		}
	}

	// 純整數：後面若緊跟著分數（前面樣式驗證未通過的殘骸，
	// 包括 "3/2" 這種假分數的斜線尾巴），寧可放棄也不要猜錯
	if m := integerRe.FindString(text); m != "" {
		following := strings.TrimLeft(text[len(m):], " \t")
		if asciiFracRe.MatchString(following) || slashNumRe.MatchString(following) {
			return 0, 0, false
		}
		if r, size := utf8.DecodeRuneInString(following); size > 0 {
			if _, isFrac := vulgarFractions[r]; isFrac {
				return 0, 0, false
			}
		}
		v, err := strconv.Atoi(m)
		if err == nil {
			return float64(v), len(m), true
		}
	}

	return 0, 0, false
}
