package parse

import (
	"regexp"
	"strings"
)

var parentheticalRe = regexp.MustCompile(`\([^)]*\)`)

// pluralOes 以 -oes 結尾的特殊複數
var pluralOes = map[string]string{
	"tomatoes": "tomato",
	"potatoes": "potato",
	"heroes":   "hero",
}

// aliasEntry 把同一種食材的各種叫法收斂到單一正規鍵。
// 比對刻意寬鬆：名稱包含別名就算命中，
// 寧可把近親食材合併也不要讓購物清單出現重複項。
type aliasEntry struct {
	canonical string
	aliases   []string
}

// aliasTable 依固定順序比對，結果具決定性
var aliasTable = []aliasEntry{
	{"flour", []string{"all-purpose flour", "all purpose flour", "ap flour", "plain flour"}},
	{"sugar", []string{"granulated sugar", "white sugar", "caster sugar"}},
	{"butter", []string{"unsalted butter", "salted butter", "sweet cream butter"}},
	{"olive oil", []string{"extra virgin olive oil", "evoo"}},
	{"scallion", []string{"green onion", "spring onion"}},
	{"cilantro", []string{"fresh coriander", "coriander leaves"}},
	{"chickpea", []string{"garbanzo bean", "garbanzo"}},
	{"soy sauce", []string{"shoyu", "tamari"}},
	{"stock", []string{"broth"}},
	{"garlic", []string{"garlic clove", "clove of garlic"}},
}

// NormalizeName 將自由文字的食材名稱正規化成跨食譜彙總用的鍵。
// 小寫、去括號、去逗號後綴、去除兩端處理詞、壓縮空白、
// 簡易複數還原，最後查別名表。查不到時回傳清理後的文字本身。
func NormalizeName(rawName string) string {
	s := strings.ToLower(strings.TrimSpace(rawName))
	s = parentheticalRe.ReplaceAllString(s, " ")
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}

	words := strings.Fields(s)
	for len(words) > 0 && prepWords[words[0]] {
		words = words[1:]
	}
	for len(words) > 0 && prepWords[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return ""
	}

	words[len(words)-1] = singularize(words[len(words)-1])
	s = strings.Join(words, " ")

	for _, entry := range aliasTable {
		if aliasMatches(s, entry.canonical) {
			return entry.canonical
		}
		for _, alias := range entry.aliases {
			if aliasMatches(s, alias) {
				return entry.canonical
			}
		}
	}

	return s
}

// singularize 最小化的複數還原：-oes 查特殊表，其餘去掉一個尾端 s
func singularize(word string) string {
	if singular, ok := pluralOes[word]; ok {
		return singular
	}
	if len(word) > 2 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") {
		return word[:len(word)-1]
	}
	return word
}

// aliasMatches 名稱等於候選字或包含候選字即算命中。
// 只看單一方向，避免 "onion" 反向命中 "green onion"。
func aliasMatches(name, candidate string) bool {
	return name == candidate || strings.Contains(name, candidate)
}
