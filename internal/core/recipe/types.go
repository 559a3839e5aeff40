package recipe

import (
	"sort"
	"strings"

	"shoplist-generator/internal/core/parse"
)

// Recipe 一份食譜。新增時建立，編輯時整筆替換，刪除時移除；
// ID 為不重複使用的 UUID。JSON 欄位採 camelCase，
// 與匯入匯出格式一致，往返不失真。
type Recipe struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Ingredients  []parse.ParsedIngredient `json:"ingredients"`
	OriginalText string                   `json:"originalText,omitempty"`
	Tags         []string                 `json:"tags,omitempty"`
	About        string                   `json:"about,omitempty"`
	Instructions string                   `json:"instructions,omitempty"`
	Source       string                   `json:"source,omitempty"`
	SourceURL    string                   `json:"sourceUrl,omitempty"`
}

// ImportRecipe 匯入時接受的寬鬆形狀：至少要有 name，
// 加上 ingredients 或可重新解析的 originalText 其中之一。
// 未知欄位在解碼時直接忽略。
type ImportRecipe struct {
	Name         string                   `json:"name"`
	Ingredients  []parse.ParsedIngredient `json:"ingredients"`
	OriginalText string                   `json:"originalText"`
	Tags         []string                 `json:"tags"`
	About        string                   `json:"about"`
	Instructions string                   `json:"instructions"`
	Source       string                   `json:"source"`
	SourceURL    string                   `json:"sourceUrl"`
}

// normalizeTags 去重排序，讓 tags 表現得像集合
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
