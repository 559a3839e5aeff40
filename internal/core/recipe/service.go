package recipe

import (
	"strings"

	"shoplist-generator/internal/core/parse"
	"shoplist-generator/internal/core/units"
	"shoplist-generator/internal/pkg/common"
)

// ParseText 逐行解析貼上的食譜文字。解析失敗的行不報錯，
// 直接略過，是局部且安靜的失敗。
func ParseText(text string) []parse.ParsedIngredient {
	var ingredients []parse.ParsedIngredient
	for _, line := range strings.Split(text, "\n") {
		if ing, ok := parse.ParseLine(line); ok {
			ingredients = append(ingredients, *ing)
		}
	}
	return ingredients
}

// New 從名稱與原始文字建立食譜。文字解析不出任何食材時
// 回傳 ErrNoIngredients，這是唯一會浮出到呼叫端的解析相關錯誤。
func New(name, text string, tags []string, about, instructions string) (*Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewValidationError("recipe name is required")
	}

	ingredients := ParseText(text)
	if len(ingredients) == 0 {
		return nil, common.ErrNoIngredients
	}

	return &Recipe{
		ID:           common.GenerateUUID(),
		Name:         name,
		Ingredients:  ingredients,
		OriginalText: text,
		Tags:         normalizeTags(tags),
		About:        about,
		Instructions: instructions,
	}, nil
}

// FromImport 將匯入的寬鬆形狀轉成有效的食譜。
// ingredients 缺漏時改用 originalText 重新解析；
// 個別欄位缺漏補上文件化的預設值。
func FromImport(in ImportRecipe) (*Recipe, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, common.NewValidationError("recipe name is required")
	}

	ingredients := sanitizeIngredients(in.Ingredients)
	if len(ingredients) == 0 && in.OriginalText != "" {
		ingredients = ParseText(in.OriginalText)
	}
	if len(ingredients) == 0 {
		return nil, common.ErrNoIngredients
	}

	return &Recipe{
		ID:           common.GenerateUUID(),
		Name:         name,
		Ingredients:  ingredients,
		OriginalText: in.OriginalText,
		Tags:         normalizeTags(in.Tags),
		About:        in.About,
		Instructions: in.Instructions,
		Source:       in.Source,
		SourceURL:    in.SourceURL,
	}, nil
}

// sanitizeIngredients 補齊匯入食材缺漏的欄位：
// 名稱空白的整筆丟棄，數量未給補 1，類型未知視為個數
func sanitizeIngredients(ingredients []parse.ParsedIngredient) []parse.ParsedIngredient {
	var out []parse.ParsedIngredient
	for _, ing := range ingredients {
		ing.Name = strings.TrimSpace(ing.Name)
		if ing.Name == "" {
			continue
		}
		if ing.Quantity <= 0 {
			ing.Quantity = 1
		}
		switch ing.UnitType {
		case units.UnitVolume, units.UnitWeight, units.UnitCount:
		default:
			ing.UnitType = units.UnitCount
		}
		if ing.OriginalLine == "" {
			ing.OriginalLine = ing.Name
		}
		out = append(out, ing)
	}
	return out
}
