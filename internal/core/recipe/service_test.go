package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist-generator/internal/core/parse"
	"shoplist-generator/internal/core/units"
	"shoplist-generator/internal/pkg/common"
)

func TestParseTextSkipsUnparseableLines(t *testing.T) {
	text := "Ingredients:\n2 cups flour\n\nFor the topping:\n3 eggs\nServes 4"

	ingredients := ParseText(text)

	require.Len(t, ingredients, 2)
	assert.Equal(t, "flour", ingredients[0].Name)
	assert.Equal(t, "eggs", ingredients[1].Name)
}

func TestNewRecipe(t *testing.T) {
	r, err := New("Pancakes", "2 cups flour\n3 eggs", []string{"Breakfast", "breakfast", " easy "}, "fluffy", "mix and fry")
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Pancakes", r.Name)
	assert.Len(t, r.Ingredients, 2)
	assert.Equal(t, "2 cups flour\n3 eggs", r.OriginalText)
	// 標籤去重、小寫、排序
	assert.Equal(t, []string{"breakfast", "easy"}, r.Tags)
	assert.Equal(t, "fluffy", r.About)
	assert.Equal(t, "mix and fry", r.Instructions)
}

func TestNewRecipeValidation(t *testing.T) {
	// 名稱必填
	_, err := New("", "2 cups flour", nil, "", "")
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	// 解析不出任何食材回傳帶錯誤代碼的預定義錯誤
	_, err = New("Empty", "Ingredients:\nServes 4", nil, "", "")
	require.ErrorIs(t, err, common.ErrNoIngredients)
}

func TestFromImportWithIngredients(t *testing.T) {
	r, err := FromImport(ImportRecipe{
		Name: "Imported Bread",
		Ingredients: []parse.ParsedIngredient{
			{Quantity: 2, Unit: "cups", UnitType: units.UnitVolume, Name: "flour"},
			{Name: "yeast"},                      // 數量缺漏補 1
			{Quantity: 1, Name: "  "},            // 名稱空白整筆丟棄
			{Quantity: 1, Name: "salt", UnitType: "bogus"}, // 未知類型視為個數
		},
		Source:    "friend",
		SourceURL: "https://example.com/bread",
	})
	require.NoError(t, err)

	require.Len(t, r.Ingredients, 3)
	assert.Equal(t, 1.0, r.Ingredients[1].Quantity)
	assert.Equal(t, units.UnitCount, r.Ingredients[2].UnitType)
	assert.Equal(t, "friend", r.Source)
	assert.Equal(t, "https://example.com/bread", r.SourceURL)
}

func TestFromImportFallsBackToOriginalText(t *testing.T) {
	r, err := FromImport(ImportRecipe{
		Name:         "Text Only",
		OriginalText: "1 cup sugar\n2 eggs",
	})
	require.NoError(t, err)

	require.Len(t, r.Ingredients, 2)
	assert.Equal(t, "sugar", r.Ingredients[0].Name)
}

func TestFromImportValidation(t *testing.T) {
	_, err := FromImport(ImportRecipe{OriginalText: "1 cup sugar"})
	assert.Error(t, err)

	_, err = FromImport(ImportRecipe{Name: "No Ingredients"})
	assert.ErrorIs(t, err, common.ErrNoIngredients)
}
