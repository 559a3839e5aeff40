package shoplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist-generator/internal/core/recipe"
	"shoplist-generator/internal/core/units"
	"shoplist-generator/internal/pkg/common"
)

func TestNewStateDefaults(t *testing.T) {
	state := NewState()

	assert.Equal(t, units.SystemImperial, state.UnitSystem())
	assert.Equal(t, SortAlphabetical, state.SortOrder())
	assert.Empty(t, state.Recipes())
}

func TestStateAddRecipeActivates(t *testing.T) {
	state := NewState()
	state.AddRecipe(testRecipe(t, "r1", "Bread", "2 cups flour"))

	assert.True(t, state.ActiveIDs()["r1"])
	assert.Equal(t, 1.0, state.Multipliers()["r1"])
}

func TestStateSetMultiplier(t *testing.T) {
	state := NewState()
	state.AddRecipe(testRecipe(t, "r1", "Bread", "2 cups flour"))

	// 負倍率回傳帶錯誤代碼的預定義錯誤
	err := state.SetMultiplier("r1", -1)
	require.ErrorIs(t, err, common.ErrInvalidMultiplier)

	// 倍率 0 等同停用
	require.NoError(t, state.SetMultiplier("r1", 0))
	assert.False(t, state.ActiveIDs()["r1"])

	// 非零倍率重新啟用
	require.NoError(t, state.SetMultiplier("r1", 2.5))
	assert.True(t, state.ActiveIDs()["r1"])
	assert.Equal(t, 2.5, state.Multipliers()["r1"])

	// 不存在的食譜
	assert.Error(t, state.SetMultiplier("missing", 1))
}

func TestStateSetActiveRestoresMultiplier(t *testing.T) {
	state := NewState()
	state.AddRecipe(testRecipe(t, "r1", "Bread", "2 cups flour"))

	require.NoError(t, state.SetMultiplier("r1", 0))
	require.NoError(t, state.SetActive("r1", true))

	// 重新啟用倍率為 0 的食譜時回到 1，維持不變量
	assert.True(t, state.ActiveIDs()["r1"])
	assert.Equal(t, 1.0, state.Multipliers()["r1"])
}

func TestStateRemoveRecipeClearsTracking(t *testing.T) {
	state := NewState()
	state.AddRecipe(testRecipe(t, "r1", "Bread", "2 cups flour"))

	require.NoError(t, state.RemoveRecipe("r1"))

	assert.Empty(t, state.Recipes())
	assert.NotContains(t, state.ActiveIDs(), "r1")
	assert.NotContains(t, state.Multipliers(), "r1")
	assert.Error(t, state.RemoveRecipe("r1"))
}

func TestStateUpdateRecipePreservesID(t *testing.T) {
	state := NewState()
	state.AddRecipe(testRecipe(t, "r1", "Bread", "2 cups flour"))

	updated := testRecipe(t, "other-id", "Sourdough", "3 cups flour")
	require.NoError(t, state.UpdateRecipe("r1", updated))

	got, ok := state.Recipe("r1")
	require.True(t, ok)
	assert.Equal(t, "r1", got.ID)
	assert.Equal(t, "Sourdough", got.Name)

	assert.Error(t, state.UpdateRecipe("missing", updated))
}

func TestStateRecipesSortOrder(t *testing.T) {
	state := NewState()
	state.AddRecipe(testRecipe(t, "r1", "Waffles", "2 cups flour"))
	state.AddRecipe(testRecipe(t, "r2", "bread", "1 cup flour"))

	// 預設依名稱排序，不分大小寫
	names := recipeNames(state.Recipes())
	assert.Equal(t, []string{"bread", "Waffles"}, names)

	// 切到加入順序
	require.NoError(t, state.SetSortOrder(SortAdded))
	names = recipeNames(state.Recipes())
	assert.Equal(t, []string{"Waffles", "bread"}, names)
}

func TestStatePreferenceValidation(t *testing.T) {
	state := NewState()

	assert.ErrorIs(t, state.SetUnitSystem("fahrenheit"), common.ErrInvalidUnitSystem)
	assert.ErrorIs(t, state.SetSortOrder("random"), common.ErrInvalidSortOrder)
	require.NoError(t, state.SetUnitSystem(units.SystemMetric))
	require.NoError(t, state.SetSortOrder(SortAdded))
}

func TestStateRestoreRebuildsInvariants(t *testing.T) {
	recipes := []recipe.Recipe{
		testRecipe(t, "r1", "Bread", "2 cups flour"),
		testRecipe(t, "r2", "Cake", "1 cup sugar"),
		testRecipe(t, "r3", "Soup", "1 cup stock"),
	}

	state := NewState()
	state.Restore(recipes,
		map[string]bool{"r1": true, "r2": true, "ghost": true},
		map[string]float64{"r1": 2, "r2": 0},
		"bogus", "bogus")

	// 未知 id 丟棄，倍率 0 的停用，缺漏倍率補 1
	active := state.ActiveIDs()
	assert.True(t, active["r1"])
	assert.False(t, active["r2"])
	assert.False(t, active["ghost"])
	assert.Equal(t, 2.0, state.Multipliers()["r1"])

	// 無效的偏好退回預設值
	assert.Equal(t, units.SystemImperial, state.UnitSystem())
	assert.Equal(t, SortAlphabetical, state.SortOrder())
}

func TestStateRestoreNilActiveActivatesAll(t *testing.T) {
	recipes := []recipe.Recipe{
		testRecipe(t, "r1", "Bread", "2 cups flour"),
		testRecipe(t, "r2", "Cake", "1 cup sugar"),
	}

	state := NewState()
	state.Restore(recipes, nil, nil, units.SystemMetric, SortAdded)

	active := state.ActiveIDs()
	assert.True(t, active["r1"])
	assert.True(t, active["r2"])
	assert.Equal(t, 1.0, state.Multipliers()["r1"])
	assert.Equal(t, units.SystemMetric, state.UnitSystem())
	assert.Equal(t, SortAdded, state.SortOrder())
}

func recipeNames(recipes []recipe.Recipe) []string {
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}
	return names
}
