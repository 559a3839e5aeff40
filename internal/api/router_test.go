package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist-generator/internal/core/shoplist"
	"shoplist-generator/internal/infrastructure/config"
	"shoplist-generator/internal/infrastructure/store"
	"shoplist-generator/internal/pkg/common"
)

func TestMain(m *testing.M) {
	if err := common.InitLogger("error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Env:     "test",
			Version: "test",
		},
		Store: config.StoreConfig{
			KeyPrefix: "shoplist:",
		},
		DedupWindow: time.Nanosecond,
		LogLevel:    "error",
	}

	state := shoplist.NewState()
	persist := shoplist.NewPersistence(store.NewMemoryStore(), cfg.Store.KeyPrefix)
	service := shoplist.NewService(state, persist)

	router, err := SetupRouter(cfg, service)
	require.NoError(t, err)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createRecipe(t *testing.T, router *gin.Engine, name, text string) string {
	t.Helper()

	body, err := json.Marshal(gin.H{"name": name, "text": text})
	require.NoError(t, err)

	w := doRequest(router, http.MethodPost, "/api/v1/recipes", string(body))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := doRequest(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRecipeLifecycle(t *testing.T) {
	router := newTestRouter(t)

	id := createRecipe(t, router, "Pancakes", "2 cups flour\n3 eggs")

	// 列表：新食譜預設啟用、倍率 1
	w := doRequest(router, http.MethodGet, "/api/v1/recipes", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Recipes []struct {
			ID         string  `json:"id"`
			Name       string  `json:"name"`
			Active     bool    `json:"active"`
			Multiplier float64 `json:"multiplier"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Recipes, 1)
	assert.Equal(t, id, list.Recipes[0].ID)
	assert.True(t, list.Recipes[0].Active)
	assert.Equal(t, 1.0, list.Recipes[0].Multiplier)

	// 單筆查詢
	w = doRequest(router, http.MethodGet, "/api/v1/recipes/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// 編輯整筆替換
	w = doRequest(router, http.MethodPut, "/api/v1/recipes/"+id,
		`{"name":"Waffles","text":"3 cups flour"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// 刪除
	w = doRequest(router, http.MethodDelete, "/api/v1/recipes/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/recipes/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecipeValidation(t *testing.T) {
	router := newTestRouter(t)

	// 缺必填欄位
	w := doRequest(router, http.MethodPost, "/api/v1/recipes", `{"name":"No Text"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 解析不出任何食材：帶業務錯誤代碼的 400
	w = doRequest(router, http.MethodPost, "/api/v1/recipes",
		`{"name":"Headers Only","text":"Ingredients:\nServes 4"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, common.ErrCodeNoIngredients, errResp.Code)
}

func TestShoppingListConsolidation(t *testing.T) {
	router := newTestRouter(t)

	id := createRecipe(t, router, "Bread", "2 cups flour")
	createRecipe(t, router, "Roux", "4 tbsp flour")

	w := doRequest(router, http.MethodGet, "/api/v1/shopping-list", "")
	require.Equal(t, http.StatusOK, w.Code)

	var shoppingList struct {
		UnitSystem string `json:"unit_system"`
		Items      []struct {
			CanonicalName string `json:"canonical_name"`
			Display       *struct {
				Formatted string `json:"formatted"`
				Unit      string `json:"unit"`
			} `json:"display"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shoppingList))
	assert.Equal(t, "imperial", shoppingList.UnitSystem)
	require.Len(t, shoppingList.Items, 1)
	require.NotNil(t, shoppingList.Items[0].Display)
	// 480 + 60 = 540 ml → 2 1/4 cups
	assert.Equal(t, "flour", shoppingList.Items[0].CanonicalName)
	assert.Equal(t, "2 1/4", shoppingList.Items[0].Display.Formatted)
	assert.Equal(t, "cups", shoppingList.Items[0].Display.Unit)

	// 倍率即時反映在清單上
	w = doRequest(router, http.MethodPut,
		fmt.Sprintf("/api/v1/recipes/%s/multiplier", id), `{"multiplier":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/shopping-list", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shoppingList))
	// 960 + 60 = 1020 ml → 4 1/4 cups
	assert.Equal(t, "4 1/4", shoppingList.Items[0].Display.Formatted)
}

func TestRecipeActivation(t *testing.T) {
	router := newTestRouter(t)

	id := createRecipe(t, router, "Bread", "2 cups flour")

	w := doRequest(router, http.MethodPut,
		fmt.Sprintf("/api/v1/recipes/%s/active", id), `{"active":false}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/shopping-list", "")
	var shoppingList struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shoppingList))
	assert.Empty(t, shoppingList.Items)

	// 不存在的食譜
	w = doRequest(router, http.MethodPut, "/api/v1/recipes/missing/active", `{"active":true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 負倍率：帶業務錯誤代碼的 400
	w = doRequest(router, http.MethodPut,
		fmt.Sprintf("/api/v1/recipes/%s/multiplier", id), `{"multiplier":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), common.ErrCodeInvalidMultiplier)
}

func TestPreferences(t *testing.T) {
	router := newTestRouter(t)
	createRecipe(t, router, "Bread", "2 cups flour")

	w := doRequest(router, http.MethodPut, "/api/v1/preferences/units", `{"unit_system":"metric"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/shopping-list", "")
	var shoppingList struct {
		UnitSystem string `json:"unit_system"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shoppingList))
	assert.Equal(t, "metric", shoppingList.UnitSystem)

	// 無效值：帶業務錯誤代碼的 400
	w = doRequest(router, http.MethodPut, "/api/v1/preferences/units", `{"unit_system":"fahrenheit"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), common.ErrCodeInvalidUnitSystem)

	w = doRequest(router, http.MethodPut, "/api/v1/preferences/sort", `{"sort_order":"added"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPut, "/api/v1/preferences/sort", `{"sort_order":"random"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), common.ErrCodeInvalidSortOrder)
}

func TestImportExportRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	createRecipe(t, router, "Bread", "2 cups flour")

	// 匯出
	w := doRequest(router, http.MethodGet, "/api/v1/recipes/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	exported := w.Body.String()

	// 匯入到新的實例
	fresh := newTestRouter(t)
	w = doRequest(fresh, http.MethodPost, "/api/v1/recipes/import", exported)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Imported int `json:"imported"`
		Skipped  int `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	w = doRequest(fresh, http.MethodGet, "/api/v1/shopping-list", "")
	assert.Contains(t, w.Body.String(), "flour")
}

func TestImportSkipsInvalidEntries(t *testing.T) {
	router := newTestRouter(t)

	body := `{"recipes":[
		{"name":"Good","originalText":"1 cup sugar"},
		{"name":"","originalText":"1 cup flour"},
		{"name":"No Ingredients"}
	]}`
	w := doRequest(router, http.MethodPost, "/api/v1/recipes/import", body)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Imported int      `json:"imported"`
		Skipped  int      `json:"skipped"`
		Errors   []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, result.Errors, 2)
}
