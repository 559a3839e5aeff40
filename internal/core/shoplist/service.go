package shoplist

import (
	"context"
	"fmt"
	"sort"

	"shoplist-generator/internal/core/recipe"
	"shoplist-generator/internal/core/units"
	"shoplist-generator/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 購物清單服務：包住狀態轉移，並在每次成功的
// 轉移後觸發持久化。持久化失敗只記 error，不回滾也不
// 中斷使用者操作。
type Service struct {
	state   *State
	persist *Persistence
}

// NewService 建立購物清單服務
func NewService(state *State, persist *Persistence) *Service {
	return &Service{state: state, persist: persist}
}

// RecipeInput 新增或編輯食譜的輸入
type RecipeInput struct {
	Name         string
	Text         string
	Tags         []string
	About        string
	Instructions string
}

// AddRecipe 解析原始文字並加入新食譜
func (s *Service) AddRecipe(ctx context.Context, in RecipeInput) (*recipe.Recipe, error) {
	r, err := recipe.New(in.Name, in.Text, in.Tags, in.About, in.Instructions)
	if err != nil {
		return nil, err
	}
	s.state.AddRecipe(*r)
	s.save(ctx)

	common.LogInfo("食譜已加入",
		zap.String("recipe_id", r.ID),
		zap.Int("ingredients", len(r.Ingredients)),
	)
	return r, nil
}

// UpdateRecipe 重新解析並整筆替換食譜
func (s *Service) UpdateRecipe(ctx context.Context, id string, in RecipeInput) (*recipe.Recipe, error) {
	r, err := recipe.New(in.Name, in.Text, in.Tags, in.About, in.Instructions)
	if err != nil {
		return nil, err
	}
	if err := s.state.UpdateRecipe(id, *r); err != nil {
		return nil, err
	}
	r.ID = id
	s.save(ctx)
	return r, nil
}

// RemoveRecipe 刪除食譜
func (s *Service) RemoveRecipe(ctx context.Context, id string) error {
	if err := s.state.RemoveRecipe(id); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

// SetActive 切換食譜啟用狀態
func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.state.SetActive(id, active); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

// SetMultiplier 設定食譜倍率
func (s *Service) SetMultiplier(ctx context.Context, id string, multiplier float64) error {
	if err := s.state.SetMultiplier(id, multiplier); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

// SetUnitSystem 切換單位制偏好
func (s *Service) SetUnitSystem(ctx context.Context, system units.System) error {
	if err := s.state.SetUnitSystem(system); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

// SetSortOrder 切換排序偏好
func (s *Service) SetSortOrder(ctx context.Context, order SortOrder) error {
	if err := s.state.SetSortOrder(order); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

// Recipe 取得單筆食譜
func (s *Service) Recipe(id string) (recipe.Recipe, bool) {
	return s.state.Recipe(id)
}

// Recipes 取得依目前排序的食譜列表
func (s *Service) Recipes() []recipe.Recipe {
	return s.state.Recipes()
}

// ActiveIDs 目前啟用中的食譜 ID 集合
func (s *Service) ActiveIDs() map[string]bool {
	return s.state.ActiveIDs()
}

// Multipliers 目前的食譜倍率表
func (s *Service) Multipliers() map[string]float64 {
	return s.state.Multipliers()
}

// Preferences 目前的顯示偏好
func (s *Service) Preferences() (units.System, SortOrder) {
	return s.state.UnitSystem(), s.state.SortOrder()
}

// ShoppingList 取得依正規名稱排序的彙總結果
func (s *Service) ShoppingList() []Entry {
	entries := s.state.ShoppingList()
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CanonicalName < out[j].CanonicalName
	})
	return out
}

// Export 取得無損匯出用的完整食譜列表
func (s *Service) Export() []recipe.Recipe {
	return s.state.ExportRecipes()
}

// ImportResult 匯入結果
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// Import 批次匯入食譜。個別無效的元素記錄錯誤後跳過，
// 其餘照常匯入。
func (s *Service) Import(ctx context.Context, in []recipe.ImportRecipe) ImportResult {
	var result ImportResult
	for i, item := range in {
		r, err := recipe.FromImport(item)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("recipe %d (%s): %v", i, item.Name, err))
			continue
		}
		s.state.AddRecipe(*r)
		result.Imported++
	}
	if result.Imported > 0 {
		s.save(ctx)
	}

	common.LogInfo("食譜匯入完成",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result
}

// save 持久化目前狀態，失敗只記 log
func (s *Service) save(ctx context.Context) {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(ctx, s.state); err != nil {
		common.LogError("狀態儲存失敗", zap.Error(err))
	}
}
