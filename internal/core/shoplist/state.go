package shoplist

import (
	"sort"
	"strings"
	"sync"

	"shoplist-generator/internal/core/recipe"
	"shoplist-generator/internal/core/units"
	"shoplist-generator/internal/pkg/common"
)

// SortOrder 食譜列表排序方式
type SortOrder string

const (
	// SortAlphabetical 依名稱字母排序（預設）
	SortAlphabetical SortOrder = "alphabetical"
	// SortAdded 依加入順序排序
	SortAdded SortOrder = "added"
)

// IsValid 檢查排序方式是否有效
func (o SortOrder) IsValid() bool {
	return o == SortAlphabetical || o == SortAdded
}

// 預設值：全部啟用、倍率 1、英制、字母排序
const (
	DefaultMultiplier = 1.0
)

// State 應用程式狀態：食譜列表、啟用集合、倍率表、
// 單位制與排序偏好。只能透過具名的轉移方法修改；
// 不變量：啟用集合中的每個 id 都有 ≥ 0 的倍率，
// 倍率設為 0 時同步移出啟用集合。
type State struct {
	mu          sync.RWMutex
	recipes     []recipe.Recipe
	activeIDs   map[string]bool
	multipliers map[string]float64
	system      units.System
	sortOrder   SortOrder
}

// NewState 建立帶預設偏好的空狀態
func NewState() *State {
	return &State{
		activeIDs:   make(map[string]bool),
		multipliers: make(map[string]float64),
		system:      units.SystemImperial,
		sortOrder:   SortAlphabetical,
	}
}

// AddRecipe 加入食譜並以倍率 1 啟用
func (s *State) AddRecipe(r recipe.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipes = append(s.recipes, r)
	s.activeIDs[r.ID] = true
	s.multipliers[r.ID] = DefaultMultiplier
}

// UpdateRecipe 整筆替換既有食譜，啟用狀態與倍率不變
func (s *State) UpdateRecipe(id string, r recipe.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recipes {
		if s.recipes[i].ID == id {
			r.ID = id
			s.recipes[i] = r
			return nil
		}
	}
	return common.ErrRecipeNotFound
}

// RemoveRecipe 刪除食譜並清掉它的啟用與倍率記錄
func (s *State) RemoveRecipe(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recipes {
		if s.recipes[i].ID == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			delete(s.activeIDs, id)
			delete(s.multipliers, id)
			return nil
		}
	}
	return common.ErrRecipeNotFound
}

// SetActive 切換食譜啟用狀態。重新啟用一個倍率為 0 的
// 食譜時倍率回到 1，維持不變量。
func (s *State) SetActive(id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasRecipe(id) {
		return common.ErrRecipeNotFound
	}
	if !active {
		delete(s.activeIDs, id)
		return nil
	}
	s.activeIDs[id] = true
	if s.multipliers[id] <= 0 {
		s.multipliers[id] = DefaultMultiplier
	}
	return nil
}

// SetMultiplier 設定食譜倍率，0 代表停用
func (s *State) SetMultiplier(id string, multiplier float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasRecipe(id) {
		return common.ErrRecipeNotFound
	}
	if multiplier < 0 {
		return common.ErrInvalidMultiplier
	}
	s.multipliers[id] = multiplier
	if multiplier == 0 {
		delete(s.activeIDs, id)
	} else {
		s.activeIDs[id] = true
	}
	return nil
}

// SetUnitSystem 切換顯示單位制
func (s *State) SetUnitSystem(system units.System) error {
	if !system.IsValid() {
		return common.ErrInvalidUnitSystem
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.system = system
	return nil
}

// SetSortOrder 切換食譜列表排序
func (s *State) SetSortOrder(order SortOrder) error {
	if !order.IsValid() {
		return common.ErrInvalidSortOrder
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortOrder = order
	return nil
}

// Recipe 取得單筆食譜
func (s *State) Recipe(id string) (recipe.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return recipe.Recipe{}, false
}

// Recipes 取得依目前排序的食譜快照
func (s *State) Recipes() []recipe.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]recipe.Recipe, len(s.recipes))
	copy(out, s.recipes)
	if s.sortOrder == SortAlphabetical {
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}

// ExportRecipes 取得依加入順序的食譜快照，供匯出與持久化使用
func (s *State) ExportRecipes() []recipe.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]recipe.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// ActiveIDs 取得啟用集合的快照
func (s *State) ActiveIDs() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]bool, len(s.activeIDs))
	for id := range s.activeIDs {
		out[id] = true
	}
	return out
}

// Multipliers 取得倍率表的快照
func (s *State) Multipliers() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]float64, len(s.multipliers))
	for id, m := range s.multipliers {
		out[id] = m
	}
	return out
}

// UnitSystem 目前的單位制偏好
func (s *State) UnitSystem() units.System {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.system
}

// SortOrder 目前的排序偏好
func (s *State) SortOrder() SortOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortOrder
}

// ShoppingList 對目前狀態跑一次完整彙總
func (s *State) ShoppingList() map[string]Entry {
	s.mu.RLock()
	recipes := make([]recipe.Recipe, len(s.recipes))
	copy(recipes, s.recipes)
	active := make(map[string]bool, len(s.activeIDs))
	for id := range s.activeIDs {
		active[id] = true
	}
	multipliers := make(map[string]float64, len(s.multipliers))
	for id, m := range s.multipliers {
		multipliers[id] = m
	}
	system := s.system
	s.mu.RUnlock()

	return Consolidate(recipes, active, multipliers, system)
}

// Restore 從持久層載入的資料重建狀態，補齊缺漏讓不變量成立：
// 啟用集合缺漏時全部啟用，倍率缺漏補 1，
// 無效的單位制與排序退回預設值。
func (s *State) Restore(recipes []recipe.Recipe, activeIDs map[string]bool, multipliers map[string]float64, system units.System, order SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipes = recipes
	known := make(map[string]bool, len(recipes))
	for _, r := range recipes {
		known[r.ID] = true
	}

	s.activeIDs = make(map[string]bool, len(recipes))
	if activeIDs == nil {
		for id := range known {
			s.activeIDs[id] = true
		}
	} else {
		for id := range activeIDs {
			if known[id] {
				s.activeIDs[id] = true
			}
		}
	}

	s.multipliers = make(map[string]float64, len(recipes))
	for id, m := range multipliers {
		if known[id] && m >= 0 {
			s.multipliers[id] = m
		}
	}
	for id := range s.activeIDs {
		if _, ok := s.multipliers[id]; !ok {
			s.multipliers[id] = DefaultMultiplier
		}
		if s.multipliers[id] == 0 {
			delete(s.activeIDs, id)
		}
	}

	s.system = units.SystemImperial
	if system.IsValid() {
		s.system = system
	}
	s.sortOrder = SortAlphabetical
	if order.IsValid() {
		s.sortOrder = order
	}
}

func (s *State) hasRecipe(id string) bool {
	for _, r := range s.recipes {
		if r.ID == id {
			return true
		}
	}
	return false
}
