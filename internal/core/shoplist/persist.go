package shoplist

import (
	"context"
	"errors"
	"sort"

	"shoplist-generator/internal/core/recipe"
	"shoplist-generator/internal/core/units"
	"shoplist-generator/internal/infrastructure/store"
	"shoplist-generator/internal/pkg/common"

	"go.uber.org/zap"
)

// 持久層鍵名，每一片狀態獨立存取
const (
	KeyRecipes     = "recipes"
	KeyActiveIDs   = "active_ids"
	KeyMultipliers = "multipliers"
	KeyUnitSystem  = "unit_system"
	KeySortOrder   = "sort_order"
)

// Persistence 把狀態切片存進鍵值儲存。損壞或缺漏的鍵
// 一律視為不存在，載入時退回預設值，絕不讓啟動失敗。
type Persistence struct {
	kv     store.KV
	prefix string
}

// NewPersistence 建立持久層
func NewPersistence(kv store.KV, prefix string) *Persistence {
	return &Persistence{kv: kv, prefix: prefix}
}

// Load 逐鍵載入並重建狀態。個別鍵讀取失敗或解析失敗時
// 記 warn 後以 nil 交給 Restore 補預設值。
func (p *Persistence) Load(ctx context.Context, state *State) {
	var recipes []recipe.Recipe
	p.loadJSON(ctx, KeyRecipes, &recipes)

	var activeList []string
	var activeIDs map[string]bool
	if p.loadJSON(ctx, KeyActiveIDs, &activeList) {
		activeIDs = make(map[string]bool, len(activeList))
		for _, id := range activeList {
			activeIDs[id] = true
		}
	}

	var multipliers map[string]float64
	p.loadJSON(ctx, KeyMultipliers, &multipliers)

	var system units.System
	if raw, err := p.kv.Get(ctx, p.prefix+KeyUnitSystem); err == nil {
		system = units.System(raw)
	}

	var order SortOrder
	if raw, err := p.kv.Get(ctx, p.prefix+KeySortOrder); err == nil {
		order = SortOrder(raw)
	}

	state.Restore(recipes, activeIDs, multipliers, system, order)
	common.LogInfo("狀態載入完成",
		zap.Int("recipes", len(recipes)),
		zap.String("unit_system", string(state.UnitSystem())),
		zap.String("sort_order", string(state.SortOrder())),
	)
}

// Save 在每次成功的狀態轉移後把所有切片寫回
func (p *Persistence) Save(ctx context.Context, state *State) error {
	var firstErr error

	saveJSON := func(key string, v interface{}) {
		data, err := common.ToJSON(v)
		if err == nil {
			err = p.kv.Set(ctx, p.prefix+key, data)
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	saveJSON(KeyRecipes, state.ExportRecipes())

	active := state.ActiveIDs()
	activeList := make([]string, 0, len(active))
	for id := range active {
		activeList = append(activeList, id)
	}
	sort.Strings(activeList)
	saveJSON(KeyActiveIDs, activeList)
	saveJSON(KeyMultipliers, state.Multipliers())

	if err := p.kv.Set(ctx, p.prefix+KeyUnitSystem, string(state.UnitSystem())); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := p.kv.Set(ctx, p.prefix+KeySortOrder, string(state.SortOrder())); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}

// loadJSON 讀取並解析單一鍵，回傳是否成功
func (p *Persistence) loadJSON(ctx context.Context, key string, v interface{}) bool {
	raw, err := p.kv.Get(ctx, p.prefix+key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			common.LogWarn("狀態鍵讀取失敗，改用預設值",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return false
	}
	if err := common.ParseJSON(raw, v); err != nil {
		common.LogWarn("狀態鍵內容損壞，改用預設值",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}
