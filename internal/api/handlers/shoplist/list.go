package shoplist

import (
	"net/http"

	"shoplist-generator/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleShoppingList 取得目前的彙總購物清單。每次請求都
// 從啟用食譜重新計算，不依賴任何快取。
func (h *Handler) HandleShoppingList(c *gin.Context) {
	entries := h.service.ShoppingList()
	system, sortOrder := h.service.Preferences()

	common.LogDebug("購物清單查詢",
		zap.Int("items", len(entries)),
		zap.String("unit_system", string(system)),
	)

	c.JSON(http.StatusOK, gin.H{
		"unit_system": system,
		"sort_order":  sortOrder,
		"items":       entries,
	})
}
