package shoplist

import (
	"net/http"

	coreShoplist "shoplist-generator/internal/core/shoplist"
	"shoplist-generator/internal/core/units"

	"github.com/gin-gonic/gin"
)

// ActiveRequest 切換食譜啟用狀態的請求
type ActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// MultiplierRequest 設定食譜倍率的請求。倍率 0 等同停用。
type MultiplierRequest struct {
	Multiplier *float64 `json:"multiplier" binding:"required"`
}

// UnitSystemRequest 切換單位制的請求
type UnitSystemRequest struct {
	UnitSystem string `json:"unit_system" binding:"required"`
}

// SortOrderRequest 切換食譜排序的請求
type SortOrderRequest struct {
	SortOrder string `json:"sort_order" binding:"required"`
}

// HandleSetActive 切換食譜啟用狀態
func (h *Handler) HandleSetActive(c *gin.Context) {
	id := c.Param("id")

	var req ActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.service.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "active": *req.Active})
}

// HandleSetMultiplier 設定食譜倍率
func (h *Handler) HandleSetMultiplier(c *gin.Context) {
	id := c.Param("id")

	var req MultiplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.service.SetMultiplier(c.Request.Context(), id, *req.Multiplier); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "multiplier": *req.Multiplier})
}

// HandleSetUnitSystem 切換購物清單顯示單位制
func (h *Handler) HandleSetUnitSystem(c *gin.Context) {
	var req UnitSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.service.SetUnitSystem(c.Request.Context(), units.System(req.UnitSystem)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unit_system": req.UnitSystem})
}

// HandleSetSortOrder 切換食譜列表排序
func (h *Handler) HandleSetSortOrder(c *gin.Context) {
	var req SortOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.service.SetSortOrder(c.Request.Context(), coreShoplist.SortOrder(req.SortOrder)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sort_order": req.SortOrder})
}
