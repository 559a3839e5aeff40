package shoplist

import (
	"net/http"

	coreRecipe "shoplist-generator/internal/core/recipe"
	coreShoplist "shoplist-generator/internal/core/shoplist"
	"shoplist-generator/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler 購物清單處理程序
type Handler struct {
	service *coreShoplist.Service
}

// NewHandler 創建新的購物清單處理程序
func NewHandler(service *coreShoplist.Service) *Handler {
	return &Handler{service: service}
}

// RecipeRequest 新增或編輯食譜的請求
type RecipeRequest struct {
	Name         string   `json:"name" binding:"required"`        // 食譜名稱
	Text         string   `json:"text" binding:"required"`        // 食材原始文字，一行一項
	Tags         []string `json:"tags,omitempty"`                 // 標籤
	About        string   `json:"about,omitempty"`                // 描述
	Instructions string   `json:"instructions,omitempty"`         // 作法
}

// ImportRequest 批次匯入請求
type ImportRequest struct {
	Recipes []coreRecipe.ImportRecipe `json:"recipes" binding:"required"`
}

// HandleListRecipes 列出所有食譜與啟用狀態
func (h *Handler) HandleListRecipes(c *gin.Context) {
	recipes := h.service.Recipes()
	active := h.service.ActiveIDs()
	multipliers := h.service.Multipliers()

	type recipeView struct {
		coreRecipe.Recipe
		Active     bool    `json:"active"`
		Multiplier float64 `json:"multiplier"`
	}
	views := make([]recipeView, 0, len(recipes))
	for _, r := range recipes {
		mult := multipliers[r.ID]
		if !active[r.ID] {
			mult = 0
		}
		views = append(views, recipeView{Recipe: r, Active: active[r.ID], Multiplier: mult})
	}
	c.JSON(http.StatusOK, gin.H{"recipes": views})
}

// HandleGetRecipe 取得單筆食譜
func (h *Handler) HandleGetRecipe(c *gin.Context) {
	id := c.Param("id")
	r, ok := h.service.Recipe(id)
	if !ok {
		respondError(c, common.ErrRecipeNotFound)
		return
	}
	c.JSON(http.StatusOK, r)
}

// HandleCreateRecipe 解析食材文字並新增食譜
func (h *Handler) HandleCreateRecipe(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	r, err := h.service.AddRecipe(c.Request.Context(), coreShoplist.RecipeInput{
		Name:         req.Name,
		Text:         req.Text,
		Tags:         req.Tags,
		About:        req.About,
		Instructions: req.Instructions,
	})
	if err != nil {
		common.LogWarn("食譜新增失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		respondError(c, err)
		return
	}

	common.LogInfo("食譜新增成功",
		zap.String("request_id", requestID),
		zap.String("recipe_id", r.ID),
		zap.Int("ingredients", len(r.Ingredients)),
	)
	c.JSON(http.StatusCreated, r)
}

// HandleUpdateRecipe 重新解析並整筆替換食譜
func (h *Handler) HandleUpdateRecipe(c *gin.Context) {
	id := c.Param("id")

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	r, err := h.service.UpdateRecipe(c.Request.Context(), id, coreShoplist.RecipeInput{
		Name:         req.Name,
		Text:         req.Text,
		Tags:         req.Tags,
		About:        req.About,
		Instructions: req.Instructions,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// HandleDeleteRecipe 刪除食譜
func (h *Handler) HandleDeleteRecipe(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.RemoveRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// HandleImport 批次匯入食譜，個別失敗的元素跳過不中斷
func (h *Handler) HandleImport(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result := h.service.Import(c.Request.Context(), req.Recipes)
	c.JSON(http.StatusOK, result)
}

// HandleExport 匯出所有食譜，格式可直接用於匯入
func (h *Handler) HandleExport(c *gin.Context) {
	recipes := h.service.Export()
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
