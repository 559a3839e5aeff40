package api

import (
	"context"
	"net/http"
	"time"

	"shoplist-generator/internal/api/handlers/health"
	shoplistHandler "shoplist-generator/internal/api/handlers/shoplist"
	"shoplist-generator/internal/api/middleware"
	coreShoplist "shoplist-generator/internal/core/shoplist"
	"shoplist-generator/internal/infrastructure/config"
	"shoplist-generator/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (10MB)
	maxBodySize = 10 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, service *coreShoplist.Service) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 變更請求去重
	router.Use(middleware.Deduplication(cfg))

	// 限流
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 全局中間件：設置超時和配置
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		// 設置配置
		c.Set("config", cfg)

		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := shoplistHandler.NewHandler(service)

		// 食譜相關路由
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.GET("", handler.HandleListRecipes)
			recipeGroup.POST("", handler.HandleCreateRecipe)
			recipeGroup.GET("/:id", handler.HandleGetRecipe)
			recipeGroup.PUT("/:id", handler.HandleUpdateRecipe)
			recipeGroup.DELETE("/:id", handler.HandleDeleteRecipe)
			recipeGroup.PUT("/:id/active", handler.HandleSetActive)
			recipeGroup.PUT("/:id/multiplier", handler.HandleSetMultiplier)

			// 匯入匯出
			recipeGroup.POST("/import", handler.HandleImport)
			recipeGroup.GET("/export", handler.HandleExport)
		}

		// 顯示偏好
		prefGroup := api.Group("/preferences")
		{
			prefGroup.PUT("/units", handler.HandleSetUnitSystem)
			prefGroup.PUT("/sort", handler.HandleSetSortOrder)
		}

		// 彙總購物清單
		api.GET("/shopping-list", handler.HandleShoppingList)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
