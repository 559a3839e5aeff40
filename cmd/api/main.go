package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shoplist-generator/internal/api"
	"shoplist-generator/internal/core/shoplist"
	"shoplist-generator/internal/core/units"
	"shoplist-generator/internal/infrastructure/config"
	"shoplist-generator/internal/infrastructure/preload"
	"shoplist-generator/internal/infrastructure/store"
	"shoplist-generator/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	// 使用 logger 記錄啟動信息
	common.LogInfo("載入設定",
		zap.Bool("store_enabled", cfg.Store.Enabled),
		zap.Bool("preload_enabled", cfg.Preload.Enabled),
		zap.String("default_unit_system", cfg.Defaults.UnitSystem),
	)

	// 初始化鍵值儲存：優先 redis，停用時退回記憶體儲存
	var kv store.KV
	if cfg.Store.Enabled {
		redisStore, err := store.NewRedisStore(&cfg.Store)
		if err != nil {
			common.LogFatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisStore.Close()
		kv = redisStore
	} else {
		common.LogWarn("儲存後端停用，狀態只保留在記憶體")
		kv = store.NewMemoryStore()
	}

	// 建立狀態並套用偏好預設值
	state := shoplist.NewState()
	if err := state.SetUnitSystem(units.System(cfg.Defaults.UnitSystem)); err != nil {
		common.LogWarn("無效的預設單位制，改用 imperial",
			zap.String("unit_system", cfg.Defaults.UnitSystem),
		)
	}
	if err := state.SetSortOrder(shoplist.SortOrder(cfg.Defaults.SortOrder)); err != nil {
		common.LogWarn("無效的預設排序，改用 alphabetical",
			zap.String("sort_order", cfg.Defaults.SortOrder),
		)
	}

	// 還原持久化狀態
	persistence := shoplist.NewPersistence(kv, cfg.Store.KeyPrefix)
	persistence.Load(context.Background(), state)

	service := shoplist.NewService(state, persistence)

	// 預載食譜（可選）
	if cfg.Preload.Enabled {
		preloadRecipes(cfg, service, state)
	}

	// 設置路由
	router, err := api.SetupRouter(cfg, service)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}

// preloadRecipes 從遠端抓取食譜檔並匯入。只在狀態是空的
// 時候匯入，避免重啟後重複。抓取失敗不影響啟動。
func preloadRecipes(cfg *config.Config, service *shoplist.Service, state *shoplist.State) {
	if len(state.Recipes()) > 0 {
		common.LogInfo("狀態非空，略過預載")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Preload.Timeout)
	defer cancel()

	client := preload.NewClient(&cfg.Preload)
	recipes, err := client.Fetch(ctx)
	if err != nil {
		common.LogWarn("食譜預載失敗", zap.Error(err))
		return
	}

	result := service.Import(ctx, recipes)
	common.LogInfo("食譜預載完成",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
}
