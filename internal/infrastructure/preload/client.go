package preload

import (
	"context"
	"fmt"
	"net/http"

	"shoplist-generator/internal/core/recipe"
	"shoplist-generator/internal/infrastructure/config"
	"shoplist-generator/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// Client 啟動時抓取預載食譜檔的客戶端。
// 這是整個應用唯一的非同步邊界，核心只拿到
// 驗證過的食譜列表。
type Client struct {
	config *config.PreloadConfig
	http   *resty.Client
}

// NewClient 建立預載客戶端
func NewClient(cfg *config.PreloadConfig) *Client {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		config: cfg,
		http:   client,
	}
}

// Fetch 抓取並解析預載食譜檔。回傳的是匯入用的寬鬆形狀，
// 逐筆驗證交給匯入流程處理。
func (c *Client) Fetch(ctx context.Context) ([]recipe.ImportRecipe, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preload file: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("preload file returned status %d", resp.StatusCode())
	}

	var recipes []recipe.ImportRecipe
	if err := common.ParseJSONBytes(resp.Body(), &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse preload file: %w", err)
	}
	return recipes, nil
}
