package store

import "context"

// KV 不透明的鍵值儲存介面。核心只透過這兩個操作
// 接觸持久層，缺鍵以 ErrNotFound 表示。
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
