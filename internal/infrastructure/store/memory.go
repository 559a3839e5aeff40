package store

import (
	"context"
	"sync"
)

// MemoryStore 行程內的 KV 實作，用於關閉持久化的模式與測試。
// 行為與 Redis 實作一致：缺鍵回 ErrNotFound。
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStore 建立空的記憶體儲存
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

// Get 讀取鍵值
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set 寫入鍵值
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}
