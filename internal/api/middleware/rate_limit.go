package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"shoplist-generator/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// tokenBucket 單一客戶端的令牌桶
type tokenBucket struct {
	tokens   float64
	lastTime time.Time
}

// RateLimiter 以客戶端 IP 分桶的限流器
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*tokenBucket
	capacity float64
	rate     float64
}

// NewRateLimiter 創建新的限流器
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:  make(map[string]*tokenBucket),
		capacity: float64(requests),
		rate:     float64(requests) / window.Seconds(),
	}
}

// Allow 檢查該客戶端是否還有可用令牌
func (rl *RateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	bucket, ok := rl.buckets[clientIP]
	if !ok {
		bucket = &tokenBucket{tokens: rl.capacity, lastTime: now}
		rl.buckets[clientIP] = bucket
	}

	// 依經過時間補充令牌
	elapsed := now.Sub(bucket.lastTime).Seconds()
	bucket.lastTime = now
	bucket.tokens += elapsed * rl.rate
	if bucket.tokens > rl.capacity {
		bucket.tokens = rl.capacity
	}

	if bucket.tokens >= 1 {
		bucket.tokens--
		return true
	}
	return false
}

// RateLimit 限流中間件
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(requests, window)

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			common.LogWarn("Rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)

			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"code":        common.ErrCodeTooManyRequests,
				"retry_after": window.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
