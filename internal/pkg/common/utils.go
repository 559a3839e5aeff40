package common

import (
	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID，作為不重複使用的食譜識別碼
func GenerateUUID() string {
	return uuid.New().String()
}
