// File: internal/service/refresh.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"navedex/internal/cache"

	"github.com/google/uuid"
)

// refreshKeyPrefix refresh token 在 Redis 中的 key 前綴
const refreshKeyPrefix = "refresh:"

// ErrInvalidRefreshToken 未知或已過期的 refresh token
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// IssueRefreshToken 產生不透明 refresh token 並以 TTL 存入快取
func IssueRefreshToken(ctx context.Context, c cache.Cache, userID int, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	if err := c.Set(ctx, refreshKeyPrefix+token, userID, ttl).Err(); err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	return token, nil
}

// RedeemRefreshToken 兌換 refresh token，成功後即作廢（單次使用）
func RedeemRefreshToken(ctx context.Context, c cache.Cache, token string) (int, error) {
	userID, err := c.Get(ctx, refreshKeyPrefix+token).Int()
	if err != nil {
		return 0, ErrInvalidRefreshToken
	}
	if err := c.Del(ctx, refreshKeyPrefix+token).Err(); err != nil {
		return 0, fmt.Errorf("RedeemRefreshToken: %w", err)
	}
	return userID, nil
}
