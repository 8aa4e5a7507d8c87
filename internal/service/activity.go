// File: internal/service/activity.go
package service

import (
	"context"
	"strconv"
	"time"

	"navedex/internal/cache"
)

const lastLoginKeyPrefix = "lastlogin:"

// RecordLastLogin 記錄使用者最後登入時間 (unix 秒)，供營運查詢
func RecordLastLogin(ctx context.Context, c cache.Cache, userID int, at time.Time) error {
	key := lastLoginKeyPrefix + strconv.Itoa(userID)
	return c.Set(ctx, key, at.Unix(), 0).Err()
}

// LastLogin 取得使用者最後登入時間，從未登入回傳 zero time
func LastLogin(ctx context.Context, c cache.Cache, userID int) (time.Time, error) {
	key := lastLoginKeyPrefix + strconv.Itoa(userID)
	sec, err := c.Get(ctx, key).Int64()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sec, 0), nil
}
