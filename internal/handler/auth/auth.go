// Package auth 處理註冊、登入與 refresh token 兌換
package auth

import (
	"time"

	"navedex/internal/service"
	"navedex/internal/store"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

var (
	hashPassword       = service.HashPassword
	authenticateUser   = service.AuthenticateUser
	issueAccessToken   = service.IssueAccessToken
	issueRefreshToken  = service.IssueRefreshToken
	redeemRefreshToken = service.RedeemRefreshToken
	recordLastLogin    = service.RecordLastLogin
	createUser         = store.CreateUser
	getUserByEmail     = store.GetUserByEmail
	getUserByID        = store.GetUserByID
)
