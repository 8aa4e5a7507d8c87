package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"navedex/internal/api"
	"navedex/internal/cache"
	"navedex/internal/database"
	"navedex/internal/worker"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳存取令牌
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與 refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 憑證錯誤一律回 400 且不帶 token
		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		refreshToken, err := issueRefreshToken(c.Request().Context(), rdb, user.ID, refreshTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue refresh token"})
		}

		// 最後登入時間走背景寫入，失敗不影響登入
		userID := user.ID
		wp.TrySubmit(func() {
			_ = recordLastLogin(context.Background(), rdb, userID, time.Now())
		})

		return c.JSON(http.StatusOK, api.TokenResponse{
			AccessToken:  token,
			RefreshToken: refreshToken,
			ExpiresIn:    int64(accessTokenTTL.Seconds()),
		})
	}
}
