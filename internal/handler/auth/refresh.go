package auth

import (
	"net/http"

	"navedex/internal/api"
	"navedex/internal/cache"
	"navedex/internal/database"

	"github.com/labstack/echo/v4"
)

// RefreshHandler 以 refresh token 兌換新的存取令牌
// @Summary     Refresh access token
// @Description 兌換 refresh token，成功後舊的 refresh token 即作廢
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RefreshRequest true "refresh token"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/refresh [post]
func RefreshHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		userID, err := redeemRefreshToken(c.Request().Context(), rdb, req.RefreshToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
		}
		user, err := getUserByID(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
		}

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		refreshToken, err := issueRefreshToken(c.Request().Context(), rdb, user.ID, refreshTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue refresh token"})
		}

		return c.JSON(http.StatusOK, api.TokenResponse{
			AccessToken:  token,
			RefreshToken: refreshToken,
			ExpiresIn:    int64(accessTokenTTL.Seconds()),
		})
	}
}
