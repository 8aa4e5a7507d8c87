// Package navers 提供 Naver 資源的 CRUD，所有查詢皆以呼叫者為擁有者過濾
package navers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"navedex/internal/api"
	"navedex/internal/database"
	"navedex/internal/middleware"
	"navedex/internal/model"
	"navedex/internal/service"
	"navedex/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listNavers     = store.ListNavers
	createNaver    = store.CreateNaver
	getNaverDetail = store.GetNaverDetail
	updateNaver    = store.UpdateNaver
	deleteNaver    = store.DeleteNaver
)

func callerID(c echo.Context) (int, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	if !ok || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}

// @Summary     List navers
// @Description 列出呼叫者名下的 Naver，可用 name、admission_date、job_role 做等值過濾 (AND)
// @Tags        navers
// @Produce     json
// @Param       name           query string false "姓名 (完全相符)"
// @Param       admission_date query string false "入職日 (YYYY-MM-DD)"
// @Param       job_role       query string false "職務 (完全相符)"
// @Success     200 {array}  api.NaverResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /navers [get]
func ListNaversHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		filter := store.NaverFilter{
			Name:    c.QueryParam("name"),
			JobRole: c.QueryParam("job_role"),
		}
		if raw := c.QueryParam("admission_date"); raw != "" {
			d, err := time.Parse(api.DateLayout, raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid admission_date"})
			}
			filter.AdmissionDate = &d
		}

		navers, err := listNavers(c.Request().Context(), db, owner, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.NaverResponse, 0, len(navers))
		for _, n := range navers {
			resp = append(resp, api.NewNaverResponse(n))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a naver
// @Description 建立 Naver，owner 由伺服器指定為呼叫者；projects 為關聯 Project id 清單
// @Tags        navers
// @Accept      json
// @Produce     json
// @Param       body body api.CreateNaverRequest true "Naver 資料"
// @Success     201 {object} api.NaverCreateResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /navers [post]
func CreateNaverHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateNaverRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		birthdate, _ := time.Parse(api.DateLayout, req.Birthdate)
		admission, _ := time.Parse(api.DateLayout, req.AdmissionDate)

		naver := model.Naver{
			Name:          req.Name,
			Birthdate:     birthdate,
			AdmissionDate: admission,
			JobRole:       req.JobRole,
			OwnerID:       owner,
		}
		if err := createNaver(c.Request().Context(), db, &naver, req.Projects); err != nil {
			if errors.Is(err, store.ErrRelatedNotFound) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "project not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewNaverCreateResponse(naver))
	}
}

// @Summary     Get a naver by ID
// @Description 取得呼叫者名下的 Naver 詳細資料，關聯 Project 以摘要展開
// @Tags        navers
// @Produce     json
// @Param       id path int true "Naver ID"
// @Success     200 {object} api.NaverDetailResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /navers/{id} [get]
func GetNaverHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid naver ID"})
		}

		naver, err := getNaverDetail(c.Request().Context(), db, id, owner)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "naver not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewNaverDetailResponse(*naver))
	}
}

// @Summary     Replace a naver
// @Description 全量更新呼叫者名下的 Naver；省略 projects 會清空所有關聯
// @Tags        navers
// @Accept      json
// @Produce     json
// @Param       id   path int                    true "Naver ID"
// @Param       body body api.CreateNaverRequest true "完整 Naver 資料"
// @Success     200 {object} api.NaverCreateResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /navers/{id} [put]
func UpdateNaverHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid naver ID"})
		}

		var req api.CreateNaverRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		birthdate, _ := time.Parse(api.DateLayout, req.Birthdate)
		admission, _ := time.Parse(api.DateLayout, req.AdmissionDate)

		naver := model.Naver{
			ID:            id,
			Name:          req.Name,
			Birthdate:     birthdate,
			AdmissionDate: admission,
			JobRole:       req.JobRole,
			OwnerID:       owner,
		}
		// 全量更新一律替換關聯；req.Projects 為 nil 時即清空
		if err := updateNaver(c.Request().Context(), db, &naver, &req.Projects); err != nil {
			return naverStoreError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewNaverCreateResponse(naver))
	}
}

// @Summary     Partially update a naver
// @Description 部分更新呼叫者名下的 Naver，只變更有帶的欄位；projects 有帶時整組替換
// @Tags        navers
// @Accept      json
// @Produce     json
// @Param       id   path int                    true "Naver ID"
// @Param       body body api.UpdateNaverRequest true "要變更的欄位"
// @Success     200 {object} api.NaverCreateResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /navers/{id} [patch]
func PatchNaverHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid naver ID"})
		}

		var req api.UpdateNaverRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		current, err := getNaverDetail(c.Request().Context(), db, id, owner)
		if err != nil {
			return naverStoreError(c, err)
		}

		naver := *current
		if req.Name != nil {
			naver.Name = *req.Name
		}
		if req.Birthdate != nil {
			naver.Birthdate, _ = time.Parse(api.DateLayout, *req.Birthdate)
		}
		if req.AdmissionDate != nil {
			naver.AdmissionDate, _ = time.Parse(api.DateLayout, *req.AdmissionDate)
		}
		if req.JobRole != nil {
			naver.JobRole = *req.JobRole
		}

		// req.Projects 為 nil 時關聯維持不變
		if err := updateNaver(c.Request().Context(), db, &naver, req.Projects); err != nil {
			return naverStoreError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewNaverCreateResponse(naver))
	}
}

// @Summary     Delete a naver
// @Description 刪除呼叫者名下的 Naver 及其所有關聯列
// @Tags        navers
// @Param       id path int true "Naver ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /navers/{id} [delete]
func DeleteNaverHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid naver ID"})
		}

		if err := deleteNaver(c.Request().Context(), db, id, owner); err != nil {
			return naverStoreError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// naverStoreError 將 store 錯誤對應到 HTTP 狀態
// 他人資料與不存在一律回 404，避免洩漏存在性
func naverStoreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "naver not found"})
	case errors.Is(err, store.ErrRelatedNotFound):
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "project not found"})
	default:
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
	}
}
