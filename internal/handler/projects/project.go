// Package projects 提供 Project 資源的 CRUD，所有查詢皆以呼叫者為擁有者過濾
package projects

import (
	"errors"
	"net/http"
	"strconv"

	"navedex/internal/api"
	"navedex/internal/database"
	"navedex/internal/middleware"
	"navedex/internal/model"
	"navedex/internal/service"
	"navedex/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listProjects     = store.ListProjects
	createProject    = store.CreateProject
	getProjectDetail = store.GetProjectDetail
	updateProject    = store.UpdateProject
	deleteProject    = store.DeleteProject
)

func callerID(c echo.Context) (int, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	if !ok || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}

// @Summary     List projects
// @Description 列出呼叫者名下的 Project，可用 name 做等值過濾
// @Tags        projects
// @Produce     json
// @Param       name query string false "專案名稱 (完全相符)"
// @Success     200 {array}  api.ProjectResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects [get]
func ListProjectsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		filter := store.ProjectFilter{Name: c.QueryParam("name")}
		projects, err := listProjects(c.Request().Context(), db, owner, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.ProjectResponse, 0, len(projects))
		for _, p := range projects {
			resp = append(resp, api.NewProjectResponse(p))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a project
// @Description 建立 Project，owner 由伺服器指定為呼叫者；navers 為關聯 Naver id 清單
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       body body api.CreateProjectRequest true "Project 資料"
// @Success     201 {object} api.ProjectCreateResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects [post]
func CreateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateProjectRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		project := model.Project{
			Name:    req.Name,
			OwnerID: owner,
		}
		if err := createProject(c.Request().Context(), db, &project, req.Navers); err != nil {
			if errors.Is(err, store.ErrRelatedNotFound) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "naver not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewProjectCreateResponse(project))
	}
}

// @Summary     Get a project by ID
// @Description 取得呼叫者名下的 Project 詳細資料，關聯 Naver 以摘要展開
// @Tags        projects
// @Produce     json
// @Param       id path int true "Project ID"
// @Success     200 {object} api.ProjectDetailResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id} [get]
func GetProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}

		project, err := getProjectDetail(c.Request().Context(), db, id, owner)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "project not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewProjectDetailResponse(*project))
	}
}

// @Summary     Replace a project
// @Description 全量更新呼叫者名下的 Project；省略 navers 會清空所有關聯
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id   path int                      true "Project ID"
// @Param       body body api.CreateProjectRequest true "完整 Project 資料"
// @Success     200 {object} api.ProjectCreateResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id} [put]
func UpdateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}

		var req api.CreateProjectRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		project := model.Project{
			ID:      id,
			Name:    req.Name,
			OwnerID: owner,
		}
		// 全量更新一律替換關聯；req.Navers 為 nil 時即清空
		if err := updateProject(c.Request().Context(), db, &project, &req.Navers); err != nil {
			return projectStoreError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewProjectCreateResponse(project))
	}
}

// @Summary     Partially update a project
// @Description 部分更新呼叫者名下的 Project，只變更有帶的欄位；navers 有帶時整組替換
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id   path int                      true "Project ID"
// @Param       body body api.UpdateProjectRequest true "要變更的欄位"
// @Success     200 {object} api.ProjectCreateResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id} [patch]
func PatchProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}

		var req api.UpdateProjectRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		current, err := getProjectDetail(c.Request().Context(), db, id, owner)
		if err != nil {
			return projectStoreError(c, err)
		}

		project := *current
		if req.Name != nil {
			project.Name = *req.Name
		}

		// req.Navers 為 nil 時關聯維持不變
		if err := updateProject(c.Request().Context(), db, &project, req.Navers); err != nil {
			return projectStoreError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewProjectCreateResponse(project))
	}
}

// @Summary     Delete a project
// @Description 刪除呼叫者名下的 Project 及其所有關聯列
// @Tags        projects
// @Param       id path int true "Project ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id} [delete]
func DeleteProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}

		if err := deleteProject(c.Request().Context(), db, id, owner); err != nil {
			return projectStoreError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// projectStoreError 將 store 錯誤對應到 HTTP 狀態
// 他人資料與不存在一律回 404，避免洩漏存在性
func projectStoreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "project not found"})
	case errors.Is(err, store.ErrRelatedNotFound):
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "naver not found"})
	default:
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
	}
}
