// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"navedex/internal/cache"
	"navedex/internal/database"
	"navedex/internal/handler"
	"navedex/internal/handler/auth"
	"navedex/internal/handler/navers"
	"navedex/internal/handler/projects"
	"navedex/internal/middleware"
	"navedex/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db), middleware.RequireAuth)

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, rdb, wp))
	api.POST("/auth/refresh", auth.RefreshHandler(db, rdb))

	// Naver CRUD（僅擁有者可見）
	apiNavers := api.Group("/navers", middleware.RequireAuth)
	apiNavers.GET("", navers.ListNaversHandler(db))
	apiNavers.POST("", navers.CreateNaverHandler(db))
	apiNavers.GET("/:id", navers.GetNaverHandler(db))
	apiNavers.PUT("/:id", navers.UpdateNaverHandler(db))
	apiNavers.PATCH("/:id", navers.PatchNaverHandler(db))
	apiNavers.DELETE("/:id", navers.DeleteNaverHandler(db))

	// Project CRUD（僅擁有者可見）
	apiProjects := api.Group("/projects", middleware.RequireAuth)
	apiProjects.GET("", projects.ListProjectsHandler(db))
	apiProjects.POST("", projects.CreateProjectHandler(db))
	apiProjects.GET("/:id", projects.GetProjectHandler(db))
	apiProjects.PUT("/:id", projects.UpdateProjectHandler(db))
	apiProjects.PATCH("/:id", projects.PatchProjectHandler(db))
	apiProjects.DELETE("/:id", projects.DeleteProjectHandler(db))
}
