package router

import (
	"net/http"
	"testing"

	"navedex/internal/cache"
	"navedex/internal/database"
	"navedex/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	defer wp.Stop()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, wp)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodPost + " /api/auth/refresh",
		http.MethodGet + " /api/navers",
		http.MethodPost + " /api/navers",
		http.MethodGet + " /api/navers/:id",
		http.MethodPut + " /api/navers/:id",
		http.MethodPatch + " /api/navers/:id",
		http.MethodDelete + " /api/navers/:id",
		http.MethodGet + " /api/projects",
		http.MethodPost + " /api/projects",
		http.MethodGet + " /api/projects/:id",
		http.MethodPut + " /api/projects/:id",
		http.MethodPatch + " /api/projects/:id",
		http.MethodDelete + " /api/projects/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
