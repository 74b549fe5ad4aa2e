package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/GoSim-25-26J-441/project-dashboard/internal/api/http"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func check(t *testing.T, h *httpapi.HealthHandler, path string) httpapi.HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp httpapi.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck_WithoutRedis(t *testing.T) {
	h := httpapi.NewHealthHandler("project-dashboard", "1.2.3", nil, func() int { return 5 })

	resp := check(t, h, "/health")
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "disabled", resp.Redis)
	assert.Equal(t, 5, resp.Companies)
}

func TestHealthCheck_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	h := httpapi.NewHealthHandler("project-dashboard", "1.0.0", client, nil)
	assert.Equal(t, "up", check(t, h, "/healthz").Redis)

	mr.Close()
	assert.Equal(t, "down", check(t, h, "/healthz").Redis)
}
