package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"go-task-api/internal/config"
	"go-task-api/internal/routes"
	"go-task-api/internal/services"
	"go-task-api/testutil"
)

func corsRouter(origins []string) http.Handler {
	return routes.NewRouter(routes.Dependencies{
		Server:      config.Server{AllowOrigins: origins, StrictValidation: true},
		TaskService: services.NewTaskService(testutil.NewMemoryTaskRepository()),
		Logger:      zap.NewNop(),
	})
}

func preflight(h http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/task", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewRouter_CORS(t *testing.T) {
	t.Run("configured origin is allowed", func(t *testing.T) {
		w := preflight(corsRouter([]string{"http://app.example"}), "http://app.example")
		assert.Equal(t, "http://app.example", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("empty origins fall back to the default origin", func(t *testing.T) {
		r := corsRouter(nil)

		w := preflight(r, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

		w = preflight(r, "http://evil.example")
		assert.NotEqual(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
