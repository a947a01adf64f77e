package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func setupTestRouter(logger *zap.SugaredLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(logger))
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/client-error", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
	})
	r.GET("/server-error", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})
	return r
}

func TestLogger_Middleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"successful request", "/ok", http.StatusOK},
		{"client error", "/client-error", http.StatusBadRequest},
		{"server error", "/server-error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(zaptest.NewLogger(t).Sugar())

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			// The middleware must pass the response through untouched.
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Greater(t, w.Body.Len(), 0)
		})
	}
}

func TestLogger_WithQueryAndUserAgent(t *testing.T) {
	router := setupTestRouter(zaptest.NewLogger(t).Sugar())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok?page=1&page_size=20", nil)
	req.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
