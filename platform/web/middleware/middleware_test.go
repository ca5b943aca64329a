package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDAndErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.ErrorLevel)

	engine := gin.New()
	engine.Use(RequestID(), Errors(zap.New(core).Sugar()))
	engine.GET("/boom", func(ctx *gin.Context) {
		_ = ctx.Error(errors.New("boom"))
		ctx.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.Header.Set(RequestIDHeader, "abc-123")
	engine.ServeHTTP(w, r)

	require.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "abc-123", entry.ContextMap()["requestID"])
	require.Equal(t, "boom", entry.ContextMap()["ERROR"])

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
