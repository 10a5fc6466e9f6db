//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/handler/middleware"
	"appointment-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/probe", h)
	return r
}

func TestErrorHandler(t *testing.T) {
	testCases := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "mapped domain error keeps its status",
			handler:    func(c *gin.Context) { httperr.Abort(c, bookingrequest.ErrNotFound, "Failed to get booking request") },
			wantStatus: http.StatusNotFound,
			wantMsg:    "booking request not found",
		},
		{
			name:       "private error without a response becomes 500",
			handler:    func(c *gin.Context) { _ = c.Error(errors.New("boom")) },
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
		{
			name:       "panic is recovered",
			handler:    func(c *gin.Context) { panic("nil booking") },
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, newErrorRouter(tc.handler), http.MethodGet, "/probe", nil, "")
			httptest.AssertErrorResponse(t, w, tc.wantStatus, tc.wantMsg)
		})
	}

	t.Run("explicit status without a body is kept", func(t *testing.T) {
		r := newErrorRouter(func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.PerformRequest(t, r, http.MethodGet, "/probe", nil, "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
