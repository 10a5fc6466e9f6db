//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"appointment-engine/internal/handler/api"
	"appointment-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Check(t *testing.T) {
	testCases := []struct {
		name       string
		ping       error
		wantStatus int
		wantBody   string
	}{
		{name: "database reachable", ping: nil, wantStatus: http.StatusOK, wantBody: `{"status":"ok","message":"Service is healthy"}`},
		{name: "database down", ping: errors.New("dial tcp: connection refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable","message":"Database unreachable"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			h := api.NewHealthHandler(pingerFunc(func(context.Context) error { return tc.ping }))
			r.GET("/health", h.Check)

			w := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}
