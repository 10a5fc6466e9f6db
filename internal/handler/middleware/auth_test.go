//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"appointment-engine/internal/domain/staff"
	"appointment-engine/internal/handler/middleware"
	"appointment-engine/tests/common/httptest"
	middlewaremock "appointment-engine/tests/mock/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(verifier middleware.TokenVerifier, minRole staff.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthMiddleware(verifier)

	r := gin.New()
	r.GET("/protected", auth.RequireAuth(), auth.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.String(), "role": role.String()})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name       string
		token      string
		setupMock  func(m *middlewaremock.MockTokenVerifier)
		minRole    staff.Role
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing token",
			setupMock:  func(m *middlewaremock.MockTokenVerifier) {},
			minRole:    staff.RoleParent,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Access token required",
		},
		{
			name:  "verifier rejects the token",
			token: "expired",
			setupMock: func(m *middlewaremock.MockTokenVerifier) {
				m.EXPECT().Identity("expired").Return(uuid.Nil, staff.Role(""), errors.New("token is expired"))
			},
			minRole:    staff.RoleParent,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid or expired token",
		},
		{
			name:  "role below the route minimum",
			token: "parent-token",
			setupMock: func(m *middlewaremock.MockTokenVerifier) {
				m.EXPECT().Identity("parent-token").Return(userID, staff.RoleParent, nil)
			},
			minRole:    staff.RoleAdmin,
			wantStatus: http.StatusForbidden,
			wantMsg:    "Insufficient permissions",
		},
		{
			name:  "higher role passes",
			token: "super-token",
			setupMock: func(m *middlewaremock.MockTokenVerifier) {
				m.EXPECT().Identity("super-token").Return(userID, staff.RoleSuperAdmin, nil)
			},
			minRole:    staff.RoleTherapist,
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			verifier := middlewaremock.NewMockTokenVerifier(ctrl)
			tc.setupMock(verifier)

			w := httptest.PerformRequest(t, newAuthRouter(verifier, tc.minRole), http.MethodGet, "/protected", nil, tc.token)

			if tc.wantStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tc.wantStatus, tc.wantMsg)
				return
			}
			var body map[string]string
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
			assert.Equal(t, userID.String(), body["userId"])
			assert.Equal(t, "superadmin", body["role"])
		})
	}
}
