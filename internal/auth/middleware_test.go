package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithRole(role string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if role != "" {
		c.Set("user", &jwtv5.Token{Claims: jwtv5.MapClaims{
			"user_id": float64(1),
			"email":   "someone@x.com",
			"role":    role,
		}})
	}
	return c
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		allowed      []string
		expectedCode int // 0 means the handler runs
	}{
		{name: "admin passes admin gate", role: "admin", allowed: []string{"admin"}},
		{name: "delegate blocked from admin gate", role: "delegate", allowed: []string{"admin"}, expectedCode: http.StatusForbidden},
		{name: "unauthenticated rejected", role: "", allowed: []string{"admin"}, expectedCode: http.StatusUnauthorized},
		{name: "any of several roles", role: "team", allowed: []string{"admin", "team"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			}

			err := RequireRole(tt.allowed...)(next)(contextWithRole(tt.role))

			if tt.expectedCode == 0 {
				assert.NoError(t, err)
				assert.True(t, called)
			} else {
				var he *echo.HTTPError
				require.ErrorAs(t, err, &he)
				assert.Equal(t, tt.expectedCode, he.Code)
				assert.False(t, called)
			}
		})
	}
}

func TestIdentityFromContext(t *testing.T) {
	c := contextWithRole("delegate")
	identity := IdentityFromContext(c)
	require.NotNil(t, identity)
	assert.Equal(t, uint(1), identity.UserID)
	assert.Equal(t, "delegate", identity.Role)

	assert.Nil(t, IdentityFromContext(contextWithRole("")))
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateAccessToken(9, "d@x.com", "delegate")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(9), claims.UserID)
	assert.Equal(t, "d@x.com", claims.Email)
	assert.Equal(t, "delegate", claims.Role)

	_, err = NewJWTService("other-secret").ValidateToken(token)
	assert.Error(t, err)
}
