package auth

import (
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "github.com/Kirojava/Arsenic/internal/errors"
)

// Identity is the resolved principal for a request, extracted once from the
// validated token. Handlers take the user ID from here, never from request
// bodies.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

// IdentityFromContext reads the token the echo-jwt middleware validated and
// stored in the context. Returns nil on unauthenticated requests.
func IdentityFromContext(c echo.Context) *Identity {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil
	}

	id := &Identity{}
	if v, ok := claims["user_id"].(float64); ok {
		id.UserID = uint(v)
	}
	if v, ok := claims["email"].(string); ok {
		id.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		id.Role = v
	}
	if id.UserID == 0 {
		return nil
	}
	return id
}

// RequireRole returns middleware that rejects requests whose token does not
// carry one of the given roles. It must run after the JWT middleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFromContext(c)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "missing or invalid token",
					Code:  "UNAUTHORIZED",
				})
			}
			for _, role := range roles {
				if identity.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: apperrors.ErrForbidden.Error(),
				Code:  "FORBIDDEN",
			})
		}
	}
}
