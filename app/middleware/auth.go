package middleware

import (
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Roles carried in token claims. Token issuance lives in the identity
// service; this layer only verifies and extracts.
const (
	RoleStudent = "student"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

// Auth verifies the bearer token and stores it in the request context
// for the claim helpers below.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing authorization header"})
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid authorization header"})
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid token"})
			}

			c.Set("user", token)
			return next(c)
		}
	}
}

// RequireRoles gates a route on the token's role claim. Run after Auth.
func RequireRoles(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := TokenRole(c)
			for _, required := range requiredRoles {
				if role == required {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, echo.Map{"message": "insufficient role"})
		}
	}
}

func tokenClaims(c echo.Context) jwt.MapClaims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

// TokenUserID returns the authenticated user's id, or 0 when absent.
func TokenUserID(c echo.Context) int {
	claims := tokenClaims(c)
	if claims == nil {
		return 0
	}
	// JWT numbers decode as float64.
	if id, ok := claims["id"].(float64); ok {
		return int(id)
	}
	return 0
}

// TokenRole returns the authenticated user's role, or "" when absent.
func TokenRole(c echo.Context) string {
	claims := tokenClaims(c)
	if claims == nil {
		return ""
	}
	if role, ok := claims["role"].(string); ok {
		return role
	}
	return ""
}
