package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const claimsKey = "claims"

// ErrorBody is the JSON shape of middleware rejections. It matches the
// handlers' error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// AuthMiddleware verifies the HS256 bearer token and stores its claims in
// the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{Error: "Authorization header is required", Code: "UNAUTHORIZED"})
			return
		}

		// Check Bearer format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{Error: "Invalid authorization header format", Code: "UNAUTHORIZED"})
			return
		}

		// Verify signature and expiry
		claims, err := ParseToken(parts[1], config.AppConfig.JWTSecret)
		if err != nil {
			observability.Logger().Warn("rejected admin token",
				zap.String("ip", c.ClientIP()),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{Error: "Invalid token", Code: "UNAUTHORIZED"})
			return
		}

		// Store claims in context
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ParseToken verifies an HS256 token signed with secret.
func ParseToken(token, secret string) (*models.AdminClaims, error) {
	if secret == "" {
		return nil, errors.New("no signing secret configured")
	}
	parsed, err := jwt.ParseWithClaims(token, &models.AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := parsed.Claims.(*models.AdminClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// RequireAdmin checks that the verified token carries the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := Claims(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{Error: "Claims not found", Code: "UNAUTHORIZED"})
			return
		}
		// Check if user has admin role
		if !claims.HasRole(config.AppConfig.AdminRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorBody{Error: "Admin privileges required", Code: "FORBIDDEN"})
			return
		}
		c.Next()
	}
}

// Claims returns the claims stored by AuthMiddleware.
func Claims(c *gin.Context) (*models.AdminClaims, error) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, ErrClaimsNotFound
	}
	claims, ok := v.(*models.AdminClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims type %T", v)
	}
	return claims, nil
}

// Actor names the caller in audit logs, or "" for anonymous requests.
func Actor(c *gin.Context) string {
	claims, err := Claims(c)
	if err != nil {
		return ""
	}
	return claims.Actor()
}

// ErrClaimsNotFound is returned when no token was verified for the request.
var ErrClaimsNotFound = errors.New("claims not found")
