package middleware

import (
	"net/http"
	"strings"

	"vos-erp-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware protects JSON API routes. Unlike the page gate it answers
// with a 401 body instead of a redirect, and accepts the token from either
// the access cookie or an Authorization bearer header.
type AuthMiddleware struct {
	verifier  TokenVerifier
	sessions  SessionChecker
	cookieKey string
}

func NewAuthMiddleware(verifier TokenVerifier, sessions SessionChecker, accessCookie string) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:  verifier,
		sessions:  sessions,
		cookieKey: accessCookie,
	}
}

func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := m.extractToken(c)
		if raw == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := m.verifier.VerifyAccessToken(raw)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		if err := m.sessions.CheckSession(c.Request.Context(), claims.UserID(), claims.SessionID()); err != nil {
			response.FromError(c, err)
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// RequireAdmin must run after Auth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "authentication required")
			return
		}
		if !claims.IsAdmin {
			response.Error(c, http.StatusForbidden, "admin access required")
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if raw, err := c.Cookie(m.cookieKey); err == nil && raw != "" {
		return raw
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
