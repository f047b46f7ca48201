package middleware

import (
	"vos-erp-service/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "auth_claims"

// SetClaims stashes the verified claims for downstream handlers.
func SetClaims(c *gin.Context, claims *token.Claims) {
	c.Set(claimsContextKey, claims)
}

// GetClaims returns the verified claims set by the gate or the API auth
// middleware, if any.
func GetClaims(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}
