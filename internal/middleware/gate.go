package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"vos-erp-service/internal/pkg/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier runs the local signature and expiry check on a raw token.
type TokenVerifier interface {
	VerifyAccessToken(raw string) (*token.Claims, error)
}

// SessionChecker compares a verified token's session id against the stored
// session pointer for that user.
type SessionChecker interface {
	CheckSession(ctx context.Context, sub, jti string) error
}

// CookieClearer expires the session cookie pair on the response.
type CookieClearer interface {
	Clear(c *gin.Context)
}

// RequestGate guards page routes under a fixed set of path prefixes. Requests
// outside the prefixes pass through with no token or store work at all.
// Protected requests go through two phases: a local verify of the access
// cookie, then a session-liveness check against the credential store. Any
// failure clears the cookie pair and redirects to the login page with the
// original destination in the next query parameter.
type RequestGate struct {
	verifier  TokenVerifier
	sessions  SessionChecker
	cookies   CookieClearer
	prefixes  []string
	loginPath string
	cookieKey string
	logger    *zap.Logger
}

func NewRequestGate(
	verifier TokenVerifier,
	sessions SessionChecker,
	cookies CookieClearer,
	prefixes []string,
	loginPath, accessCookie string,
	logger *zap.Logger,
) *RequestGate {
	return &RequestGate{
		verifier:  verifier,
		sessions:  sessions,
		cookies:   cookies,
		prefixes:  prefixes,
		loginPath: loginPath,
		cookieKey: accessCookie,
		logger:    logger,
	}
}

func (g *RequestGate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.protected(c.Request.URL.Path) {
			c.Next()
			return
		}

		raw, err := c.Cookie(g.cookieKey)
		if err != nil || raw == "" {
			g.deny(c, "missing access cookie")
			return
		}

		claims, err := g.verifier.VerifyAccessToken(raw)
		if err != nil {
			g.deny(c, "token verification failed")
			return
		}

		if err := g.sessions.CheckSession(c.Request.Context(), claims.UserID(), claims.SessionID()); err != nil {
			g.deny(c, "session check failed")
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

func (g *RequestGate) protected(path string) bool {
	for _, p := range g.prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// deny clears both cookies and bounces the browser to the login page. The
// original path and query ride along in next so login can resume there.
func (g *RequestGate) deny(c *gin.Context, reason string) {
	g.logger.Debug("gate denied request",
		zap.String("path", c.Request.URL.Path),
		zap.String("reason", reason),
	)

	g.cookies.Clear(c)

	target := g.loginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}
