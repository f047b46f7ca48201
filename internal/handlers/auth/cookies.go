package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieWriter issues and clears the session cookie pair. Both cookies are
// httpOnly with SameSite=Lax and Path=/; Secure is flipped on in production
// builds only, so local plain-HTTP development keeps working.
type CookieWriter struct {
	AccessName  string
	RefreshName string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	Secure      bool
}

func (w *CookieWriter) Write(c *gin.Context, access, refresh string) {
	w.set(c, w.AccessName, access, int(w.AccessTTL.Seconds()))
	w.set(c, w.RefreshName, refresh, int(w.RefreshTTL.Seconds()))
}

// Clear expires both cookies. MaxAge -1 tells the browser to drop them now.
func (w *CookieWriter) Clear(c *gin.Context) {
	w.set(c, w.AccessName, "", -1)
	w.set(c, w.RefreshName, "", -1)
}

func (w *CookieWriter) set(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   w.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
