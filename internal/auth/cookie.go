package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie the browser sends back on every request.
const CookieName = "token"

// Cookie lifetime matches the token expiry so the browser stops sending
// tokens that would fail verification anyway.
const sessionCookieMaxAge = time.Hour

// SetSessionCookie attaches the session token to the response. In production
// the frontend is served from a different origin, so the cookie must be
// Secure with SameSite=None; locally a strict, non-secure cookie works over
// plain http.
func SetSessionCookie(c *gin.Context, token string, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(CookieName, token, int(sessionCookieMaxAge.Seconds()), "/", "", production, true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(CookieName, "", -1, "/", "", production, true)
}
