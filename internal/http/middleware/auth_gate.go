package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// AuthCookieName mirrors the flag the dashboard stores after login.
	// The value is the literal string "true"; there is no token and no
	// server-side session behind it.
	AuthCookieName  = "isAuthenticated"
	AuthCookieValue = "true"

	CtxKeyAuthenticated = "authenticated"
)

// AuthGateCfg holds configuration for the auth gate middleware.
type AuthGateCfg struct {
	Secure bool
}

// AuthGate loads the login flag from its cookie and sets it in context.
func AuthGate(cfg AuthGateCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := c.Cookie(AuthCookieName)
		if err == nil && v == AuthCookieValue {
			c.Set(CtxKeyAuthenticated, true)
		}
		c.Next()
	}
}

// IsAuthenticated reports whether the login flag was present on the request.
func IsAuthenticated(c *gin.Context) bool {
	v, ok := c.Get(CtxKeyAuthenticated)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// SetAuthCookie sets the login flag. No expiry beyond the cookie default.
func SetAuthCookie(c *gin.Context, cfg AuthGateCfg) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, AuthCookieValue, 0, "/", "", cfg.Secure, true)
}

// ClearAuthCookie removes the login flag (logout).
func ClearAuthCookie(c *gin.Context, cfg AuthGateCfg) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, "", -1, "/", "", cfg.Secure, true)
}
