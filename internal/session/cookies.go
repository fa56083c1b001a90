package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clubverde/memberweb/internal/guard"
)

const SessionCookie = "session-id"

func CreateCookie(name, value, path string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// EnsureSessionID returns the visitor's session id, minting and setting the
// cookie on first contact. The id keys the cart and the identity cache.
func EnsureSessionID(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	id := uuid.NewString()
	c.SetCookie(CreateCookie(SessionCookie, id, "/", time.Now().Add(30*24*time.Hour)))
	return id
}

// SetAuthCookies mirrors the backend token into the auth-token cookie and
// records the admin flag the route guard reads. The TTL is capped at the
// token's own expiry when the token carries one.
func SetAuthCookies(c echo.Context, token string, isAdmin bool, ttl time.Duration) {
	expires := CookieExpiry(token, ttl)
	c.SetCookie(CreateCookie(guard.TokenCookie, token, "/", expires))

	adminValue := "false"
	if isAdmin {
		adminValue = "true"
	}
	c.SetCookie(CreateCookie(guard.AdminCookie, adminValue, "/", expires))
}

func ClearAuthCookies(c echo.Context) {
	expired := time.Unix(0, 0)
	c.SetCookie(CreateCookie(guard.TokenCookie, "", "/", expired))
	c.SetCookie(CreateCookie(guard.AdminCookie, "", "/", expired))
}

// TokenFromRequest reads the ambient bearer token the same way the guard
// does: straight from the auth-token cookie.
func TokenFromRequest(r *http.Request) string {
	if ck, err := r.Cookie(guard.TokenCookie); err == nil {
		return ck.Value
	}
	return ""
}
