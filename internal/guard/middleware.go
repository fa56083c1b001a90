package guard

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	TokenCookie = "auth-token"
	AdminCookie = "is-admin"
)

// skipped prefixes mirror the storefront's matcher: API and asset requests
// are never page navigations.
var skipPrefixes = []string{"/api", "/static", "/health"}

// Middleware enforces Decide on every page navigation before the handler
// runs. It reads request cookies only and answers with a 302 on denial.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if path == "/favicon.ico" || matchesAny(path, skipPrefixes) {
				return next(c)
			}

			d := Decide(path, StateFromRequest(c.Request()))
			if d.Allow {
				return next(c)
			}
			return c.Redirect(http.StatusFound, d.RedirectTo)
		}
	}
}

// StateFromRequest extracts the guard's view of the visitor from cookies.
func StateFromRequest(r *http.Request) AuthState {
	s := AuthState{}
	if ck, err := r.Cookie(TokenCookie); err == nil && strings.TrimSpace(ck.Value) != "" {
		s.HasToken = true
	}
	if ck, err := r.Cookie(AdminCookie); err == nil && ck.Value == "true" {
		s.IsAdmin = true
	}
	return s
}
