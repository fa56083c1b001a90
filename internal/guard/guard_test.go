package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		state    AuthState
		allow    bool
		redirect string
	}{
		{
			name:     "admin path without cookies",
			path:     "/admin/users",
			state:    AuthState{},
			redirect: "/dashboard",
		},
		{
			name:     "admin path with token but no admin flag",
			path:     "/admin",
			state:    AuthState{HasToken: true},
			redirect: "/dashboard",
		},
		{
			name:  "admin path with token and admin flag",
			path:  "/admin/products",
			state: AuthState{HasToken: true, IsAdmin: true},
			allow: true,
		},
		{
			name:     "member path without token",
			path:     "/dashboard/orders",
			state:    AuthState{},
			redirect: "/login?redirect=%2Fdashboard%2Forders",
		},
		{
			name:  "member path with token",
			path:  "/dashboard",
			state: AuthState{HasToken: true},
			allow: true,
		},
		{
			name:     "login page while authenticated",
			path:     "/login",
			state:    AuthState{HasToken: true},
			redirect: "/dashboard",
		},
		{
			name:     "register page while authenticated",
			path:     "/register",
			state:    AuthState{HasToken: true},
			redirect: "/dashboard",
		},
		{
			name:  "login page anonymous",
			path:  "/login",
			state: AuthState{},
			allow: true,
		},
		{
			name:  "marketing root anonymous",
			path:  "/",
			state: AuthState{},
			allow: true,
		},
		{
			name:  "forgot password while authenticated",
			path:  "/forgot-password",
			state: AuthState{HasToken: true},
			allow: true,
		},
		{
			name:  "dashboard-prefixed sibling is not protected",
			path:  "/dashboards",
			state: AuthState{},
			allow: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := Decide(tt.path, tt.state)
			assert.Equal(t, tt.allow, d.Allow)
			assert.Equal(t, tt.redirect, d.RedirectTo)
		})
	}
}

func TestDecide_AdminRuleBeforeLoginRule(t *testing.T) {
	t.Parallel()

	// A token without the admin flag lands on the dashboard, not the login
	// page: rule 1 must win over rule 2.
	d := Decide("/admin/settings", AuthState{HasToken: true})
	assert.Equal(t, "/dashboard", d.RedirectTo)

	// No token at all on an admin path still hits rule 1 first.
	d = Decide("/admin/settings", AuthState{})
	assert.Equal(t, "/dashboard", d.RedirectTo)
}

func TestStateFromRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	assert.Equal(t, AuthState{}, StateFromRequest(req))

	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "tok"})
	assert.Equal(t, AuthState{HasToken: true}, StateFromRequest(req))

	req.AddCookie(&http.Cookie{Name: AdminCookie, Value: "true"})
	assert.Equal(t, AuthState{HasToken: true, IsAdmin: true}, StateFromRequest(req))
}

func TestStateFromRequest_AdminFlagMustBeTrue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "tok"})
	req.AddCookie(&http.Cookie{Name: AdminCookie, Value: "1"})

	s := StateFromRequest(req)
	assert.False(t, s.IsAdmin)
}

func newGuardedEcho() *echo.Echo {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/*", func(c echo.Context) error { return c.String(http.StatusOK, "page") })
	return e
}

func TestMiddleware_RedirectsAndPassthrough(t *testing.T) {
	t.Parallel()

	e := newGuardedEcho()

	tests := []struct {
		name     string
		path     string
		cookies  []*http.Cookie
		wantCode int
		wantLoc  string
	}{
		{
			name:     "admin without cookies",
			path:     "/admin/users",
			wantCode: http.StatusFound,
			wantLoc:  "/dashboard",
		},
		{
			name:     "dashboard without token",
			path:     "/dashboard/orders",
			wantCode: http.StatusFound,
			wantLoc:  "/login?redirect=%2Fdashboard%2Forders",
		},
		{
			name:     "login with token",
			path:     "/login",
			cookies:  []*http.Cookie{{Name: TokenCookie, Value: "tok"}},
			wantCode: http.StatusFound,
			wantLoc:  "/dashboard",
		},
		{
			name:     "public root without cookies",
			path:     "/",
			wantCode: http.StatusOK,
		},
		{
			name:     "api requests bypass the guard",
			path:     "/api/cart",
			wantCode: http.StatusOK,
		},
		{
			name:     "static requests bypass the guard",
			path:     "/static/app.js",
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for _, ck := range tt.cookies {
				req.AddCookie(ck)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantLoc != "" {
				assert.Equal(t, tt.wantLoc, rec.Header().Get("Location"))
			}
		})
	}
}
