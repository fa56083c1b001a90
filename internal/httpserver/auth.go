package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clubverde/memberweb/internal/apiclient"
	"github.com/clubverde/memberweb/internal/events"
	"github.com/clubverde/memberweb/internal/logging"
	"github.com/clubverde/memberweb/internal/session"
)

type AuthHTTP struct {
	Sessions  *session.Cache
	Producer  *events.Producer
	CookieTTL time.Duration
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_bad_body", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, "email and password required")
	}

	sessionID := session.EnsureSessionID(c)
	id, ok := h.Sessions.Login(ctx, sessionID, req.Email, req.Password)
	if !ok {
		return c.JSON(http.StatusUnauthorized, "invalid credentials")
	}

	session.SetAuthCookies(c, id.Token, id.Profile.IsAdmin, h.CookieTTL)
	h.Producer.PublishAsync(ctx, sessionID, map[string]any{
		"type":   "member_login",
		"member": id.Profile.ID,
	})

	l.Info("member logged in", "member", id.Profile.ID)
	// The token rides in the body too so the storefront can keep its own
	// copy in local storage next to the cookie.
	return c.JSON(http.StatusOK, apiclient.LoginResponse{Profile: id.Profile, Token: id.Token})
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req apiclient.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_bad_body", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, "email and password required")
	}

	sessionID := session.EnsureSessionID(c)
	id, ok := h.Sessions.Register(ctx, sessionID, req)
	if !ok {
		return c.JSON(http.StatusBadRequest, "registration failed")
	}

	session.SetAuthCookies(c, id.Token, id.Profile.IsAdmin, h.CookieTTL)

	l.Info("member registered", "member", id.Profile.ID)
	return c.JSON(http.StatusCreated, apiclient.LoginResponse{Profile: id.Profile, Token: id.Token})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID := session.EnsureSessionID(c)
	h.Sessions.Logout(ctx, sessionID)
	session.ClearAuthCookies(c)

	logging.FromContext(ctx).Info("member logged out")
	return c.JSON(http.StatusOK, "logged out")
}

// Profile serves the cached identity, initializing it lazily from the
// backend on the session's first protected request.
func (h *AuthHTTP) Profile(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID := session.EnsureSessionID(c)
	id := h.Sessions.Get(sessionID)
	if !id.Authenticated {
		token := session.TokenFromRequest(c.Request())
		id = h.Sessions.Initialize(ctx, sessionID, token)
	}
	if !id.Authenticated {
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(http.StatusOK, id.Profile)
}
