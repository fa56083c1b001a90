package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clubverde/memberweb/internal/apiclient"
	"github.com/clubverde/memberweb/internal/logging"
	"github.com/clubverde/memberweb/internal/models"
	"github.com/clubverde/memberweb/internal/session"
)

// AdminHTTP forwards back-office CRUD to the backend. Role checks happen
// twice: the RequireAdmin middleware here and the backend's own token check.
type AdminHTTP struct {
	API *apiclient.Client
}

func (h *AdminHTTP) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	stats, err := h.API.DashboardStats(ctx, token)
	if err != nil {
		logging.FromContext(ctx).Error("dashboard_stats_failed", "error", err)
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	var p models.Product
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	created, err := h.API.CreateProduct(ctx, token, p)
	if err != nil {
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	var p models.Product
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	updated, err := h.API.UpdateProduct(ctx, token, c.Param("id"), p)
	if err != nil {
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	if err := h.API.DeleteProduct(ctx, token, c.Param("id")); err != nil {
		return relayBackendErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHTTP) CreateEvent(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	var ev models.Event
	if err := c.Bind(&ev); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	created, err := h.API.CreateEvent(ctx, token, ev)
	if err != nil {
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHTTP) UpdateEvent(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	var ev models.Event
	if err := c.Bind(&ev); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	updated, err := h.API.UpdateEvent(ctx, token, c.Param("id"), ev)
	if err != nil {
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHTTP) DeleteEvent(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	if err := h.API.DeleteEvent(ctx, token, c.Param("id")); err != nil {
		return relayBackendErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	users, err := h.API.ListUsers(ctx, token)
	if err != nil {
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	user, err := h.API.GetUser(ctx, token, c.Param("id"))
	if err != nil {
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	var u models.User
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	updated, err := h.API.UpdateUser(ctx, token, c.Param("id"), u)
	if err != nil {
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	if err := h.API.DeleteUser(ctx, token, c.Param("id")); err != nil {
		return relayBackendErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
