package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clubverde/memberweb/internal/apiclient"
	"github.com/clubverde/memberweb/internal/logging"
	"github.com/clubverde/memberweb/internal/search"
	"github.com/clubverde/memberweb/internal/session"
)

type CatalogHTTP struct {
	API    *apiclient.Client
	Search *search.Client
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	products, err := h.API.ListProducts(ctx, token)
	if err != nil {
		logging.FromContext(ctx).Error("list_products_failed", "error", err)
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	product, err := h.API.GetProduct(ctx, token, c.Param("id"))
	if err != nil {
		logging.FromContext(ctx).Warn("get_product_failed", "id", c.Param("id"), "error", err)
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// SearchProducts queries the club's index directly; deployments without
// Elasticsearch answer 503 and the storefront falls back to plain listing.
func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search")

	if h.Search == nil {
		return c.JSON(http.StatusServiceUnavailable, "search not configured")
	}

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, "q required")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, limit := search.Paginate(page, size)

	total, products, err := h.Search.Products(ctx, query, from, limit)
	if err != nil {
		l.Error("search_failed", "query", query, "error", err)
		return c.JSON(http.StatusInternalServerError, "search error")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total":    total,
		"products": products,
	})
}

func (h *CatalogHTTP) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	evs, err := h.API.ListEvents(ctx, token)
	if err != nil {
		logging.FromContext(ctx).Error("list_events_failed", "error", err)
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusOK, evs)
}

func (h *CatalogHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	token := session.TokenFromRequest(c.Request())

	orders, err := h.API.ListOrders(ctx, token)
	if err != nil {
		logging.FromContext(ctx).Error("list_orders_failed", "error", err)
		return relayBackendErr(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}
