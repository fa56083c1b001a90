package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clubverde/memberweb/internal/apiclient"
	"github.com/clubverde/memberweb/internal/cart"
	"github.com/clubverde/memberweb/internal/events"
	"github.com/clubverde/memberweb/internal/logging"
	"github.com/clubverde/memberweb/internal/models"
	"github.com/clubverde/memberweb/internal/session"
)

type CartHTTP struct {
	Store    *cart.Store
	API      *apiclient.Client
	Producer *events.Producer
}

// cartResponse carries the line items together with the computed folds the
// storefront renders next to them.
type cartResponse struct {
	Items     []models.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Total     float64           `json:"total"`
}

func toResponse(c *cart.Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return cartResponse{Items: items, ItemCount: c.ItemCount(), Total: c.Total()}
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	sessionID := session.EnsureSessionID(c)
	crt, err := h.Store.Get(ctx, sessionID)
	if err != nil {
		l.Error("cart_load_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, toResponse(crt))
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var item models.CartItem
	if err := c.Bind(&item); err != nil {
		l.Warn("cart_add_bad_body", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if item.ProductID == "" || item.Quantity < 1 {
		return c.JSON(http.StatusBadRequest, "product id and quantity>=1 required")
	}

	sessionID := session.EnsureSessionID(c)
	crt, err := h.Store.AddItem(ctx, sessionID, item)
	if err != nil {
		l.Error("cart_add_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	h.Producer.PublishAsync(ctx, sessionID, map[string]any{
		"type":      "cart_item_added",
		"productID": item.ProductID,
		"quantity":  item.Quantity,
	})
	return c.JSON(http.StatusOK, toResponse(crt))
}

func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	productID := c.Param("id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, "product id required")
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("cart_update_bad_body", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	sessionID := session.EnsureSessionID(c)
	crt, err := h.Store.UpdateQuantity(ctx, sessionID, productID, req.Quantity)
	if err != nil {
		l.Error("cart_update_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, toResponse(crt))
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	productID := c.Param("id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, "product id required")
	}

	sessionID := session.EnsureSessionID(c)
	crt, err := h.Store.RemoveItem(ctx, sessionID, productID)
	if err != nil {
		l.Error("cart_remove_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	h.Producer.PublishAsync(ctx, sessionID, map[string]any{
		"type":      "cart_item_removed",
		"productID": productID,
	})
	return c.JSON(http.StatusOK, toResponse(crt))
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID := session.EnsureSessionID(c)
	if err := h.Store.Clear(ctx, sessionID); err != nil {
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	h.Producer.PublishAsync(ctx, sessionID, map[string]any{"type": "cart_cleared"})
	return c.JSON(http.StatusOK, toResponse(&cart.Cart{}))
}

// Checkout submits the cart as an order and clears it on success. Stock and
// price verification stay with the backend; a rejection is relayed verbatim.
func (h *CartHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.checkout")

	token := session.TokenFromRequest(c.Request())
	sessionID := session.EnsureSessionID(c)

	crt, err := h.Store.Get(ctx, sessionID)
	if err != nil {
		l.Error("checkout_cart_load_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	if len(crt.Items) == 0 {
		return c.JSON(http.StatusBadRequest, "no items in cart")
	}

	order := models.Order{Total: crt.Total()}
	for _, it := range crt.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	created, err := h.API.CreateOrder(ctx, token, order)
	if err != nil {
		l.Warn("checkout_rejected", "error", err)
		return relayBackendErr(c, err)
	}

	if err := h.Store.Clear(ctx, sessionID); err != nil {
		l.Warn("checkout_cart_clear_failed", "error", err)
	}

	h.Producer.PublishAsync(ctx, sessionID, map[string]any{
		"type":    "order_created",
		"orderID": created.ID,
		"total":   created.Total,
	})

	l.Info("order created", "order", created.ID)
	return c.JSON(http.StatusCreated, created)
}
