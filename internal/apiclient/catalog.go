package apiclient

import (
	"context"
	"net/http"

	"github.com/clubverde/memberweb/internal/models"
)

func (c *Client) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, token, id string) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPost, "/products", token, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+id, token, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, token, nil, nil)
}

func (c *Client) ListEvents(ctx context.Context, token string) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, "/events", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, token, id string) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+id, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEvent(ctx context.Context, token string, ev models.Event) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPost, "/events", token, ev, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, token, id string, ev models.Event) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPut, "/events/"+id, token, ev, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+id, token, nil, nil)
}

// CreateOrder submits the checkout. Stock and price validation happen
// backend-side; a rejection comes back as a StatusError for the handler
// to relay verbatim.
func (c *Client) CreateOrder(ctx context.Context, token string, order models.Order) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
