package cart

import "github.com/clubverde/memberweb/internal/models"

// Cart is the in-memory line-item list for one session. It never does I/O;
// persistence is the Store's job. Items keep insertion order for display.
type Cart struct {
	Items []models.CartItem `json:"items"`
}

// AddItem merges by product id: an existing line has its quantity increased
// by the incoming one, otherwise the item is appended. Stock limits are the
// backend's concern at checkout, so no cap is applied here.
func (c *Cart) AddItem(item models.CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// RemoveItem drops the line with the given product id, no-op if absent.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to an absolute value. Anything
// below 1 removes the line; an unknown product id is a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// ItemCount is the sum of quantities across lines, recomputed per call.
func (c *Cart) ItemCount() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// Total is the sum of price*quantity across lines, recomputed per call.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
