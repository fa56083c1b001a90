package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubverde/memberweb/internal/models"
)

func item(id string, price float64, qty int) models.CartItem {
	return models.CartItem{ProductID: id, Name: "product " + id, Price: price, Quantity: qty}
}

func TestCart_AddItem_MergesByProductID(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	c.AddItem(item("p1", 10, 2))
	c.AddItem(item("p2", 5, 1))
	c.AddItem(item("p1", 10, 3))

	require.Len(t, c.Items, 2)
	assert.Equal(t, "p1", c.Items[0].ProductID)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, "p2", c.Items[1].ProductID)
}

func TestCart_AddItem_RepeatedAddsSumQuantities(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	quantities := []int{1, 4, 2, 7}
	sum := 0
	for _, q := range quantities {
		c.AddItem(item("p1", 3.5, q))
		sum += q
	}

	require.Len(t, c.Items, 1)
	assert.Equal(t, sum, c.Items[0].Quantity)
	assert.Equal(t, sum, c.ItemCount())
}

func TestCart_Totals_RecomputedAfterEveryMutation(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	c.AddItem(item("p1", 10, 2))
	c.AddItem(item("p2", 2.5, 4))
	assert.InDelta(t, 30.0, c.Total(), 1e-9)
	assert.Equal(t, 6, c.ItemCount())

	c.UpdateQuantity("p2", 1)
	assert.InDelta(t, 22.5, c.Total(), 1e-9)
	assert.Equal(t, 3, c.ItemCount())

	c.RemoveItem("p1")
	assert.InDelta(t, 2.5, c.Total(), 1e-9)
	assert.Equal(t, 1, c.ItemCount())
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		quantity  int
		wantItems int
		wantQty   int
	}{
		{name: "absolute set", quantity: 9, wantItems: 1, wantQty: 9},
		{name: "zero removes", quantity: 0, wantItems: 0},
		{name: "negative removes", quantity: -1, wantItems: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &Cart{}
			c.AddItem(item("p1", 1, 3))
			c.UpdateQuantity("p1", tt.quantity)

			require.Len(t, c.Items, tt.wantItems)
			if tt.wantItems > 0 {
				assert.Equal(t, tt.wantQty, c.Items[0].Quantity)
			}
		})
	}
}

func TestCart_UpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	c.AddItem(item("p1", 1, 1))
	c.UpdateQuantity("missing", 5)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestCart_RemoveItem_AbsentIsNoop(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	c.AddItem(item("p1", 1, 1))
	c.RemoveItem("missing")
	require.Len(t, c.Items, 1)
}

func TestCart_Clear(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	c.AddItem(item("p1", 1, 2))
	c.AddItem(item("p2", 2, 2))
	c.Clear()

	assert.Equal(t, 0, c.ItemCount())
	assert.Zero(t, c.Total())
	assert.Empty(t, c.Items)
}
