// Package cart holds the client-side cart: an ordered sequence of line items
// keyed by menu item id, persisted to durable local storage on every change.
package cart

import (
	"fmt"

	"cafe-client/internal/common/logger"
	"cafe-client/internal/domain"
)

// Cart is the mutation engine over the line-item sequence. Mutations are
// synchronous and single-writer; persistence is a write-through side effect
// of every committed mutation, in mutation order. A persistence failure is
// reported but never rolls back the in-memory state.
type Cart struct {
	items  []domain.CartLineItem
	store  Store
	notify Notifier
	log    *logger.Logger
}

// New loads the persisted cart. If the store cannot be read, the session
// degrades to in-memory operation starting from an empty cart.
func New(store Store, notify Notifier, log *logger.Logger) *Cart {
	if notify == nil {
		notify = Nop()
	}
	c := &Cart{store: store, notify: notify, log: log}
	items, err := store.Load()
	if err != nil {
		log.Error("cart_load_failed", err, nil)
	}
	c.items = items
	return c
}

// AddItem puts quantity units of a menu item into the cart. If the item is
// already present its quantity grows by quantity and the line price is
// recomputed from the unit price already in effect for that line, so a menu
// price changed after the first add does not retroactively reprice the line.
func (c *Cart) AddItem(item domain.MenuItem, quantity int) {
	if quantity < 1 {
		return
	}

	if idx := c.indexOf(item.ID); idx >= 0 {
		li := &c.items[idx]
		unit := li.UnitPrice()
		li.Quantity += quantity
		li.Price = unit * float64(li.Quantity)
		c.notify.Success(fmt.Sprintf("Added another %s to cart (x%d)", item.Name, quantity))
	} else {
		unit, err := item.UnitPrice()
		if err != nil {
			c.log.Error("cart_add_invalid_price", err, map[string]any{"item_id": item.ID, "price": item.Price})
			c.notify.Error(fmt.Sprintf("Could not add %s to cart", item.Name))
			return
		}
		c.items = append(c.items, domain.CartLineItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    unit * float64(quantity),
			Quantity: quantity,
		})
		c.notify.Success(fmt.Sprintf("%s added to cart (x%d)", item.Name, quantity))
	}
	c.persist()
}

// UpdateQuantity sets the quantity of an existing line. A quantity below 1
// removes the line. Returns false when no line has the given id.
func (c *Cart) UpdateQuantity(itemID, newQuantity int) bool {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return false
	}
	if newQuantity < 1 {
		return c.RemoveItem(itemID)
	}

	li := &c.items[idx]
	unit := li.UnitPrice()
	li.Quantity = newQuantity
	li.Price = unit * float64(newQuantity)
	c.notify.Success("Cart updated")
	c.persist()
	return true
}

// RemoveItem deletes a line; returns false when no line has the given id.
func (c *Cart) RemoveItem(itemID int) bool {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return false
	}
	name := c.items[idx].Name
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.notify.Success(fmt.Sprintf("%s removed from cart", name))
	c.persist()
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
	c.notify.Success("Cart cleared")
	c.persist()
}

// TotalAmount sums the line prices. Always recomputed, never cached.
func (c *Cart) TotalAmount() float64 {
	var total float64
	for _, li := range c.items {
		total += li.Price
	}
	return total
}

// ItemCount sums the line quantities.
func (c *Cart) ItemCount() int {
	var n int
	for _, li := range c.items {
		n += li.Quantity
	}
	return n
}

// Items returns a copy of the line-item sequence in insertion order.
func (c *Cart) Items() []domain.CartLineItem {
	out := make([]domain.CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

func (c *Cart) indexOf(itemID int) int {
	for i, li := range c.items {
		if li.ID == itemID {
			return i
		}
	}
	return -1
}

func (c *Cart) persist() {
	if err := c.store.Save(c.items); err != nil {
		c.log.Error("cart_persist_failed", err, map[string]any{"items": len(c.items)})
		c.notify.Error("Failed to save cart")
	}
}
