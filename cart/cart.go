// Package cart is the in-memory cart state container shared with the
// storefront clients. Every mutation returns a new Cart value and
// leaves the receiver untouched, so callers can hold on to previous
// states (undo, optimistic UI) and every transition stays observable.
package cart

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/FreshDev-Capstone/bundle-up-sub000/pricing"
)

var ErrItemNotFound = errors.New("item not in cart")

// InventoryExceededError reports exactly how many units are available
// and how many are already in the cart. The message is user-facing.
type InventoryExceededError struct {
	ProductID uint
	Available int
	InCart    int
	Requested int
}

func (e *InventoryExceededError) Error() string {
	return fmt.Sprintf("only %d available; %d already in cart", e.Available, e.InCart)
}

// Item holds a product snapshot and the unit price resolved for the
// owner's role at add time. The price is not re-derived afterwards.
type Item struct {
	Product     models.Product
	Role        models.Role
	Quantity    int
	UnitPrice   float64
	PricingType string
	AddedAt     time.Time
}

type Cart struct {
	items map[uint]Item
}

func New() Cart {
	return Cart{items: map[uint]Item{}}
}

func (c Cart) clone() Cart {
	next := Cart{items: make(map[uint]Item, len(c.items))}
	for id, item := range c.items {
		next.items[id] = item
	}
	return next
}

// AddItem adds quantity units of a product, resolving the inventory
// ceiling and unit price for the given role. Exceeding the ceiling
// returns an InventoryExceededError and leaves the cart unchanged.
func (c Cart) AddItem(product models.Product, role models.Role, quantity int) (Cart, error) {
	if quantity <= 0 {
		return c, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	resolved := pricing.Resolve(product, role)
	current := c.items[product.ID].Quantity
	if current+quantity > resolved.Inventory {
		return c, &InventoryExceededError{
			ProductID: product.ID,
			Available: resolved.Inventory,
			InCart:    current,
			Requested: quantity,
		}
	}

	next := c.clone()
	item, ok := next.items[product.ID]
	if !ok {
		item = Item{
			Product:     product,
			Role:        role,
			UnitPrice:   resolved.Price,
			PricingType: resolved.PricingType,
			AddedAt:     time.Now(),
		}
	}
	item.Quantity = current + quantity
	next.items[product.ID] = item
	return next, nil
}

// UpdateQuantity replaces the quantity for a product already in the
// cart. A quantity of zero or less removes the item. The ceiling is
// recomputed from the item's snapshotted product and role.
func (c Cart) UpdateQuantity(productID uint, quantity int) (Cart, error) {
	item, ok := c.items[productID]
	if !ok {
		return c, ErrItemNotFound
	}
	if quantity <= 0 {
		return c.RemoveItem(productID), nil
	}

	resolved := pricing.Resolve(item.Product, item.Role)
	if quantity > resolved.Inventory {
		return c, &InventoryExceededError{
			ProductID: productID,
			Available: resolved.Inventory,
			InCart:    item.Quantity,
			Requested: quantity,
		}
	}

	next := c.clone()
	item.Quantity = quantity
	next.items[productID] = item
	return next, nil
}

// RemoveItem deletes the entry; removing an absent product is a no-op.
func (c Cart) RemoveItem(productID uint) Cart {
	if _, ok := c.items[productID]; !ok {
		return c
	}
	next := c.clone()
	delete(next.items, productID)
	return next
}

func (c Cart) Clear() Cart {
	return New()
}

func (c Cart) Quantity(productID uint) int {
	return c.items[productID].Quantity
}

func (c Cart) Len() int {
	return len(c.items)
}

func (c Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns the entries ordered by product id.
func (c Cart) Items() []Item {
	out := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Product.ID < out[j].Product.ID
	})
	return out
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// ComputeTotals is a pure function of the current cart state.
// Shipping is waived once the subtotal reaches the threshold.
func (c Cart) ComputeTotals(taxRate, freeShippingThreshold, flatShippingCost float64) Totals {
	var subtotal float64
	for _, item := range c.items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	tax := subtotal * taxRate
	shipping := flatShippingCost
	if subtotal >= freeShippingThreshold {
		shipping = 0
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}
