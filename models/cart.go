package models

import (
	"time"
)

// Cart 代表購物車
type Cart struct {
	UserID    string     `json:"userId,omitempty"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// CartItem 代表購物車中的單個商品項目
type CartItem struct {
	ItemID   string  `json:"itemId"`
	Ref      string  `json:"ref"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// NewCartItem copies the display fields of p at add time. The unit price is
// the discounted price when the product has one.
func NewCartItem(p *Product) CartItem {
	return CartItem{
		ItemID: p.ID,
		Ref:    p.Ref,
		Name:   p.Name,
		Image:  p.Image,
		Price:  p.EffectivePrice(),
	}
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() *Cart {
	cp := *c
	cp.Items = make([]CartItem, len(c.Items))
	copy(cp.Items, c.Items)
	if c.UpdatedAt != nil {
		t := *c.UpdatedAt
		cp.UpdatedAt = &t
	}
	return &cp
}

// IndexOf returns the position of the line for itemID or -1.
func (c *Cart) IndexOf(itemID string) int {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			return i
		}
	}
	return -1
}
