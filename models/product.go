package models

// Product 代表目錄中的商品，對客戶端唯讀
type Product struct {
	ID          string   `json:"id"`
	Ref         string   `json:"ref,omitempty"`
	Image       string   `json:"image"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Mark        string   `json:"mark,omitempty"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	Price       float64  `json:"price"`
	NewPrice    *float64 `json:"newPrice,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

// EffectivePrice is the price a customer pays: the discounted price if any.
func (p *Product) EffectivePrice() float64 {
	if p.NewPrice != nil {
		return *p.NewPrice
	}
	return p.Price
}

// DiscountPercent is (price - newPrice) / price * 100, or 0 without a discount.
func (p *Product) DiscountPercent() float64 {
	if p.NewPrice == nil || p.Price <= 0 {
		return 0
	}
	return (p.Price - *p.NewPrice) / p.Price * 100
}

// RatingOrZero treats a missing rating as 0.
func (p *Product) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// HasAnyTag reports whether any of tags is set on the product.
func (p *Product) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, t := range p.Tags {
			if t == want {
				return true
			}
		}
	}
	return false
}

// Clone returns a copy of p that shares no memory with it.
func (p Product) Clone() Product {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	if p.NewPrice != nil {
		v := *p.NewPrice
		p.NewPrice = &v
	}
	if p.Rating != nil {
		v := *p.Rating
		p.Rating = &v
	}
	if p.Stock != nil {
		v := *p.Stock
		p.Stock = &v
	}
	return p
}

// CloneProducts deep-copies every product of items.
func CloneProducts(items []Product) []Product {
	out := make([]Product, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}
