// Package filter derives the visible product list from the catalog and the
// shopper's filter selection.
package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// Bounds used when the catalog is empty.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 1500
)

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Spec is the shopper's filter selection. The zero value accepts everything
// and keeps catalog order.
type Spec struct {
	Category string          `json:"category,omitempty"`
	Price    *PriceRange     `json:"price,omitempty"`
	Marks    []string        `json:"marks,omitempty"`
	Tags     []string        `json:"tags,omitempty"`
	Query    string          `json:"query,omitempty"`
	Sort     enum.SortOption `json:"sort,omitempty"`
}

// Apply returns the items matching spec, ordered by spec.Sort. The input
// slice is never modified.
func Apply(items []models.Product, spec Spec) []models.Product {
	query := strings.ToLower(spec.Query)

	out := make([]models.Product, 0, len(items))
	for i := range items {
		if matches(&items[i], &spec, query) {
			out = append(out, items[i])
		}
	}

	Sort(out, spec.Sort)
	return out
}

func matches(p *models.Product, spec *Spec, query string) bool {
	if spec.Category != "" && p.Category != spec.Category {
		return false
	}
	if spec.Price != nil && !spec.Price.Contains(p.Price) {
		return false
	}
	if len(spec.Marks) > 0 && !contains(spec.Marks, p.Mark) {
		return false
	}
	if len(spec.Tags) > 0 && !p.HasAnyTag(spec.Tags) {
		return false
	}
	if query != "" &&
		!strings.Contains(strings.ToLower(p.Name), query) &&
		!strings.Contains(strings.ToLower(p.Description), query) {
		return false
	}
	return true
}

// Sort orders items in place by option. The sort is stable; an empty or
// unknown option leaves the order untouched.
func Sort(items []models.Product, option enum.SortOption) {
	var less func(a, b *models.Product) bool

	switch option {
	case enum.SortNameAsc, enum.SortNameDesc:
		c := collate.New(language.French)
		if option == enum.SortNameAsc {
			less = func(a, b *models.Product) bool { return c.CompareString(a.Name, b.Name) < 0 }
		} else {
			less = func(a, b *models.Product) bool { return c.CompareString(b.Name, a.Name) < 0 }
		}
	case enum.SortPriceAsc:
		less = func(a, b *models.Product) bool { return a.Price < b.Price }
	case enum.SortPriceDesc:
		less = func(a, b *models.Product) bool { return b.Price < a.Price }
	case enum.SortRatingAsc:
		less = func(a, b *models.Product) bool { return a.RatingOrZero() < b.RatingOrZero() }
	case enum.SortRatingDesc:
		less = func(a, b *models.Product) bool { return b.RatingOrZero() < a.RatingOrZero() }
	case enum.SortDiscountAsc:
		less = func(a, b *models.Product) bool { return a.DiscountPercent() < b.DiscountPercent() }
	case enum.SortDiscountDesc:
		less = func(a, b *models.Product) bool { return b.DiscountPercent() < a.DiscountPercent() }
	default:
		return
	}

	sort.SliceStable(items, func(i, j int) bool { return less(&items[i], &items[j]) })
}

// Bounds returns the catalog's minimum and maximum base price.
func Bounds(items []models.Product) PriceRange {
	if len(items) == 0 {
		return PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice}
	}
	r := PriceRange{Min: items[0].Price, Max: items[0].Price}
	for _, p := range items[1:] {
		if p.Price < r.Min {
			r.Min = p.Price
		}
		if p.Price > r.Max {
			r.Max = p.Price
		}
	}
	return r
}

// Reset returns the empty selection with the price range opened to the
// catalog bounds.
func Reset(items []models.Product) Spec {
	b := Bounds(items)
	return Spec{Price: &b}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
