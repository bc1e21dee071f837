package filter

import (
	"goflare.io/storefront/models"
)

// Facets summarises what the filter controls can offer for a product list.
type Facets struct {
	Categories []models.CategoryCount `json:"categories"`
	Marks      []models.MarkCount     `json:"marks"`
	Price      PriceRange             `json:"price"`
}

// BuildFacets counts items per category and per mark in first-seen order.
// Category names come from categories; unknown ids are labelled
// "Catégorie <id>". Items without a mark are not counted.
func BuildFacets(items []models.Product, categories []models.Category) Facets {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	f := Facets{
		Categories: make([]models.CategoryCount, 0),
		Marks:      make([]models.MarkCount, 0),
		Price:      Bounds(items),
	}
	catIdx := make(map[string]int)
	markIdx := make(map[string]int)

	for _, p := range items {
		if i, ok := catIdx[p.Category]; ok {
			f.Categories[i].Count++
		} else {
			name, ok := names[p.Category]
			if !ok {
				name = "Catégorie " + p.Category
			}
			catIdx[p.Category] = len(f.Categories)
			f.Categories = append(f.Categories, models.CategoryCount{ID: p.Category, Name: name, Count: 1})
		}

		if p.Mark == "" {
			continue
		}
		if i, ok := markIdx[p.Mark]; ok {
			f.Marks[i].Count++
		} else {
			markIdx[p.Mark] = len(f.Marks)
			f.Marks = append(f.Marks, models.MarkCount{ID: p.Mark, Name: p.Mark, Count: 1})
		}
	}
	return f
}
