package models

import (
	"time"
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Mark struct {
	Name string `json:"name"`
}

type Tag struct {
	Name string `json:"name"`
}

// CategoryCount is a category facet entry of the product list.
type CategoryCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MarkCount is a mark facet entry of the product list.
type MarkCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
