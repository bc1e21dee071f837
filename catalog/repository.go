package catalog

import (
	"context"
	"errors"

	"goflare.io/storefront/models"
)

var ErrItemNotFound = errors.New("item not found")

// Repository is the read-only catalog source.
type Repository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListMarks(ctx context.Context) ([]models.Mark, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	ListItems(ctx context.Context) ([]models.Product, error)
	GetItem(ctx context.Context, id string) (*models.Product, error)
}
