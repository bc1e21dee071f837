package catalog

import (
	"context"

	"goflare.io/storefront/models"
)

var _ Repository = (*staticRepository)(nil)

type staticRepository struct {
	categories []models.Category
	marks      []models.Mark
	tags       []models.Tag
	items      []models.Product
}

// NewStaticRepository returns the built-in dental catalog.
func NewStaticRepository() Repository {
	return NewStaticRepositoryFrom(seedCategories, seedMarks, seedTags, seedItems)
}

// NewStaticRepositoryFrom serves the given collections. The slices are copied.
func NewStaticRepositoryFrom(categories []models.Category, marks []models.Mark, tags []models.Tag, items []models.Product) Repository {
	return &staticRepository{
		categories: append([]models.Category(nil), categories...),
		marks:      append([]models.Mark(nil), marks...),
		tags:       append([]models.Tag(nil), tags...),
		items:      models.CloneProducts(items),
	}
}

func (r *staticRepository) ListCategories(_ context.Context) ([]models.Category, error) {
	return append([]models.Category{}, r.categories...), nil
}

func (r *staticRepository) ListMarks(_ context.Context) ([]models.Mark, error) {
	return append([]models.Mark{}, r.marks...), nil
}

func (r *staticRepository) ListTags(_ context.Context) ([]models.Tag, error) {
	return append([]models.Tag{}, r.tags...), nil
}

func (r *staticRepository) ListItems(_ context.Context) ([]models.Product, error) {
	return models.CloneProducts(r.items), nil
}

func (r *staticRepository) GetItem(_ context.Context, id string) (*models.Product, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i].Clone()
			return &p, nil
		}
	}
	return nil, ErrItemNotFound
}
