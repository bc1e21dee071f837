// Package storefront wires the catalog, the filter pipeline, the cart and
// the currency adapter into the service the views are given.
package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"goflare.io/storefront/cart"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/currency"
	"goflare.io/storefront/filter"
	"goflare.io/storefront/models"
)

type Service interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListMarks(ctx context.Context) ([]models.Mark, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	ListItems(ctx context.Context) ([]models.Product, error)
	Item(ctx context.Context, id string) (*models.Product, error)

	Browse(ctx context.Context, spec filter.Spec) ([]models.Product, error)
	Facets(ctx context.Context) (filter.Facets, error)
	ResetFilters(ctx context.Context) (filter.Spec, error)

	Cart() *cart.Store
	AddToCart(ctx context.Context, itemID string, quantity int) (*models.Cart, error)

	Currency(ctx context.Context) stripe.Currency
	SelectCurrency(ctx context.Context, code string) (stripe.Currency, error)
	Price(amount float64, code string) string

	Close()
}

type service struct {
	catalog   catalog.Repository
	cart      *cart.Store
	formatter *currency.Formatter
	selector  *currency.Selector

	// mu is held for reading while pipeline is in use and for writing
	// while it is replaced or closed.
	mu       sync.RWMutex
	pipeline *filter.Pipeline

	logger *zap.Logger
}

func NewService(
	catalog catalog.Repository, store *cart.Store,
	formatter *currency.Formatter, selector *currency.Selector,
	logger *zap.Logger) Service {
	return &service{
		catalog:   catalog,
		cart:      store,
		formatter: formatter,
		selector:  selector,
		logger:    logger,
	}
}

func (s *service) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.catalog.ListCategories(ctx)
}

func (s *service) ListMarks(ctx context.Context) ([]models.Mark, error) {
	return s.catalog.ListMarks(ctx)
}

func (s *service) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.catalog.ListTags(ctx)
}

func (s *service) ListItems(ctx context.Context) ([]models.Product, error) {
	return s.catalog.ListItems(ctx)
}

func (s *service) Item(ctx context.Context, id string) (*models.Product, error) {
	return s.catalog.GetItem(ctx, id)
}

// Browse filters and sorts the current catalog.
func (s *service) Browse(ctx context.Context, spec filter.Spec) ([]models.Product, error) {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	digest, err := filter.Digest(items)
	if err != nil {
		s.logger.Warn("Filter pipeline unavailable, filtering directly", zap.Error(err))
		return filter.Apply(items, spec), nil
	}
	if out, ok := s.applyCached(digest, spec); ok {
		return out, nil
	}
	if err := s.replacePipeline(items, digest); err != nil {
		s.logger.Warn("Filter pipeline unavailable, filtering directly", zap.Error(err))
		return filter.Apply(items, spec), nil
	}
	if out, ok := s.applyCached(digest, spec); ok {
		return out, nil
	}
	// replaced again by a concurrent Browse over another catalog
	return filter.Apply(items, spec), nil
}

// applyCached runs spec through the current pipeline when it was built from
// the catalog with the given digest.
func (s *service) applyCached(digest uint64, spec filter.Spec) ([]models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pipeline == nil || s.pipeline.Digest() != digest {
		return nil, false
	}
	return s.pipeline.Apply(spec), true
}

// replacePipeline installs a pipeline for items unless one with the same
// digest is already current. No reader holds the old one once it is closed.
func (s *service) replacePipeline(items []models.Product, digest uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pipeline != nil && s.pipeline.Digest() == digest {
		return nil
	}

	p, err := filter.NewPipeline(items, s.logger)
	if err != nil {
		return err
	}
	if s.pipeline != nil {
		s.pipeline.Close()
		s.logger.Info("Catalog changed, filter cache rebuilt")
	}
	s.pipeline = p
	return nil
}

func (s *service) Facets(ctx context.Context) (filter.Facets, error) {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return filter.Facets{}, fmt.Errorf("failed to list items: %w", err)
	}
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return filter.Facets{}, fmt.Errorf("failed to list categories: %w", err)
	}
	return filter.BuildFacets(items, categories), nil
}

func (s *service) ResetFilters(ctx context.Context) (filter.Spec, error) {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return filter.Spec{}, fmt.Errorf("failed to list items: %w", err)
	}
	return filter.Reset(items), nil
}

func (s *service) Cart() *cart.Store {
	return s.cart
}

// AddToCart snapshots the catalog item into the cart.
func (s *service) AddToCart(ctx context.Context, itemID string, quantity int) (*models.Cart, error) {
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	s.cart.AddItem(ctx, models.NewCartItem(item), quantity)
	return s.cart.Snapshot(), nil
}

func (s *service) Currency(ctx context.Context) stripe.Currency {
	return s.selector.Selected(ctx)
}

func (s *service) SelectCurrency(ctx context.Context, code string) (stripe.Currency, error) {
	return s.selector.Select(ctx, code)
}

func (s *service) Price(amount float64, code string) string {
	return s.formatter.Format(amount, code)
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pipeline != nil {
		s.pipeline.Close()
		s.pipeline = nil
	}
}
