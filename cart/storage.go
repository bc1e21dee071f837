// Package cart holds the shopper's device-local cart and keeps its derived
// totals consistent across mutations and reloads.
package cart

import (
	"context"
	"errors"

	"goflare.io/storefront/models"
)

// StorageKey names the persisted cart on every backend.
const StorageKey = "ab-dentaire-cart"

// ErrNotFound is returned by Storage.Load when no cart has been saved yet.
var ErrNotFound = errors.New("cart not found")

// Storage persists a single serialized cart.
type Storage interface {
	Load(ctx context.Context) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
}

// Notifier is told about every applied mutation.
type Notifier interface {
	Notify(ctx context.Context, event models.CartEvent) error
}
