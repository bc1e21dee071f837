package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// Store owns the cart. Mutations never fail: persistence and notification
// errors are logged and the in-memory cart stays authoritative.
type Store struct {
	mu       sync.Mutex
	cart     *models.Cart
	storage  Storage
	notifier Notifier
	deviceID string
	logger   *zap.Logger
	now      func() time.Time
}

type Option func(*Store)

func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithDeviceID(id string) Option {
	return func(s *Store) { s.deviceID = id }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open rehydrates the cart from storage. A missing or unreadable cart starts
// the store empty.
func Open(ctx context.Context, storage Storage, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := storage.Load(ctx)
	switch {
	case err == nil && loaded != nil:
		s.cart = s.sanitize(loaded)
	case err == nil, isNotFound(err):
		s.cart = s.empty()
	default:
		s.logger.Warn("Failed to load cart, starting empty", zap.Error(err))
		s.cart = s.empty()
	}
	return s
}

// AddItem merges quantity units of item into the cart. An existing line keeps
// its unit price; quantities below 1 are ignored.
func (s *Store) AddItem(ctx context.Context, item models.CartItem, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	if i := s.cart.IndexOf(item.ItemID); i >= 0 {
		line := &s.cart.Items[i]
		line.Quantity += quantity
		line.Subtotal = subtotal(line.Price, line.Quantity)
	} else {
		item.Quantity = quantity
		item.Subtotal = subtotal(item.Price, quantity)
		s.cart.Items = append(s.cart.Items, item)
	}
	event := s.commit(ctx, enum.CartEventItemAdded, item.ItemID, quantity)
	s.mu.Unlock()

	s.publish(ctx, event)
}

// RemoveItem deletes the line for itemID; unknown ids are ignored.
func (s *Store) RemoveItem(ctx context.Context, itemID string) {
	s.mu.Lock()
	i := s.cart.IndexOf(itemID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.cart.Items = append(s.cart.Items[:i], s.cart.Items[i+1:]...)
	event := s.commit(ctx, enum.CartEventItemRemoved, itemID, 0)
	s.mu.Unlock()

	s.publish(ctx, event)
}

// SetQuantity replaces the quantity of a line. Zero or negative removes it.
func (s *Store) SetQuantity(ctx context.Context, itemID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, itemID)
		return
	}

	s.mu.Lock()
	i := s.cart.IndexOf(itemID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	line := &s.cart.Items[i]
	line.Quantity = quantity
	line.Subtotal = subtotal(line.Price, quantity)
	event := s.commit(ctx, enum.CartEventQuantitySet, itemID, quantity)
	s.mu.Unlock()

	s.publish(ctx, event)
}

// Clear empties the cart and restarts its creation time.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.cart = s.empty()
	event := s.record(enum.CartEventCleared, "", 0)
	s.save(ctx)
	s.mu.Unlock()

	s.publish(ctx, event)
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return itemCount(s.cart)
}

func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total
}

func (s *Store) Contains(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IndexOf(itemID) >= 0
}

// Snapshot returns a copy of the cart safe to hand to views.
func (s *Store) Snapshot() *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// commit recomputes the total, stamps the cart and persists it. Callers hold mu.
func (s *Store) commit(ctx context.Context, typ enum.CartEventType, itemID string, quantity int) models.CartEvent {
	s.cart.Total = total(s.cart.Items)
	now := s.now()
	s.cart.UpdatedAt = &now
	event := s.record(typ, itemID, quantity)
	s.save(ctx)
	return event
}

func (s *Store) record(typ enum.CartEventType, itemID string, quantity int) models.CartEvent {
	return models.CartEvent{
		ID:         uuid.NewString(),
		Type:       typ,
		DeviceID:   s.deviceID,
		ItemID:     itemID,
		Quantity:   quantity,
		Total:      s.cart.Total,
		ItemCount:  itemCount(s.cart),
		OccurredAt: s.now(),
	}
}

func (s *Store) save(ctx context.Context) {
	if err := s.storage.Save(ctx, s.cart.Clone()); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
	}
}

func (s *Store) publish(ctx context.Context, event models.CartEvent) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Warn("Failed to publish cart event",
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}

func (s *Store) empty() *models.Cart {
	return &models.Cart{
		Items:     make([]models.CartItem, 0),
		CreatedAt: s.now(),
	}
}

// sanitize drops unusable lines from a loaded cart, folds repeated ids into
// their first line (keeping that line's unit price) and rebuilds every
// derived amount.
func (s *Store) sanitize(c *models.Cart) *models.Cart {
	items := make([]models.CartItem, 0, len(c.Items))
	seen := make(map[string]int, len(c.Items))
	for _, it := range c.Items {
		if it.Quantity < 1 || it.ItemID == "" {
			continue
		}
		if i, ok := seen[it.ItemID]; ok {
			items[i].Quantity += it.Quantity
			continue
		}
		seen[it.ItemID] = len(items)
		items = append(items, it)
	}
	for i := range items {
		items[i].Subtotal = subtotal(items[i].Price, items[i].Quantity)
	}
	c.Items = items
	c.Total = total(items)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	return c
}

func subtotal(price float64, quantity int) float64 {
	v, _ := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))).Float64()
	return v
}

func total(items []models.CartItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Subtotal))
	}
	v, _ := sum.Float64()
	return v
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func itemCount(c *models.Cart) int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
