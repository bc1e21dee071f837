package event

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// Activity logs cart events and keeps per-type counters.
type Activity struct {
	mu     sync.Mutex
	counts map[enum.CartEventType]int
	last   map[string]models.CartEvent
	logger *zap.Logger
}

func NewActivity(logger *zap.Logger) *Activity {
	return &Activity{
		counts: make(map[enum.CartEventType]int),
		last:   make(map[string]models.CartEvent),
		logger: logger,
	}
}

// Register installs the activity handler for every cart event type.
func (a *Activity) Register(em *EventManager) {
	for _, t := range enum.CartEventTypes() {
		em.RegisterHandler(t, a.Handle)
	}
}

func (a *Activity) Handle(_ context.Context, event *models.CartEvent) error {
	a.mu.Lock()
	a.counts[event.Type]++
	a.last[event.DeviceID] = *event
	a.mu.Unlock()

	a.logger.Info("Cart activity",
		zap.String("event_type", string(event.Type)),
		zap.String("device_id", event.DeviceID),
		zap.String("item_id", event.ItemID),
		zap.Int("quantity", event.Quantity),
		zap.Int("item_count", event.ItemCount),
		zap.Float64("total", event.Total))
	return nil
}

func (a *Activity) Count(t enum.CartEventType) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[t]
}

// Last returns the latest event seen for a device.
func (a *Activity) Last(deviceID string) (models.CartEvent, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.last[deviceID]
	return e, ok
}
