package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// SubscribeSubject matches every cart event.
const SubscribeSubject = SubjectPrefix + "cart.>"

type EventHandler func(context.Context, *models.CartEvent) error

// EventManager routes cart events from NATS to handlers registered per event
// type. It implements EventProcessor.
type EventManager struct {
	natsConn *nats.Conn
	repo     Repository
	mu       sync.RWMutex
	handlers map[enum.CartEventType]EventHandler
	logger   *zap.Logger
}

func NewEventManager(natsConn *nats.Conn, repo Repository, logger *zap.Logger) *EventManager {
	return &EventManager{
		natsConn: natsConn,
		repo:     repo,
		handlers: make(map[enum.CartEventType]EventHandler),
		logger:   logger,
	}
}

func (em *EventManager) RegisterHandler(eventType enum.CartEventType, handler EventHandler) {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.handlers[eventType] = handler
}

func (em *EventManager) GetHandler(eventType enum.CartEventType) (EventHandler, bool) {
	em.mu.RLock()
	defer em.mu.RUnlock()
	handler, exists := em.handlers[eventType]
	return handler, exists
}

func (em *EventManager) SubscribeToEvents(wp *WorkerPool) (*nats.Subscription, error) {
	sub, err := em.natsConn.Subscribe(SubscribeSubject, func(msg *nats.Msg) {
		em.dispatch(msg, wp)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", SubscribeSubject, err)
	}
	return sub, nil
}

func (em *EventManager) dispatch(msg *nats.Msg, wp *WorkerPool) {
	var event models.CartEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		em.logger.Error("Failed to unmarshal event", zap.String("subject", msg.Subject), zap.Error(err))
		return
	}
	wp.Submit(context.Background(), &event)
}

func (em *EventManager) ProcessEvent(ctx context.Context, event *models.CartEvent) error {
	handler, exists := em.GetHandler(event.Type)
	if !exists {
		return fmt.Errorf("no handler registered for event type: %s", event.Type)
	}

	if em.repo != nil && event.ID != "" {
		fresh, err := em.repo.MarkProcessed(ctx, event.ID)
		if err != nil {
			em.logger.Warn("Failed to record event", zap.String("event_id", event.ID), zap.Error(err))
		} else if !fresh {
			em.logger.Info("Event already processed", zap.String("event_id", event.ID))
			return nil
		}
	}

	if err := handler(ctx, event); err != nil {
		return fmt.Errorf("failed to handle %s: %w", event.Type, err)
	}
	return nil
}
