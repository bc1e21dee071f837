// Package event publishes cart activity on NATS and processes it on the
// consuming side.
package event

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// SubjectPrefix roots every cart subject.
const SubjectPrefix = "storefront."

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Subject returns the NATS subject for a cart event type.
func Subject(t enum.CartEventType) string {
	return SubjectPrefix + string(t)
}

// NATSNotifier sends cart events to NATS. It implements cart.Notifier.
type NATSNotifier struct {
	conn   Publisher
	logger *zap.Logger
}

func NewNATSNotifier(conn Publisher, logger *zap.Logger) *NATSNotifier {
	return &NATSNotifier{
		conn:   conn,
		logger: logger,
	}
}

func (n *NATSNotifier) Notify(_ context.Context, event models.CartEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal cart event: %w", err)
	}

	subject := Subject(event.Type)
	if err := n.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	n.logger.Debug("Cart event published",
		zap.String("subject", subject),
		zap.String("event_id", event.ID))
	return nil
}
