package models

import (
	"time"

	"goflare.io/storefront/models/enum"
)

// CartEvent is emitted after every cart mutation.
type CartEvent struct {
	ID         string             `json:"id"`
	Type       enum.CartEventType `json:"type"`
	DeviceID   string             `json:"device_id"`
	ItemID     string             `json:"item_id,omitempty"`
	Quantity   int                `json:"quantity,omitempty"`
	Total      float64            `json:"total"`
	ItemCount  int                `json:"item_count"`
	OccurredAt time.Time          `json:"occurred_at"`
}
