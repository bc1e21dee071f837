package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goflare.io/storefront/driver"
	"goflare.io/storefront/models"
)

const (
	createCartsTable = `
CREATE TABLE IF NOT EXISTS carts (
    device_id  TEXT PRIMARY KEY,
    body       JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

	selectCart = `SELECT body FROM carts WHERE device_id = $1`

	upsertCart = `
INSERT INTO carts (device_id, body, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (device_id) DO UPDATE
SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`
)

var _ Storage = (*PostgresStorage)(nil)

// PostgresStorage keeps one JSONB row per device in the carts table.
type PostgresStorage struct {
	tm       *driver.TransactionManager
	conn     driver.Querier
	deviceID string
	logger   *zap.Logger
}

func NewPostgresStorage(tm *driver.TransactionManager, conn driver.Querier, deviceID string, logger *zap.Logger) *PostgresStorage {
	return &PostgresStorage{
		tm:       tm,
		conn:     conn,
		deviceID: deviceID,
		logger:   logger,
	}
}

// EnsureSchema creates the carts table when missing.
func (p *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := p.conn.Exec(ctx, createCartsTable); err != nil {
		return fmt.Errorf("failed to create carts table: %w", err)
	}
	return nil
}

func (p *PostgresStorage) Load(ctx context.Context) (*models.Cart, error) {
	var body []byte
	err := p.conn.QueryRow(ctx, selectCart, p.deviceID).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(body, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &cart, nil
}

func (p *PostgresStorage) Save(ctx context.Context, cart *models.Cart) error {
	body, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	return p.tm.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, upsertCart, p.deviceID, string(body)); err != nil {
			p.logger.Error("Failed to upsert cart", zap.String("device_id", p.deviceID), zap.Error(err))
			return fmt.Errorf("failed to save cart: %w", err)
		}
		return nil
	})
}
