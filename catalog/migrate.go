package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goflare.io/storefront/driver"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS marks (
	name     TEXT PRIMARY KEY,
	position INT NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS tags (
	name     TEXT PRIMARY KEY,
	position INT NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS items (
	id          TEXT PRIMARY KEY,
	ref         TEXT,
	image       TEXT NOT NULL DEFAULT '',
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	mark        TEXT,
	category    TEXT NOT NULL,
	tags        TEXT[] NOT NULL DEFAULT '{}',
	price       DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	new_price   DOUBLE PRECISION,
	rating      DOUBLE PRECISION,
	stock       INT,
	position    INT NOT NULL DEFAULT 0
);`

// Migrate creates the catalog tables and loads the built-in catalog when the
// items table is empty.
func Migrate(ctx context.Context, tm *driver.TransactionManager, logger *zap.Logger) error {
	return tm.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, schemaSQL); err != nil {
			return fmt.Errorf("failed to create catalog schema: %w", err)
		}

		var count int
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM items`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count items: %w", err)
		}
		if count > 0 {
			logger.Info("Catalog already seeded", zap.Int("items", count))
			return nil
		}

		batch := &pgx.Batch{}
		for _, c := range seedCategories {
			batch.Queue(`INSERT INTO categories (id, name, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
				c.ID, c.Name, c.CreatedAt)
		}
		for i, m := range seedMarks {
			batch.Queue(`INSERT INTO marks (name, position) VALUES ($1, $2) ON CONFLICT DO NOTHING`, m.Name, i)
		}
		for i, t := range seedTags {
			batch.Queue(`INSERT INTO tags (name, position) VALUES ($1, $2) ON CONFLICT DO NOTHING`, t.Name, i)
		}
		for i, p := range seedItems {
			batch.Queue(`INSERT INTO items (`+itemColumns+`, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
				p.ID, p.Ref, p.Image, p.Name, p.Description, p.Mark, p.Category,
				p.Tags, p.Price, p.NewPrice, p.Rating, p.Stock, i)
		}

		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return fmt.Errorf("failed to seed catalog: %w", err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to close seed batch: %w", err)
		}

		logger.Info("Catalog seeded", zap.Int("items", len(seedItems)))
		return nil
	})
}
