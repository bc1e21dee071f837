package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goflare.io/storefront/driver"
	"goflare.io/storefront/models"
)

const (
	listCategoriesSQL = `SELECT id, name, created_at FROM categories ORDER BY id`
	listMarksSQL      = `SELECT name FROM marks ORDER BY position, name`
	listTagsSQL       = `SELECT name FROM tags ORDER BY position, name`
	itemColumns       = `id, ref, image, name, description, mark, category, tags, price, new_price, rating, stock`
	listItemsSQL      = `SELECT ` + itemColumns + ` FROM items ORDER BY position, id`
	getItemSQL        = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
)

var _ Repository = (*postgresRepository)(nil)

type postgresRepository struct {
	conn   driver.Querier
	logger *zap.Logger
}

// NewPostgresRepository reads the catalog from the categories, marks, tags
// and items tables. It never writes.
func NewPostgresRepository(conn driver.Querier, logger *zap.Logger) Repository {
	return &postgresRepository{
		conn:   conn,
		logger: logger,
	}
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.conn.Query(ctx, listCategoriesSQL)
	if err != nil {
		r.logger.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		var c models.Category
		err := row.Scan(&c.ID, &c.Name, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		r.logger.Error("Failed to scan categories", zap.Error(err))
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return categories, nil
}

func (r *postgresRepository) ListMarks(ctx context.Context) ([]models.Mark, error) {
	names, err := r.listNames(ctx, listMarksSQL)
	if err != nil {
		r.logger.Error("Failed to list marks", zap.Error(err))
		return nil, fmt.Errorf("failed to list marks: %w", err)
	}
	marks := make([]models.Mark, 0, len(names))
	for _, n := range names {
		marks = append(marks, models.Mark{Name: n})
	}
	return marks, nil
}

func (r *postgresRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	names, err := r.listNames(ctx, listTagsSQL)
	if err != nil {
		r.logger.Error("Failed to list tags", zap.Error(err))
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	tags := make([]models.Tag, 0, len(names))
	for _, n := range names {
		tags = append(tags, models.Tag{Name: n})
	}
	return tags, nil
}

func (r *postgresRepository) ListItems(ctx context.Context) ([]models.Product, error) {
	rows, err := r.conn.Query(ctx, listItemsSQL)
	if err != nil {
		r.logger.Error("Failed to list items", zap.Error(err))
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		r.logger.Error("Failed to scan items", zap.Error(err))
		return nil, fmt.Errorf("failed to scan items: %w", err)
	}
	return items, nil
}

func (r *postgresRepository) GetItem(ctx context.Context, id string) (*models.Product, error) {
	rows, err := r.conn.Query(ctx, getItemSQL, id)
	if err != nil {
		r.logger.Error("Failed to get item", zap.String("item_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		r.logger.Error("Failed to scan item", zap.String("item_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to scan item: %w", err)
	}
	return &item, nil
}

func (r *postgresRepository) listNames(ctx context.Context, query string) ([]string, error) {
	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func scanProduct(row pgx.CollectableRow) (models.Product, error) {
	var (
		p    models.Product
		ref  *string
		mark *string
	)
	err := row.Scan(&p.ID, &ref, &p.Image, &p.Name, &p.Description, &mark, &p.Category,
		&p.Tags, &p.Price, &p.NewPrice, &p.Rating, &p.Stock)
	if ref != nil {
		p.Ref = *ref
	}
	if mark != nil {
		p.Mark = *mark
	}
	return p, err
}
