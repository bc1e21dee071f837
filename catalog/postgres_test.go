package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRows replays fixed rows; each row holds values assignable to the
// scan destinations.
type fakeRows struct {
	pgx.Rows
	data [][]any
	pos  int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		if row[i] == nil {
			continue
		}
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Close() {}
func (r *fakeRows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag("SELECT")
}

type fakeQuerier struct {
	results map[string][][]any
	err     error
}

func (q *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("read-only")
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	if q.err != nil {
		return nil, q.err
	}
	return &fakeRows{data: q.results[sql]}, nil
}

func (q *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func strPtr(s string) *string { return &s }

func itemRow(id, name string, price float64, newPrice *float64) []any {
	return []any{id, strPtr("ABD-" + id), "", name, "desc", strPtr("Premium"), "A",
		[]string{"A"}, price, newPrice, ptr(4.5), intPtr(3)}
}

func TestPostgresRepository_Lists(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	q := &fakeQuerier{results: map[string][][]any{
		listCategoriesSQL: {{"A", "Soins Préventifs", created}},
		listMarksSQL:      {{"Premium"}, {"Basic"}},
		listTagsSQL:       {{"A"}},
		listItemsSQL:      {itemRow("1", "Blanchiment", 100, ptr(80)), itemRow("2", "Implant", 450, nil)},
	}}
	repo := NewPostgresRepository(q, zap.NewNop())
	ctx := context.Background()

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Soins Préventifs", categories[0].Name)
	assert.Equal(t, created, categories[0].CreatedAt)

	marks, err := repo.ListMarks(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Basic", marks[1].Name)

	tags, err := repo.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "ABD-1", items[0].Ref)
	assert.Equal(t, "Premium", items[0].Mark)
	assert.Equal(t, 80.0, items[0].EffectivePrice())
	assert.Nil(t, items[1].NewPrice)
	assert.Equal(t, 3, *items[1].Stock)
}

func TestPostgresRepository_GetItem(t *testing.T) {
	q := &fakeQuerier{results: map[string][][]any{
		getItemSQL: {itemRow("1", "Blanchiment", 100, ptr(80))},
	}}
	repo := NewPostgresRepository(q, zap.NewNop())

	item, err := repo.GetItem(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Blanchiment", item.Name)

	_, err = NewPostgresRepository(&fakeQuerier{}, zap.NewNop()).GetItem(context.Background(), "9")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestPostgresRepository_QueryError(t *testing.T) {
	repo := NewPostgresRepository(&fakeQuerier{err: errors.New("connection refused")}, zap.NewNop())

	_, err := repo.ListItems(context.Background())
	assert.Error(t, err)
	_, err = repo.ListMarks(context.Background())
	assert.Error(t, err)
}
