package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/storefront/models"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := NewStaticRepository()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/items", func(w http.ResponseWriter, r *http.Request) {
		items, _ := repo.ListItems(r.Context())
		_ = json.NewEncoder(w).Encode(items)
	})
	mux.HandleFunc("/api/items/", func(w http.ResponseWriter, r *http.Request) {
		item, err := repo.GetItem(r.Context(), r.URL.Path[len("/api/items/"):])
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(item)
	})
	mux.HandleFunc("/api/marks", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_ListItems(t *testing.T) {
	srv := newCatalogServer(t)
	src := NewHTTPSource(srv.URL+"/", srv.Client(), zap.NewNop())

	items, err := src.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 25)
	assert.Equal(t, "Implant Dentaire", items[1].Name)
	assert.Equal(t, []string{"B", "D"}, items[1].Tags)
}

func TestHTTPSource_GetItem(t *testing.T) {
	srv := newCatalogServer(t)
	src := NewHTTPSource(srv.URL, srv.Client(), zap.NewNop())

	item, err := src.GetItem(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Orthodontie Invisible", item.Name)

	_, err = src.GetItem(context.Background(), "999")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestHTTPSource_FailedFetchDegradesToEmpty(t *testing.T) {
	srv := newCatalogServer(t)
	src := NewHTTPSource(srv.URL, srv.Client(), zap.NewNop())
	ctx := context.Background()

	marks, err := src.ListMarks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Mark{}, marks)

	tags, err := src.ListTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)

	categories, err := src.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	src := NewHTTPSource(url, nil, zap.NewNop())
	items, err := src.ListItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
