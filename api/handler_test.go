package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"

	"goflare.io/storefront"
	"goflare.io/storefront/cart"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/currency"
	"goflare.io/storefront/filter"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

func newTestServer(t *testing.T, c Catalog, logger *zap.Logger) *httptest.Server {
	t.Helper()
	h := NewHandler(c, 5*time.Second, logger)
	srv := httptest.NewServer(NewRouter(h, logger, 5*time.Second))
	t.Cleanup(srv.Close)
	return srv
}

func newStaticService(t *testing.T) storefront.Service {
	t.Helper()
	logger := zap.NewNop()
	svc := storefront.NewService(
		catalog.NewStaticRepository(),
		cart.Open(context.Background(), cart.NewMemoryStorage(), logger),
		currency.NewFormatter(nil, language.English),
		currency.NewSelector(&currency.MemoryPreferenceStore{}, logger),
		logger)
	t.Cleanup(svc.Close)
	return svc
}

func getJSON(t *testing.T, rawURL string, out any) int {
	t.Helper()
	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandler_Listings(t *testing.T) {
	srv := newTestServer(t, newStaticService(t), zap.NewNop())

	var categories []models.Category
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/categories", &categories))
	assert.Len(t, categories, 5)

	var marks []models.Mark
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/marks", &marks))
	assert.Len(t, marks, 4)

	var tags []models.Tag
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/tags", &tags))
	assert.Len(t, tags, 5)

	var items []models.Product
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/items", &items))
	assert.Len(t, items, 25)

	var health map[string]string
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/healthz", &health))
	assert.Equal(t, "ok", health["status"])
}

func TestHandler_FilteredItems(t *testing.T) {
	srv := newTestServer(t, newStaticService(t), zap.NewNop())

	var items []models.Product
	status := getJSON(t, srv.URL+"/api/items?category=A&sort=price-asc&max=500", &items)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, items)
	for i, p := range items {
		assert.Equal(t, "A", p.Category)
		assert.LessOrEqual(t, p.Price, 500.0)
		if i > 0 {
			assert.LessOrEqual(t, items[i-1].Price, p.Price)
		}
	}
}

func TestHandler_GetItem(t *testing.T) {
	srv := newTestServer(t, newStaticService(t), zap.NewNop())

	var item models.Product
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/items/1", &item))
	assert.Equal(t, "Blanchiment Dentaire", item.Name)

	var errResp ErrorResponse
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/api/items/999", &errResp))
	assert.Equal(t, "item_not_found", errResp.Code)
}

func TestHandler_Facets(t *testing.T) {
	srv := newTestServer(t, newStaticService(t), zap.NewNop())

	var f filter.Facets
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/facets", &f))
	assert.Len(t, f.Categories, 5)
	assert.NotEmpty(t, f.Marks)
	assert.Less(t, f.Price.Min, f.Price.Max)
}

func TestHandler_BadFilter(t *testing.T) {
	srv := newTestServer(t, newStaticService(t), zap.NewNop())

	for _, q := range []string{"sort=cheapest", "min=abc", "max=-1", "min=10&max=5"} {
		var errResp ErrorResponse
		assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/api/items?"+q, &errResp), q)
		assert.Equal(t, "invalid_filter", errResp.Code)
	}
}

func TestHandler_NoWriteRoutes(t *testing.T) {
	srv := newTestServer(t, newStaticService(t), zap.NewNop())

	resp, err := http.Post(srv.URL+"/api/items", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

type failingCatalog struct {
	Catalog
}

func (failingCatalog) ListCategories(context.Context) ([]models.Category, error) {
	return nil, errors.New("database is down")
}

func TestHandler_InternalErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	srv := newTestServer(t, failingCatalog{}, zap.New(core))

	var errResp ErrorResponse
	assert.Equal(t, http.StatusInternalServerError, getJSON(t, srv.URL+"/api/categories", &errResp))
	assert.Equal(t, 1, logs.FilterMessage("Failed to serve categories").Len())

	requests := logs.FilterMessage("HTTP request").All()
	require.Len(t, requests, 1)
	assert.Equal(t, int64(http.StatusInternalServerError), requests[0].ContextMap()["status"])
}

func TestHTTPSourceAgainstRouter(t *testing.T) {
	srv := newTestServer(t, newStaticService(t), zap.NewNop())
	src := catalog.NewHTTPSource(srv.URL, srv.Client(), zap.NewNop())
	ctx := context.Background()

	items, err := src.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 25)

	item, err := src.GetItem(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Implant Dentaire", item.Name)

	_, err = src.GetItem(ctx, "nope")
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
}

func TestParseSpec(t *testing.T) {
	spec, err := ParseSpec(url.Values{
		"category": {"B"},
		"mark":     {"Premium,Luxury", "Basic"},
		"tag":      {"D"},
		"q":        {"implant"},
		"sort":     {"rating-desc"},
		"min":      {"100"},
	})
	require.NoError(t, err)
	assert.Equal(t, "B", spec.Category)
	assert.Equal(t, []string{"Premium", "Luxury", "Basic"}, spec.Marks)
	assert.Equal(t, []string{"D"}, spec.Tags)
	assert.Equal(t, "implant", spec.Query)
	assert.Equal(t, enum.SortRatingDesc, spec.Sort)
	require.NotNil(t, spec.Price)
	assert.Equal(t, 100.0, spec.Price.Min)
	assert.Equal(t, math.MaxFloat64, spec.Price.Max)

	empty, err := ParseSpec(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, filter.Spec{}, empty)
}
