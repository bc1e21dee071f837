package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"goflare.io/storefront/models"
)

var _ Repository = (*httpSource)(nil)

type httpSource struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPSource reads the catalog from the JSON endpoints served under
// baseURL. Every call is a single request: there is no retry. A failed list
// fetch is logged and yields an empty list.
func NewHTTPSource(baseURL string, client *http.Client, logger *zap.Logger) Repository {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

func (s *httpSource) ListCategories(ctx context.Context) ([]models.Category, error) {
	return fetchList[models.Category](ctx, s, "/api/categories"), nil
}

func (s *httpSource) ListMarks(ctx context.Context) ([]models.Mark, error) {
	return fetchList[models.Mark](ctx, s, "/api/marks"), nil
}

func (s *httpSource) ListTags(ctx context.Context) ([]models.Tag, error) {
	return fetchList[models.Tag](ctx, s, "/api/tags"), nil
}

func (s *httpSource) ListItems(ctx context.Context) ([]models.Product, error) {
	return fetchList[models.Product](ctx, s, "/api/items"), nil
}

func (s *httpSource) GetItem(ctx context.Context, id string) (*models.Product, error) {
	var item models.Product
	status, err := s.get(ctx, "/api/items/"+url.PathEscape(id), &item)
	if status == http.StatusNotFound {
		return nil, ErrItemNotFound
	}
	if err != nil {
		s.logger.Error("Failed to fetch item", zap.String("item_id", id), zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func fetchList[T any](ctx context.Context, s *httpSource, path string) []T {
	var out []T
	if _, err := s.get(ctx, path, &out); err != nil {
		s.logger.Error("Failed to fetch catalog", zap.String("path", path), zap.Error(err))
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

func (s *httpSource) get(ctx context.Context, path string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return resp.StatusCode, nil
}
