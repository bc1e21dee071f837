// Package api serves the read-only catalog as JSON.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"goflare.io/storefront/catalog"
	"goflare.io/storefront/filter"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// Catalog is the part of the storefront service the endpoints read from.
type Catalog interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListMarks(ctx context.Context) ([]models.Mark, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	Item(ctx context.Context, id string) (*models.Product, error)
	Browse(ctx context.Context, spec filter.Spec) ([]models.Product, error)
	Facets(ctx context.Context) (filter.Facets, error)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type Handler struct {
	catalog Catalog
	timeout time.Duration
	logger  *zap.Logger
}

func NewHandler(catalog Catalog, timeout time.Duration, logger *zap.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		timeout: timeout,
		logger:  logger,
	}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categories, err := h.catalog.ListCategories(ctx)
	if err != nil {
		h.internalError(w, "categories", err)
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

func (h *Handler) ListMarks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	marks, err := h.catalog.ListMarks(ctx)
	if err != nil {
		h.internalError(w, "marks", err)
		return
	}
	h.respondJSON(w, http.StatusOK, marks)
}

func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	tags, err := h.catalog.ListTags(ctx)
	if err != nil {
		h.internalError(w, "tags", err)
		return
	}
	h.respondJSON(w, http.StatusOK, tags)
}

// ListItems returns the catalog filtered by the query string.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	spec, err := ParseSpec(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_filter", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	items, err := h.catalog.Browse(ctx, spec)
	if err != nil {
		h.internalError(w, "items", err)
		return
	}
	h.respondJSON(w, http.StatusOK, items)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	item, err := h.catalog.Item(ctx, id)
	if errors.Is(err, catalog.ErrItemNotFound) {
		h.respondError(w, http.StatusNotFound, "item_not_found", "no item with id "+id)
		return
	}
	if err != nil {
		h.internalError(w, "item", err)
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

func (h *Handler) Facets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	facets, err := h.catalog.Facets(ctx)
	if err != nil {
		h.internalError(w, "facets", err)
		return
	}
	h.respondJSON(w, http.StatusOK, facets)
}

// ParseSpec reads a filter selection from query parameters: category, min,
// max, mark and tag (both repeatable or comma separated), q and sort.
func ParseSpec(q url.Values) (filter.Spec, error) {
	spec := filter.Spec{
		Category: strings.TrimSpace(q.Get("category")),
		Marks:    multi(q, "mark"),
		Tags:     multi(q, "tag"),
		Query:    q.Get("q"),
		Sort:     enum.SortOption(q.Get("sort")),
	}

	if !spec.Sort.Valid() {
		return filter.Spec{}, errors.New("unknown sort option " + strconv.Quote(string(spec.Sort)))
	}

	minRaw, maxRaw := q.Get("min"), q.Get("max")
	if minRaw != "" || maxRaw != "" {
		r := filter.PriceRange{Min: filter.DefaultMinPrice, Max: math.MaxFloat64}
		var err error
		if minRaw != "" {
			if r.Min, err = parsePrice(minRaw); err != nil {
				return filter.Spec{}, errors.New("invalid min price")
			}
		}
		if maxRaw != "" {
			if r.Max, err = parsePrice(maxRaw); err != nil {
				return filter.Spec{}, errors.New("invalid max price")
			}
		}
		if r.Min > r.Max {
			return filter.Spec{}, errors.New("min price is above max price")
		}
		spec.Price = &r
	}
	return spec, nil
}

func parsePrice(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, errors.New("price out of range")
	}
	return v, nil
}

func multi(q url.Values, key string) []string {
	var out []string
	for _, v := range q[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (h *Handler) internalError(w http.ResponseWriter, what string, err error) {
	h.logger.Error("Failed to serve "+what, zap.Error(err))
	h.respondError(w, http.StatusInternalServerError, "internal", "failed to load "+what)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, code, details string) {
	h.respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Code:    code,
		Details: details,
	})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("Failed to encode response", zap.Error(err))
	}
}
