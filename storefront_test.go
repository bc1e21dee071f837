package storefront

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"goflare.io/storefront/cart"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/currency"
	"goflare.io/storefront/filter"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

func price(v float64) *float64 { return &v }

func testItems() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Blanchiment", Category: "A", Mark: "Premium", Price: 100, NewPrice: price(80)},
		{ID: "2", Name: "Implant", Category: "B", Mark: "Standard", Price: 450},
		{ID: "3", Name: "Détartrage", Category: "A", Mark: "Premium", Price: 230, NewPrice: price(115)},
	}
}

func newTestService(t *testing.T, repo catalog.Repository) Service {
	t.Helper()
	logger := zap.NewNop()
	store := cart.Open(context.Background(), cart.NewMemoryStorage(), logger)
	svc := NewService(repo, store,
		currency.NewFormatter(currency.DefaultRates(), language.English),
		currency.NewSelector(&currency.MemoryPreferenceStore{}, logger),
		logger)
	t.Cleanup(svc.Close)
	return svc
}

func ids(items []models.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func TestService_Browse(t *testing.T) {
	repo := catalog.NewStaticRepositoryFrom(nil, nil, nil, testItems())
	svc := newTestService(t, repo)
	ctx := context.Background()

	all, err := svc.Browse(ctx, filter.Spec{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(all))

	got, err := svc.Browse(ctx, filter.Spec{Category: "A", Sort: enum.SortDiscountDesc})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids(got))
}

type mutableCatalog struct {
	catalog.Repository
	items []models.Product
}

func (m *mutableCatalog) ListItems(context.Context) ([]models.Product, error) {
	return m.items, nil
}

func TestService_BrowseFollowsCatalogChanges(t *testing.T) {
	repo := &mutableCatalog{Repository: catalog.NewStaticRepository(), items: testItems()}
	svc := newTestService(t, repo)
	ctx := context.Background()

	got, err := svc.Browse(ctx, filter.Spec{Category: "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(got))

	repo.items = append(testItems(), models.Product{ID: "4", Name: "Couronne", Category: "B", Price: 300})
	got, err = svc.Browse(ctx, filter.Spec{Category: "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4"}, ids(got))
}

// alternatingCatalog serves two catalog versions in turn.
type alternatingCatalog struct {
	catalog.Repository
	calls atomic.Int64
}

func (a *alternatingCatalog) ListItems(context.Context) ([]models.Product, error) {
	if a.calls.Add(1)%2 == 0 {
		return testItems(), nil
	}
	return append(testItems(), models.Product{ID: "4", Name: "Couronne", Category: "B", Price: 300}), nil
}

func TestService_BrowseDuringCatalogChurn(t *testing.T) {
	svc := newTestService(t, &alternatingCatalog{Repository: catalog.NewStaticRepository()})
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan []string, 8*25)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				got, err := svc.Browse(ctx, filter.Spec{Category: "B"})
				if err != nil {
					t.Error(err)
					return
				}
				results <- ids(got)
			}
		}()
	}
	wg.Wait()
	close(results)

	for got := range results {
		assert.Contains(t, [][]string{{"2"}, {"2", "4"}}, got)
	}
}

func TestService_Facets(t *testing.T) {
	categories := []models.Category{{ID: "A", Name: "Soins Préventifs"}}
	svc := newTestService(t, catalog.NewStaticRepositoryFrom(categories, nil, nil, testItems()))

	f, err := svc.Facets(context.Background())
	require.NoError(t, err)
	require.Len(t, f.Categories, 2)
	assert.Equal(t, "Soins Préventifs", f.Categories[0].Name)
	assert.Equal(t, 2, f.Categories[0].Count)
	assert.Equal(t, "Catégorie B", f.Categories[1].Name)
	assert.Equal(t, filter.PriceRange{Min: 100, Max: 450}, f.Price)
}

func TestService_ResetFilters(t *testing.T) {
	svc := newTestService(t, catalog.NewStaticRepositoryFrom(nil, nil, nil, testItems()))

	spec, err := svc.ResetFilters(context.Background())
	require.NoError(t, err)
	require.NotNil(t, spec.Price)
	assert.Equal(t, filter.PriceRange{Min: 100, Max: 450}, *spec.Price)
}

func TestService_AddToCart(t *testing.T) {
	svc := newTestService(t, catalog.NewStaticRepositoryFrom(nil, nil, nil, testItems()))
	ctx := context.Background()

	c, err := svc.AddToCart(ctx, "1", 2)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 80.0, c.Items[0].Price)
	assert.Equal(t, 160.0, c.Total)

	_, err = svc.AddToCart(ctx, "404", 1)
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
	assert.Equal(t, 2, svc.Cart().ItemCount())
}

func TestService_Currency(t *testing.T) {
	svc := newTestService(t, catalog.NewStaticRepository())
	ctx := context.Background()

	assert.Equal(t, stripe.CurrencyDZD, svc.Currency(ctx))
	assert.Equal(t, "100 DA", svc.Price(100, string(svc.Currency(ctx))))

	_, err := svc.SelectCurrency(ctx, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "0.68 €", svc.Price(100, string(svc.Currency(ctx))))
}

func TestService_StaticCatalog(t *testing.T) {
	svc := newTestService(t, catalog.NewStaticRepository())
	ctx := context.Background()

	items, err := svc.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 25)

	item, err := svc.Item(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Blanchiment Dentaire", item.Name)
}
