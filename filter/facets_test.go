package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goflare.io/storefront/models"
)

func TestBuildFacets(t *testing.T) {
	categories := []models.Category{{ID: "A", Name: "Soins Préventifs"}}

	facets := BuildFacets(sampleItems(), categories)

	assert.Equal(t, []models.CategoryCount{
		{ID: "A", Name: "Soins Préventifs", Count: 3},
		{ID: "B", Name: "Catégorie B", Count: 1},
		{ID: "E", Name: "Catégorie E", Count: 1},
	}, facets.Categories)
	assert.Equal(t, []models.MarkCount{
		{ID: "Premium", Name: "Premium", Count: 2},
		{ID: "Standard", Name: "Standard", Count: 1},
		{ID: "Basic", Name: "Basic", Count: 1},
	}, facets.Marks)
	assert.Equal(t, PriceRange{Min: 60, Max: 450}, facets.Price)
}

func TestBuildFacets_Empty(t *testing.T) {
	facets := BuildFacets(nil, nil)
	assert.Empty(t, facets.Categories)
	assert.Empty(t, facets.Marks)
	assert.Equal(t, PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice}, facets.Price)
}
