package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/storefront/models/enum"
)

func TestPipeline_MatchesApply(t *testing.T) {
	items := sampleItems()
	p, err := NewPipeline(items, zap.NewNop())
	require.NoError(t, err)
	defer p.Close()

	specs := []Spec{
		{},
		{Category: "A", Sort: enum.SortPriceAsc},
		{Tags: []string{"B"}, Sort: enum.SortDiscountDesc},
		{Query: "nothing like this"},
	}
	for _, spec := range specs {
		assert.Equal(t, ids(Apply(items, spec)), ids(p.Apply(spec)))
	}
}

func TestPipeline_ReusesCachedResult(t *testing.T) {
	p, err := NewPipeline(sampleItems(), zap.NewNop())
	require.NoError(t, err)
	defer p.Close()

	spec := Spec{Category: "A", Sort: enum.SortNameDesc}
	first := p.Apply(spec)
	p.cache.Wait()

	second := p.Apply(spec)
	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, uint64(1), p.cache.Metrics.Hits())

	// callers get their own slice
	second[0].ID = "mutated"
	third := p.Apply(spec)
	assert.NotEqual(t, "mutated", third[0].ID)
}

func TestPipeline_DigestFollowsContent(t *testing.T) {
	a, err := NewPipeline(sampleItems(), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()
	b, err := NewPipeline(sampleItems(), zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, a.Digest(), b.Digest())

	changed := sampleItems()
	changed[0].Price = 1
	c, err := NewPipeline(changed, zap.NewNop())
	require.NoError(t, err)
	defer c.Close()
	assert.NotEqual(t, a.Digest(), c.Digest())
}

func TestPipeline_ResultsShareNoMemory(t *testing.T) {
	items := sampleItems()
	p, err := NewPipeline(items, zap.NewNop())
	require.NoError(t, err)
	defer p.Close()

	spec := Spec{Category: "A"}
	first := p.Apply(spec)
	p.cache.Wait()
	require.Equal(t, "1", first[0].ID)

	*first[0].NewPrice = 1
	*first[0].Rating = 0
	first[0].Tags[0] = "Z"
	// the caller's catalog is not the pipeline's either
	*items[0].NewPrice = 2

	second := p.Apply(spec)
	assert.Equal(t, Apply(sampleItems(), spec), second)
	assert.Equal(t, 80.0, *second[0].NewPrice)
	assert.Equal(t, []string{"A", "B"}, second[0].Tags)

	again := p.Apply(Spec{Tags: []string{"A"}})
	require.Len(t, again, 1)
	assert.Equal(t, 80.0, *again[0].NewPrice)
}
