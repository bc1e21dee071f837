package filter

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"

	"goflare.io/storefront/models"
)

const (
	pipelineCounters = 1e4
	pipelineMaxCost  = 1 << 20
	pipelineBuffer   = 64
)

// Pipeline memoizes Apply over a fixed catalog. Results are keyed by a
// content hash of the catalog and the spec, so a Pipeline built from an
// equal catalog yields equal keys.
type Pipeline struct {
	items  []models.Product
	digest uint64
	cache  *ristretto.Cache
	logger *zap.Logger
}

// Digest hashes the JSON form of a catalog.
func Digest(items []models.Product) (uint64, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return 0, fmt.Errorf("failed to hash catalog: %w", err)
	}
	return xxhash.Sum64(raw), nil
}

func NewPipeline(items []models.Product, logger *zap.Logger) (*Pipeline, error) {
	digest, err := Digest(items)
	if err != nil {
		return nil, err
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: pipelineCounters,
		MaxCost:     pipelineMaxCost,
		BufferItems: pipelineBuffer,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline cache: %w", err)
	}

	return &Pipeline{
		items:  models.CloneProducts(items),
		digest: digest,
		cache:  cache,
		logger: logger,
	}, nil
}

// Digest is the content hash of the catalog.
func (p *Pipeline) Digest() uint64 {
	return p.digest
}

// Apply behaves like the package-level Apply, reusing a previous result for
// an identical spec when one is cached. Callers own the returned products.
func (p *Pipeline) Apply(spec Spec) []models.Product {
	key, err := p.key(spec)
	if err != nil {
		p.logger.Warn("Failed to hash filter spec", zap.Error(err))
		return models.CloneProducts(Apply(p.items, spec))
	}

	if v, found := p.cache.Get(key); found {
		if cached, ok := v.([]models.Product); ok {
			return models.CloneProducts(cached)
		}
	}

	result := Apply(p.items, spec)
	p.cache.Set(key, result, int64(len(result))+1)
	return models.CloneProducts(result)
}

func (p *Pipeline) Close() {
	p.cache.Close()
}

func (p *Pipeline) key(spec Spec) (uint64, error) {
	raw, err := json.Marshal(spec)
	if err != nil {
		return 0, err
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], p.digest)

	h := xxhash.New()
	_, _ = h.Write(buf[:])
	_, _ = h.Write(raw)
	return h.Sum64(), nil
}
