package currency

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"
)

// PreferenceKey is the storage key of the selected currency.
const PreferenceKey = "selectedCurrency"

var ErrNoPreference = errors.New("no currency preference")

// PreferenceStore persists the shopper's selected currency.
type PreferenceStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, code string) error
}

// Selector reads and writes the selected currency, falling back to Default
// whenever the stored value is missing, unreadable or unsupported.
type Selector struct {
	store  PreferenceStore
	logger *zap.Logger
}

func NewSelector(store PreferenceStore, logger *zap.Logger) *Selector {
	return &Selector{store: store, logger: logger}
}

func (s *Selector) Selected(ctx context.Context) stripe.Currency {
	code, err := s.store.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoPreference) {
			s.logger.Warn("Failed to load currency preference", zap.Error(err))
		}
		return Default
	}
	cur, ok := Parse(code)
	if !ok {
		s.logger.Warn("Ignoring unsupported currency preference", zap.String("currency", code))
		return Default
	}
	return cur
}

// Select stores code after validating it.
func (s *Selector) Select(ctx context.Context, code string) (stripe.Currency, error) {
	cur, ok := Parse(code)
	if !ok {
		return "", fmt.Errorf("unsupported currency %q", code)
	}
	if err := s.store.Set(ctx, string(cur)); err != nil {
		s.logger.Error("Failed to save currency preference", zap.Error(err))
		return cur, fmt.Errorf("failed to save currency preference: %w", err)
	}
	return cur, nil
}

var _ PreferenceStore = (*RedisPreferenceStore)(nil)

// RedisPreferenceStore keeps the preference under a per-device key.
type RedisPreferenceStore struct {
	client *redis.Client
	key    string
}

func NewRedisPreferenceStore(client *redis.Client, deviceID string) *RedisPreferenceStore {
	return &RedisPreferenceStore{
		client: client,
		key:    fmt.Sprintf("storefront:%s:%s", deviceID, PreferenceKey),
	}
}

func (r *RedisPreferenceStore) Get(ctx context.Context) (string, error) {
	v, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoPreference
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return v, nil
}

func (r *RedisPreferenceStore) Set(ctx context.Context, code string) error {
	if err := r.client.Set(ctx, r.key, code, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

var _ PreferenceStore = (*MemoryPreferenceStore)(nil)

type MemoryPreferenceStore struct {
	mu   sync.Mutex
	code string
}

func (m *MemoryPreferenceStore) Get(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.code == "" {
		return "", ErrNoPreference
	}
	return m.code, nil
}

func (m *MemoryPreferenceStore) Set(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.code = code
	return nil
}

var _ PreferenceStore = (*FilePreferenceStore)(nil)

// FilePreferenceStore keeps the code in a small file next to the cart.
type FilePreferenceStore struct {
	path string
}

func NewFilePreferenceStore(dir string) *FilePreferenceStore {
	return &FilePreferenceStore{path: filepath.Join(dir, PreferenceKey)}
}

func (f *FilePreferenceStore) Get(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoPreference
	}
	if err != nil {
		return "", fmt.Errorf("failed to read currency preference: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *FilePreferenceStore) Set(_ context.Context, code string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preference dir: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(code+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write currency preference: %w", err)
	}
	return nil
}
