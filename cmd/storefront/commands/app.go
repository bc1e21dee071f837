package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goflare.io/storefront"
	"goflare.io/storefront/cart"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/config"
	"goflare.io/storefront/currency"
	"goflare.io/storefront/driver"
	"goflare.io/storefront/event"
)

// app holds the connections and the service one command needs.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	svc    storefront.Service

	db      *driver.DB
	redis   *redis.Client
	nats    *nats.Conn
	closers []func()
}

func loadApp(ctx context.Context, opts *rootOptions) (*app, error) {
	cfg, err := config.Load(*opts.configPath)
	if err != nil {
		return nil, err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}
	if err := a.wire(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) wire(ctx context.Context) error {
	repo, err := a.openCatalog(ctx)
	if err != nil {
		return err
	}

	storage, prefs, err := a.openStorage(ctx)
	if err != nil {
		return err
	}

	cartOpts := []cart.Option{cart.WithDeviceID(a.cfg.DeviceID)}
	if a.cfg.NATS.URL != "" {
		conn, err := driver.ConnectNATS(a.cfg.NATS.URL, "storefront-"+a.cfg.DeviceID, a.logger)
		if err != nil {
			return err
		}
		a.nats = conn
		a.closers = append(a.closers, conn.Close)
		cartOpts = append(cartOpts, cart.WithNotifier(event.NewNATSNotifier(conn, a.logger)))
	}

	rates, err := a.cfg.Rates()
	if err != nil {
		return err
	}
	tag, err := a.cfg.Language()
	if err != nil {
		return err
	}

	store := cart.Open(ctx, storage, a.logger, cartOpts...)
	a.svc = storefront.NewService(repo, store,
		currency.NewFormatter(rates, tag),
		currency.NewSelector(prefs, a.logger),
		a.logger)
	a.closers = append(a.closers, a.svc.Close)
	return nil
}

func (a *app) openCatalog(ctx context.Context) (catalog.Repository, error) {
	switch a.cfg.Catalog.Driver {
	case config.CatalogPostgres:
		db, err := a.postgres(ctx)
		if err != nil {
			return nil, err
		}
		if err := catalog.Migrate(ctx, driver.NewTransactionManager(db.Pool, a.logger), a.logger); err != nil {
			return nil, err
		}
		return catalog.NewPostgresRepository(db.Pool, a.logger), nil
	case config.CatalogHTTP:
		client := &http.Client{Timeout: a.cfg.HTTP.RequestTimeout}
		return catalog.NewHTTPSource(a.cfg.Catalog.URL, client, a.logger), nil
	default:
		return catalog.NewStaticRepository(), nil
	}
}

func (a *app) openStorage(ctx context.Context) (cart.Storage, currency.PreferenceStore, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageMemory:
		return cart.NewMemoryStorage(), &currency.MemoryPreferenceStore{}, nil
	case config.StorageRedis:
		client, err := a.redisClient(ctx)
		if err != nil {
			return nil, nil, err
		}
		return cart.NewRedisStorage(client, a.cfg.DeviceID), currency.NewRedisPreferenceStore(client, a.cfg.DeviceID), nil
	case config.StoragePostgres:
		db, err := a.postgres(ctx)
		if err != nil {
			return nil, nil, err
		}
		s := cart.NewPostgresStorage(driver.NewTransactionManager(db.Pool, a.logger), db.Pool, a.cfg.DeviceID, a.logger)
		if err := s.EnsureSchema(ctx); err != nil {
			return nil, nil, err
		}
		return s, currency.NewFilePreferenceStore(a.cfg.Storage.Dir), nil
	default:
		return cart.NewFileStorage(a.cfg.Storage.Dir), currency.NewFilePreferenceStore(a.cfg.Storage.Dir), nil
	}
}

func (a *app) postgres(ctx context.Context) (*driver.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := driver.ConnectSQL(ctx, driver.PoolConfig{
		DSN:             a.cfg.Postgres.DSN,
		MaxConns:        a.cfg.Postgres.MaxConns,
		MaxConnLifetime: a.cfg.Postgres.MaxConnLifetime,
	})
	if err != nil {
		return nil, err
	}
	a.db = db
	a.closers = append(a.closers, db.Pool.Close)
	return db, nil
}

func (a *app) redisClient(ctx context.Context) (*redis.Client, error) {
	if a.redis != nil {
		return a.redis, nil
	}
	client, err := driver.ConnectRedis(ctx, a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	a.redis = client
	a.closers = append(a.closers, func() { _ = client.Close() })
	return client, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
	_ = a.logger.Sync()
}
