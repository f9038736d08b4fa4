// Package cache implements the redis-backed cart cache. The cached copy is
// a display convenience with a short staleness window; the commerce backend
// remains the source of truth and every successful mutation invalidates.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// nonceTTL outlives the cart TTL so mutations issued against a stale cart
// still carry a usable anti-forgery token.
const nonceTTL = 30 * time.Minute

type cartCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Params defines the dependencies for the cart cache.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewCartCache is the constructor for the redis cart cache.
func NewCartCache(params Params) (repository.CartCache, error) {
	if params.Config.Cache == nil {
		return nil, errors.New("cache configuration is required")
	}

	cfg := params.Config.Cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return &cartCache{
		client: client,
		ttl:    cfg.CartTTL,
		logger: params.Logger,
	}, nil
}

// GetCart returns the cached cart for the identity bucket, if fresh.
// Cache failures degrade to a miss; the read falls through to the backend.
func (c *cartCache) GetCart(ctx context.Context, key string) (*entity.Cart, bool) {
	raw, err := c.client.Get(ctx, cartKey(key)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("cart cache read failed", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	cart := &entity.Cart{}
	if err := json.Unmarshal([]byte(raw), cart); err != nil {
		c.logger.Warn("cart cache decode failed", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return cart, true
}

func (c *cartCache) SetCart(ctx context.Context, key string, cart *entity.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, cartKey(key), payload, c.ttl).Err()
}

func (c *cartCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, cartKey(key)).Err()
}

func (c *cartCache) GetNonce(ctx context.Context, key string) (string, bool) {
	nonce, err := c.client.Get(ctx, nonceKey(key)).Result()
	if err != nil || nonce == "" {
		return "", false
	}

	return nonce, true
}

func (c *cartCache) SetNonce(ctx context.Context, key, nonce string) error {
	return c.client.Set(ctx, nonceKey(key), nonce, nonceTTL).Err()
}

func cartKey(key string) string {
	return "storefront:cart:" + key
}

func nonceKey(key string) string {
	return "storefront:nonce:" + key
}
