package fx

import (
	"context"
	"errors"
	"fmt"
	"log"
	"shipping-quote-service/internal/platform/obs"
	"shipping-quote-service/internal/ports"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RedisFXCache caches multipliers from an upstream FXProvider in Redis with
// a TTL, so many quote requests share one upstream lookup. Cache failures
// degrade to the upstream provider rather than failing the request.
type RedisFXCache struct {
	Client *redis.Client
	Next   ports.FXProvider
	TTL    time.Duration
}

func NewRedisFXCache(client *redis.Client, next ports.FXProvider, ttl time.Duration) *RedisFXCache {
	return &RedisFXCache{Client: client, Next: next, TTL: ttl}
}

func (c *RedisFXCache) Multiplier(ctx context.Context, currency string) (_ decimal.Decimal, err error) {
	defer obs.Time(ctx, "fx.cache.Multiplier")(&err)

	if c.Client == nil {
		return decimal.Decimal{}, errors.New("fx cache: redis client is nil")
	}
	if c.Next == nil {
		return decimal.Decimal{}, errors.New("fx cache: upstream provider is nil")
	}

	cur := strings.ToUpper(strings.TrimSpace(currency))
	key := "fx:usd:" + cur

	cached, getErr := c.Client.Get(ctx, key).Result()
	if getErr == nil {
		rate, parseErr := decimal.NewFromString(cached)
		if parseErr == nil {
			return rate, nil
		}
		log.Printf("fx cache: corrupt entry key=%s value=%q err=%v", key, cached, parseErr)
	} else if !errors.Is(getErr, redis.Nil) {
		log.Printf("fx cache: get failed key=%s err=%v", key, getErr)
	}

	rate, err := c.Next.Multiplier(ctx, cur)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fx cache: upstream: %w", err)
	}

	if setErr := c.Client.Set(ctx, key, rate.String(), c.TTL).Err(); setErr != nil {
		log.Printf("fx cache: set failed key=%s err=%v", key, setErr)
	}

	return rate, nil
}
