package db

import (
	"context"
	"errors"
	"time"

	"crowd-server/logging"

	gobreaker "github.com/sony/gobreaker/v2"
)

// ErrRedisUnavailable is returned without calling Redis while the breaker is open.
var ErrRedisUnavailable = errors.New("redis unavailable")

// BreakerSettings tunes BreakerRedisClient.
type BreakerSettings struct {
	// FailureThreshold consecutive failures open the breaker.
	FailureThreshold uint32
	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration
}

// BreakerRedisClient wraps a RedisClient with a circuit breaker so callers fail
// fast while Redis is down. A missing key counts as success.
type BreakerRedisClient struct {
	next RedisClient
	cb   *gobreaker.CircuitBreaker[interface{}]
}

func NewBreakerRedisClient(next RedisClient, settings BreakerSettings) *BreakerRedisClient {
	log := logging.Component("RedisBreaker")
	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        "redis",
		MaxRequests: 1,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrKeyNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
	return &BreakerRedisClient{next: next, cb: cb}
}

// State reports the breaker state ("closed", "open", "half-open").
func (b *BreakerRedisClient) State() string {
	return b.cb.State().String()
}

func (b *BreakerRedisClient) exec(fn func() (interface{}, error)) (interface{}, error) {
	v, err := b.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errors.Join(ErrRedisUnavailable, err)
	}
	return v, err
}

func (b *BreakerRedisClient) Set(ctx context.Context, key, value string) error {
	_, err := b.exec(func() (interface{}, error) {
		return nil, b.next.Set(ctx, key, value)
	})
	return err
}

func (b *BreakerRedisClient) Get(ctx context.Context, key string) (string, error) {
	v, err := b.exec(func() (interface{}, error) {
		return b.next.Get(ctx, key)
	})
	s, _ := v.(string)
	return s, err
}

func (b *BreakerRedisClient) Del(ctx context.Context, key string) error {
	_, err := b.exec(func() (interface{}, error) {
		return nil, b.next.Del(ctx, key)
	})
	return err
}

func (b *BreakerRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	v, err := b.exec(func() (interface{}, error) {
		return b.next.Keys(ctx, pattern)
	})
	keys, _ := v.([]string)
	return keys, err
}

func (b *BreakerRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	_, err := b.exec(func() (interface{}, error) {
		return nil, b.next.AddLocationWithJSON(ctx, geoKey, memberKey, lat, lon, data)
	})
	return err
}

func (b *BreakerRedisClient) RemoveLocation(ctx context.Context, geoKey, memberKey string) error {
	_, err := b.exec(func() (interface{}, error) {
		return nil, b.next.RemoveLocation(ctx, geoKey, memberKey)
	})
	return err
}

func (b *BreakerRedisClient) GetLocationsWithinRadius(ctx context.Context, geoKey string, lat, lon, radiusKm float64) ([]string, error) {
	v, err := b.exec(func() (interface{}, error) {
		return b.next.GetLocationsWithinRadius(ctx, geoKey, lat, lon, radiusKm)
	})
	objects, _ := v.([]string)
	return objects, err
}

func (b *BreakerRedisClient) Ping(ctx context.Context) error {
	_, err := b.exec(func() (interface{}, error) {
		return nil, b.next.Ping(ctx)
	})
	return err
}

// Close always reaches the wrapped client.
func (b *BreakerRedisClient) Close() error {
	return b.next.Close()
}
