// Package comparison memoizes AI comparisons per (candidate, job) pair for a session.
//
// A result is loaded from the store or computed at most once per key. Concurrent
// requests for the same key share one outstanding call, and a caller that gives up
// waiting does not cancel the call for the others.
package comparison

import (
	"context"
	"fmt"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/fit-core/internal/domain/events"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/maxaizer/fit-core/internal/logger"
	"github.com/maxaizer/fit-core/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"sync"
	"time"
)

// ErrNotFound may be returned by a Store instead of (nil, nil) when nothing is saved for a key.
var ErrNotFound = errors.New("comparison not found")

type Store interface {
	LoadSaved(ctx context.Context, key models.ComparisonKey) (*models.ComparisonResult, error)
}

// Computer produces a fresh comparison and persists it on its side.
type Computer interface {
	Compute(ctx context.Context, key models.ComparisonKey) (*models.ComparisonResult, error)
}

type Cache struct {
	store    Store
	computer Computer
	bus      EventBus.Bus
	results  *gocache.Cache
	flights  singleflight.Group

	mu       sync.Mutex
	inFlight map[models.ComparisonKey]int
}

type Option func(*Cache)

// WithBus publishes ComparisonComputed and ComparisonFailed events on the bus.
func WithBus(bus EventBus.Bus) Option {
	return func(c *Cache) {
		c.bus = bus
	}
}

func NewCache(store Store, computer Computer, opts ...Option) *Cache {
	c := &Cache{
		store:    store,
		computer: computer,
		results:  gocache.New(gocache.NoExpiration, 0),
		inFlight: make(map[models.ComparisonKey]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCompute returns the comparison for the key. Without forceRefresh it reuses the
// session entry, then a saved result, and computes only when neither exists.
// With forceRefresh it always computes, unless a compute for the key is already running,
// in which case it waits for that one.
func (c *Cache) GetOrCompute(ctx context.Context, key models.ComparisonKey, forceRefresh bool) (*models.ComparisonResult, error) {

	if !forceRefresh {
		if result, found := c.Peek(key); found {
			metrics.ComparisonCacheHits.Inc()
			return result, nil
		}
	}

	detached := context.WithoutCancel(ctx)
	var flight <-chan singleflight.Result
	if forceRefresh {
		flight = c.flights.DoChan(computeFlight(key), func() (any, error) {
			return c.compute(detached, key, true)
		})
	} else {
		flight = c.flights.DoChan(loadFlight(key), func() (any, error) {
			return c.loadOrCompute(detached, key)
		})
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return nil, res.Err
		}
		result := res.Val.(models.ComparisonResult).Clone()
		return &result, nil
	}
}

func (c *Cache) IsLoading(key models.ComparisonKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight[key] > 0
}

// Peek returns the session entry for the key without touching the store.
func (c *Cache) Peek(key models.ComparisonKey) (*models.ComparisonResult, bool) {
	cached, found := c.results.Get(key.String())
	if !found {
		return nil, false
	}
	result := cached.(models.ComparisonResult).Clone()
	return &result, true
}

// Invalidate drops the session entry so the next request reloads it.
func (c *Cache) Invalidate(key models.ComparisonKey) {
	c.results.Delete(key.String())
}

// Reset drops every session entry.
func (c *Cache) Reset() {
	c.results.Flush()
}

func (c *Cache) loadOrCompute(ctx context.Context, key models.ComparisonKey) (any, error) {
	c.startLoading(key)
	defer c.stopLoading(key)

	if result, found := c.Peek(key); found {
		return *result, nil
	}

	if saved := c.loadSaved(ctx, key); saved != nil {
		metrics.ComparisonSavedLoads.Inc()
		// a compute that finished meanwhile is newer than the saved copy
		if err := c.results.Add(key.String(), saved.Clone(), gocache.NoExpiration); err != nil {
			if current, found := c.Peek(key); found {
				return *current, nil
			}
		}
		return *saved, nil
	}

	val, err, _ := c.flights.Do(computeFlight(key), func() (any, error) {
		return c.compute(ctx, key, false)
	})
	return val, err
}

// loadSaved treats a store failure like a missing comparison: the caller falls back to computing.
func (c *Cache) loadSaved(ctx context.Context, key models.ComparisonKey) *models.ComparisonResult {
	saved, err := c.store.LoadSaved(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
				Errorf("failed to load saved comparison %v: %v", key, err)
		}
		return nil
	}
	if saved != nil {
		saved.Key = key
	}
	return saved
}

func (c *Cache) compute(ctx context.Context, key models.ComparisonKey, forced bool) (any, error) {
	c.startLoading(key)
	defer c.stopLoading(key)

	start := time.Now()
	result, err := c.computer.Compute(ctx, key)
	metrics.ComparisonComputeDuration.Observe(time.Since(start).Seconds())

	if err == nil && result == nil {
		err = errors.New("computer returned no result")
	}
	if err != nil {
		metrics.ComparisonComputeFailures.Inc()
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).
			Errorf("failed to compute comparison %v: %v", key, err)
		c.publish(events.ComparisonFailedTopic, events.ComparisonFailed{Key: key, Error: err})
		return nil, fmt.Errorf("compute comparison %v: %w", key, err)
	}

	metrics.ComparisonComputes.Inc()
	result.Key = key
	c.results.Set(key.String(), result.Clone(), gocache.NoExpiration)
	log.Infof("comparison %v computed, overall score %d", key, result.OverallScore)

	c.publish(events.ComparisonComputedTopic, events.ComparisonComputed{Key: key, Result: result.Clone(), Forced: forced})
	return *result, nil
}

func (c *Cache) publish(topic string, event any) {
	if c.bus != nil {
		c.bus.Publish(topic, event)
	}
}

func (c *Cache) startLoading(key models.ComparisonKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight[key]++
}

func (c *Cache) stopLoading(key models.ComparisonKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[key] <= 1 {
		delete(c.inFlight, key)
		return
	}
	c.inFlight[key]--
}

func loadFlight(key models.ComparisonKey) string {
	return "load:" + key.String()
}

func computeFlight(key models.ComparisonKey) string {
	return "compute:" + key.String()
}
