// Package imagecache memoizes rendered map images per hour and render axis.
// Only the most recently started hour is kept for each axis.
package imagecache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bluele/gcache"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
	"golang.org/x/sync/singleflight"
)

const defaultSize = 64

// Axis bundles everything besides the hour that changes the rendered pixels
type Axis struct {
	Locale string
}

// Loader renders the image for a key. It is expensive.
type Loader func(ctx context.Context, hour int, axis Axis) ([]byte, error)

type key struct {
	hour int
	axis Axis
}

// flight identifies a load by its hour and the order it started in
type flight struct {
	hour int
	seq  uint64
}

type Cache struct {
	load    Loader
	store   gcache.Cache
	group   singleflight.Group
	metrics *obs.Metrics
	seq     atomic.Uint64

	mu      sync.Mutex
	current map[Axis]flight
}

type Option func(*Cache)

// WithSize bounds the number of axes held at once
func WithSize(size int) Option {
	return func(c *Cache) {
		if size > 0 {
			c.store = gcache.New(size).LRU().Build()
		}
	}
}

func WithMetrics(m *obs.Metrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}

func New(load Loader, opts ...Option) *Cache {
	c := &Cache{
		load:  load,
		store: gcache.New(defaultSize).LRU().Build(),
		current: make(map[Axis]flight),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the image for (hour, axis), invoking the loader at most once for
// concurrent misses on the same key. The shared load outlives the
// cancellation of any single caller.
func (c *Cache) Get(ctx context.Context, hour int, axis Axis) ([]byte, error) {
	k := key{hour: hour, axis: axis}
	if v, err := c.store.GetIFPresent(k); err == nil {
		c.metrics.IncImageCache("hit")
		return v.([]byte), nil
	}
	c.metrics.IncImageCache("miss")

	v, err, _ := c.group.Do(fmt.Sprintf("%d|%s", hour, axis.Locale), func() (any, error) {
		// a concurrent flight may have finished between the lookup and Do
		if v, err := c.store.GetIFPresent(k); err == nil {
			return v, nil
		}

		f := flight{hour: hour, seq: c.seq.Add(1)}
		start := time.Now()
		data, err := c.load(context.WithoutCancel(ctx), hour, axis)
		if err != nil {
			return nil, err
		}
		c.metrics.ObserveRender(time.Since(start).Seconds())

		c.mu.Lock()
		defer c.mu.Unlock()
		prev, ok := c.current[axis]
		if ok && prev.seq > f.seq {
			// a later load already replaced this hour
			return data, nil
		}
		if ok && prev.hour != hour {
			c.store.Remove(key{hour: prev.hour, axis: axis})
		}
		c.current[axis] = f
		if err := c.store.Set(k, data); err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Contains reports whether (hour, axis) is cached
func (c *Cache) Contains(hour int, axis Axis) bool {
	return c.store.Has(key{hour: hour, axis: axis})
}
