// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package processor

import (
	"cmp"
	"sync"
)

// Cache memoizes processors by their bounds so that repeated lookups for the
// same bounds share one instance. The zero value is an empty cache ready for
// use. A Cache is safe for concurrent use.
type Cache[T cmp.Ordered] struct {
	mu      sync.Mutex
	clamps  map[[2]T]Processor[T]
	minCaps map[T]Processor[T]
	maxCaps map[T]Processor[T]
}

// NewCache creates an empty processor cache for values of type T.
func NewCache[T cmp.Ordered]() *Cache[T] {
	return &Cache[T]{}
}

// init allocates the maps on first use. c.mu must be held.
func (c *Cache[T]) init() {
	if c.clamps == nil {
		c.clamps = make(map[[2]T]Processor[T])
		c.minCaps = make(map[T]Processor[T])
		c.maxCaps = make(map[T]Processor[T])
	}
}

// Clamp returns the cached clamp processor for (min, max), creating it on
// first use. Invalid bounds are never cached.
func (c *Cache[T]) Clamp(min, max T) (Processor[T], error) {
	key := [2]T{min, max}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.init()

	if p, ok := c.clamps[key]; ok {
		return p, nil
	}

	p, err := NewClamp(min, max)
	if err != nil {
		return nil, err
	}
	c.clamps[key] = p
	return p, nil
}

// MinCap returns the cached lower-bound processor for min.
func (c *Cache[T]) MinCap(min T) Processor[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.init()

	p, ok := c.minCaps[min]
	if !ok {
		p = NewMinCap(min)
		c.minCaps[min] = p
	}
	return p
}

// MaxCap returns the cached upper-bound processor for max.
func (c *Cache[T]) MaxCap(max T) Processor[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.init()

	p, ok := c.maxCaps[max]
	if !ok {
		p = NewMaxCap(max)
		c.maxCaps[max] = p
	}
	return p
}

// Len reports how many distinct processors the cache holds.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clamps) + len(c.minCaps) + len(c.maxCaps)
}
