// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package processor provides bound-enforcing post-processors for setting
// values. A processor never fails at Process time: out-of-range input is
// replaced by the nearest bound.
package processor

import (
	"cmp"
	"fmt"
)

// Processor maps a value into its allowed range.
//
// Implementations are immutable and idempotent:
// Process(Process(v)) == Process(v) for every v.
type Processor[T cmp.Ordered] interface {
	Process(value T) T
}

type clamp[T cmp.Ordered] struct {
	min T
	max T
}

// NewClamp returns a processor that keeps values within [min, max].
// It returns [ErrInvalidBounds] if max is not strictly greater than min.
func NewClamp[T cmp.Ordered](min, max T) (Processor[T], error) {
	if cmp.Compare(max, min) <= 0 {
		return nil, fmt.Errorf("%w: min=%v max=%v", ErrInvalidBounds, min, max)
	}
	return &clamp[T]{min: min, max: max}, nil
}

func (c *clamp[T]) Process(value T) T {
	if cmp.Less(value, c.min) {
		return c.min
	}
	if cmp.Less(c.max, value) {
		return c.max
	}
	return value
}

type minCap[T cmp.Ordered] struct {
	min T
}

// NewMinCap returns a processor that raises values below min to min.
func NewMinCap[T cmp.Ordered](min T) Processor[T] {
	return &minCap[T]{min: min}
}

func (m *minCap[T]) Process(value T) T {
	if cmp.Less(value, m.min) {
		return m.min
	}
	return value
}

type maxCap[T cmp.Ordered] struct {
	max T
}

// NewMaxCap returns a processor that lowers values above max to max.
func NewMaxCap[T cmp.Ordered](max T) Processor[T] {
	return &maxCap[T]{max: max}
}

func (m *maxCap[T]) Process(value T) T {
	if cmp.Less(m.max, value) {
		return m.max
	}
	return value
}

type chain[T cmp.Ordered] []Processor[T]

// Chain applies the given processors left to right. Nil entries are skipped.
func Chain[T cmp.Ordered](processors ...Processor[T]) Processor[T] {
	c := make(chain[T], 0, len(processors))
	for _, p := range processors {
		if p != nil {
			c = append(c, p)
		}
	}
	return c
}

func (c chain[T]) Process(value T) T {
	for _, p := range c {
		value = p.Process(value)
	}
	return value
}
