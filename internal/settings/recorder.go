// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"time"
)

// recorder derives the typed accessors of [Recorder] from an embedded [Store].
// Primitive calls go straight to the store.
type recorder struct {
	Store
}

// NewRecorder wraps store with the derived typed accessors. A store that
// already is a Recorder is returned unchanged.
func NewRecorder(store Store) Recorder {
	if r, ok := store.(Recorder); ok {
		return r
	}
	return &recorder{Store: store}
}

func (r *recorder) GetBool(ctx context.Context, key string, defaultValue bool) (bool, error) {
	v, err := r.GetInt(ctx, key, BoolToInt(defaultValue))
	if err != nil {
		return defaultValue, err
	}
	return IntToBool(v), nil
}

func (r *recorder) SetBool(ctx context.Context, key string, value bool) error {
	return r.SetInt(ctx, key, BoolToInt(value))
}

func (r *recorder) GetDateTimeUTC(ctx context.Context, key string, defaultValue time.Time) (time.Time, error) {
	s, err := r.GetString(ctx, key, FormatDateTimeUTC(defaultValue))
	if err != nil {
		return defaultValue, err
	}
	return ParseDateTimeUTC(s), nil
}

func (r *recorder) SetDateTimeUTC(ctx context.Context, key string, value time.Time) error {
	return r.SetString(ctx, key, FormatDateTimeUTC(value))
}

func (r *recorder) GetTimeSpan(ctx context.Context, key string, defaultValue time.Duration) (time.Duration, error) {
	s, err := r.GetString(ctx, key, FormatTimeSpan(defaultValue))
	if err != nil {
		return defaultValue, err
	}
	return ParseTimeSpan(s), nil
}

func (r *recorder) SetTimeSpan(ctx context.Context, key string, value time.Duration) error {
	return r.SetString(ctx, key, FormatTimeSpan(value))
}
