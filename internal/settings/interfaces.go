// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_mock.go -package=mock

// Store is the primitive key-value contract a backing medium implements.
// Everything a [Recorder] offers on top is derived from these methods.
//
// Get methods return defaultValue when key is absent or holds a value of a
// different primitive kind. Errors are reserved for failures of the medium.
type Store interface {
	GetInt(ctx context.Context, key string, defaultValue int) (int, error)
	SetInt(ctx context.Context, key string, value int) error

	GetFloat(ctx context.Context, key string, defaultValue float64) (float64, error)
	SetFloat(ctx context.Context, key string, value float64) error

	GetString(ctx context.Context, key string, defaultValue string) (string, error)
	SetString(ctx context.Context, key string, value string) error

	HasKey(ctx context.Context, key string) (bool, error)
	DeleteKey(ctx context.Context, key string) error
	DeleteAll(ctx context.Context) error

	// Save flushes pending writes to the persistent medium.
	Save(ctx context.Context) error
}

// Recorder is the typed settings accessor used by application code.
//
// Bool values are stored as int 0/1. Date-times and durations are stored as
// the decimal string of their tick count (100 ns units). Malformed stored
// tick strings decode to [MinTime] or zero rather than an error.
type Recorder interface {
	Store

	GetBool(ctx context.Context, key string, defaultValue bool) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error

	// GetDateTimeUTC expects and returns UTC times; no zone conversion is done.
	GetDateTimeUTC(ctx context.Context, key string, defaultValue time.Time) (time.Time, error)
	SetDateTimeUTC(ctx context.Context, key string, value time.Time) error

	GetTimeSpan(ctx context.Context, key string, defaultValue time.Duration) (time.Duration, error)
	SetTimeSpan(ctx context.Context, key string, value time.Duration) error
}
