// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
)

// encryptedStore seals every value before handing it to the inner store as
// a string. Keys stay in plaintext so HasKey and DeleteKey pass through.
//
// The sealed plaintext is "<kind>:<encoded value>", so reading a key through
// an accessor of another kind returns the default, as the plain stores do.
type encryptedStore struct {
	inner  settings.Store
	sealer crypto.Sealer
}

// NewEncryptedStore wraps inner so that values are stored as AES-GCM sealed
// strings. Values that fail to open are reported as [ErrCorruptedValue].
func NewEncryptedStore(inner settings.Store, sealer crypto.Sealer) settings.Store {
	return &encryptedStore{inner: inner, sealer: sealer}
}

func (e *encryptedStore) put(ctx context.Context, key string, r record) error {
	sealed, err := e.sealer.Seal(string(r.Kind) + ":" + r.Value)
	if err != nil {
		return fmt.Errorf("seal setting %q: %w", key, err)
	}
	return e.inner.SetString(ctx, key, sealed)
}

func (e *encryptedStore) get(ctx context.Context, key string) (record, bool, error) {
	ok, err := e.inner.HasKey(ctx, key)
	if err != nil || !ok {
		return record{}, false, err
	}

	sealed, err := e.inner.GetString(ctx, key, "")
	if err != nil {
		return record{}, false, err
	}

	plain, err := e.sealer.Open(sealed)
	if err != nil {
		return record{}, false, fmt.Errorf("%w: key %q: %w", ErrCorruptedValue, key, err)
	}

	kind, value, found := strings.Cut(plain, ":")
	if !found {
		return record{}, false, fmt.Errorf("%w: key %q: missing kind", ErrCorruptedValue, key)
	}
	return record{Kind: primitive(kind), Value: value}, true, nil
}

func (e *encryptedStore) GetInt(ctx context.Context, key string, defaultValue int) (int, error) {
	r, ok, err := e.get(ctx, key)
	if err != nil || !ok {
		return defaultValue, err
	}
	return r.asInt(defaultValue), nil
}

func (e *encryptedStore) SetInt(ctx context.Context, key string, value int) error {
	return e.put(ctx, key, intRecord(value))
}

func (e *encryptedStore) GetFloat(ctx context.Context, key string, defaultValue float64) (float64, error) {
	r, ok, err := e.get(ctx, key)
	if err != nil || !ok {
		return defaultValue, err
	}
	return r.asFloat(defaultValue), nil
}

func (e *encryptedStore) SetFloat(ctx context.Context, key string, value float64) error {
	return e.put(ctx, key, floatRecord(value))
}

func (e *encryptedStore) GetString(ctx context.Context, key string, defaultValue string) (string, error) {
	r, ok, err := e.get(ctx, key)
	if err != nil || !ok {
		return defaultValue, err
	}
	return r.asString(defaultValue), nil
}

func (e *encryptedStore) SetString(ctx context.Context, key string, value string) error {
	return e.put(ctx, key, stringRecord(value))
}

func (e *encryptedStore) HasKey(ctx context.Context, key string) (bool, error) {
	return e.inner.HasKey(ctx, key)
}

func (e *encryptedStore) DeleteKey(ctx context.Context, key string) error {
	return e.inner.DeleteKey(ctx, key)
}

func (e *encryptedStore) DeleteAll(ctx context.Context) error {
	return e.inner.DeleteAll(ctx)
}

func (e *encryptedStore) Save(ctx context.Context) error {
	return e.inner.Save(ctx)
}
