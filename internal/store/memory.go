package store

import (
	"context"

	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
)

// memoryStore keeps settings in process memory only. Save is a no-op.
type memoryStore struct {
	*table
}

// NewMemoryStore returns an empty in-memory [settings.Store].
func NewMemoryStore() settings.Store {
	return &memoryStore{table: newTable()}
}

func (m *memoryStore) GetInt(_ context.Context, key string, defaultValue int) (int, error) {
	r, ok := m.get(key)
	if !ok {
		return defaultValue, nil
	}
	return r.asInt(defaultValue), nil
}

func (m *memoryStore) SetInt(_ context.Context, key string, value int) error {
	m.put(key, intRecord(value))
	return nil
}

func (m *memoryStore) GetFloat(_ context.Context, key string, defaultValue float64) (float64, error) {
	r, ok := m.get(key)
	if !ok {
		return defaultValue, nil
	}
	return r.asFloat(defaultValue), nil
}

func (m *memoryStore) SetFloat(_ context.Context, key string, value float64) error {
	m.put(key, floatRecord(value))
	return nil
}

func (m *memoryStore) GetString(_ context.Context, key string, defaultValue string) (string, error) {
	r, ok := m.get(key)
	if !ok {
		return defaultValue, nil
	}
	return r.asString(defaultValue), nil
}

func (m *memoryStore) SetString(_ context.Context, key string, value string) error {
	m.put(key, stringRecord(value))
	return nil
}

func (m *memoryStore) HasKey(_ context.Context, key string) (bool, error) {
	return m.has(key), nil
}

func (m *memoryStore) DeleteKey(_ context.Context, key string) error {
	m.delete(key)
	return nil
}

func (m *memoryStore) DeleteAll(_ context.Context) error {
	m.clear()
	return nil
}

func (m *memoryStore) Save(_ context.Context) error {
	return nil
}
