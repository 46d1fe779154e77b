// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strconv"
	"sync"
)

// primitive is the storage-level kind of a record. A read through an
// accessor of another kind yields the caller's default.
type primitive string

const (
	primitiveInt    primitive = "int"
	primitiveFloat  primitive = "float"
	primitiveString primitive = "string"
)

// record is one stored setting; Value holds the text encoding of the kind.
type record struct {
	Kind  primitive `json:"kind"`
	Value string    `json:"value"`
}

func intRecord(v int) record {
	return record{Kind: primitiveInt, Value: strconv.Itoa(v)}
}

func floatRecord(v float64) record {
	return record{Kind: primitiveFloat, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

func stringRecord(v string) record {
	return record{Kind: primitiveString, Value: v}
}

func (r record) asInt(def int) int {
	if r.Kind != primitiveInt {
		return def
	}
	v, err := strconv.Atoi(r.Value)
	if err != nil {
		return def
	}
	return v
}

func (r record) asFloat(def float64) float64 {
	if r.Kind != primitiveFloat {
		return def
	}
	v, err := strconv.ParseFloat(r.Value, 64)
	if err != nil {
		return def
	}
	return v
}

func (r record) asString(def string) string {
	if r.Kind != primitiveString {
		return def
	}
	return r.Value
}

// table is a concurrency-safe map of records shared by the in-process stores.
type table struct {
	mu      sync.RWMutex
	records map[string]record
	dirty   bool
}

func newTable() *table {
	return &table{records: make(map[string]record)}
}

func (t *table) get(key string) (record, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r, ok := t.records[key]
	return r, ok
}

func (t *table) put(key string, r record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records[key] = r
	t.dirty = true
}

func (t *table) has(key string) bool {
	_, ok := t.get(key)
	return ok
}

func (t *table) delete(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.records[key]; ok {
		delete(t.records, key)
		t.dirty = true
	}
}

func (t *table) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.records) > 0 {
		t.records = make(map[string]record)
		t.dirty = true
	}
}
