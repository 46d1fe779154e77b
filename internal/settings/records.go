// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	recordFieldDivider = "|"
	recordDivider      = "\n"
)

// Order selects which end of a [SortedRecords] list ranks first.
type Order int

const (
	// Descending keeps the highest value on top, as for high scores.
	Descending Order = iota
	// Ascending keeps the lowest value on top, as for best times.
	Ascending
)

// Record is one entry of a [SortedRecords] list.
type Record[T cmp.Ordered] struct {
	Value       T
	Name        string
	AchievedUTC time.Time
}

// RecordCodec converts record values to and from their stored text.
type RecordCodec[T cmp.Ordered] struct {
	Format func(T) string
	Parse  func(string) (T, error)
}

var (
	IntRecordCodec = RecordCodec[int]{
		Format: strconv.Itoa,
		Parse:  strconv.Atoi,
	}
	FloatRecordCodec = RecordCodec[float64]{
		Format: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
		Parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	}
)

// SortedRecords is a bounded, ranked list of records persisted under one
// string key. Each record is stored as "value|name|ticks" and records are
// joined with '\n', best first.
//
// A SortedRecords is safe for concurrent use.
type SortedRecords[T cmp.Ordered] struct {
	key      string
	capacity int
	order    Order
	codec    RecordCodec[T]
	now      func() time.Time

	mu      sync.Mutex
	records []Record[T]
}

// NewSortedRecords returns an empty list stored under key that keeps at
// most capacity records.
func NewSortedRecords[T cmp.Ordered](key string, capacity int, order Order, codec RecordCodec[T]) (*SortedRecords[T], error) {
	switch {
	case key == "":
		return nil, fmt.Errorf("%w: empty key", ErrInvalidRecords)
	case capacity <= 0:
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidRecords, capacity)
	case codec.Format == nil || codec.Parse == nil:
		return nil, fmt.Errorf("%w: incomplete codec", ErrInvalidRecords)
	}

	return &SortedRecords[T]{
		key:      key,
		capacity: capacity,
		order:    order,
		codec:    codec,
		now:      func() time.Time { return time.Now().UTC() },
		records:  make([]Record[T], 0, capacity),
	}, nil
}

// Key returns the settings key the list is stored under.
func (s *SortedRecords[T]) Key() string { return s.key }

// Capacity returns the maximum number of records kept.
func (s *SortedRecords[T]) Capacity() int { return s.capacity }

func (s *SortedRecords[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// At returns the record ranked i, starting at 0. It panics if i is out of
// range.
func (s *SortedRecords[T]) At(i int) Record[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[i]
}

// All returns a copy of the records, best first.
func (s *SortedRecords[T]) All() []Record[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records)
}

// Top returns the best record, if any.
func (s *SortedRecords[T]) Top() (Record[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return Record[T]{}, false
	}
	return s.records[0], true
}

// Add records value for name, achieved now. See [SortedRecords.AddRecord].
func (s *SortedRecords[T]) Add(value T, name string) int {
	return s.AddRecord(Record[T]{Value: value, Name: name, AchievedUTC: s.now()})
}

// AddRecord inserts rec at its rank and returns that rank, or -1 when the
// list is full and rec ranks below every entry. A record equal to an
// existing one ranks above it. The worst records are dropped to stay
// within capacity.
func (s *SortedRecords[T]) AddRecord(rec Record[T]) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	rank := -1
	if len(s.records) < s.capacity {
		rank = len(s.records)
	}
	for i, existing := range s.records {
		if s.ranksAbove(rec.Value, existing.Value) {
			rank = i
			break
		}
	}
	if rank < 0 {
		return rank
	}

	if len(s.records) >= s.capacity {
		s.records = s.records[:s.capacity-1]
	}
	s.records = slices.Insert(s.records, rank, rec)
	return rank
}

// ranksAbove reports whether a belongs before b; ties favour a.
func (s *SortedRecords[T]) ranksAbove(a, b T) bool {
	if s.order == Ascending {
		return a <= b
	}
	return a >= b
}

// Clear drops every record. The stored copy is untouched until Save.
func (s *SortedRecords[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

// String renders the list in its stored form.
func (s *SortedRecords[T]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, len(s.records))
	for i, rec := range s.records {
		lines[i] = s.codec.Format(rec.Value) + recordFieldDivider +
			cleanRecordName(rec.Name) + recordFieldDivider +
			FormatDateTimeUTC(rec.AchievedUTC)
	}
	return strings.Join(lines, recordDivider)
}

// Load replaces the records with the list stored in r. Lines whose value
// does not parse are skipped and a malformed date decodes to [MinTime].
// The result is re-ranked and trimmed to capacity.
func (s *SortedRecords[T]) Load(ctx context.Context, r Store) error {
	stored, err := r.GetString(ctx, s.key, "")
	if err != nil {
		return fmt.Errorf("load records %q: %w", s.key, err)
	}

	var loaded []Record[T]
	if stored != "" {
		for line := range strings.SplitSeq(stored, recordDivider) {
			if rec, ok := s.parseRecord(line); ok {
				loaded = append(loaded, rec)
			}
		}
	}

	slices.SortStableFunc(loaded, func(a, b Record[T]) int {
		if s.order == Ascending {
			return cmp.Compare(a.Value, b.Value)
		}
		return cmp.Compare(b.Value, a.Value)
	})
	if len(loaded) > s.capacity {
		loaded = loaded[:s.capacity]
	}

	s.mu.Lock()
	s.records = loaded
	s.mu.Unlock()
	return nil
}

// Save stores the list in r under its key.
func (s *SortedRecords[T]) Save(ctx context.Context, r Store) error {
	if err := r.SetString(ctx, s.key, s.String()); err != nil {
		return fmt.Errorf("save records %q: %w", s.key, err)
	}
	return nil
}

func (s *SortedRecords[T]) parseRecord(line string) (Record[T], bool) {
	fields := strings.Split(line, recordFieldDivider)
	if len(fields) < 3 {
		return Record[T]{}, false
	}

	value, err := s.codec.Parse(fields[0])
	if err != nil {
		return Record[T]{}, false
	}

	return Record[T]{
		Value:       value,
		Name:        strings.Join(fields[1:len(fields)-1], recordFieldDivider),
		AchievedUTC: ParseDateTimeUTC(fields[len(fields)-1]),
	}, true
}

func cleanRecordName(name string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(name)
}
