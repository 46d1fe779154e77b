// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package domains holds the accepted-domain allow-list and the host checker
// built on top of it.
//
// A [DomainList] is fixed once created. Its entries are either plaintext
// domains or ciphertext produced by a [crypto.Cryptographer]; the list does
// not record which, so callers pass the same cryptographer to [Decrypt] that
// they passed to [Generate].
package domains

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
)

// DomainList is a named, read-only, ordered list of domain entries.
type DomainList struct {
	name    string
	entries []string
}

// New returns a list holding a copy of entries, stored as given.
func New(name string, entries []string) *DomainList {
	return &DomainList{name: name, entries: slices.Clone(entries)}
}

// Generate builds a list from plaintext domains. With a non-nil c every
// entry is encrypted; otherwise the domains are copied unchanged.
func Generate(name string, domains []string, c crypto.Cryptographer) (*DomainList, error) {
	if c == nil {
		return New(name, domains), nil
	}

	entries := make([]string, len(domains))
	for i, d := range domains {
		enc, err := c.Encrypt(d)
		if err != nil {
			return nil, fmt.Errorf("encrypt domain #%d: %w", i, err)
		}
		entries[i] = enc
	}
	return &DomainList{name: name, entries: entries}, nil
}

// Decrypt returns the plaintext domains of list.
func Decrypt(list *DomainList, c crypto.Cryptographer) ([]string, error) {
	if list == nil {
		return nil, nil
	}
	return DecryptInto(make([]string, 0, list.Len()), list, c)
}

// DecryptInto appends the plaintext domains of list to dst and returns the
// extended slice. With a nil c the entries are appended unchanged.
func DecryptInto(dst []string, list *DomainList, c crypto.Cryptographer) ([]string, error) {
	if list == nil {
		return dst, nil
	}
	if c == nil {
		return append(dst, list.entries...), nil
	}

	for i, e := range list.entries {
		d, err := c.Decrypt(e)
		if err != nil {
			return dst, fmt.Errorf("decrypt domain #%d: %w", i, err)
		}
		dst = append(dst, d)
	}
	return dst, nil
}

// Name returns the list name.
func (l *DomainList) Name() string {
	return l.name
}

// Len returns the number of entries.
func (l *DomainList) Len() int {
	return len(l.entries)
}

// At returns the entry at index i. It panics if i is out of range.
func (l *DomainList) At(i int) string {
	return l.entries[i]
}

// All returns a copy of the entries.
func (l *DomainList) All() []string {
	return slices.Clone(l.entries)
}

// Contains reports whether entry is in the list.
func (l *DomainList) Contains(entry string) bool {
	return l.IndexOf(entry) >= 0
}

// IndexOf returns the index of the first occurrence of entry, or -1.
func (l *DomainList) IndexOf(entry string) int {
	return slices.Index(l.entries, entry)
}

// Add always fails with [ErrNotSupported].
func (l *DomainList) Add(string) error {
	return fmt.Errorf("add: %w", ErrNotSupported)
}

// Remove always fails with [ErrNotSupported].
func (l *DomainList) Remove(string) error {
	return fmt.Errorf("remove: %w", ErrNotSupported)
}

// Clear always fails with [ErrNotSupported].
func (l *DomainList) Clear() error {
	return fmt.Errorf("clear: %w", ErrNotSupported)
}
