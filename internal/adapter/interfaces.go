// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to remote HTTP endpoints on behalf of the domain
// checker and the prefs command.
//
// Non-2xx answers are mapped to sentinels so that callers can use
// [errors.Is] (e.g. [ErrListNotFound] for 404).
package adapter

import "context"

// ListFetcher downloads the plain-text body of a remote domain list.
// It satisfies the fetcher contract of the domain checker.
type ListFetcher interface {
	FetchList(ctx context.Context, rawURL string) (string, error)
}
