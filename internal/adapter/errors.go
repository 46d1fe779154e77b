package adapter

import "errors"

var (
	// ErrEmptyURL is returned when no list URL is given.
	ErrEmptyURL = errors.New("empty url")

	// ErrListNotFound is returned when the list host answers 404 or 410.
	ErrListNotFound = errors.New("remote domain list not found")

	// ErrListUnavailable is returned for 5xx and 429 answers, after the
	// retry has been used up.
	ErrListUnavailable = errors.New("remote domain list temporarily unavailable")

	// ErrUnexpectedStatus is returned for any other non-2xx answer.
	ErrUnexpectedStatus = errors.New("unexpected status fetching remote domain list")
)
