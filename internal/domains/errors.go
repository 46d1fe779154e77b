package domains

import "errors"

var (
	// ErrNotSupported is returned by every mutating method of [DomainList].
	ErrNotSupported = errors.New("domain list is read-only")

	// ErrInvalidDocument is returned by ReadFile when the document has no name.
	ErrInvalidDocument = errors.New("invalid domain list document")

	// ErrRemoteList is returned when the remote domain list cannot be fetched.
	ErrRemoteList = errors.New("error fetching remote domain list")
)
