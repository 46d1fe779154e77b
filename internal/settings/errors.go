package settings

import "errors"

var (
	// ErrUnsupportedType is returned when a value kind has no storage encoding.
	ErrUnsupportedType = errors.New("unsupported setting type")

	// ErrInvalidValue is returned by ParseValue when text cannot be parsed as
	// the requested kind.
	ErrInvalidValue = errors.New("invalid setting value")

	// ErrUninitializedProperty is returned by a Property that was not built
	// with one of the typed constructors.
	ErrUninitializedProperty = errors.New("property is not initialized")

	// ErrInvalidVersions is returned by Upgrade for an unordered or
	// inconsistent version list.
	ErrInvalidVersions = errors.New("invalid settings versions")

	// ErrInvalidRecords is returned when a sorted record list is built with
	// a non-positive capacity.
	ErrInvalidRecords = errors.New("invalid sorted records")
)
