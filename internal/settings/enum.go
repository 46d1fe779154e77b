package settings

import "context"

// Enum is satisfied by integer-backed enumerations such as
//
//	type Quality int
//	const (Low Quality = iota; Medium; High)
//
// Non-integer types are rejected at compile time.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16
}

// GetEnum reads an enum stored as its integer value.
func GetEnum[E Enum](ctx context.Context, r Store, key string, defaultValue E) (E, error) {
	v, err := r.GetInt(ctx, key, int(defaultValue))
	if err != nil {
		return defaultValue, err
	}
	return E(v), nil
}

// SetEnum stores an enum as its integer value.
func SetEnum[E Enum](ctx context.Context, r Store, key string, value E) error {
	return r.SetInt(ctx, key, int(value))
}
