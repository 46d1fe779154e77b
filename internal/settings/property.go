package settings

import (
	"cmp"
	"context"
	"time"

	"github.com/MKhiriev/go-prefs-keeper/internal/processor"
)

// Property binds a key and default to a typed accessor, with an optional
// processor applied both after reading and before writing. Build one with
// the typed constructors; the zero value reports [ErrUninitializedProperty].
type Property[T cmp.Ordered] struct {
	key  string
	def  T
	proc processor.Processor[T]

	get func(ctx context.Context, r Recorder, key string, def T) (T, error)
	set func(ctx context.Context, r Recorder, key string, v T) error
}

// IntProperty returns an int-valued property. p may be nil.
func IntProperty(key string, def int, p processor.Processor[int]) Property[int] {
	return Property[int]{
		key: key, def: def, proc: p,
		get: func(ctx context.Context, r Recorder, key string, def int) (int, error) {
			return r.GetInt(ctx, key, def)
		},
		set: func(ctx context.Context, r Recorder, key string, v int) error {
			return r.SetInt(ctx, key, v)
		},
	}
}

// FloatProperty returns a float-valued property. p may be nil.
func FloatProperty(key string, def float64, p processor.Processor[float64]) Property[float64] {
	return Property[float64]{
		key: key, def: def, proc: p,
		get: func(ctx context.Context, r Recorder, key string, def float64) (float64, error) {
			return r.GetFloat(ctx, key, def)
		},
		set: func(ctx context.Context, r Recorder, key string, v float64) error {
			return r.SetFloat(ctx, key, v)
		},
	}
}

// StringProperty returns a string-valued property. p may be nil.
func StringProperty(key string, def string, p processor.Processor[string]) Property[string] {
	return Property[string]{
		key: key, def: def, proc: p,
		get: func(ctx context.Context, r Recorder, key string, def string) (string, error) {
			return r.GetString(ctx, key, def)
		},
		set: func(ctx context.Context, r Recorder, key string, v string) error {
			return r.SetString(ctx, key, v)
		},
	}
}

// TimeSpanProperty returns a duration-valued property. p may be nil.
func TimeSpanProperty(key string, def time.Duration, p processor.Processor[time.Duration]) Property[time.Duration] {
	return Property[time.Duration]{
		key: key, def: def, proc: p,
		get: func(ctx context.Context, r Recorder, key string, def time.Duration) (time.Duration, error) {
			return r.GetTimeSpan(ctx, key, def)
		},
		set: func(ctx context.Context, r Recorder, key string, v time.Duration) error {
			return r.SetTimeSpan(ctx, key, v)
		},
	}
}

// Key returns the settings key of the property.
func (p Property[T]) Key() string {
	return p.key
}

// Default returns the value reported when the key is absent.
func (p Property[T]) Default() T {
	return p.def
}

// Get reads the property and runs the processor over the result.
func (p Property[T]) Get(ctx context.Context, r Recorder) (T, error) {
	if p.get == nil {
		return p.def, ErrUninitializedProperty
	}

	v, err := p.get(ctx, r, p.key, p.def)
	if err != nil {
		return p.def, err
	}
	if p.proc != nil {
		v = p.proc.Process(v)
	}
	return v, nil
}

// Set runs the processor over value and stores the result.
func (p Property[T]) Set(ctx context.Context, r Recorder, value T) error {
	if p.set == nil {
		return ErrUninitializedProperty
	}

	if p.proc != nil {
		value = p.proc.Process(value)
	}
	return p.set(ctx, r, p.key, value)
}
