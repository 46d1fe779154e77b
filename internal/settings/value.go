// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the setting value types a [Recorder] can store.
type Kind string

const (
	KindBool     Kind = "bool"
	KindInt      Kind = "int"
	KindFloat    Kind = "float"
	KindString   Kind = "string"
	KindEnum     Kind = "enum"
	KindDateTime Kind = "datetime"
	KindTimeSpan Kind = "timespan"
)

// Kinds lists every supported kind in a stable order.
var Kinds = []Kind{KindBool, KindInt, KindFloat, KindString, KindEnum, KindDateTime, KindTimeSpan}

// Value is a setting value tagged with its kind. Only the field matching
// Kind is meaningful; enums use Int.
type Value struct {
	Kind     Kind
	Bool     bool
	Int      int
	Float    float64
	String   string
	DateTime time.Time
	TimeSpan time.Duration
}

// ParseValue parses text as the given kind. Date-times are RFC 3339 and
// durations use [time.ParseDuration] syntax.
func ParseValue(kind Kind, text string) (Value, error) {
	v := Value{Kind: kind}
	var err error

	switch kind {
	case KindBool:
		v.Bool, err = strconv.ParseBool(text)
	case KindInt, KindEnum:
		v.Int, err = strconv.Atoi(text)
	case KindFloat:
		v.Float, err = strconv.ParseFloat(text, 64)
	case KindString:
		v.String = text
	case KindDateTime:
		v.DateTime, err = time.Parse(time.RFC3339Nano, text)
		v.DateTime = v.DateTime.UTC()
	case KindTimeSpan:
		v.TimeSpan, err = time.ParseDuration(text)
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrUnsupportedType, kind)
	}

	if err != nil {
		return Value{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidValue, kind, text, err)
	}
	return v, nil
}

// Format renders v the way ParseValue accepts it.
func (v Value) Format() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt, KindEnum:
		return strconv.Itoa(v.Int)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return v.String
	case KindDateTime:
		return v.DateTime.UTC().Format(time.RFC3339Nano)
	case KindTimeSpan:
		return v.TimeSpan.String()
	default:
		return ""
	}
}

// ParseKind validates a kind name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedType, name)
}

// SetValue writes v through the accessor matching its kind.
func SetValue(ctx context.Context, r Recorder, key string, v Value) error {
	switch v.Kind {
	case KindBool:
		return r.SetBool(ctx, key, v.Bool)
	case KindInt, KindEnum:
		return r.SetInt(ctx, key, v.Int)
	case KindFloat:
		return r.SetFloat(ctx, key, v.Float)
	case KindString:
		return r.SetString(ctx, key, v.String)
	case KindDateTime:
		return r.SetDateTimeUTC(ctx, key, v.DateTime)
	case KindTimeSpan:
		return r.SetTimeSpan(ctx, key, v.TimeSpan)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedType, v.Kind)
	}
}

// GetValue reads key as kind, falling back to the zero value of that kind.
func GetValue(ctx context.Context, r Recorder, key string, kind Kind) (Value, error) {
	v := Value{Kind: kind}
	var err error

	switch kind {
	case KindBool:
		v.Bool, err = r.GetBool(ctx, key, false)
	case KindInt, KindEnum:
		v.Int, err = r.GetInt(ctx, key, 0)
	case KindFloat:
		v.Float, err = r.GetFloat(ctx, key, 0)
	case KindString:
		v.String, err = r.GetString(ctx, key, "")
	case KindDateTime:
		v.DateTime, err = r.GetDateTimeUTC(ctx, key, MinTime)
	case KindTimeSpan:
		v.TimeSpan, err = r.GetTimeSpan(ctx, key, 0)
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrUnsupportedType, kind)
	}

	if err != nil {
		return Value{}, err
	}
	return v, nil
}
