package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prefs-keeper/internal/mock"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" DateTime ")
	require.NoError(t, err)
	assert.Equal(t, KindDateTime, k)

	for _, known := range Kinds {
		got, err := ParseKind(string(known))
		require.NoError(t, err)
		assert.Equal(t, known, got)
	}

	_, err = ParseKind("vector3")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		kind    Kind
		text    string
		want    Value
		wantErr error
	}{
		{KindBool, "true", Value{Kind: KindBool, Bool: true}, nil},
		{KindInt, "-3", Value{Kind: KindInt, Int: -3}, nil},
		{KindEnum, "2", Value{Kind: KindEnum, Int: 2}, nil},
		{KindFloat, "0.75", Value{Kind: KindFloat, Float: 0.75}, nil},
		{KindString, "hello world", Value{Kind: KindString, String: "hello world"}, nil},
		{KindTimeSpan, "1m30s", Value{Kind: KindTimeSpan, TimeSpan: 90 * time.Second}, nil},
		{KindDateTime, "2026-10-17T10:00:00Z", Value{Kind: KindDateTime, DateTime: time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)}, nil},
		{KindInt, "ten", Value{}, ErrInvalidValue},
		{KindBool, "maybe", Value{}, ErrInvalidValue},
		{Kind("matrix"), "1", Value{}, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.text, func(t *testing.T) {
			got, err := ParseValue(tt.kind, tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind, got.Kind)
			assert.Equal(t, tt.want.Format(), got.Format())
		})
	}
}

func TestValue_FormatParsesBack(t *testing.T) {
	v := Value{Kind: KindDateTime, DateTime: time.Date(2026, 1, 2, 3, 4, 5, 600, time.UTC)}

	back, err := ParseValue(v.Kind, v.Format())
	require.NoError(t, err)
	assert.True(t, v.DateTime.Equal(back.DateTime))

	assert.Empty(t, Value{Kind: Kind("nope")}.Format())
}

func TestSetValue_DispatchesByKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mock.NewMockRecorder(ctrl)
	ctx := context.Background()

	r.EXPECT().SetBool(ctx, "b", true).Return(nil)
	r.EXPECT().SetInt(ctx, "e", 3).Return(nil)
	r.EXPECT().SetTimeSpan(ctx, "t", time.Second).Return(nil)

	require.NoError(t, SetValue(ctx, r, "b", Value{Kind: KindBool, Bool: true}))
	require.NoError(t, SetValue(ctx, r, "e", Value{Kind: KindEnum, Int: 3}))
	require.NoError(t, SetValue(ctx, r, "t", Value{Kind: KindTimeSpan, TimeSpan: time.Second}))
	assert.ErrorIs(t, SetValue(ctx, r, "x", Value{Kind: Kind("nope")}), ErrUnsupportedType)
}

func TestGetValue_DispatchesByKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mock.NewMockRecorder(ctrl)
	ctx := context.Background()

	r.EXPECT().GetFloat(ctx, "f", 0.0).Return(2.5, nil)
	r.EXPECT().GetDateTimeUTC(ctx, "d", MinTime).Return(MinTime, nil)

	v, err := GetValue(ctx, r, "f", KindFloat)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v.Float)

	v, err = GetValue(ctx, r, "d", KindDateTime)
	require.NoError(t, err)
	assert.True(t, MinTime.Equal(v.DateTime))

	_, err = GetValue(ctx, r, "x", Kind("nope"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
