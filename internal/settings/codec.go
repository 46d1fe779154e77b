// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"strconv"
	"time"
)

const (
	// ticksPerSecond is the number of 100 ns ticks in a second.
	ticksPerSecond = int64(time.Second / 100)
	// epochOffsetSeconds is the distance from 0001-01-01 to 1970-01-01.
	epochOffsetSeconds = int64(62135596800)
)

// MinTime is the zero point of the tick encoding: 0001-01-01T00:00:00Z.
// It is what a malformed stored date-time decodes to.
var MinTime = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// BoolToInt encodes a flag as 1 or 0.
func BoolToInt(flag bool) int {
	if flag {
		return 1
	}
	return 0
}

// IntToBool treats any non-zero value as true.
func IntToBool(value int) bool {
	return value != 0
}

// TimeToTicks returns the number of 100 ns ticks between MinTime and t.
// Sub-tick precision is truncated.
func TimeToTicks(t time.Time) int64 {
	secs := t.Unix() + epochOffsetSeconds
	return secs*ticksPerSecond + int64(t.Nanosecond())/100
}

// TicksToTime is the inverse of [TimeToTicks]; the result is in UTC.
func TicksToTime(ticks int64) time.Time {
	secs := ticks / ticksPerSecond
	rem := ticks % ticksPerSecond
	if rem < 0 {
		secs--
		rem += ticksPerSecond
	}
	return time.Unix(secs-epochOffsetSeconds, rem*100).UTC()
}

// DurationToTicks converts d to 100 ns ticks, truncating sub-tick precision.
func DurationToTicks(d time.Duration) int64 {
	return int64(d / 100)
}

// TicksToDuration is the inverse of [DurationToTicks].
func TicksToDuration(ticks int64) time.Duration {
	return time.Duration(ticks) * 100
}

// FormatDateTimeUTC encodes t as its decimal tick count.
func FormatDateTimeUTC(t time.Time) string {
	return strconv.FormatInt(TimeToTicks(t), 10)
}

// ParseDateTimeUTC decodes a tick string, returning MinTime when value is
// not a valid integer.
func ParseDateTimeUTC(value string) time.Time {
	ticks, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return MinTime
	}
	return TicksToTime(ticks)
}

// FormatTimeSpan encodes d as its decimal tick count.
func FormatTimeSpan(d time.Duration) string {
	return strconv.FormatInt(DurationToTicks(d), 10)
}

// ParseTimeSpan decodes a tick string, returning zero when value is not a
// valid integer.
func ParseTimeSpan(value string) time.Duration {
	ticks, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return TicksToDuration(ticks)
}
