// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"fmt"
	"maps"
	"slices"
)

// VersionKey holds the number of the last settings version applied to a
// store.
const VersionKey = "AppVersion"

// AppStatus tells how the stored settings related to the running version
// when [Upgrade] ran.
type AppStatus int

const (
	// StatusReplaying means the store was already up to date.
	StatusReplaying AppStatus = iota
	// StatusFirstTimeOpened means the store held no version at all.
	StatusFirstTimeOpened
	// StatusRecentlyUpdated means at least one version was applied.
	StatusRecentlyUpdated
)

func (s AppStatus) String() string {
	switch s {
	case StatusReplaying:
		return "replaying"
	case StatusFirstTimeOpened:
		return "first-time-opened"
	case StatusRecentlyUpdated:
		return "recently-updated"
	default:
		return fmt.Sprintf("AppStatus(%d)", int(s))
	}
}

// Version is one step of the settings layout. Applying it deletes
// RemoveKeys and then writes every entry of Defaults whose key is absent.
// Keys already present keep their stored value.
type Version struct {
	Number     int
	RemoveKeys []string
	Defaults   map[string]Value
}

// UpgradeResult reports what [Upgrade] found and did. Previous is -1 when
// the store held no version.
type UpgradeResult struct {
	Status   AppStatus
	Previous int
	Current  int
	Applied  []int
}

// Upgrade brings r up to the last of versions. Versions must be listed in
// strictly ascending order of non-negative numbers; only those newer than
// the stored [VersionKey] are applied. The latest number is then stored and
// r is saved.
//
// Without versions the layout is version 0. A store written by a newer
// layout is reported as [StatusReplaying] and its version is reset to the
// latest known one.
func Upgrade(ctx context.Context, r Recorder, versions ...Version) (UpgradeResult, error) {
	if err := validateVersions(versions); err != nil {
		return UpgradeResult{}, err
	}

	previous, err := r.GetInt(ctx, VersionKey, -1)
	if err != nil {
		return UpgradeResult{}, fmt.Errorf("read settings version: %w", err)
	}

	res := UpgradeResult{Previous: previous}
	for _, v := range versions {
		if v.Number <= previous {
			continue
		}
		if err = applyVersion(ctx, r, v); err != nil {
			return res, fmt.Errorf("apply settings version %d: %w", v.Number, err)
		}
		res.Applied = append(res.Applied, v.Number)
	}

	if len(versions) > 0 {
		res.Current = versions[len(versions)-1].Number
	}

	switch {
	case previous < 0:
		res.Status = StatusFirstTimeOpened
	case previous < res.Current:
		res.Status = StatusRecentlyUpdated
	default:
		res.Status = StatusReplaying
	}

	if err = r.SetInt(ctx, VersionKey, res.Current); err != nil {
		return res, fmt.Errorf("write settings version: %w", err)
	}
	if err = r.Save(ctx); err != nil {
		return res, fmt.Errorf("save settings: %w", err)
	}
	return res, nil
}

func validateVersions(versions []Version) error {
	last := -1
	for i, v := range versions {
		if v.Number <= last {
			return fmt.Errorf("%w: version #%d has number %d after %d", ErrInvalidVersions, i, v.Number, last)
		}
		last = v.Number

		for key := range v.Defaults {
			if key == "" || key == VersionKey {
				return fmt.Errorf("%w: version %d sets reserved key %q", ErrInvalidVersions, v.Number, key)
			}
		}
	}
	return nil
}

func applyVersion(ctx context.Context, r Recorder, v Version) error {
	for _, key := range v.RemoveKeys {
		if err := r.DeleteKey(ctx, key); err != nil {
			return err
		}
	}

	for _, key := range slices.Sorted(maps.Keys(v.Defaults)) {
		ok, err := r.HasKey(ctx, key)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if err = SetValue(ctx, r, key, v.Defaults[key]); err != nil {
			return err
		}
	}
	return nil
}
