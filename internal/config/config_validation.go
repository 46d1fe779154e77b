// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

const minSealSaltLen = 8

// validate checks that the final merged [StructuredConfig] is usable before
// any command runs.
//
// The key triple is optional, but once any part of it is set the whole
// triple must be valid. Returns nil if the configuration is valid, or an
// error wrapping one of the ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Crypto.HasKeyMaterial() {
		if err := cfg.Crypto.KeyMaterial().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCryptoConfigs, err)
		}
	}

	if cfg.Storage.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Encrypt {
		if cfg.Crypto.SealPassphrase == "" {
			return fmt.Errorf("%w: encryption requires a seal passphrase", ErrInvalidStorageConfigs)
		}
		if len(cfg.Crypto.SealSalt) < minSealSaltLen {
			return fmt.Errorf("%w: seal salt must be at least %d characters", ErrInvalidStorageConfigs, minSealSaltLen)
		}
	}

	if cfg.Domains.RemoteListURL != "" {
		u, err := url.Parse(cfg.Domains.RemoteListURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: remote list URL must be http(s)", ErrInvalidDomainsConfigs)
		}
	}
	if cfg.Domains.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidDomainsConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Workers.AutoSaveInterval < 0 {
		return fmt.Errorf("%w: negative auto-save interval", ErrInvalidWorkerConfigs)
	}
	if cfg.Workers.DomainsRefreshInterval < 0 {
		return fmt.Errorf("%w: negative domains refresh interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
