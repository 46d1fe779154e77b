// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, an optional JSON file, environment
// variables, and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Crypto holds the key material for the string cryptographer and the
	// passphrase for sealed settings.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage selects and configures the settings backing store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Domains configures the domain allow-list and host checker.
	Domains Domains `envPrefix:"DOMAINS_"`

	// Server holds the HTTP listener settings of the serve command.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// App carries build metadata reported by the version endpoint.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Crypto holds secrets. None of them are ever logged.
type Crypto struct {
	// PasswordHash is the PBKDF2 password of the string cryptographer.
	// Env: CRYPTO_PASSWORD_HASH
	PasswordHash string `env:"PASSWORD_HASH"`

	// SaltKey is the PBKDF2 salt, at least 8 ASCII characters.
	// Env: CRYPTO_SALT_KEY
	SaltKey string `env:"SALT_KEY"`

	// IV is the 16-character CBC initialization vector.
	// Env: CRYPTO_IV
	IV string `env:"IV"`

	// SealPassphrase keys the encrypted settings store (Argon2id).
	// Env: CRYPTO_SEAL_PASSPHRASE
	SealPassphrase string `env:"SEAL_PASSPHRASE"`

	// SealSalt is the Argon2id salt for SealPassphrase.
	// Env: CRYPTO_SEAL_SALT
	SealSalt string `env:"SEAL_SALT"`
}

// KeyMaterial returns the cryptographer triple.
func (c Crypto) KeyMaterial() crypto.KeyMaterial {
	return crypto.KeyMaterial{
		PasswordHash: c.PasswordHash,
		SaltKey:      c.SaltKey,
		IV:           c.IV,
	}
}

// HasKeyMaterial reports whether any part of the triple is configured.
func (c Crypto) HasKeyMaterial() bool {
	return c.PasswordHash != "" || c.SaltKey != "" || c.IV != ""
}

// Storage configures the settings backing store.
type Storage struct {
	// DSN selects the backend:
	//   - "memory" or ":memory:"          in-process only
	//   - "file:<path>" or "*.json"       JSON document
	//   - "sqlite:<path>", "*.db"         SQLite database
	//   - "postgres://..."                PostgreSQL
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// Encrypt seals every stored value with Crypto.SealPassphrase.
	// Env: STORAGE_ENCRYPT
	Encrypt bool `env:"ENCRYPT"`
}

// Domains configures the allow-list and checker.
type Domains struct {
	// Name labels generated lists.
	// Env: DOMAINS_NAME
	Name string `env:"NAME"`

	// ListFile is the JSON domain list document read by the checker.
	// Env: DOMAINS_LIST_FILE
	ListFile string `env:"LIST_FILE"`

	// RemoteListURL is an optional text document of extra accepted domains.
	// Env: DOMAINS_REMOTE_URL
	RemoteListURL string `env:"REMOTE_URL"`

	// Separators split the remote document into domains.
	// Env: DOMAINS_SEPARATORS (semicolon separated, "\n" escapes allowed)
	Separators []string `env:"SEPARATORS" envSeparator:";"`

	// RequestTimeout bounds the remote list download.
	// Env: DOMAINS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the HTTP listener settings.
type Server struct {
	// HTTPAddress is the "host:port" the serve command listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the per-request handler timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// AutoSaveInterval is how often the serve command flushes settings.
	// Zero disables auto-save.
	// Env: WORKERS_AUTOSAVE_INTERVAL
	AutoSaveInterval time.Duration `env:"AUTOSAVE_INTERVAL"`

	// DomainsRefreshInterval is how often the serve command downloads the
	// remote domain list again. Zero downloads it once at startup.
	// Env: WORKERS_DOMAINS_REFRESH_INTERVAL
	DomainsRefreshInterval time.Duration `env:"DOMAINS_REFRESH_INTERVAL"`
}

// App holds application metadata. Version is normally stamped at build
// time by the prefs command.
type App struct {
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Verbose lowers the command log level to debug.
	// Env: APP_VERBOSE
	Verbose bool `env:"VERBOSE"`
}

// Defaults returns the built-in configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Version: "N/A"},
		Storage: Storage{DSN: "memory"},
		Domains: Domains{
			Name:           "domains",
			Separators:     []string{"\n", ","},
			RequestTimeout: 10 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources (see package documentation for priority). args are the
// command-line arguments without the program name; the returned slice holds
// the arguments left after flag parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	return cfg, b.rest, err
}
