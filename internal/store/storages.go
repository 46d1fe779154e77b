// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
)

type backend string

const (
	backendMemory   backend = "memory"
	backendFile     backend = "file"
	backendSQLite   backend = "sqlite"
	backendPostgres backend = "postgres"
)

// Storages is an opened settings backend. Close releases the database
// connection, if any, after flushing pending writes.
type Storages struct {
	Recorder settings.Recorder

	db *DB
}

// parseDSN resolves a storage DSN to a backend and its target.
//
//	memory, :memory:             in-process map
//	file:<path>, <path>.json     JSON document
//	sqlite:<path>, <path>.db     SQLite database file
//	postgres://..., postgresql://...
func parseDSN(dsn string) (backend, string, error) {
	switch {
	case dsn == "memory" || dsn == ":memory:":
		return backendMemory, "", nil
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		return backendPostgres, dsn, nil
	case strings.HasPrefix(dsn, "file:"):
		return backendFile, strings.TrimPrefix(dsn, "file:"), nil
	case strings.HasPrefix(dsn, "sqlite:"):
		return backendSQLite, strings.TrimPrefix(dsn, "sqlite:"), nil
	}

	switch strings.ToLower(filepath.Ext(dsn)) {
	case ".json":
		return backendFile, dsn, nil
	case ".db", ".sqlite", ".sqlite3":
		return backendSQLite, dsn, nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnknownDSN, dsn)
}

// Open connects the backend named by cfg.Storage.DSN, applies migrations
// for SQL backends and wraps the store in an encrypted store when
// cfg.Storage.Encrypt is set.
func Open(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	kind, target, err := parseDSN(cfg.Storage.DSN)
	if err != nil {
		log.Err(err).Str("func", "store.Open").Msg("cannot resolve storage")
		return nil, err
	}

	var (
		base settings.Store
		db   *DB
	)

	switch kind {
	case backendMemory:
		base = NewMemoryStore()
	case backendFile:
		if base, err = NewFileStore(target); err != nil {
			return nil, err
		}
	case backendSQLite:
		if db, err = NewConnectSQLite(ctx, target, log); err != nil {
			return nil, err
		}
	case backendPostgres:
		if db, err = NewConnectPostgres(ctx, target, log); err != nil {
			return nil, err
		}
	}

	if db != nil {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "store.Open").Str("dialect", string(db.Dialect())).Msg("migration failed")
			db.Close()
			return nil, err
		}
		base = NewSQLStore(db)
	}

	if cfg.Storage.Encrypt {
		sealer, err := crypto.NewSealer(cfg.Crypto.SealPassphrase, []byte(cfg.Crypto.SealSalt), crypto.DefaultArgon2Params)
		if err != nil {
			if db != nil {
				db.Close()
			}
			return nil, fmt.Errorf("create sealer: %w", err)
		}
		base = NewEncryptedStore(base, sealer)
	}

	log.Debug().Str("func", "store.Open").Str("backend", string(kind)).Bool("encrypted", cfg.Storage.Encrypt).Msg("storage opened")

	return &Storages{
		Recorder: settings.NewRecorder(base),
		db:       db,
	}, nil
}

// Close saves pending changes and closes the database connection.
func (s *Storages) Close(ctx context.Context) error {
	saveErr := s.Recorder.Save(ctx)
	if s.db == nil {
		return saveErr
	}
	if err := s.db.Close(); err != nil && saveErr == nil {
		return err
	}
	return saveErr
}
