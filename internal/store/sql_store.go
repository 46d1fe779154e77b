// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
)

const (
	settingsTable = "settings"

	upsertSuffix = "ON CONFLICT (key) DO UPDATE SET kind = excluded.kind, value = excluded.value, updated_at = excluded.updated_at"
)

// sqlStore persists settings in a relational table. Writes go straight to the
// database, so Save has nothing to flush.
type sqlStore struct {
	db      *DB
	builder sq.StatementBuilderType
	now     func() time.Time
}

// NewSQLStore returns a [settings.Store] backed by the settings table of db.
// The schema must already be migrated (see [DB.Migrate]).
func NewSQLStore(db *DB) settings.Store {
	return &sqlStore{
		db:      db,
		builder: db.statementBuilder(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqlStore) getRecord(ctx context.Context, key string) (record, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select("kind", "value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return record{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var r record
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&r.Kind, &r.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return record{}, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlStore.getRecord").
			Str("key", key).
			Msg("failed to read setting")
		return record{}, false, classifyError(err, ErrScanningRow)
	}

	return r, true, nil
}

func (s *sqlStore) putRecord(ctx context.Context, key string, r record) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Insert(settingsTable).
		Columns("key", "kind", "value", "updated_at").
		Values(key, string(r.Kind), r.Value, s.now()).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlStore.putRecord").
			Str("key", key).
			Str("kind", string(r.Kind)).
			Msg("failed to upsert setting")
		return classifyError(err, ErrExecutingQuery)
	}
	return nil
}

func (s *sqlStore) GetInt(ctx context.Context, key string, defaultValue int) (int, error) {
	r, ok, err := s.getRecord(ctx, key)
	if err != nil || !ok {
		return defaultValue, err
	}
	return r.asInt(defaultValue), nil
}

func (s *sqlStore) SetInt(ctx context.Context, key string, value int) error {
	return s.putRecord(ctx, key, intRecord(value))
}

func (s *sqlStore) GetFloat(ctx context.Context, key string, defaultValue float64) (float64, error) {
	r, ok, err := s.getRecord(ctx, key)
	if err != nil || !ok {
		return defaultValue, err
	}
	return r.asFloat(defaultValue), nil
}

func (s *sqlStore) SetFloat(ctx context.Context, key string, value float64) error {
	return s.putRecord(ctx, key, floatRecord(value))
}

func (s *sqlStore) GetString(ctx context.Context, key string, defaultValue string) (string, error) {
	r, ok, err := s.getRecord(ctx, key)
	if err != nil || !ok {
		return defaultValue, err
	}
	return r.asString(defaultValue), nil
}

func (s *sqlStore) SetString(ctx context.Context, key string, value string) error {
	return s.putRecord(ctx, key, stringRecord(value))
}

func (s *sqlStore) HasKey(ctx context.Context, key string) (bool, error) {
	query, args, err := s.builder.
		Select("COUNT(*)").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqlStore.HasKey").
			Str("key", key).
			Msg("failed to count setting")
		return false, classifyError(err, ErrScanningRow)
	}
	return n > 0, nil
}

func (s *sqlStore) DeleteKey(ctx context.Context, key string) error {
	return s.exec(ctx, "sqlStore.DeleteKey", s.builder.Delete(settingsTable).Where(sq.Eq{"key": key}))
}

func (s *sqlStore) DeleteAll(ctx context.Context) error {
	return s.exec(ctx, "sqlStore.DeleteAll", s.builder.Delete(settingsTable))
}

// Save implements [settings.Store]. Every write is already committed.
func (s *sqlStore) Save(_ context.Context) error {
	return nil
}

func (s *sqlStore) exec(ctx context.Context, fn string, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to execute statement")
		return classifyError(err, ErrExecutingQuery)
	}
	return nil
}
