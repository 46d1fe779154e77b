// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
)

// fileStore buffers writes in memory and persists them as one JSON document
// when Save is called.
type fileStore struct {
	*memoryStore
	path string
}

// filePersistedState is the on-disk layout of a file store.
type filePersistedState struct {
	Version  int               `json:"version"`
	Settings map[string]record `json:"settings"`
}

const fileStateVersion = 1

// NewFileStore opens the JSON settings file at path. A missing file is
// treated as an empty store and is created on the first Save.
func NewFileStore(path string) (settings.Store, error) {
	s := &fileStore{
		memoryStore: &memoryStore{table: newTable()},
		path:        path,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read settings file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode settings file: %w", err)
	}
	if st.Settings != nil {
		s.records = st.Settings
	}
	return nil
}

// Save writes the current state to a temporary file and renames it over the
// target, so readers never observe a partially written document.
func (s *fileStore) Save(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	payload, err := json.MarshalIndent(filePersistedState{Version: fileStateVersion, Settings: s.records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp settings file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp settings file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp settings file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace settings file: %w", err)
	}

	s.dirty = false
	log.Debug().Str("func", "fileStore.Save").Str("path", s.path).Int("settings", len(s.records)).Msg("settings saved")
	return nil
}
