// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
)

type settingsService struct {
	recorder settings.Recorder

	logger *logger.Logger
}

func NewSettingsService(recorder settings.Recorder, logger *logger.Logger) SettingsService {
	return &settingsService{
		recorder: recorder,
		logger:   logger,
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidDataProvided)
	}
	return nil
}

func (s *settingsService) Get(ctx context.Context, key string, kind settings.Kind) (settings.Value, error) {
	if err := validateKey(key); err != nil {
		return settings.Value{}, err
	}

	ok, err := s.recorder.HasKey(ctx, key)
	if err != nil {
		return settings.Value{}, fmt.Errorf("check setting %q: %w", key, err)
	}
	if !ok {
		return settings.Value{}, fmt.Errorf("%w: %q", ErrSettingNotFound, key)
	}

	return settings.GetValue(ctx, s.recorder, key, kind)
}

func (s *settingsService) Set(ctx context.Context, key string, value settings.Value) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := settings.SetValue(ctx, s.recorder, key, value); err != nil {
		s.logger.Err(err).Str("func", "settingsService.Set").Str("key", key).Msg("failed to store setting")
		return err
	}
	return nil
}

func (s *settingsService) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return s.recorder.DeleteKey(ctx, key)
}

func (s *settingsService) Save(ctx context.Context) error {
	return s.recorder.Save(ctx)
}
