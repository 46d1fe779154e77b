package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
)

// ServeTimeKey stores the accumulated running time of the serve command.
const ServeTimeKey = "serve_time"

// settingsVersions is the layout history of the stored settings. Append
// new versions; never renumber existing ones.
var settingsVersions = []settings.Version{
	{Number: 0},
	{Number: 1, Defaults: map[string]settings.Value{
		ServeTimeKey: {Kind: settings.KindTimeSpan},
	}},
}

type appInfoService struct {
	appVersion string
	recorder   settings.Recorder
	serveTime  *settings.PlayTime

	mu      sync.Mutex
	upgrade *settings.UpgradeResult

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, recorder settings.Recorder, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if recorder == nil {
		return nil, ErrNoRecorder
	}

	return &appInfoService{
		appVersion: cfg.Version,
		recorder:   recorder,
		serveTime:  settings.NewPlayTime(ServeTimeKey),
		logger:     logger,
	}, nil
}

func (s *appInfoService) Start(ctx context.Context) (settings.UpgradeResult, error) {
	res, err := settings.Upgrade(ctx, s.recorder, settingsVersions...)
	if err != nil {
		s.logger.Err(err).Str("func", "appInfoService.Start").Msg("error upgrading settings")
		return res, fmt.Errorf("upgrade settings: %w", err)
	}

	if err = s.serveTime.Load(ctx, s.recorder); err != nil {
		s.logger.Err(err).Str("func", "appInfoService.Start").Msg("error loading serve time")
		return res, fmt.Errorf("load serve time: %w", err)
	}

	s.mu.Lock()
	s.upgrade = &res
	s.mu.Unlock()

	s.logger.Info().
		Str("status", res.Status.String()).
		Int("previous", res.Previous).
		Int("current", res.Current).
		Ints("applied", res.Applied).
		Msg("settings layout checked")
	return res, nil
}

func (s *appInfoService) Stop(ctx context.Context) error {
	s.mu.Lock()
	started := s.upgrade != nil
	s.mu.Unlock()
	if !started {
		return nil
	}

	if err := s.serveTime.Save(ctx, s.recorder); err != nil {
		return fmt.Errorf("save serve time: %w", err)
	}
	return s.recorder.Save(ctx)
}

func (s *appInfoService) GetAppInfo(ctx context.Context) AppInfo {
	info := AppInfo{Version: s.appVersion, SettingsVersion: -1}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.upgrade != nil {
		info.SettingsVersion = s.upgrade.Current
		info.Status = s.upgrade.Status.String()
		info.ServeTime = s.serveTime.Total().Truncate(time.Second)
	}
	return info
}
