package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-prefs-keeper/internal/domains"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
)

// SettingsService exposes typed settings by key to the HTTP handler and the
// prefs command.
type SettingsService interface {
	// Get returns the value of key read as kind, or [ErrSettingNotFound].
	Get(ctx context.Context, key string, kind settings.Kind) (settings.Value, error)
	Set(ctx context.Context, key string, value settings.Value) error
	Delete(ctx context.Context, key string) error
	Save(ctx context.Context) error
}

// DomainService serves the configured domain list and checks page URLs
// against it.
type DomainService interface {
	// List returns the plaintext domains of the configured list.
	List(ctx context.Context) ([]string, error)
	Check(ctx context.Context, pageURL string) (domains.Result, error)
	Refresh(ctx context.Context) error
}

// AppInfo describes the running application and its stored settings.
// Status is empty and SettingsVersion is -1 until Start has run.
type AppInfo struct {
	Version         string
	SettingsVersion int
	Status          string
	ServeTime       time.Duration
}

// AppInfoService reports the application version and owns the settings
// layout upgrade and the accumulated serve time.
type AppInfoService interface {
	// Start upgrades the stored settings layout and starts the serve-time
	// clock.
	Start(ctx context.Context) (settings.UpgradeResult, error)
	// Stop stores the accumulated serve time. It is a no-op before Start.
	Stop(ctx context.Context) error
	GetAppInfo(ctx context.Context) AppInfo
}
