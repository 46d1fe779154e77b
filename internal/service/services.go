package service

import (
	"fmt"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
	"github.com/MKhiriev/go-prefs-keeper/internal/domains"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
)

type Services struct {
	SettingsService SettingsService
	DomainService   DomainService
	AppInfoService  AppInfoService
}

// NewServices builds every service. A string cryptographer is created only
// when the key material is configured.
func NewServices(recorder settings.Recorder, cfg *config.StructuredConfig, fetcher domains.ListFetcher, logger *logger.Logger) (*Services, error) {
	var c crypto.Cryptographer
	if cfg.Crypto.HasKeyMaterial() {
		sc, err := crypto.NewStringCryptographer(cfg.Crypto.KeyMaterial())
		if err != nil {
			return nil, fmt.Errorf("create cryptographer: %w", err)
		}
		c = sc
	}

	domainService, err := NewDomainService(cfg.Domains, c, fetcher, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, recorder, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SettingsService: NewSettingsService(recorder, logger),
		DomainService:   domainService,
		AppInfoService:  appInfoService,
	}, nil
}
