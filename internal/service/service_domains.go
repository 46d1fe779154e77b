// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
	"github.com/MKhiriev/go-prefs-keeper/internal/domains"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
)

type domainService struct {
	list          *domains.DomainList
	cryptographer crypto.Cryptographer
	checker       *domains.Checker

	logger *logger.Logger
}

// NewDomainService loads the list named by cfg.ListFile, if any, and builds
// a checker accepting its domains. Without a list file the checker starts
// from [domains.DefaultDomains]. c may be nil for plaintext lists.
func NewDomainService(cfg config.Domains, c crypto.Cryptographer, fetcher domains.ListFetcher, logger *logger.Logger) (DomainService, error) {
	svc := &domainService{cryptographer: c, logger: logger}

	defaults := domains.DefaultDomains
	if cfg.ListFile != "" {
		list, err := domains.ReadFile(cfg.ListFile)
		if err != nil {
			return nil, err
		}
		if defaults, err = domains.Decrypt(list, c); err != nil {
			return nil, fmt.Errorf("decrypt domain list %q: %w", list.Name(), err)
		}
		svc.list = list
	}

	var opts []domains.CheckerOption
	if cfg.RemoteListURL != "" && fetcher != nil {
		opts = append(opts, domains.WithRemoteList(cfg.RemoteListURL, fetcher, cfg.Separators))
	}
	svc.checker = domains.NewChecker(defaults, opts...)

	return svc, nil
}

func (s *domainService) List(ctx context.Context) ([]string, error) {
	if s.list == nil {
		return nil, ErrNoDomainList
	}
	return domains.Decrypt(s.list, s.cryptographer)
}

func (s *domainService) Check(ctx context.Context, pageURL string) (domains.Result, error) {
	if strings.TrimSpace(pageURL) == "" {
		return domains.Result{}, fmt.Errorf("%w: empty url", ErrInvalidDataProvided)
	}

	res := s.checker.Check(pageURL)
	logger.FromContext(ctx).Debug().
		Str("func", "domainService.Check").
		Str("host", res.Host).
		Stringer("state", res.State).
		Msg("page checked")
	return res, nil
}

func (s *domainService) Refresh(ctx context.Context) error {
	return s.checker.Refresh(ctx)
}
