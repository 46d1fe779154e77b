package cli

import (
	"context"

	"github.com/MKhiriev/go-prefs-keeper/internal/adapter"
	myHTTP "github.com/MKhiriev/go-prefs-keeper/internal/handler/http"
	"github.com/MKhiriev/go-prefs-keeper/internal/server"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/internal/store"
	"github.com/MKhiriev/go-prefs-keeper/internal/workers"
)

// serve runs the HTTP server until ctx is done or a stop signal arrives.
// It logs JSON through the server logger rather than the command logger.
func (a *App) serve(ctx context.Context, args []string) error {
	log := a.serverLogger()
	ctx = log.WithContext(ctx)

	storages, err := store.Open(ctx, a.cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := storages.Close(context.WithoutCancel(ctx)); err != nil {
			log.Err(err).Str("func", "App.serve").Msg("error closing storages")
		}
	}()

	fetcher := adapter.NewHTTPListFetcher(a.cfg.Domains.RequestTimeout, log)
	services, err := service.NewServices(storages.Recorder, a.cfg, fetcher, log)
	if err != nil {
		return err
	}

	if _, err = services.AppInfoService.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := services.AppInfoService.Stop(context.WithoutCancel(ctx)); err != nil {
			log.Err(err).Str("func", "App.serve").Msg("error storing serve time")
		}
	}()

	ws := workers.NewWorkers(
		workers.NewDomainsRefresher(services.DomainService, a.cfg.Workers.DomainsRefreshInterval, log),
		workers.NewAutoSaver(storages.Recorder, a.cfg.Workers.AutoSaveInterval, log),
	)

	srv, err := server.NewServer(myHTTP.NewHandler(services, log), ws, a.cfg.Server, log)
	if err != nil {
		return err
	}

	srv.RunServer(ctx)
	return nil
}
