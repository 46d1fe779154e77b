package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
)

// AutoSaver flushes settings every interval. A zero interval disables it.
type AutoSaver struct {
	tickerJob
}

func NewAutoSaver(saver Saver, interval time.Duration, log *logger.Logger) *AutoSaver {
	a := &AutoSaver{}
	a.interval = interval
	a.fn = func(ctx context.Context) {
		if err := saver.Save(ctx); err != nil {
			log.Err(err).Str("func", "AutoSaver").Msg("failed to save settings")
			return
		}
		log.Debug().Str("func", "AutoSaver").Msg("settings saved")
	}
	return a
}

// Run implements [Worker]. Nothing is started when the interval is not
// positive.
func (a *AutoSaver) Run(ctx context.Context) {
	if a.interval <= 0 {
		return
	}
	a.tickerJob.Run(ctx)
}

// DomainsRefresher downloads the remote domain list once at start and then
// every interval, if the interval is positive.
type DomainsRefresher struct {
	tickerJob
}

func NewDomainsRefresher(refresher Refresher, interval time.Duration, log *logger.Logger) *DomainsRefresher {
	r := &DomainsRefresher{}
	r.interval = interval
	r.runAtStart = true
	r.fn = func(ctx context.Context) {
		// the checker logs failures and keeps the default domains
		if err := refresher.Refresh(ctx); err != nil {
			log.Debug().Str("func", "DomainsRefresher").Err(err).Msg("remote domain list not refreshed")
		}
	}
	return r
}
