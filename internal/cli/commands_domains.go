package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-prefs-keeper/internal/adapter"
	"github.com/MKhiriev/go-prefs-keeper/internal/domains"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
)

const defaultListFile = "domains.json"

func (a *App) listFile(fromArgs []string) string {
	switch {
	case len(fromArgs) > 0:
		return fromArgs[0]
	case a.cfg.Domains.ListFile != "":
		return a.cfg.Domains.ListFile
	default:
		return defaultListFile
	}
}

// generateDomains writes a domain list document, encrypting entries when
// key material is configured. Without arguments the default domains are
// used.
func (a *App) generateDomains(ctx context.Context, args []string) error {
	fs := a.newFlagSet("domains-generate")
	out := fs.String("o", "", "domain list document to write")
	textOut := fs.String("text", "", "also write the plaintext list as text to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := a.cryptographer(true)
	if err != nil {
		return err
	}

	entries := fs.Args()
	if len(entries) == 0 {
		entries = domains.DefaultDomains
	}

	list, err := domains.Generate(a.cfg.Domains.Name, entries, c)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = a.listFile(nil)
	}
	if err = domains.WriteFile(path, list); err != nil {
		return err
	}
	a.logger.Info().Str("file", path).Int("domains", list.Len()).Bool("encrypted", c != nil).Msg("domain list generated")

	if *textOut != "" {
		f, err := os.Create(*textOut)
		if err != nil {
			return fmt.Errorf("create text list: %w", err)
		}
		if err = domains.WriteText(f, entries); err != nil {
			f.Close()
			return fmt.Errorf("write text list: %w", err)
		}
		if err = f.Close(); err != nil {
			return fmt.Errorf("write text list: %w", err)
		}
	}

	return domains.Describe(a.out, list.Name(), entries)
}

// showDomains prints the plaintext entries of a domain list document.
func (a *App) showDomains(ctx context.Context, args []string) error {
	c, err := a.cryptographer(true)
	if err != nil {
		return err
	}

	list, err := domains.ReadFile(a.listFile(args))
	if err != nil {
		return err
	}
	entries, err := domains.Decrypt(list, c)
	if err != nil {
		return err
	}

	return domains.Describe(a.out, list.Name(), entries)
}

// checkDomain reports whether a page URL is accepted by the configured
// domain list and remote list.
func (a *App) checkDomain(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: url", ErrMissingArgument)
	}

	c, err := a.cryptographer(true)
	if err != nil {
		return err
	}

	fetcher := adapter.NewHTTPListFetcher(a.cfg.Domains.RequestTimeout, a.logger)
	svc, err := service.NewDomainService(a.cfg.Domains, c, fetcher, a.logger)
	if err != nil {
		return err
	}

	// a failed download is logged by the checker and the defaults still apply
	_ = svc.Refresh(ctx)

	res, err := svc.Check(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\t%s\n", res.State, res.Host)
	return nil
}
