package cli

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-prefs-keeper/internal/processor"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
	"github.com/MKhiriev/go-prefs-keeper/internal/store"
)

// withRecorder opens the configured store, runs fn, then closes the store.
func (a *App) withRecorder(ctx context.Context, fn func(r settings.Recorder) error) (err error) {
	storages, err := store.Open(ctx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, storages.Close(ctx))
	}()

	return fn(storages.Recorder)
}

// withSettings runs fn against the settings service of the configured store.
func (a *App) withSettings(ctx context.Context, fn func(svc service.SettingsService) error) error {
	return a.withRecorder(ctx, func(r settings.Recorder) error {
		return fn(service.NewSettingsService(r, a.logger))
	})
}

func (a *App) getSetting(ctx context.Context, args []string) error {
	fs := a.newFlagSet("get")
	kindName := fs.String("kind", string(settings.KindString), "setting kind")
	if err := fs.Parse(args); err != nil {
		return err
	}
	kind, err := settings.ParseKind(*kindName)
	if err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: key", ErrMissingArgument)
	}

	return a.withSettings(ctx, func(svc service.SettingsService) error {
		v, err := svc.Get(ctx, fs.Arg(0), kind)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, v.Format())
		return nil
	})
}

func (a *App) setSetting(ctx context.Context, args []string) error {
	fs := a.newFlagSet("set")
	kindName := fs.String("kind", string(settings.KindString), "setting kind")
	minText := fs.String("min", "", "lower bound for int and float values")
	maxText := fs.String("max", "", "upper bound for int and float values")
	if err := fs.Parse(args); err != nil {
		return err
	}
	kind, err := settings.ParseKind(*kindName)
	if err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("%w: key and value", ErrMissingArgument)
	}

	v, err := settings.ParseValue(kind, fs.Arg(1))
	if err != nil {
		return err
	}
	if v, err = a.applyBounds(v, *minText, *maxText); err != nil {
		return err
	}

	return a.withSettings(ctx, func(svc service.SettingsService) error {
		return svc.Set(ctx, fs.Arg(0), v)
	})
}

// applyBounds clamps int and float values to the -min/-max bounds.
func (a *App) applyBounds(v settings.Value, minText, maxText string) (settings.Value, error) {
	if minText == "" && maxText == "" {
		return v, nil
	}

	var err error
	switch v.Kind {
	case settings.KindInt:
		v.Int, err = bounded(&a.intBounds, v.Int, minText, maxText, strconv.Atoi)
	case settings.KindFloat:
		v.Float, err = bounded(&a.floatBounds, v.Float, minText, maxText, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	default:
		err = fmt.Errorf("%w: got %s", ErrBoundsNotApplicable, v.Kind)
	}
	return v, err
}

func bounded[T cmp.Ordered](c *processor.Cache[T], v T, minText, maxText string, parse func(string) (T, error)) (T, error) {
	var lo, hi T
	var err error
	if minText != "" {
		if lo, err = parse(minText); err != nil {
			return v, fmt.Errorf("%w: min %q: %w", settings.ErrInvalidValue, minText, err)
		}
	}
	if maxText != "" {
		if hi, err = parse(maxText); err != nil {
			return v, fmt.Errorf("%w: max %q: %w", settings.ErrInvalidValue, maxText, err)
		}
	}

	var p processor.Processor[T]
	switch {
	case minText != "" && maxText != "":
		if p, err = c.Clamp(lo, hi); err != nil {
			return v, err
		}
	case minText != "":
		p = c.MinCap(lo)
	default:
		p = c.MaxCap(hi)
	}
	return p.Process(v), nil
}

func (a *App) deleteSetting(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: key", ErrMissingArgument)
	}

	return a.withSettings(ctx, func(svc service.SettingsService) error {
		return svc.Delete(ctx, args[0])
	})
}
