package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
)

const defaultRecordsCapacity = 10

type recordsFlags struct {
	capacity *int
	asc      *bool
}

func newRecordsFlags(fs *flag.FlagSet) recordsFlags {
	return recordsFlags{
		capacity: fs.Int("capacity", defaultRecordsCapacity, "number of records kept"),
		asc:      fs.Bool("asc", false, "rank the lowest value first"),
	}
}

func (f recordsFlags) open(key string) (*settings.SortedRecords[float64], error) {
	order := settings.Descending
	if *f.asc {
		order = settings.Ascending
	}
	return settings.NewSortedRecords(key, *f.capacity, order, settings.FloatRecordCodec)
}

func (a *App) addRecord(ctx context.Context, args []string) error {
	fs := a.newFlagSet("records-add")
	rf := newRecordsFlags(fs)
	name := fs.String("name", "", "record holder")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("%w: key and value", ErrMissingArgument)
	}

	value, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", settings.ErrInvalidValue, fs.Arg(1), err)
	}
	records, err := rf.open(fs.Arg(0))
	if err != nil {
		return err
	}

	return a.withRecorder(ctx, func(r settings.Recorder) error {
		if err := records.Load(ctx, r); err != nil {
			return err
		}
		rank := records.Add(value, *name)
		if rank < 0 {
			fmt.Fprintln(a.out, "not ranked")
			return nil
		}
		if err := records.Save(ctx, r); err != nil {
			return err
		}
		fmt.Fprintln(a.out, rank+1)
		return nil
	})
}

func (a *App) showRecords(ctx context.Context, args []string) error {
	fs := a.newFlagSet("records-show")
	rf := newRecordsFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: key", ErrMissingArgument)
	}
	records, err := rf.open(fs.Arg(0))
	if err != nil {
		return err
	}

	return a.withRecorder(ctx, func(r settings.Recorder) error {
		if err := records.Load(ctx, r); err != nil {
			return err
		}
		for i, rec := range records.All() {
			fmt.Fprintf(a.out, "%d\t%s\t%s\t%s\n", i+1,
				settings.FloatRecordCodec.Format(rec.Value), rec.Name, rec.AchievedUTC.Format(time.RFC3339))
		}
		return nil
	})
}
