// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/processor"
)

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"encrypt":          {"encrypt [text...]", (*App).encrypt},
	"decrypt":          {"decrypt [ciphertext...]", (*App).decrypt},
	"password":         {"password [-length n] [-alphabet chars] [-copy]", (*App).password},
	"domains-generate": {"domains-generate [-o file] [-text file] [domain...]", (*App).generateDomains},
	"domains-show":     {"domains-show [file]", (*App).showDomains},
	"domains-check":    {"domains-check url", (*App).checkDomain},
	"get":              {"get [-kind kind] key", (*App).getSetting},
	"set":              {"set [-kind kind] [-min n] [-max n] key value", (*App).setSetting},
	"records-add":      {"records-add [-capacity n] [-asc] [-name s] key value", (*App).addRecord},
	"records-show":     {"records-show [-capacity n] [-asc] key", (*App).showRecords},
	"delete":           {"delete key", (*App).deleteSetting},
	"serve":            {"serve", (*App).serve},
}

// App runs prefs commands against a merged configuration.
type App struct {
	cfg *config.StructuredConfig

	in  io.Reader
	out io.Writer

	// copyToClipboard backs password -copy.
	copyToClipboard func(text string) error

	logger *logger.Logger
	// serverLogger builds the JSON logger of the serve command.
	serverLogger func() *logger.Logger

	intBounds   processor.Cache[int]
	floatBounds processor.Cache[float64]
}

// NewApp returns an App reading from os.Stdin and writing to out.
func NewApp(cfg *config.StructuredConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		cfg:             cfg,
		in:              os.Stdin,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
		serverLogger:    newServerLogger,
	}
}

// Run executes the command named by args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return fmt.Errorf("%w: command", ErrMissingArgument)
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.Usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(a, a.logger.WithContext(ctx), args[1:])
}

// Usage lists the commands on the output writer.
func (a *App) Usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: prefs [global flags] command [command flags]\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", commands[name].usage)
	}
	io.WriteString(a.out, b.String())
}

func newServerLogger() *logger.Logger {
	return logger.NewLogger("server")
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// cryptographer returns the configured string cryptographer, or nil when
// optional is set and no key material is configured.
func (a *App) cryptographer(optional bool) (crypto.Cryptographer, error) {
	if !a.cfg.Crypto.HasKeyMaterial() {
		if optional {
			return nil, nil
		}
		return nil, ErrNoKeyMaterial
	}

	c, err := crypto.NewStringCryptographer(a.cfg.Crypto.KeyMaterial())
	if err != nil {
		return nil, err
	}
	return c, nil
}

// inputs returns args, or the non-empty lines of the App input when args is
// empty.
func (a *App) inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	data, err := io.ReadAll(a.in)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var lines []string
	for line := range strings.Lines(string(data)) {
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
