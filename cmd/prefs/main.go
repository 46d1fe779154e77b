package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-prefs-keeper/internal/cli"
	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printBuildInfo()
		cli.NewApp(config.Defaults(), os.Stdout, logger.Nop()).Usage()
		return
	}

	log := logger.NewCLILogger("prefs", os.Stderr, cfg != nil && cfg.App.Verbose)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}
	if cfg.App.Verbose {
		printBuildInfo()
	}

	app := cli.NewApp(cfg, os.Stdout, log)
	if err = app.Run(context.Background(), args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
