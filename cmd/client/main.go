package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bookmarks/internal/adapter"
	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()

	log := logger.NewClientLogger("go-bookmarks-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	if len(cfg.Args) == 1 && cfg.Args[0] == "build-info" {
		printBuildInfo(buildInfo)
		return
	}

	api, err := adapter.NewHTTPBookmarksAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create bookmarks api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, api, cfg.Args, os.Stdout); err != nil {
		if errors.Is(err, errNoCommand) || errors.Is(err, errUnknownCommand) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
