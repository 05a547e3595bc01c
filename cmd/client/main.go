package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-currency-converter/internal/adapter"
	"github.com/MKhiriev/go-currency-converter/internal/client"
	"github.com/MKhiriev/go-currency-converter/internal/config"
	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/internal/service"
	"github.com/MKhiriev/go-currency-converter/internal/store"
	"github.com/MKhiriev/go-currency-converter/internal/tui"
	"github.com/MKhiriev/go-currency-converter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	log := logger.NewClientLogger("currency-converter")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	authAdapter, err := adapter.NewHTTPAuthAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth adapter")
	}

	rateAdapter, err := adapter.NewHTTPRateAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create rate adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, authAdapter, rateAdapter, cfg.DefaultRequest(), log)

	ui, err := tui.New(services, cfg.Workers, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.DefaultRequest(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
