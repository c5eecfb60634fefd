package main

import (
	"context"
	"fmt"

	"github.com/akarpov/passvault/internal/app"
	"github.com/akarpov/passvault/internal/config"
	"github.com/akarpov/passvault/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("passvault").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("passvault", cfg.Log.Path)

	vaultApp, err := app.NewApp(log.WithContext(context.Background()), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init vault app error")
	}

	if err = vaultApp.Run(); err != nil {
		log.Fatal().Err(err).Msg("vault run error")
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

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
