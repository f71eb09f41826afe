package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aukio/soundbank/cmd"
	"github.com/aukio/soundbank/internal/conf"
	"github.com/aukio/soundbank/internal/logging"
)

func main() {
	logging.Init()

	settings, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if settings.Log.Enabled {
		fileLogger, closeLogger, err := logging.NewFileLogger(settings.Log.Path, "soundbank", slog.LevelInfo, &settings.Log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = closeLogger() }()
		slog.SetDefault(fileLogger)
	}

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "command error: %v\n", err)
		os.Exit(1)
	}
}
