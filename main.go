package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"terminal-weather/datasource"
	"terminal-weather/models"
	"terminal-weather/providers/weatherapi"
	"terminal-weather/weather"

	"github.com/davecgh/go-spew/spew"
)

// Exit codes
const (
	exitOK            = 0
	exitNoCredentials = 1
	exitFailure       = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "tw: ", 0)

	// Load environment variables from .env file
	if err := datasource.LoadEnvFile(".env"); err != nil {
		logger.Printf("Warning: %v", err)
	}

	config, err := datasource.LoadConfig("tw", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}

	location, err := models.NewLocation(config.Terms...)
	if err != nil {
		fmt.Fprintln(stderr, "No location entered")
		return exitOK
	}

	key, err := datasource.LoadAPIKey(config.KeyFile, config.KeyEnv)
	if err != nil {
		fmt.Fprintln(stderr, "Key not found")
		return exitNoCredentials
	}

	opts := []weatherapi.Option{weatherapi.WithBaseURL(config.BaseURL)}
	if config.Verbose {
		opts = append(opts, weatherapi.WithLogger(logger))
	}
	provider := weatherapi.NewProvider(key, opts...)
	defer provider.Close()

	client, err := weather.NewClient(location, provider)
	if err != nil {
		logger.Printf("Error: %v", err)
		return exitFailure
	}

	summary, err := weather.BuildSummary(ctx, client)
	if err != nil {
		logger.Printf("Error fetching weather for %s: %v", location, err)
		return exitFailure
	}

	if config.Debug {
		// Cached by now, this never refetches
		if report, err := client.Report(ctx); err == nil {
			spew.Fdump(stderr, report)
		}
	}

	units := weather.Imperial
	if config.Metric {
		units = weather.Metric
	}
	if err := weather.WriteSummary(stdout, summary, units); err != nil {
		logger.Printf("Error: %v", err)
		return exitFailure
	}

	return exitOK
}
