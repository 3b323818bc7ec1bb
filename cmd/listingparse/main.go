package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/listingparse/internal/app"
	"github.com/hyperifyio/listingparse/internal/heuristic"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Optional .env for the LISTING_* defaults below; absence is fine.
	_ = godotenv.Load()

	var (
		inputPath  string
		outDir     string
		configPath string
		maxBlocks  int
		enablePDF  bool
		verbose    bool
	)

	flag.StringVar(&inputPath, "in", envOr("LISTING_IN", app.DefaultInputPath), "Path to the saved listing-page HTML document")
	flag.StringVar(&outDir, "out", envOr("LISTING_OUT", app.DefaultOutDir), "Directory to write parsed.json and parsed.csv into")
	flag.StringVar(&configPath, "config", os.Getenv("LISTING_CONFIG"), "Optional YAML/JSON config file with selector overrides")
	flag.IntVar(&maxBlocks, "max.blocks", heuristic.DefaultMaxBlocks, "Maximum candidate review blocks processed per document")
	flag.BoolVar(&enablePDF, "pdf", false, "Also write a one-page PDF run summary")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputPath: inputPath,
		OutDir:    outDir,
		MaxBlocks: maxBlocks,
		Selectors: heuristic.Defaults(),
		EnablePDF: enablePDF,
		Verbose:   verbose,
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
		if fc.Verbose && !verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	rows, err := app.New(cfg).Run()
	if err != nil {
		// Exit code policy: only I/O failures abort; degraded extraction has
		// already been reduced to absent fields upstream.
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s\n", rows, cfg.OutDir)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
