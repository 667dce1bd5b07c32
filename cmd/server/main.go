// Package main - Entry point for the site server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/MaRkS1234567/MySite-web/adapters/telegram"
	"github.com/MaRkS1234567/MySite-web/api"
	"github.com/MaRkS1234567/MySite-web/core/pricing"
	"github.com/MaRkS1234567/MySite-web/internal/config"
	"github.com/MaRkS1234567/MySite-web/internal/logging"
	"github.com/MaRkS1234567/MySite-web/site"
)

const version = "1.0.0"

func main() {
	cfgFile := flag.String("config", "", "Path to config file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	if err := cfg.ValidateRelay(); err != nil {
		logging.Fatal("relay credentials missing", zap.Error(err))
	}

	table := pricing.DefaultTable()
	if cfg.Pricing.TablePath != "" {
		table, err = pricing.LoadTable(cfg.Pricing.TablePath)
		if err != nil {
			logging.Fatal("failed to load price table",
				zap.String("path", cfg.Pricing.TablePath),
				zap.Error(err))
		}
	}

	relay := telegram.New(&telegram.Config{
		Token:    cfg.Telegram.Token,
		ChatID:   cfg.Telegram.ChatID,
		Endpoint: cfg.Telegram.Endpoint,
		Timeout:  cfg.Telegram.Timeout(),
	})

	apiServer := api.NewServer(version, relay, table)

	pages := site.New(site.Config{
		TemplatesGlob: cfg.Server.TemplatesGlob,
		StaticDir:     cfg.Server.StaticDir,
	}, table, site.NewStatsProvider(cfg.GitHub.Username, cfg.GitHub.CacheTTL()))

	// API routes under /api, HTML pages at the root.
	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))
	mux.Handle("/", pages.Handler())

	logging.Info("server starting",
		zap.String("addr", cfg.Server.Addr),
		zap.String("version", version))

	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		logging.Fatal("server failed", zap.Error(err))
	}
}
