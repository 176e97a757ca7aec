package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/dimiro1/banner"
	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"

	"github.com/evmkit/chain-resolver/internal/api"
	"github.com/evmkit/chain-resolver/internal/config"
	"github.com/evmkit/chain-resolver/internal/poller"
	"github.com/evmkit/chain-resolver/internal/resolver"
)

const bannerText = `
{{ .Title "Chain Resolver" "" 0 }}
{{ .AnsiBackground.BrightBlue }}{{ .AnsiColor.White }}
{{ .AnsiReset }}
`

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load(".env.local"); err != nil {
			fmt.Printf("No .env or .env.local file found. Using environment variables.\n")
		}
	}

	banner.Init(colorable.NewColorableStdout(), true, true, strings.NewReader(bannerText))

	configPath := flag.String("config", "config/config.json", "path to config file")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   false,
		TimestampFormat: "2006-01-02T15:04:05-07:00",
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	cacheTTL, err := time.ParseDuration(cfg.Cache.TTL)
	if err != nil {
		logger.Fatalf("Invalid cache TTL: %v", err)
	}
	cacheCleanup, err := time.ParseDuration(cfg.Cache.CleanupInterval)
	if err != nil {
		logger.Fatalf("Invalid cache cleanup interval: %v", err)
	}

	res, err := resolver.New(logger, cfg.Aliases.Path, cacheTTL, cacheCleanup)
	if err != nil {
		logger.Fatalf("Failed to initialize resolver: %v", err)
	}

	handler := api.NewHandler(res, logger, cfg)

	statsPoller := poller.New(res, logger, cacheCleanup)
	go statsPoller.Start()

	if err := handler.Scheduler.Start(); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}

	logger.Infof("Server started on port %s - Press Ctrl+C to stop.", cfg.Server.Port)

	if err := api.StartServer(context.Background(), handler, cfg.Server.Port); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}

	logger.Info("Shutting down...")
	statsPoller.Stop()
	handler.Scheduler.Stop()
	logger.Info("Server stopped")
}
