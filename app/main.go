package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lnexun/feed-consolidator/app/cfg"
	"github.com/lnexun/feed-consolidator/app/feed"
	"github.com/lnexun/feed-consolidator/app/fetcher"
	"github.com/lnexun/feed-consolidator/app/sources"
	"github.com/lnexun/feed-consolidator/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting feed consolidation", "version", appCfg.Version)

	urls, err := sources.Load(appCfg.SourcesFile)
	if err != nil {
		slog.Error("Failed to load feed URL list", "file", appCfg.SourcesFile, "error", err)
		os.Exit(1)
	}
	slog.Info("Feed URL list loaded", "file", appCfg.SourcesFile, "feeds", len(urls))

	channel, err := feed.LoadChannel(appCfg.ChannelFile)
	if err != nil {
		slog.Error("Failed to load channel configuration", "file", appCfg.ChannelFile, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	task := tasks.NewConsolidateFeedsTask(
		urls,
		fetcher.New(appCfg.UserAgent, time.Duration(appCfg.FetchTimeout)*time.Second),
		feed.NewExtractor(),
		feed.NewMerger(),
		feed.NewGenerator(),
		channel,
		appCfg.OutputFile,
		time.Duration(appCfg.FetchDelay)*time.Second,
	)

	if err := task.Execute(ctx); err != nil {
		slog.Error("Feed consolidation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Consolidated feed saved", "output", appCfg.OutputFile)
}
