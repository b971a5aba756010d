package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lnexun/feed-consolidator/app/feed"
)

var _ TaskInterface = (*ConsolidateFeedsTask)(nil)

// ConsolidateFeedsTask runs the whole consolidation pipeline once: fetch each
// feed in list order, extract its items into a single accumulator, then
// merge, serialize and write the output file.
type ConsolidateFeedsTask struct {
	Task
	urls       []string
	fetcher    Fetcher
	extractor  Extractor
	merger     Merger
	generator  Generator
	channel    feed.Channel
	outputFile string
	delay      time.Duration
}

func NewConsolidateFeedsTask(urls []string, fetcher Fetcher, extractor Extractor,
	merger Merger, generator Generator, channel feed.Channel,
	outputFile string, delay time.Duration) *ConsolidateFeedsTask {
	return &ConsolidateFeedsTask{
		Task:       NewTask(TaskTypeConsolidateFeeds),
		urls:       urls,
		fetcher:    fetcher,
		extractor:  extractor,
		merger:     merger,
		generator:  generator,
		channel:    channel,
		outputFile: outputFile,
		delay:      delay,
	}
}

// Execute processes every configured feed sequentially. Fetch and parse
// failures are logged and skipped; the only fatal outcome after startup is a
// failed write of the output file, which is attempted exactly once after the
// full merge.
func (t *ConsolidateFeedsTask) Execute(ctx context.Context) error {
	t.Start()

	slog.Info("Starting feed consolidation", "feeds", len(t.urls))

	var allItems []feed.Item
	processedCount, failedCount := 0, 0

	for i, url := range t.urls {
		if i > 0 {
			// Politeness pause between fetches, not a retry mechanism.
			if err := t.pause(ctx); err != nil {
				return err
			}
		}

		slog.Info("Processing feed", "index", i+1, "total", len(t.urls), "url", url)

		data, err := t.fetcher.Run(ctx, url)
		if err != nil {
			slog.Error("Failed to fetch feed", "url", url, "error", err)
			failedCount++
			continue
		}

		items := t.extractor.Run(data)
		allItems = append(allItems, items...)
		processedCount++

		slog.Info("Feed processed", "url", url, "items", len(items))
	}

	slog.Info("Collected items from all feeds", "total", len(allItems))

	merged := t.merger.Run(allItems)
	output := t.generator.Run(t.channel, merged)

	if err := os.WriteFile(t.outputFile, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write consolidated feed: %w", err)
	}

	slog.Info("Task completed",
		"type", t.Type,
		"duration", t.GetDuration(),
		"processed", processedCount,
		"failed", failedCount,
		"items", len(merged),
		"output", t.outputFile)

	return nil
}

func (t *ConsolidateFeedsTask) pause(ctx context.Context) error {
	if t.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(t.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
