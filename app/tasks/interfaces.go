package tasks

import (
	"context"

	"github.com/lnexun/feed-consolidator/app/feed"
)

// Collaborator interfaces for the consolidation pipeline. The task depends on
// these rather than on the concrete implementations so each stage can be
// replaced in tests.

type Fetcher interface {
	Run(ctx context.Context, url string) ([]byte, error)
}

type Extractor interface {
	Run(data []byte) []feed.Item
}

type Merger interface {
	Run(items []feed.Item) []feed.Item
}

type Generator interface {
	Run(channel feed.Channel, items []feed.Item) string
}
