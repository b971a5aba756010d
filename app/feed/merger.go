package feed

import (
	"log/slog"
	"sort"
	"time"
)

type Merger struct{}

func NewMerger() *Merger {
	return &Merger{}
}

// Run deduplicates the accumulated items and orders them by publication date,
// newest first. The result is deterministic for a given input order: the
// first occurrence of an identity key survives, later duplicates are dropped
// whole, and items sharing a date keep their relative order.
func (m *Merger) Run(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	unique := make([]Item, 0, len(items))

	for _, item := range items {
		key := identityKey(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return publishedAt(unique[i]).After(publishedAt(unique[j]))
	})

	return unique
}

// identityKey is the item's GUID when present and non-empty; otherwise the
// title and link joined as a fallback key.
func identityKey(item Item) string {
	if item.GUID != nil && *item.GUID != "" {
		return *item.GUID
	}
	return deref(item.Title) + "-" + deref(item.Link)
}

// publishedAt parses the item's pubDate in the RFC 822 form feeds use
// ("Mon, 02 Jan 2006 15:04:05 +0000"). Absent or unparsable dates map to the
// zero time so the item sorts after everything with a real date.
func publishedAt(item Item) time.Time {
	if item.PubDate == nil || *item.PubDate == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC1123Z, *item.PubDate)
	if err != nil {
		slog.Debug("Unparsable publication date, sorting item last", "pubDate", *item.PubDate)
		return time.Time{}
	}

	return t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
