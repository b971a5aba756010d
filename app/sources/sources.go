// Package sources reads the list of feed URLs to consolidate.
package sources

import (
	"fmt"
	"os"
	"strings"
)

// Load reads a newline-delimited list of feed URLs. Surrounding whitespace is
// trimmed and blank lines are skipped; there is no comment syntax. A missing
// or unreadable file is an error the caller treats as fatal for the run.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed URL list: %w", err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}

	return urls, nil
}
