package feed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultChannel is the output metadata used when no channel configuration
// file is provided.
var DefaultChannel = Channel{
	Title:       "ln(exun) - Consolidated Feed",
	Link:        "https://www.lnexun.com",
	Description: "Consolidated feed from ln(exun) - Natural log of Exun Clan, the computer club at DPS RK Puram.",
	Language:    "en-US",
}

// LoadChannel returns the channel metadata for the consolidated feed. With an
// empty path the built-in defaults are used; otherwise the YAML file is read
// and any field it sets overrides the corresponding default.
func LoadChannel(path string) (Channel, error) {
	channel := DefaultChannel

	if path == "" {
		return channel, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return channel, fmt.Errorf("failed to read channel configuration: %w", err)
	}

	if err := yaml.Unmarshal(data, &channel); err != nil {
		return channel, fmt.Errorf("failed to parse channel configuration: %w", err)
	}

	return channel, nil
}
