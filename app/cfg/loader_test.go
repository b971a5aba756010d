package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		SourcesFile:  "feed_urls.txt",
		OutputFile:   "consolidated_feed.xml",
		ChannelFile:  "channel.yml",
		UserAgent:    "Test Agent",
		FetchTimeout: 30,
		FetchDelay:   1,
		Timezone:     "UTC",
		Debug:        true,
		Version:      "test-version",
	}

	if cfg.SourcesFile != "feed_urls.txt" {
		t.Errorf("Expected sources file 'feed_urls.txt', got '%s'", cfg.SourcesFile)
	}
	if cfg.OutputFile != "consolidated_feed.xml" {
		t.Errorf("Expected output file 'consolidated_feed.xml', got '%s'", cfg.OutputFile)
	}
	if cfg.ChannelFile != "channel.yml" {
		t.Errorf("Expected channel file 'channel.yml', got '%s'", cfg.ChannelFile)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.FetchTimeout != 30 {
		t.Errorf("Expected fetch timeout 30, got %d", cfg.FetchTimeout)
	}
	if cfg.FetchDelay != 1 {
		t.Errorf("Expected fetch delay 1, got %d", cfg.FetchDelay)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Expected timezone 'UTC', got '%s'", cfg.Timezone)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}
