package feed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadChannelDefaults(t *testing.T) {
	channel, err := LoadChannel("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if channel != DefaultChannel {
		t.Errorf("Expected default channel metadata, got: %+v", channel)
	}
	if channel.Language != "en-US" {
		t.Errorf("Expected default language 'en-US', got: %s", channel.Language)
	}
}

func TestLoadChannelOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channel.yml")
	content := "title: Custom Feed\nlink: https://custom.example.com\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	channel, err := LoadChannel(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if channel.Title != "Custom Feed" {
		t.Errorf("Expected title 'Custom Feed', got: %s", channel.Title)
	}
	if channel.Link != "https://custom.example.com" {
		t.Errorf("Expected link 'https://custom.example.com', got: %s", channel.Link)
	}
	// Fields the file does not set keep their defaults
	if channel.Description != DefaultChannel.Description {
		t.Errorf("Expected default description, got: %s", channel.Description)
	}
	if channel.Language != DefaultChannel.Language {
		t.Errorf("Expected default language, got: %s", channel.Language)
	}
}

func TestLoadChannelMissingFile(t *testing.T) {
	_, err := LoadChannel(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil {
		t.Fatal("Expected error for missing channel file, got nil")
	}
}

func TestLoadChannelInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channel.yml")
	if err := os.WriteFile(path, []byte("title: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := LoadChannel(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}
