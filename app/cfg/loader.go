package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// Default User-Agent matches what feed servers already expect from the
// consolidator; some of them reject obviously non-browser clients.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type rawCfg struct {
	// Input/output configuration
	SourcesFile string `long:"sources" env:"SOURCES_FILE" default:"feed_urls.txt" description:"File containing newline-delimited feed URLs"`
	OutputFile  string `long:"output" env:"OUTPUT_FILE" default:"consolidated_feed.xml" description:"Path of the consolidated RSS output file"`
	ChannelFile string `long:"channel-config" env:"CHANNEL_CONFIG" description:"Optional YAML file with output channel metadata"`

	// Fetch configuration
	UserAgent    string `long:"user-agent" env:"USER_AGENT" description:"User agent string for HTTP requests"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Per-feed HTTP timeout in seconds"`
	FetchDelay   int    `long:"fetch-delay" env:"FETCH_DELAY" default:"1" description:"Delay between feed fetches in seconds"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		SourcesFile:  raw.SourcesFile,
		OutputFile:   raw.OutputFile,
		ChannelFile:  raw.ChannelFile,
		UserAgent:    cmp.Or(raw.UserAgent, defaultUserAgent),
		FetchTimeout: raw.FetchTimeout,
		FetchDelay:   raw.FetchDelay,
		Timezone:     raw.Timezone,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
