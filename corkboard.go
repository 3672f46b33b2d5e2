package corkboard

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/awexler/corkboard/internal/platform"
	"github.com/awexler/corkboard/pkg/core"
	"github.com/awexler/corkboard/pkg/engine"
)

// --- Types ---

// Engine is a public alias for the sync engine.
type Engine = engine.Engine

// Config is a public alias for the YAML file configuration.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring corkboard.
type Option = platform.Option

// WithStore injects a custom remote store (e.g. a mock or an alternative
// backend).
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithRenderSink connects the rendering layer.
func WithRenderSink(sink core.RenderSink) Option {
	return platform.WithRenderSink(sink)
}

// WithClock injects the clock driving debounce and poll timers.
func WithClock(clk clock.Clock) Option {
	return platform.WithClock(clk)
}

// WithLogger sets the logger for the engine and its store client.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithHTTPClient sets the HTTP client used to reach the remote endpoint.
func WithHTTPClient(client *http.Client) Option {
	return platform.WithHTTPClient(client)
}

// WithDebounceDelay sets the quiet period after which coalesced local
// mutations are written out.
func WithDebounceDelay(d time.Duration) Option {
	return platform.WithDebounceDelay(d)
}

// WithPollInterval sets how often the remote store is polled for
// concurrent edits.
func WithPollInterval(d time.Duration) Option {
	return platform.WithPollInterval(d)
}

// WithMinSaveInterval sets the grace window after a local write during
// which polling is suppressed.
func WithMinSaveInterval(d time.Duration) Option {
	return platform.WithMinSaveInterval(d)
}

// --- Factory ---

// New creates a sync engine wired against the remote board endpoint.
func New(endpoint string, opts ...Option) (*Engine, error) {
	return platform.New(endpoint, opts...)
}

// LoadConfig reads the optional corkboard.yaml file. A missing file
// yields a zero config with every field at its default.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}
