package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/awexler/corkboard/pkg/core"
)

// options holds the internal configuration for the corkboard engine.
type options struct {
	store      core.Store
	sink       core.RenderSink
	clk        clock.Clock
	logger     *slog.Logger
	httpClient *http.Client

	debounceDelay   time.Duration
	pollInterval    time.Duration
	minSaveInterval time.Duration
}

// Option defines a functional option for configuring corkboard.
type Option func(*options)

// defaultOptions returns the default configuration. Zero durations mean
// "use the engine defaults".
func defaultOptions() *options {
	return &options{}
}

// WithStore injects a custom remote store (e.g. a mock or an alternative
// backend). If provided, no HTTP client is constructed for the endpoint.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithRenderSink connects the rendering layer. Defaults to a sink that
// discards all calls.
func WithRenderSink(sink core.RenderSink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithClock injects the clock driving debounce and poll timers. Tests use
// a mock clock to avoid wall-clock waits.
func WithClock(clk clock.Clock) Option {
	return func(o *options) {
		o.clk = clk
	}
}

// WithLogger sets the logger for the engine and its store client.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHTTPClient sets the HTTP client used to reach the remote endpoint.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithDebounceDelay sets the quiet period after which coalesced local
// mutations are written out.
func WithDebounceDelay(d time.Duration) Option {
	return func(o *options) {
		o.debounceDelay = d
	}
}

// WithPollInterval sets how often the remote store is polled for
// concurrent edits.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		o.pollInterval = d
	}
}

// WithMinSaveInterval sets the grace window after a local write during
// which polling is suppressed.
func WithMinSaveInterval(d time.Duration) Option {
	return func(o *options) {
		o.minSaveInterval = d
	}
}
