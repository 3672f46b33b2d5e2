package platform

import (
	"errors"
	"fmt"

	"github.com/awexler/corkboard/pkg/adapters/remote"
	"github.com/awexler/corkboard/pkg/engine"
)

// New wires a sync engine against the remote endpoint.
// The endpoint is the full URL of the board document; it may be empty only
// when a store is injected via WithStore.
func New(endpoint string, opts ...Option) (*engine.Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		if endpoint == "" {
			return nil, errors.New("endpoint is required when no store is injected")
		}
		client, err := remote.NewClient(remote.Config{
			Endpoint:   endpoint,
			HTTPClient: o.httpClient,
			Logger:     o.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create remote client: %w", err)
		}
		store = client
	}

	eng, err := engine.New(engine.Config{
		Store:           store,
		Sink:            o.sink,
		Clock:           o.clk,
		Logger:          o.logger,
		DebounceDelay:   o.debounceDelay,
		PollInterval:    o.pollInterval,
		MinSaveInterval: o.minSaveInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return eng, nil
}
