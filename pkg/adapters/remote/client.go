// Package remote implements core.Store against an HTTP document store
// speaking the full-replace board protocol.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/awexler/corkboard/pkg/core"
)

// StatusSuccess is the status value the remote reports for an accepted
// write.
const StatusSuccess = "success"

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 5 * 1024 * 1024

// Client talks the full-replace board protocol against a single endpoint:
// GET returns {"notes": [...]}; POST sends {"notes": [...]} and the remote
// answers {"status": "success"} on acceptance.
//
// No timeout is imposed beyond the injected transport's own. A hung
// request therefore hangs the caller's in-flight state until the transport
// gives up; that is an accepted limitation of the sync model, not handled
// here.
type Client struct {
	endpoint string
	http     *http.Client
	log      *slog.Logger
}

// Config holds the configuration for the remote store client.
type Config struct {
	// Endpoint is the full URL of the board document, used for both GET
	// and POST.
	Endpoint string

	// HTTPClient is optional; http.DefaultClient is used when nil.
	HTTPClient *http.Client

	// Logger is optional; slog.Default() is used when nil.
	Logger *slog.Logger
}

// NewClient creates a client for the given endpoint.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("endpoint is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint: cfg.Endpoint,
		http:     httpClient,
		log:      logger,
	}, nil
}

// snapshotEnvelope is the wire shape of both the GET response and the POST
// request body. Notes stays raw so a missing field can be told apart from
// an empty sequence.
type snapshotEnvelope struct {
	Notes json.RawMessage `json:"notes"`
}

type writeResponse struct {
	Status string `json:"status"`
}

// FetchSnapshot reads the complete remote note set.
func (c *Client) FetchSnapshot(ctx context.Context) ([]core.Note, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "fetch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{Op: "fetch", Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &NetworkError{Op: "fetch", Err: err}
	}

	var env snapshotEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Reason: "malformed body", Err: err}
	}
	if len(env.Notes) == 0 || string(env.Notes) == "null" {
		return nil, &DecodeError{Reason: `missing "notes" field`}
	}

	var notes []core.Note
	if err := json.Unmarshal(env.Notes, &notes); err != nil {
		return nil, &DecodeError{Reason: `"notes" is not a sequence`, Err: err}
	}
	if notes == nil {
		notes = []core.Note{}
	}

	c.log.Debug("fetched snapshot", "endpoint", c.endpoint, "notes", len(notes))
	return notes, nil
}

// WriteSnapshot replaces the complete remote note set with the given one.
func (c *Client) WriteSnapshot(ctx context.Context, notes []core.Note) error {
	if notes == nil {
		notes = []core.Note{}
	}
	payload, err := json.Marshal(struct {
		Notes []core.Note `json:"notes"`
	}{Notes: notes})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build write request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: "write", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &NetworkError{Op: "write", Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &NetworkError{Op: "write", Err: err}
	}

	var wr writeResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return &DecodeError{Reason: "malformed write response", Err: err}
	}
	if wr.Status != StatusSuccess {
		return &RejectionError{Status: wr.Status}
	}

	c.log.Debug("wrote snapshot", "endpoint", c.endpoint, "notes", len(notes))
	return nil
}

var _ core.Store = (*Client)(nil)
