// Package engine contains the state synchronization engine: a single
// coordinator that owns the board, coalesces local mutations into remote
// writes, polls the remote store, and reconciles incoming snapshots.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/benbjohnson/clock"

	"github.com/awexler/corkboard/pkg/core"
)

// Default timing knobs. A debounce shorter than the typing/drag cadence
// would defeat coalescing; a grace window shorter than the remote's settle
// time lets a poll revert the client's own just-made write.
const (
	DefaultDebounceDelay   = 400 * time.Millisecond
	DefaultPollInterval    = 5 * time.Second
	DefaultMinSaveInterval = 2 * time.Second
)

const commandBuffer = 64

// Config holds the dependencies and timing knobs for the engine.
type Config struct {
	// Store is the remote persistence endpoint. Required.
	Store core.Store

	// Sink receives redraw and loading-indicator calls. Optional;
	// defaults to core.NopSink.
	Sink core.RenderSink

	// Clock drives debounce and poll timers. Optional; defaults to the
	// wall clock. Tests inject a mock to avoid wall-clock waits.
	Clock clock.Clock

	// Logger is optional; slog.Default() is used when nil.
	Logger *slog.Logger

	DebounceDelay   time.Duration
	PollInterval    time.Duration
	MinSaveInterval time.Duration
}

// Engine coordinates the board repository, the debounced writer, the poll
// scheduler and the reconciler.
//
// All fields below the channels are owned by the engine goroutine running
// Run. Handlers run to completion between channel receives, so board and
// sync state need no locking; network I/O happens in short-lived
// goroutines that post their result back into the loop.
type Engine struct {
	board *core.Board
	store core.Store
	sink  core.RenderSink
	clock clock.Clock
	log   *slog.Logger

	debounceDelay   time.Duration
	pollInterval    time.Duration
	minSaveInterval time.Duration

	cmds      chan core.Command
	writeDone chan error
	fetchDone chan fetchResult
	done      chan struct{}

	debounce      *clock.Timer
	writeInFlight bool
	fetchInFlight bool
	lastWriteAt   time.Time
	lastReconcile time.Time
	interactingID string
	selectedID    string
	initialLoaded bool

	worker *syncWorker
	stats  stateExport
}

type fetchResult struct {
	notes   []core.Note
	err     error
	initial bool
}

// New creates an engine around the given store. The engine does nothing
// until Run (or Start) is called.
func New(cfg Config) (*Engine, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Sink == nil {
		cfg.Sink = core.NopSink{}
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.MinSaveInterval <= 0 {
		cfg.MinSaveInterval = DefaultMinSaveInterval
	}

	e := &Engine{
		board:           core.NewBoard(),
		store:           cfg.Store,
		sink:            cfg.Sink,
		clock:           cfg.Clock,
		log:             cfg.Logger,
		debounceDelay:   cfg.DebounceDelay,
		pollInterval:    cfg.PollInterval,
		minSaveInterval: cfg.MinSaveInterval,
		cmds:            make(chan core.Command, commandBuffer),
		writeDone:       make(chan error, 1),
		fetchDone:       make(chan fetchResult, 1),
		done:            make(chan struct{}),
	}
	e.worker = newSyncWorker(e)
	return e, nil
}

// Dispatch enqueues a command for the engine loop. Commands issued before
// Run are buffered; commands issued after the loop has exited are
// discarded.
func (e *Engine) Dispatch(cmd core.Command) {
	select {
	case e.cmds <- cmd:
	case <-e.done:
	}
}

// Run executes the engine loop until ctx is cancelled. It may be called
// once. The first act is the eager initial load: unconditional, with the
// loading indicator raised toward the render sink.
func (e *Engine) Run(ctx context.Context) error {
	defer close(e.done)

	e.sink.SetLoading(true)
	e.startFetch(ctx, true)

	ticker := e.clock.Ticker(e.pollInterval)
	defer ticker.Stop()

	for {
		// A nil debounce timer must not arm the select case.
		var debounceC <-chan time.Time
		if e.debounce != nil {
			debounceC = e.debounce.C
		}

		select {
		case <-ctx.Done():
			// Teardown: the ticker dies with the deferred Stop and any
			// pending debounced write is abandoned, not flushed.
			e.cancelDebounce()
			return nil

		case cmd := <-e.cmds:
			e.apply(ctx, cmd)

		case <-debounceC:
			e.debounceExpired(ctx)

		case <-ticker.C:
			e.pollTick(ctx)

		case err := <-e.writeDone:
			e.finishWrite(err)

		case res := <-e.fetchDone:
			e.finishFetch(res)
		}
	}
}

// apply runs a single command against the board and decides how the
// mutation reaches the remote store: structural changes (create, delete)
// write immediately, everything else goes through the debounce.
func (e *Engine) apply(ctx context.Context, cmd core.Command) {
	switch c := cmd.(type) {
	case core.CreateNote:
		n := core.NewNote(e.clock.Now())
		e.board.Add(n)
		e.selectedID = n.ID
		e.log.Debug("note created", "id", n.ID)
		e.render()
		e.flushNow(ctx)

	case core.DeleteNote:
		if e.board.Remove(c.ID) {
			if e.selectedID == c.ID {
				e.selectedID = ""
			}
			if e.interactingID == c.ID {
				e.interactingID = ""
			}
			e.log.Debug("note deleted", "id", c.ID)
			e.render()
			e.flushNow(ctx)
		}

	case core.EditContent:
		if e.board.Upsert(c.ID, func(n *core.Note) { n.Content = c.Content }) {
			e.scheduleWrite()
		}

	case core.MoveNote:
		if e.board.Upsert(c.ID, func(n *core.Note) { n.X, n.Y = c.X, c.Y }) {
			e.scheduleWrite()
		}

	case core.ResizeNote:
		if e.board.Upsert(c.ID, func(n *core.Note) { n.Width, n.Height = c.Width, c.Height }) {
			e.scheduleWrite()
		}

	case core.SelectNote:
		if _, ok := e.board.Get(c.ID); ok {
			e.selectedID = c.ID
		}

	case core.BeginInteraction:
		e.interactingID = c.ID

	case core.EndInteraction:
		if e.interactingID == c.ID {
			e.interactingID = ""
		}
	}
	e.exportStats()
}

// scheduleWrite (re)starts the trailing-edge debounce countdown: the last
// mutation before a quiet period wins and earlier countdowns are
// discarded.
func (e *Engine) scheduleWrite() {
	if e.debounce != nil {
		e.debounce.Stop()
	}
	e.debounce = e.clock.Timer(e.debounceDelay)
}

func (e *Engine) cancelDebounce() {
	if e.debounce != nil {
		e.debounce.Stop()
		e.debounce = nil
	}
}

func (e *Engine) debounceExpired(ctx context.Context) {
	e.debounce = nil
	e.flush(ctx)
}

// flushNow cancels any pending debounce and writes immediately. Losing a
// create or delete to a stale overwrite is a correctness issue, whereas
// losing an intermediate keystroke or drag frame is not, so structural
// changes never wait out the quiet period.
func (e *Engine) flushNow(ctx context.Context) {
	e.cancelDebounce()
	e.flush(ctx)
}

// flush sends the full current board state to the store. If a write is
// already in flight the pending write is dropped — not queued, not
// retried: the next mutation schedules the next attempt.
func (e *Engine) flush(ctx context.Context) {
	if e.writeInFlight {
		e.log.Debug("write already in flight, dropping pending write")
		return
	}
	e.writeInFlight = true
	e.startWrite(ctx, e.board.All())
	e.exportStats()
}

// startWrite performs the remote write off the engine goroutine and posts
// the result back into the loop.
func (e *Engine) startWrite(ctx context.Context, snapshot []core.Note) {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		err := e.store.WriteSnapshot(ctx, snapshot)
		select {
		case e.writeDone <- err:
		case <-ctx.Done():
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		e.log.Error("write goroutine panic", "error", err)
	}))
}

func (e *Engine) finishWrite(err error) {
	e.writeInFlight = false
	if err != nil {
		// No automatic retry: the next debounced write or the next
		// structural write is the de facto retry path. The edit is at
		// risk until then.
		e.log.Warn("failed to write snapshot", "error", err)
	} else {
		e.lastWriteAt = e.clock.Now()
		e.log.Debug("snapshot written", "notes", e.board.Len())
	}
	e.exportStats()
}

// pollTick decides whether this tick may fetch. A tick that fails the
// guard check is skipped outright; the fetch is not issued at all.
func (e *Engine) pollTick(ctx context.Context) {
	switch {
	case e.writeInFlight:
		e.log.Debug("poll skipped: write in flight")
	case e.fetchInFlight:
		e.log.Debug("poll skipped: fetch in flight")
	case e.interactingID != "":
		e.log.Debug("poll skipped: interaction active", "id", e.interactingID)
	case !e.lastWriteAt.IsZero() && e.clock.Now().Sub(e.lastWriteAt) < e.minSaveInterval:
		e.log.Debug("poll skipped: inside post-write grace window")
	default:
		e.startFetch(ctx, false)
	}
}

// startFetch performs the remote read off the engine goroutine and posts
// the result back into the loop.
func (e *Engine) startFetch(ctx context.Context, initial bool) {
	e.fetchInFlight = true
	e.exportStats()
	lifecycle.Go(ctx, func(ctx context.Context) error {
		notes, err := e.store.FetchSnapshot(ctx)
		select {
		case e.fetchDone <- fetchResult{notes: notes, err: err, initial: initial}:
		case <-ctx.Done():
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		e.log.Error("fetch goroutine panic", "error", err)
	}))
}

func (e *Engine) finishFetch(res fetchResult) {
	e.fetchInFlight = false
	if res.initial && !e.initialLoaded {
		e.initialLoaded = true
		e.sink.SetLoading(false)
	}
	if res.err != nil {
		// Stale-but-valid local state is retained; the next poll tick is
		// the only retry.
		e.log.Warn("failed to fetch snapshot", "error", res.err)
		e.exportStats()
		return
	}
	e.reconcile(res.notes)
	e.exportStats()
}

// reconcile merges an incoming remote snapshot into the board. An
// element-for-element identical snapshot is discarded without a replace or
// redraw. Anything else replaces the board wholesale — except that a note
// mid-interaction keeps its live geometry, so a user's drag is never
// clobbered by a concurrently arriving snapshot.
func (e *Engine) reconcile(incoming []core.Note) {
	if core.SameSnapshot(e.board.All(), incoming) {
		e.log.Debug("snapshot unchanged, skipping apply")
		return
	}

	if e.interactingID != "" {
		if live, ok := e.board.Get(e.interactingID); ok {
			for i := range incoming {
				if incoming[i].ID == live.ID {
					incoming[i].X, incoming[i].Y = live.X, live.Y
					incoming[i].Width, incoming[i].Height = live.Width, live.Height
				}
			}
		}
	}

	e.board.ReplaceAll(incoming)
	if _, ok := e.board.Get(e.selectedID); !ok {
		e.selectedID = ""
	}
	e.lastReconcile = e.clock.Now()
	e.log.Debug("snapshot applied", "notes", e.board.Len())
	e.render()
}

func (e *Engine) render() {
	e.sink.RenderNotes(e.board.All())
}
