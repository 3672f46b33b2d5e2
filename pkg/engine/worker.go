package engine

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle/pkg/core/worker"
)

// syncWorker runs the engine loop as a managed background worker.
type syncWorker struct {
	*worker.BaseWorker
	engine *Engine
	cancel context.CancelFunc
}

func newSyncWorker(e *Engine) *syncWorker {
	return &syncWorker{
		BaseWorker: worker.NewBaseWorker("board-sync"),
		engine:     e,
	}
}

func (w *syncWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("engine already started (status: %s)", status)
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.engine.Run)
}

func (w *syncWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *syncWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// Start launches the engine loop in a managed worker. Teardown via Stop
// cancels the poll ticker and abandons any pending debounced write.
func (e *Engine) Start(ctx context.Context) error {
	return e.worker.Start(ctx)
}

// Stop requests the engine loop to exit and waits for the worker.
func (e *Engine) Stop(ctx context.Context) error {
	return e.worker.Stop(ctx)
}
