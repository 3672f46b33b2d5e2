// Package corkboard is the Composition Root for the corkboard client.
//
// It connects the synchronization core (Domain Layer) with the transport
// and preference adapters (Infrastructure Layer) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// Corkboard is a collaborative sticky-notes board client: freeform text
// notes on a shared canvas, persisted to a remote document store and
// periodically reconciled against edits from other clients. The heart of
// the module is the state synchronization engine — everything else
// (rendering, the remote endpoint, theme storage) sits behind a port.
//
// Features:
//
//   - **Hexagonal Architecture**: the sync core is isolated from transport
//     and rendering details.
//   - **Debounced Writes**: bursts of keystrokes and drag frames coalesce
//     into one remote write; creates and deletes bypass the debounce.
//   - **Guarded Polling**: periodic reconciliation that never races the
//     client's own in-flight write or an active drag.
//   - **Full-Replace Protocol**: reads and writes always carry the whole
//     note set. Simple and consistent; last write wins, by design.
//   - **Deterministic**: timers run on an injectable clock, gestures are
//     typed commands, so the whole engine unit-tests without a DOM or a
//     wall clock.
//
// Known limitation, kept on purpose: writes are not retried and two
// clients editing concurrently can overwrite each other's latest change.
// The next edit is the retry; last write wins.
//
// Usage:
//
//	// Wire an engine against the remote board document
//	eng, err := corkboard.New("https://example.com/board",
//		corkboard.WithRenderSink(mySink),
//		corkboard.WithLogger(logger),
//	)
//
//	// Run it and feed it gestures
//	err = eng.Start(ctx)
//	eng.Dispatch(core.CreateNote{})
package corkboard
