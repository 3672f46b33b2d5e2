package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/awexler/corkboard"
	"github.com/awexler/corkboard/pkg/core"
	"github.com/awexler/corkboard/pkg/prefs"
)

var (
	runEndpoint string
	runConfig   string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the sync client against a remote board",
	Long: `Run a headless corkboard client: it loads the board from the remote
endpoint, keeps polling for concurrent edits, and prints the board whenever
it changes. Useful for watching a board and for smoke-testing an endpoint.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := corkboard.LoadConfig(runConfig)
		if err != nil {
			fatal("Failed to load config", err)
		}

		endpoint := cfg.Endpoint
		if runEndpoint != "" {
			endpoint = runEndpoint
		}
		if endpoint == "" {
			fatal("No endpoint", errors.New("pass --endpoint or set it in the config file"))
		}

		themePath := cfg.ThemePath
		if themePath == "" {
			themePath, err = prefs.DefaultPath()
			if err != nil {
				fatal("Failed to resolve theme path", err)
			}
		}
		theme := prefs.NewStore(themePath).Theme()

		opts := append(cfg.Options(),
			corkboard.WithLogger(slog.Default()),
			corkboard.WithRenderSink(&consoleSink{}),
		)
		eng, err := corkboard.New(endpoint, opts...)
		if err != nil {
			fatal("Failed to create engine", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := eng.Start(ctx); err != nil {
			fatal("Failed to start engine", err)
		}

		fmt.Printf("Syncing with %s (theme: %s). Press Ctrl+C to stop.\n", endpoint, theme)

		exit := make(chan os.Signal, 1) // buffer 1 so the notifier is never blocked
		signal.Notify(exit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-exit
		slog.Info("Signal caught", "sig", sig)
		cancel()

		if err := eng.Stop(context.Background()); err != nil {
			slog.Warn("engine stop", "error", err)
		}
	},
}

// consoleSink renders the board as plain text on stdout.
type consoleSink struct{}

func (s *consoleSink) RenderNotes(notes []core.Note) {
	fmt.Printf("board: %d note(s)\n", len(notes))
	for _, n := range notes {
		content := n.Content
		if len(content) > 40 {
			content = content[:37] + "..."
		}
		fmt.Printf("  %-32s (%.0f,%.0f) %.0fx%.0f %q\n", n.ID, n.X, n.Y, n.Width, n.Height, content)
	}
}

func (s *consoleSink) SetLoading(active bool) {
	if active {
		fmt.Println("loading board...")
	}
}

func init() {
	runCmd.Flags().StringVar(&runEndpoint, "endpoint", "", "Full URL of the remote board document")
	runCmd.Flags().StringVar(&runConfig, "config", "corkboard.yaml", "Path to the config file")
	rootCmd.AddCommand(runCmd)
}
