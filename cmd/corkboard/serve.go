package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/awexler/corkboard/internal/devstore"
)

var (
	serveAddr string
	serveFile string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a development board store",
	Long: `Serve a reference implementation of the board store protocol on
/board (GET and POST) plus /health. With --file, the board is persisted to
a JSON document and reloaded when that document changes on disk.`,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := devstore.New(devstore.Config{
			Path:   serveFile,
			Logger: slog.Default(),
		})
		if err != nil {
			fatal("Failed to create store", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if serveFile != "" {
			if err := store.Watch(ctx); err != nil {
				fatal("Failed to watch board file", err)
			}
		}

		httpServer := &http.Server{Addr: serveAddr, Handler: store.Handler()}

		go func() {
			fmt.Printf("Serving board store on http://%s/board\n", serveAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("server listen failed", "error", err)
				os.Exit(1)
			}
		}()

		exit := make(chan os.Signal, 1) // buffer 1 so the notifier is never blocked
		signal.Notify(exit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-exit
		slog.Info("Signal caught", "sig", sig)
		cancel()
		_ = httpServer.Close()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8787", "Address to listen on")
	serveCmd.Flags().StringVar(&serveFile, "file", "", "Optional JSON document for persistence")
	rootCmd.AddCommand(serveCmd)
}
