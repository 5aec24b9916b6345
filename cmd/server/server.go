package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/api/router"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/mcpserver"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the gateway with its JSON API and, unless disabled,
the MCP tool server on stdio.
Requires configuration through ENV.`,
		Run: func(_ *cobra.Command, _ []string) {
			runServer()
		},
	}
}

func runServer() {
	cfg := config.DefaultServiceConfigFromEnv()

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.Logger.Level)
	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			// stdout carries the MCP protocol, logs stay on stderr
			w.Out = os.Stderr
			w.TimeFormat = "15:04:05"
		}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	router.Init(s)

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	var mcpDone chan struct{}
	if cfg.MCP.Enabled {
		mcpDone = make(chan struct{})

		go func() {
			defer close(mcpDone)

			if err := mcpserver.Serve(ctx, s); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("MCP server stopped")
			}
		}()
	}

	// mcpDone stays nil with MCP disabled, a nil channel never fires
	select {
	case <-ctx.Done():
		log.Info().Msg("Received shutdown signal")
	case <-mcpDone:
		log.Info().Msg("MCP session closed, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Echo.GracefulShutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
		for _, err := range errs {
			log.Error().Err(err).Msg("Failed to shut down server component")
		}

		os.Exit(1)
	}
}
