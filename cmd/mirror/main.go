// Satoshi Mirror engine — single-process simulation core.
//
// One command dispatcher selects between agent upserts, mirror mining,
// the batch AI cycle, the energy sensor, and the concurrent synthesis
// mode. The HTTP API, frontend export, and deployment scripting are
// external collaborators: this binary only produces and consumes the
// JSON artifacts they read.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// The sensor loop and the proof-of-work search have no internal
	// termination; interrupt signals cancel them through this context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		if context.Cause(ctx) != nil {
			// An interrupt is a requested stop, not a failure worth a
			// second error line.
			os.Exit(130)
		}
		log.Error().Err(err).Msg("❌ Command failed")
		os.Exit(1)
	}
}
