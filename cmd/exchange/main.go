package main

import (
	"context"
	"flag"
	"os"
	ossignal "os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"fenrir-lob/internal/book"
	"fenrir-lob/internal/csvio"
	"fenrir-lob/internal/feeder"
	"fenrir-lob/internal/signal"
)

func main() {
	tickPath := flag.String("ticks", "data/ticks.csv", "path to the tick input CSV")
	tradeLogPath := flag.String("tradelog", "tradelog.csv", "path to the debug trade log CSV")
	snapshotLogPath := flag.String("snapshotlog", "snapshot.csv", "path to the debug snapshot log CSV")
	signalLogPath := flag.String("signallog", "signals.csv", "path to the feeder signal log CSV")
	executedLogPath := flag.String("executedlog", "executed.csv", "path to the feeder executed-trades log CSV")
	threshold := flag.Float64("threshold", 0.05, "classifier momentum threshold")
	flag.Parse()

	debug := debugMode()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ticks, err := csvio.NewTickReader(*tickPath)
	if err != nil {
		log.Error().Err(err).Str("path", *tickPath).Msg("unable to open tick file")
		os.Exit(1)
	}
	defer ticks.Close()

	b := book.New(*tradeLogPath, *snapshotLogPath, debug)
	defer b.Close()

	f := feeder.New(b, signal.NewThresholdClassifier(*threshold), ticks)
	if debug {
		if w, err := csvio.NewSignalWriter(*signalLogPath); err == nil {
			f.SignalLog = w
			defer w.Close()
		} else {
			log.Warn().Err(err).Msg("could not open signal log, continuing without it")
		}
		if w, err := csvio.NewExecutedTradesWriter(*executedLogPath); err == nil {
			f.ExecutedLog = w
			defer w.Close()
		} else {
			log.Warn().Err(err).Msg("could not open executed-trades log, continuing without it")
		}
	}

	ctx, stop := ossignal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	t, ctx := tomb.WithContext(ctx)
	t.Go(func() error {
		return f.Run(ctx)
	})

	if err := t.Wait(); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("feeder exited with error")
		os.Exit(1)
	}
}

func debugMode() bool {
	v, ok := os.LookupEnv("DEBUG_MODE")
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
