// Package feeder implements the out-of-scope strategy driver: a thin
// loop that reads tick data, invokes the signal classifier, and emits
// orders over the engine's AddOrder API. Grounded on
// original_source/engine_cpp/strategy_runner.cpp (read CSV row -> build
// feature vector -> classify -> ob.add_order(...) -> log book state) and
// the teacher's worker-loop shape (internal/worker.go).
package feeder

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fenrir-lob/internal/book"
	"fenrir-lob/internal/common"
	"fenrir-lob/internal/csvio"
	"fenrir-lob/internal/signal"
)

// defaultOrderQty is the fixed clip size the original prototype used
// for every signal-driven order (ob.add_order({..., price, 10})).
const defaultOrderQty = 10

// Feeder drains a tick file through a Classifier into Book.AddOrder
// calls, optionally logging signals and fills as it goes.
type Feeder struct {
	Book       *book.Book
	Classifier signal.Classifier
	Ticks      *csvio.TickReader

	SignalLog   *csvio.SignalWriter   // optional
	ExecutedLog *csvio.ExecutedTradesWriter // optional

	nextOrderID int64
	log         zerolog.Logger
}

// New builds a Feeder over an already-open tick reader and classifier.
func New(b *book.Book, classifier signal.Classifier, ticks *csvio.TickReader) *Feeder {
	return &Feeder{
		Book:       b,
		Classifier: classifier,
		Ticks:      ticks,
		log:        log.With().Str("component", "feeder").Logger(),
	}
}

// Run drives ticks until the reader is exhausted or ctx is cancelled.
func (f *Feeder) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tick, err := f.Ticks.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		sig := f.Classifier.Classify([]float64{tick.Price.InexactFloat64(), float64(tick.Qty)})
		if f.SignalLog != nil {
			if err := f.SignalLog.Write(tick.TsNs, tick.Price, sig); err != nil {
				f.log.Warn().Err(err).Msg("signal log write failed")
			}
		}

		side, ok := sideFor(sig)
		if !ok {
			continue // HOLD: no order emitted
		}

		f.nextOrderID++
		order := common.Order{
			ID:    f.nextOrderID,
			Side:  side,
			Type:  common.Limit,
			Price: tick.Price,
			Qty:   defaultOrderQty,
			TsNs:  tick.TsNs,
		}

		_, trades, err := f.Book.AddOrder(order)
		if err != nil {
			f.log.Warn().Err(err).Int64("orderID", order.ID).Msg("order rejected")
			continue
		}
		f.logFills(side, trades)
	}
}

func (f *Feeder) logFills(side common.Side, trades []common.Trade) {
	if f.ExecutedLog == nil {
		return
	}
	for _, t := range trades {
		if err := f.ExecutedLog.Write(t.TsNs, side, t.Price, t.Quantity, t.BuyOrderID, t.SellOrderID); err != nil {
			f.log.Warn().Err(err).Msg("executed-trades log write failed")
		}
	}
}

func sideFor(sig signal.Signal) (common.Side, bool) {
	switch sig {
	case signal.SignalBuy:
		return common.Buy, true
	case signal.SignalSell:
		return common.Sell, true
	default:
		return 0, false
	}
}
