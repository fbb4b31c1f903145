// Package book implements the price-time-priority limit order book: two
// price-indexed ladders, a FIFO per level, a trade sink, and the
// cross/sweep matching protocol that keeps them consistent.
package book

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"fenrir-lob/internal/common"
	"fenrir-lob/internal/csvio"
)

// Book owns the two ladders and the trade sink for a single instrument.
// It is not safe for concurrent use: every exported method must run to
// completion before the next begins.
type Book struct {
	id   uuid.UUID
	bids *Ladder
	asks *Ladder
	sink *TradeSink

	debug       bool
	tradeLog    *csvio.TradeLogWriter
	snapshotLog *csvio.SnapshotWriter

	log zerolog.Logger
}

// New constructs an empty Book. tradeLogPath/snapshotLogPath are only
// opened when debug is true; if either cannot be opened the failure is
// logged and swallowed — diagnostic I/O never affects matching
// correctness.
func New(tradeLogPath, snapshotLogPath string, debug bool) *Book {
	id := uuid.New()
	b := &Book{
		id:    id,
		bids:  newBidLadder(),
		asks:  newAskLadder(),
		sink:  newTradeSink(),
		debug: debug,
		log:   log.With().Str("book", id.String()).Logger(),
	}

	if debug && tradeLogPath != "" {
		w, err := csvio.NewTradeLogWriter(tradeLogPath)
		if err != nil {
			b.log.Warn().Err(err).Str("path", tradeLogPath).Msg("could not open trade log, continuing without it")
		} else {
			b.tradeLog = w
		}
	}
	if debug && snapshotLogPath != "" {
		w, err := csvio.NewSnapshotWriter(snapshotLogPath)
		if err != nil {
			b.log.Warn().Err(err).Str("path", snapshotLogPath).Msg("could not open snapshot log, continuing without it")
		} else {
			b.snapshotLog = w
		}
	}

	return b
}

// Close releases any debug file handles. Safe to call on a Book that
// never opened any (e.g. debug disabled).
func (b *Book) Close() {
	if b.tradeLog != nil {
		if err := b.tradeLog.Close(); err != nil {
			b.log.Warn().Err(err).Msg("error closing trade log")
		}
	}
	if b.snapshotLog != nil {
		if err := b.snapshotLog.Close(); err != nil {
			b.log.Warn().Err(err).Msg("error closing snapshot log")
		}
	}
}

// insert appends order to the tail of its side/price-level FIFO,
// creating the level if it does not yet exist.
func (b *Book) insert(order *common.Order) {
	ladder := b.ladderFor(order.Side)
	level, ok := ladder.GetMut(&PriceLevel{Price: order.Price})
	if ok {
		level.Orders = append(level.Orders, order)
		return
	}
	ladder.Set(&PriceLevel{Price: order.Price, Orders: []*common.Order{order}})
}

// best returns the best price level for side — lowest for asks, highest
// for bids — or ok=false if that side is empty.
func (b *Book) best(side common.Side) (*PriceLevel, bool) {
	return b.ladderFor(side).MinMut()
}

// popFront removes the head order of the level at price on side. If the
// level empties out it is dropped from the ladder immediately, honoring
// the ladder-compaction invariant.
func (b *Book) popFront(side common.Side, price decimal.Decimal) {
	ladder := b.ladderFor(side)
	key := &PriceLevel{Price: price}
	level, ok := ladder.GetMut(key)
	if !ok || len(level.Orders) == 0 {
		return
	}
	level.Orders = level.Orders[1:]
	if len(level.Orders) == 0 {
		ladder.Delete(key)
	}
}

// removeByID scans both ladders and drops any resting order with the
// given id, compacting any level that empties as a result. A miss is a
// silent no-op — the production contract for cancelling an unknown id.
func (b *Book) removeByID(id int64) bool {
	removed := false
	for _, ladder := range []*Ladder{b.bids, b.asks} {
		var toDelete []*PriceLevel
		ladder.Scan(func(level *PriceLevel) bool {
			kept := level.Orders[:0:0]
			for _, o := range level.Orders {
				if o.ID == id {
					removed = true
					continue
				}
				kept = append(kept, o)
			}
			level.Orders = kept
			if len(level.Orders) == 0 {
				toDelete = append(toDelete, level)
			}
			return true
		})
		for _, level := range toDelete {
			ladder.Delete(level)
		}
	}
	return removed
}

// aggregate returns (price, total resting qty) pairs for side, in the
// ladder's natural iteration order (descending for bids, ascending for
// asks).
func (b *Book) aggregate(side common.Side) []LevelSnapshot {
	var out []LevelSnapshot
	b.ladderFor(side).Scan(func(level *PriceLevel) bool {
		out = append(out, LevelSnapshot{
			Side:     side,
			Price:    level.Price,
			TotalQty: level.TotalQty(),
		})
		return true
	})
	return out
}

// LogBook writes the current two-sided book to zerolog at debug level —
// a diagnostic convenience, gated by Book.debug, never load-bearing for
// matching.
func (b *Book) LogBook() {
	if !b.debug {
		return
	}
	for _, side := range []common.Side{common.Buy, common.Sell} {
		for _, lvl := range b.aggregate(side) {
			b.log.Debug().
				Str("side", side.String()).
				Str("price", lvl.Price.String()).
				Int64("qty", lvl.TotalQty).
				Msg("level")
		}
	}
}
