package book

import (
	"github.com/shopspring/decimal"

	"fenrir-lob/internal/common"
)

// LevelSnapshot is a read-only view of one resting price level: its
// price, side, and the total quantity resting there.
type LevelSnapshot struct {
	Side     common.Side
	Price    decimal.Decimal
	TotalQty int64
}

// Snapshot returns side's levels in the ladder's natural order. Each call
// builds a fresh slice of values, so a returned snapshot does not change
// when the book is mutated afterwards.
func (b *Book) Snapshot(side common.Side) []LevelSnapshot {
	return b.aggregate(side)
}

// WriteSnapshot drains Snapshot for both sides into the debug snapshot
// log, if one is open. A no-op outside debug mode.
func (b *Book) WriteSnapshot(tsNs int64) {
	if b.snapshotLog == nil {
		return
	}
	for _, side := range []common.Side{common.Buy, common.Sell} {
		for _, lvl := range b.Snapshot(side) {
			if err := b.snapshotLog.Write(tsNs, lvl.Side, lvl.Price, lvl.TotalQty); err != nil {
				b.log.Warn().Err(err).Msg("snapshot log write failed")
			}
		}
	}
}
