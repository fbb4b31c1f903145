package book

import (
	"github.com/tidwall/btree"

	"fenrir-lob/internal/common"
)

// Ladder is the ordered price->level mapping for one side of the book.
// Bids are ordered so the highest price sorts first; asks so the lowest
// price sorts first — in both cases Min() is "the best price on this
// side", matching spec's natural ladder iteration order.
type Ladder = btree.BTreeG[*PriceLevel]

func newBidLadder() *Ladder {
	return btree.NewBTreeG(func(a, b *PriceLevel) bool {
		return a.Price.GreaterThan(b.Price)
	})
}

func newAskLadder() *Ladder {
	return btree.NewBTreeG(func(a, b *PriceLevel) bool {
		return a.Price.LessThan(b.Price)
	})
}

// ladderFor returns the ladder a given side rests on.
func (b *Book) ladderFor(side common.Side) *Ladder {
	if side == common.Buy {
		return b.bids
	}
	return b.asks
}
