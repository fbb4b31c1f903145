// Package marketmaker implements the out-of-scope liquidity injector:
// a one-line wrapper submitting a symmetric pair of limit orders around
// a mid price. Grounded on original_source/engine_cpp/include/MarketMaker.h.
package marketmaker

import (
	"github.com/shopspring/decimal"

	"fenrir-lob/internal/book"
	"fenrir-lob/internal/common"
)

// tick is the one-cent spread the original prototype straddles the mid
// price with (mid-0.01 / mid+0.01).
var tick = decimal.NewFromFloat(0.01)

// InjectLiquidity submits a resting bid one tick below mid and a
// resting ask one tick above it, both of size, consuming two ids from
// nextID. It returns the ids assigned so a caller can track or cancel
// them later.
func InjectLiquidity(b *book.Book, mid decimal.Decimal, size int64, nextID *int64) (bidID, askID int64) {
	bidID = *nextID
	*nextID++
	askID = *nextID
	*nextID++

	b.AddOrder(common.Order{
		ID:    bidID,
		Side:  common.Buy,
		Type:  common.Limit,
		Price: mid.Sub(tick),
		Qty:   size,
	})
	b.AddOrder(common.Order{
		ID:    askID,
		Side:  common.Sell,
		Type:  common.Limit,
		Price: mid.Add(tick),
		Qty:   size,
	})

	return bidID, askID
}
