package book

import (
	"github.com/shopspring/decimal"

	"fenrir-lob/internal/common"
)

// PriceLevel is a single price point and its FIFO queue of resting
// orders. A level must never exist empty; Book removes it the instant
// its last order is popped.
type PriceLevel struct {
	Price  decimal.Decimal
	Orders []*common.Order
}

// TotalQty sums the remaining quantity of every order resting at this
// level, for the Book Inspector.
func (pl *PriceLevel) TotalQty() int64 {
	var total int64
	for _, o := range pl.Orders {
		total += o.Qty
	}
	return total
}

// head is the order that fills first at this level under price-time
// priority: the earliest-inserted order still resting.
func (pl *PriceLevel) head() *common.Order {
	if len(pl.Orders) == 0 {
		return nil
	}
	return pl.Orders[0]
}
