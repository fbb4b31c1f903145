package common

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Order is immutable on arrival except for Qty, which monotonically
// decreases as the order trades. Id is assigned externally by the
// submitter and is unique across the lifetime of a book instance.
type Order struct {
	ID    int64
	Side  Side
	Type  OrderType
	Price decimal.Decimal // ignored when Type == Market
	Qty   int64           // remaining quantity; strictly decreasing over the order's life
	TsNs  int64           // nanosecond timestamp; stamped by the engine on acceptance if zero
}

func (o Order) String() string {
	return fmt.Sprintf(
		"Order{ID:%d Side:%s Type:%s Price:%s Qty:%d TsNs:%d}",
		o.ID, o.Side, o.Type, o.Price, o.Qty, o.TsNs,
	)
}
