package common

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Trade is an immutable record of a single fill. Once created by the
// matcher it is never modified.
type Trade struct {
	TsNs        int64
	BuyOrderID  int64
	SellOrderID int64
	Price       decimal.Decimal
	Quantity    int64
}

func (t Trade) String() string {
	return fmt.Sprintf(
		"Trade{TsNs:%d Buy:%d Sell:%d Price:%s Qty:%d}",
		t.TsNs, t.BuyOrderID, t.SellOrderID, t.Price, t.Quantity,
	)
}

// TradeResult is the most recent fill produced by a single AddOrder call.
// If the submission produced multiple fills, only the last one's fields
// are reported here; Executed is false with zeroed fields when no fill
// occurred at all.
type TradeResult struct {
	Executed    bool
	Price       decimal.Decimal
	Qty         int64
	BuyOrderID  int64
	SellOrderID int64
}

// FromTrades builds the last-fill projection spec.md requires from a
// submission's full fill list.
func FromTrades(trades []Trade) TradeResult {
	if len(trades) == 0 {
		return TradeResult{}
	}
	last := trades[len(trades)-1]
	return TradeResult{
		Executed:    true,
		Price:       last.Price,
		Qty:         last.Quantity,
		BuyOrderID:  last.BuyOrderID,
		SellOrderID: last.SellOrderID,
	}
}
