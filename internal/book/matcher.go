package book

import (
	"fmt"
	"time"

	"fenrir-lob/internal/common"
)

// nowNs is the engine's clock, used only to stamp orders submitted with
// a zero timestamp.
var nowNs = func() int64 { return time.Now().UnixNano() }

// AddOrder is the Matcher's single public operation. LIMIT orders are
// inserted then cross_match runs until no cross remains; MARKET orders
// are never inserted and instead sweep the opposite ladder until filled
// or the ladder is exhausted, discarding any remainder. It returns the
// last-fill projection (spec's TradeResult) alongside the full ordered
// fill list, so callers that need every fill don't have to re-derive it
// from the trade sink.
func (b *Book) AddOrder(order common.Order) (common.TradeResult, []common.Trade, error) {
	if err := validateOrder(order); err != nil {
		return common.TradeResult{}, nil, err
	}
	if order.TsNs == 0 {
		order.TsNs = nowNs()
	}

	var trades []common.Trade
	switch order.Type {
	case common.Limit:
		resting := order
		b.insert(&resting)
		trades = b.crossMatch(&resting)
	case common.Market:
		incoming := order
		trades = b.sweepMarket(&incoming)
		if incoming.Qty > 0 {
			b.log.Debug().
				Int64("orderID", incoming.ID).
				Int64("discardedQty", incoming.Qty).
				Msg("market order remainder discarded")
		}
	}

	if len(trades) > 0 {
		b.sink.append(trades...)
		b.logTrades(trades)
	}

	return common.FromTrades(trades), trades, nil
}

// CancelOrder removes a resting order by id from whichever ladder holds
// it. A miss is a silent no-op in production; only logged in debug mode.
func (b *Book) CancelOrder(id int64) {
	if !b.removeByID(id) {
		b.log.Debug().Int64("orderID", id).Msg("cancel: unknown order id")
	}
}

func validateOrder(order common.Order) error {
	if order.Qty <= 0 {
		return fmt.Errorf("%w: non-positive qty %d", ErrInvalidOrder, order.Qty)
	}
	if order.Side != common.Buy && order.Side != common.Sell {
		return fmt.Errorf("%w: unknown side %d", ErrInvalidOrder, order.Side)
	}
	if order.Type != common.Limit && order.Type != common.Market {
		return fmt.Errorf("%w: unknown order type %d", ErrInvalidOrder, order.Type)
	}
	return nil
}

// crossMatch runs while both ladders are non-empty and the best bid is
// at or above the best ask, matching head-to-head at each level. The
// execution price is always the best ask (sell_price), regardless of
// which side just crossed.
func (b *Book) crossMatch(aggressor *common.Order) []common.Trade {
	var trades []common.Trade
	for {
		bidLevel, bidOk := b.bids.MinMut()
		askLevel, askOk := b.asks.MinMut()
		if !bidOk || !askOk || bidLevel.Price.LessThan(askLevel.Price) {
			break
		}

		buy := bidLevel.head()
		sell := askLevel.head()
		qty := min(buy.Qty, sell.Qty)
		price := askLevel.Price

		trades = append(trades, common.Trade{
			TsNs:        aggressor.TsNs,
			BuyOrderID:  buy.ID,
			SellOrderID: sell.ID,
			Price:       price,
			Quantity:    qty,
		})

		buy.Qty -= qty
		sell.Qty -= qty
		if buy.Qty == 0 {
			b.popFront(common.Buy, bidLevel.Price)
		}
		if sell.Qty == 0 {
			b.popFront(common.Sell, askLevel.Price)
		}
	}
	return trades
}

// sweepMarket walks the opposite ladder best-price-first, matching the
// incoming market order against each level's FIFO until it is filled or
// the ladder runs out. Any unfilled remainder is discarded; incoming is
// never inserted into either ladder.
func (b *Book) sweepMarket(incoming *common.Order) []common.Trade {
	opposite := incoming.Side.Opposite()
	var trades []common.Trade

	for incoming.Qty > 0 {
		level, ok := b.best(opposite)
		if !ok {
			break
		}

		consumed := 0
		for consumed < len(level.Orders) && incoming.Qty > 0 {
			resting := level.Orders[consumed]
			qty := min(incoming.Qty, resting.Qty)

			trade := common.Trade{TsNs: incoming.TsNs, Price: level.Price, Quantity: qty}
			if incoming.Side == common.Buy {
				trade.BuyOrderID, trade.SellOrderID = incoming.ID, resting.ID
			} else {
				trade.BuyOrderID, trade.SellOrderID = resting.ID, incoming.ID
			}
			trades = append(trades, trade)

			incoming.Qty -= qty
			resting.Qty -= qty
			if resting.Qty == 0 {
				consumed++
			}
		}

		if consumed > 0 {
			level.Orders = level.Orders[consumed:]
		}
		if len(level.Orders) == 0 {
			b.ladderFor(opposite).Delete(level)
		}
	}
	return trades
}

func (b *Book) logTrades(trades []common.Trade) {
	for _, t := range trades {
		if b.tradeLog != nil {
			if err := b.tradeLog.Write(t.TsNs, t.BuyOrderID, t.SellOrderID, t.Price, t.Quantity); err != nil {
				b.log.Warn().Err(err).Msg("trade log write failed")
			}
		}
		b.log.Debug().
			Int64("buyID", t.BuyOrderID).
			Int64("sellID", t.SellOrderID).
			Str("price", t.Price.String()).
			Int64("qty", t.Quantity).
			Msg("trade")
	}
}
