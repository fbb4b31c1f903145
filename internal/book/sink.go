package book

import "fenrir-lob/internal/common"

// TradeSink is the append-only record of every trade a Book has
// produced, in production order.
type TradeSink struct {
	trades []common.Trade
}

func newTradeSink() *TradeSink {
	return &TradeSink{}
}

func (s *TradeSink) append(trades ...common.Trade) {
	s.trades = append(s.trades, trades...)
}

// TradesSince returns every trade produced since marker (an index
// previously obtained from len(TradesSince(0))), for an external
// exporter to drain the log without re-reading what it already saw.
func (s *TradeSink) TradesSince(marker int) []common.Trade {
	if marker < 0 || marker > len(s.trades) {
		marker = 0
	}
	return s.trades[marker:]
}

// TradesSince exposes the Book's sink to external consumers (debug
// export, executed-trades logging) without giving them write access.
func (b *Book) TradesSince(marker int) []common.Trade {
	return b.sink.TradesSince(marker)
}

// TradeCount reports how many trades the sink has accumulated, suitable
// as a marker for a subsequent TradesSince call.
func (b *Book) TradeCount() int {
	return len(b.sink.trades)
}
