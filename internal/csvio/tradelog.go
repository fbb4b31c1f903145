// Package csvio implements the CSV wire formats spec'd for the engine's
// optional debug sinks and the out-of-scope feeder's tick/signal/report
// files. Every writer here is append-only and best-effort: a failure to
// open or write is the caller's concern to log, never the engine's to
// fail matching over.
package csvio

import (
	"encoding/csv"
	"os"

	"github.com/shopspring/decimal"
)

// TradeLogWriter appends one CSV row per executed trade:
// ts_ns,buy_id,sell_id,price,qty
type TradeLogWriter struct {
	file *os.File
	w    *csv.Writer
}

// NewTradeLogWriter opens path for append, writing the header if the
// file is new.
func NewTradeLogWriter(path string) (*TradeLogWriter, error) {
	f, header, err := openForAppend(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if header {
		if err := w.Write([]string{"ts_ns", "buy_id", "sell_id", "price", "qty"}); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
	}
	return &TradeLogWriter{file: f, w: w}, nil
}

// Write appends a single trade row and flushes immediately — trade logs
// are low-volume debug output, not a hot path worth buffering.
func (t *TradeLogWriter) Write(tsNs, buyID, sellID int64, price decimal.Decimal, qty int64) error {
	if err := t.w.Write([]string{
		formatInt(tsNs),
		formatInt(buyID),
		formatInt(sellID),
		price.String(),
		formatInt(qty),
	}); err != nil {
		return err
	}
	t.w.Flush()
	return t.w.Error()
}

func (t *TradeLogWriter) Close() error {
	t.w.Flush()
	return t.file.Close()
}
