package csvio

import (
	"encoding/csv"
	"os"

	"github.com/shopspring/decimal"

	"fenrir-lob/internal/common"
)

// ExecutedTradesWriter appends one row per fill the feeder observed:
// ts_ns,side,price,qty,buy_id,sell_id
type ExecutedTradesWriter struct {
	file *os.File
	w    *csv.Writer
}

func NewExecutedTradesWriter(path string) (*ExecutedTradesWriter, error) {
	f, header, err := openForAppend(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if header {
		if err := w.Write([]string{"ts_ns", "side", "price", "qty", "buy_id", "sell_id"}); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
	}
	return &ExecutedTradesWriter{file: f, w: w}, nil
}

// Write logs one trade as a single row from the perspective of side (the
// feeder's own order); the row carries both the buy and the sell order
// ids.
func (e *ExecutedTradesWriter) Write(tsNs int64, side common.Side, price decimal.Decimal, qty, buyID, sellID int64) error {
	if err := e.w.Write([]string{
		formatInt(tsNs),
		side.String(),
		price.String(),
		formatInt(qty),
		formatInt(buyID),
		formatInt(sellID),
	}); err != nil {
		return err
	}
	e.w.Flush()
	return e.w.Error()
}

func (e *ExecutedTradesWriter) Close() error {
	e.w.Flush()
	return e.file.Close()
}
