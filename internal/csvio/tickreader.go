package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"fenrir-lob/internal/common"
)

// Tick is one row of the feeder's input file: ts_ns,side,price,qty
type Tick struct {
	TsNs  int64
	Side  common.Side
	Price decimal.Decimal
	Qty   int64
}

// TickReader streams rows from a tick CSV file for the out-of-scope
// strategy driver. The engine itself never parses CSV; this exists only
// so the feeder the spec describes is runnable as part of this repo.
type TickReader struct {
	file *os.File
	r    *csv.Reader
}

// NewTickReader opens path and discards its header row.
func NewTickReader(path string) (*TickReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil { // header
		f.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("tick file %s is empty", path)
		}
		return nil, err
	}
	return &TickReader{file: f, r: r}, nil
}

// Next returns the next tick, io.EOF when the file is exhausted.
func (t *TickReader) Next() (Tick, error) {
	row, err := t.r.Read()
	if err != nil {
		return Tick{}, err
	}
	return parseTick(row)
}

func (t *TickReader) Close() error {
	return t.file.Close()
}

func parseTick(row []string) (Tick, error) {
	if len(row) < 4 {
		return Tick{}, fmt.Errorf("malformed tick row %q", strings.Join(row, ","))
	}
	tsNs, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
	if err != nil {
		return Tick{}, fmt.Errorf("parse ts_ns: %w", err)
	}
	side, err := parseSide(row[1])
	if err != nil {
		return Tick{}, err
	}
	price, err := decimal.NewFromString(strings.TrimSpace(row[2]))
	if err != nil {
		return Tick{}, fmt.Errorf("parse price: %w", err)
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
	if err != nil {
		return Tick{}, fmt.Errorf("parse qty: %w", err)
	}
	return Tick{TsNs: tsNs, Side: side, Price: price, Qty: qty}, nil
}

func parseSide(s string) (common.Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY", "0":
		return common.Buy, nil
	case "SELL", "1":
		return common.Sell, nil
	default:
		return 0, fmt.Errorf("unknown side %q", s)
	}
}
