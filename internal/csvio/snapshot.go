package csvio

import (
	"encoding/csv"
	"os"

	"github.com/shopspring/decimal"

	"fenrir-lob/internal/common"
)

// SnapshotWriter appends one CSV row per resting level, emitted on
// demand by the Book Inspector: ts_ns,side,price,qty
type SnapshotWriter struct {
	file *os.File
	w    *csv.Writer
}

func NewSnapshotWriter(path string) (*SnapshotWriter, error) {
	f, header, err := openForAppend(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if header {
		if err := w.Write([]string{"ts_ns", "side", "price", "qty"}); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
	}
	return &SnapshotWriter{file: f, w: w}, nil
}

func (s *SnapshotWriter) Write(tsNs int64, side common.Side, price decimal.Decimal, qty int64) error {
	if err := s.w.Write([]string{
		formatInt(tsNs),
		side.String(),
		price.String(),
		formatInt(qty),
	}); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *SnapshotWriter) Close() error {
	s.w.Flush()
	return s.file.Close()
}
