package csvio

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"fenrir-lob/internal/signal"
)

// SignalWriter appends one row per feeder decision: timestamp,price,signal
type SignalWriter struct {
	file *os.File
	w    *csv.Writer
}

func NewSignalWriter(path string) (*SignalWriter, error) {
	f, header, err := openForAppend(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if header {
		if err := w.Write([]string{"timestamp", "price", "signal"}); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
	}
	return &SignalWriter{file: f, w: w}, nil
}

func (s *SignalWriter) Write(tsNs int64, price decimal.Decimal, sig signal.Signal) error {
	if err := s.w.Write([]string{
		formatInt(tsNs),
		price.String(),
		strconv.Itoa(int(sig)),
	}); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *SignalWriter) Close() error {
	s.w.Flush()
	return s.file.Close()
}
