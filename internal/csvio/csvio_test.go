package csvio_test

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fenrir-lob/internal/common"
	"fenrir-lob/internal/csvio"
	"fenrir-lob/internal/signal"
)

func TestTradeLogWriter_WritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.csv")

	w, err := csvio.NewTradeLogWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(1, 10, 20, decimal.RequireFromString("100.5"), 5))
	require.NoError(t, w.Close())

	w2, err := csvio.NewTradeLogWriter(path)
	require.NoError(t, err)
	require.NoError(t, w2.Write(2, 11, 21, decimal.RequireFromString("101.0"), 3))
	require.NoError(t, w2.Close())

	rows := readRows(t, path)
	require.Len(t, rows, 3) // header + two trade rows
	assert.Equal(t, []string{"ts_ns", "buy_id", "sell_id", "price", "qty"}, rows[0])
	assert.Equal(t, []string{"1", "10", "20", "100.5", "5"}, rows[1])
	assert.Equal(t, []string{"2", "11", "21", "101", "3"}, rows[2])
}

func TestSnapshotWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.csv")

	w, err := csvio.NewSnapshotWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(5, common.Buy, decimal.RequireFromString("99.0"), 12))
	require.NoError(t, w.Close())

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ts_ns", "side", "price", "qty"}, rows[0])
	assert.Equal(t, []string{"5", "BUY", "99", "12"}, rows[1])
}

func TestSignalWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.csv")

	w, err := csvio.NewSignalWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(7, decimal.RequireFromString("102.25"), signal.SignalBuy))
	require.NoError(t, w.Close())

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"timestamp", "price", "signal"}, rows[0])
	assert.Equal(t, []string{"7", "102.25", "0"}, rows[1])
}

func TestExecutedTradesWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "executed.csv")

	w, err := csvio.NewExecutedTradesWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(9, common.Sell, decimal.RequireFromString("98.0"), 4, 100, 200))
	require.NoError(t, w.Close())

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ts_ns", "side", "price", "qty", "buy_id", "sell_id"}, rows[0])
	assert.Equal(t, []string{"9", "SELL", "98", "4", "100", "200"}, rows[1])
}

func TestTickReader_ReadsUntilEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticks.csv")
	writeFile(t, path, "ts_ns,side,price,qty\n1,BUY,100.0,10\n2,SELL,100.5,5\n")

	r, err := csvio.NewTickReader(path)
	require.NoError(t, err)
	defer r.Close()

	first, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.TsNs)
	assert.Equal(t, common.Buy, first.Side)
	assert.True(t, first.Price.Equal(decimal.RequireFromString("100.0")))
	assert.Equal(t, int64(10), first.Qty)

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, common.Sell, second.Side)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestTickReader_RejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	writeFile(t, path, "")

	_, err := csvio.NewTickReader(path)
	assert.Error(t, err)
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
