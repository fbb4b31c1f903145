package feeder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fenrir-lob/internal/book"
	"fenrir-lob/internal/common"
	"fenrir-lob/internal/csvio"
	"fenrir-lob/internal/feeder"
	"fenrir-lob/internal/signal"
)

func writeTicks(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ticks.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestFeeder_Run_DrivesOrdersFromSignals(t *testing.T) {
	path := writeTicks(t, "ts_ns,side,price,qty\n"+
		"1,BUY,100.0,1\n"+ // first tick always HOLDs (classifier warmup)
		"2,BUY,110.0,1\n"+ // momentum jump -> BUY signal -> limit buy at 110.0
		"3,BUY,100.0,1\n", // momentum back down -> SELL signal -> limit sell at 100.0
	)

	ticks, err := csvio.NewTickReader(path)
	require.NoError(t, err)
	defer ticks.Close()

	b := book.New("", "", false)
	defer b.Close()

	// Seed resting liquidity on both sides: the feeder's limit buy at 110.0
	// crosses the 105.0 ask, while its limit sell at 100.0 rests above the
	// 95.0 bid.
	_, _, err = b.AddOrder(common.Order{ID: 1000, Side: common.Sell, Type: common.Limit, Price: decimal.RequireFromString("105.0"), Qty: 100, TsNs: 1})
	require.NoError(t, err)
	_, _, err = b.AddOrder(common.Order{ID: 1001, Side: common.Buy, Type: common.Limit, Price: decimal.RequireFromString("95.0"), Qty: 100, TsNs: 1})
	require.NoError(t, err)

	f := feeder.New(b, signal.NewThresholdClassifier(1.0), ticks)

	require.NoError(t, f.Run(context.Background()))

	assert.Greater(t, b.TradeCount(), 0)
}

func TestFeeder_Run_StopsOnContextCancel(t *testing.T) {
	path := writeTicks(t, "ts_ns,side,price,qty\n1,BUY,100.0,1\n2,BUY,110.0,1\n")

	ticks, err := csvio.NewTickReader(path)
	require.NoError(t, err)
	defer ticks.Close()

	b := book.New("", "", false)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := feeder.New(b, signal.NewThresholdClassifier(1.0), ticks)
	err = f.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
