package marketmaker_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fenrir-lob/internal/book"
	"fenrir-lob/internal/common"
	"fenrir-lob/internal/marketmaker"
)

func TestInjectLiquidity_StraddlesMidByOneTick(t *testing.T) {
	b := book.New("", "", false)
	nextID := int64(1)

	bidID, askID := marketmaker.InjectLiquidity(b, decimal.NewFromFloat(100.0), 50, &nextID)
	assert.Equal(t, int64(1), bidID)
	assert.Equal(t, int64(2), askID)
	assert.Equal(t, int64(3), nextID)

	bids := b.Snapshot(common.Buy)
	require.Len(t, bids, 1)
	assert.True(t, bids[0].Price.Equal(decimal.NewFromFloat(99.99)))
	assert.Equal(t, int64(50), bids[0].TotalQty)

	asks := b.Snapshot(common.Sell)
	require.Len(t, asks, 1)
	assert.True(t, asks[0].Price.Equal(decimal.NewFromFloat(100.01)))
	assert.Equal(t, int64(50), asks[0].TotalQty)
}

func TestInjectLiquidity_ConsecutiveCallsDontCross(t *testing.T) {
	b := book.New("", "", false)
	nextID := int64(1)

	marketmaker.InjectLiquidity(b, decimal.NewFromFloat(100.0), 10, &nextID)
	marketmaker.InjectLiquidity(b, decimal.NewFromFloat(100.0), 10, &nextID)

	bids := b.Snapshot(common.Buy)
	asks := b.Snapshot(common.Sell)
	require.Len(t, bids, 1)
	require.Len(t, asks, 1)
	assert.Equal(t, int64(20), bids[0].TotalQty)
	assert.Equal(t, int64(20), asks[0].TotalQty)
}
