package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ta-enginev1/internal/model"
)

func TestRSI_Correctness_Period3(t *testing.T) {
	// Hand-calculated RSI(3) for prices 100, 102, 104, 103, 105.
	// Changes: +2, +2, -1, +2.
	// Seed over first 3 changes: avgGain = 4/3, avgLoss = 1/3
	//   -> RS = 4, RSI = 100 - 100/5 = 80.0 (at index 3)
	// Next change +2 (Wilder):
	//   avgGain = (4/3*2 + 2)/3 = 14/9, avgLoss = (1/3*2)/3 = 2/9
	//   -> RS = 7, RSI = 100 - 100/8 = 87.5 (at index 4)
	s := seriesFromCloses(100, 102, 104, 103, 105)

	points, err := RSI(s, 3)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.InDelta(t, 80.0, points[0].Value, 0.0001)
	assert.InDelta(t, 87.5, points[1].Value, 0.0001)
	assert.Equal(t, s[3].Date, points[0].TS)
	assert.Equal(t, s[4].Date, points[1].TS)
}

func TestRSI_Bounds(t *testing.T) {
	points, err := RSI(walkSeries(120), 14)
	require.NoError(t, err)
	require.NotEmpty(t, points)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Value, 0.0)
		assert.LessOrEqual(t, p.Value, 100.0)
	}
}

func TestRSI_MonotonicRise_Pins100(t *testing.T) {
	// Zero average loss must read as exactly 100, never a division error.
	points, err := RSI(trendSeries(30, 100, 0.5), 14)
	require.NoError(t, err)
	require.NotEmpty(t, points)
	for _, p := range points {
		assert.Equal(t, 100.0, p.Value)
	}
}

func TestRSI_MonotonicFall_ApproachesZero(t *testing.T) {
	points, err := RSI(trendSeries(30, 100, -0.5), 14)
	require.NoError(t, err)
	require.NotEmpty(t, points)
	for _, p := range points {
		assert.Equal(t, 0.0, p.Value)
	}
}

func TestRSI_LookbackGating(t *testing.T) {
	// period 14 needs 15 points for the first value.
	series := trendSeries(14, 100, 1)
	points, err := RSI(series, 14)
	require.NoError(t, err)
	assert.Empty(t, points)

	series = trendSeries(15, 100, 1)
	points, err = RSI(series, 14)
	require.NoError(t, err)
	assert.Len(t, points, 1)

	series = trendSeries(40, 100, 1)
	points, err = RSI(series, 14)
	require.NoError(t, err)
	assert.Len(t, points, 40-14)
}

func TestRSISignal_Zones(t *testing.T) {
	mk := func(v float64) []model.Point {
		return []model.Point{{TS: testEpoch, Value: v}}
	}

	sig, ok := RSISignal(mk(25))
	require.True(t, ok)
	assert.Equal(t, model.ActionBuy, sig.Signal)
	assert.InDelta(t, 0.5+(30-25)/60.0, sig.Strength, 0.0001)
	assert.Contains(t, sig.Description, "oversold")

	sig, ok = RSISignal(mk(78))
	require.True(t, ok)
	assert.Equal(t, model.ActionSell, sig.Signal)
	assert.Contains(t, sig.Description, "overbought")

	sig, ok = RSISignal(mk(50))
	require.True(t, ok)
	assert.Equal(t, model.ActionHold, sig.Signal)

	_, ok = RSISignal(nil)
	assert.False(t, ok)
}
