package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ta-enginev1/internal/model"
)

func TestBollinger_Correctness(t *testing.T) {
	// Window 10, 20, 30: mean = 20, population stddev = sqrt(200/3).
	s := seriesFromCloses(10, 20, 30)
	points, err := Bollinger(s, 3, 2.0)
	require.NoError(t, err)
	require.Len(t, points, 1)

	sd := math.Sqrt(200.0 / 3.0)
	assert.InDelta(t, 20.0, points[0].Middle, 0.0001)
	assert.InDelta(t, 20.0+2*sd, points[0].Upper, 0.0001)
	assert.InDelta(t, 20.0-2*sd, points[0].Lower, 0.0001)
}

func TestBollinger_BandOrdering(t *testing.T) {
	points, err := Bollinger(walkSeries(80), 20, 2.0)
	require.NoError(t, err)
	require.NotEmpty(t, points)
	for _, p := range points {
		assert.LessOrEqual(t, p.Lower, p.Middle)
		assert.LessOrEqual(t, p.Middle, p.Upper)
	}
}

func TestBollinger_FlatSeriesBandsCoincide(t *testing.T) {
	points, err := Bollinger(flatSeries(30, 50.0), 20, 2.0)
	require.NoError(t, err)
	require.NotEmpty(t, points)
	for _, p := range points {
		assert.Equal(t, 50.0, p.Upper)
		assert.Equal(t, 50.0, p.Middle)
		assert.Equal(t, 50.0, p.Lower)
	}
}

func TestBollinger_LookbackGating(t *testing.T) {
	points, err := Bollinger(trendSeries(19, 100, 1), 20, 2.0)
	require.NoError(t, err)
	assert.Empty(t, points)

	points, err = Bollinger(trendSeries(25, 100, 1), 20, 2.0)
	require.NoError(t, err)
	assert.Len(t, points, 25-20+1)
}

func TestBollingerSignal_Zones(t *testing.T) {
	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	bands := []model.BandPoint{{TS: ts, Upper: 110, Middle: 100, Lower: 90}}

	mkSeries := func(close float64) model.PriceSeries {
		return model.PriceSeries{{Date: ts, Open: close, High: close, Low: close, Close: close, Volume: 1}}
	}

	sig, ok := BollingerSignal(bands, mkSeries(88))
	require.True(t, ok)
	assert.Equal(t, model.ActionBuy, sig.Signal)

	sig, ok = BollingerSignal(bands, mkSeries(112))
	require.True(t, ok)
	assert.Equal(t, model.ActionSell, sig.Signal)

	sig, ok = BollingerSignal(bands, mkSeries(100))
	require.True(t, ok)
	assert.Equal(t, model.ActionHold, sig.Signal)
}

func TestBollingerSignal_CollapsedBandIsHold(t *testing.T) {
	// Zero width must not divide by zero or emit a directional call.
	sig, ok := BollingerSignal(
		[]model.BandPoint{{Upper: 50, Middle: 50, Lower: 50}},
		flatSeries(1, 50),
	)
	require.True(t, ok)
	assert.Equal(t, model.ActionHold, sig.Signal)
	assert.False(t, math.IsNaN(sig.Strength))
	assert.False(t, math.IsInf(sig.Strength, 0))
}
