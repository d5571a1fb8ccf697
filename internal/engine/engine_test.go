package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ta-enginev1/internal/model"
)

func risingSeries(n int, start, step float64) model.PriceSeries {
	epoch := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := make(model.PriceSeries, n)
	for i := 0; i < n; i++ {
		c := start + step*float64(i)
		s[i] = model.PricePoint{
			Date:   epoch.AddDate(0, 0, i),
			Open:   c - step,
			High:   c + 0.1,
			Low:    c - step - 0.1,
			Close:  c,
			Volume: 1e6,
		}
	}
	return s
}

func TestNew_RejectsBadConfig(t *testing.T) {
	opts := DefaultOptions()
	opts.Indicators.RSIPeriod = 0
	_, err := New(opts, nil)
	require.Error(t, err)

	opts = DefaultOptions()
	opts.SentimentMargin = 1.5
	_, err = New(opts, nil)
	require.Error(t, err)

	opts = DefaultOptions()
	opts.ConflictMinStrength = -0.1
	_, err = New(opts, nil)
	require.Error(t, err)
}

func TestAnalyze_SustainedUptrendReadsBullish(t *testing.T) {
	e, err := New(DefaultOptions(), nil)
	require.NoError(t, err)

	res := e.Analyze(risingSeries(90, 100, 0.5), "ACME")

	assert.Equal(t, "ACME", res.Symbol)
	assert.Equal(t, model.SentimentBullish, res.Summary.Overall)
	assert.Equal(t, model.TrendUp, res.Summary.Trend)
	assert.Equal(t, 9, res.Summary.IndicatorCount)
	assert.NotEmpty(t, res.Indicators.RSI)
	assert.NotEmpty(t, res.Indicators.MACD)
	assert.Empty(t, res.Indicators.SMA200) // 90 points is below the 200-day lookback
}

func TestAnalyze_Deterministic(t *testing.T) {
	e, err := New(DefaultOptions(), nil)
	require.NoError(t, err)

	series := risingSeries(60, 100, 0.5)
	a := e.Analyze(series, "ACME")
	b := e.Analyze(series, "ACME")
	assert.True(t, reflect.DeepEqual(a, b))
}

func TestAnalyze_ShortSeriesDegradesGracefully(t *testing.T) {
	e, err := New(DefaultOptions(), nil)
	require.NoError(t, err)

	res := e.Analyze(risingSeries(5, 100, 1), "TINY")

	// Oscillators below their lookback contribute nothing; OBV always emits.
	assert.Empty(t, res.Indicators.RSI)
	assert.Len(t, res.Indicators.OBV, 5)
	assert.LessOrEqual(t, res.Summary.IndicatorCount, 2)
	assert.NotNil(t, res.Summary.Conflicts)
}

func TestAnalyze_EmptySeries(t *testing.T) {
	e, err := New(DefaultOptions(), nil)
	require.NoError(t, err)

	res := e.Analyze(nil, "EMPTY")
	assert.Equal(t, model.SentimentNeutral, res.Summary.Overall)
	assert.Zero(t, res.Summary.Strength)
	assert.Zero(t, res.Summary.IndicatorCount)
	assert.Empty(t, res.Signals)
}

func BenchmarkAnalyze(b *testing.B) {
	e, err := New(DefaultOptions(), nil)
	if err != nil {
		b.Fatal(err)
	}
	series := risingSeries(500, 100, 0.25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Analyze(series, "BENCH")
	}
}
