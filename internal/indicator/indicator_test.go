package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ta-enginev1/internal/model"
)

// ────────────────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────────────────

var testEpoch = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

// seriesFromCloses builds a daily series where each bar straddles its close
// by half a point.
func seriesFromCloses(closes ...float64) model.PriceSeries {
	s := make(model.PriceSeries, len(closes))
	for i, c := range closes {
		s[i] = model.PricePoint{
			Date:   testEpoch.AddDate(0, 0, i),
			Open:   c,
			High:   c + 0.5,
			Low:    c - 0.5,
			Close:  c,
			Volume: 1e6,
		}
	}
	return s
}

// trendSeries builds n bars drifting by step per bar from start, with OHLC
// consistent for a one-directional move.
func trendSeries(n int, start, step float64) model.PriceSeries {
	s := make(model.PriceSeries, n)
	for i := 0; i < n; i++ {
		c := start + step*float64(i)
		o := c - step
		hi, lo := c, o
		if lo > hi {
			hi, lo = lo, hi
		}
		s[i] = model.PricePoint{
			Date:   testEpoch.AddDate(0, 0, i),
			Open:   o,
			High:   hi + 0.1,
			Low:    lo - 0.1,
			Close:  c,
			Volume: 1e6,
		}
	}
	return s
}

// flatSeries builds n identical bars.
func flatSeries(n int, price float64) model.PriceSeries {
	s := make(model.PriceSeries, n)
	for i := 0; i < n; i++ {
		s[i] = model.PricePoint{
			Date:   testEpoch.AddDate(0, 0, i),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: 1e6,
		}
	}
	return s
}

// walkSeries builds a deterministic zig-zag walk for bounds properties.
func walkSeries(n int) model.PriceSeries {
	closes := make([]float64, n)
	price := 100.0
	for i := 0; i < n; i++ {
		// repeating +2, +1, -1, +1, -2 pattern
		switch i % 5 {
		case 0:
			price += 2
		case 1:
			price += 1
		case 2:
			price -= 1
		case 3:
			price += 1
		case 4:
			price -= 2
		}
		closes[i] = price
	}
	return seriesFromCloses(closes...)
}

// ────────────────────────────────────────────────────────────
// Config validation
// ────────────────────────────────────────────────────────────

func TestConfig_Defaults_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_RejectsNonPositivePeriods(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RSIPeriod = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ADXPeriod = -3
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.BollingerK = 0
	require.Error(t, cfg.Validate())
}

func TestConfig_RejectsInvertedFastSlow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MACDFast = 26
	cfg.MACDSlow = 12
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.SMAFast = 50
	cfg.SMASlow = 20
	require.Error(t, cfg.Validate())
}

func TestIndicators_FailFastOnBadPeriod(t *testing.T) {
	s := seriesFromCloses(100, 101, 102, 103, 104)

	_, err := RSI(s, 0)
	require.Error(t, err)
	_, err = SMA(s, -1)
	require.Error(t, err)
	_, err = EMA(s, 0)
	require.Error(t, err)
	_, err = MACD(s, 0, 26, 9)
	require.Error(t, err)
	_, err = Bollinger(s, 20, -1)
	require.Error(t, err)
	_, err = Stochastic(s, 14, 0)
	require.Error(t, err)
	_, err = WilliamsR(s, 0)
	require.Error(t, err)
	_, err = ADX(s, -14)
	require.Error(t, err)
}
