// Package market infers the market regime used to contextualize indicator
// explanations: bull/bear/sideways condition, volatility bucket, and cap-size
// bucket. Inference is fail-soft: degenerate input always yields a fully
// populated context, defaulting to sideways/medium.
package market

import (
	"math"

	"ta-enginev1/internal/model"
)

// Thresholds are the tuning parameters behind regime classification. The
// exact values are empirical, not standards-derived; treat them as knobs.
type Thresholds struct {
	// BullNetChange / BearNetChange are the net fractional change over the
	// window beyond which a smooth path classifies as bull / bear.
	BullNetChange float64 `yaml:"bull_net_change"` // default 0.05
	BearNetChange float64 `yaml:"bear_net_change"` // default -0.05

	// MaxReversalRate is the highest fraction of direction reversals still
	// considered a smooth (trending) path.
	MaxReversalRate float64 `yaml:"max_reversal_rate"` // default 0.55

	// LowVolatility / HighVolatility bound the standard deviation of
	// period-over-period returns for the low and high buckets.
	LowVolatility  float64 `yaml:"low_volatility"`  // default 0.01
	HighVolatility float64 `yaml:"high_volatility"` // default 0.025

	// SmallCapMax / MidCapMax are market-cap bucket boundaries in dollars.
	SmallCapMax float64 `yaml:"small_cap_max"` // default 2e9
	MidCapMax   float64 `yaml:"mid_cap_max"`   // default 1e10

	// MinPoints is the fewest price points needed to classify at all;
	// below it the context defaults to sideways/medium.
	MinPoints int `yaml:"min_points"` // default 10
}

// DefaultThresholds returns the documented default tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BullNetChange:   0.05,
		BearNetChange:   -0.05,
		MaxReversalRate: 0.55,
		LowVolatility:   0.01,
		HighVolatility:  0.025,
		SmallCapMax:     2e9,
		MidCapMax:       1e10,
		MinPoints:       10,
	}
}

// Infer derives the MarketContext for a symbol from its price history and
// static metadata. Sector and market cap are pass-through classifications;
// condition and volatility come from the series. Never mutates the series,
// never errors.
func Infer(symbol, sector string, marketCap float64, series model.PriceSeries, th Thresholds) model.MarketContext {
	_ = symbol // identification only; classification is symbol-agnostic
	return model.MarketContext{
		Condition:  Condition(series, th),
		Volatility: Volatility(series, th),
		Sector:     sector,
		MarketCap:  CapBucket(marketCap, th),
	}
}

// Condition classifies bull/bear/sideways from net change and path
// smoothness. A dominant monotonic direction with few reversals trends; a
// choppy or flat path is sideways.
func Condition(series model.PriceSeries, th Thresholds) model.MarketCondition {
	if len(series) < th.MinPoints {
		return model.ConditionSideways
	}
	first, last := series[0].Close, series[len(series)-1].Close
	if first <= 0 {
		return model.ConditionSideways
	}
	net := (last - first) / first
	rev := reversalRate(series)

	switch {
	case net >= th.BullNetChange && rev <= th.MaxReversalRate:
		return model.ConditionBull
	case net <= th.BearNetChange && rev <= th.MaxReversalRate:
		return model.ConditionBear
	default:
		return model.ConditionSideways
	}
}

// Volatility buckets the dispersion of period-over-period returns.
func Volatility(series model.PriceSeries, th Thresholds) model.VolatilityLevel {
	if len(series) < th.MinPoints {
		return model.VolatilityMedium
	}
	sd := returnStdDev(series)
	switch {
	case sd < th.LowVolatility:
		return model.VolatilityLow
	case sd > th.HighVolatility:
		return model.VolatilityHigh
	default:
		return model.VolatilityMedium
	}
}

// Trend is the coarse price direction over the window, used in the analysis
// summary. A net move under 1% either way reads as flat.
func Trend(series model.PriceSeries) model.TrendDirection {
	if len(series) < 2 || series[0].Close <= 0 {
		return model.TrendFlat
	}
	net := (series[len(series)-1].Close - series[0].Close) / series[0].Close
	switch {
	case net > 0.01:
		return model.TrendUp
	case net < -0.01:
		return model.TrendDown
	default:
		return model.TrendFlat
	}
}

// CapBucket classifies market capitalization against fixed boundaries.
func CapBucket(marketCap float64, th Thresholds) model.CapSize {
	switch {
	case marketCap < th.SmallCapMax:
		return model.CapSmall
	case marketCap < th.MidCapMax:
		return model.CapMid
	default:
		return model.CapLarge
	}
}

// reversalRate is the fraction of consecutive price changes that flipped
// direction. Flat changes neither extend nor reverse the path.
func reversalRate(series model.PriceSeries) float64 {
	changes := 0
	reversals := 0
	prevDir := 0
	for i := 1; i < len(series); i++ {
		d := series[i].Close - series[i-1].Close
		dir := 0
		if d > 0 {
			dir = 1
		} else if d < 0 {
			dir = -1
		}
		if dir == 0 {
			continue
		}
		if prevDir != 0 {
			changes++
			if dir != prevDir {
				reversals++
			}
		}
		prevDir = dir
	}
	if changes == 0 {
		return 0
	}
	return float64(reversals) / float64(changes)
}

// returnStdDev is the population standard deviation of period returns.
func returnStdDev(series model.PriceSeries) float64 {
	returns := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		if series[i-1].Close <= 0 {
			continue
		}
		returns = append(returns, (series[i].Close-series[i-1].Close)/series[i-1].Close)
	}
	if len(returns) == 0 {
		return 0
	}
	m := 0.0
	for _, r := range returns {
		m += r
	}
	m /= float64(len(returns))
	variance := 0.0
	for _, r := range returns {
		d := r - m
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(returns)))
}
