package indicator

import (
	"fmt"

	"ta-enginev1/internal/model"
)

// SMA computes the simple moving average over a rolling window using a
// running sum. First point at index period-1: N points yield N-period+1
// values.
func SMA(series model.PriceSeries, period int) ([]model.Point, error) {
	if err := validatePeriod("sma_period", period); err != nil {
		return nil, err
	}
	if len(series) < period {
		return []model.Point{}, nil
	}

	points := make([]model.Point, 0, len(series)-period+1)
	sum := 0.0
	for i, p := range series {
		sum += p.Close
		if i >= period {
			sum -= series[i-period].Close
		}
		if i >= period-1 {
			points = append(points, model.Point{TS: p.Date, Value: sum / float64(period)})
		}
	}
	return points, nil
}

// EMA computes the exponential moving average, seeded with SMA(period) at
// index period-1, then EMA = price*mult + prev*(1-mult) with
// mult = 2/(period+1). Same alignment as SMA.
func EMA(series model.PriceSeries, period int) ([]model.Point, error) {
	if err := validatePeriod("ema_period", period); err != nil {
		return nil, err
	}
	closes := series.Closes()
	values := emaValues(closes, period)
	if values == nil {
		return []model.Point{}, nil
	}
	points := make([]model.Point, len(values))
	for i, v := range values {
		points[i] = model.Point{TS: series[period-1+i].Date, Value: v}
	}
	return points, nil
}

// emaValues is the raw EMA recurrence over a float slice, shared with MACD.
// Returns nil when len(values) < period.
func emaValues(values []float64, period int) []float64 {
	if len(values) < period {
		return nil
	}
	out := make([]float64, 0, len(values)-period+1)

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	current := sum / float64(period) // SMA seed
	out = append(out, current)

	mult := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		current = values[i]*mult + current*(1-mult)
		out = append(out, current)
	}
	return out
}

// CrossSignal derives a moving-average crossover signal from fast and slow
// MA series of any kind. Fast above slow is a golden cross (buy), fast below
// slow a death cross (sell); a cross that happened on the latest point is
// materially stronger than a standing one. Returns false when either series
// is too short to compare.
func CrossSignal(name model.IndicatorName, fast, slow []model.Point) (model.TechnicalSignal, bool) {
	if len(fast) == 0 || len(slow) == 0 {
		return model.TechnicalSignal{}, false
	}
	f, s := fast[len(fast)-1], slow[len(slow)-1]

	sig := model.TechnicalSignal{
		Indicator: name,
		Value:     f.Value - s.Value,
		Timestamp: f.TS,
	}

	// Fresh-cross detection needs a previous reading on both lines.
	fresh := false
	if len(fast) > 1 && len(slow) > 1 {
		pf, ps := fast[len(fast)-2], slow[len(slow)-2]
		crossedUp := pf.Value <= ps.Value && f.Value > s.Value
		crossedDown := pf.Value >= ps.Value && f.Value < s.Value
		fresh = crossedUp || crossedDown
	}

	switch {
	case f.Value > s.Value:
		sig.Signal = model.ActionBuy
		if fresh {
			sig.Strength = 0.8
			sig.Description = "Golden Cross: short MA crossed above long MA"
		} else {
			sig.Strength = 0.55
			sig.Description = "short MA above long MA"
		}
	case f.Value < s.Value:
		sig.Signal = model.ActionSell
		if fresh {
			sig.Strength = 0.8
			sig.Description = "Death Cross: short MA crossed below long MA"
		} else {
			sig.Strength = 0.55
			sig.Description = "short MA below long MA"
		}
	default:
		sig.Signal = model.ActionHold
		sig.Strength = 0.3
		sig.Description = fmt.Sprintf("%s MAs equal", name)
	}
	return sig, true
}
