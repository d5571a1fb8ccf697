package indicator

import (
	"fmt"

	"ta-enginev1/internal/model"
)

// WilliamsR computes Williams %R: -100 * (highest high - close) / (highest
// high - lowest low) over the period, bounded to [-100, 0]. A flat range
// reads as -50.
//
// First point at index period-1: N points yield N-period+1 values.
func WilliamsR(series model.PriceSeries, period int) ([]model.Point, error) {
	if err := validatePeriod("williams_period", period); err != nil {
		return nil, err
	}
	if len(series) < period {
		return []model.Point{}, nil
	}

	points := make([]model.Point, 0, len(series)-period+1)
	for i := period - 1; i < len(series); i++ {
		hi, lo := rangeHighLow(series[i-period+1 : i+1])
		v := -50.0 // flat range
		if hi > lo {
			v = -100 * (hi - series[i].Close) / (hi - lo)
		}
		points = append(points, model.Point{TS: series[i].Date, Value: v})
	}
	return points, nil
}

// WilliamsRSignal derives the latest-point signal: buy below -80 (oversold),
// sell above -20 (overbought), hold otherwise.
func WilliamsRSignal(points []model.Point) (model.TechnicalSignal, bool) {
	if len(points) == 0 {
		return model.TechnicalSignal{}, false
	}
	last := points[len(points)-1]
	v := last.Value
	sig := model.TechnicalSignal{
		Indicator: model.IndicatorWilliamsR,
		Value:     v,
		Timestamp: last.TS,
	}
	switch {
	case v < -80:
		sig.Signal = model.ActionBuy
		sig.Strength = clamp01(0.5 + (-80-v)/40)
		sig.Description = fmt.Sprintf("Williams %%R %.1f oversold", v)
	case v > -20:
		sig.Signal = model.ActionSell
		sig.Strength = clamp01(0.5 + (v+20)/40)
		sig.Description = fmt.Sprintf("Williams %%R %.1f overbought", v)
	default:
		sig.Signal = model.ActionHold
		sig.Strength = 0.3
		sig.Description = fmt.Sprintf("Williams %%R %.1f neutral", v)
	}
	return sig, true
}
