package indicator

import (
	"fmt"

	"ta-enginev1/internal/model"
)

// Stochastic computes the stochastic oscillator: %K = 100 * (close - lowest
// low) / (highest high - lowest low) over kPeriod, %D = SMA(dPeriod) of %K.
// A flat high/low range reads as %K = 50.
//
// Points are emitted once both lines exist: first at index
// kPeriod+dPeriod-2, so N points yield N-kPeriod-dPeriod+2 values.
func Stochastic(series model.PriceSeries, kPeriod, dPeriod int) ([]model.StochPoint, error) {
	if err := validatePeriod("stoch_k_period", kPeriod); err != nil {
		return nil, err
	}
	if err := validatePeriod("stoch_d_period", dPeriod); err != nil {
		return nil, err
	}
	if len(series) < kPeriod+dPeriod-1 {
		return []model.StochPoint{}, nil
	}

	// %K for every index >= kPeriod-1
	kValues := make([]float64, 0, len(series)-kPeriod+1)
	for i := kPeriod - 1; i < len(series); i++ {
		hi, lo := rangeHighLow(series[i-kPeriod+1 : i+1])
		k := 50.0 // flat range
		if hi > lo {
			k = 100 * (series[i].Close - lo) / (hi - lo)
		}
		kValues = append(kValues, k)
	}

	points := make([]model.StochPoint, 0, len(kValues)-dPeriod+1)
	sum := 0.0
	for i, k := range kValues {
		sum += k
		if i >= dPeriod {
			sum -= kValues[i-dPeriod]
		}
		if i >= dPeriod-1 {
			points = append(points, model.StochPoint{
				TS: series[kPeriod-1+i].Date,
				K:  k,
				D:  sum / float64(dPeriod),
			})
		}
	}
	return points, nil
}

// StochasticSignal derives the latest-point signal: buy with %K below 20,
// sell above 80, hold otherwise.
func StochasticSignal(points []model.StochPoint) (model.TechnicalSignal, bool) {
	if len(points) == 0 {
		return model.TechnicalSignal{}, false
	}
	last := points[len(points)-1]
	sig := model.TechnicalSignal{
		Indicator: model.IndicatorStochastic,
		Value:     last.K,
		Timestamp: last.TS,
	}
	switch {
	case last.K < 20:
		sig.Signal = model.ActionBuy
		sig.Strength = clamp01(0.5 + (20-last.K)/40)
		sig.Description = fmt.Sprintf("%%K %.1f oversold", last.K)
	case last.K > 80:
		sig.Signal = model.ActionSell
		sig.Strength = clamp01(0.5 + (last.K-80)/40)
		sig.Description = fmt.Sprintf("%%K %.1f overbought", last.K)
	default:
		sig.Signal = model.ActionHold
		sig.Strength = 0.3
		sig.Description = fmt.Sprintf("%%K %.1f neutral", last.K)
	}
	return sig, true
}

// rangeHighLow returns the highest high and lowest low across the window.
func rangeHighLow(window model.PriceSeries) (hi, lo float64) {
	hi, lo = window[0].High, window[0].Low
	for _, p := range window[1:] {
		if p.High > hi {
			hi = p.High
		}
		if p.Low < lo {
			lo = p.Low
		}
	}
	return hi, lo
}
