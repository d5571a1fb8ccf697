package indicator

import (
	"fmt"
	"math"

	"ta-enginev1/internal/model"
)

// RSI computes the Relative Strength Index using Wilder's smoothing method:
// the first value is seeded with the simple average of gains and losses over
// the first period changes, then avg = (prev*(period-1) + current) / period.
//
// The first point is emitted at index period (period+1 closes needed), so a
// series of N points yields N-period values. A zero average loss pins RSI at
// 100, never a division error.
func RSI(series model.PriceSeries, period int) ([]model.Point, error) {
	if err := validatePeriod("rsi_period", period); err != nil {
		return nil, err
	}
	if len(series) < period+1 {
		return []model.Point{}, nil
	}

	closes := series.Closes()
	points := make([]model.Point, 0, len(series)-period)

	// Seed averages from the first `period` changes
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	points = append(points, model.Point{TS: series[period].Date, Value: rsiValue(avgGain, avgLoss)})

	// Wilder smoothing for the rest
	p := float64(period)
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		points = append(points, model.Point{TS: series[i].Date, Value: rsiValue(avgGain, avgLoss)})
	}

	return points, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// RSISignal derives the latest-point signal: buy below 30 (oversold), sell
// above 70 (overbought), hold otherwise. Strength grows with distance past
// the threshold; hold strength decays with distance from the 50 midline.
// Returns false when no RSI value exists yet.
func RSISignal(points []model.Point) (model.TechnicalSignal, bool) {
	if len(points) == 0 {
		return model.TechnicalSignal{}, false
	}
	last := points[len(points)-1]
	v := last.Value

	sig := model.TechnicalSignal{
		Indicator: model.IndicatorRSI,
		Value:     v,
		Timestamp: last.TS,
	}
	switch {
	case v < 30:
		sig.Signal = model.ActionBuy
		sig.Strength = clamp01(0.5 + (30-v)/60)
		sig.Description = fmt.Sprintf("RSI %.1f oversold", v)
	case v > 70:
		sig.Signal = model.ActionSell
		sig.Strength = clamp01(0.5 + (v-70)/60)
		sig.Description = fmt.Sprintf("RSI %.1f overbought", v)
	default:
		sig.Signal = model.ActionHold
		sig.Strength = clamp01(1-math.Abs(v-50)/50) * 0.5
		sig.Description = fmt.Sprintf("RSI %.1f neutral", v)
	}
	return sig, true
}
