package indicator

import (
	"fmt"

	"ta-enginev1/internal/model"
)

// MACD computes the Moving Average Convergence Divergence: MACD line =
// EMA(fast) - EMA(slow), signal line = EMA(signalPeriod) of the MACD line,
// histogram = MACD - signal, exactly.
//
// Points are emitted only once all three lines exist: the first at index
// slow+signalPeriod-2, so N input points yield N-slow-signalPeriod+2 values.
func MACD(series model.PriceSeries, fast, slow, signalPeriod int) ([]model.MACDPoint, error) {
	if err := validatePeriod("macd_fast", fast); err != nil {
		return nil, err
	}
	if err := validatePeriod("macd_slow", slow); err != nil {
		return nil, err
	}
	if err := validatePeriod("macd_signal", signalPeriod); err != nil {
		return nil, err
	}
	if fast >= slow {
		return nil, fmt.Errorf("macd_fast (%d) must be less than macd_slow (%d)", fast, slow)
	}
	if len(series) < slow+signalPeriod-1 {
		return []model.MACDPoint{}, nil
	}

	closes := series.Closes()
	fastEMA := emaValues(closes, fast)
	slowEMA := emaValues(closes, slow)

	// MACD line aligned to the slow EMA: one value per index >= slow-1.
	macdLine := make([]float64, len(slowEMA))
	for i := range slowEMA {
		// fastEMA index for series index slow-1+i is slow-1+i-(fast-1)
		macdLine[i] = fastEMA[slow-fast+i] - slowEMA[i]
	}

	signalLine := emaValues(macdLine, signalPeriod)
	offset := signalPeriod - 1 // macdLine index of the first signal value

	points := make([]model.MACDPoint, len(signalLine))
	for i, sig := range signalLine {
		m := macdLine[offset+i]
		points[i] = model.MACDPoint{
			TS:        series[slow-1+offset+i].Date,
			MACD:      m,
			Signal:    sig,
			Histogram: m - sig,
		}
	}
	return points, nil
}

// MACDSignal derives the latest-point signal from histogram behavior: a buy
// on the histogram crossing from negative to positive or staying positive
// with rising momentum, a sell on the mirror conditions, hold otherwise.
func MACDSignal(points []model.MACDPoint) (model.TechnicalSignal, bool) {
	if len(points) == 0 {
		return model.TechnicalSignal{}, false
	}
	last := points[len(points)-1]
	sig := model.TechnicalSignal{
		Indicator: model.IndicatorMACD,
		Value:     last.Histogram,
		Timestamp: last.TS,
	}

	var prevHist float64
	if len(points) > 1 {
		prevHist = points[len(points)-2].Histogram
	}

	switch {
	case len(points) > 1 && prevHist <= 0 && last.Histogram > 0:
		sig.Signal = model.ActionBuy
		sig.Strength = 0.8
		sig.Description = "MACD histogram crossed above zero"
	case len(points) > 1 && prevHist >= 0 && last.Histogram < 0:
		sig.Signal = model.ActionSell
		sig.Strength = 0.8
		sig.Description = "MACD histogram crossed below zero"
	case last.Histogram > 0 && last.Histogram > prevHist:
		sig.Signal = model.ActionBuy
		sig.Strength = 0.6
		sig.Description = "MACD histogram positive with rising momentum"
	case last.Histogram < 0 && last.Histogram < prevHist:
		sig.Signal = model.ActionSell
		sig.Strength = 0.6
		sig.Description = "MACD histogram negative with falling momentum"
	default:
		sig.Signal = model.ActionHold
		sig.Strength = 0.3
		sig.Description = fmt.Sprintf("MACD histogram %.3f, momentum fading", last.Histogram)
	}
	return sig, true
}
