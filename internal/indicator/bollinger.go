package indicator

import (
	"fmt"
	"math"

	"ta-enginev1/internal/model"
)

// Bollinger computes Bollinger Bands: middle = SMA(period), upper/lower =
// middle ± k population standard deviations. A flat window has zero
// deviation, so all three bands coincide on the middle line.
//
// First point at index period-1: N points yield N-period+1 values.
func Bollinger(series model.PriceSeries, period int, k float64) ([]model.BandPoint, error) {
	if err := validatePeriod("bollinger_period", period); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, fmt.Errorf("bollinger_k: must be positive (got %g)", k)
	}
	if len(series) < period {
		return []model.BandPoint{}, nil
	}

	closes := series.Closes()
	points := make([]model.BandPoint, 0, len(series)-period+1)
	for i := period - 1; i < len(closes); i++ {
		window := closes[i-period+1 : i+1]
		mid := mean(window)
		sd := stdDev(window, mid)
		points = append(points, model.BandPoint{
			TS:     series[i].Date,
			Upper:  mid + k*sd,
			Middle: mid,
			Lower:  mid - k*sd,
		})
	}
	return points, nil
}

// BollingerSignal derives the latest-point signal: buy with price at or
// below the lower band, sell at or above the upper. Strength scales with
// %B distance outside the band; a collapsed band (flat window) reads as a
// neutral hold, never a division by zero.
func BollingerSignal(points []model.BandPoint, series model.PriceSeries) (model.TechnicalSignal, bool) {
	if len(points) == 0 {
		return model.TechnicalSignal{}, false
	}
	lastPrice, ok := series.Last()
	if !ok {
		return model.TechnicalSignal{}, false
	}
	band := points[len(points)-1]
	price := lastPrice.Close

	sig := model.TechnicalSignal{
		Indicator: model.IndicatorBollinger,
		Value:     price,
		Timestamp: band.TS,
	}

	width := band.Upper - band.Lower
	pctB := 0.5 // collapsed band: treat price as mid-band
	if width > 0 {
		pctB = (price - band.Lower) / width
	}

	switch {
	case width > 0 && price <= band.Lower:
		sig.Signal = model.ActionBuy
		sig.Strength = clamp01(0.6 + math.Abs(pctB)*0.4)
		sig.Description = fmt.Sprintf("price %.2f at or below lower band %.2f", price, band.Lower)
	case width > 0 && price >= band.Upper:
		sig.Signal = model.ActionSell
		sig.Strength = clamp01(0.6 + (pctB-1)*0.4)
		sig.Description = fmt.Sprintf("price %.2f at or above upper band %.2f", price, band.Upper)
	default:
		sig.Signal = model.ActionHold
		sig.Strength = clamp01(1-math.Abs(pctB-0.5)*2) * 0.5
		sig.Description = fmt.Sprintf("price %.2f within bands", price)
	}
	return sig, true
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the population standard deviation around a precomputed mean.
func stdDev(values []float64, mean float64) float64 {
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(values)))
}
