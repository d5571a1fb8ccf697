package indicator

import (
	"fmt"
	"math"

	"ta-enginev1/internal/model"
)

// ADX computes the Average Directional Index with Wilder smoothing: true
// range and directional movement are smoothed over the period, DI lines are
// derived from them, DX = 100 * |+DI - -DI| / (+DI + -DI), and ADX is the
// Wilder average of DX. A zero DI sum yields DX 0, never a division error.
//
// ADX needs two full periods of history: first point at index 2*period-1,
// so N points yield N-2*period+1 values. +DI/-DI ride along on each point.
func ADX(series model.PriceSeries, period int) ([]model.ADXPoint, error) {
	if err := validatePeriod("adx_period", period); err != nil {
		return nil, err
	}
	if len(series) < 2*period {
		return []model.ADXPoint{}, nil
	}

	n := len(series)
	tr := make([]float64, n)         // index 0 unused
	plusDM := make([]float64, n)     // index 0 unused
	minusDM := make([]float64, n)    // index 0 unused
	for i := 1; i < n; i++ {
		cur, prev := series[i], series[i-1]
		tr[i] = math.Max(cur.High-cur.Low,
			math.Max(math.Abs(cur.High-prev.Close), math.Abs(cur.Low-prev.Close)))

		upMove := cur.High - prev.High
		downMove := prev.Low - cur.Low
		if upMove > downMove && upMove > 0 {
			plusDM[i] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i] = downMove
		}
	}

	// Wilder-smoothed TR and DM, seeded with the sum of the first period
	var smTR, smPlus, smMinus float64
	for i := 1; i <= period; i++ {
		smTR += tr[i]
		smPlus += plusDM[i]
		smMinus += minusDM[i]
	}

	p := float64(period)
	points := make([]model.ADXPoint, 0, n-2*period+1)
	var adx float64
	dxSum := 0.0
	dxCount := 0

	for i := period; i < n; i++ {
		if i > period {
			smTR = smTR - smTR/p + tr[i]
			smPlus = smPlus - smPlus/p + plusDM[i]
			smMinus = smMinus - smMinus/p + minusDM[i]
		}

		var plusDI, minusDI float64
		if smTR > 0 {
			plusDI = 100 * smPlus / smTR
			minusDI = 100 * smMinus / smTR
		}
		dx := 0.0
		if plusDI+minusDI > 0 {
			dx = 100 * math.Abs(plusDI-minusDI) / (plusDI + minusDI)
		}

		if dxCount < period {
			dxSum += dx
			dxCount++
			if dxCount == period {
				adx = dxSum / p
			}
		} else {
			adx = (adx*(p-1) + dx) / p
		}

		if dxCount >= period {
			points = append(points, model.ADXPoint{
				TS:      series[i].Date,
				ADX:     adx,
				PlusDI:  plusDI,
				MinusDI: minusDI,
			})
		}
	}
	return points, nil
}

// ADXSignal derives the latest-point signal. ADX measures trend strength,
// not direction: above 25 the dominant DI line decides buy vs sell with
// strength scaling as the trend strengthens; below 20 there is no actionable
// trend and the signal is a firm hold.
func ADXSignal(points []model.ADXPoint) (model.TechnicalSignal, bool) {
	if len(points) == 0 {
		return model.TechnicalSignal{}, false
	}
	last := points[len(points)-1]
	sig := model.TechnicalSignal{
		Indicator: model.IndicatorADX,
		Value:     last.ADX,
		Timestamp: last.TS,
	}
	switch {
	case last.ADX > 25 && last.PlusDI > last.MinusDI:
		sig.Signal = model.ActionBuy
		sig.Strength = clamp01(0.5 + (last.ADX-25)/50)
		sig.Description = fmt.Sprintf("ADX %.1f strong uptrend (+DI %.1f > -DI %.1f)", last.ADX, last.PlusDI, last.MinusDI)
	case last.ADX > 25 && last.MinusDI > last.PlusDI:
		sig.Signal = model.ActionSell
		sig.Strength = clamp01(0.5 + (last.ADX-25)/50)
		sig.Description = fmt.Sprintf("ADX %.1f strong downtrend (-DI %.1f > +DI %.1f)", last.ADX, last.MinusDI, last.PlusDI)
	case last.ADX < 20:
		sig.Signal = model.ActionHold
		sig.Strength = 0.6
		sig.Description = fmt.Sprintf("ADX %.1f: no actionable trend", last.ADX)
	default:
		sig.Signal = model.ActionHold
		sig.Strength = 0.4
		sig.Description = fmt.Sprintf("ADX %.1f: trend forming", last.ADX)
	}
	return sig, true
}
