package indicator

import (
	"fmt"

	"ta-enginev1/internal/model"
)

// OBV computes On-Balance Volume: a running total of volume added on up
// days, subtracted on down days, and unchanged on flat days. The first point
// starts at zero (no prior direction). Zero-volume periods are legal and
// contribute nothing. Emits one point per input point.
func OBV(series model.PriceSeries) []model.Point {
	if len(series) == 0 {
		return []model.Point{}
	}
	points := make([]model.Point, len(series))
	points[0] = model.Point{TS: series[0].Date, Value: 0}

	obv := 0.0
	for i := 1; i < len(series); i++ {
		switch {
		case series[i].Close > series[i-1].Close:
			obv += series[i].Volume
		case series[i].Close < series[i-1].Close:
			obv -= series[i].Volume
		}
		points[i] = model.Point{TS: series[i].Date, Value: obv}
	}
	return points
}

// OBVSignal derives the latest-point signal by comparing the OBV trend with
// the price trend over the trailing window. Volume confirming price in
// either direction is a buy/sell; volume and price trending apart is a
// divergence, reported as a cautionary hold whose description says so.
func OBVSignal(points []model.Point, series model.PriceSeries, window int) (model.TechnicalSignal, bool) {
	if len(points) == 0 || len(series) == 0 {
		return model.TechnicalSignal{}, false
	}
	last := points[len(points)-1]
	sig := model.TechnicalSignal{
		Indicator: model.IndicatorOBV,
		Value:     last.Value,
		Timestamp: last.TS,
	}
	if window < 2 || len(points) < window || len(series) < window {
		sig.Signal = model.ActionHold
		sig.Strength = 0.2
		sig.Description = "OBV: insufficient history for trend comparison"
		return sig, true
	}

	obvDelta := last.Value - points[len(points)-window].Value
	priceDelta := series[len(series)-1].Close - series[len(series)-window].Close

	switch {
	case obvDelta > 0 && priceDelta > 0:
		sig.Signal = model.ActionBuy
		sig.Strength = 0.6
		sig.Description = "OBV rising with price: volume confirms uptrend"
	case obvDelta < 0 && priceDelta < 0:
		sig.Signal = model.ActionSell
		sig.Strength = 0.6
		sig.Description = "OBV falling with price: volume confirms downtrend"
	case obvDelta*priceDelta < 0:
		sig.Signal = model.ActionHold
		sig.Strength = 0.5
		sig.Description = fmt.Sprintf("OBV divergence: price and volume trending apart (OBV %+.0f, price %+.2f)", obvDelta, priceDelta)
	default:
		sig.Signal = model.ActionHold
		sig.Strength = 0.3
		sig.Description = "OBV flat: no volume trend"
	}
	return sig, true
}
