// Package model defines the value types shared across the analysis engine:
// price series input, per-indicator signals, market context, and the
// aggregate analysis result. All types are plain data: no identity, no
// mutation after construction.
package model

import "time"

// PricePoint is one trading period's OHLCV record.
// Prices are non-negative with low <= min(open,close) <= max(open,close) <= high;
// the engine assumes the data source has already validated this.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is a chronologically ascending sequence of price points.
// Indicators operate positionally, with no calendar awareness or gap handling.
type PriceSeries []PricePoint

// Closes returns the close prices in series order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

// Last returns the most recent price point. The second return is false for
// an empty series.
func (s PriceSeries) Last() (PricePoint, bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	return s[len(s)-1], true
}

// Point is a single time-aligned indicator reading.
type Point struct {
	TS    time.Time `json:"ts"`
	Value float64   `json:"value"`
}

// MACDPoint carries the three MACD lines for one period.
// Histogram is always exactly MACD - Signal.
type MACDPoint struct {
	TS        time.Time `json:"ts"`
	MACD      float64   `json:"macd"`
	Signal    float64   `json:"signal"`
	Histogram float64   `json:"histogram"`
}

// BandPoint carries Bollinger band values for one period.
// For a flat window all three coincide.
type BandPoint struct {
	TS     time.Time `json:"ts"`
	Upper  float64   `json:"upper"`
	Middle float64   `json:"middle"`
	Lower  float64   `json:"lower"`
}

// StochPoint carries stochastic oscillator %K and %D for one period.
// Points exist only where both lines do.
type StochPoint struct {
	TS time.Time `json:"ts"`
	K  float64   `json:"k"`
	D  float64   `json:"d"`
}

// ADXPoint carries ADX plus its directional components for one period.
type ADXPoint struct {
	TS      time.Time `json:"ts"`
	ADX     float64   `json:"adx"`
	PlusDI  float64   `json:"plus_di"`
	MinusDI float64   `json:"minus_di"`
}
