// Package engine is the analysis entry point: it runs the configured
// indicator battery over a price series, derives one latest-point signal per
// indicator, and aggregates them into an overall read with conflict
// detection.
//
// The engine is stateless between calls: Analyze allocates everything fresh,
// holds no caches, and is safe for concurrent use. Identical input yields an
// identical result.
package engine

import (
	"fmt"
	"time"

	"ta-enginev1/internal/indicator"
	"ta-enginev1/internal/market"
	"ta-enginev1/internal/metrics"
	"ta-enginev1/internal/model"
)

// Options bundles the indicator parameters and aggregation tuning for one
// engine instance.
type Options struct {
	Indicators indicator.Config `yaml:"indicators"`

	// SentimentMargin is the fraction of total weighted signal mass by
	// which the buy side must outweigh the sell side (or vice versa)
	// before the overall read leaves neutral.
	SentimentMargin float64 `yaml:"sentiment_margin"` // default 0.2

	// ConflictMinStrength is the floor both signals of an opposing pair
	// must clear to be reported as a conflict.
	ConflictMinStrength float64 `yaml:"conflict_min_strength"` // default 0.5

	Market market.Thresholds `yaml:"market"`
}

// DefaultOptions returns the documented default tuning.
func DefaultOptions() Options {
	return Options{
		Indicators:          indicator.DefaultConfig(),
		SentimentMargin:     0.2,
		ConflictMinStrength: 0.5,
		Market:              market.DefaultThresholds(),
	}
}

// Engine runs analyses with a fixed configuration. Metrics may be nil.
type Engine struct {
	opts Options
	m    *metrics.Metrics
}

// New validates the configuration and builds an engine. Invalid indicator
// parameters are a caller bug and fail here, before any data is touched.
func New(opts Options, m *metrics.Metrics) (*Engine, error) {
	if err := opts.Indicators.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if opts.SentimentMargin < 0 || opts.SentimentMargin >= 1 {
		return nil, fmt.Errorf("engine config: sentiment_margin must be in [0,1) (got %g)", opts.SentimentMargin)
	}
	if opts.ConflictMinStrength < 0 || opts.ConflictMinStrength > 1 {
		return nil, fmt.Errorf("engine config: conflict_min_strength must be in [0,1] (got %g)", opts.ConflictMinStrength)
	}
	return &Engine{opts: opts, m: m}, nil
}

// Analyze computes every configured indicator over the series and returns
// the aggregate result. Insufficient data is not an error: indicators below
// their lookback contribute empty series and no signal, and the summary
// degrades toward neutral.
func (e *Engine) Analyze(series model.PriceSeries, symbol string) model.AnalysisResult {
	start := time.Now()
	cfg := e.opts.Indicators

	set := model.IndicatorSet{}
	signals := make([]model.TechnicalSignal, 0, len(model.AllIndicators))

	add := func(sig model.TechnicalSignal, ok bool) {
		if !ok {
			return
		}
		signals = append(signals, sig)
		if e.m != nil {
			e.m.SignalsTotal.WithLabelValues(string(sig.Signal)).Inc()
		}
	}

	// Indicator parameters were validated in New, so the compute calls
	// below cannot fail; errors are discarded rather than re-checked.
	set.RSI, _ = e.timed(model.IndicatorRSI, func() ([]model.Point, error) {
		return indicator.RSI(series, cfg.RSIPeriod)
	})
	add(indicator.RSISignal(set.RSI))

	set.MACD, _ = e.timedMACD(func() ([]model.MACDPoint, error) {
		return indicator.MACD(series, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal)
	})
	add(indicator.MACDSignal(set.MACD))

	set.Bollinger, _ = e.timedBands(func() ([]model.BandPoint, error) {
		return indicator.Bollinger(series, cfg.BollingerPeriod, cfg.BollingerK)
	})
	add(indicator.BollingerSignal(set.Bollinger, series))

	set.Stochastic, _ = e.timedStoch(func() ([]model.StochPoint, error) {
		return indicator.Stochastic(series, cfg.StochKPeriod, cfg.StochDPeriod)
	})
	add(indicator.StochasticSignal(set.Stochastic))

	set.WilliamsR, _ = e.timed(model.IndicatorWilliamsR, func() ([]model.Point, error) {
		return indicator.WilliamsR(series, cfg.WilliamsPeriod)
	})
	add(indicator.WilliamsRSignal(set.WilliamsR))

	set.ADX, _ = e.timedADX(func() ([]model.ADXPoint, error) {
		return indicator.ADX(series, cfg.ADXPeriod)
	})
	add(indicator.ADXSignal(set.ADX))

	set.OBV = indicator.OBV(series)
	add(indicator.OBVSignal(set.OBV, series, cfg.OBVTrendWindow))

	set.SMA20, _ = indicator.SMA(series, cfg.SMAFast)
	set.SMA50, _ = indicator.SMA(series, cfg.SMASlow)
	set.SMA200, _ = indicator.SMA(series, cfg.SMALong)
	add(indicator.CrossSignal(model.IndicatorSMACross, set.SMA20, set.SMA50))

	set.EMA12, _ = indicator.EMA(series, cfg.EMAFast)
	set.EMA26, _ = indicator.EMA(series, cfg.EMASlow)
	add(indicator.CrossSignal(model.IndicatorEMACross, set.EMA12, set.EMA26))

	sentiment, strength := Aggregate(signals, e.opts.SentimentMargin)
	conflicts := Conflicts(signals, e.opts.ConflictMinStrength)

	nonHold := 0
	for _, s := range signals {
		if s.Signal != model.ActionHold {
			nonHold++
		}
	}

	result := model.AnalysisResult{
		Symbol: symbol,
		Summary: model.AnalysisSummary{
			Overall:        sentiment,
			Strength:       strength,
			Trend:          market.Trend(series),
			Volatility:     market.Volatility(series, e.opts.Market),
			SignalCount:    nonHold,
			IndicatorCount: len(signals),
			Conflicts:      conflicts,
		},
		Signals:    signals,
		Indicators: set,
	}

	if e.m != nil {
		e.m.AnalysesTotal.Inc()
		e.m.AnalyzeDur.Observe(time.Since(start).Seconds())
		e.m.ConflictsTotal.Add(float64(len(conflicts)))
	}
	return result
}

// Options returns a copy of the engine's configuration.
func (e *Engine) Options() Options { return e.opts }

func (e *Engine) timed(name model.IndicatorName, fn func() ([]model.Point, error)) ([]model.Point, error) {
	start := time.Now()
	out, err := fn()
	e.observe(name, start)
	return out, err
}

func (e *Engine) timedMACD(fn func() ([]model.MACDPoint, error)) ([]model.MACDPoint, error) {
	start := time.Now()
	out, err := fn()
	e.observe(model.IndicatorMACD, start)
	return out, err
}

func (e *Engine) timedBands(fn func() ([]model.BandPoint, error)) ([]model.BandPoint, error) {
	start := time.Now()
	out, err := fn()
	e.observe(model.IndicatorBollinger, start)
	return out, err
}

func (e *Engine) timedStoch(fn func() ([]model.StochPoint, error)) ([]model.StochPoint, error) {
	start := time.Now()
	out, err := fn()
	e.observe(model.IndicatorStochastic, start)
	return out, err
}

func (e *Engine) timedADX(fn func() ([]model.ADXPoint, error)) ([]model.ADXPoint, error) {
	start := time.Now()
	out, err := fn()
	e.observe(model.IndicatorADX, start)
	return out, err
}

func (e *Engine) observe(name model.IndicatorName, start time.Time) {
	if e.m != nil {
		e.m.IndicatorComputeDur.WithLabelValues(string(name)).Observe(time.Since(start).Seconds())
	}
}
