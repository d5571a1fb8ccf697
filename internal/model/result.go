package model

// Sentiment is the aggregate directional read across all indicators.
type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentNeutral Sentiment = "neutral"
)

// TrendDirection is the price trend over the analyzed window.
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// AnalysisSummary is the headline read for one symbol.
type AnalysisSummary struct {
	Overall        Sentiment       `json:"overall"`
	Strength       float64         `json:"strength"` // composite confidence in [0,1]
	Trend          TrendDirection  `json:"trend"`
	Volatility     VolatilityLevel `json:"volatility"`
	SignalCount    int             `json:"signal_count"`    // non-hold signals
	IndicatorCount int             `json:"indicator_count"` // indicators that produced a signal
	Conflicts      []string        `json:"conflicts,omitempty"`
}

// IndicatorSet holds the full per-indicator histories for charting.
// Slices are empty (never nil panics downstream) when the series was too
// short for the indicator's lookback.
type IndicatorSet struct {
	RSI        []Point     `json:"rsi"`
	MACD       []MACDPoint `json:"macd"`
	Bollinger  []BandPoint `json:"bollinger"`
	Stochastic []StochPoint `json:"stochastic"`
	WilliamsR  []Point     `json:"williams_r"`
	ADX        []ADXPoint  `json:"adx"`
	OBV        []Point     `json:"obv"`
	SMA20      []Point     `json:"sma_20"`
	SMA50      []Point     `json:"sma_50"`
	SMA200     []Point     `json:"sma_200"`
	EMA12      []Point     `json:"ema_12"`
	EMA26      []Point     `json:"ema_26"`
}

// AnalysisResult is the engine's output for one symbol: headline summary,
// the latest signal per indicator, and the raw series behind them.
// Built once per Analyze call and read-only afterward.
type AnalysisResult struct {
	Symbol     string            `json:"symbol"`
	Summary    AnalysisSummary   `json:"summary"`
	Signals    []TechnicalSignal `json:"signals"`
	Indicators IndicatorSet      `json:"indicators"`
}
