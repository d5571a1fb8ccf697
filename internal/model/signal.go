package model

import "time"

// SignalAction is the directional call derived from one indicator.
type SignalAction string

const (
	ActionBuy  SignalAction = "buy"
	ActionSell SignalAction = "sell"
	ActionHold SignalAction = "hold"
)

// IndicatorName identifies one indicator in the fixed supported set.
// The set is closed: explanation builders switch exhaustively over it.
type IndicatorName string

const (
	IndicatorRSI        IndicatorName = "RSI"
	IndicatorMACD       IndicatorName = "MACD"
	IndicatorBollinger  IndicatorName = "Bollinger Bands"
	IndicatorStochastic IndicatorName = "Stochastic"
	IndicatorWilliamsR  IndicatorName = "Williams %R"
	IndicatorADX        IndicatorName = "ADX"
	IndicatorOBV        IndicatorName = "OBV"
	IndicatorSMACross   IndicatorName = "SMA Cross"
	IndicatorEMACross   IndicatorName = "EMA Cross"
)

// AllIndicators lists every supported indicator in evaluation order.
var AllIndicators = []IndicatorName{
	IndicatorRSI,
	IndicatorMACD,
	IndicatorBollinger,
	IndicatorStochastic,
	IndicatorWilliamsR,
	IndicatorADX,
	IndicatorOBV,
	IndicatorSMACross,
	IndicatorEMACross,
}

// TechnicalSignal is one indicator's call at one point in time.
type TechnicalSignal struct {
	Indicator   IndicatorName `json:"indicator"`
	Signal      SignalAction  `json:"signal"`
	Strength    float64       `json:"strength"` // confidence in [0,1]
	Value       float64       `json:"value"`    // raw reading, semantics indicator-specific
	Timestamp   time.Time     `json:"timestamp"`
	Description string        `json:"description"`
}
