package model

// MarketCondition classifies the prevailing market regime.
type MarketCondition string

const (
	ConditionBull     MarketCondition = "bull"
	ConditionBear     MarketCondition = "bear"
	ConditionSideways MarketCondition = "sideways"
)

// VolatilityLevel buckets the dispersion of period-over-period returns.
type VolatilityLevel string

const (
	VolatilityLow    VolatilityLevel = "low"
	VolatilityMedium VolatilityLevel = "medium"
	VolatilityHigh   VolatilityLevel = "high"
)

// CapSize buckets market capitalization.
type CapSize string

const (
	CapSmall CapSize = "small"
	CapMid   CapSize = "mid"
	CapLarge CapSize = "large"
)

// MarketContext describes the regime under which signals are interpreted.
// Derived once per analysis request; consumed by the explanation generator,
// never by the indicator computations themselves.
type MarketContext struct {
	Condition  MarketCondition `json:"condition"`
	Volatility VolatilityLevel `json:"volatility"`
	Sector     string          `json:"sector"`
	MarketCap  CapSize         `json:"market_cap"`
}
