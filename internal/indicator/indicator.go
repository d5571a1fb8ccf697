// Package indicator provides technical indicator calculations over OHLCV
// price series.
//
// Every indicator is a pure batch function: it takes an ordered
// model.PriceSeries plus its parameters and returns a time-aligned slice of
// readings, one per input point once the lookback window is satisfied. A
// series shorter than the lookback yields an empty result, never an error;
// insufficient data is a normal condition. Invalid parameters (non-positive
// periods) are a caller bug and fail fast.
//
// Each indicator also derives a latest-point buy/sell/hold signal with a
// strength in [0,1] via its *Signal function.
package indicator

import (
	"errors"
	"fmt"
	"math"
)

// errBadPeriod is wrapped by every parameter validation failure.
var errBadPeriod = errors.New("period must be positive")

// Config holds the parameters for every indicator the engine computes.
// Zero value is not usable; start from DefaultConfig.
type Config struct {
	RSIPeriod int `yaml:"rsi_period"` // default 14

	MACDFast   int `yaml:"macd_fast"`   // default 12
	MACDSlow   int `yaml:"macd_slow"`   // default 26
	MACDSignal int `yaml:"macd_signal"` // default 9

	BollingerPeriod int     `yaml:"bollinger_period"` // default 20
	BollingerK      float64 `yaml:"bollinger_k"`      // default 2.0 std devs

	StochKPeriod int `yaml:"stoch_k_period"` // default 14
	StochDPeriod int `yaml:"stoch_d_period"` // default 3

	WilliamsPeriod int `yaml:"williams_period"` // default 14
	ADXPeriod      int `yaml:"adx_period"`      // default 14

	// OBVTrendWindow is the trailing window used to compare OBV and price
	// direction for divergence detection. Default 10.
	OBVTrendWindow int `yaml:"obv_trend_window"`

	SMAFast int `yaml:"sma_fast"` // default 20
	SMASlow int `yaml:"sma_slow"` // default 50
	SMALong int `yaml:"sma_long"` // default 200

	EMAFast int `yaml:"ema_fast"` // default 12
	EMASlow int `yaml:"ema_slow"` // default 26
}

// DefaultConfig returns the standard parameter set documented above.
func DefaultConfig() Config {
	return Config{
		RSIPeriod:       14,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		BollingerPeriod: 20,
		BollingerK:      2.0,
		StochKPeriod:    14,
		StochDPeriod:    3,
		WilliamsPeriod:  14,
		ADXPeriod:       14,
		OBVTrendWindow:  10,
		SMAFast:         20,
		SMASlow:         50,
		SMALong:         200,
		EMAFast:         12,
		EMASlow:         26,
	}
}

// Validate rejects configurations that indicate a programming error by the
// caller. Data-quality conditions never reach here.
func (c Config) Validate() error {
	periods := []struct {
		name string
		val  int
	}{
		{"rsi_period", c.RSIPeriod},
		{"macd_fast", c.MACDFast},
		{"macd_slow", c.MACDSlow},
		{"macd_signal", c.MACDSignal},
		{"bollinger_period", c.BollingerPeriod},
		{"stoch_k_period", c.StochKPeriod},
		{"stoch_d_period", c.StochDPeriod},
		{"williams_period", c.WilliamsPeriod},
		{"adx_period", c.ADXPeriod},
		{"obv_trend_window", c.OBVTrendWindow},
		{"sma_fast", c.SMAFast},
		{"sma_slow", c.SMASlow},
		{"sma_long", c.SMALong},
		{"ema_fast", c.EMAFast},
		{"ema_slow", c.EMASlow},
	}
	for _, p := range periods {
		if err := validatePeriod(p.name, p.val); err != nil {
			return err
		}
	}
	if c.BollingerK <= 0 {
		return fmt.Errorf("bollinger_k: must be positive (got %g)", c.BollingerK)
	}
	if c.MACDFast >= c.MACDSlow {
		return fmt.Errorf("macd_fast (%d) must be less than macd_slow (%d)", c.MACDFast, c.MACDSlow)
	}
	if c.SMAFast >= c.SMASlow {
		return fmt.Errorf("sma_fast (%d) must be less than sma_slow (%d)", c.SMAFast, c.SMASlow)
	}
	if c.EMAFast >= c.EMASlow {
		return fmt.Errorf("ema_fast (%d) must be less than ema_slow (%d)", c.EMAFast, c.EMASlow)
	}
	return nil
}

func validatePeriod(name string, period int) error {
	if period <= 0 {
		return fmt.Errorf("%s: %w (got %d)", name, errBadPeriod, period)
	}
	return nil
}

// clamp01 bounds a strength/confidence value to [0,1].
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
