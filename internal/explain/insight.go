package explain

import (
	"math"
	"strings"

	"ta-enginev1/internal/model"
)

// actionableInsight composes the recommendation string. Clauses are
// additive: cap-size, volatility, bear-market, and sideways-market
// conditions each contribute independently when they apply.
func actionableInsight(sig model.TechnicalSignal, ctx model.MarketContext, adx *adxReading) string {
	var clauses []string

	switch sig.Signal {
	case model.ActionBuy:
		clauses = append(clauses, "This signal favors opening or adding to a long position.")
	case model.ActionSell:
		clauses = append(clauses, "This signal favors reducing exposure or taking profits.")
	default:
		clauses = append(clauses, "No action is called for yet; wait for a clearer setup.")
	}

	switch ctx.MarketCap {
	case model.CapSmall:
		clauses = append(clauses, "Small-cap volatility cuts both ways: size the position conservatively and use limit orders to control entry prices.")
	case model.CapMid:
		clauses = append(clauses, "Mid-caps offer a balance of growth potential and stability, so standard position sizing is reasonable.")
	case model.CapLarge:
		clauses = append(clauses, "Large-cap liquidity makes this a comparatively lower-risk trade to execute.")
	}

	switch ctx.Volatility {
	case model.VolatilityHigh:
		clauses = append(clauses, "With volatility running high, use smaller position sizes and wider stop-losses to survive the swings.")
	case model.VolatilityLow:
		clauses = append(clauses, "Low volatility makes signals like this one more reliable than usual.")
	}

	if ctx.Condition == model.ConditionBear {
		clauses = append(clauses, "Bear-market conditions favor defensive positioning overall.")
		switch sig.Signal {
		case model.ActionBuy:
			clauses = append(clauses, "Buying against a bear market is riskier than usual; use tighter stop-losses and keep the position small.")
		case model.ActionSell:
			clauses = append(clauses, "The prevailing downtrend reinforces this sell signal; downside follow-through is more likely.")
		}
	}

	if ctx.Condition == model.ConditionSideways {
		clauses = append(clauses, "In this range-bound market, favor range-trading tactics: buy near support and sell near resistance.")
		if adxWeak(sig, adx) {
			clauses = append(clauses, "With ADX showing no trend, avoid trend-following strategies until a direction establishes itself.")
		}
	}

	return strings.Join(clauses, " ")
}

// adxWeak reports whether a weak-trend ADX reading accompanies this signal,
// either from the batch context or because the signal is itself ADX.
func adxWeak(sig model.TechnicalSignal, adx *adxReading) bool {
	if adx != nil {
		return adx.value < 20
	}
	return sig.Indicator == model.IndicatorADX && sig.Value < 20
}

// riskLevel scores signal strength, volatility, and zone extremity into a
// bucket: extreme, low-strength, high-volatility readings skew high; well
// supported, low-volatility readings skew low.
func riskLevel(sig model.TechnicalSignal, ctx model.MarketContext) model.RiskLevel {
	score := 0

	switch ctx.Volatility {
	case model.VolatilityHigh:
		score += 2
	case model.VolatilityMedium:
		score++
	}

	switch {
	case sig.Strength < 0.4:
		score += 2
	case sig.Strength < 0.7:
		score++
	}

	if extremeReading(sig) {
		score++
	}

	switch {
	case score <= 1:
		return model.RiskLow
	case score <= 3:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}

// extremeReading reports whether the raw value sits deep past its
// indicator's overbought/oversold boundary.
func extremeReading(sig model.TechnicalSignal) bool {
	switch sig.Indicator {
	case model.IndicatorRSI:
		return sig.Value < 20 || sig.Value > 80
	case model.IndicatorStochastic:
		return sig.Value < 10 || sig.Value > 90
	case model.IndicatorWilliamsR:
		return sig.Value < -90 || sig.Value > -10
	default:
		return false
	}
}

// confidence starts from the signal's own strength and, when a concurrent
// ADX reading is available, adjusts directional signals for the strength of
// the backing trend.
func confidence(sig model.TechnicalSignal, adx *adxReading) float64 {
	c := sig.Strength
	if adx != nil && sig.Indicator != model.IndicatorADX && sig.Signal != model.ActionHold {
		if adx.value > 25 {
			c += 0.15
		} else if adx.value < 20 {
			c -= 0.1
		}
	}
	return math.Max(0, math.Min(1, c))
}

// timeframe maps each indicator family to its qualitative action window.
func timeframe(name model.IndicatorName) string {
	switch name {
	case model.IndicatorRSI:
		return "3-5 trading days"
	case model.IndicatorMACD:
		return "2-3 trading days"
	case model.IndicatorBollinger:
		return "1-2 weeks"
	case model.IndicatorStochastic:
		return "2-4 trading days"
	case model.IndicatorWilliamsR:
		return "2-4 trading days"
	case model.IndicatorADX:
		return "1-3 weeks"
	case model.IndicatorOBV:
		return "1-2 weeks"
	case model.IndicatorSMACross:
		return "4-8 weeks"
	case model.IndicatorEMACross:
		return "2-6 weeks"
	default:
		return "1-2 weeks"
	}
}
