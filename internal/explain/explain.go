// Package explain turns indicator signals into natural-language
// explanations and actionable insights, contextualized by the market regime.
//
// One builder per indicator variant, selected by exhaustive switch over the
// closed model.IndicatorName set. All output is assembled with pure string
// building; the package never errors or panics on unusual input: empty or
// odd signal sets degrade to neutral output, because this layer feeds a UI,
// not a correctness-critical computation.
package explain

import (
	"fmt"

	"ta-enginev1/internal/engine"
	"ta-enginev1/internal/metrics"
	"ta-enginev1/internal/model"
)

// Options tunes batch explanation generation. The zero value is unusable;
// start from DefaultOptions.
type Options struct {
	// SentimentMargin and ConflictMinStrength mirror the engine's
	// aggregation tuning so the batch form reports the same overall read
	// and the same conflict pairs.
	SentimentMargin     float64 `yaml:"sentiment_margin"`      // default 0.2
	ConflictMinStrength float64 `yaml:"conflict_min_strength"` // default 0.5
}

// DefaultOptions returns the documented default tuning.
func DefaultOptions() Options {
	return Options{SentimentMargin: 0.2, ConflictMinStrength: 0.5}
}

// adxReading carries the concurrent ADX trend-strength context available in
// the batch form. Nil means no ADX signal was present.
type adxReading struct {
	value float64
}

// Explain builds the explanation for a single signal. The symbol and current
// price anchor the prose; the market context shapes the caveats and the
// actionable insight.
func Explain(sig model.TechnicalSignal, symbol string, price float64, ctx model.MarketContext) model.IndicatorExplanation {
	return build(sig, symbol, price, ctx, nil)
}

// ExplainAll explains every signal in the set, aggregates the overall
// sentiment, and reports all conflicting pairs. When an ADX signal is
// present its trend-strength reading adjusts the confidence of the
// directional explanations. An empty signal set yields an empty, neutral,
// conflict-free result. Metrics may be nil.
func ExplainAll(signals []model.TechnicalSignal, symbol string, price float64, ctx model.MarketContext, opts Options, m *metrics.Metrics) model.ExplanationSet {
	var adx *adxReading
	for _, s := range signals {
		if s.Indicator == model.IndicatorADX {
			adx = &adxReading{value: s.Value}
			break
		}
	}

	explanations := make([]model.IndicatorExplanation, 0, len(signals))
	for _, s := range signals {
		explanations = append(explanations, build(s, symbol, price, ctx, adx))
	}
	if m != nil {
		m.ExplanationsTotal.Add(float64(len(explanations)))
	}

	sentiment, _ := engine.Aggregate(signals, opts.SentimentMargin)
	return model.ExplanationSet{
		Explanations:     explanations,
		OverallSentiment: sentiment,
		Conflicts:        engine.Conflicts(signals, opts.ConflictMinStrength),
	}
}

// build assembles one explanation from the indicator-specific narrative, the
// market-context phrases, and the insight/risk/confidence classification.
func build(sig model.TechnicalSignal, symbol string, price float64, ctx model.MarketContext, adx *adxReading) model.IndicatorExplanation {
	var narrative string
	switch sig.Indicator {
	case model.IndicatorRSI:
		narrative = rsiNarrative(sig, symbol, price, ctx)
	case model.IndicatorMACD:
		narrative = macdNarrative(sig, symbol, price, ctx)
	case model.IndicatorBollinger:
		narrative = bollingerNarrative(sig, symbol, price, ctx)
	case model.IndicatorStochastic:
		narrative = stochasticNarrative(sig, symbol, price, ctx)
	case model.IndicatorWilliamsR:
		narrative = williamsNarrative(sig, symbol, price, ctx)
	case model.IndicatorADX:
		narrative = adxNarrative(sig, symbol, price, ctx)
	case model.IndicatorOBV:
		narrative = obvNarrative(sig, symbol, ctx)
	case model.IndicatorSMACross:
		narrative = crossNarrative(sig, symbol, price, ctx, "simple")
	case model.IndicatorEMACross:
		narrative = crossNarrative(sig, symbol, price, ctx, "exponential")
	default:
		// Closed set; unknown names only appear from hand-built signals.
		narrative = fmt.Sprintf("%s reads %.2f for %s at $%.2f.", sig.Indicator, sig.Value, symbol, price)
	}

	return model.IndicatorExplanation{
		Indicator:         sig.Indicator,
		Value:             sig.Value,
		Explanation:       narrative + " " + capSectorPhrase(symbol, ctx),
		ActionableInsight: actionableInsight(sig, ctx, adx),
		RiskLevel:         riskLevel(sig, ctx),
		Confidence:        confidence(sig, adx),
		Timeframe:         timeframe(sig.Indicator),
	}
}

func rsiNarrative(sig model.TechnicalSignal, symbol string, price float64, ctx model.MarketContext) string {
	zone := "in neutral territory"
	if sig.Value < 30 {
		zone = "oversold"
	} else if sig.Value > 70 {
		zone = "overbought"
	}
	base := fmt.Sprintf("%s's RSI of %.1f shows the stock is %s at $%.2f.", symbol, sig.Value, zone, price)

	switch ctx.Condition {
	case model.ConditionBull:
		return base + " In a bull market, oversold dips tend to resolve upward and overbought readings can persist, so momentum extremes here are usually pullbacks within the trend."
	case model.ConditionBear:
		return base + " Oversold readings are less dependable in a falling market, where weak stocks can stay oversold while they keep declining."
	default:
		return base + " In a range-bound market, RSI extremes tend to mark the edges of the trading range."
	}
}

func macdNarrative(sig model.TechnicalSignal, symbol string, price float64, ctx model.MarketContext) string {
	direction := "fading"
	if sig.Signal == model.ActionBuy {
		direction = "building to the upside"
	} else if sig.Signal == model.ActionSell {
		direction = "rolling over to the downside"
	}
	base := fmt.Sprintf("%s's MACD histogram of %.3f shows momentum %s at $%.2f.", symbol, sig.Value, direction, price)

	switch ctx.Condition {
	case model.ConditionBull:
		return base + " Momentum crossovers carry extra weight in a bull market, where they frequently mark the resumption of the primary trend."
	case model.ConditionBear:
		return base + " In a declining market, bullish crossovers are frequently short-lived relief moves rather than durable reversals."
	default:
		return base + " In a sideways market, MACD crossovers whipsaw more often, so confirmation from other indicators matters more."
	}
}

func bollingerNarrative(sig model.TechnicalSignal, symbol string, price float64, ctx model.MarketContext) string {
	var position string
	switch sig.Signal {
	case model.ActionBuy:
		position = "pressing the lower Bollinger Band"
	case model.ActionSell:
		position = "pressing the upper Bollinger Band"
	default:
		position = "inside its Bollinger Bands"
	}
	base := fmt.Sprintf("%s is trading at $%.2f, %s.", symbol, price, position)

	switch ctx.Condition {
	case model.ConditionBull:
		return base + " In a bull market, tags of the lower band often attract dip buyers, while rides along the upper band can continue for extended stretches."
	case model.ConditionBear:
		return base + " In a weak market, touches of the lower band can precede further downside rather than a bounce."
	default:
		return base + " In a range-bound market, the bands tend to contain price, favoring fades of either extreme."
	}
}

func stochasticNarrative(sig model.TechnicalSignal, symbol string, price float64, ctx model.MarketContext) string {
	zone := "mid-range"
	if sig.Value < 20 {
		zone = "oversold"
	} else if sig.Value > 80 {
		zone = "overbought"
	}
	base := fmt.Sprintf("%s's stochastic %%K of %.1f is %s at $%.2f.", symbol, sig.Value, zone, price)
	if ctx.Condition == model.ConditionSideways {
		return base + " The stochastic oscillator is at its best in a sideways market, where its extremes reliably flag the turns of the range."
	}
	return base + " In a trending market, the stochastic can pin at its extreme for long stretches, so treat its reversals with patience."
}

func williamsNarrative(sig model.TechnicalSignal, symbol string, price float64, ctx model.MarketContext) string {
	zone := "mid-range"
	if sig.Value < -80 {
		zone = "oversold"
	} else if sig.Value > -20 {
		zone = "overbought"
	}
	base := fmt.Sprintf("%s's Williams %%R of %.1f is %s at $%.2f.", symbol, sig.Value, zone, price)
	if ctx.Condition == model.ConditionBull {
		return base + " In a bull market, Williams %R oversold readings frequently mark entry points on shallow pullbacks."
	}
	return base + " Like other bounded oscillators, it is most dependable when the broader market lacks a strong directional push."
}

func adxNarrative(sig model.TechnicalSignal, symbol string, price float64, ctx model.MarketContext) string {
	base := fmt.Sprintf("%s's ADX of %.1f measures the strength of the current move at $%.2f.", symbol, sig.Value, price)
	if sig.Value > 25 {
		return base + " A reading above 25 marks a strong trend: trend-following strategies are favored, and directional signals from other indicators carry more weight."
	}
	if sig.Value < 20 {
		return base + " A reading below 20 means no actionable trend: range-trading strategies suit these conditions better than trend-following entries."
	}
	return base + " Trend strength is indeterminate at this level; wait for ADX to resolve above 25 or below 20 before leaning on trend tactics."
}

func obvNarrative(sig model.TechnicalSignal, symbol string, ctx model.MarketContext) string {
	base := fmt.Sprintf("%s's On-Balance Volume at %.0f tracks whether volume is backing the price move.", symbol, sig.Value)
	if sig.Signal == model.ActionHold && sig.Strength >= 0.5 {
		return base + " Price and volume are currently trending in opposite directions: this divergence is a classic warning that the price move lacks participation and may not hold."
	}
	if sig.Signal == model.ActionBuy {
		return base + " Rising OBV alongside rising price confirms that buyers are committing volume to the advance."
	}
	if sig.Signal == model.ActionSell {
		return base + " Falling OBV alongside falling price confirms distribution behind the decline."
	}
	return base + " Volume is currently directionless and offers no confirmation either way."
}

func crossNarrative(sig model.TechnicalSignal, symbol string, price float64, ctx model.MarketContext, kind string) string {
	var event string
	switch sig.Signal {
	case model.ActionBuy:
		event = "a Golden Cross, with the short " + kind + " moving average above the long one"
	case model.ActionSell:
		event = "a Death Cross, with the short " + kind + " moving average below the long one"
	default:
		event = "its " + kind + " moving averages converging"
	}
	base := fmt.Sprintf("%s at $%.2f shows %s.", symbol, price, event)
	if ctx.Condition == model.ConditionSideways {
		return base + " Crossover signals whipsaw in a sideways market, so this one deserves less weight until a trend emerges."
	}
	return base + " Moving-average crossovers are slow but durable signals, better suited to position trades than quick entries."
}

// capSectorPhrase appends the cap-size and sector framing shared by all
// indicator narratives.
func capSectorPhrase(symbol string, ctx model.MarketContext) string {
	sector := ctx.Sector
	if sector == "" {
		sector = "its sector"
	}
	switch ctx.MarketCap {
	case model.CapSmall:
		return fmt.Sprintf("As a small-cap stock in %s, %s can move sharply on modest volume.", sector, symbol)
	case model.CapMid:
		return fmt.Sprintf("As a mid-cap stock in %s, %s offers a balance of growth potential and stability.", sector, symbol)
	default:
		return fmt.Sprintf("As a large-cap stock in %s, %s tends to move more gradually than the broader market's fast movers.", sector, symbol)
	}
}
