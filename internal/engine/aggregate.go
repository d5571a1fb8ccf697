package engine

import (
	"fmt"

	"ta-enginev1/internal/model"
)

// Aggregate reduces a set of per-indicator signals into an overall sentiment
// and composite strength. Each signal contributes its strength as weight to
// its side. A directional ADX signal marks a strong backing trend and
// amplifies the mass on its side, so trend-following signals outweigh
// oscillators reading overbought/oversold inside a persistent trend. The
// overall read leaves neutral only when the winning side outweighs the other
// by more than margin times the total directional mass. An empty or all-hold
// set is neutral with zero strength.
func Aggregate(signals []model.TechnicalSignal, margin float64) (model.Sentiment, float64) {
	var buyW, sellW float64
	var adxAmp float64
	var adxSide model.SignalAction

	for _, s := range signals {
		switch s.Signal {
		case model.ActionBuy:
			buyW += s.Strength
		case model.ActionSell:
			sellW += s.Strength
		}
		if s.Indicator == model.IndicatorADX && s.Signal != model.ActionHold {
			adxAmp = 1 + s.Strength
			adxSide = s.Signal
		}
	}

	switch adxSide {
	case model.ActionBuy:
		buyW *= adxAmp
	case model.ActionSell:
		sellW *= adxAmp
	}

	total := buyW + sellW
	if total == 0 {
		return model.SentimentNeutral, 0
	}

	diff := buyW - sellW
	strength := diff / total
	if strength < 0 {
		strength = -strength
	}

	switch {
	case diff > margin*total:
		return model.SentimentBullish, strength
	case diff < -margin*total:
		return model.SentimentBearish, strength
	default:
		return model.SentimentNeutral, strength
	}
}

// Conflicts reports every pair of simultaneous signals pulling in opposite
// directions with both strengths at or above minStrength. Each opposing pair
// surfaces exactly once, buy side named first, regardless of input order.
func Conflicts(signals []model.TechnicalSignal, minStrength float64) []string {
	conflicts := []string{}
	for i := 0; i < len(signals); i++ {
		for j := i + 1; j < len(signals); j++ {
			a, b := signals[i], signals[j]
			if !opposing(a.Signal, b.Signal) {
				continue
			}
			if a.Strength < minStrength || b.Strength < minStrength {
				continue
			}
			if a.Signal == model.ActionSell {
				a, b = b, a
			}
			conflicts = append(conflicts,
				fmt.Sprintf("%s suggests buying while %s suggests selling", a.Indicator, b.Indicator))
		}
	}
	return conflicts
}

func opposing(a, b model.SignalAction) bool {
	return (a == model.ActionBuy && b == model.ActionSell) ||
		(a == model.ActionSell && b == model.ActionBuy)
}
