package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ta-enginev1/internal/model"
)

var sigTS = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

func sig(ind model.IndicatorName, action model.SignalAction, strength float64) model.TechnicalSignal {
	return model.TechnicalSignal{
		Indicator: ind,
		Signal:    action,
		Strength:  strength,
		Timestamp: sigTS,
	}
}

func TestAggregate_Bullish(t *testing.T) {
	signals := []model.TechnicalSignal{
		sig(model.IndicatorRSI, model.ActionBuy, 0.8),
		sig(model.IndicatorMACD, model.ActionBuy, 0.7),
		sig(model.IndicatorStochastic, model.ActionSell, 0.3),
	}
	sentiment, strength := Aggregate(signals, 0.2)
	assert.Equal(t, model.SentimentBullish, sentiment)
	assert.InDelta(t, (1.5-0.3)/1.8, strength, 1e-9)
}

func TestAggregate_Bearish(t *testing.T) {
	signals := []model.TechnicalSignal{
		sig(model.IndicatorRSI, model.ActionSell, 0.9),
		sig(model.IndicatorMACD, model.ActionSell, 0.6),
		sig(model.IndicatorOBV, model.ActionBuy, 0.2),
	}
	sentiment, _ := Aggregate(signals, 0.2)
	assert.Equal(t, model.SentimentBearish, sentiment)
}

func TestAggregate_NeutralWithinMargin(t *testing.T) {
	signals := []model.TechnicalSignal{
		sig(model.IndicatorRSI, model.ActionBuy, 0.6),
		sig(model.IndicatorMACD, model.ActionSell, 0.55),
	}
	sentiment, strength := Aggregate(signals, 0.2)
	assert.Equal(t, model.SentimentNeutral, sentiment)
	assert.Less(t, strength, 0.2)
}

func TestAggregate_EmptyAndAllHold(t *testing.T) {
	sentiment, strength := Aggregate(nil, 0.2)
	assert.Equal(t, model.SentimentNeutral, sentiment)
	assert.Zero(t, strength)

	signals := []model.TechnicalSignal{
		sig(model.IndicatorRSI, model.ActionHold, 0.4),
		sig(model.IndicatorADX, model.ActionHold, 0.6),
	}
	sentiment, strength = Aggregate(signals, 0.2)
	assert.Equal(t, model.SentimentNeutral, sentiment)
	assert.Zero(t, strength)
}

func TestAggregate_ADXAmplifiesItsSide(t *testing.T) {
	// Without amplification buy mass 1.6 vs sell mass 2.0 reads bearish
	// leaning; a directional ADX at full strength doubles the buy side.
	signals := []model.TechnicalSignal{
		sig(model.IndicatorADX, model.ActionBuy, 1.0),
		sig(model.IndicatorOBV, model.ActionBuy, 0.6),
		sig(model.IndicatorRSI, model.ActionSell, 1.0),
		sig(model.IndicatorStochastic, model.ActionSell, 1.0),
	}
	sentiment, _ := Aggregate(signals, 0.2)
	assert.Equal(t, model.SentimentBullish, sentiment)

	// Same mass without ADX backing stays non-bullish.
	signals[0].Indicator = model.IndicatorMACD
	sentiment, _ = Aggregate(signals, 0.2)
	assert.NotEqual(t, model.SentimentBullish, sentiment)
}

func TestConflicts_OpposingPair(t *testing.T) {
	signals := []model.TechnicalSignal{
		sig(model.IndicatorRSI, model.ActionBuy, 0.6),
		sig(model.IndicatorMACD, model.ActionSell, 0.75),
	}
	conflicts := Conflicts(signals, 0.5)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "RSI suggests buying while MACD suggests selling", conflicts[0])
}

func TestConflicts_OrderIndependent(t *testing.T) {
	signals := []model.TechnicalSignal{
		sig(model.IndicatorMACD, model.ActionSell, 0.75),
		sig(model.IndicatorRSI, model.ActionBuy, 0.6),
	}
	conflicts := Conflicts(signals, 0.5)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "RSI suggests buying while MACD suggests selling", conflicts[0])
}

func TestConflicts_BelowThresholdIgnored(t *testing.T) {
	signals := []model.TechnicalSignal{
		sig(model.IndicatorRSI, model.ActionBuy, 0.45),
		sig(model.IndicatorMACD, model.ActionSell, 0.9),
	}
	assert.Empty(t, Conflicts(signals, 0.5))
}

func TestConflicts_AllPairsSurface(t *testing.T) {
	signals := []model.TechnicalSignal{
		sig(model.IndicatorRSI, model.ActionBuy, 0.7),
		sig(model.IndicatorOBV, model.ActionBuy, 0.6),
		sig(model.IndicatorMACD, model.ActionSell, 0.8),
		sig(model.IndicatorStochastic, model.ActionHold, 0.9),
	}
	conflicts := Conflicts(signals, 0.5)
	assert.Len(t, conflicts, 2)
	assert.Contains(t, conflicts, "RSI suggests buying while MACD suggests selling")
	assert.Contains(t, conflicts, "OBV suggests buying while MACD suggests selling")
}
