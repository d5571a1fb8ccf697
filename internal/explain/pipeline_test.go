package explain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ta-enginev1/internal/engine"
	"ta-enginev1/internal/market"
	"ta-enginev1/internal/model"
)

// Full-pipeline checks: engine analysis feeding market inference feeding
// explanation generation, end to end.

func dailyRiser(n int, start, step float64) model.PriceSeries {
	epoch := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := make(model.PriceSeries, n)
	for i := 0; i < n; i++ {
		c := start + step*float64(i)
		s[i] = model.PricePoint{
			Date:   epoch.AddDate(0, 0, i),
			Open:   c - step,
			High:   c + 0.1,
			Low:    c - step - 0.1,
			Close:  c,
			Volume: 1e6,
		}
	}
	return s
}

func TestPipeline_SustainedUptrendLargeCap(t *testing.T) {
	e, err := engine.New(engine.DefaultOptions(), nil)
	require.NoError(t, err)

	series := dailyRiser(90, 100, 0.5)
	res := e.Analyze(series, "ACME")
	assert.Equal(t, model.SentimentBullish, res.Summary.Overall)

	ctx := market.Infer("ACME", "Technology", 2.5e12, series, market.DefaultThresholds())
	assert.Equal(t, model.ConditionBull, ctx.Condition)
	assert.Equal(t, model.CapLarge, ctx.MarketCap)

	last, ok := series.Last()
	require.True(t, ok)
	set := ExplainAll(res.Signals, "ACME", last.Close, ctx, DefaultOptions(), nil)
	require.Len(t, set.Explanations, len(res.Signals))
	assert.Equal(t, model.SentimentBullish, set.OverallSentiment)

	for _, exp := range set.Explanations {
		if exp.Indicator != model.IndicatorRSI {
			continue
		}
		assert.Contains(t, exp.Explanation, "bull market")
		assert.NotContains(t, exp.Explanation, "less dependable in a falling market")
		assert.Contains(t, exp.Explanation, "large-cap")
	}
}

func TestPipeline_BearMarketBuySignalCarriesCaution(t *testing.T) {
	sig := model.TechnicalSignal{
		Indicator: model.IndicatorRSI,
		Signal:    model.ActionBuy,
		Strength:  0.7,
		Value:     28,
		Timestamp: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	ctx := model.MarketContext{
		Condition:  model.ConditionBear,
		Volatility: model.VolatilityMedium,
		Sector:     "Energy",
		MarketCap:  model.CapMid,
	}

	exp := Explain(sig, "XOIL", 61.40, ctx)
	assert.Contains(t, exp.ActionableInsight, "defensive positioning")
	assert.Contains(t, exp.ActionableInsight, "riskier than usual")
}

func TestPipeline_ConflictingSignalsSurfaceOnce(t *testing.T) {
	signals := []model.TechnicalSignal{
		{Indicator: model.IndicatorRSI, Signal: model.ActionBuy, Strength: 0.6, Value: 28},
		{Indicator: model.IndicatorMACD, Signal: model.ActionSell, Strength: 0.75, Value: -0.8},
	}
	ctx := model.MarketContext{
		Condition:  model.ConditionSideways,
		Volatility: model.VolatilityMedium,
		Sector:     "Technology",
		MarketCap:  model.CapMid,
	}

	set := ExplainAll(signals, "ACME", 100, ctx, DefaultOptions(), nil)
	require.Len(t, set.Conflicts, 1)
	assert.Equal(t, "RSI suggests buying while MACD suggests selling", set.Conflicts[0])
}
