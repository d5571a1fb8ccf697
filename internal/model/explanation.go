package model

// RiskLevel classifies how risky acting on a signal would be.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// IndicatorExplanation is the narrative output for a single signal.
type IndicatorExplanation struct {
	Indicator        IndicatorName `json:"indicator"`
	Value            float64       `json:"value"`
	Explanation      string        `json:"explanation"`
	ActionableInsight string       `json:"actionable_insight"`
	RiskLevel        RiskLevel     `json:"risk_level"`
	Confidence       float64       `json:"confidence"` // [0,1]
	Timeframe        string        `json:"timeframe"`  // qualitative, e.g. "2-3 trading days"
}

// ExplanationSet is the batch explanation output: one explanation per input
// signal, the aggregate sentiment across them, and every conflicting pair.
type ExplanationSet struct {
	Explanations     []IndicatorExplanation `json:"explanations"`
	OverallSentiment Sentiment              `json:"overall_sentiment"`
	Conflicts        []string               `json:"conflicts"`
}
