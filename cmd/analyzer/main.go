// analyzer - technical analysis over an OHLCV price series file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ta-enginev1/internal/config"
	"ta-enginev1/internal/engine"
	"ta-enginev1/internal/explain"
	"ta-enginev1/internal/logger"
	"ta-enginev1/internal/market"
	"ta-enginev1/internal/metrics"
	"ta-enginev1/internal/model"
)

var (
	cfgPath   string
	inputPath string
	sector    string
	marketCap float64
	asJSON    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "analyzer",
		Short: "Technical analysis engine",
		Long: `analyzer computes a battery of technical indicators (RSI, MACD,
Bollinger Bands, Stochastic, Williams %R, ADX, OBV, moving-average
crossovers) over an OHLCV price series, aggregates the signals into an
overall read, and generates plain-language explanations.`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML tuning config (optional)")

	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <symbol>",
		Short: "Full technical analysis for a symbol",
		Example: `  analyzer analyze AAPL --input prices.json --sector Technology --market-cap 2.5e12
  analyzer analyze TGT --input tgt.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := strings.ToUpper(args[0])

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			log := logger.Init("analyzer", logger.ParseLevel(cfg.LogLevel))

			var m *metrics.Metrics
			if cfg.MetricsAddr != "" {
				m = metrics.NewMetrics()
				srv := metrics.NewServer(cfg.MetricsAddr)
				srv.Start()
				defer srv.Stop(context.Background())
			}

			series, err := loadSeries(inputPath)
			if err != nil {
				return fmt.Errorf("load price series: %w", err)
			}
			log.Info("loaded price series", "symbol", symbol, "points", len(series))

			eng, err := engine.New(cfg.Engine, m)
			if err != nil {
				return err
			}

			result := eng.Analyze(series, symbol)
			mctx := market.Infer(symbol, sector, marketCap, series, cfg.Engine.Market)

			price := 0.0
			if last, ok := series.Last(); ok {
				price = last.Close
			}
			set := explain.ExplainAll(result.Signals, symbol, price, mctx, cfg.Explain, m)

			if asJSON {
				return printJSON(cmd, result, mctx, set)
			}
			printReport(cmd, result, mctx, set)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to JSON price series file (required)")
	cmd.Flags().StringVar(&sector, "sector", "", "Sector name for context inference")
	cmd.Flags().Float64Var(&marketCap, "market-cap", 0, "Market capitalization in dollars")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full result as JSON")
	cmd.MarkFlagRequired("input")

	return cmd
}

// filePoint accepts both RFC3339 timestamps and bare dates in input files.
type filePoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

func loadSeries(path string) (model.PriceSeries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []filePoint
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	series := make(model.PriceSeries, 0, len(raw))
	for i, fp := range raw {
		ts, err := parseDate(fp.Date)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		series = append(series, model.PricePoint{
			Date:   ts,
			Open:   fp.Open,
			High:   fp.High,
			Low:    fp.Low,
			Close:  fp.Close,
			Volume: fp.Volume,
		})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series, nil
}

func parseDate(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	return ts, nil
}

func printJSON(cmd *cobra.Command, result model.AnalysisResult, mctx model.MarketContext, set model.ExplanationSet) error {
	out := struct {
		Result       model.AnalysisResult `json:"result"`
		Context      model.MarketContext  `json:"context"`
		Explanations model.ExplanationSet `json:"explanations"`
	}{result, mctx, set}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printReport(cmd *cobra.Command, result model.AnalysisResult, mctx model.MarketContext, set model.ExplanationSet) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "%s: %s (strength %.2f)\n", result.Symbol, strings.ToUpper(string(result.Summary.Overall)), result.Summary.Strength)
	fmt.Fprintf(w, "market: %s / volatility %s / trend %s\n", mctx.Condition, mctx.Volatility, result.Summary.Trend)
	fmt.Fprintf(w, "signals: %d directional of %d indicators\n\n", result.Summary.SignalCount, result.Summary.IndicatorCount)

	for _, s := range result.Signals {
		fmt.Fprintf(w, "  %-16s %-5s %.2f  %s\n", s.Indicator, s.Signal, s.Strength, s.Description)
	}

	if len(set.Conflicts) > 0 {
		fmt.Fprintf(w, "\nconflicts:\n")
		for _, c := range set.Conflicts {
			fmt.Fprintf(w, "  ! %s\n", c)
		}
	}

	fmt.Fprintf(w, "\n")
	for _, e := range set.Explanations {
		fmt.Fprintf(w, "%s [%s risk, confidence %.2f, %s]\n", e.Indicator, e.RiskLevel, e.Confidence, e.Timeframe)
		fmt.Fprintf(w, "  %s\n", e.Explanation)
		fmt.Fprintf(w, "  -> %s\n\n", e.ActionableInsight)
	}
}
