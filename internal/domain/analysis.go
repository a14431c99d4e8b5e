package domain

import "time"

// AnalysisResult is the full wallet analysis payload: holdings with
// weights, the risk metrics, the measured correlation insights, and the
// overall assessment.
type AnalysisResult struct {
	WalletAddress  string         `json:"wallet_address"`
	GeneratedAt    time.Time      `json:"generated_at"`
	LookbackDays   int            `json:"lookback_days"`
	Holdings       []Holding      `json:"holdings"`
	PortfolioStats PortfolioStats `json:"portfolio_stats"`
	RiskMetrics    RiskMetrics    `json:"risk_metrics"`

	CorrelationInsights CorrelationInsights `json:"correlation_insights"`
	// InsufficientCorrelation is set when fewer than 2 priced holdings
	// exist, so no meaningful matrix could be built.
	InsufficientCorrelation bool `json:"insufficient_correlation"`

	OverallRiskLevel RiskLevel `json:"overall_risk_level"`
	Recommendations  []string  `json:"recommendations"`
}
