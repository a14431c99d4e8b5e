package domain

// RiskLevel buckets a continuous measure into the categorical values the
// rest of the system keys off of. The exact strings are a contract with
// API consumers - do not change casing.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

// RiskMetrics is the full output of the risk calculator for one portfolio.
// The avg/max correlation fields summarize the calculator's internal
// placeholder matrix, which is independent of the correlation analyzer's
// measured matrix.
type RiskMetrics struct {
	PortfolioVolatility  float64            `json:"portfolio_volatility"`
	SharpeRatio          float64            `json:"sharpe_ratio"`
	MaxDrawdown          float64            `json:"max_drawdown"`
	Var95                float64            `json:"var_95"`
	CVar95               float64            `json:"cvar_95"`
	ConcentrationRisk    RiskLevel          `json:"concentration_risk"`
	DiversificationRatio float64            `json:"diversification_ratio"`
	TokenWeights         map[string]float64 `json:"token_weights"`
	AvgCorrelation       float64            `json:"avg_correlation"`
	MaxCorrelation       float64            `json:"max_correlation"`
	CorrelationRisk      RiskLevel          `json:"correlation_risk"`
	CorrelationMatrix    [][]float64        `json:"correlation_matrix,omitempty"`
}

type PortfolioStats struct {
	TotalValue         float64 `json:"total_value"`
	NumTokens          int     `json:"num_tokens"`
	LargestPosition    float64 `json:"largest_position"`
	SmallestPosition   float64 `json:"smallest_position"`
	PositionStd        float64 `json:"position_std"`
	EffectivePositions float64 `json:"effective_number_of_positions"`
	HHI                float64 `json:"hhi"`
	MaxWeight          float64 `json:"max_weight"`
}
