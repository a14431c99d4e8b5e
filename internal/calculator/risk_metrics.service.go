package calculator

import (
	"math"
	"solrisk/internal/domain"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RiskConfig carries every assumption the risk formulas depend on, so the
// calculator stays a pure function of its inputs. Zero values are not
// meaningful; construct via DefaultRiskConfig and override as needed.
type RiskConfig struct {
	RiskFreeRate float64

	// AssumedPairCorrelation is applied uniformly to every pair in the
	// variance formula. The correlation analyzer measures real pairwise
	// correlations separately; the two models are intentionally not
	// unified.
	AssumedPairCorrelation float64

	VaRConfidence   float64
	CVaRScale       float64
	DrawdownScale   float64
	PlaceholderSeed uint64
}

func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		RiskFreeRate:           0.05,
		AssumedPairCorrelation: 0.3,
		VaRConfidence:          0.95,
		CVaRScale:              1.3,
		DrawdownScale:          2.5,
		PlaceholderSeed:        42,
	}
}

type RiskMetricsCalculator interface {
	Calculate(portfolio domain.Portfolio) domain.RiskMetrics
}

type riskMetricsHandler struct {
	Profiles AssetProfileProvider
	Config   RiskConfig
}

func NewRiskMetricsCalculator(profiles AssetProfileProvider, config RiskConfig) RiskMetricsCalculator {
	return riskMetricsHandler{
		Profiles: profiles,
		Config:   config,
	}
}

// Calculate never fails: degenerate portfolios produce a structurally
// valid all-default result.
func (h riskMetricsHandler) Calculate(portfolio domain.Portfolio) domain.RiskMetrics {
	metrics := domain.RiskMetrics{
		ConcentrationRisk: domain.RiskLevelLow,
		CorrelationRisk:   domain.RiskLevelLow,
		TokenWeights:      map[string]float64{},
	}
	if len(portfolio.Holdings) == 0 {
		return metrics
	}

	symbols := portfolio.Symbols()
	weights := ValueWeights(portfolio)
	for i, symbol := range symbols {
		metrics.TokenWeights[symbol] = weights[i]
	}

	volatilities := make([]float64, len(symbols))
	for i, symbol := range symbols {
		volatilities[i] = h.Profiles.Volatility(symbol)
	}

	portfolioVol := h.portfolioVolatility(weights, volatilities)
	totalValue := portfolio.TotalValue().InexactFloat64()

	metrics.PortfolioVolatility = portfolioVol
	metrics.SharpeRatio = h.sharpeRatio(symbols, weights, portfolioVol)
	metrics.MaxDrawdown = h.Config.DrawdownScale * portfolioVol
	metrics.Var95 = h.valueAtRisk(totalValue, portfolioVol)
	metrics.CVar95 = h.Config.CVaRScale * metrics.Var95
	metrics.ConcentrationRisk = concentrationRisk(hhi(weights))
	metrics.DiversificationRatio = diversificationRatio(weights, volatilities, portfolioVol)

	avgCorr, maxCorr, matrix := h.placeholderCorrelations(len(symbols))
	metrics.AvgCorrelation = avgCorr
	metrics.MaxCorrelation = maxCorr
	metrics.CorrelationRisk = correlationRisk(avgCorr)
	metrics.CorrelationMatrix = matrix

	return metrics
}

// ValueWeights computes value weights aligned with the holdings order.
// All weights are 0 when the portfolio has no value.
func ValueWeights(portfolio domain.Portfolio) []float64 {
	weights := make([]float64, len(portfolio.Holdings))
	totalValue := portfolio.TotalValue().InexactFloat64()
	if totalValue == 0 {
		return weights
	}
	for i, holding := range portfolio.Holdings {
		weights[i] = holding.ValueUSD.InexactFloat64() / totalValue
	}
	return weights
}

// portfolioVolatility implements
// sigma_p^2 = sum w_i^2 sigma_i^2 + 2 rho sum_{i<j} w_i w_j sigma_i sigma_j
// with a single assumed pairwise correlation rho.
func (h riskMetricsHandler) portfolioVolatility(weights, volatilities []float64) float64 {
	variance := 0.0
	for i := range weights {
		variance += weights[i] * weights[i] * volatilities[i] * volatilities[i]
	}
	rho := h.Config.AssumedPairCorrelation
	for i := 0; i < len(weights); i++ {
		for j := i + 1; j < len(weights); j++ {
			variance += 2 * rho * weights[i] * weights[j] * volatilities[i] * volatilities[j]
		}
	}
	return math.Sqrt(variance)
}

func (h riskMetricsHandler) sharpeRatio(symbols []string, weights []float64, portfolioVol float64) float64 {
	if portfolioVol == 0 {
		return 0
	}
	portfolioReturn := 0.0
	for i, symbol := range symbols {
		portfolioReturn += weights[i] * h.Profiles.ExpectedReturn(symbol)
	}
	return (portfolioReturn - h.Config.RiskFreeRate) / portfolioVol
}

// valueAtRisk is the parametric VaR: value * sigma_p * |z| at the
// configured confidence level.
func (h riskMetricsHandler) valueAtRisk(totalValue, portfolioVol float64) float64 {
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1 - h.Config.VaRConfidence)
	return totalValue * portfolioVol * math.Abs(z)
}

func hhi(weights []float64) float64 {
	sum := 0.0
	for _, w := range weights {
		sum += w * w
	}
	return sum
}

func concentrationRisk(hhi float64) domain.RiskLevel {
	switch {
	case hhi > 0.25:
		return domain.RiskLevelHigh
	case hhi > 0.15:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

func correlationRisk(avgCorrelation float64) domain.RiskLevel {
	switch {
	case avgCorrelation > 0.7:
		return domain.RiskLevelHigh
	case avgCorrelation > 0.4:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

func diversificationRatio(weights, volatilities []float64, portfolioVol float64) float64 {
	if portfolioVol == 0 {
		return 1.0
	}
	weightedAvgVol := 0.0
	for i := range weights {
		weightedAvgVol += weights[i] * volatilities[i]
	}
	return weightedAvgVol / portfolioVol
}

// placeholderCorrelations builds the deterministic stand-in matrix the
// original risk model ships with: uniform draws symmetrized with diagonal
// 1.0. Only avg/max over the strict upper triangle feed the risk level.
func (h riskMetricsHandler) placeholderCorrelations(n int) (avg float64, max float64, matrix [][]float64) {
	if n < 2 {
		return 0, 0, nil
	}

	rng := rand.New(rand.NewSource(h.Config.PlaceholderSeed))
	matrix = make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			matrix[i][j] = rng.Float64()
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := (matrix[i][j] + matrix[j][i]) / 2
			matrix[i][j] = v
			matrix[j][i] = v
		}
		matrix[i][i] = 1.0
	}

	sum := 0.0
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += matrix[i][j]
			if matrix[i][j] > max {
				max = matrix[i][j]
			}
			count++
		}
	}
	avg = sum / float64(count)

	return avg, max, matrix
}
