package calculator

import (
	"math"
	"testing"

	"solrisk/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func portfolioFromValues(positions []struct {
	symbol string
	value  float64
}) domain.Portfolio {
	p := domain.Portfolio{}
	for _, pos := range positions {
		p.Holdings = append(p.Holdings, domain.Holding{
			Symbol:   pos.symbol,
			ValueUSD: decimal.NewFromFloat(pos.value),
		})
	}
	return p
}

// zeroVolProfiles forces portfolio volatility to 0 to exercise the
// divide-by-zero guards.
type zeroVolProfiles struct{}

func (zeroVolProfiles) Volatility(symbol string) float64     { return 0 }
func (zeroVolProfiles) ExpectedReturn(symbol string) float64 { return 0.10 }

func TestCalculateRiskMetrics(t *testing.T) {
	calc := NewRiskMetricsCalculator(NewStaticAssetProfileProvider(), DefaultRiskConfig())

	t.Run("two asset portfolio", func(t *testing.T) {
		portfolio := portfolioFromValues([]struct {
			symbol string
			value  float64
		}{
			{"SOL", 70},
			{"USDC", 30},
		})

		metrics := calc.Calculate(portfolio)

		require.InDelta(t, 0.7, metrics.TokenWeights["SOL"], 1e-9)
		require.InDelta(t, 0.3, metrics.TokenWeights["USDC"], 1e-9)

		// sigma_p^2 = 0.7^2*0.6^2 + 0.3^2*0.01^2 + 2*0.3*0.7*0.3*0.6*0.01
		expectedVariance := 0.49*0.36 + 0.09*0.0001 + 2*0.3*0.7*0.3*0.6*0.01
		expectedVol := math.Sqrt(expectedVariance)
		require.InDelta(t, expectedVol, metrics.PortfolioVolatility, 1e-12)
		require.InDelta(t, 0.420, metrics.PortfolioVolatility, 1e-2)

		expectedSharpe := (0.7*0.15 + 0.3*0.03 - 0.05) / expectedVol
		require.InDelta(t, expectedSharpe, metrics.SharpeRatio, 1e-12)

		require.InDelta(t, 2.5*expectedVol, metrics.MaxDrawdown, 1e-12)

		// z score for the 5th percentile of the standard normal
		z := 1.6448536269514722
		require.InDelta(t, 100*expectedVol*z, metrics.Var95, 1e-9)
		require.InDelta(t, 1.3*metrics.Var95, metrics.CVar95, 1e-9)

		// HHI = 0.49 + 0.09 = 0.58
		require.Equal(t, domain.RiskLevelHigh, metrics.ConcentrationRisk)

		expectedDivRatio := (0.7*0.6 + 0.3*0.01) / expectedVol
		require.InDelta(t, expectedDivRatio, metrics.DiversificationRatio, 1e-12)

		require.Len(t, metrics.CorrelationMatrix, 2)
	})

	t.Run("weights sum to 1", func(t *testing.T) {
		portfolio := portfolioFromValues([]struct {
			symbol string
			value  float64
		}{
			{"SOL", 123.45},
			{"RAY", 67.89},
			{"SAMO", 0.03},
			{"UNKNOWN_TOKEN", 9.1},
		})

		metrics := calc.Calculate(portfolio)

		sum := 0.0
		for _, w := range metrics.TokenWeights {
			sum += w
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("single asset identities", func(t *testing.T) {
		portfolio := portfolioFromValues([]struct {
			symbol string
			value  float64
		}{
			{"SOL", 500},
		})

		metrics := calc.Calculate(portfolio)

		require.InDelta(t, 0.6, metrics.PortfolioVolatility, 1e-12)
		require.InDelta(t, 1.0, metrics.DiversificationRatio, 1e-12)
		// single symbol has no pairs to summarize
		require.Zero(t, metrics.AvgCorrelation)
		require.Zero(t, metrics.MaxCorrelation)
		require.Equal(t, domain.RiskLevelLow, metrics.CorrelationRisk)
		require.Nil(t, metrics.CorrelationMatrix)
	})

	t.Run("empty portfolio", func(t *testing.T) {
		metrics := calc.Calculate(domain.Portfolio{})

		require.Zero(t, metrics.PortfolioVolatility)
		require.Zero(t, metrics.SharpeRatio)
		require.Zero(t, metrics.Var95)
		require.Equal(t, domain.RiskLevelLow, metrics.ConcentrationRisk)
		require.Equal(t, domain.RiskLevelLow, metrics.CorrelationRisk)
		require.NotNil(t, metrics.TokenWeights)
		require.Empty(t, metrics.TokenWeights)
	})

	t.Run("zero total value zeroes the weights", func(t *testing.T) {
		portfolio := portfolioFromValues([]struct {
			symbol string
			value  float64
		}{
			{"SOL", 0},
			{"USDC", 0},
		})

		metrics := calc.Calculate(portfolio)

		require.Zero(t, metrics.TokenWeights["SOL"])
		require.Zero(t, metrics.TokenWeights["USDC"])
		require.Zero(t, metrics.PortfolioVolatility)
		require.Zero(t, metrics.SharpeRatio)
		require.InDelta(t, 1.0, metrics.DiversificationRatio, 1e-12)
		require.Equal(t, domain.RiskLevelLow, metrics.ConcentrationRisk)
	})

	t.Run("sharpe is 0 when volatility is 0", func(t *testing.T) {
		zeroVolCalc := NewRiskMetricsCalculator(zeroVolProfiles{}, DefaultRiskConfig())
		portfolio := portfolioFromValues([]struct {
			symbol string
			value  float64
		}{
			{"USDC", 50},
			{"USDT", 50},
		})

		metrics := zeroVolCalc.Calculate(portfolio)

		require.Zero(t, metrics.PortfolioVolatility)
		require.Zero(t, metrics.SharpeRatio)
		require.InDelta(t, 1.0, metrics.DiversificationRatio, 1e-12)
	})

	t.Run("placeholder correlations are deterministic", func(t *testing.T) {
		portfolio := portfolioFromValues([]struct {
			symbol string
			value  float64
		}{
			{"SOL", 40},
			{"RAY", 35},
			{"ORCA", 25},
		})

		first := calc.Calculate(portfolio)
		second := calc.Calculate(portfolio)

		require.Equal(t, first.AvgCorrelation, second.AvgCorrelation)
		require.Equal(t, first.MaxCorrelation, second.MaxCorrelation)
		require.Equal(t, first.CorrelationMatrix, second.CorrelationMatrix)

		for i := range first.CorrelationMatrix {
			require.Equal(t, 1.0, first.CorrelationMatrix[i][i])
			for j := range first.CorrelationMatrix[i] {
				require.Equal(t, first.CorrelationMatrix[i][j], first.CorrelationMatrix[j][i])
			}
		}
	})
}

func TestConcentrationRisk(t *testing.T) {
	require.Equal(t, domain.RiskLevelHigh, concentrationRisk(0.30))
	require.Equal(t, domain.RiskLevelMedium, concentrationRisk(0.20))
	require.Equal(t, domain.RiskLevelLow, concentrationRisk(0.10))
}

func TestCorrelationRiskLevels(t *testing.T) {
	require.Equal(t, domain.RiskLevelHigh, correlationRisk(0.75))
	require.Equal(t, domain.RiskLevelMedium, correlationRisk(0.5))
	require.Equal(t, domain.RiskLevelLow, correlationRisk(0.4))
	require.Equal(t, domain.RiskLevelLow, correlationRisk(0.1))
}

func TestStaticAssetProfiles(t *testing.T) {
	profiles := NewStaticAssetProfileProvider()

	require.Equal(t, 0.6, profiles.Volatility("SOL"))
	require.Equal(t, 0.01, profiles.Volatility("USDC"))
	require.Equal(t, 0.5, profiles.Volatility("SOMETHING_ELSE"))

	require.Equal(t, 0.15, profiles.ExpectedReturn("SOL"))
	require.Equal(t, 0.03, profiles.ExpectedReturn("USDT"))
	require.Equal(t, 0.15, profiles.ExpectedReturn("SOMETHING_ELSE"))
}
