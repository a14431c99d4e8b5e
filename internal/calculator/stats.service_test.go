package calculator

import (
	"math"
	"testing"

	"solrisk/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCalculatePortfolioStats(t *testing.T) {
	calc := NewPortfolioStatsCalculator()

	t.Run("two positions", func(t *testing.T) {
		portfolio := portfolioFromValues([]struct {
			symbol string
			value  float64
		}{
			{"SOL", 70},
			{"USDC", 30},
		})

		stats := calc.Calculate(portfolio)

		require.InDelta(t, 100.0, stats.TotalValue, 1e-9)
		require.Equal(t, 2, stats.NumTokens)
		require.InDelta(t, 0.7, stats.LargestPosition, 1e-9)
		require.InDelta(t, 0.7, stats.MaxWeight, 1e-9)
		require.InDelta(t, 0.3, stats.SmallestPosition, 1e-9)
		require.InDelta(t, 0.58, stats.HHI, 1e-9)
		require.InDelta(t, 1/0.58, stats.EffectivePositions, 1e-9)
		// sample stdev of {0.7, 0.3}
		require.InDelta(t, math.Sqrt(0.08), stats.PositionStd, 1e-9)
	})

	t.Run("single position", func(t *testing.T) {
		portfolio := portfolioFromValues([]struct {
			symbol string
			value  float64
		}{
			{"SOL", 250},
		})

		stats := calc.Calculate(portfolio)

		require.Equal(t, 1, stats.NumTokens)
		require.InDelta(t, 1.0, stats.LargestPosition, 1e-9)
		require.InDelta(t, 1.0, stats.SmallestPosition, 1e-9)
		require.InDelta(t, 1.0, stats.HHI, 1e-9)
		require.InDelta(t, 1.0, stats.EffectivePositions, 1e-9)
		require.Zero(t, stats.PositionStd)
		require.False(t, math.IsNaN(stats.PositionStd))
	})

	t.Run("equal weights maximize effective positions", func(t *testing.T) {
		portfolio := portfolioFromValues([]struct {
			symbol string
			value  float64
		}{
			{"SOL", 25},
			{"RAY", 25},
			{"ORCA", 25},
			{"USDC", 25},
		})

		stats := calc.Calculate(portfolio)

		require.InDelta(t, 0.25, stats.HHI, 1e-9)
		require.InDelta(t, 4.0, stats.EffectivePositions, 1e-9)
		require.Zero(t, stats.PositionStd)
	})

	t.Run("empty portfolio", func(t *testing.T) {
		stats := calc.Calculate(domain.Portfolio{})

		require.Zero(t, stats.TotalValue)
		require.Zero(t, stats.NumTokens)
		require.Zero(t, stats.HHI)
		require.Zero(t, stats.EffectivePositions)
	})

	t.Run("zero value portfolio", func(t *testing.T) {
		portfolio := portfolioFromValues([]struct {
			symbol string
			value  float64
		}{
			{"SOL", 0},
			{"USDC", 0},
		})

		stats := calc.Calculate(portfolio)

		require.Zero(t, stats.TotalValue)
		require.Equal(t, 2, stats.NumTokens)
		require.Zero(t, stats.HHI)
		require.Zero(t, stats.EffectivePositions)
	})
}
