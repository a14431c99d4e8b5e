package service

import (
	"testing"

	"solrisk/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47}

func TestRenderAllocationPie(t *testing.T) {
	h := NewChartService()

	t.Run("renders a png", func(t *testing.T) {
		png, err := h.RenderAllocationPie(&domain.Portfolio{
			Holdings: []domain.Holding{
				{Symbol: "SOL", ValueUSD: decimal.NewFromInt(700)},
				{Symbol: "USDC", ValueUSD: decimal.NewFromInt(300)},
			},
		})
		require.NoError(t, err)
		require.Greater(t, len(png), 4)
		require.Equal(t, pngMagic, png[:4])
	})

	t.Run("empty portfolio errors", func(t *testing.T) {
		_, err := h.RenderAllocationPie(&domain.Portfolio{})
		require.Error(t, err)

		_, err = h.RenderAllocationPie(nil)
		require.Error(t, err)
	})
}

func TestRenderPriceHistoryLines(t *testing.T) {
	h := NewChartService()

	t.Run("renders a png", func(t *testing.T) {
		history := domain.NewPriceHistory()
		history.AddSeries("SOL", []float64{100, 102, 99, 104}, domain.PriceSourceSynthetic)
		history.AddSeries("RAY", []float64{2, 2.1, 2.05, 2.2}, domain.PriceSourceSynthetic)

		png, err := h.RenderPriceHistoryLines(history)
		require.NoError(t, err)
		require.Greater(t, len(png), 4)
		require.Equal(t, pngMagic, png[:4])
	})

	t.Run("empty history errors", func(t *testing.T) {
		_, err := h.RenderPriceHistoryLines(domain.NewPriceHistory())
		require.Error(t, err)

		_, err = h.RenderPriceHistoryLines(nil)
		require.Error(t, err)
	})
}
