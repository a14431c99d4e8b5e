package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceHistoryReturns(t *testing.T) {
	history := NewPriceHistory()
	history.AddSeries("SOL", []float64{100, 110, 99}, PriceSourceLive)

	returns := history.Returns("SOL")

	require.Len(t, returns, 2)
	require.InDelta(t, 0.10, returns[0], 1e-9)
	require.InDelta(t, -0.10, returns[1], 1e-9)

	require.Empty(t, history.Returns("MISSING"))

	// a zero price cannot produce a defined return
	history.AddSeries("BROKEN", []float64{0, 10}, PriceSourceSynthetic)
	require.Equal(t, []float64{0}, history.Returns("BROKEN"))
}

func TestPriceHistoryAlignToShortest(t *testing.T) {
	history := NewPriceHistory()
	history.AddSeries("SOL", []float64{1, 2, 3, 4, 5}, PriceSourceLive)
	history.AddSeries("RAY", []float64{10, 20, 30}, PriceSourceCache)

	history.AlignToShortest()

	require.Equal(t, 3, history.Len())
	// the oldest prices are dropped so the series end together
	require.Equal(t, []float64{3, 4, 5}, history.Series["SOL"])
	require.Equal(t, []float64{10, 20, 30}, history.Series["RAY"])
	require.Equal(t, PriceSourceLive, history.Sources["SOL"])
	require.Equal(t, PriceSourceCache, history.Sources["RAY"])
}
