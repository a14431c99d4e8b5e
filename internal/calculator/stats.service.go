package calculator

import (
	"solrisk/internal/domain"

	"github.com/montanaflynn/stats"
)

type PortfolioStatsCalculator interface {
	Calculate(portfolio domain.Portfolio) domain.PortfolioStats
}

type portfolioStatsHandler struct{}

func NewPortfolioStatsCalculator() PortfolioStatsCalculator {
	return portfolioStatsHandler{}
}

func (h portfolioStatsHandler) Calculate(portfolio domain.Portfolio) domain.PortfolioStats {
	out := domain.PortfolioStats{}
	if len(portfolio.Holdings) == 0 {
		return out
	}

	weights := ValueWeights(portfolio)

	out.TotalValue = portfolio.TotalValue().InexactFloat64()
	out.NumTokens = len(portfolio.Holdings)
	out.HHI = hhi(weights)
	if out.HHI > 0 {
		out.EffectivePositions = 1 / out.HHI
	}

	if largest, err := stats.Max(weights); err == nil {
		out.LargestPosition = largest
		out.MaxWeight = largest
	}
	if smallest, err := stats.Min(weights); err == nil {
		out.SmallestPosition = smallest
	}
	// sample stdev is undefined for a single position; report 0
	if len(weights) > 1 {
		if std, err := stats.StandardDeviationSample(weights); err == nil {
			out.PositionStd = std
		}
	}

	return out
}
