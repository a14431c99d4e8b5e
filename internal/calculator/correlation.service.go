package calculator

import (
	"fmt"
	"math"
	"solrisk/internal/domain"

	montstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

type CorrelationCalculator interface {
	// BuildMatrix computes a Pearson correlation matrix over daily
	// percentage returns. Fewer than 2 series is an explicit
	// insufficient-data condition, not a degenerate matrix.
	BuildMatrix(history *domain.PriceHistory) (*domain.CorrelationMatrix, error)

	// AnalyzeInsights derives the diversification report from a matrix.
	// Never fails: nil or undersized matrices produce a zeroed report.
	AnalyzeInsights(matrix *domain.CorrelationMatrix) domain.CorrelationInsights
}

type correlationHandler struct{}

func NewCorrelationCalculator() CorrelationCalculator {
	return correlationHandler{}
}

func (h correlationHandler) BuildMatrix(history *domain.PriceHistory) (*domain.CorrelationMatrix, error) {
	if history == nil || len(history.Symbols) < 2 {
		return nil, fmt.Errorf("cannot build correlation matrix: %w", domain.ErrInsufficientSymbols)
	}

	history.AlignToShortest()

	symbols := history.Symbols
	n := len(symbols)
	returns := make([][]float64, n)
	for i, symbol := range symbols {
		returns[i] = history.Returns(symbol)
	}

	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1.0
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			corr := pearson(returns[i], returns[j])
			values[i][j] = corr
			values[j][i] = corr
		}
	}

	return &domain.CorrelationMatrix{
		Symbols: symbols,
		Values:  values,
	}, nil
}

// pearson guards the degenerate inputs gonum turns into NaN: mismatched
// or too-short series and zero-variance (flat) series correlate as 0.
func pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	corr := stat.Correlation(x, y, nil)
	if math.IsNaN(corr) {
		return 0
	}
	return corr
}

func (h correlationHandler) AnalyzeInsights(matrix *domain.CorrelationMatrix) domain.CorrelationInsights {
	insights := domain.EmptyCorrelationInsights()
	if matrix == nil || matrix.Size() < 2 {
		return insights
	}

	offDiagonal := []float64{}
	for i := 0; i < matrix.Size(); i++ {
		for j := i + 1; j < matrix.Size(); j++ {
			offDiagonal = append(offDiagonal, matrix.At(i, j))
		}
	}

	avg, _ := montstats.Mean(offDiagonal)
	maxCorr, _ := montstats.Max(offDiagonal)
	minCorr, _ := montstats.Min(offDiagonal)
	insights.AvgCorrelation = avg
	insights.MaxCorrelation = maxCorr
	insights.MinCorrelation = minCorr

	for i := 0; i < matrix.Size(); i++ {
		for j := i + 1; j < matrix.Size(); j++ {
			corr := matrix.At(i, j)
			if corr > 0.7 {
				insights.HighCorrelations = append(insights.HighCorrelations,
					domain.NewCorrelationPair(matrix.Symbols[i], matrix.Symbols[j], corr))
			} else if corr < -0.3 {
				insights.LowCorrelations = append(insights.LowCorrelations,
					domain.NewCorrelationPair(matrix.Symbols[i], matrix.Symbols[j], corr))
			}
		}
	}

	insights.DiversificationScore = math.Max(0, 1-math.Abs(avg))

	if avg > 0.6 {
		insights.RiskInsights = append(insights.RiskInsights,
			"High average correlation suggests portfolio may not be well diversified")
	} else if avg < 0.2 {
		insights.RiskInsights = append(insights.RiskInsights,
			"Low average correlation indicates good diversification")
	}
	if maxCorr > 0.8 {
		insights.RiskInsights = append(insights.RiskInsights,
			"Some tokens are highly correlated, increasing concentration risk")
	}
	if float64(len(insights.HighCorrelations)) > float64(matrix.PairCount())/2 {
		insights.RiskInsights = append(insights.RiskInsights,
			"Many token pairs are highly correlated, reducing diversification benefits")
	}
	if insights.DiversificationScore < 0.3 {
		insights.RiskInsights = append(insights.RiskInsights,
			"Portfolio has low diversification score - consider adding uncorrelated assets")
	}

	return insights
}
