package domain

import (
	"errors"
	"fmt"
)

// ErrInsufficientSymbols is returned when a correlation matrix is requested
// for fewer than 2 symbols. A 1x1 or empty matrix would be misread as a
// valid result, so the degenerate case is explicit.
var ErrInsufficientSymbols = errors.New("correlation analysis requires at least 2 symbols")

// CorrelationMatrix is a symmetric matrix of pairwise return correlations,
// diagonal fixed at 1.0, indexed by Symbols order.
type CorrelationMatrix struct {
	Symbols []string    `json:"symbols"`
	Values  [][]float64 `json:"values"`
}

func (m CorrelationMatrix) Size() int {
	return len(m.Symbols)
}

func (m CorrelationMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// PairCount is the number of distinct off-diagonal pairs: n(n-1)/2.
func (m CorrelationMatrix) PairCount() int {
	n := len(m.Symbols)
	return n * (n - 1) / 2
}

type CorrelationPair struct {
	Pair        string  `json:"pair"`
	Correlation float64 `json:"correlation"`
}

func NewCorrelationPair(symbolA, symbolB string, correlation float64) CorrelationPair {
	return CorrelationPair{
		Pair:        fmt.Sprintf("%s ↔ %s", symbolA, symbolB),
		Correlation: correlation,
	}
}

type CorrelationInsights struct {
	AvgCorrelation       float64           `json:"avg_correlation"`
	MaxCorrelation       float64           `json:"max_correlation"`
	MinCorrelation       float64           `json:"min_correlation"`
	HighCorrelations     []CorrelationPair `json:"high_correlations"`
	LowCorrelations      []CorrelationPair `json:"low_correlations"`
	DiversificationScore float64           `json:"diversification_score"`
	RiskInsights         []string          `json:"risk_insights"`
}

// EmptyCorrelationInsights is the well-formed zero report for degenerate
// input. Lists are allocated so consumers see [] instead of null.
func EmptyCorrelationInsights() CorrelationInsights {
	return CorrelationInsights{
		HighCorrelations: []CorrelationPair{},
		LowCorrelations:  []CorrelationPair{},
		RiskInsights:     []string{},
	}
}
