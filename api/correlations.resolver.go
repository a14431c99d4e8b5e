package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"solrisk/internal/domain"
	"solrisk/internal/logger"

	"github.com/gin-gonic/gin"
)

type correlationsRequest struct {
	Symbols      []string `json:"symbols"`
	LookbackDays *int     `json:"lookback_days"`
}

type correlationsResponse struct {
	Matrix           *domain.CorrelationMatrix     `json:"matrix,omitempty"`
	Insights         domain.CorrelationInsights    `json:"insights"`
	InsufficientData bool                          `json:"insufficient_data"`
	Sources          map[string]domain.PriceSource `json:"sources"`
}

func (m ApiHandler) correlations(c *gin.Context) {
	lg := logger.FromContext(c).With("handler", "correlations")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	var requestBody correlationsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	symbols := normalizeSymbols(requestBody.Symbols)
	if len(symbols) == 0 {
		returnErrorJsonCode(fmt.Errorf("symbols is required"), c, 400)
		return
	}

	lookbackDays := 30
	if requestBody.LookbackDays != nil {
		lookbackDays = *requestBody.LookbackDays
	}

	history := m.PriceService.GetPriceHistory(ctx, symbols, lookbackDays)

	out := correlationsResponse{
		Insights: domain.EmptyCorrelationInsights(),
		Sources:  history.Sources,
	}

	matrix, err := m.CorrelationCalculator.BuildMatrix(history)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientSymbols) {
			out.InsufficientData = true
			c.JSON(200, out)
			return
		}
		returnErrorJson(err, c)
		return
	}

	out.Matrix = matrix
	out.Insights = m.CorrelationCalculator.AnalyzeInsights(matrix)

	c.JSON(200, out)
}

// normalizeSymbols uppercases and dedupes while preserving order.
func normalizeSymbols(symbols []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
