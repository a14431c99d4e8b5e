package api

import (
	"fmt"

	"solrisk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type manualHolding struct {
	Symbol   string   `json:"symbol"`
	Amount   *float64 `json:"amount"`
	PriceUSD *float64 `json:"price_usd"`
	ValueUSD *float64 `json:"value_usd"`
}

type riskMetricsRequest struct {
	Holdings []manualHolding `json:"holdings"`
}

type riskMetricsResponse struct {
	RiskMetrics    domain.RiskMetrics    `json:"risk_metrics"`
	PortfolioStats domain.PortfolioStats `json:"portfolio_stats"`
}

// riskMetrics runs the calculators over holdings supplied directly in the
// request, without touching the chain or any price provider.
func (m ApiHandler) riskMetrics(c *gin.Context) {
	var requestBody riskMetricsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if len(requestBody.Holdings) == 0 {
		returnErrorJsonCode(fmt.Errorf("at least one holding is required"), c, 400)
		return
	}

	portfolio, err := portfolioFromManualHoldings(requestBody.Holdings)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out := riskMetricsResponse{
		RiskMetrics:    m.RiskCalculator.Calculate(*portfolio),
		PortfolioStats: m.StatsCalculator.Calculate(*portfolio),
	}

	c.JSON(200, out)
}

func portfolioFromManualHoldings(holdings []manualHolding) (*domain.Portfolio, error) {
	portfolio := &domain.Portfolio{}

	for i, in := range holdings {
		if in.Symbol == "" {
			return nil, fmt.Errorf("holding %d: symbol is required", i)
		}

		holding := domain.Holding{
			Symbol: in.Symbol,
			Name:   in.Symbol,
		}
		switch {
		case in.ValueUSD != nil:
			holding.ValueUSD = decimal.NewFromFloat(*in.ValueUSD)
		case in.Amount != nil && in.PriceUSD != nil:
			holding.Amount = decimal.NewFromFloat(*in.Amount)
			holding.PriceUSD = decimal.NewFromFloat(*in.PriceUSD)
			holding.ValueUSD = holding.Amount.Mul(holding.PriceUSD)
		default:
			return nil, fmt.Errorf("holding %d (%s): value_usd or amount+price_usd is required", i, in.Symbol)
		}
		if holding.ValueUSD.IsNegative() {
			return nil, fmt.Errorf("holding %d (%s): value cannot be negative", i, in.Symbol)
		}

		portfolio.Holdings = append(portfolio.Holdings, holding)
	}

	totalValue := portfolio.TotalValue()
	if totalValue.IsPositive() {
		for i := range portfolio.Holdings {
			portfolio.Holdings[i].Weight = portfolio.Holdings[i].ValueUSD.Div(totalValue).InexactFloat64()
		}
	}

	return portfolio, nil
}
