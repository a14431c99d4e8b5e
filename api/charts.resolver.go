package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"solrisk/internal/logger"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) allocationChart(c *gin.Context) {
	lg := logger.FromContext(c).With("handler", "allocationChart")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	wallet := c.Query("wallet")
	if wallet == "" {
		returnErrorJsonCode(fmt.Errorf("wallet query param is required"), c, 400)
		return
	}

	portfolio, err := m.AnalysisService.GetHoldings(ctx, wallet)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	png, err := m.ChartService.RenderAllocationPie(portfolio)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Data(200, "image/png", png)
}

func (m ApiHandler) priceHistoryChart(c *gin.Context) {
	lg := logger.FromContext(c).With("handler", "priceHistoryChart")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	symbols := normalizeSymbols(strings.Split(c.Query("symbols"), ","))
	if len(symbols) == 0 {
		returnErrorJsonCode(fmt.Errorf("symbols query param is required, e.g. ?symbols=SOL,USDC"), c, 400)
		return
	}

	days := 30
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid days param: %w", err), c, 400)
			return
		}
		days = parsed
	}

	history := m.PriceService.GetPriceHistory(ctx, symbols, days)

	png, err := m.ChartService.RenderPriceHistoryLines(history)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Data(200, "image/png", png)
}
