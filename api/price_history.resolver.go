package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"solrisk/internal/logger"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) priceHistory(c *gin.Context) {
	lg := logger.FromContext(c).With("handler", "priceHistory")
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

	c.JSON(200, history)
}
