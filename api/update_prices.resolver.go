package api

import (
	"context"

	"solrisk/internal/logger"
	"solrisk/internal/repository"

	"github.com/gin-gonic/gin"
)

type updatePricesRequest struct {
	Symbols []string `json:"symbols"`
	Days    *int     `json:"days"`
}

func (m ApiHandler) updatePrices(c *gin.Context) {
	lg := logger.FromContext(c).With("handler", "updatePrices")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	var requestBody updatePricesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	symbols := normalizeSymbols(requestBody.Symbols)
	if len(symbols) == 0 {
		symbols = repository.TrackedSymbols()
	}

	days := 30
	if requestBody.Days != nil {
		days = *requestBody.Days
	}

	written, err := m.PriceService.UpdatePrices(ctx, symbols, days)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := map[string]interface{}{
		"message":     "ok",
		"rowsWritten": written,
		"symbols":     symbols,
	}

	c.JSON(200, out)
}
