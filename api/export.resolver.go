package api

import (
	"context"
	"fmt"

	"solrisk/internal/logger"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) exportHoldings(c *gin.Context) {
	lg := logger.FromContext(c).With("handler", "exportHoldings")
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

	body, filename, err := m.ExportService.HoldingsCsv(portfolio)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "text/csv", body)
}
