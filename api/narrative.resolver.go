package api

import (
	"context"
	"fmt"

	"solrisk/internal/logger"

	"github.com/gin-gonic/gin"
)

type narrativeRequest struct {
	WalletAddress string `json:"wallet_address"`
	LookbackDays  *int   `json:"lookback_days"`
}

func (m ApiHandler) narrative(c *gin.Context) {
	lg := logger.FromContext(c).With("handler", "narrative")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	var requestBody narrativeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if requestBody.WalletAddress == "" {
		returnErrorJsonCode(fmt.Errorf("wallet_address is required"), c, 400)
		return
	}

	lookbackDays := 30
	if requestBody.LookbackDays != nil {
		lookbackDays = *requestBody.LookbackDays
	}

	result, err := m.AnalysisService.AnalyzeWallet(ctx, requestBody.WalletAddress, lookbackDays)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	insights := m.NarrativeService.GenerateInsights(ctx, result)

	c.JSON(200, insights)
}
