package api

import (
	"context"
	"fmt"

	"solrisk/internal/domain"
	"solrisk/internal/logger"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	WalletAddress string `json:"wallet_address"`
	LookbackDays  *int   `json:"lookback_days"`
}

func (m ApiHandler) analyze(c *gin.Context) {
	lg := logger.FromContext(c).With("handler", "analyze")
	ctx := c.Request.Context()

	profile, endProfile := domain.NewProfile()
	ctx = context.WithValue(ctx, domain.ContextProfileKey, profile)
	ctx = context.WithValue(ctx, logger.ContextKey, lg)
	defer func() {
		endProfile()
		if spans, err := profile.ToJsonBytes(); err == nil {
			lg.Debugf("analysis profile: %s", string(spans))
		}
	}()

	var requestBody analyzeRequest
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

	c.JSON(200, result)
}
