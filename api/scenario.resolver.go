package api

import (
	"context"
	"fmt"

	"solrisk/internal/logger"

	"github.com/gin-gonic/gin"
)

type scenarioRequest struct {
	WalletAddress string `json:"wallet_address"`
	ScenarioType  string `json:"scenario_type"`
}

func (m ApiHandler) scenario(c *gin.Context) {
	lg := logger.FromContext(c).With("handler", "scenario")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	var requestBody scenarioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if requestBody.WalletAddress == "" {
		returnErrorJsonCode(fmt.Errorf("wallet_address is required"), c, 400)
		return
	}
	if requestBody.ScenarioType == "" {
		returnErrorJsonCode(fmt.Errorf("scenario_type is required"), c, 400)
		return
	}

	result, err := m.AnalysisService.AnalyzeWallet(ctx, requestBody.WalletAddress, 30)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	analysis := m.NarrativeService.GenerateScenario(ctx, result, requestBody.ScenarioType)

	c.JSON(200, analysis)
}
