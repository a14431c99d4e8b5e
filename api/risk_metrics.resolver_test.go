package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"solrisk/internal/calculator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testApiHandler() ApiHandler {
	return ApiHandler{
		RiskCalculator:        calculator.NewRiskMetricsCalculator(calculator.NewStaticAssetProfileProvider(), calculator.DefaultRiskConfig()),
		StatsCalculator:       calculator.NewPortfolioStatsCalculator(),
		CorrelationCalculator: calculator.NewCorrelationCalculator(),
	}
}

func TestPortfolioFromManualHoldings(t *testing.T) {
	t.Run("value_usd takes precedence", func(t *testing.T) {
		portfolio, err := portfolioFromManualHoldings([]manualHolding{
			{Symbol: "SOL", ValueUSD: float64Ptr(700)},
			{Symbol: "USDC", Amount: float64Ptr(300), PriceUSD: float64Ptr(1)},
		})
		require.NoError(t, err)
		require.Len(t, portfolio.Holdings, 2)
		require.InDelta(t, 0.7, portfolio.Holdings[0].Weight, 1e-9)
		require.InDelta(t, 0.3, portfolio.Holdings[1].Weight, 1e-9)
	})

	t.Run("missing symbol", func(t *testing.T) {
		_, err := portfolioFromManualHoldings([]manualHolding{
			{ValueUSD: float64Ptr(100)},
		})
		require.Error(t, err)
	})

	t.Run("missing value and price", func(t *testing.T) {
		_, err := portfolioFromManualHoldings([]manualHolding{
			{Symbol: "SOL", Amount: float64Ptr(10)},
		})
		require.Error(t, err)
	})

	t.Run("negative value", func(t *testing.T) {
		_, err := portfolioFromManualHoldings([]manualHolding{
			{Symbol: "SOL", ValueUSD: float64Ptr(-5)},
		})
		require.Error(t, err)
	})
}

func TestRiskMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := testApiHandler().InitializeRouterEngine()

	t.Run("happy path", func(t *testing.T) {
		body := []byte(`{"holdings": [{"symbol": "SOL", "value_usd": 700}, {"symbol": "USDC", "value_usd": 300}]}`)
		req := httptest.NewRequest(http.MethodPost, "/riskMetrics", bytes.NewReader(body))
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)

		var response riskMetricsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		require.InDelta(t, 0.7, response.RiskMetrics.TokenWeights["SOL"], 1e-9)
		require.InDelta(t, 0.3, response.RiskMetrics.TokenWeights["USDC"], 1e-9)
		require.Greater(t, response.RiskMetrics.PortfolioVolatility, 0.0)
		require.Equal(t, 1000.0, response.PortfolioStats.TotalValue)
		require.Equal(t, 2, response.PortfolioStats.NumTokens)
	})

	t.Run("empty holdings rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/riskMetrics", bytes.NewReader([]byte(`{"holdings": []}`)))
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)
		require.Equal(t, 400, w.Code)
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/riskMetrics", bytes.NewReader([]byte(`{"holdings": `)))
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)
		require.Equal(t, 400, w.Code)
	})
}

func float64Ptr(f float64) *float64 {
	return &f
}
