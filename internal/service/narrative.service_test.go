package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"solrisk/internal/domain"
	mock_repository "solrisk/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func riskyResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		WalletAddress: "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
		Holdings: []domain.Holding{
			{Symbol: "SOL", ValueUSD: decimal.NewFromInt(7000), Weight: 0.7},
			{Symbol: "USDC", ValueUSD: decimal.NewFromInt(3000), Weight: 0.3},
		},
		PortfolioStats: domain.PortfolioStats{
			TotalValue: 10000,
			NumTokens:  2,
		},
		RiskMetrics: domain.RiskMetrics{
			PortfolioVolatility: 0.42,
			SharpeRatio:         0.12,
			ConcentrationRisk:   domain.RiskLevelHigh,
			CorrelationRisk:     domain.RiskLevelMedium,
		},
	}
}

func calmResult() *domain.AnalysisResult {
	out := riskyResult()
	out.RiskMetrics.PortfolioVolatility = 0.1
	out.RiskMetrics.SharpeRatio = 1.2
	out.RiskMetrics.ConcentrationRisk = domain.RiskLevelLow
	return out
}

func TestGenerateInsightsFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("no model configured", func(t *testing.T) {
		insights := NewNarrativeService(nil).GenerateInsights(ctx, riskyResult())

		require.Equal(t, domain.NarrativeSourceFallback, insights.Source)
		require.Equal(t,
			"Portfolio Analysis:\nYour portfolio has a volatility of 42.0% and a Sharpe ratio of 0.12.\nThe concentration risk is currently high.",
			insights.Analysis,
		)
		require.Contains(t, insights.RiskAssessment, "High volatility detected - portfolio may experience significant price swings")
		require.Contains(t, insights.RiskAssessment, "Low Sharpe ratio suggests poor risk-adjusted returns")
		require.Contains(t, insights.RiskAssessment, "High concentration risk - portfolio is not well diversified")
		require.Contains(t, insights.Recommendations, "Consider adding stablecoins or less volatile assets to reduce overall volatility")
		require.Contains(t, insights.Recommendations, "Review your asset allocation to improve risk-adjusted returns")
		require.Contains(t, insights.Recommendations, "Diversify your portfolio by adding more different types of tokens")
	})

	t.Run("healthy portfolio gets the calm defaults", func(t *testing.T) {
		insights := NewNarrativeService(nil).GenerateInsights(ctx, calmResult())

		require.Equal(t, "Portfolio risk appears manageable", insights.RiskAssessment)
		require.Equal(t, "Portfolio appears well-balanced", insights.Recommendations)
	})

	t.Run("model failure degrades to fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gpt := mock_repository.NewMockGptRepository(ctrl)
		gpt.EXPECT().GeneratePortfolioInsights(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("rate limited"))

		insights := NewNarrativeService(gpt).GenerateInsights(ctx, riskyResult())
		require.Equal(t, domain.NarrativeSourceFallback, insights.Source)
	})
}

func TestGenerateInsightsFromModel(t *testing.T) {
	ctx := context.Background()

	t.Run("sectioned response is parsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gpt := mock_repository.NewMockGptRepository(ctrl)
		response := strings.Join([]string{
			"ANALYSIS:",
			"The portfolio is heavily weighted toward SOL.",
			"",
			"RISK ASSESSMENT: Elevated drawdown risk.",
			"RECOMMENDATIONS:",
			"- Add stablecoin exposure",
			"- Trim the SOL position",
		}, "\n")
		gpt.EXPECT().GeneratePortfolioInsights(gomock.Any(), gomock.Any()).Return(response, nil)

		insights := NewNarrativeService(gpt).GenerateInsights(ctx, riskyResult())

		require.Equal(t, domain.NarrativeSourceModel, insights.Source)
		require.Equal(t, "The portfolio is heavily weighted toward SOL.", insights.Analysis)
		require.Equal(t, "Elevated drawdown risk.", insights.RiskAssessment)
		require.Equal(t, "Add stablecoin exposure\nTrim the SOL position", insights.Recommendations)
	})

	t.Run("unstructured response becomes the analysis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gpt := mock_repository.NewMockGptRepository(ctrl)
		gpt.EXPECT().GeneratePortfolioInsights(gomock.Any(), gomock.Any()).Return("Looks fine to me.", nil)

		insights := NewNarrativeService(gpt).GenerateInsights(ctx, riskyResult())

		require.Equal(t, "Looks fine to me.", insights.Analysis)
		require.Equal(t, "Risk assessment not available", insights.RiskAssessment)
		require.Equal(t, "Recommendations not available", insights.Recommendations)
	})

	t.Run("prompt embeds the portfolio summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gpt := mock_repository.NewMockGptRepository(ctrl)
		gpt.EXPECT().GeneratePortfolioInsights(gomock.Any(), gomock.Cond(func(summary any) bool {
			s, ok := summary.(string)
			return ok &&
				strings.Contains(s, "- Total Value: $10000.00") &&
				strings.Contains(s, "- Portfolio Volatility: 42.00%") &&
				strings.Contains(s, "- SOL: $7000.00 (70.0%)")
		})).Return("ok", nil)

		NewNarrativeService(gpt).GenerateInsights(ctx, riskyResult())
	})
}

func TestGenerateScenario(t *testing.T) {
	ctx := context.Background()

	t.Run("known scenario types map to fixed prompts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gpt := mock_repository.NewMockGptRepository(ctrl)
		gpt.EXPECT().GenerateScenarioAnalysis(
			gomock.Any(),
			gomock.Any(),
			"Analyze what would happen to this portfolio in a 50% market crash scenario",
		).Return("Expect a severe drawdown.", nil)

		out := NewNarrativeService(gpt).GenerateScenario(ctx, riskyResult(), "market_crash")
		require.Equal(t, "market_crash", out.Scenario)
		require.Equal(t, "Expect a severe drawdown.", out.Analysis)
	})

	t.Run("unknown scenario types use the generic prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gpt := mock_repository.NewMockGptRepository(ctrl)
		gpt.EXPECT().GenerateScenarioAnalysis(
			gomock.Any(),
			gomock.Any(),
			"Analyze this portfolio scenario",
		).Return("ok", nil)

		NewNarrativeService(gpt).GenerateScenario(ctx, riskyResult(), "solana_flippening")
	})

	t.Run("no model yields the disabled message", func(t *testing.T) {
		out := NewNarrativeService(nil).GenerateScenario(ctx, riskyResult(), "bull_market")
		require.Equal(t, "Scenario analysis for bull_market is not available without AI integration.", out.Analysis)
		require.False(t, out.GeneratedAt.IsZero())
	})

	t.Run("model failure yields the disabled message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gpt := mock_repository.NewMockGptRepository(ctrl)
		gpt.EXPECT().GenerateScenarioAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).Return("", fmt.Errorf("timeout"))

		out := NewNarrativeService(gpt).GenerateScenario(ctx, riskyResult(), "rebalancing")
		require.Equal(t, "Scenario analysis for rebalancing is not available without AI integration.", out.Analysis)
	})
}
