package service

import (
	"context"
	"fmt"
	"time"

	"solrisk/internal/calculator"
	"solrisk/internal/domain"
	"solrisk/internal/logger"
	"solrisk/internal/repository"

	"github.com/shopspring/decimal"
)

// dust positions worth under a dollar add noise without moving any metric
var dustThreshold = decimal.NewFromInt(1)

// AnalysisService runs the full wallet analysis pipeline. Fetching the
// wallet's holdings is the only hard failure; pricing, caching, and
// narrative layers all degrade to defaults.
type AnalysisService interface {
	// GetHoldings returns the wallet's priced, dust-filtered holdings.
	GetHoldings(ctx context.Context, walletAddress string) (*domain.Portfolio, error)
	AnalyzeWallet(ctx context.Context, walletAddress string, lookbackDays int) (*domain.AnalysisResult, error)
}

type analysisServiceHandler struct {
	HeliusRepository      repository.HeliusRepository
	PriceService          PriceService
	RiskCalculator        calculator.RiskMetricsCalculator
	StatsCalculator       calculator.PortfolioStatsCalculator
	CorrelationCalculator calculator.CorrelationCalculator
}

func NewAnalysisService(
	heliusRepository repository.HeliusRepository,
	priceService PriceService,
	riskCalculator calculator.RiskMetricsCalculator,
	statsCalculator calculator.PortfolioStatsCalculator,
	correlationCalculator calculator.CorrelationCalculator,
) AnalysisService {
	return &analysisServiceHandler{
		HeliusRepository:      heliusRepository,
		PriceService:          priceService,
		RiskCalculator:        riskCalculator,
		StatsCalculator:       statsCalculator,
		CorrelationCalculator: correlationCalculator,
	}
}

func (h *analysisServiceHandler) GetHoldings(ctx context.Context, walletAddress string) (*domain.Portfolio, error) {
	if h.HeliusRepository == nil {
		return nil, fmt.Errorf("helius is not configured - cannot fetch holdings")
	}

	balances, err := h.HeliusRepository.GetTokenBalances(ctx, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holdings: %w", err)
	}

	symbols := []string{}
	for _, balance := range balances {
		symbols = append(symbols, balance.Symbol)
	}

	livePrices, err := h.PriceService.GetCurrentPrices(ctx, symbols)
	if err != nil {
		logger.FromContext(ctx).Warnf("live pricing unavailable, using reference prices: %v", err)
		livePrices = map[string]decimal.Decimal{}
	}

	portfolio := &domain.Portfolio{
		WalletAddress: walletAddress,
		FetchedAt:     time.Now().UTC(),
	}

	for _, balance := range balances {
		price := balance.ReferencePrice
		if live, ok := livePrices[balance.Symbol]; ok && live.IsPositive() {
			price = live
		}

		value := balance.Amount.Mul(price)
		if value.LessThan(dustThreshold) {
			continue
		}

		portfolio.Holdings = append(portfolio.Holdings, domain.Holding{
			Mint:     balance.Mint,
			Symbol:   balance.Symbol,
			Name:     balance.Name,
			Amount:   balance.Amount,
			Decimals: balance.Decimals,
			PriceUSD: price,
			ValueUSD: value,
		})
	}

	totalValue := portfolio.TotalValue()
	if totalValue.IsPositive() {
		for i := range portfolio.Holdings {
			portfolio.Holdings[i].Weight = portfolio.Holdings[i].ValueUSD.Div(totalValue).InexactFloat64()
		}
	}

	return portfolio, nil
}

func (h *analysisServiceHandler) AnalyzeWallet(ctx context.Context, walletAddress string, lookbackDays int) (*domain.AnalysisResult, error) {
	profile := domain.GetProfile(ctx)
	if lookbackDays <= 0 {
		lookbackDays = 30
	}

	profile.StartNewSpan("fetch holdings")
	portfolio, err := h.GetHoldings(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	profile.StartNewSpan("compute risk metrics")
	riskMetrics := h.RiskCalculator.Calculate(*portfolio)
	portfolioStats := h.StatsCalculator.Calculate(*portfolio)

	profile.StartNewSpan("build correlation matrix")
	insights := domain.EmptyCorrelationInsights()
	insufficientCorrelation := true
	symbols := portfolio.Symbols()
	if len(symbols) >= 2 {
		history := h.PriceService.GetPriceHistory(ctx, symbols, lookbackDays)
		matrix, err := h.CorrelationCalculator.BuildMatrix(history)
		if err != nil {
			logger.FromContext(ctx).Warnf("correlation analysis skipped: %v", err)
		} else {
			insights = h.CorrelationCalculator.AnalyzeInsights(matrix)
			insufficientCorrelation = false
		}
	}

	result := &domain.AnalysisResult{
		WalletAddress:           walletAddress,
		GeneratedAt:             time.Now().UTC(),
		LookbackDays:            lookbackDays,
		Holdings:                portfolio.Holdings,
		PortfolioStats:          portfolioStats,
		RiskMetrics:             riskMetrics,
		CorrelationInsights:     insights,
		InsufficientCorrelation: insufficientCorrelation,
		OverallRiskLevel:        overallRiskLevel(riskMetrics),
		Recommendations:         riskRecommendations(riskMetrics),
	}

	return result, nil
}

func overallRiskLevel(metrics domain.RiskMetrics) domain.RiskLevel {
	if metrics.PortfolioVolatility < 0.15 && metrics.SharpeRatio > 0.8 {
		return domain.RiskLevelLow
	}
	if metrics.PortfolioVolatility < 0.3 && metrics.SharpeRatio > 0.3 {
		return domain.RiskLevelMedium
	}
	return domain.RiskLevelHigh
}

func riskRecommendations(metrics domain.RiskMetrics) []string {
	recommendations := []string{}

	if metrics.PortfolioVolatility > 0.3 {
		recommendations = append(recommendations, "Consider diversifying your portfolio to reduce volatility")
	}
	if metrics.SharpeRatio < 0.5 {
		recommendations = append(recommendations, "Your risk-adjusted returns could be improved")
	}
	if len(metrics.TokenWeights) < 5 {
		recommendations = append(recommendations, "Consider adding more tokens for better diversification")
	}

	return recommendations
}
