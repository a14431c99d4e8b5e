package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"solrisk/internal/domain"
	"solrisk/internal/logger"
	"solrisk/internal/repository"
)

var scenarioDescriptions = map[string]string{
	"market_crash":    "Analyze what would happen to this portfolio in a 50% market crash scenario",
	"bull_market":     "Analyze potential performance in a 100% bull market scenario",
	"rebalancing":     "Suggest optimal rebalancing strategy for this portfolio",
	"diversification": "Analyze the impact of adding 20% allocation to stablecoins",
}

const defaultScenarioDescription = "Analyze this portfolio scenario"

// NarrativeService turns an analysis result into plain-text commentary.
// Without a model it falls back to deterministic text derived from the
// metrics, so callers never have to handle an error.
type NarrativeService interface {
	GenerateInsights(ctx context.Context, result *domain.AnalysisResult) domain.NarrativeInsights
	GenerateScenario(ctx context.Context, result *domain.AnalysisResult, scenarioType string) domain.ScenarioAnalysis
}

type narrativeServiceHandler struct {
	// GptRepository is nil when no API key is configured
	GptRepository repository.GptRepository
}

func NewNarrativeService(gptRepository repository.GptRepository) NarrativeService {
	return &narrativeServiceHandler{
		GptRepository: gptRepository,
	}
}

func (h *narrativeServiceHandler) GenerateInsights(ctx context.Context, result *domain.AnalysisResult) domain.NarrativeInsights {
	if h.GptRepository == nil {
		return fallbackInsights(result)
	}

	response, err := h.GptRepository.GeneratePortfolioInsights(ctx, portfolioSummary(result))
	if err != nil {
		logger.FromContext(ctx).Warnf("insight generation failed, using fallback: %v", err)
		return fallbackInsights(result)
	}

	return parseNarrativeResponse(response)
}

func (h *narrativeServiceHandler) GenerateScenario(ctx context.Context, result *domain.AnalysisResult, scenarioType string) domain.ScenarioAnalysis {
	out := domain.ScenarioAnalysis{
		Scenario:    scenarioType,
		GeneratedAt: time.Now().UTC(),
	}

	if h.GptRepository == nil {
		out.Analysis = fmt.Sprintf("Scenario analysis for %s is not available without AI integration.", scenarioType)
		return out
	}

	description, ok := scenarioDescriptions[scenarioType]
	if !ok {
		description = defaultScenarioDescription
	}

	response, err := h.GptRepository.GenerateScenarioAnalysis(ctx, portfolioSummary(result), description)
	if err != nil {
		logger.FromContext(ctx).Warnf("scenario generation failed, using fallback: %v", err)
		out.Analysis = fmt.Sprintf("Scenario analysis for %s is not available without AI integration.", scenarioType)
		return out
	}

	out.Analysis = response
	return out
}

// portfolioSummary renders the compact plain-text summary the prompts
// embed. Only the top 5 holdings are listed to keep the prompt small.
func portfolioSummary(result *domain.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("Portfolio Analysis Summary:\n")
	fmt.Fprintf(&b, "- Total Value: $%.2f\n", result.PortfolioStats.TotalValue)
	fmt.Fprintf(&b, "- Number of Tokens: %d\n", result.PortfolioStats.NumTokens)
	fmt.Fprintf(&b, "- Portfolio Volatility: %.2f%%\n", result.RiskMetrics.PortfolioVolatility*100)
	fmt.Fprintf(&b, "- Sharpe Ratio: %.2f\n", result.RiskMetrics.SharpeRatio)
	fmt.Fprintf(&b, "- Concentration Risk: %s\n", result.RiskMetrics.ConcentrationRisk)
	fmt.Fprintf(&b, "- Correlation Risk: %s\n", result.RiskMetrics.CorrelationRisk)
	b.WriteString("\nTop Holdings:\n")

	holdings := make([]domain.Holding, len(result.Holdings))
	copy(holdings, result.Holdings)
	sort.Slice(holdings, func(i, j int) bool {
		return holdings[i].ValueUSD.GreaterThan(holdings[j].ValueUSD)
	})
	if len(holdings) > 5 {
		holdings = holdings[:5]
	}
	for _, holding := range holdings {
		fmt.Fprintf(&b, "- %s: $%s (%.1f%%)\n", holding.Symbol, holding.ValueUSD.StringFixed(2), holding.Weight*100)
	}

	return b.String()
}

// parseNarrativeResponse splits a model response on the three section
// headers the prompt asks for. An unrecognized layout keeps the whole
// response as the analysis.
func parseNarrativeResponse(raw string) domain.NarrativeInsights {
	analysis := []string{}
	riskAssessment := []string{}
	recommendations := []string{}

	section := ""
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		header := strings.ToUpper(strings.TrimLeft(line, "#* "))
		switch {
		case strings.HasPrefix(header, "ANALYSIS"):
			section = "analysis"
			line = sectionRemainder(line)
		case strings.HasPrefix(header, "RISK ASSESSMENT"):
			section = "risk"
			line = sectionRemainder(line)
		case strings.HasPrefix(header, "RECOMMENDATION"):
			section = "recommendations"
			line = sectionRemainder(line)
		}
		if line == "" {
			continue
		}

		switch section {
		case "analysis":
			analysis = append(analysis, line)
		case "risk":
			riskAssessment = append(riskAssessment, line)
		case "recommendations":
			line = strings.TrimSpace(strings.TrimLeft(line, "-• "))
			if line != "" {
				recommendations = append(recommendations, line)
			}
		}
	}

	out := domain.NarrativeInsights{
		Analysis:        strings.Join(analysis, "\n"),
		RiskAssessment:  strings.Join(riskAssessment, "\n"),
		Recommendations: strings.Join(recommendations, "\n"),
		Source:          domain.NarrativeSourceModel,
	}
	if out.Analysis == "" {
		out.Analysis = raw
	}
	if out.RiskAssessment == "" {
		out.RiskAssessment = "Risk assessment not available"
	}
	if out.Recommendations == "" {
		out.Recommendations = "Recommendations not available"
	}

	return out
}

// sectionRemainder strips a "HEADER:" prefix, keeping any content that
// follows on the same line.
func sectionRemainder(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	return ""
}

func fallbackInsights(result *domain.AnalysisResult) domain.NarrativeInsights {
	metrics := result.RiskMetrics

	analysis := fmt.Sprintf(
		"Portfolio Analysis:\nYour portfolio has a volatility of %.1f%% and a Sharpe ratio of %.2f.\nThe concentration risk is currently %s.",
		metrics.PortfolioVolatility*100,
		metrics.SharpeRatio,
		strings.ToLower(string(metrics.ConcentrationRisk)),
	)

	riskAssessment := []string{}
	if metrics.PortfolioVolatility > 0.3 {
		riskAssessment = append(riskAssessment, "High volatility detected - portfolio may experience significant price swings")
	}
	if metrics.SharpeRatio < 0.5 {
		riskAssessment = append(riskAssessment, "Low Sharpe ratio suggests poor risk-adjusted returns")
	}
	if metrics.ConcentrationRisk == domain.RiskLevelHigh {
		riskAssessment = append(riskAssessment, "High concentration risk - portfolio is not well diversified")
	}

	recommendations := []string{}
	if metrics.PortfolioVolatility > 0.3 {
		recommendations = append(recommendations, "Consider adding stablecoins or less volatile assets to reduce overall volatility")
	}
	if metrics.SharpeRatio < 0.5 {
		recommendations = append(recommendations, "Review your asset allocation to improve risk-adjusted returns")
	}
	if metrics.ConcentrationRisk == domain.RiskLevelHigh {
		recommendations = append(recommendations, "Diversify your portfolio by adding more different types of tokens")
	}

	out := domain.NarrativeInsights{
		Analysis:        analysis,
		RiskAssessment:  strings.Join(riskAssessment, "\n"),
		Recommendations: strings.Join(recommendations, "\n"),
		Source:          domain.NarrativeSourceFallback,
	}
	if out.RiskAssessment == "" {
		out.RiskAssessment = "Portfolio risk appears manageable"
	}
	if out.Recommendations == "" {
		out.Recommendations = "Portfolio appears well-balanced"
	}

	return out
}
