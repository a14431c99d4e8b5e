package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	// GeneratePortfolioInsights asks the model for a structured narrative
	// covering analysis, risks, and recommendations.
	GeneratePortfolioInsights(ctx context.Context, portfolioSummary string) (string, error)
	// GenerateScenarioAnalysis asks the model how a hypothetical scenario
	// would affect the portfolio.
	GenerateScenarioAnalysis(ctx context.Context, portfolioSummary string, scenarioDescription string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const systemPrompt = `You are a professional cryptocurrency portfolio risk analyst.`

const insightsPromptTemplate = `Analyze the provided Solana portfolio data and provide:
1. A clear analysis of the portfolio's risk profile
2. Risk assessment highlighting key concerns
3. Specific, actionable recommendations for improvement

Be concise, professional, and focus on practical advice.

Portfolio data:
%s

Please provide your analysis in the following format:
ANALYSIS: [Your portfolio analysis here]
RISK ASSESSMENT: [Your risk assessment here]
RECOMMENDATIONS: [Your recommendations here]`

const scenarioPromptTemplate = `%s

Scenario: %s

Please provide:
1. Expected impact on portfolio value
2. Risk implications
3. Recommended actions
4. Key metrics to monitor`

func (h gptRepositoryHandler) GeneratePortfolioInsights(ctx context.Context, portfolioSummary string) (string, error) {
	prompt := fmt.Sprintf(insightsPromptTemplate, portfolioSummary)
	return h.send(ctx, prompt)
}

func (h gptRepositoryHandler) GenerateScenarioAnalysis(ctx context.Context, portfolioSummary string, scenarioDescription string) (string, error) {
	prompt := fmt.Sprintf(scenarioPromptTemplate, portfolioSummary, scenarioDescription)
	return h.send(ctx, prompt)
}

func (h gptRepositoryHandler) send(ctx context.Context, prompt string) (string, error) {
	response, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return response.Choices[0].Message.Content, nil
}
