package integration_tests

import (
	"context"
	"fmt"
	"solrisk/internal/domain"
	"solrisk/internal/repository"

	"github.com/shopspring/decimal"
)

const testWalletAddress = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"

func NewMockHeliusRepositoryForTests() repository.HeliusRepository {
	return mockHeliusForTestsHandler{}
}

type mockHeliusForTestsHandler struct {
}

func (m mockHeliusForTestsHandler) GetTokenBalances(ctx context.Context, walletAddress string) ([]domain.TokenBalance, error) {
	if walletAddress != testWalletAddress {
		return nil, fmt.Errorf("no balances for wallet %s", walletAddress)
	}

	return []domain.TokenBalance{
		{
			Mint:           "So11111111111111111111111111111111111111112",
			Symbol:         "SOL",
			Name:           "Solana",
			Amount:         decimal.NewFromInt(10),
			Decimals:       9,
			ReferencePrice: decimal.NewFromFloat(25.50),
		},
		{
			Mint:           "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
			Symbol:         "USDC",
			Name:           "USD Coin",
			Amount:         decimal.NewFromInt(500),
			Decimals:       6,
			ReferencePrice: decimal.NewFromFloat(1.00),
		},
		{
			Mint:           "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R",
			Symbol:         "RAY",
			Name:           "Raydium",
			Amount:         decimal.NewFromInt(100),
			Decimals:       6,
			ReferencePrice: decimal.NewFromFloat(2.15),
		},
		{
			// stays under the dust threshold at its reference price
			Mint:           "Dust11111111111111111111111111111111111111",
			Symbol:         "TOKEN_Dust1111",
			Name:           "Token Dust1111",
			Amount:         decimal.NewFromInt(42),
			Decimals:       6,
			ReferencePrice: decimal.NewFromFloat(0.000001),
		},
	}, nil
}

// NewMockPriceProviderForTests quotes canned spot prices and fails history
// requests, which forces the price service onto the database cache.
func NewMockPriceProviderForTests() repository.PriceProviderRepository {
	return mockPriceProviderForTestsHandler{}
}

type mockPriceProviderForTestsHandler struct {
}

func (m mockPriceProviderForTestsHandler) CurrentPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	quotes := map[string]decimal.Decimal{
		"SOL":  decimal.NewFromInt(30),
		"USDC": decimal.NewFromInt(1),
		"RAY":  decimal.NewFromInt(2),
	}

	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		if quote, ok := quotes[symbol]; ok {
			out[symbol] = quote
		}
	}

	return out, nil
}

func (m mockPriceProviderForTestsHandler) DailyHistory(ctx context.Context, symbol string, days int) ([]float64, error) {
	return nil, fmt.Errorf("DailyHistory not implemented")
}
