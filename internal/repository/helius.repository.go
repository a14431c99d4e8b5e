package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"solrisk/internal/domain"
	"solrisk/internal/logger"

	"github.com/shopspring/decimal"
)

const heliusBaseUrl = "https://api.helius.xyz/v0"
const heliusMaxAttempts = 3

// lamports per SOL
var lamportsPerSol = decimal.New(1, 9)

type registeredToken struct {
	Symbol         string
	Name           string
	ReferencePrice decimal.Decimal
}

// tokenRegistry maps well known SPL mints to display metadata and a
// reference price used when no live quote is available.
var tokenRegistry = map[string]registeredToken{
	"So11111111111111111111111111111111111111112":  {Symbol: "SOL", Name: "Solana", ReferencePrice: decimal.NewFromFloat(25.50)},
	"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v": {Symbol: "USDC", Name: "USD Coin", ReferencePrice: decimal.NewFromFloat(1.00)},
	"Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB": {Symbol: "USDT", Name: "Tether USD", ReferencePrice: decimal.NewFromFloat(1.00)},
	"4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R": {Symbol: "RAY", Name: "Raydium", ReferencePrice: decimal.NewFromFloat(2.15)},
	"SRMuApVNdxXokk5GT7XD5cUUgXMBCoAz2LHeuAoKWRt":  {Symbol: "SRM", Name: "Serum", ReferencePrice: decimal.NewFromFloat(0.85)},
}

const solMint = "So11111111111111111111111111111111111111112"

type HeliusRepository interface {
	// GetTokenBalances returns every nonzero SPL token balance plus the
	// native SOL balance for the wallet.
	GetTokenBalances(ctx context.Context, walletAddress string) ([]domain.TokenBalance, error)
}

type heliusRepositoryHandler struct {
	HttpClient *http.Client
	ApiKey     string
	BaseUrl    string
}

func NewHeliusRepository(apiKey string) HeliusRepository {
	return &heliusRepositoryHandler{
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		ApiKey:  apiKey,
		BaseUrl: heliusBaseUrl,
	}
}

type heliusBalancesResponse struct {
	Tokens []struct {
		Mint     string `json:"mint"`
		Amount   int64  `json:"amount"`
		Decimals int32  `json:"decimals"`
	} `json:"tokens"`
	NativeBalance int64 `json:"nativeBalance"`
}

func (h *heliusRepositoryHandler) GetTokenBalances(ctx context.Context, walletAddress string) ([]domain.TokenBalance, error) {
	url := fmt.Sprintf("%s/addresses/%s/balances?api-key=%s", h.BaseUrl, walletAddress, h.ApiKey)

	responseBytes, err := h.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balances for %s: %w", walletAddress, err)
	}

	responseJson := heliusBalancesResponse{}
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balances response: %w", err)
	}

	out := []domain.TokenBalance{}

	if responseJson.NativeBalance > 0 {
		sol := tokenRegistry[solMint]
		out = append(out, domain.TokenBalance{
			Mint:           solMint,
			Symbol:         sol.Symbol,
			Name:           sol.Name,
			Amount:         decimal.NewFromInt(responseJson.NativeBalance).Div(lamportsPerSol),
			Decimals:       9,
			ReferencePrice: sol.ReferencePrice,
		})
	}

	for _, token := range responseJson.Tokens {
		if token.Amount <= 0 {
			continue
		}

		balance := domain.TokenBalance{
			Mint:     token.Mint,
			Amount:   decimal.NewFromInt(token.Amount).Div(decimal.New(1, token.Decimals)),
			Decimals: token.Decimals,
		}

		if registered, ok := tokenRegistry[token.Mint]; ok {
			balance.Symbol = registered.Symbol
			balance.Name = registered.Name
			balance.ReferencePrice = registered.ReferencePrice
		} else {
			shortMint := token.Mint
			if len(shortMint) > 8 {
				shortMint = shortMint[:8]
			}
			balance.Symbol = fmt.Sprintf("TOKEN_%s", shortMint)
			balance.Name = fmt.Sprintf("Token %s", shortMint)
			balance.ReferencePrice = decimal.NewFromFloat(0.000001)
		}

		out = append(out, balance)
	}

	return out, nil
}

func (h *heliusRepositoryHandler) get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= heliusMaxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		response, err := h.HttpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		responseBytes, err := io.ReadAll(response.Body)
		response.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
		}

		if response.StatusCode == 429 || response.StatusCode >= 500 {
			logger.Debug("helius returned %d. retrying...", response.StatusCode)
			lastErr = fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}
		if response.StatusCode != 200 {
			return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
		}

		return responseBytes, nil
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", heliusMaxAttempts, lastErr)
}
