package service

import (
	"strings"
	"testing"
	"time"

	"solrisk/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestHoldingsCsv(t *testing.T) {
	t.Run("writes one row per holding", func(t *testing.T) {
		portfolio := &domain.Portfolio{
			WalletAddress: "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
			Holdings: []domain.Holding{
				{
					Mint:     "So11111111111111111111111111111111111111112",
					Symbol:   "SOL",
					Name:     "Solana",
					Amount:   decimal.NewFromFloat(10.5),
					PriceUSD: decimal.NewFromInt(100),
					ValueUSD: decimal.NewFromInt(1050),
					Weight:   0.7,
				},
				{
					Mint:     "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
					Symbol:   "USDC",
					Name:     "USD Coin",
					Amount:   decimal.NewFromInt(450),
					PriceUSD: decimal.NewFromInt(1),
					ValueUSD: decimal.NewFromInt(450),
					Weight:   0.3,
				},
			},
			FetchedAt: time.Now().UTC(),
		}

		body, filename, err := NewExportService().HoldingsCsv(portfolio)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(body)), "\n")
		require.Len(t, lines, 3)
		require.Equal(t, "mint,symbol,name,amount,price_usd,value_usd,weight", strings.TrimSpace(lines[0]))
		require.Contains(t, lines[1], "SOL")
		require.Contains(t, lines[1], "10.5")
		require.Contains(t, lines[2], "USD Coin")

		require.True(t, strings.HasPrefix(filename, "portfolio_7xKXtg2C_"))
		require.True(t, strings.HasSuffix(filename, ".csv"))
	})

	t.Run("empty portfolio still yields a header", func(t *testing.T) {
		body, _, err := NewExportService().HoldingsCsv(&domain.Portfolio{WalletAddress: "abc"})
		require.NoError(t, err)
		require.Equal(t, "mint,symbol,name,amount,price_usd,value_usd,weight", strings.TrimSpace(string(body)))
	})

	t.Run("nil portfolio errors", func(t *testing.T) {
		_, _, err := NewExportService().HoldingsCsv(nil)
		require.Error(t, err)
	})
}
