package repository

import (
	"context"
	"fmt"
	"sort"

	"solrisk/internal/logger"
	"solrisk/pkg/coingecko"

	"github.com/shopspring/decimal"
)

// coinGeckoIds maps token symbols to CoinGecko asset ids. Symbols outside
// this map cannot be quoted live and fall back to cached or synthetic data.
var coinGeckoIds = map[string]string{
	"SOL":   "solana",
	"USDC":  "usd-coin",
	"USDT":  "tether",
	"RAY":   "raydium",
	"SRM":   "serum",
	"ORCA":  "orca",
	"MNGO":  "mango-markets",
	"STEP":  "step-finance",
	"COPE":  "cope",
	"FIDA":  "bonfida",
	"KIN":   "kin",
	"MAPS":  "maps",
	"OXY":   "oxygen",
	"PORT":  "port-finance",
	"ROPE":  "rope",
	"SAMO":  "samoyedcoin",
	"SLIM":  "solanium",
	"SNY":   "synthetify-token",
	"TULIP": "tulip-protocol",
	"LIQ":   "liq-protocol",
}

// TrackedSymbols lists every symbol the live provider can quote, sorted.
// Used as the default set for bulk cache refreshes.
func TrackedSymbols() []string {
	out := make([]string, 0, len(coinGeckoIds))
	for symbol := range coinGeckoIds {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}

// PriceProviderRepository quotes live market data. Implementations cover
// one upstream source each and all of them degrade per symbol, never as
// a whole.
type PriceProviderRepository interface {
	// CurrentPrices returns spot prices for the symbols it can quote.
	// Unknown or failed symbols are simply absent from the result.
	CurrentPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
	// DailyHistory returns daily closing prices, oldest first.
	DailyHistory(ctx context.Context, symbol string, days int) ([]float64, error)
}

type coinGeckoRepositoryHandler struct {
	Client *coingecko.Client
}

func NewCoinGeckoPriceProvider(client *coingecko.Client) PriceProviderRepository {
	return coinGeckoRepositoryHandler{
		Client: client,
	}
}

func (h coinGeckoRepositoryHandler) CurrentPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	ids := []string{}
	symbolsById := map[string]string{}
	for _, symbol := range symbols {
		if id, ok := coinGeckoIds[symbol]; ok {
			ids = append(ids, id)
			symbolsById[id] = symbol
		}
	}

	out := map[string]decimal.Decimal{}
	if len(ids) == 0 {
		return out, nil
	}

	prices, err := h.Client.SimplePrice(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current prices: %w", err)
	}

	for id, price := range prices {
		if symbol, ok := symbolsById[id]; ok {
			out[symbol] = decimal.NewFromFloat(price)
		}
	}

	return out, nil
}

func (h coinGeckoRepositoryHandler) DailyHistory(ctx context.Context, symbol string, days int) ([]float64, error) {
	id, ok := coinGeckoIds[symbol]
	if !ok {
		return nil, fmt.Errorf("no coingecko id for symbol %s", symbol)
	}

	prices, err := h.Client.MarketChartDaily(id, days)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history for %s: %w", symbol, err)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("no history returned for %s", symbol)
	}

	logger.Debug("fetched %d days of history for %s", len(prices), symbol)
	return prices, nil
}
