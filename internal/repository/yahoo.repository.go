package repository

import (
	"context"
	"fmt"
	"time"

	"solrisk/internal/logger"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

type yahooRepositoryHandler struct{}

// NewYahooPriceProvider quotes tokens through Yahoo Finance's crypto
// pairs. It needs no API key, which makes it a useful fallback provider.
func NewYahooPriceProvider() PriceProviderRepository {
	return yahooRepositoryHandler{}
}

func yahooSymbol(symbol string) string {
	return fmt.Sprintf("%s-USD", symbol)
}

func (h yahooRepositoryHandler) CurrentPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		q, err := quote.Get(yahooSymbol(symbol))
		if err != nil || q == nil {
			logger.Debug("no yahoo quote for %s", symbol)
			continue
		}
		out[symbol] = decimal.NewFromFloat(q.RegularMarketPrice)
	}

	return out, nil
}

func (h yahooRepositoryHandler) DailyHistory(ctx context.Context, symbol string, days int) ([]float64, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -days)

	params := &chart.Params{
		Symbol:   yahooSymbol(symbol),
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	prices := []float64{}
	for iter.Next() {
		prices = append(prices, iter.Bar().AdjClose.InexactFloat64())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("no history returned for %s", symbol)
	}

	return prices, nil
}
