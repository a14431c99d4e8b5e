package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"solrisk/internal/calculator"
	"solrisk/internal/db/models/postgres/public/model"
	"solrisk/internal/domain"
	"solrisk/internal/logger"
	"solrisk/internal/repository"

	"github.com/shopspring/decimal"
)

const seriesCacheTtl = time.Hour

// PriceService assembles daily price series for portfolio symbols. Live
// quotes are preferred, the database cache covers provider outages, and
// deterministic synthetic series cover symbols nobody quotes. A series is
// always produced for every requested symbol.
type PriceService interface {
	GetPriceHistory(ctx context.Context, symbols []string, days int) *domain.PriceHistory
	GetCurrentPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
	// UpdatePrices refreshes the database cache from the live provider and
	// returns how many rows were written.
	UpdatePrices(ctx context.Context, symbols []string, days int) (int, error)
}

type cachedSeries struct {
	prices    []float64
	fetchedAt time.Time
}

type priceServiceHandler struct {
	Db                     *sql.DB
	PriceProvider          repository.PriceProviderRepository
	PriceHistoryRepository repository.PriceHistoryRepository
	Synthetic              calculator.SyntheticPriceGenerator

	cacheMu     *sync.RWMutex
	seriesCache map[string]cachedSeries
}

func NewPriceService(
	db *sql.DB,
	priceProvider repository.PriceProviderRepository,
	priceHistoryRepository repository.PriceHistoryRepository,
	synthetic calculator.SyntheticPriceGenerator,
) PriceService {
	return &priceServiceHandler{
		Db:                     db,
		PriceProvider:          priceProvider,
		PriceHistoryRepository: priceHistoryRepository,
		Synthetic:              synthetic,
		cacheMu:                &sync.RWMutex{},
		seriesCache:            map[string]cachedSeries{},
	}
}

func (h *priceServiceHandler) getFromCache(symbol string, days int) []float64 {
	key := fmt.Sprintf("%s_%d", symbol, days)
	h.cacheMu.RLock()
	defer h.cacheMu.RUnlock()
	if entry, ok := h.seriesCache[key]; ok && time.Since(entry.fetchedAt) < seriesCacheTtl {
		return entry.prices
	}
	return nil
}

func (h *priceServiceHandler) addToCache(symbol string, days int, prices []float64) {
	key := fmt.Sprintf("%s_%d", symbol, days)
	h.cacheMu.Lock()
	h.seriesCache[key] = cachedSeries{
		prices:    prices,
		fetchedAt: time.Now(),
	}
	h.cacheMu.Unlock()
}

func (h *priceServiceHandler) GetPriceHistory(ctx context.Context, symbols []string, days int) *domain.PriceHistory {
	log := logger.FromContext(ctx)
	if days <= 0 {
		days = 30
	}

	history := domain.NewPriceHistory()
	missing := []string{}

	for _, symbol := range symbols {
		if cached := h.getFromCache(symbol, days); cached != nil {
			history.AddSeries(symbol, cached, domain.PriceSourceLive)
			continue
		}

		prices, err := h.livePrices(ctx, symbol, days)
		if err == nil {
			h.addToCache(symbol, days, prices)
			history.AddSeries(symbol, prices, domain.PriceSourceLive)
			continue
		}
		log.Debugf("live fetch failed for %s: %v", symbol, err)

		prices, err = h.storedPrices(symbol, days)
		if err == nil {
			history.AddSeries(symbol, prices, domain.PriceSourceCache)
			continue
		}
		log.Debugf("cache lookup failed for %s: %v", symbol, err)

		missing = append(missing, symbol)
	}

	if len(missing) > 0 {
		log.Infof("generating synthetic prices for %v", missing)
		// generate over the full symbol set so the shared market series
		// and base prices do not depend on which symbols were missing
		synthetic := h.Synthetic.Generate(symbols, days)
		for _, symbol := range missing {
			history.AddSeries(symbol, synthetic.Series[symbol], domain.PriceSourceSynthetic)
		}
	}

	history.AlignToShortest()
	return history
}

// livePrices fetches from the provider and writes through to the
// database cache when one is configured.
func (h *priceServiceHandler) livePrices(ctx context.Context, symbol string, days int) ([]float64, error) {
	if h.PriceProvider == nil {
		return nil, fmt.Errorf("no price provider configured")
	}

	prices, err := h.PriceProvider.DailyHistory(ctx, symbol, days)
	if err != nil {
		return nil, err
	}

	if err := h.storePrices(symbol, prices, domain.PriceSourceLive); err != nil {
		logger.FromContext(ctx).Warnf("failed to store prices for %s: %v", symbol, err)
	}

	return prices, nil
}

func (h *priceServiceHandler) storedPrices(symbol string, days int) ([]float64, error) {
	if h.Db == nil || h.PriceHistoryRepository == nil {
		return nil, fmt.Errorf("no price cache configured")
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)
	assetPrices, err := h.PriceHistoryRepository.List(h.Db, symbol, start, end)
	if err != nil {
		return nil, err
	}
	// a single point cannot produce a return series
	if len(assetPrices) < 2 {
		return nil, fmt.Errorf("no cached prices for %s", symbol)
	}

	prices := make([]float64, len(assetPrices))
	for i, p := range assetPrices {
		prices[i] = p.Price
	}
	return prices, nil
}

func (h *priceServiceHandler) storePrices(symbol string, prices []float64, source domain.PriceSource) error {
	if h.Db == nil || h.PriceHistoryRepository == nil {
		return nil
	}

	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	rows := make([]model.PriceHistory, len(prices))
	for i, price := range prices {
		rows[i] = model.PriceHistory{
			Symbol:    symbol,
			Date:      end.AddDate(0, 0, -(len(prices) - 1 - i)),
			Price:     price,
			Source:    string(source),
			CreatedAt: now,
		}
	}

	return h.PriceHistoryRepository.Add(h.Db, rows)
}

func (h *priceServiceHandler) GetCurrentPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	if h.PriceProvider == nil || len(symbols) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	prices, err := h.PriceProvider.CurrentPrices(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to get current prices: %w", err)
	}

	return prices, nil
}

func (h *priceServiceHandler) UpdatePrices(ctx context.Context, symbols []string, days int) (int, error) {
	if h.Db == nil || h.PriceHistoryRepository == nil {
		return 0, fmt.Errorf("price cache requires a database connection")
	}
	if h.PriceProvider == nil {
		return 0, fmt.Errorf("no price provider configured")
	}
	if days <= 0 {
		days = 30
	}

	log := logger.FromContext(ctx)
	written := 0
	for _, symbol := range symbols {
		prices, err := h.PriceProvider.DailyHistory(ctx, symbol, days)
		if err != nil {
			log.Warnf("skipping %s: %v", symbol, err)
			continue
		}
		if err := h.storePrices(symbol, prices, domain.PriceSourceLive); err != nil {
			return written, fmt.Errorf("failed to store prices for %s: %w", symbol, err)
		}
		written += len(prices)
	}

	return written, nil
}
