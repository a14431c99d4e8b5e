package repository

import (
	"fmt"
	"solrisk/internal/db/models/postgres/public/model"
	. "solrisk/internal/db/models/postgres/public/table"
	"solrisk/internal/domain"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type PriceHistoryRepository interface {
	Add(db qrm.Executable, prices []model.PriceHistory) error
	List(db qrm.Queryable, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
	ListSymbols(db qrm.Queryable) ([]string, error)
}

type priceHistoryRepositoryHandler struct{}

func NewPriceHistoryRepository() PriceHistoryRepository {
	return priceHistoryRepositoryHandler{}
}

func (h priceHistoryRepositoryHandler) Add(db qrm.Executable, prices []model.PriceHistory) error {
	if len(prices) == 0 {
		return nil
	}

	query := PriceHistory.
		INSERT(PriceHistory.MutableColumns).
		MODELS(prices).
		ON_CONFLICT(
			PriceHistory.Symbol, PriceHistory.Date,
		).DO_UPDATE(
		SET(
			PriceHistory.Price.SET(PriceHistory.EXCLUDED.Price),
			PriceHistory.Source.SET(PriceHistory.EXCLUDED.Source),
		),
	)

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add prices to db: %w", err)
	}

	return nil
}

func (h priceHistoryRepositoryHandler) List(db qrm.Queryable, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	query := PriceHistory.
		SELECT(PriceHistory.AllColumns).
		WHERE(
			AND(
				PriceHistory.Symbol.EQ(String(symbol)),
				PriceHistory.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(PriceHistory.Date.ASC())

	result := []model.PriceHistory{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	out := []domain.AssetPrice{}
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Symbol: p.Symbol,
			Date:   p.Date,
			Price:  p.Price,
		})
	}

	return out, nil
}

func (h priceHistoryRepositoryHandler) ListSymbols(db qrm.Queryable) ([]string, error) {
	query := PriceHistory.
		SELECT(PriceHistory.Symbol).
		GROUP_BY(PriceHistory.Symbol).
		ORDER_BY(PriceHistory.Symbol.ASC())

	result := []model.PriceHistory{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached symbols: %w", err)
	}

	out := []string{}
	for _, p := range result {
		out = append(out, p.Symbol)
	}

	return out, nil
}
