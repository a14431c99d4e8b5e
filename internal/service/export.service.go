package service

import (
	"fmt"
	"time"

	"solrisk/internal/domain"

	"github.com/gocarina/gocsv"
)

// ExportService serializes holdings for download.
type ExportService interface {
	// HoldingsCsv returns the CSV body and a suggested filename.
	HoldingsCsv(portfolio *domain.Portfolio) ([]byte, string, error)
}

type exportServiceHandler struct{}

func NewExportService() ExportService {
	return exportServiceHandler{}
}

type holdingCsvRow struct {
	Mint     string  `csv:"mint"`
	Symbol   string  `csv:"symbol"`
	Name     string  `csv:"name"`
	Amount   string  `csv:"amount"`
	PriceUSD string  `csv:"price_usd"`
	ValueUSD string  `csv:"value_usd"`
	Weight   float64 `csv:"weight"`
}

func (h exportServiceHandler) HoldingsCsv(portfolio *domain.Portfolio) ([]byte, string, error) {
	if portfolio == nil {
		return nil, "", fmt.Errorf("no portfolio to export")
	}

	rows := []holdingCsvRow{}
	for _, holding := range portfolio.Holdings {
		rows = append(rows, holdingCsvRow{
			Mint:     holding.Mint,
			Symbol:   holding.Symbol,
			Name:     holding.Name,
			Amount:   holding.Amount.String(),
			PriceUSD: holding.PriceUSD.String(),
			ValueUSD: holding.ValueUSD.String(),
			Weight:   holding.Weight,
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal holdings csv: %w", err)
	}

	prefix := portfolio.WalletAddress
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	filename := fmt.Sprintf("portfolio_%s_%s.csv", prefix, time.Now().UTC().Format("20060102_150405"))

	return out, filename, nil
}
