package service

import (
	"fmt"
	"time"

	"solrisk/internal/domain"

	charts "github.com/vicanso/go-charts/v2"
)

// ChartService renders portfolio visuals as PNGs.
type ChartService interface {
	RenderAllocationPie(portfolio *domain.Portfolio) ([]byte, error)
	RenderPriceHistoryLines(history *domain.PriceHistory) ([]byte, error)
}

type chartServiceHandler struct{}

func NewChartService() ChartService {
	return chartServiceHandler{}
}

func (h chartServiceHandler) RenderAllocationPie(portfolio *domain.Portfolio) ([]byte, error) {
	if portfolio == nil || len(portfolio.Holdings) == 0 {
		return nil, fmt.Errorf("no holdings to chart")
	}

	values := []float64{}
	labels := []string{}
	for _, holding := range portfolio.Holdings {
		values = append(values, holding.ValueUSD.InexactFloat64())
		labels = append(labels, holding.Symbol)
	}

	painter, err := charts.PieRender(
		values,
		charts.TitleTextOptionFunc("Portfolio Allocation"),
		charts.LegendLabelsOptionFunc(labels),
		charts.PieSeriesShowLabel(),
		charts.WidthOptionFunc(800),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render allocation chart: %w", err)
	}

	buf, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode allocation chart: %w", err)
	}

	return buf, nil
}

func (h chartServiceHandler) RenderPriceHistoryLines(history *domain.PriceHistory) ([]byte, error) {
	if history == nil || len(history.Symbols) == 0 || history.Len() == 0 {
		return nil, fmt.Errorf("no price history to chart")
	}

	values := [][]float64{}
	for _, symbol := range history.Symbols {
		values = append(values, history.Series[symbol])
	}

	days := history.Len()
	end := time.Now().UTC()
	xAxis := make([]string, days)
	for i := range xAxis {
		xAxis[i] = end.AddDate(0, 0, -(days - 1 - i)).Format(time.DateOnly)
	}

	painter, err := charts.LineRender(
		values,
		charts.TitleTextOptionFunc("Price History"),
		charts.XAxisDataOptionFunc(xAxis),
		charts.LegendLabelsOptionFunc(history.Symbols),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render price history chart: %w", err)
	}

	buf, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode price history chart: %w", err)
	}

	return buf, nil
}
