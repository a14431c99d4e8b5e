package domain

import "time"

type PriceSource string

const (
	PriceSourceLive      PriceSource = "live"
	PriceSourceCache     PriceSource = "cache"
	PriceSourceSynthetic PriceSource = "synthetic"
)

// AssetPrice is a single daily close, as stored in the price history cache.
type AssetPrice struct {
	Symbol string    `json:"symbol"`
	Price  float64   `json:"price"`
	Date   time.Time `json:"date"`
}

// PriceHistory is a column table of daily close series keyed by symbol,
// ordered oldest first. Series from mixed sources may start at different
// lengths; AlignToShortest must be called before correlating.
type PriceHistory struct {
	Symbols []string               `json:"symbols"`
	Series  map[string][]float64   `json:"series"`
	Sources map[string]PriceSource `json:"sources"`
}

func NewPriceHistory() *PriceHistory {
	return &PriceHistory{
		Symbols: []string{},
		Series:  map[string][]float64{},
		Sources: map[string]PriceSource{},
	}
}

func (p *PriceHistory) AddSeries(symbol string, prices []float64, source PriceSource) {
	if _, ok := p.Series[symbol]; !ok {
		p.Symbols = append(p.Symbols, symbol)
	}
	p.Series[symbol] = prices
	p.Sources[symbol] = source
}

// Len is the common series length. Call after AlignToShortest; before
// alignment it reports the shortest series.
func (p *PriceHistory) Len() int {
	if len(p.Symbols) == 0 {
		return 0
	}
	minLen := -1
	for _, prices := range p.Series {
		if minLen < 0 || len(prices) < minLen {
			minLen = len(prices)
		}
	}
	return minLen
}

// AlignToShortest drops the oldest observations of longer series so that
// every series has the same length.
func (p *PriceHistory) AlignToShortest() {
	minLen := p.Len()
	for symbol, prices := range p.Series {
		if len(prices) > minLen {
			p.Series[symbol] = prices[len(prices)-minLen:]
		}
	}
}

// Returns converts a price series to daily percentage returns, dropping
// the first observation. Series shorter than 2 prices yield no returns.
func (p *PriceHistory) Returns(symbol string) []float64 {
	prices := p.Series[symbol]
	if len(prices) < 2 {
		return []float64{}
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
	}
	return returns
}
