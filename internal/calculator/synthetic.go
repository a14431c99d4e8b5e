package calculator

import (
	"solrisk/internal/domain"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SyntheticConfig seeds the fallback price generator. The seed is fixed
// per call, not process-global, so two calls with the same symbols and
// window produce identical series.
type SyntheticConfig struct {
	Seed uint64
}

func DefaultSyntheticConfig() SyntheticConfig {
	return SyntheticConfig{Seed: 42}
}

// SyntheticPriceGenerator produces deterministic stand-in price series
// when live history is unavailable for a symbol set.
type SyntheticPriceGenerator interface {
	Generate(symbols []string, days int) *domain.PriceHistory
}

type syntheticPriceHandler struct {
	Config SyntheticConfig
}

func NewSyntheticPriceGenerator(config SyntheticConfig) SyntheticPriceGenerator {
	return syntheticPriceHandler{Config: config}
}

// Generate draws one base return series first, then derives each symbol in
// input order: SOL takes the base series, stablecoins get near-zero noise,
// everything else blends the base series with independent noise at a
// per-symbol coefficient in [0.4, 0.8]. Prices random-walk from
// 100*(index+1).
func (h syntheticPriceHandler) Generate(symbols []string, days int) *domain.PriceHistory {
	history := domain.NewPriceHistory()
	if len(symbols) == 0 || days <= 0 {
		return history
	}

	rng := rand.New(rand.NewSource(h.Config.Seed))
	baseDist := distuv.Normal{Mu: 0.001, Sigma: 0.05, Src: rng}
	stableDist := distuv.Normal{Mu: 0.0001, Sigma: 0.001, Src: rng}
	noiseDist := distuv.Normal{Mu: 0.001, Sigma: 0.08, Src: rng}

	base := make([]float64, days)
	for t := range base {
		base[t] = baseDist.Rand()
	}

	for i, symbol := range symbols {
		returns := make([]float64, days)
		switch {
		case symbol == "SOL":
			copy(returns, base)
		case symbol == "USDC" || symbol == "USDT":
			for t := range returns {
				returns[t] = stableDist.Rand()
			}
		default:
			blend := 0.6 + (rng.Float64()*0.4 - 0.2)
			for t := range returns {
				returns[t] = blend*base[t] + (1-blend)*noiseDist.Rand()
			}
		}

		prices := make([]float64, days)
		prices[0] = 100 * float64(i+1)
		for t := 1; t < days; t++ {
			prices[t] = prices[t-1] * (1 + returns[t])
		}
		history.AddSeries(symbol, prices, domain.PriceSourceSynthetic)
	}

	return history
}
