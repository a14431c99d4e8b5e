package calculator

// AssetProfileProvider supplies per-asset annualized volatility and
// expected-return estimates for the risk formulas. The static
// implementation is a placeholder model keyed by symbol; a historical
// estimator can be swapped in without touching the formulas.
type AssetProfileProvider interface {
	Volatility(symbol string) float64
	ExpectedReturn(symbol string) float64
}

const (
	defaultVolatility     = 0.5
	defaultExpectedReturn = 0.15
)

var tokenVolatilities = map[string]float64{
	"SOL":   0.6,
	"USDC":  0.01,
	"USDT":  0.01,
	"RAY":   0.8,
	"SRM":   0.7,
	"ORCA":  0.75,
	"MNGO":  0.8,
	"STEP":  0.7,
	"COPE":  0.9,
	"FIDA":  0.8,
	"KIN":   0.6,
	"MAPS":  0.8,
	"OXY":   0.8,
	"PORT":  0.7,
	"ROPE":  0.8,
	"SAMO":  0.9,
	"SLIM":  0.8,
	"SNY":   0.7,
	"TULIP": 0.8,
	"LIQ":   0.7,
}

// annualized expected returns; stablecoins sit near the risk-free rate
var tokenExpectedReturns = map[string]float64{
	"SOL":   0.15,
	"USDC":  0.03,
	"USDT":  0.03,
	"RAY":   0.25,
	"SRM":   0.20,
	"ORCA":  0.22,
	"MNGO":  0.30,
	"STEP":  0.20,
	"COPE":  0.35,
	"FIDA":  0.25,
	"KIN":   0.15,
	"MAPS":  0.25,
	"OXY":   0.25,
	"PORT":  0.20,
	"ROPE":  0.30,
	"SAMO":  0.40,
	"SLIM":  0.25,
	"SNY":   0.20,
	"TULIP": 0.25,
	"LIQ":   0.20,
}

type staticAssetProfileHandler struct{}

func NewStaticAssetProfileProvider() AssetProfileProvider {
	return staticAssetProfileHandler{}
}

func (h staticAssetProfileHandler) Volatility(symbol string) float64 {
	if v, ok := tokenVolatilities[symbol]; ok {
		return v
	}
	return defaultVolatility
}

func (h staticAssetProfileHandler) ExpectedReturn(symbol string) float64 {
	if r, ok := tokenExpectedReturns[symbol]; ok {
		return r
	}
	return defaultExpectedReturn
}
