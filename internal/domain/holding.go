package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// downstream consumers read monetary fields as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Holding is a single priced token position in a wallet.
type Holding struct {
	Mint     string          `json:"mint"`
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	PriceUSD decimal.Decimal `json:"price_usd"`
	ValueUSD decimal.Decimal `json:"value_usd"`
	Decimals int32           `json:"decimals"`
	Weight   float64         `json:"weight"`
}

type Portfolio struct {
	WalletAddress string    `json:"wallet_address,omitempty"`
	Holdings      []Holding `json:"holdings"`
	FetchedAt     time.Time `json:"fetched_at"`
}

func (p Portfolio) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.Holdings {
		total = total.Add(h.ValueUSD)
	}
	return total
}

func (p Portfolio) Symbols() []string {
	symbols := make([]string, 0, len(p.Holdings))
	for _, h := range p.Holdings {
		symbols = append(symbols, h.Symbol)
	}
	return symbols
}

// TokenBalance is a raw wallet balance before pricing. Amount is already
// scaled by the mint's decimals.
type TokenBalance struct {
	Mint     string
	Symbol   string
	Name     string
	Amount   decimal.Decimal
	Decimals int32

	// ReferencePrice is the registry fallback, used when no live quote
	// resolves for the symbol.
	ReferencePrice decimal.Decimal
}
