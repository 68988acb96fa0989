package quotes

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Quote is the externally sourced state of one symbol.
type Quote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// quoteResponse mirrors the provider's quote payload. The price comes
// through as a JSON number and is kept exact via json.Number.
type quoteResponse struct {
	Symbol      string      `json:"symbol"`
	CompanyName string      `json:"companyName"`
	LatestPrice json.Number `json:"latestPrice"`
}
