package schemas

import "github.com/shopspring/decimal"

type HoldingView struct {
	Symbol    string          `json:"symbol"`
	StockName string          `json:"stockName"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Value     decimal.Decimal `json:"value"`
	// PriceUnavailable marks rows whose live quote failed; their value
	// is zero and excluded from Total.
	PriceUnavailable bool `json:"priceUnavailable,omitempty"`
}

type PortfolioResponse struct {
	Cash     decimal.Decimal `json:"cash"`
	Total    decimal.Decimal `json:"total"`
	Holdings []HoldingView   `json:"holdings"`
}
