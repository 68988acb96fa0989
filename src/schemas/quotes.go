package schemas

import "github.com/shopspring/decimal"

type QuoteRequest struct {
	Symbol string `json:"symbol"`
}

type QuoteResponse struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}
