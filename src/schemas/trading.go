package schemas

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TradeRequest is the body of POST /buy and POST /sell. Shares is a
// json.Number so both `"10"` and `10` are accepted, while the share
// count can still be rejected unless it is a plain positive integer
// literal.
type TradeRequest struct {
	Symbol string      `json:"symbol"`
	Shares json.Number `json:"shares"`
}

type TradeResponse struct {
	Symbol    string          `json:"symbol"`
	StockName string          `json:"stockName"`
	Shares    int             `json:"shares"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Amount    decimal.Decimal `json:"amount"`
	Cash      decimal.Decimal `json:"cash"`
}

// BuyFormResponse carries what the buy form shows before submitting.
type BuyFormResponse struct {
	Cash decimal.Decimal `json:"cash"`
}

// SellFormResponse lists the symbols the user can sell.
type SellFormResponse struct {
	Symbols []string `json:"symbols"`
}
