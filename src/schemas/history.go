package schemas

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	ID        int             `json:"id"`
	Symbol    string          `json:"symbol"`
	StockName string          `json:"stockName"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}
