package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one row of the append-only trade ledger. Quantity is
// signed: positive for buys, negative for sells. Amount is always the
// positive cash moved at execution.
type Transaction struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Symbol    string          `db:"symbol"`
	StockName string          `db:"stock_name"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}
