package models

// Stock is one user's current position in a single symbol. A row exists
// only while the owned quantity is positive.
type Stock struct {
	ID        int    `db:"id"`
	UserID    int    `db:"user_id"`
	Symbol    string `db:"symbol"`
	StockName string `db:"stock_name"`
	Quantity  int    `db:"quantity"`
}
