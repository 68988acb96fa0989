package controllers

import (
	"context"

	"finance/src/schemas"
)

// GetHistory lists the user's ledger in insertion order.
func (c *Controller) GetHistory(ctx context.Context, userID int) ([]schemas.TransactionResponse, error) {
	transactions, err := c.Transactions.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	history := make([]schemas.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		history = append(history, schemas.TransactionResponse{
			ID:        t.ID,
			Symbol:    t.Symbol,
			StockName: t.StockName,
			Quantity:  t.Quantity,
			UnitPrice: t.UnitPrice,
			Amount:    t.Amount,
			CreatedAt: t.CreatedAt,
		})
	}
	return history, nil
}
