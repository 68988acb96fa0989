package controllers

import (
	"context"

	"finance/src/schemas"
	"finance/src/utils"
)

// GetQuote resolves one symbol to its live quote.
func (c *Controller) GetQuote(ctx context.Context, symbol string) (*schemas.QuoteResponse, error) {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return nil, utils.BadRequest("missing symbol")
	}
	quote, err := c.lookupQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return &schemas.QuoteResponse{
		Symbol: quote.Symbol,
		Name:   quote.Name,
		Price:  quote.Price,
	}, nil
}
