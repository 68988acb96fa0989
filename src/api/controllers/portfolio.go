package controllers

import (
	"context"

	"finance/src/schemas"
	"finance/src/utils"

	"github.com/shopspring/decimal"
)

// GetPortfolio aggregates the user's holdings with live prices and the
// cash balance. A failed lookup for one symbol keeps the row with a
// zero price and marks it unavailable instead of failing the view; the
// grand total covers only priced rows.
func (c *Controller) GetPortfolio(ctx context.Context, userID int) (*schemas.PortfolioResponse, error) {
	user, err := c.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	stocks, err := c.Stocks.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := user.Cash
	holdings := make([]schemas.HoldingView, 0, len(stocks))
	for _, s := range stocks {
		view := schemas.HoldingView{
			Symbol:    s.Symbol,
			StockName: s.StockName,
			Quantity:  s.Quantity,
		}

		quote, err := c.Quotes.Lookup(ctx, s.Symbol)
		if err != nil {
			utils.LoggerFromContext(ctx).WithError(err).
				WithField("symbol", s.Symbol).Warn("portfolio price unavailable")
			view.PriceUnavailable = true
		} else {
			view.Price = quote.Price
			view.Value = quote.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
			total = total.Add(view.Value)
		}
		holdings = append(holdings, view)
	}

	return &schemas.PortfolioResponse{
		Cash:     user.Cash,
		Total:    total,
		Holdings: holdings,
	}, nil
}
