package controllers

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"finance/src/models"
	"finance/src/schemas"
	"finance/src/utils"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var sharesPattern = regexp.MustCompile(`^\d+$`)

// parseShares accepts only a plain positive integer literal.
func parseShares(raw string) (int, error) {
	if raw == "" {
		return 0, utils.BadRequest("missing shares")
	}
	if !sharesPattern.MatchString(raw) {
		return 0, utils.BadRequest("shares must be an integer")
	}
	shares, err := strconv.Atoi(raw)
	if err != nil {
		return 0, utils.BadRequest("shares must be an integer")
	}
	if shares <= 0 {
		return 0, utils.BadRequest("shares must be greater than or equal to 1")
	}
	return shares, nil
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Buy purchases shares at the live quote price. Cash debit, ledger
// append and holding upsert commit together or not at all.
func (c *Controller) Buy(ctx context.Context, userID int, req *schemas.TradeRequest) (*schemas.TradeResponse, error) {
	symbol := normalizeSymbol(req.Symbol)
	if symbol == "" {
		return nil, utils.BadRequest("missing symbol")
	}
	shares, err := parseShares(req.Shares.String())
	if err != nil {
		return nil, err
	}

	quote, err := c.lookupQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	cost := quote.Price.Mul(decimal.NewFromInt(int64(shares)))

	var remaining decimal.Decimal
	err = c.Transactor.WithTx(ctx, func(tx pgx.Tx) error {
		cash, err := c.Users.GetCashForUpdate(ctx, userID, tx)
		if err != nil {
			return err
		}
		if cost.GreaterThan(cash) {
			return utils.BadRequest("can't afford")
		}

		remaining = cash.Sub(cost)
		if err := c.Users.UpdateCash(ctx, userID, remaining, tx); err != nil {
			return err
		}
		if err := c.Transactions.Create(ctx, &models.Transaction{
			UserID:    userID,
			Symbol:    symbol,
			StockName: quote.Name,
			Quantity:  shares,
			UnitPrice: quote.Price,
			Amount:    cost,
		}, tx); err != nil {
			return err
		}
		return c.Stocks.Upsert(ctx, &models.Stock{
			UserID:    userID,
			Symbol:    symbol,
			StockName: quote.Name,
			Quantity:  shares,
		}, tx)
	})
	if err != nil {
		return nil, err
	}

	return &schemas.TradeResponse{
		Symbol:    symbol,
		StockName: quote.Name,
		Shares:    shares,
		UnitPrice: quote.Price,
		Amount:    cost,
		Cash:      remaining,
	}, nil
}

// Sell disposes shares at the live quote price, deleting the holding
// when the last share goes. Same atomicity as Buy.
func (c *Controller) Sell(ctx context.Context, userID int, req *schemas.TradeRequest) (*schemas.TradeResponse, error) {
	symbol := normalizeSymbol(req.Symbol)
	if symbol == "" {
		return nil, utils.BadRequest("missing symbol")
	}
	shares, err := parseShares(req.Shares.String())
	if err != nil {
		return nil, err
	}

	// Cheap pre-checks before the external lookup; re-verified under
	// the row lock below.
	held, err := c.Stocks.GetByUserIDAndSymbol(ctx, userID, symbol, nil)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.BadRequest("no such holding")
	}
	if err != nil {
		return nil, err
	}
	if shares > held.Quantity {
		return nil, utils.BadRequest("too many shares")
	}

	quote, err := c.lookupQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	proceeds := quote.Price.Mul(decimal.NewFromInt(int64(shares)))

	var remaining decimal.Decimal
	err = c.Transactor.WithTx(ctx, func(tx pgx.Tx) error {
		holding, err := c.Stocks.GetByUserIDAndSymbol(ctx, userID, symbol, tx)
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.BadRequest("no such holding")
		}
		if err != nil {
			return err
		}
		if shares > holding.Quantity {
			return utils.BadRequest("too many shares")
		}

		cash, err := c.Users.GetCashForUpdate(ctx, userID, tx)
		if err != nil {
			return err
		}
		remaining = cash.Add(proceeds)
		if err := c.Users.UpdateCash(ctx, userID, remaining, tx); err != nil {
			return err
		}
		if err := c.Transactions.Create(ctx, &models.Transaction{
			UserID:    userID,
			Symbol:    symbol,
			StockName: quote.Name,
			Quantity:  -shares,
			UnitPrice: quote.Price,
			Amount:    proceeds,
		}, tx); err != nil {
			return err
		}

		if shares == holding.Quantity {
			return c.Stocks.Delete(ctx, holding.ID, tx)
		}
		return c.Stocks.UpdateQuantity(ctx, holding.ID, holding.Quantity-shares, tx)
	})
	if err != nil {
		return nil, err
	}

	return &schemas.TradeResponse{
		Symbol:    symbol,
		StockName: quote.Name,
		Shares:    shares,
		UnitPrice: quote.Price,
		Amount:    proceeds,
		Cash:      remaining,
	}, nil
}

// GetBuyForm returns the cash balance the buy form displays.
func (c *Controller) GetBuyForm(ctx context.Context, userID int) (*schemas.BuyFormResponse, error) {
	user, err := c.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &schemas.BuyFormResponse{Cash: user.Cash}, nil
}

// GetSellForm returns the symbols the sell form offers.
func (c *Controller) GetSellForm(ctx context.Context, userID int) (*schemas.SellFormResponse, error) {
	stocks, err := c.Stocks.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	symbols := make([]string, 0, len(stocks))
	for _, s := range stocks {
		symbols = append(symbols, s.Symbol)
	}
	return &schemas.SellFormResponse{Symbols: symbols}, nil
}
