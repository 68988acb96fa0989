package controllers

import (
	"context"
	"errors"
	"time"

	"finance/src/clients/quotes"
	"finance/src/repositories"
	"finance/src/utils"

	"github.com/go-chi/jwtauth"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Controller holds the business logic behind every route. Fields are
// exported so tests can assemble one from fakes.
type Controller struct {
	Users        repositories.UserRepository
	Stocks       repositories.StockRepository
	Transactions repositories.TransactionRepository
	Transactor   repositories.Transactor
	Quotes       quotes.Client
	TokenAuth    *jwtauth.JWTAuth
	SessionTTL   time.Duration
}

func NewController(db *pgxpool.Pool, quotesClient quotes.Client, tokenAuth *jwtauth.JWTAuth, sessionTTL time.Duration) *Controller {
	return &Controller{
		Users:        repositories.NewUserRepository(db),
		Stocks:       repositories.NewStockRepository(db),
		Transactions: repositories.NewTransactionRepository(db),
		Transactor:   repositories.NewTransactor(db),
		Quotes:       quotesClient,
		TokenAuth:    tokenAuth,
		SessionTTL:   sessionTTL,
	}
}

// lookupQuote maps quote client failures onto the error taxonomy: an
// unknown symbol is the caller's fault, anything else is the provider's.
func (c *Controller) lookupQuote(ctx context.Context, symbol string) (*quotes.Quote, error) {
	quote, err := c.Quotes.Lookup(ctx, symbol)
	if errors.Is(err, quotes.ErrSymbolNotFound) {
		return nil, utils.BadRequest("invalid stock symbol")
	}
	if err != nil {
		utils.LoggerFromContext(ctx).WithError(err).Warn("quote lookup failed")
		return nil, utils.BadGateway("quote lookup failed")
	}
	return quote, nil
}
