package handlers_test

import (
	"context"
	"time"

	"finance/src/api/controllers"
	"finance/src/clients/quotes"
	"finance/src/models"

	"github.com/go-chi/jwtauth"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// In-memory persistence doubles so the full HTTP stack can run under
// httptest without Postgres.

type memStore struct {
	users        map[int]*models.User
	stocks       map[int]*models.Stock
	transactions []models.Transaction
	nextUserID   int
	nextStockID  int
	nextTxID     int
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[int]*models.User),
		stocks: make(map[int]*models.Stock),
	}
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	r.s.nextUserID++
	u.ID = r.s.nextUserID
	u.Cash = decimal.NewFromInt(10000)
	u.CreatedAt = time.Now()
	clone := *u
	r.s.users[u.ID] = &clone
	return nil
}

func (r memUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *u
	return &clone, nil
}

func (r memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r memUserRepo) GetCashForUpdate(_ context.Context, id int, _ pgx.Tx) (decimal.Decimal, error) {
	u, ok := r.s.users[id]
	if !ok {
		return decimal.Zero, pgx.ErrNoRows
	}
	return u.Cash, nil
}

func (r memUserRepo) UpdateCash(_ context.Context, id int, cash decimal.Decimal, _ pgx.Tx) error {
	u, ok := r.s.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Cash = cash
	return nil
}

type memStockRepo struct{ s *memStore }

func (r memStockRepo) GetAllByUserID(_ context.Context, userID int) ([]models.Stock, error) {
	var out []models.Stock
	for _, st := range r.s.stocks {
		if st.UserID == userID {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (r memStockRepo) GetByUserIDAndSymbol(_ context.Context, userID int, symbol string, _ pgx.Tx) (*models.Stock, error) {
	for _, st := range r.s.stocks {
		if st.UserID == userID && st.Symbol == symbol {
			clone := *st
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r memStockRepo) Upsert(_ context.Context, s *models.Stock, _ pgx.Tx) error {
	for _, existing := range r.s.stocks {
		if existing.UserID == s.UserID && existing.Symbol == s.Symbol {
			existing.Quantity += s.Quantity
			s.ID = existing.ID
			s.Quantity = existing.Quantity
			return nil
		}
	}
	r.s.nextStockID++
	s.ID = r.s.nextStockID
	clone := *s
	r.s.stocks[s.ID] = &clone
	return nil
}

func (r memStockRepo) UpdateQuantity(_ context.Context, id int, quantity int, _ pgx.Tx) error {
	st, ok := r.s.stocks[id]
	if !ok {
		return pgx.ErrNoRows
	}
	st.Quantity = quantity
	return nil
}

func (r memStockRepo) Delete(_ context.Context, id int, _ pgx.Tx) error {
	delete(r.s.stocks, id)
	return nil
}

type memTransactionRepo struct{ s *memStore }

func (r memTransactionRepo) Create(_ context.Context, t *models.Transaction, _ pgx.Tx) error {
	r.s.nextTxID++
	t.ID = r.s.nextTxID
	t.CreatedAt = time.Now()
	r.s.transactions = append(r.s.transactions, *t)
	return nil
}

func (r memTransactionRepo) GetAllByUserID(_ context.Context, userID int) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range r.s.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

type memTransactor struct{}

func (memTransactor) WithTx(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type staticQuoteClient struct {
	prices map[string]quotes.Quote
}

func (c *staticQuoteClient) set(symbol, name, price string) {
	c.prices[symbol] = quotes.Quote{
		Symbol: symbol,
		Name:   name,
		Price:  decimal.RequireFromString(price),
	}
}

func (c *staticQuoteClient) Lookup(_ context.Context, symbol string) (*quotes.Quote, error) {
	q, ok := c.prices[symbol]
	if !ok {
		return nil, quotes.ErrSymbolNotFound
	}
	return &q, nil
}

func newMemController() (*controllers.Controller, *staticQuoteClient) {
	store := newMemStore()
	prices := &staticQuoteClient{prices: make(map[string]quotes.Quote)}
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)

	return &controllers.Controller{
		Users:        memUserRepo{store},
		Stocks:       memStockRepo{store},
		Transactions: memTransactionRepo{store},
		Transactor:   memTransactor{},
		Quotes:       prices,
		TokenAuth:    tokenAuth,
		SessionTTL:   time.Hour,
	}, prices
}
