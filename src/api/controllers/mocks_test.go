package controllers_test

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

// In-memory doubles for the persistence ports, mirroring the schema
// semantics the real repositories get from Postgres.

type fakeUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.Cash = decimal.NewFromInt(10000)
	u.CreatedAt = time.Now()
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetCashForUpdate(_ context.Context, id int, _ pgx.Tx) (decimal.Decimal, error) {
	u, ok := f.users[id]
	if !ok {
		return decimal.Zero, pgx.ErrNoRows
	}
	return u.Cash, nil
}

func (f *fakeUserRepo) UpdateCash(_ context.Context, id int, cash decimal.Decimal, _ pgx.Tx) error {
	u, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Cash = cash
	return nil
}

type fakeStockRepo struct {
	stocks map[int]*models.Stock
	nextID int
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: make(map[int]*models.Stock)}
}

func (f *fakeStockRepo) GetAllByUserID(_ context.Context, userID int) ([]models.Stock, error) {
	var out []models.Stock
	for _, s := range f.stocks {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) GetByUserIDAndSymbol(_ context.Context, userID int, symbol string, _ pgx.Tx) (*models.Stock, error) {
	for _, s := range f.stocks {
		if s.UserID == userID && s.Symbol == symbol {
			clone := *s
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStockRepo) Upsert(_ context.Context, s *models.Stock, _ pgx.Tx) error {
	for _, existing := range f.stocks {
		if existing.UserID == s.UserID && existing.Symbol == s.Symbol {
			existing.Quantity += s.Quantity
			s.ID = existing.ID
			s.Quantity = existing.Quantity
			return nil
		}
	}
	f.nextID++
	s.ID = f.nextID
	clone := *s
	f.stocks[s.ID] = &clone
	return nil
}

func (f *fakeStockRepo) UpdateQuantity(_ context.Context, id int, quantity int, _ pgx.Tx) error {
	s, ok := f.stocks[id]
	if !ok {
		return pgx.ErrNoRows
	}
	s.Quantity = quantity
	return nil
}

func (f *fakeStockRepo) Delete(_ context.Context, id int, _ pgx.Tx) error {
	delete(f.stocks, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions []models.Transaction
	nextID       int
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{}
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *models.Transaction, _ pgx.Tx) error {
	f.nextID++
	t.ID = f.nextID
	t.CreatedAt = time.Now()
	f.transactions = append(f.transactions, *t)
	return nil
}

func (f *fakeTransactionRepo) GetAllByUserID(_ context.Context, userID int) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range f.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// fakeTransactor runs the sequence without a real transaction; the
// fakes apply writes immediately, which is fine for the happy paths
// exercised here.
type fakeTransactor struct{}

func (fakeTransactor) WithTx(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeQuoteClient struct {
	quotes map[string]quotes.Quote
	errs   map[string]error
}

func newFakeQuoteClient() *fakeQuoteClient {
	return &fakeQuoteClient{
		quotes: make(map[string]quotes.Quote),
		errs:   make(map[string]error),
	}
}

func (f *fakeQuoteClient) setPrice(symbol, name string, price string) {
	f.quotes[symbol] = quotes.Quote{
		Symbol: symbol,
		Name:   name,
		Price:  decimal.RequireFromString(price),
	}
}

func (f *fakeQuoteClient) Lookup(_ context.Context, symbol string) (*quotes.Quote, error) {
	if err, ok := f.errs[symbol]; ok {
		return nil, err
	}
	q, ok := f.quotes[symbol]
	if !ok {
		return nil, quotes.ErrSymbolNotFound
	}
	return &q, nil
}

type testEnv struct {
	controller *controllers.Controller
	users      *fakeUserRepo
	stocks     *fakeStockRepo
	ledger     *fakeTransactionRepo
	prices     *fakeQuoteClient
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:  newFakeUserRepo(),
		stocks: newFakeStockRepo(),
		ledger: newFakeTransactionRepo(),
		prices: newFakeQuoteClient(),
	}
	env.controller = &controllers.Controller{
		Users:        env.users,
		Stocks:       env.stocks,
		Transactions: env.ledger,
		Transactor:   fakeTransactor{},
		Quotes:       env.prices,
		TokenAuth:    jwtauth.New("HS256", []byte("test-secret"), nil),
		SessionTTL:   time.Hour,
	}
	return env
}

func (e *testEnv) addUser(username string, hash string) *models.User {
	u := &models.User{Username: username, Hash: hash}
	_ = e.users.Create(context.Background(), u)
	return u
}
