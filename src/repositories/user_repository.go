package repositories

import (
	"context"

	"finance/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// GetCashForUpdate locks the user row for the duration of tx so
	// concurrent trades for the same user serialize on the balance.
	GetCashForUpdate(ctx context.Context, id int, tx pgx.Tx) (decimal.Decimal, error)
	UpdateCash(ctx context.Context, id int, cash decimal.Decimal, tx pgx.Tx) error
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) querier(tx pgx.Tx) dbtx {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (username, hash) VALUES ($1, $2)
		RETURNING id, cash, created_at`,
		u.Username, u.Hash,
	).Scan(&u.ID, &u.Cash, &u.CreatedAt)
}

func (r *userRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, hash, cash, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.Hash, &u.Cash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, hash, cash, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Hash, &u.Cash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetCashForUpdate(ctx context.Context, id int, tx pgx.Tx) (decimal.Decimal, error) {
	var cash decimal.Decimal
	err := r.querier(tx).QueryRow(ctx,
		`SELECT cash FROM users WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&cash)
	return cash, err
}

func (r *userRepo) UpdateCash(ctx context.Context, id int, cash decimal.Decimal, tx pgx.Tx) error {
	_, err := r.querier(tx).Exec(ctx,
		`UPDATE users SET cash = $1 WHERE id = $2`,
		cash, id,
	)
	return err
}
