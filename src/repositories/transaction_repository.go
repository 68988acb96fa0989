package repositories

import (
	"context"

	"finance/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository interface {
	// Create appends one ledger row. Ledger rows are never updated or
	// deleted afterwards.
	Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error
	GetAllByUserID(ctx context.Context, userID int) ([]models.Transaction, error)
}

type transactionRepo struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) querier(tx pgx.Tx) dbtx {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error {
	return r.querier(tx).QueryRow(ctx,
		`INSERT INTO transactions (user_id, symbol, stock_name, quantity, unit_price, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		t.UserID, t.Symbol, t.StockName, t.Quantity, t.UnitPrice, t.Amount,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *transactionRepo) GetAllByUserID(ctx context.Context, userID int) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, symbol, stock_name, quantity, unit_price, amount, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Symbol, &t.StockName, &t.Quantity, &t.UnitPrice, &t.Amount, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
