package repositories

import (
	"context"

	"finance/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StockRepository interface {
	GetAllByUserID(ctx context.Context, userID int) ([]models.Stock, error)
	GetByUserIDAndSymbol(ctx context.Context, userID int, symbol string, tx pgx.Tx) (*models.Stock, error)
	// Upsert inserts the holding on a first buy, otherwise adds the
	// bought quantity to the existing row.
	Upsert(ctx context.Context, s *models.Stock, tx pgx.Tx) error
	UpdateQuantity(ctx context.Context, id int, quantity int, tx pgx.Tx) error
	Delete(ctx context.Context, id int, tx pgx.Tx) error
}

type stockRepo struct {
	db *pgxpool.Pool
}

func NewStockRepository(db *pgxpool.Pool) StockRepository {
	return &stockRepo{db: db}
}

func (r *stockRepo) querier(tx pgx.Tx) dbtx {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *stockRepo) GetAllByUserID(ctx context.Context, userID int) ([]models.Stock, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, symbol, stock_name, quantity
		FROM stocks
		WHERE user_id = $1
		ORDER BY symbol`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stocks []models.Stock
	for rows.Next() {
		var s models.Stock
		if err := rows.Scan(&s.ID, &s.UserID, &s.Symbol, &s.StockName, &s.Quantity); err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}

func (r *stockRepo) GetByUserIDAndSymbol(ctx context.Context, userID int, symbol string, tx pgx.Tx) (*models.Stock, error) {
	query := `SELECT id, user_id, symbol, stock_name, quantity
		FROM stocks
		WHERE user_id = $1 AND symbol = $2`
	if tx != nil {
		// Inside a trade the row is locked until commit.
		query += ` FOR UPDATE`
	}

	var s models.Stock
	err := r.querier(tx).QueryRow(ctx, query, userID, symbol).
		Scan(&s.ID, &s.UserID, &s.Symbol, &s.StockName, &s.Quantity)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *stockRepo) Upsert(ctx context.Context, s *models.Stock, tx pgx.Tx) error {
	return r.querier(tx).QueryRow(ctx,
		`INSERT INTO stocks (user_id, symbol, stock_name, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, symbol) DO UPDATE SET
			quantity = stocks.quantity + EXCLUDED.quantity
		RETURNING id, quantity`,
		s.UserID, s.Symbol, s.StockName, s.Quantity,
	).Scan(&s.ID, &s.Quantity)
}

func (r *stockRepo) UpdateQuantity(ctx context.Context, id int, quantity int, tx pgx.Tx) error {
	_, err := r.querier(tx).Exec(ctx,
		`UPDATE stocks SET quantity = $1 WHERE id = $2`,
		quantity, id,
	)
	return err
}

func (r *stockRepo) Delete(ctx context.Context, id int, tx pgx.Tx) error {
	_, err := r.querier(tx).Exec(ctx,
		`DELETE FROM stocks WHERE id = $1`,
		id,
	)
	return err
}
