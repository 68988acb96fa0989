package database

import (
	"context"
	"fmt"

	"finance/src/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func SetupDB(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := DSN(cfg)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// DSN builds the connection string, preferring an explicit one from config.
func DSN(cfg *config.Config) string {
	if cfg.Databases.SQL.ConnectionString != "" {
		return cfg.Databases.SQL.ConnectionString
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Databases.SQL.Host,
		cfg.Databases.SQL.Username,
		cfg.Databases.SQL.Password,
		cfg.Databases.SQL.Database,
		cfg.Databases.SQL.Port)
}
