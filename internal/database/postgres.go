package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// PostgresDB manages the database connection to PostgreSQL
type PostgresDB struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// NewPostgresDB creates a new connection pool to PostgreSQL
func NewPostgresDB(ctx context.Context, dbURL string, maxConns int) (*PostgresDB, error) {
	if dbURL == "" {
		return nil, errors.New("database URL is empty")
	}

	// Create a connection pool
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	if maxConns > 0 {
		config.MaxConns = int32(maxConns)
	}

	// Establish the connection pool
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresDB{pool: pool, sqlDB: stdlib.OpenDBFromPool(pool)}, nil
}

// SQLDB exposes the pool through database/sql for the repository and migrations
func (db *PostgresDB) SQLDB() *sql.DB {
	return db.sqlDB
}

// Ping checks that the database is reachable
func (db *PostgresDB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close closes the database handle and its connection pool
func (db *PostgresDB) Close() {
	if db.sqlDB != nil {
		_ = db.sqlDB.Close()
	}
	if db.pool != nil {
		db.pool.Close()
	}
}
