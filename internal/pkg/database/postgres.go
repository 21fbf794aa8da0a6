package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// PostgresClient wraps a sqlx handle backed by the pgx driver
type PostgresClient struct {
	db *sqlx.DB
}

// BuildDSN renders the connection URL for config
func BuildDSN(config models.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)
}

// NewPostgresClient opens and verifies a connection pool
func NewPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	connConfig, err := pgx.ParseConfig(BuildDSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	db := sqlx.NewDb(stdlib.OpenDB(*connConfig), "pgx")

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostgresClient{db: db}, nil
}

// NewPostgresClientFromDB wraps an already opened handle
func NewPostgresClientFromDB(db *sqlx.DB) *PostgresClient {
	return &PostgresClient{db: db}
}

// GetDB returns the underlying sqlx handle
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// Ping checks the database is reachable
func (p *PostgresClient) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the connection pool
func (p *PostgresClient) Close() error {
	return p.db.Close()
}
