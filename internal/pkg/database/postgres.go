package database

import (
	"fmt"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/models"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
)

// PostgresClient represents a PostgreSQL database client
type PostgresClient struct {
	db *sqlx.DB
}

// NewPostgresClient creates a new PostgreSQL client backed by the pgx
// stdlib driver.
func NewPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)

	db, err := sqlx.Connect("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	return &PostgresClient{db: db}, nil
}

// GetDB returns the underlying sqlx database handle
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// Close closes the database connection pool
func (p *PostgresClient) Close() error {
	return p.db.Close()
}
