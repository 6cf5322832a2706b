package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"joborder-agent/internal/config"

	_ "github.com/microsoft/go-mssqldb"
)

// Client wraps the SQL Server connection.
type Client struct {
	DB           *sql.DB
	queryTimeout time.Duration
}

// New opens a SQL Server connection pool from config.
func New(cfg config.DatabaseConfig) (*Client, error) {
	db, err := sql.Open("sqlserver", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlserver: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &Client{
		DB:           db,
		queryTimeout: config.GetDuration(cfg.QueryTimeout),
	}, nil
}

// queryContext derives the per-query deadline from the configured timeout.
func (c *Client) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.queryTimeout > 0 {
		return context.WithTimeout(ctx, c.queryTimeout)
	}
	return context.WithCancel(ctx)
}

// Ping tests the database connection.
func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Close closes the database connection.
func (c *Client) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
