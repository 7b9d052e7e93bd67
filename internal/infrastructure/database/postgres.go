package database

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig holds the configuration for the database connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	PoolLimits
}

// PoolLimits sizes the pool. Zero fields keep the pgxpool defaults.
type PoolLimits struct {
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// URL returns the connection settings as a postgres:// URL.
func (c PoolConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host + ":" + strconv.Itoa(c.Port),
		Path:   "/" + c.Database,
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
	}
	return u.String()
}

// NewPostgres creates a new PostgreSQL connection pool.
func NewPostgres(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	return Open(ctx, cfg.URL(), cfg.PoolLimits)
}

// Open connects to the database at dsn and pings it before returning the pool.
func Open(ctx context.Context, dsn string, limits PoolLimits) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	limits.apply(poolConfig)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

func (l PoolLimits) apply(cfg *pgxpool.Config) {
	if l.MaxConns > 0 {
		cfg.MaxConns = l.MaxConns
	}
	if l.MinConns > 0 {
		cfg.MinConns = l.MinConns
	}
	if l.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = l.MaxConnLifetime
	}
	if l.MaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = l.MaxConnIdleTime
	}
	if l.HealthCheckPeriod > 0 {
		cfg.HealthCheckPeriod = l.HealthCheckPeriod
	}
}
