package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	Addr         string
	MaxConns     int32
	MaxIdleTime  string
	ConnectLimit time.Duration
}

// New sets up a pgx connection pool and pings it once.
func New(cfg Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("parse db addr: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	if cfg.MaxIdleTime != "" {
		d, err := time.ParseDuration(cfg.MaxIdleTime)
		if err != nil {
			return nil, fmt.Errorf("parse max idle time: %w", err)
		}
		poolCfg.MaxConnIdleTime = d
	}

	limit := cfg.ConnectLimit
	if limit <= 0 {
		limit = 30 * time.Second
	}

	// Covers pool creation and the initial ping.
	ctx, cancel := context.WithTimeout(context.Background(), limit)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
