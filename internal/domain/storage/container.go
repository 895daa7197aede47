package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain/categories"
	"storefront/internal/domain/dashboard"
	"storefront/internal/domain/products"
	"storefront/internal/domain/settings"
)

// SettingsStore adds startup seeding to the settings read/write surface.
type SettingsStore interface {
	settings.Store
	SeedDefaults(ctx context.Context, entries []settings.Entry, onError func(key string, err error)) int
}

type Container struct {
	pool       *pgxpool.Pool
	Categories categories.Store
	Products   products.Store
	Settings   SettingsStore
	Dashboard  dashboard.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:       db,
		Categories: categories.NewRepository(db),
		Products:   products.NewRepository(db),
		Settings:   settings.NewRepository(db),
		Dashboard:  dashboard.NewRepository(db),
	}
}

// Ping checks the database behind the container.
func (c *Container) Ping(ctx context.Context) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil")
	}
	return c.pool.Ping(ctx)
}
