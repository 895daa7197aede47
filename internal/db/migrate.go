package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migration is a single embedded schema change, identified by its file name.
type Migration struct {
	Number  uint
	Version string
	SQL     string
}

// Source exposes the embedded migrations as a golang-migrate source.
func Source() (source.Driver, error) {
	return iofs.New(migrationsFS, "migrations")
}

// Migrations returns the embedded up migrations in apply order.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}

	var out []Migration
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		version := strings.TrimSuffix(e.Name(), ".up.sql")
		prefix, _, _ := strings.Cut(version, "_")
		n, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %s: bad number: %w", e.Name(), err)
		}
		body, err := fs.ReadFile(migrationsFS, "migrations/"+e.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{
			Number:  uint(n),
			Version: version,
			SQL:     string(body),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

// Migrate applies every embedded migration newer than the version recorded
// in schema_migrations and returns the versions applied by this call.
// conn is closed when Migrate returns. Cancelling ctx stops after the
// migration in flight.
func Migrate(ctx context.Context, conn *sql.DB) ([]string, error) {
	defer conn.Close()

	src, err := Source()
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			m.GracefulStop <- true
		case <-done:
		}
	}()

	before, err := currentVersion(m)
	if err != nil {
		return nil, err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		upErr = fmt.Errorf("apply migrations: %w", upErr)
	} else {
		upErr = nil
	}

	after, err := currentVersion(m)
	if err != nil {
		return nil, errors.Join(upErr, err)
	}

	applied, err := appliedBetween(before, after)
	if err != nil {
		return nil, err
	}
	if upErr == nil {
		upErr = ctx.Err()
	}
	return applied, upErr
}

func currentVersion(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		return v, fmt.Errorf("migration %d is dirty; fix the schema and force the version", v)
	}
	return v, nil
}

// appliedBetween lists the embedded versions in (before, after].
func appliedBetween(before, after uint) ([]string, error) {
	all, err := Migrations()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, m := range all {
		if m.Number > before && m.Number <= after {
			out = append(out, m.Version)
		}
	}
	return out, nil
}
