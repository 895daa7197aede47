// Package settings stores the storefront's flat key/value configuration
// (company name, contact details, opening hours, ...).
package settings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"storefront/internal/infra/dbx"
)

var (
	ErrNotFound   = errors.New("setting not found")
	ErrEmptyKey   = errors.New("setting key cannot be empty")
	ErrKeyTooLong = errors.New("setting key is longer than 255 characters")
)

const maxKeyLen = 255

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

func (r *Repository) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, `SELECT key_name, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := r.db.QueryRow(ctx, `SELECT value FROM settings WHERE key_name = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return v, nil
}

// ValidateKeys checks every key before anything is written.
func ValidateKeys(values map[string]string) error {
	for k := range values {
		if strings.TrimSpace(k) == "" {
			return ErrEmptyKey
		}
		if len(k) > maxKeyLen {
			return fmt.Errorf("%w: %q", ErrKeyTooLong, k[:32]+"...")
		}
	}
	return nil
}

// UpsertMany writes each key independently; keys not mentioned keep their
// value. All writes share one transaction, so a failure leaves every key as
// it was.
func (r *Repository) UpsertMany(ctx context.Context, values map[string]string) error {
	if err := ValidateKeys(values); err != nil {
		return err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	// stable lock order between concurrent writers
	sort.Strings(keys)

	return dbx.InTx(ctx, r.db, func(q dbx.Querier) error {
		for _, k := range keys {
			if err := upsert(ctx, q, k, values[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(ctx context.Context, q dbx.Querier, key, value string) error {
	_, err := q.Exec(ctx, `
		INSERT INTO settings (key_name, value)
		VALUES ($1, $2)
		ON CONFLICT (key_name) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert setting %q: %w", key, err)
	}
	return nil
}

// SeedDefaults inserts the entries whose keys are missing and never
// overwrites. A failing key is reported through onError and skipped.
func (r *Repository) SeedDefaults(ctx context.Context, entries []Entry, onError func(key string, err error)) int {
	inserted := 0
	for _, e := range entries {
		cmd, err := r.db.Exec(ctx, `
			INSERT INTO settings (key_name, value)
			VALUES ($1, $2)
			ON CONFLICT (key_name) DO NOTHING`,
			e.Key, e.Value,
		)
		if err != nil {
			if onError != nil {
				onError(e.Key, err)
			}
			continue
		}
		inserted += int(cmd.RowsAffected())
	}
	return inserted
}
