package settings

import "context"

// Defaults are written on first startup when the keys are absent. The set is
// open: any other key can be stored and read back.
var Defaults = []Entry{
	{Key: "company_name", Value: "Roti Marawa"},
	{Key: "email", Value: "info@rotimarawa.com"},
	{Key: "phone", Value: "+62 123 456 789"},
	{Key: "address", Value: "Jl. Roti Manis No. 123, Jakarta"},
	{Key: "instagram", Value: "@rotimarawa"},
	{Key: "about_us", Value: "Roti Marawa adalah toko roti yang telah berdiri sejak 1985..."},
	{Key: "operating_hours", Value: "7.30 - 22.00 WITA"},
}

type Entry struct {
	Key   string
	Value string
}

type Store interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, key string) (string, error)
	UpsertMany(ctx context.Context, values map[string]string) error
}
