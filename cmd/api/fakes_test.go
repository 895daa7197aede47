package main

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/categories"
	"storefront/internal/domain/dashboard"
	"storefront/internal/domain/products"
	"storefront/internal/domain/settings"
	"storefront/internal/mailer"
)

// memCatalog backs the category, product and dashboard fakes with one state
// so category deletes can null product references like the foreign key does.
type memCatalog struct {
	mu         sync.Mutex
	nextCat    int64
	nextProd   int64
	categories map[int64]*categories.Category
	products   map[int64]*products.Product
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		categories: map[int64]*categories.Category{},
		products:   map[int64]*products.Product{},
	}
}

type fakeCategories struct{ *memCatalog }

func (f fakeCategories) List(_ context.Context) ([]*categories.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*categories.Category, 0, len(f.categories))
	for _, c := range f.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f fakeCategories) GetByID(_ context.Context, id int64) (*categories.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.categories[id]
	if !ok {
		return nil, categories.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f fakeCategories) Create(_ context.Context, c *categories.Category) (*categories.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextCat++
	now := time.Now().UTC()
	stored := &categories.Category{ID: f.nextCat, Name: c.Name, Description: c.Description, CreatedAt: now, UpdatedAt: now}
	f.categories[stored.ID] = stored
	cp := *stored
	return &cp, nil
}

func (f fakeCategories) Update(_ context.Context, c *categories.Category) (*categories.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.categories[c.ID]
	if !ok {
		return nil, categories.ErrNotFound
	}
	if stored.Name != c.Name || stored.Description != c.Description {
		stored.Name, stored.Description = c.Name, c.Description
		stored.UpdatedAt = time.Now().UTC()
	}
	cp := *stored
	return &cp, nil
}

func (f fakeCategories) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.categories[id]; !ok {
		return categories.ErrNotFound
	}
	delete(f.categories, id)
	for _, p := range f.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
		}
	}
	return nil
}

type fakeProducts struct{ *memCatalog }

// view returns a copy with the joined category name, caller holds the lock.
func (f fakeProducts) view(p *products.Product) *products.Product {
	cp := *p
	cp.Variants = append([]products.Variant{}, p.Variants...)
	cp.CategoryName = nil
	if p.CategoryID != nil {
		if c, ok := f.categories[*p.CategoryID]; ok {
			name := c.Name
			cp.CategoryName = &name
		}
	}
	return &cp
}

func (f fakeProducts) List(_ context.Context, flt products.Filter) ([]*products.Product, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []*products.Product
	for _, p := range f.products {
		v := f.view(p)
		if flt.Category != "" && (v.CategoryName == nil || *v.CategoryName != flt.Category) {
			continue
		}
		if s := strings.ToLower(flt.Search); s != "" &&
			!strings.Contains(strings.ToLower(v.Name), s) &&
			!strings.Contains(strings.ToLower(v.Description), s) {
			continue
		}
		matched = append(matched, v)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := len(matched)
	out := make([]*products.Product, 0)
	if flt.Offset < total {
		end := min(flt.Offset+flt.Limit, total)
		out = append(out, matched[flt.Offset:end]...)
	}
	return out, total, nil
}

func (f fakeProducts) GetByID(_ context.Context, id int64) (*products.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[id]
	if !ok {
		return nil, products.ErrNotFound
	}
	return f.view(p), nil
}

func (f fakeProducts) Create(_ context.Context, p *products.Product) (*products.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p.CategoryID != nil {
		if _, ok := f.categories[*p.CategoryID]; !ok {
			return nil, products.ErrInvalidCategory
		}
	}

	f.nextProd++
	now := time.Now().UTC()
	stored := *p
	stored.ID = f.nextProd
	stored.CreatedAt, stored.UpdatedAt = now, now
	f.products[stored.ID] = &stored
	return f.view(&stored), nil
}

func (f fakeProducts) Update(_ context.Context, p *products.Product) (*products.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.products[p.ID]
	if !ok {
		return nil, products.ErrNotFound
	}
	if p.CategoryID != nil {
		if _, ok := f.categories[*p.CategoryID]; !ok {
			return nil, products.ErrInvalidCategory
		}
	}

	stored := *p
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()
	f.products[p.ID] = &stored
	return f.view(&stored), nil
}

func (f fakeProducts) Delete(_ context.Context, id int64) (*products.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[id]
	if !ok {
		return nil, products.ErrNotFound
	}
	delete(f.products, id)
	return p, nil
}

type fakeDashboard struct{ *memCatalog }

func (f fakeDashboard) GetStats(_ context.Context) (*dashboard.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := &dashboard.Stats{
		TotalProducts:   int64(len(f.products)),
		TotalCategories: int64(len(f.categories)),
		TotalValue:      decimal.Zero,
		AveragePrice:    decimal.Zero,
		CategoryStats:   []dashboard.CategoryStat{},
	}

	counts := map[int64]int64{}
	var uncategorized int64
	for _, p := range f.products {
		if p.InStock {
			s.InStockProducts++
			s.TotalValue = s.TotalValue.Add(p.Price)
		} else {
			s.OutOfStockProducts++
		}
		if p.CategoryID == nil {
			uncategorized++
		} else {
			counts[*p.CategoryID]++
		}
	}
	if s.InStockProducts > 0 {
		s.AveragePrice = s.TotalValue.Div(decimal.NewFromInt(s.InStockProducts)).Round(2)
	}

	for id, c := range f.categories {
		id := id
		s.CategoryStats = append(s.CategoryStats, dashboard.CategoryStat{CategoryID: &id, CategoryName: c.Name, ProductCount: counts[id]})
	}
	if uncategorized > 0 {
		s.CategoryStats = append(s.CategoryStats, dashboard.CategoryStat{CategoryName: dashboard.UncategorizedName, ProductCount: uncategorized})
	}
	sort.Slice(s.CategoryStats, func(i, j int) bool {
		a, b := s.CategoryStats[i], s.CategoryStats[j]
		if a.ProductCount != b.ProductCount {
			return a.ProductCount > b.ProductCount
		}
		return a.CategoryName < b.CategoryName
	})
	return s, nil
}

type fakeSettings struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeSettings() *fakeSettings { return &fakeSettings{values: map[string]string{}} }

func (f *fakeSettings) GetAll(_ context.Context) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out, nil
}

func (f *fakeSettings) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.values[key]
	if !ok {
		return "", settings.ErrNotFound
	}
	return v, nil
}

func (f *fakeSettings) UpsertMany(_ context.Context, values map[string]string) error {
	if err := settings.ValidateKeys(values); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for k, v := range values {
		f.values[k] = v
	}
	return nil
}

func (f *fakeSettings) SeedDefaults(_ context.Context, entries []settings.Entry, _ func(string, error)) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, e := range entries {
		if _, ok := f.values[e.Key]; !ok {
			f.values[e.Key] = e.Value
			n++
		}
	}
	return n
}

type sentMail struct {
	template string
	env      mailer.Envelope
	data     any
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(templateFile string, env mailer.Envelope, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{template: templateFile, env: env, data: data})
	return nil
}
