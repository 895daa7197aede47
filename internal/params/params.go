package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 12
	// MaxLimit and MaxPage only keep (page-1)*limit from overflowing; any
	// realistic page size is passed through as requested.
	MaxLimit = math.MaxInt32
	MaxPage  = math.MaxInt32
)

// URL: /products?page=2&limit=10
// → ParsePagination() → Pagination{Limit:10, Page:2, Offset:10}
// → SQL: ... LIMIT $n OFFSET $m
// → ComputeMeta(total) → TotalPages, HasNext, HasPrev
//
// Pagination holds the requested window and the metadata computed from the total.
type Pagination struct {
	Limit      int  `json:"itemsPerPage"`
	Offset     int  `json:"-"`
	Page       int  `json:"currentPage"`
	Total      int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNextPage"`
	HasPrev    bool `json:"hasPrevPage"`
}

// ParsePagination parses ?page=...&limit=... . Missing, malformed or
// non-positive values fall back to page 1 and defaultLimit. Values past
// MaxLimit/MaxPage are clamped. Keys are case sensitive.
func ParsePagination(q url.Values, defaultLimit int) Pagination {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}

	p := Pagination{
		Limit: defaultLimit,
		Page:  1,
	}

	if limitStr := strings.TrimSpace(q.Get("limit")); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
				p.Limit = defaultLimit
			case limit > MaxLimit:
				p.Limit = MaxLimit
			default:
				p.Limit = limit
			}
		}
	}

	if pageStr := strings.TrimSpace(q.Get("page")); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = min(page, MaxPage)
		}
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// ComputeMeta fills the metadata once the matching total is known.
// Page is echoed as requested, so a page past the end reports HasNext false
// and an empty item list rather than an error.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	p.TotalPages = 0
	if p.Limit > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = p.Page < p.TotalPages
}
