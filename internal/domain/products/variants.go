package products

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidVariants = errors.New("invalid variants")

type rawVariant struct {
	Name  string          `json:"name"`
	Price json.RawMessage `json:"price"`
}

// ParseVariants decodes the variants form field: a JSON array of
// {name, price}. Price may be a JSON number or a numeric string. Rows with
// both a blank name and a blank price are dropped; any other row needs a
// non-empty name and a non-negative price. Order is preserved.
func ParseVariants(raw string) ([]Variant, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []Variant{}, nil
	}

	var in []rawVariant
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVariants, err)
	}

	out := make([]Variant, 0, len(in))
	for i, rv := range in {
		name := strings.TrimSpace(rv.Name)
		priceText, err := priceLiteral(rv.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: variant %d: %v", ErrInvalidVariants, i+1, err)
		}

		if name == "" && priceText == "" {
			continue
		}
		if name == "" {
			return nil, fmt.Errorf("%w: variant %d: name is required", ErrInvalidVariants, i+1)
		}
		if priceText == "" {
			return nil, fmt.Errorf("%w: variant %q: price is required", ErrInvalidVariants, name)
		}

		price, err := decimal.NewFromString(priceText)
		if err != nil {
			return nil, fmt.Errorf("%w: variant %q: price %q is not a number", ErrInvalidVariants, name, priceText)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("%w: variant %q: price must not be negative", ErrInvalidVariants, name)
		}

		out = append(out, Variant{Name: name, Price: price})
	}

	return out, nil
}

func priceLiteral(msg json.RawMessage) (string, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 || bytes.Equal(msg, []byte("null")) {
		return "", nil
	}
	if msg[0] == '"' {
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}

	var n json.Number
	if err := json.Unmarshal(msg, &n); err != nil {
		return "", fmt.Errorf("price must be a number")
	}
	return n.String(), nil
}

func encodeVariants(v []Variant) ([]byte, error) {
	if v == nil {
		v = []Variant{}
	}
	return json.Marshal(v)
}

// decodeVariants turns the stored JSON into the ordered list; NULL or empty
// storage yields an empty, non-nil slice.
func decodeVariants(b []byte) ([]Variant, error) {
	out := []Variant{}
	if len(bytes.TrimSpace(b)) == 0 || bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode variants: %w", err)
	}
	if out == nil {
		out = []Variant{}
	}
	return out, nil
}
