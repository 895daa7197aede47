package main

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/products"
	"storefront/internal/images"
)

// form bodies carry at most one image plus text fields
const maxFormBytes = images.MaxUploadBytes + 1<<20

type productForm struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required,decimalgte0"`
	CategoryID  string `json:"category_id" validate:"omitempty,number"`
	Variants    string `json:"variants"`
	InStock     string `json:"in_stock"`
}

// parseRequestForm handles multipart and urlencoded bodies alike.
func parseRequestForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	ct := strings.ToLower(r.Header.Get("Content-Type"))
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				return images.ErrTooLarge
			}
			return fmt.Errorf("failed to parse form: %w", err)
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("failed to parse form: %w", err)
	}
	return nil
}

// readProductForm parses and validates the product fields. The returned file
// is nil when no image was sent; the caller closes it.
func readProductForm(w http.ResponseWriter, r *http.Request) (*products.Product, multipart.File, error) {
	if err := parseRequestForm(w, r, maxFormBytes); err != nil {
		return nil, nil, err
	}

	f := productForm{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: r.FormValue("description"),
		Price:       strings.TrimSpace(r.FormValue("price")),
		CategoryID:  strings.TrimSpace(r.FormValue("category_id")),
		Variants:    r.FormValue("variants"),
		InStock:     r.FormValue("in_stock"),
	}
	if err := Validate.Struct(f); err != nil {
		return nil, nil, validationError(err)
	}

	p, err := f.product()
	if err != nil {
		return nil, nil, err
	}

	if r.MultipartForm == nil {
		return p, nil, nil
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return p, nil, nil
		}
		return nil, nil, fmt.Errorf("read image: %w", err)
	}
	return p, file, nil
}

func (f productForm) product() (*products.Product, error) {
	price, err := decimal.NewFromString(f.Price)
	if err != nil {
		return nil, fmt.Errorf("price must be a number")
	}

	var categoryID *int64
	if f.CategoryID != "" {
		id, err := strconv.ParseInt(f.CategoryID, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid category_id: %q", f.CategoryID)
		}
		categoryID = &id
	}

	variants, err := products.ParseVariants(f.Variants)
	if err != nil {
		return nil, err
	}

	return &products.Product{
		Name:        f.Name,
		Description: f.Description,
		Price:       price.Round(2),
		CategoryID:  categoryID,
		Variants:    variants,
		InStock:     f.InStock != "false",
	}, nil
}
