package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/products"
	"storefront/internal/images"
	"storefront/internal/params"
)

// withImageURL resolves image_path into a client usable URL.
func (app *application) withImageURL(p *products.Product) *products.Product {
	p.ImageURL = app.images.URL(p.ImagePath)
	return p
}

// uploadImage stores the image from a product form. Validation failures are
// reported to the client as 400.
func (app *application) uploadImage(ctx context.Context, w http.ResponseWriter, r *http.Request, file io.Reader) (string, bool) {
	ref, err := app.images.Upload(ctx, file)
	if err != nil {
		if errors.Is(err, images.ErrUnsupportedType) || errors.Is(err, images.ErrTooLarge) {
			app.badRequestResponse(w, r, err)
			return "", false
		}
		app.internalServerError(w, r, fmt.Errorf("upload image: %w", err))
		return "", false
	}
	return ref, true
}

// productWriteError maps store errors from create and update.
func (app *application) productWriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, products.ErrNotFound):
		app.notFoundResponse(w, r, errors.New("Product not found"))
	case errors.Is(err, products.ErrInvalidCategory):
		app.badRequestResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}

// listProductsHandler godoc
//
//	@Summary		List products
//	@Description	Newest first. category matches the category name exactly, search matches name or description.
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Category name"
//	@Param			search		query		string	false	"Search text"
//	@Param			page		query		int		false	"Page number"		default(1)
//	@Param			limit		query		int		false	"Items per page"	default(12)
//	@Success		200			{array}		products.Product
//	@Failure		500			{object}	error
//	@Router			/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query()
	p := params.ParsePagination(q, params.DefaultLimit)

	filter := products.Filter{
		Category: strings.TrimSpace(q.Get("category")),
		Search:   strings.TrimSpace(q.Get("search")),
		Limit:    p.Limit,
		Offset:   p.Offset,
	}

	items, total, err := app.store.Products.List(ctx, filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	for _, it := range items {
		app.withImageURL(it)
	}

	p.ComputeMeta(total)
	app.pagedResponse(w, items, p)
}

// getProductHandler godoc
//
//	@Summary	Get a product
//	@Tags		products
//	@Produce	json
//	@Param		productID	path		int	true	"Product ID"
//	@Success	200			{object}	products.Product
//	@Failure	400			{object}	error
//	@Failure	404			{object}	error
//	@Router		/products/{productID} [get]
func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	p, err := app.store.Products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			app.notFoundResponse(w, r, errors.New("Product not found"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, app.withImageURL(p))
}

// createProductHandler godoc
//
//	@Summary	Create a product
//	@Tags		products
//	@Accept		mpfd
//	@Produce	json
//	@Param		name		formData	string	true	"Name"
//	@Param		description	formData	string	false	"Description (HTML allowed)"
//	@Param		price		formData	string	true	"Price"
//	@Param		category_id	formData	int		false	"Category ID"
//	@Param		variants	formData	string	false	"JSON array of {name, price}"
//	@Param		in_stock	formData	string	false	"false marks the product out of stock"
//	@Param		image		formData	file	false	"Product image (jpeg, png, webp, gif)"
//	@Success	201			{object}	products.Product
//	@Failure	400			{object}	error
//	@Failure	401			{object}	error
//	@Security	ApiKeyAuth
//	@Router		/products [post]
func (app *application) createProductHandler(w http.ResponseWriter, r *http.Request) {
	p, file, err := readProductForm(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if file != nil {
		defer file.Close()
		ref, ok := app.uploadImage(ctx, w, r, file)
		if !ok {
			return
		}
		p.ImagePath = &ref
	}

	created, err := app.store.Products.Create(ctx, p)
	if err != nil {
		app.images.Discard(context.WithoutCancel(ctx), p.ImagePath)
		app.productWriteError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/products/%d", created.ID))
	app.messageResponse(w, http.StatusCreated, "Product created successfully", app.withImageURL(created))
}

// updateProductHandler godoc
//
//	@Summary		Update a product
//	@Description	Replaces all fields. The current image is kept unless a new one is uploaded, in which case the old file is removed.
//	@Tags			products
//	@Accept			mpfd
//	@Produce		json
//	@Param			productID	path		int		true	"Product ID"
//	@Param			name		formData	string	true	"Name"
//	@Param			description	formData	string	false	"Description (HTML allowed)"
//	@Param			price		formData	string	true	"Price"
//	@Param			category_id	formData	int		false	"Category ID"
//	@Param			variants	formData	string	false	"JSON array of {name, price}"
//	@Param			in_stock	formData	string	false	"false marks the product out of stock"
//	@Param			image		formData	file	false	"Replacement image"
//	@Success		200			{object}	products.Product
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/products/{productID} [put]
func (app *application) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	p, file, err := readProductForm(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()
	if file != nil {
		defer file.Close()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	existing, err := app.store.Products.GetByID(ctx, id)
	if err != nil {
		app.productWriteError(w, r, err)
		return
	}

	p.ID = id
	p.ImagePath = existing.ImagePath

	var newRef *string
	if file != nil {
		ref, ok := app.uploadImage(ctx, w, r, file)
		if !ok {
			return
		}
		newRef = &ref
		p.ImagePath = newRef
	}

	updated, err := app.store.Products.Update(ctx, p)
	if err != nil {
		app.images.Discard(context.WithoutCancel(ctx), newRef)
		app.productWriteError(w, r, err)
		return
	}

	// the record now points at the new file
	if newRef != nil {
		app.images.Discard(context.WithoutCancel(ctx), existing.ImagePath)
	}

	app.messageResponse(w, http.StatusOK, "Product updated successfully", app.withImageURL(updated))
}

// deleteProductHandler godoc
//
//	@Summary	Delete a product and its image
//	@Tags		products
//	@Produce	json
//	@Param		productID	path		int	true	"Product ID"
//	@Success	200			{object}	envelope
//	@Failure	404			{object}	error
//	@Security	ApiKeyAuth
//	@Router		/products/{productID} [delete]
func (app *application) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	deleted, err := app.store.Products.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			app.notFoundResponse(w, r, errors.New("Product not found"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.images.Discard(context.WithoutCancel(ctx), deleted.ImagePath)

	app.messageResponse(w, http.StatusOK, "Product deleted successfully", nil)
}
