package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/products"
	"storefront/internal/domain/settings"
	"storefront/internal/ordering"
)

// orderLinkHandler godoc
//
//	@Summary		WhatsApp order link
//	@Description	Builds a wa.me link with a prefilled order message for the product, addressed to the phone setting.
//	@Tags			products
//	@Produce		json
//	@Param			productID	path		int		true	"Product ID"
//	@Param			variant		query		string	false	"Variant name"
//	@Param			quantity	query		int		false	"Quantity"	default(1)
//	@Success		200			{object}	ordering.Link
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error
//	@Router			/products/{productID}/order-link [get]
func (app *application) orderLinkHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	q := r.URL.Query()
	quantity := 1
	if raw := strings.TrimSpace(q.Get("quantity")); raw != "" {
		quantity, err = strconv.Atoi(raw)
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("invalid quantity: %q", raw))
			return
		}
	}
	if quantity < 1 {
		app.badRequestResponse(w, r, ordering.ErrInvalidQuantity)
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
	if !p.InStock {
		app.conflictResponse(w, r, errors.New("product is out of stock"))
		return
	}

	order := ordering.Order{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		UnitPrice:   p.Price,
	}
	if name := q.Get("variant"); name != "" {
		v, ok := findVariant(p.Variants, name)
		if !ok {
			app.badRequestResponse(w, r, fmt.Errorf("unknown variant: %q", name))
			return
		}
		order.Variant = v.Name
		// a zero-priced variant sells at the product price
		if !v.Price.IsZero() {
			order.UnitPrice = v.Price
		}
	}

	phone, err := app.store.Settings.Get(ctx, "phone")
	if err != nil && !errors.Is(err, settings.ErrNotFound) {
		app.internalServerError(w, r, err)
		return
	}

	link, err := app.orders.Build(phone, order)
	if err != nil {
		if errors.Is(err, ordering.ErrNoPhone) {
			app.conflictResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, link)
}

func findVariant(vs []products.Variant, name string) (products.Variant, bool) {
	for _, v := range vs {
		if v.Name == name {
			return v, true
		}
	}
	return products.Variant{}, false
}
