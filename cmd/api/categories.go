package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"storefront/internal/domain/categories"
)

type categoryPayload struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

// readCategoryPayload accepts a JSON body or a regular form post.
func readCategoryPayload(w http.ResponseWriter, r *http.Request) (*categoryPayload, error) {
	var p categoryPayload
	if isJSONRequest(r) {
		if err := readJSON(w, r, &p); err != nil {
			return nil, err
		}
	} else {
		if err := parseRequestForm(w, r, 1<<20); err != nil {
			return nil, err
		}
		p.Name = r.FormValue("name")
		p.Description = r.FormValue("description")
	}

	p.Name = strings.TrimSpace(p.Name)
	if err := Validate.Struct(p); err != nil {
		return nil, validationError(err)
	}
	return &p, nil
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", raw)
	}
	return id, nil
}

// listCategoriesHandler godoc
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}		categories.Category
//	@Failure	500	{object}	error
//	@Router		/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	list, err := app.store.Categories.List(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, list)
}

// getCategoryHandler godoc
//
//	@Summary	Get a category
//	@Tags		categories
//	@Produce	json
//	@Param		categoryID	path		int	true	"Category ID"
//	@Success	200			{object}	categories.Category
//	@Failure	400			{object}	error
//	@Failure	404			{object}	error
//	@Router		/categories/{categoryID} [get]
func (app *application) getCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "categoryID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := app.store.Categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			app.notFoundResponse(w, r, errors.New("Category not found"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, c)
}

// createCategoryHandler godoc
//
//	@Summary	Create a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		categoryPayload	true	"Category"
//	@Success	201		{object}	categories.Category
//	@Failure	400		{object}	error
//	@Failure	401		{object}	error
//	@Security	ApiKeyAuth
//	@Router		/categories [post]
func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	p, err := readCategoryPayload(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	created, err := app.store.Categories.Create(ctx, &categories.Category{
		Name:        p.Name,
		Description: p.Description,
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/categories/%d", created.ID))
	app.messageResponse(w, http.StatusCreated, "Category created successfully", created)
}

// updateCategoryHandler godoc
//
//	@Summary	Update a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		categoryID	path		int				true	"Category ID"
//	@Param		payload		body		categoryPayload	true	"Category"
//	@Success	200			{object}	categories.Category
//	@Failure	400			{object}	error
//	@Failure	404			{object}	error
//	@Security	ApiKeyAuth
//	@Router		/categories/{categoryID} [put]
func (app *application) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "categoryID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	p, err := readCategoryPayload(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := app.store.Categories.Update(ctx, &categories.Category{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
	})
	if err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			app.notFoundResponse(w, r, errors.New("Category not found"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.messageResponse(w, http.StatusOK, "Category updated successfully", updated)
}

// deleteCategoryHandler godoc
//
//	@Summary		Delete a category
//	@Description	Products in the category stay and become uncategorized.
//	@Tags			categories
//	@Produce		json
//	@Param			categoryID	path		int	true	"Category ID"
//	@Success		200			{object}	envelope
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/categories/{categoryID} [delete]
func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "categoryID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := app.store.Categories.Delete(ctx, id); err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			app.notFoundResponse(w, r, errors.New("Category not found"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.messageResponse(w, http.StatusOK, "Category deleted successfully", nil)
}
