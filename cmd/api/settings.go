package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/domain/settings"
)

// getSettingsHandler godoc
//
//	@Summary	Site settings
//	@Tags		settings
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	500	{object}	error
//	@Router		/settings [get]
func (app *application) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	all, err := app.store.Settings.GetAll(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, all)
}

// updateSettingsHandler godoc
//
//	@Summary		Update settings
//	@Description	Upserts every key in the body; keys that are not sent keep their value. Either all keys are written or none.
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		map[string]string	true	"Key/value pairs"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/settings [put]
func (app *application) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var payload map[string]string
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := settings.ValidateKeys(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := app.store.Settings.UpsertMany(ctx, payload); err != nil {
		if errors.Is(err, settings.ErrEmptyKey) || errors.Is(err, settings.ErrKeyTooLong) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}
	app.logger.Infow("settings updated", "admin", getAdminFromContext(r), "keys", len(payload))

	all, err := app.store.Settings.GetAll(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.messageResponse(w, http.StatusOK, "Settings updated successfully", all)
}
