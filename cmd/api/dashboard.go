package main

import (
	"context"
	"net/http"
	"time"
)

// dashboardStatsHandler godoc
//
//	@Summary		Dashboard statistics
//	@Description	Product and category totals, stock counts, in-stock value and average price, and products per category.
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	dashboard.Stats
//	@Failure		401	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/dashboard/stats [get]
func (app *application) dashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 12*time.Second)
	defer cancel()

	stats, err := app.store.Dashboard.GetStats(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, stats)
}
