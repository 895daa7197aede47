package main

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/auth"
)

type loginPayload struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

// loginHandler godoc
//
//	@Summary		Admin login
//	@Description	Exchanges the admin credentials for a bearer token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		loginPayload	true	"Credentials"
//	@Success		200		{object}	tokenResponse
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		429		{object}	error
//	@Router			/auth/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, validationError(err))
		return
	}

	if err := app.admin.Check(payload.Username, payload.Password); err != nil {
		app.logger.Warnw("failed login", "username", payload.Username, "ip", clientIP(r))
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeJSONError(w, http.StatusUnauthorized, err.Error())
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	token, exp, err := app.authenticator.GenerateToken(payload.Username)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, tokenResponse{
		Token:     token,
		ExpiresAt: exp.UTC(),
		Username:  payload.Username,
	})
}
