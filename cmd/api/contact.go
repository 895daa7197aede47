package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/mailer"
)

type contactPayload struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"max=30"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// contactHandler godoc
//
//	@Summary		Send a contact message
//	@Description	Relays the message by email to the address in the email setting.
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		contactPayload	true	"Message"
//	@Success		200		{object}	envelope
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error
//	@Failure		429		{object}	error
//	@Router			/contact [post]
func (app *application) contactHandler(w http.ResponseWriter, r *http.Request) {
	var p contactPayload
	if err := readJSON(w, r, &p); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Message = strings.TrimSpace(p.Message)
	if err := Validate.Struct(p); err != nil {
		app.badRequestResponse(w, r, validationError(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	site, err := app.store.Settings.GetAll(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	to := strings.TrimSpace(site["email"])
	if to == "" {
		app.conflictResponse(w, r, errors.New("contact email is not configured"))
		return
	}

	data := mailer.ContactMessage{
		CompanyName: site["company_name"],
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Subject:     p.Subject,
		Message:     p.Message,
	}
	env := mailer.Envelope{ToName: site["company_name"], ToEmail: to, ReplyTo: p.Email}

	if err := app.mailer.Send(mailer.ContactMessageTemplate, env, data); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.messageResponse(w, http.StatusOK, "Message sent successfully", nil)
}
