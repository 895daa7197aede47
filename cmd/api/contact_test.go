package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/mailer"
)

func TestContact(t *testing.T) {
	env := newTestApplication(t)

	msg := contactPayload{Name: "Sari", Email: "sari@example.com", Subject: "Pesanan", Message: "Apakah bisa kirim ke Bogor?"}

	t.Run("no shop email", func(t *testing.T) {
		rr, _ := env.do(t, jsonRequest(http.MethodPost, "/api/contact", msg))
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Empty(t, env.mailer.sent)
	})

	require.NoError(t, env.settings.UpsertMany(testContext(t), map[string]string{
		"email":        "toko@example.com",
		"company_name": "Roti Marawa",
	}))

	t.Run("invalid email", func(t *testing.T) {
		bad := msg
		bad.Email = "bukan-email"
		rr, body := env.do(t, jsonRequest(http.MethodPost, "/api/contact", bad))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "email must be a valid email address", body.Message)
	})

	t.Run("sent", func(t *testing.T) {
		rr, body := env.do(t, jsonRequest(http.MethodPost, "/api/contact", msg))
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Equal(t, "Message sent successfully", body.Message)

		require.Len(t, env.mailer.sent, 1)
		sent := env.mailer.sent[0]
		assert.Equal(t, mailer.ContactMessageTemplate, sent.template)
		assert.Equal(t, "toko@example.com", sent.env.ToEmail)
		assert.Equal(t, "sari@example.com", sent.env.ReplyTo)

		data, ok := sent.data.(mailer.ContactMessage)
		require.True(t, ok)
		assert.Equal(t, "Roti Marawa", data.CompanyName)
		assert.Equal(t, msg.Message, data.Message)
	})
}
