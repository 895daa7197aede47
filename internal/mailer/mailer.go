package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"text/template"
)

const (
	FromName               = "Storefront"
	ContactMessageTemplate = "contact_message.tmpl"
)

//go:embed "templates"
var FS embed.FS

// Envelope addresses one message. ReplyTo is optional.
type Envelope struct {
	ToName  string
	ToEmail string
	ReplyTo string
}

type Client interface {
	Send(templateFile string, env Envelope, data any) error
}

// ContactMessage is the data passed to ContactMessageTemplate.
type ContactMessage struct {
	CompanyName string
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
}

type rendered struct {
	subject string
	plain   string
	html    string
}

// render executes the subject, plainBody and htmlBody blocks of templateFile.
func render(templateFile string, data any) (*rendered, error) {
	path := "templates/" + templateFile

	tmpl, err := template.ParseFS(FS, path)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var subject, plain bytes.Buffer
	if err := tmpl.ExecuteTemplate(&subject, "subject", data); err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	if err := tmpl.ExecuteTemplate(&plain, "plainBody", data); err != nil {
		return nil, fmt.Errorf("render plain body: %w", err)
	}

	htmlTmpl, err := htmltemplate.ParseFS(FS, path)
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	var html bytes.Buffer
	if err := htmlTmpl.ExecuteTemplate(&html, "htmlBody", data); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}

	return &rendered{subject: subject.String(), plain: plain.String(), html: html.String()}, nil
}
