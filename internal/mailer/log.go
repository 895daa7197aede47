package mailer

import "go.uber.org/zap"

// LogMailer renders messages and writes them to the log instead of sending.
// Used when SMTP is not configured.
type LogMailer struct {
	logger *zap.SugaredLogger
}

func NewLogMailer(logger *zap.SugaredLogger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(templateFile string, env Envelope, data any) error {
	r, err := render(templateFile, data)
	if err != nil {
		return err
	}
	m.logger.Infow("email not sent (smtp disabled)",
		"to", env.ToEmail,
		"reply_to", env.ReplyTo,
		"subject", r.subject,
		"body", r.plain,
	)
	return nil
}
