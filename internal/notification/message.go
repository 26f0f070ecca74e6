package notification

import (
	"context"

	"go.uber.org/zap"
)

const PDFContentType = "application/pdf"

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type Message struct {
	To          string
	CC          []string
	BCC         []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Recipients returns every envelope recipient: To, CC and BCC.
func (m Message) Recipients() []string {
	rcpt := make([]string, 0, 1+len(m.CC)+len(m.BCC))
	rcpt = append(rcpt, m.To)
	rcpt = append(rcpt, m.CC...)
	rcpt = append(rcpt, m.BCC...)
	return rcpt
}

// Transport delivers an assembled message.
type Transport interface {
	Send(ctx context.Context, from string, msg Message) error
}

// LogTransport only logs the message. Used when no SMTP host is configured.
type LogTransport struct {
	logger *zap.Logger
}

func NewLogTransport(logger *zap.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Send(ctx context.Context, from string, msg Message) error {
	t.logger.Info("email not delivered, no SMTP transport configured",
		zap.String("from", from),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("attachments", len(msg.Attachments)),
	)
	return nil
}
