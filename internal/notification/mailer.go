package notification

import (
	"context"

	"go.uber.org/zap"

	apperrors "invoicepilot/internal/errors"
)

// Mailer formats messages and hands them to a Transport. It does not retry;
// a transport failure is returned as *errors.DeliveryError.
type Mailer struct {
	transport Transport
	formatter *Formatter
	from      string
	logger    *zap.Logger
}

func NewMailer(transport Transport, formatter *Formatter, from string, logger *zap.Logger) *Mailer {
	return &Mailer{
		transport: transport,
		formatter: formatter,
		from:      from,
		logger:    logger,
	}
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if err := m.transport.Send(ctx, m.from, msg); err != nil {
		m.logger.Error("error sending email", zap.String("to", msg.To), zap.String("subject", msg.Subject), zap.Error(err))
		return apperrors.NewDeliveryError(err)
	}

	m.logger.Info("email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func (m *Mailer) SendInvoiceEmail(ctx context.Context, data InvoiceEmailData, pdf []byte) error {
	msg, err := m.formatter.InvoiceEmail(data, pdf)
	if err != nil {
		return err
	}
	return m.Send(ctx, msg)
}

func (m *Mailer) SendPasswordResetEmail(ctx context.Context, to, resetLink, userName string) error {
	msg, err := m.formatter.PasswordResetEmail(to, resetLink, userName)
	if err != nil {
		return err
	}
	return m.Send(ctx, msg)
}

func (m *Mailer) SendWelcomeEmail(ctx context.Context, to, userName, appName string) error {
	msg, err := m.formatter.WelcomeEmail(to, userName, appName)
	if err != nil {
		return err
	}
	return m.Send(ctx, msg)
}
