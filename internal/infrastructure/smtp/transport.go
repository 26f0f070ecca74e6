package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"invoicepilot/internal/config"
	"invoicepilot/internal/notification"
)

const (
	implicitTLSPort = 465
	defaultTimeout  = 10 * time.Second
)

type Transport struct {
	cfg    config.MailConfig
	dialer *net.Dialer
}

func NewTransport(cfg config.MailConfig) *Transport {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Transport{
		cfg:    cfg,
		dialer: &net.Dialer{Timeout: timeout},
	}
}

// Send delivers msg over one SMTP session. Port 465 uses implicit TLS, other
// ports upgrade with STARTTLS when the server offers it. Cancelling ctx closes
// the connection and aborts the session at whatever step it has reached.
func (t *Transport) Send(ctx context.Context, from string, msg notification.Message) error {
	raw, err := BuildMessage(from, msg, time.Now())
	if err != nil {
		return fmt.Errorf("building message: %w", err)
	}

	addr := net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))
	conn, err := t.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	err = t.session(conn, from, msg.Recipients(), raw)
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("smtp session aborted: %w", ctx.Err())
	}
	return err
}

func (t *Transport) session(conn net.Conn, from string, recipients []string, raw []byte) error {
	tlsConfig := &tls.Config{ServerName: t.cfg.Host}
	if t.cfg.Port == implicitTLSPort {
		conn = tls.Client(conn, tlsConfig)
	}

	client, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("starting smtp session: %w", err)
	}
	defer client.Close()

	if t.cfg.Port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}

	if t.cfg.Username != "" {
		auth := smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("authenticating: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt to %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finishing message: %w", err)
	}

	return client.Quit()
}
