// Package notification assembles the HTML emails the service sends and hands
// them to a mail transport.
package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"invoicepilot/internal/finance"
)

const (
	DefaultAppName      = "InvoicePilot"
	passwordResetExpiry = "1 hour"
)

type InvoiceEmailData struct {
	To            string
	InvoiceNumber string
	CustomerName  string
	CompanyName   string
	TotalAmount   float64
	DueDate       *time.Time
}

type Formatter struct {
	currencySymbol string
	now            func() time.Time
}

func NewFormatter(currencySymbol string, now func() time.Time) *Formatter {
	return &Formatter{currencySymbol: currencySymbol, now: now}
}

// InvoiceEmail builds the invoice delivery message. When pdf is non-empty it is
// attached as <invoiceNumber>.pdf.
func (f *Formatter) InvoiceEmail(data InvoiceEmailData, pdf []byte) (Message, error) {
	var dueDate string
	if data.DueDate != nil {
		dueDate = finance.FormatDate(*data.DueDate)
	}

	html, err := execute(invoiceTemplate, struct {
		CompanyName   string
		CustomerName  string
		InvoiceNumber string
		AmountDue     string
		DueDate       string
		HasAttachment bool
		Year          int
	}{
		CompanyName:   data.CompanyName,
		CustomerName:  data.CustomerName,
		InvoiceNumber: data.InvoiceNumber,
		AmountDue:     finance.FormatCurrency(data.TotalAmount, f.currencySymbol),
		DueDate:       dueDate,
		HasAttachment: len(pdf) > 0,
		Year:          f.now().Year(),
	})
	if err != nil {
		return Message{}, err
	}

	msg := Message{
		To:      data.To,
		Subject: "Invoice " + data.InvoiceNumber,
		HTML:    html,
	}
	if len(pdf) > 0 {
		msg.Attachments = []Attachment{{
			Filename:    data.InvoiceNumber + ".pdf",
			ContentType: PDFContentType,
			Content:     pdf,
		}}
	}
	return msg, nil
}

func (f *Formatter) PasswordResetEmail(to, resetLink, userName string) (Message, error) {
	html, err := execute(passwordResetTemplate, struct {
		UserName  string
		ResetLink string
		Expiry    string
	}{
		UserName:  userName,
		ResetLink: resetLink,
		Expiry:    passwordResetExpiry,
	})
	if err != nil {
		return Message{}, err
	}

	return Message{To: to, Subject: "Password Reset Request", HTML: html}, nil
}

// WelcomeEmail falls back to DefaultAppName when appName is empty.
func (f *Formatter) WelcomeEmail(to, userName, appName string) (Message, error) {
	if appName == "" {
		appName = DefaultAppName
	}

	html, err := execute(welcomeTemplate, struct {
		UserName string
		AppName  string
	}{
		UserName: userName,
		AppName:  appName,
	})
	if err != nil {
		return Message{}, err
	}

	return Message{To: to, Subject: "Welcome to " + appName, HTML: html}, nil
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", t.Name(), err)
	}
	return buf.String(), nil
}
