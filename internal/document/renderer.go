// Package document renders invoices into PDF documents laid out on fixed
// coordinates.
package document

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"invoicepilot/internal/domain"
	apperrors "invoicepilot/internal/errors"
	"invoicepilot/internal/finance"
)

const (
	footerText = "This is a computer-generated invoice. No signature required."

	fontFamily   = "Helvetica"
	maxNoteLines = 5
	noteLineStep = 11.0
)

type Renderer struct {
	currencySymbol string
	logger         *zap.Logger
}

func NewRenderer(currencySymbol string, logger *zap.Logger) *Renderer {
	return &Renderer{
		currencySymbol: currencySymbol,
		logger:         logger,
	}
}

// Render produces the finished PDF for one invoice.
func (r *Renderer) Render(doc domain.InvoiceDocument) ([]byte, error) {
	pdf, plan, err := r.build(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperrors.NewRenderError(fmt.Sprintf("writing invoice %s", doc.Invoice.InvoiceNumber), err)
	}

	r.logger.Debug("invoice rendered",
		zap.String("invoiceNumber", doc.Invoice.InvoiceNumber),
		zap.Int("items", len(doc.Items)),
		zap.Int("pages", plan.Pages),
		zap.Int("bytes", buf.Len()),
	)

	return buf.Bytes(), nil
}

func (r *Renderer) build(doc domain.InvoiceDocument) (*gofpdf.Fpdf, layout, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(marginLeft, topMargin, marginLeft)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Invoice "+doc.Invoice.InvoiceNumber, true)
	pdf.SetCreator("invoicepilot", true)

	_, pageHeight := pdf.GetPageSize()
	plan := planLayout(pageHeight, len(doc.Items), doc.Customer.HasGSTNumber(), doc.Invoice.Discount > 0, doc.Invoice.HasNotes())

	w := &pageWriter{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		page: 1,
	}

	// gofpdf restores the body font after the footer; the tracked size must follow.
	pdf.SetFooterFunc(func() {
		size := w.fontSize
		w.font("", 8)
		w.textIn(marginLeft, pageHeight-footerOffset, contentRight-marginLeft, "C", footerText)
		w.fontSize = size
	})
	pdf.AddPage()

	r.drawHeader(w, doc)
	r.drawItems(w, plan, doc.Items)
	r.drawTotals(w, plan, doc.Invoice)
	if plan.Notes != nil {
		r.drawNotes(w, *plan.Notes, *doc.Invoice.Notes)
	}

	if err := pdf.Error(); err != nil {
		return nil, plan, apperrors.NewRenderError(fmt.Sprintf("rendering invoice %s", doc.Invoice.InvoiceNumber), err)
	}

	return pdf, plan, nil
}

func (r *Renderer) drawHeader(w *pageWriter, doc domain.InvoiceDocument) {
	inv, company, customer := doc.Invoice, doc.Company, doc.Customer

	w.font("B", 24)
	w.text(marginLeft, 50, "INVOICE")

	phone := "N/A"
	if company.ContactPhone != nil && *company.ContactPhone != "" {
		phone = *company.ContactPhone
	}

	w.font("", 10)
	w.text(marginLeft, 100, company.Name)
	w.text(marginLeft, 120, company.Address)
	w.text(marginLeft, 140, "Email: "+company.ContactEmail)
	w.text(marginLeft, 160, "Phone: "+phone)
	w.text(marginLeft, 180, "GST Number: "+company.GSTNumber)

	due := "N/A"
	if inv.DueDate != nil {
		due = finance.FormatDate(*inv.DueDate)
	}

	w.text(metaColumnX, 100, "Invoice Number: "+inv.InvoiceNumber)
	w.text(metaColumnX, 120, "Invoice Date: "+finance.FormatDate(inv.CreatedAt))
	w.text(metaColumnX, 140, "Due Date: "+due)
	w.text(metaColumnX, 160, "Status: "+strings.ToUpper(string(inv.Status)))

	w.font("B", 12)
	w.text(marginLeft, 220, "Bill To:")

	w.font("", 10)
	w.text(marginLeft, 240, customer.Name)
	w.text(marginLeft, 260, customer.Address)
	w.text(marginLeft, 280, "Email: "+customer.Email)
	w.text(marginLeft, 300, "Phone: "+customer.Phone)
	if customer.HasGSTNumber() {
		w.text(marginLeft, 320, "GST Number: "+*customer.GSTNumber)
	}
}

func (r *Renderer) drawItems(w *pageWriter, plan layout, items []domain.LineItem) {
	top := plan.TableTop

	w.font("B", 10)
	w.text(marginLeft, top, "Description")
	w.text(280, top, "Qty")
	w.text(330, top, "Rate")
	w.text(420, top, "Amount")
	w.pdf.Line(marginLeft, top+15, contentRight, top+15)

	w.font("", 10)
	for i, item := range items {
		pos := plan.Rows[i]
		w.moveTo(pos.Page)
		w.textIn(marginLeft, pos.Y, 225, "L", w.fit(item.Name, 225))
		w.textIn(280, pos.Y, 40, "R", strconv.Itoa(item.Quantity))
		w.textIn(330, pos.Y, 80, "R", r.money(item.Price))
		w.textIn(420, pos.Y, 80, "R", r.money(item.Amount()))
	}
}

func (r *Renderer) drawTotals(w *pageWriter, plan layout, inv domain.Invoice) {
	t := plan.Totals
	w.moveTo(t.Page)

	w.pdf.Line(marginLeft, t.RuleY, contentRight, t.RuleY)

	w.font("", 10)
	w.textIn(320, t.SubtotalY, 90, "R", "Subtotal:")
	w.textIn(420, t.SubtotalY, 80, "R", r.money(inv.Subtotal))

	if inv.Discount > 0 {
		w.textIn(320, t.DiscountY, 90, "R", "Discount:")
		w.textIn(420, t.DiscountY, 80, "R", r.money(inv.Discount))
	}

	w.textIn(320, t.GSTY, 90, "R", "GST ("+strconv.FormatFloat(inv.GSTRate, 'f', -1, 64)+"%):")
	w.textIn(420, t.GSTY, 80, "R", r.money(inv.GSTAmount))

	w.font("B", 12)
	w.textIn(270, t.TotalY, 140, "R", "Total Amount Due:")
	w.textIn(420, t.TotalY, 80, "R", r.money(inv.TotalAmount))
}

func (r *Renderer) drawNotes(w *pageWriter, n notesPlan, notes string) {
	w.moveTo(n.Page)

	w.font("B", 10)
	w.text(marginLeft, n.LabelY, "Notes:")

	w.font("", 9)
	lines := w.pdf.SplitLines([]byte(w.tr(notes)), contentRight-marginLeft)
	for i, line := range lines {
		if i == maxNoteLines {
			break
		}
		w.pdf.SetXY(marginLeft, n.TextY+float64(i)*noteLineStep)
		w.pdf.CellFormat(contentRight-marginLeft, noteLineStep, string(line), "", 0, "L", false, 0, "")
	}
}

func (r *Renderer) money(amount float64) string {
	return finance.FormatCurrency(amount, r.currencySymbol)
}

// pageWriter draws top-left anchored text and tracks the current page so the
// layout plan can be followed without gofpdf's automatic page breaks.
type pageWriter struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	page     int
	fontSize float64
}

func (w *pageWriter) moveTo(page int) {
	for w.page < page {
		w.pdf.AddPage()
		w.page++
	}
}

func (w *pageWriter) font(style string, size float64) {
	w.pdf.SetFont(fontFamily, style, size)
	w.fontSize = size
}

func (w *pageWriter) text(x, y float64, s string) {
	w.textIn(x, y, 0, "L", s)
}

func (w *pageWriter) textIn(x, y, width float64, align, s string) {
	w.pdf.SetXY(x, y)
	w.pdf.CellFormat(width, w.fontSize, w.tr(s), "", 0, align, false, 0, "")
}

// fit shortens s with an ellipsis until it fits width at the current font.
func (w *pageWriter) fit(s string, width float64) string {
	if w.pdf.GetStringWidth(w.tr(s)) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if w.pdf.GetStringWidth(w.tr(candidate)) <= width {
			return candidate
		}
	}
	return ""
}
