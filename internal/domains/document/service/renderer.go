package service

//go:generate go run go.uber.org/mock/mockgen -source=./renderer.go -destination=../mocks/renderer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/internal/domains/document/model"
	"hotelpos/shared/constant"
	"hotelpos/shared/timezone"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	fontFamily = "Helvetica"

	ticketWidth  = 80.0
	ticketMargin = 4.0

	displayDateTime = "02/01/2006 15:04"
)

// Renderer turns billing documents into PDF bytes.
type Renderer interface {
	Invoice(ctx context.Context, invoice model.Invoice) ([]byte, error)
	Ticket(ctx context.Context, ticket model.Ticket) ([]byte, error)
}

type rendererImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func NewRenderer(cfg *config.Config, otel otel.Otel) Renderer {
	return &rendererImpl{
		cfg:  cfg,
		otel: otel,
	}
}

func (r *rendererImpl) money(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " " + r.cfg.App.Currency
}

func (r *rendererImpl) Invoice(ctx context.Context, invoice model.Invoice) (res []byte, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelDocumentScopeName, constant.OtelDocumentScopeName+".Invoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(contentW, 10, tr(r.cfg.App.HotelName), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(contentW, 6, tr("Invoice "+invoice.StayID), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, "Issued "+timezone.Format(invoice.AsOf, displayDateTime), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "B", 11)
	pdf.CellFormat(contentW, 6, tr(invoice.GuestName), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Room %s (%s)", invoice.RoomNumber, invoice.RoomType)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Check-in %s, billed until %s",
		timezone.Format(invoice.CheckedInAt, displayDateTime), timezone.Format(invoice.AsOf, displayDateTime)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	col := []float64{contentW * 0.46, contentW * 0.12, contentW * 0.21, contentW * 0.21}

	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(235, 235, 235)

	for i, header := range []string{"Description", "Qty", "Unit price", "Amount"} {
		align := "R"
		if i == 0 {
			align = "L"
		}

		pdf.CellFormat(col[i], 7, header, "B", 0, align, true, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont(fontFamily, "", 10)

	row := func(name, qty, unit, amount string) {
		pdf.CellFormat(col[0], 6, tr(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(col[1], 6, qty, "", 0, "R", false, 0, "")
		pdf.CellFormat(col[2], 6, unit, "", 0, "R", false, 0, "")
		pdf.CellFormat(col[3], 6, amount, "", 1, "R", false, 0, "")
	}

	row("Accommodation", fmt.Sprintf("%d", invoice.Nights), r.money(invoice.NightlyRate), r.money(invoice.RoomCost))

	for _, line := range invoice.Lines {
		row(line.Name, fmt.Sprintf("%d", line.Quantity), r.money(line.UnitPrice), r.money(line.Subtotal))
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	total := func(label string, amount decimal.Decimal, style string) {
		pdf.SetFont(fontFamily, style, 10)
		pdf.CellFormat(col[0]+col[1]+col[2], 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(col[3], 6, r.money(amount), "", 1, "R", false, 0, "")
	}

	total("Room", invoice.RoomCost, "")
	total("Services", invoice.Services, "")
	total("Total due", invoice.Total, "B")

	if invoice.Paid != nil {
		total("Paid", *invoice.Paid, "B")
	}

	pdf.Ln(8)
	pdf.SetFont(fontFamily, "I", 9)
	pdf.CellFormat(contentW, 5, tr("Prepared by "+invoice.IssuedBy), "", 1, "L", false, 0, "")

	return r.output(pdf, model.KindInvoice, invoice.StayID)
}

func (r *rendererImpl) Ticket(ctx context.Context, ticket model.Ticket) (res []byte, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelDocumentScopeName, constant.OtelDocumentScopeName+".Ticket")
	defer scope.End()
	defer scope.TraceIfError(err)

	// header, meta, one row per line, totals, footer
	height := 70 + float64(len(ticket.Lines))*5

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: ticketWidth, Ht: height},
	})
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(ticketMargin, ticketMargin, ticketMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	contentW := ticketWidth - 2*ticketMargin

	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(contentW, 7, tr(r.cfg.App.HotelName), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 7)
	pdf.CellFormat(contentW, 4, "Ticket "+ticket.OrderID, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4, timezone.Format(ticket.OrderedAt, displayDateTime), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4, tr("Served by "+ticket.Operator), "", 1, "C", false, 0, "")

	if ticket.RoomNumber != "" {
		pdf.CellFormat(contentW, 4, tr(fmt.Sprintf("Room %s, %s", ticket.RoomNumber, ticket.GuestName)), "", 1, "C", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(ticketMargin, pdf.GetY(), ticketWidth-ticketMargin, pdf.GetY())
	pdf.Ln(2)

	nameW, qtyW, amountW := contentW*0.52, contentW*0.14, contentW*0.34

	pdf.SetFont(fontFamily, "B", 7)
	pdf.CellFormat(nameW, 5, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(qtyW, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(amountW, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont(fontFamily, "", 7)

	for _, line := range ticket.Lines {
		name := line.Name
		if len([]rune(name)) > 24 {
			name = string([]rune(name)[:23]) + "."
		}

		pdf.CellFormat(nameW, 5, tr(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(qtyW, 5, fmt.Sprintf("x%d", line.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(amountW, 5, r.money(line.Subtotal), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(ticketMargin, pdf.GetY(), ticketWidth-ticketMargin, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "B", 9)
	pdf.CellFormat(nameW+qtyW, 6, "TOTAL", "", 0, "L", false, 0, "")
	pdf.CellFormat(amountW, 6, r.money(ticket.Total), "", 1, "R", false, 0, "")

	pdf.SetFont(fontFamily, "", 7)
	pdf.CellFormat(nameW+qtyW, 4, "Payment ("+ticket.PaymentMethod+")", "", 0, "L", false, 0, "")
	pdf.CellFormat(amountW, 4, ticket.PaymentStatus, "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont(fontFamily, "I", 7)
	pdf.CellFormat(contentW, 4, "Thank you for your visit", "", 1, "C", false, 0, "")

	return r.output(pdf, model.KindTicket, ticket.OrderID)
}

func (r *rendererImpl) output(pdf *fpdf.Fpdf, kind, id string) ([]byte, error) {
	var buf bytes.Buffer

	if err := pdf.Output(&buf); err != nil {
		log.Error().Err(err).Str("kind", kind).Str("id", id).Msg("failed to render pdf")

		return nil, fmt.Errorf("failed to render %s pdf: %w", kind, err)
	}

	return buf.Bytes(), nil
}
