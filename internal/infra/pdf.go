package infra

// pdf.go — purchase order confirmation rendering using go-pdf/fpdf.
// A single A4 page: header, order metadata, part and terms table, and the
// buyer/supplier identity block.

import (
	"bytes"
	"fmt"
	"time"

	"axonet/internal/dto"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// POPDF renders purchase order confirmations.
type POPDF struct{}

func NewPOPDF() *POPDF { return &POPDF{} }

func (p *POPDF) Render(po *dto.PurchaseOrderResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 36

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "AXO Networks", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Purchase Order Confirmation", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Order metadata ───────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("PO %s", po.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	issued := po.CreatedAt
	if t, err := time.Parse(time.RFC3339, po.CreatedAt); err == nil {
		issued = t.Format("02 Jan 2006 15:04")
	}
	pdf.CellFormat(contentW, 5, "Issued: "+issued, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Status: "+po.Status, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.Line(18, pdf.GetY(), pageW-18, pdf.GetY())
	pdf.Ln(3)

	// ── Part and terms ───────────────────────────────────────────────────────
	col1 := contentW * 0.4
	col2 := contentW * 0.6

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(col1, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(col2, 6, value, "", 1, "L", false, 0, "")
	}

	row("Part", po.PartName)
	row("Quantity", fmt.Sprintf("%d units", po.Quantity))
	row("Unit price", "$"+po.Price.StringFixed(2))
	row("Order total", "$"+po.Price.Mul(decimal.NewFromInt(int64(po.Quantity))).StringFixed(2))
	pdf.Ln(3)

	pdf.Line(18, pdf.GetY(), pageW-18, pdf.GetY())
	pdf.Ln(3)

	// ── Parties ──────────────────────────────────────────────────────────────
	row("Buyer", partyLine(po.BuyerName, po.BuyerEmail))
	row("Supplier", partyLine(po.SupplierName, po.SupplierEmail))

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "This order was generated by the AXO Networks sourcing platform.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}

func partyLine(name, email string) string {
	if email == "" {
		return name
	}
	return name + " <" + email + ">"
}
