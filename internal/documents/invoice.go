package documents

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"staffpay/internal/domain/finance"
	"staffpay/internal/domain/roster"
	"staffpay/internal/domain/settings"
)

// Invoice carries everything the renderer needs: the engine supplies the
// numbers, the rosters supply display names, and company settings supply
// currency, VAT rate and bank details. VAT is applied here, downstream of
// the calculation engine.
type Invoice struct {
	Number     string
	Month      finance.Month
	Client     roster.ClientCompany
	Company    settings.CompanySettings
	Lines      []finance.CalculatedRecord
	NurseNames map[string]string
}

// Subtotal is the billed sum across all invoice lines.
func (inv Invoice) Subtotal() float64 {
	var subtotal float64
	for _, line := range inv.Lines {
		subtotal += line.BilledAmount
	}
	return subtotal
}

// VAT returns the tax on the subtotal at the company rate.
func (inv Invoice) VAT() float64 {
	return inv.Subtotal() * inv.Company.VATRate / 100
}

// Total is the subtotal plus VAT.
func (inv Invoice) Total() float64 {
	return inv.Subtotal() + inv.VAT()
}

// BuildInvoicePDF renders a client invoice for one month.
func BuildInvoicePDF(inv Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Invoice")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Invoice No: %s", inv.Number))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Billing Period: %s", inv.Month.Label()))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("From: %s", inv.Company.CompanyName))
	if inv.Company.CompanyTRN != "" {
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("TRN: %s", inv.Company.CompanyTRN))
	}
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Bill To: %s", inv.Client.Name))
	if inv.Client.TRN != "" {
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("Client TRN: %s", inv.Client.TRN))
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 7, "Nurse", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Period", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "Days", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("Amount (%s)", inv.Company.Currency), "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range inv.Lines {
		nurse, ok := inv.NurseNames[line.NurseID]
		if !ok {
			nurse = "Unknown Nurse"
		}
		period := fmt.Sprintf("%s - %s",
			line.StartDate.Format("2006-01-02"),
			line.EndDate.Format("2006-01-02"),
		)
		pdf.CellFormat(60, 7, nurse, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, period, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", line.DaysWorked), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", line.BilledAmount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.CellFormat(130, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("%.2f %s", inv.Subtotal(), inv.Company.Currency), "", 0, "R", false, 0, "")
	pdf.Ln(6)
	pdf.CellFormat(130, 7, fmt.Sprintf("VAT (%.1f%%)", inv.Company.VATRate), "", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("%.2f %s", inv.VAT(), inv.Company.Currency), "", 0, "R", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 8, "Total Due", "", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f %s", inv.Total(), inv.Company.Currency), "", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	if inv.Company.BankName != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Bank: %s", inv.Company.BankName))
		pdf.Ln(5)
	}
	if inv.Company.BankAccountNumber != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Account: %s", inv.Company.BankAccountNumber))
		pdf.Ln(5)
	}
	if inv.Company.IBAN != "" {
		pdf.Cell(0, 6, fmt.Sprintf("IBAN: %s", inv.Company.IBAN))
		pdf.Ln(5)
	}
	if inv.Company.ContactNote != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, inv.Company.ContactNote, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
