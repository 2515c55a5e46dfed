package documents

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"staffpay/internal/domain/finance"
	"staffpay/internal/domain/settings"
)

// BuildStatementPDF renders the monthly financial statement: company
// totals followed by the per-client profitability table.
func BuildStatementPDF(company settings.CompanySettings, financials finance.MonthlyFinancials, breakdown []finance.ClientBreakdown) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Financial Statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, company.CompanyName)
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s", financials.Month.Label()))
	pdf.Ln(10)

	totals := []struct {
		label string
		value float64
	}{
		{"Billed Income", financials.BilledIncome},
		{"Nurse Expenses", financials.NurseExpenses},
		{"Gross Profit", financials.GrossProfit},
		{"Staff Cost", financials.StaffCost},
		{"Net Profit", financials.NetProfit},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range totals {
		pdf.CellFormat(90, 7, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, fmt.Sprintf("%.2f %s", row.value, company.Currency), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.CellFormat(90, 7, "Profit Margin", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, fmt.Sprintf("%.2f%%", financials.ProfitMargin), "", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Client Breakdown")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 7, "Client", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Income", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 7, "Expenses", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "Profit", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 7, "Margin", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range breakdown {
		pdf.CellFormat(60, 7, entry.ClientName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", entry.Income), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", entry.Expenses), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", entry.Profit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%.1f%%", entry.Margin), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
