package payroll

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"staffpay/internal/domain/finance"
)

// Placeholder labels for records whose roster entry was deleted upstream.
const (
	unknownNurse  = "Unknown Nurse"
	unknownClient = "Unknown Client"
)

var exportHeader = []string{
	"Payroll ID",
	"Month",
	"Nurse",
	"Client",
	"Start Date",
	"End Date",
	"Days Worked",
	"Contract Amount",
	"Billed Amount",
	"Nurse Salary",
	"Transportation",
	"Overtime Days",
	"Overtime Amount",
	"Fines / Deductions",
	"Payable Amount",
	"Profit",
}

func exportRow(record finance.CalculatedRecord, nurseNames, clientNames map[string]string) []string {
	nurse, ok := nurseNames[record.NurseID]
	if !ok {
		nurse = unknownNurse
	}
	client, ok := clientNames[record.ClientID]
	if !ok {
		client = unknownClient
	}
	return []string{
		record.ID,
		record.Month.String(),
		nurse,
		client,
		record.StartDate.Format("2006-01-02"),
		record.EndDate.Format("2006-01-02"),
		strconv.Itoa(record.DaysWorked),
		fmt.Sprintf("%.2f", record.ContractAmount),
		fmt.Sprintf("%.2f", record.BilledAmount),
		fmt.Sprintf("%.2f", record.BaseSalaryAmount),
		fmt.Sprintf("%.2f", record.TransportationAmount),
		strconv.FormatFloat(record.OvertimeDays, 'f', -1, 64),
		fmt.Sprintf("%.2f", record.OvertimeAmount),
		fmt.Sprintf("%.2f", record.Fines),
		fmt.Sprintf("%.2f", record.PayableAmount),
		fmt.Sprintf("%.2f", record.Profit),
	}
}

// WriteCSV writes the calculated records as a delimited table, one row per
// record, money to two decimal places.
func WriteCSV(w io.Writer, records []finance.CalculatedRecord, nurseNames, clientNames map[string]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	for _, record := range records {
		if err := writer.Write(exportRow(record, nurseNames, clientNames)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// BuildWorkbook renders the same table as an XLSX workbook with an extra
// summary sheet of company totals.
func BuildWorkbook(financials finance.MonthlyFinancials, nurseNames, clientNames map[string]string) ([]byte, error) {
	f := excelize.NewFile()
	recordsSheet := "records"
	summarySheet := "summary"
	f.SetSheetName("Sheet1", recordsSheet)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(recordsSheet, cell, title); err != nil {
			return nil, err
		}
	}
	for i, record := range financials.Records {
		for col, value := range exportRow(record, nurseNames, clientNames) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(recordsSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	summary := [][]any{
		{"Month", financials.Month.String()},
		{"Billed Income", financials.BilledIncome},
		{"Nurse Expenses", financials.NurseExpenses},
		{"Gross Profit", financials.GrossProfit},
		{"Staff Cost", financials.StaffCost},
		{"Net Profit", financials.NetProfit},
		{"Profit Margin %", financials.ProfitMargin},
	}
	for i, pair := range summary {
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), pair[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), pair[1]); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportCSV streams the month's calculated records to w.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer, month finance.Month) error {
	calculated, err := s.CalculatedForMonth(ctx, month)
	if err != nil {
		return err
	}
	nurseNames, err := s.nurseNames(ctx)
	if err != nil {
		return err
	}
	clientNames, err := s.clientNames(ctx)
	if err != nil {
		return err
	}
	return WriteCSV(w, calculated, nurseNames, clientNames)
}

// ExportXLSX renders the month as a workbook.
func (s *Service) ExportXLSX(ctx context.Context, month finance.Month) ([]byte, error) {
	financials, err := s.MonthlySummary(ctx, month)
	if err != nil {
		return nil, err
	}
	nurseNames, err := s.nurseNames(ctx)
	if err != nil {
		return nil, err
	}
	clientNames, err := s.clientNames(ctx)
	if err != nil {
		return nil, err
	}
	return BuildWorkbook(financials, nurseNames, clientNames)
}
