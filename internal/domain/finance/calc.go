package finance

import "math"

// CalculateRecord derives the billed, payable and profit amounts of one
// record for one month.
//
// Proration follows the working days the assignment covers inside the
// month; the FullMonth flag forces full proration regardless of the
// recorded dates. Overtime and fines are applied in full either way:
// overtime represents extra days actually worked beyond the base schedule,
// and fines are absolute deductions.
//
// A record whose start date lies after its end date contributes nothing
// (unless FullMonth overrides); it never aborts the calculation.
func CalculateRecord(record PayrollRecord, month Month) CalculatedRecord {
	monthStart, monthEnd := month.Bounds()
	totalWorkingDays := CountWorkingDays(monthStart, monthEnd)
	daysWorked := ClampToMonth(record, month).DaysWorked

	effectiveDays := daysWorked
	if record.FullMonth {
		effectiveDays = totalWorkingDays
	}

	var proration float64
	switch {
	case totalWorkingDays == 0:
		proration = 0
	case record.FullMonth:
		proration = 1
	default:
		proration = math.Min(1, float64(effectiveDays)/float64(totalWorkingDays))
	}

	billed := record.ContractAmount * proration
	baseSalary := record.Salary * proration
	transportation := record.Transportation * proration

	// Guard the degenerate zero-working-day month; never divide by zero.
	dailySalary := record.Salary
	if totalWorkingDays > 0 {
		dailySalary = record.Salary / float64(totalWorkingDays)
	}
	overtime := record.OvertimeDays * dailySalary

	payable := baseSalary + transportation + overtime - record.Fines

	return CalculatedRecord{
		PayrollRecord:        record,
		Month:                month,
		DaysWorked:           effectiveDays,
		TotalWorkingDays:     totalWorkingDays,
		Proration:            proration,
		BilledAmount:         billed,
		BaseSalaryAmount:     baseSalary,
		TransportationAmount: transportation,
		OvertimeAmount:       overtime,
		PayableAmount:        payable,
		Profit:               billed - payable,
	}
}
