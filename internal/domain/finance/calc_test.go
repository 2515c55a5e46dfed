package finance

import (
	"math"
	"reflect"
	"testing"
	"time"
)

const epsilon = 1e-9

func february2024Record() PayrollRecord {
	return PayrollRecord{
		ID:             "rec-1",
		NurseID:        "nurse-1",
		ClientID:       "client-1",
		ContractAmount: 3000,
		Salary:         2000,
		Transportation: 300,
		StartDate:      day(2024, time.February, 1),
		EndDate:        day(2024, time.February, 29),
		FullMonth:      true,
	}
}

func TestCalculateRecordFullMonth(t *testing.T) {
	month := Month{Year: 2024, Month: time.February}
	calc := CalculateRecord(february2024Record(), month)

	if calc.TotalWorkingDays != 21 {
		t.Fatalf("expected 21 working days, got %d", calc.TotalWorkingDays)
	}
	if calc.Proration != 1 {
		t.Fatalf("expected proration 1, got %v", calc.Proration)
	}
	if calc.BilledAmount != 3000 {
		t.Fatalf("expected billed 3000, got %v", calc.BilledAmount)
	}
	if calc.PayableAmount != 2300 {
		t.Fatalf("expected payable 2300, got %v", calc.PayableAmount)
	}
	if calc.Profit != 700 {
		t.Fatalf("expected profit 700, got %v", calc.Profit)
	}
	if calc.Month != month {
		t.Fatalf("expected month carried through, got %v", calc.Month)
	}
}

func TestCalculateRecordPartialMonth(t *testing.T) {
	record := february2024Record()
	record.FullMonth = false
	record.StartDate = day(2024, time.February, 15)
	record.EndDate = day(2024, time.February, 20)

	calc := CalculateRecord(record, Month{Year: 2024, Month: time.February})
	if calc.DaysWorked != 4 {
		t.Fatalf("expected 4 days worked, got %d", calc.DaysWorked)
	}
	wantProration := 4.0 / 21.0
	if math.Abs(calc.Proration-wantProration) > epsilon {
		t.Fatalf("expected proration %v, got %v", wantProration, calc.Proration)
	}
	wantBilled := 3000 * wantProration
	if math.Abs(calc.BilledAmount-wantBilled) > epsilon {
		t.Fatalf("expected billed %v, got %v", wantBilled, calc.BilledAmount)
	}
}

func TestCalculateRecordOutsideMonth(t *testing.T) {
	record := february2024Record()
	record.FullMonth = false
	record.StartDate = day(2024, time.January, 2)
	record.EndDate = day(2024, time.January, 25)

	calc := CalculateRecord(record, Month{Year: 2024, Month: time.February})
	if calc.DaysWorked != 0 || calc.Proration != 0 {
		t.Fatalf("expected zero contribution, got days=%d proration=%v", calc.DaysWorked, calc.Proration)
	}
	if calc.BilledAmount != 0 || calc.BaseSalaryAmount != 0 {
		t.Fatalf("expected zero amounts, got billed=%v salary=%v", calc.BilledAmount, calc.BaseSalaryAmount)
	}

	// The FullMonth flag overrides proration even with no actual overlap.
	record.FullMonth = true
	calc = CalculateRecord(record, Month{Year: 2024, Month: time.February})
	if calc.Proration != 1 {
		t.Fatalf("expected FullMonth to force proration 1, got %v", calc.Proration)
	}
	if calc.BilledAmount != 3000 {
		t.Fatalf("expected full billed amount, got %v", calc.BilledAmount)
	}
}

func TestOvertimeAndFinesNotProrated(t *testing.T) {
	record := february2024Record()
	record.OvertimeDays = 2.5
	record.Fines = 150

	month := Month{Year: 2024, Month: time.February}
	full := CalculateRecord(record, month)

	record.FullMonth = false
	record.StartDate = day(2024, time.February, 15)
	record.EndDate = day(2024, time.February, 20)
	partial := CalculateRecord(record, month)

	if math.Abs(full.OvertimeAmount-partial.OvertimeAmount) > epsilon {
		t.Fatalf("overtime changed with proration: %v vs %v", full.OvertimeAmount, partial.OvertimeAmount)
	}
	wantOvertime := 2.5 * 2000 / 21
	if math.Abs(full.OvertimeAmount-wantOvertime) > epsilon {
		t.Fatalf("expected overtime %v, got %v", wantOvertime, full.OvertimeAmount)
	}

	for _, calc := range []CalculatedRecord{full, partial} {
		sum := calc.BaseSalaryAmount + calc.TransportationAmount + calc.OvertimeAmount - calc.Fines
		if math.Abs(calc.PayableAmount-sum) > epsilon {
			t.Fatalf("payable identity violated: %v vs %v", calc.PayableAmount, sum)
		}
	}
}

func TestCalculateRecordInvertedRange(t *testing.T) {
	record := february2024Record()
	record.FullMonth = false
	record.StartDate = day(2024, time.February, 20)
	record.EndDate = day(2024, time.February, 10)

	calc := CalculateRecord(record, Month{Year: 2024, Month: time.February})
	if calc.DaysWorked != 0 || calc.Proration != 0 || calc.BilledAmount != 0 {
		t.Fatalf("expected inverted range to degrade to zero contribution, got %+v", calc)
	}
}

func TestCalculateRecordDeterministic(t *testing.T) {
	record := february2024Record()
	record.OvertimeDays = 1.5
	record.Fines = 40
	month := Month{Year: 2024, Month: time.February}

	first := CalculateRecord(record, month)
	second := CalculateRecord(record, month)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for identical input")
	}
}
