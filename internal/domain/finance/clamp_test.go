package finance

import (
	"errors"
	"testing"
	"time"
)

func TestClampToMonthInside(t *testing.T) {
	record := PayrollRecord{
		StartDate: day(2024, time.February, 15),
		EndDate:   day(2024, time.February, 20),
	}
	month := Month{Year: 2024, Month: time.February}

	clamped := ClampToMonth(record, month)
	if !clamped.Start.Equal(record.StartDate) || !clamped.End.Equal(record.EndDate) {
		t.Fatalf("expected range untouched, got %v..%v", clamped.Start, clamped.End)
	}
	// Thu 15, Fri 16, Mon 19, Tue 20.
	if clamped.DaysWorked != 4 {
		t.Fatalf("expected 4 working days, got %d", clamped.DaysWorked)
	}
}

func TestClampToMonthSpanning(t *testing.T) {
	record := PayrollRecord{
		StartDate: day(2024, time.January, 10),
		EndDate:   day(2024, time.March, 5),
	}
	month := Month{Year: 2024, Month: time.February}

	clamped := ClampToMonth(record, month)
	if !clamped.Start.Equal(day(2024, time.February, 1)) {
		t.Fatalf("expected clamp to month start, got %v", clamped.Start)
	}
	if !clamped.End.Equal(day(2024, time.February, 29)) {
		t.Fatalf("expected clamp to month end, got %v", clamped.End)
	}
	if clamped.DaysWorked != 21 {
		t.Fatalf("expected full month of 21 working days, got %d", clamped.DaysWorked)
	}
}

func TestClampToMonthDisjoint(t *testing.T) {
	record := PayrollRecord{
		StartDate: day(2024, time.January, 2),
		EndDate:   day(2024, time.January, 20),
	}
	month := Month{Year: 2024, Month: time.February}

	clamped := ClampToMonth(record, month)
	if clamped.DaysWorked != 0 {
		t.Fatalf("expected 0 days for disjoint record, got %d", clamped.DaysWorked)
	}
	if !clamped.Start.Equal(clamped.End) {
		t.Fatalf("expected degenerate range, got %v..%v", clamped.Start, clamped.End)
	}
}

func TestOverlapsMonthAgreesWithClamp(t *testing.T) {
	month := Month{Year: 2024, Month: time.February}
	records := []PayrollRecord{
		{StartDate: day(2024, time.January, 1), EndDate: day(2024, time.January, 31)},
		{StartDate: day(2024, time.January, 20), EndDate: day(2024, time.February, 3)},
		{StartDate: day(2024, time.February, 10), EndDate: day(2024, time.February, 12)},
		{StartDate: day(2024, time.February, 29), EndDate: day(2024, time.March, 15)},
		{StartDate: day(2024, time.March, 1), EndDate: day(2024, time.March, 31)},
	}

	for i, record := range records {
		overlaps := OverlapsMonth(record, month)
		days := ClampToMonth(record, month).DaysWorked
		if !overlaps && days != 0 {
			t.Fatalf("record %d: no overlap but %d days worked", i, days)
		}
		if overlaps && days < 0 {
			t.Fatalf("record %d: negative days worked", i)
		}
	}

	if OverlapsMonth(records[0], month) {
		t.Fatal("January-only record must not overlap February")
	}
	if !OverlapsMonth(records[1], month) {
		t.Fatal("record ending Feb 3 must overlap February")
	}
	if !OverlapsMonth(records[3], month) {
		t.Fatal("record starting Feb 29 must overlap February")
	}
	if OverlapsMonth(records[4], month) {
		t.Fatal("March-only record must not overlap February")
	}
}

func TestValidateRange(t *testing.T) {
	valid := PayrollRecord{
		StartDate: day(2024, time.February, 1),
		EndDate:   day(2024, time.February, 1),
	}
	if err := ValidateRange(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inverted := PayrollRecord{
		StartDate: day(2024, time.February, 10),
		EndDate:   day(2024, time.February, 1),
	}
	if err := ValidateRange(inverted); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}
