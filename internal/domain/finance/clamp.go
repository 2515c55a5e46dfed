package finance

import "time"

// ClampedRange is the portion of an assignment that falls inside a month.
type ClampedRange struct {
	Start      time.Time
	End        time.Time
	DaysWorked int
}

// ClampToMonth intersects the record's assignment range with the month.
// When the assignment does not overlap the month at all the result is a
// degenerate range with zero days worked.
func ClampToMonth(record PayrollRecord, month Month) ClampedRange {
	monthStart, monthEnd := month.Bounds()

	rangeStart := record.StartDate
	if rangeStart.Before(monthStart) {
		rangeStart = monthStart
	}
	rangeEnd := record.EndDate
	if rangeEnd.After(monthEnd) {
		rangeEnd = monthEnd
	}

	if rangeStart.After(rangeEnd) {
		return ClampedRange{Start: rangeStart, End: rangeStart}
	}

	return ClampedRange{
		Start:      rangeStart,
		End:        rangeEnd,
		DaysWorked: CountWorkingDays(rangeStart, rangeEnd),
	}
}

// OverlapsMonth reports whether any part of the assignment touches the
// month. Callers use it to pre-filter records before aggregation; an
// assignment spanning several months matches each of them.
func OverlapsMonth(record PayrollRecord, month Month) bool {
	monthStart, monthEnd := month.Bounds()
	return !(record.EndDate.Before(monthStart) || record.StartDate.After(monthEnd))
}

// ValidateRange rejects records whose start date falls after their end
// date. The calculator itself degrades such records to a zero contribution;
// this check is for the entry boundary where malformed input should be a
// hard error.
func ValidateRange(record PayrollRecord) error {
	if record.StartDate.After(record.EndDate) {
		return ErrInvalidDateRange
	}
	return nil
}
