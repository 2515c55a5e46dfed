package payroll

import (
	"context"
	"fmt"

	"staffpay/internal/domain/finance"
	"staffpay/internal/domain/roster"
)

// RecordSource supplies the raw payroll records.
type RecordSource interface {
	List(ctx context.Context) ([]finance.PayrollRecord, error)
}

// RosterDirectory supplies the reference rosters for attribution and the
// flat staff salary bill.
type RosterDirectory interface {
	ListNurses(ctx context.Context) ([]roster.Nurse, error)
	ListStaff(ctx context.Context) ([]roster.StaffMember, error)
	ListClients(ctx context.Context) ([]roster.ClientCompany, error)
}

// Service ties the calculation engine to the stores. Every method
// recomputes from the source records; nothing derived is cached.
type Service struct {
	records RecordSource
	roster  RosterDirectory
}

func NewService(records RecordSource, roster RosterDirectory) *Service {
	return &Service{records: records, roster: roster}
}

// CalculatedForMonth returns the derived view of every record touching the
// month, in storage order.
func (s *Service) CalculatedForMonth(ctx context.Context, month finance.Month) ([]finance.CalculatedRecord, error) {
	records, err := s.recordsForMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	calculated := make([]finance.CalculatedRecord, 0, len(records))
	for _, record := range records {
		calculated = append(calculated, finance.CalculateRecord(record, month))
	}
	return calculated, nil
}

// MonthlySummary aggregates the month into company financials, combining
// assignment income with the flat internal staff cost.
func (s *Service) MonthlySummary(ctx context.Context, month finance.Month) (finance.MonthlyFinancials, error) {
	records, err := s.recordsForMonth(ctx, month)
	if err != nil {
		return finance.MonthlyFinancials{}, err
	}
	staff, err := s.roster.ListStaff(ctx)
	if err != nil {
		return finance.MonthlyFinancials{}, fmt.Errorf("list staff: %w", err)
	}
	salaries := make([]float64, 0, len(staff))
	for _, member := range staff {
		salaries = append(salaries, member.MonthlySalary)
	}
	return finance.AggregateMonth(records, salaries, month), nil
}

// ClientBreakdown rolls the month up per client company.
func (s *Service) ClientBreakdown(ctx context.Context, month finance.Month) ([]finance.ClientBreakdown, error) {
	calculated, err := s.CalculatedForMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	clients, err := s.roster.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	refs := make([]finance.ClientRef, 0, len(clients))
	for _, client := range clients {
		refs = append(refs, finance.ClientRef{ID: client.ID, Name: client.Name})
	}
	return finance.BreakdownByClient(calculated, refs), nil
}

// InvoiceLines returns the calculated records attributable to one client
// for the month, plus the nurse name index the invoice renderer needs.
func (s *Service) InvoiceLines(ctx context.Context, clientID string, month finance.Month) ([]finance.CalculatedRecord, map[string]string, error) {
	calculated, err := s.CalculatedForMonth(ctx, month)
	if err != nil {
		return nil, nil, err
	}
	lines := make([]finance.CalculatedRecord, 0, len(calculated))
	for _, record := range calculated {
		if record.ClientID == clientID {
			lines = append(lines, record)
		}
	}
	if len(lines) == 0 {
		return nil, nil, ErrNoRecords
	}
	nurseNames, err := s.nurseNames(ctx)
	if err != nil {
		return nil, nil, err
	}
	return lines, nurseNames, nil
}

func (s *Service) recordsForMonth(ctx context.Context, month finance.Month) ([]finance.PayrollRecord, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	kept := make([]finance.PayrollRecord, 0, len(records))
	for _, record := range records {
		if finance.OverlapsMonth(record, month) {
			kept = append(kept, record)
		}
	}
	return kept, nil
}

func (s *Service) nurseNames(ctx context.Context) (map[string]string, error) {
	nurses, err := s.roster.ListNurses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list nurses: %w", err)
	}
	names := make(map[string]string, len(nurses))
	for _, nurse := range nurses {
		names[nurse.ID] = nurse.Name
	}
	return names, nil
}

func (s *Service) clientNames(ctx context.Context) (map[string]string, error) {
	clients, err := s.roster.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	names := make(map[string]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
	}
	return names, nil
}
