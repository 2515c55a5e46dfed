package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffpay/internal/domain/finance"
	"staffpay/internal/domain/roster"
)

type fakeRecords struct {
	records []finance.PayrollRecord
	err     error
}

func (f *fakeRecords) List(context.Context) ([]finance.PayrollRecord, error) {
	return f.records, f.err
}

type fakeRoster struct {
	nurses  []roster.Nurse
	staff   []roster.StaffMember
	clients []roster.ClientCompany
}

func (f *fakeRoster) ListNurses(context.Context) ([]roster.Nurse, error)    { return f.nurses, nil }
func (f *fakeRoster) ListStaff(context.Context) ([]roster.StaffMember, error) {
	return f.staff, nil
}
func (f *fakeRoster) ListClients(context.Context) ([]roster.ClientCompany, error) {
	return f.clients, nil
}

func testDay(d int) time.Time {
	return time.Date(2024, time.February, d, 0, 0, 0, 0, time.UTC)
}

func testFixtures() (*fakeRecords, *fakeRoster) {
	records := &fakeRecords{records: []finance.PayrollRecord{
		{
			ID: "rec-1", NurseID: "nurse-1", ClientID: "client-1",
			ContractAmount: 3000, Salary: 2000, Transportation: 300,
			StartDate: testDay(1), EndDate: testDay(29), FullMonth: true,
		},
		{
			ID: "rec-2", NurseID: "nurse-2", ClientID: "client-2",
			ContractAmount: 4200, Salary: 2600,
			StartDate: testDay(15), EndDate: testDay(20),
		},
		{
			// January-only assignment, must be filtered out.
			ID: "rec-3", NurseID: "nurse-1", ClientID: "client-1",
			ContractAmount: 9999, Salary: 9999,
			StartDate: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
	}}
	rosters := &fakeRoster{
		nurses: []roster.Nurse{
			{ID: "nurse-1", Name: "Amina K."},
			{ID: "nurse-2", Name: "Grace O."},
		},
		staff: []roster.StaffMember{
			{ID: "staff-1", Name: "Ops Manager", MonthlySalary: 5000},
			{ID: "staff-2", Name: "Accountant", MonthlySalary: 7000},
		},
		clients: []roster.ClientCompany{
			{ID: "client-1", Name: "Harbor Clinic"},
			{ID: "client-2", Name: "Lakeside Care"},
		},
	}
	return records, rosters
}

func TestCalculatedForMonthFiltersByOverlap(t *testing.T) {
	records, rosters := testFixtures()
	svc := NewService(records, rosters)

	month := finance.Month{Year: 2024, Month: time.February}
	calculated, err := svc.CalculatedForMonth(context.Background(), month)
	require.NoError(t, err)
	require.Len(t, calculated, 2, "January-only record must be excluded")
	assert.Equal(t, "rec-1", calculated[0].ID)
	assert.Equal(t, "rec-2", calculated[1].ID)
	assert.Equal(t, month, calculated[0].Month)
}

func TestMonthlySummaryIncludesStaffCost(t *testing.T) {
	records, rosters := testFixtures()
	svc := NewService(records, rosters)

	month := finance.Month{Year: 2024, Month: time.February}
	summary, err := svc.MonthlySummary(context.Background(), month)
	require.NoError(t, err)

	assert.Equal(t, 12000.0, summary.StaffCost)
	assert.InDelta(t, summary.GrossProfit-12000, summary.NetProfit, 1e-9)
	require.Len(t, summary.Records, 2)
}

func TestMonthlySummaryMatchesClientBreakdown(t *testing.T) {
	records, rosters := testFixtures()
	svc := NewService(records, rosters)
	month := finance.Month{Year: 2024, Month: time.February}

	summary, err := svc.MonthlySummary(context.Background(), month)
	require.NoError(t, err)
	breakdown, err := svc.ClientBreakdown(context.Background(), month)
	require.NoError(t, err)
	require.Len(t, breakdown, 2)

	var income, expenses float64
	for _, entry := range breakdown {
		income += entry.Income
		expenses += entry.Expenses
	}
	assert.InDelta(t, summary.BilledIncome, income, 1e-9)
	assert.InDelta(t, summary.NurseExpenses, expenses, 1e-9)
}

func TestInvoiceLinesForClient(t *testing.T) {
	records, rosters := testFixtures()
	svc := NewService(records, rosters)
	month := finance.Month{Year: 2024, Month: time.February}

	lines, nurseNames, err := svc.InvoiceLines(context.Background(), "client-1", month)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "rec-1", lines[0].ID)
	assert.Equal(t, "Amina K.", nurseNames["nurse-1"])

	_, _, err = svc.InvoiceLines(context.Background(), "client-without-work", month)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestServicePropagatesStoreError(t *testing.T) {
	boom := errors.New("connection lost")
	svc := NewService(&fakeRecords{err: boom}, &fakeRoster{})

	_, err := svc.CalculatedForMonth(context.Background(), finance.Month{Year: 2024, Month: time.February})
	assert.ErrorIs(t, err, boom)
}
