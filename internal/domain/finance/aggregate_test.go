package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMonthStaffOnly(t *testing.T) {
	month := Month{Year: 2024, Month: time.February}
	financials := AggregateMonth(nil, []float64{5000, 7000}, month)

	assert.Zero(t, financials.BilledIncome)
	assert.Zero(t, financials.NurseExpenses)
	assert.Zero(t, financials.GrossProfit)
	assert.Equal(t, 12000.0, financials.StaffCost)
	assert.Equal(t, -12000.0, financials.NetProfit)
	assert.Zero(t, financials.ProfitMargin, "margin must stay 0 without billed income")
	assert.Empty(t, financials.Records)
}

func TestAggregateMonthTotals(t *testing.T) {
	month := Month{Year: 2024, Month: time.February}
	records := []PayrollRecord{
		{
			ID: "rec-1", ClientID: "client-a",
			ContractAmount: 3000, Salary: 2000, Transportation: 300,
			StartDate: day(2024, time.February, 1), EndDate: day(2024, time.February, 29),
			FullMonth: true,
		},
		{
			ID: "rec-2", ClientID: "client-b",
			ContractAmount: 4200, Salary: 2600, Transportation: 0,
			StartDate: day(2024, time.February, 1), EndDate: day(2024, time.February, 29),
			FullMonth: true,
		},
	}

	financials := AggregateMonth(records, []float64{1000}, month)
	require.Len(t, financials.Records, 2)
	assert.InDelta(t, 7200, financials.BilledIncome, 1e-9)
	assert.InDelta(t, 4900, financials.NurseExpenses, 1e-9)
	assert.InDelta(t, 2300, financials.GrossProfit, 1e-9)
	assert.InDelta(t, 1300, financials.NetProfit, 1e-9)
	assert.InDelta(t, 1300.0/7200.0*100, financials.ProfitMargin, 1e-9)
}

func TestBreakdownMatchesAggregate(t *testing.T) {
	month := Month{Year: 2024, Month: time.February}
	records := []PayrollRecord{
		{ID: "rec-1", ClientID: "client-a", ContractAmount: 3000, Salary: 2000, Transportation: 300,
			StartDate: day(2024, time.February, 1), EndDate: day(2024, time.February, 29), FullMonth: true},
		{ID: "rec-2", ClientID: "client-b", ContractAmount: 4200, Salary: 2600,
			StartDate: day(2024, time.February, 5), EndDate: day(2024, time.February, 16)},
		{ID: "rec-3", ClientID: "client-a", ContractAmount: 1500, Salary: 900, OvertimeDays: 1,
			StartDate: day(2024, time.January, 20), EndDate: day(2024, time.February, 10)},
	}
	clients := []ClientRef{{ID: "client-a", Name: "Alpha"}, {ID: "client-b", Name: "Beta"}}

	financials := AggregateMonth(records, nil, month)
	breakdown := BreakdownByClient(financials.Records, clients)
	require.Len(t, breakdown, 2)

	var income, expenses float64
	for _, entry := range breakdown {
		income += entry.Income
		expenses += entry.Expenses
	}
	assert.InDelta(t, financials.BilledIncome, income, 1e-9, "breakdown income must match aggregate")
	assert.InDelta(t, financials.NurseExpenses, expenses, 1e-9, "breakdown expenses must match aggregate")
}

func TestBreakdownSkipsUnknownClients(t *testing.T) {
	month := Month{Year: 2024, Month: time.February}
	records := []PayrollRecord{
		{ID: "rec-1", ClientID: "client-gone", ContractAmount: 3000, Salary: 2000,
			StartDate: day(2024, time.February, 1), EndDate: day(2024, time.February, 29), FullMonth: true},
	}
	calculated := AggregateMonth(records, nil, month).Records

	breakdown := BreakdownByClient(calculated, []ClientRef{{ID: "client-a", Name: "Alpha"}})
	assert.Empty(t, breakdown, "orphaned client references are excluded, not an error")
}

func TestBreakdownInsertionOrder(t *testing.T) {
	month := Month{Year: 2024, Month: time.February}
	records := []PayrollRecord{
		{ID: "rec-1", ClientID: "client-b", ContractAmount: 100, Salary: 50,
			StartDate: day(2024, time.February, 1), EndDate: day(2024, time.February, 29), FullMonth: true},
		{ID: "rec-2", ClientID: "client-a", ContractAmount: 900, Salary: 400,
			StartDate: day(2024, time.February, 1), EndDate: day(2024, time.February, 29), FullMonth: true},
		{ID: "rec-3", ClientID: "client-b", ContractAmount: 200, Salary: 80,
			StartDate: day(2024, time.February, 1), EndDate: day(2024, time.February, 29), FullMonth: true},
	}
	clients := []ClientRef{{ID: "client-a", Name: "Alpha"}, {ID: "client-b", Name: "Beta"}}

	breakdown := BreakdownByClient(AggregateMonth(records, nil, month).Records, clients)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "client-b", breakdown[0].ClientID, "first-encountered client comes first")
	assert.Equal(t, "client-a", breakdown[1].ClientID)
	assert.InDelta(t, 300, breakdown[0].Income, 1e-9)
}

func TestBreakdownMarginZeroWithoutIncome(t *testing.T) {
	month := Month{Year: 2024, Month: time.February}
	records := []PayrollRecord{
		{ID: "rec-1", ClientID: "client-a", ContractAmount: 0, Salary: 1000,
			StartDate: day(2024, time.February, 1), EndDate: day(2024, time.February, 29), FullMonth: true},
	}
	breakdown := BreakdownByClient(
		AggregateMonth(records, nil, month).Records,
		[]ClientRef{{ID: "client-a", Name: "Alpha"}},
	)
	require.Len(t, breakdown, 1)
	assert.Zero(t, breakdown[0].Income)
	assert.Zero(t, breakdown[0].Margin)
	assert.InDelta(t, -1000, breakdown[0].Profit, 1e-9)
}
