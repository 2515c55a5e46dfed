package finance

// AggregateMonth runs every record through CalculateRecord for the month
// and sums the results into company totals. Records are taken as given;
// callers filter with OverlapsMonth first when only assignments touching
// the month should count. staffSalaries are the flat monthly salaries of
// internal staff and enter the result unprorated.
func AggregateMonth(records []PayrollRecord, staffSalaries []float64, month Month) MonthlyFinancials {
	calculated := make([]CalculatedRecord, 0, len(records))
	var billedIncome, nurseExpenses float64
	for _, record := range records {
		calc := CalculateRecord(record, month)
		calculated = append(calculated, calc)
		billedIncome += calc.BilledAmount
		nurseExpenses += calc.PayableAmount
	}

	var staffCost float64
	for _, salary := range staffSalaries {
		staffCost += salary
	}

	grossProfit := billedIncome - nurseExpenses
	netProfit := grossProfit - staffCost

	var profitMargin float64
	if billedIncome > 0 {
		profitMargin = netProfit / billedIncome * 100
	}

	return MonthlyFinancials{
		Month:         month,
		Records:       calculated,
		BilledIncome:  billedIncome,
		NurseExpenses: nurseExpenses,
		GrossProfit:   grossProfit,
		StaffCost:     staffCost,
		NetProfit:     netProfit,
		ProfitMargin:  profitMargin,
	}
}

// BreakdownByClient regroups calculated records by client. Entries keep
// the order in which clients were first encountered while scanning the
// records. Records referencing a client missing from the roster are
// skipped; the client was deleted upstream and its history no longer has
// an owner to attribute.
func BreakdownByClient(records []CalculatedRecord, clients []ClientRef) []ClientBreakdown {
	names := make(map[string]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
	}

	index := make(map[string]int, len(clients))
	entries := make([]ClientBreakdown, 0, len(clients))
	for _, record := range records {
		name, known := names[record.ClientID]
		if !known {
			continue
		}
		pos, seen := index[record.ClientID]
		if !seen {
			pos = len(entries)
			index[record.ClientID] = pos
			entries = append(entries, ClientBreakdown{ClientID: record.ClientID, ClientName: name})
		}
		entries[pos].Income += record.BilledAmount
		entries[pos].Expenses += record.PayableAmount
		entries[pos].Profit += record.BilledAmount - record.PayableAmount
	}

	for i := range entries {
		if entries[i].Income > 0 {
			entries[i].Margin = entries[i].Profit / entries[i].Income * 100
		}
	}
	return entries
}
