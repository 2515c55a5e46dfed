package finance

import "time"

// PayrollRecord is a single nurse assignment: the monthly contract amount
// billed to the client and the monthly pay owed to the nurse, valid over the
// inclusive [StartDate, EndDate] range.
type PayrollRecord struct {
	ID             string    `json:"id"`
	NurseID        string    `json:"nurseId"`
	ClientID       string    `json:"clientId"`
	ContractAmount float64   `json:"contractAmount"`
	Salary         float64   `json:"salary"`
	Transportation float64   `json:"transportation"`
	OvertimeDays   float64   `json:"overtimeDays"`
	Fines          float64   `json:"fines"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	FullMonth      bool      `json:"fullMonth"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CalculatedRecord is the financial projection of a record for one month.
// It is never persisted; it is recomputed whenever the record or the month
// selection changes.
type CalculatedRecord struct {
	PayrollRecord
	Month                Month   `json:"month"`
	DaysWorked           int     `json:"daysWorked"`
	TotalWorkingDays     int     `json:"totalWorkingDays"`
	Proration            float64 `json:"proration"`
	BilledAmount         float64 `json:"billedAmount"`
	BaseSalaryAmount     float64 `json:"baseSalaryAmount"`
	TransportationAmount float64 `json:"transportationAmount"`
	OvertimeAmount       float64 `json:"overtimeAmount"`
	PayableAmount        float64 `json:"payableAmount"`
	Profit               float64 `json:"profit"`
}

// MonthlyFinancials aggregates calculated records into company totals for
// one month. StaffCost is the flat internal salary bill, never prorated.
type MonthlyFinancials struct {
	Month         Month              `json:"month"`
	Records       []CalculatedRecord `json:"records"`
	BilledIncome  float64            `json:"billedIncome"`
	NurseExpenses float64            `json:"nurseExpenses"`
	GrossProfit   float64            `json:"grossProfit"`
	StaffCost     float64            `json:"staffCost"`
	NetProfit     float64            `json:"netProfit"`
	ProfitMargin  float64            `json:"profitMargin"`
}

// ClientRef identifies a client company for breakdown attribution.
type ClientRef struct {
	ID   string
	Name string
}

// ClientBreakdown is the per-client rollup of income, expense and profit
// across all assignments for that client in a month.
type ClientBreakdown struct {
	ClientID   string  `json:"clientId"`
	ClientName string  `json:"clientName"`
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	Profit     float64 `json:"profit"`
	Margin     float64 `json:"margin"`
}
