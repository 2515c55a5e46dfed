package roster

import "time"

type Nurse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	DefaultSalary         float64   `json:"defaultSalary"`
	DefaultTransportation float64   `json:"defaultTransportation"`
	CreatedAt             time.Time `json:"createdAt"`
}

type StaffMember struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Designation   string    `json:"designation"`
	MonthlySalary float64   `json:"monthlySalary"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ClientCompany struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TRN       string    `json:"trn,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
