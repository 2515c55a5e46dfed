package settings

import "time"

// CompanySettings is the single-row configuration consumed by the export
// and document collaborators. The engine itself never reads it: VAT and
// currency are applied downstream of the calculated numbers.
type CompanySettings struct {
	CompanyName       string    `json:"companyName"`
	CompanyTRN        string    `json:"companyTrn,omitempty"`
	Currency          string    `json:"currency"`
	VATRate           float64   `json:"vatRate"`
	BankName          string    `json:"bankName"`
	BankAccountNumber string    `json:"bankAccountNumber"`
	IBAN              string    `json:"iban"`
	BankCompanyTRN    string    `json:"bankCompanyTrn,omitempty"`
	ContactNote       string    `json:"contactNote"`
	InvoicePrefix     string    `json:"invoicePrefix"`
	InvoiceCount      int       `json:"invoiceCount"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
