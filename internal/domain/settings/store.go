package settings

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context) (*CompanySettings, error) {
	var cs CompanySettings
	err := s.DB.QueryRow(ctx, `
    SELECT company_name, company_trn, currency, vat_rate,
           bank_name, bank_account_number, iban, bank_company_trn,
           contact_note, invoice_prefix, invoice_count, updated_at
    FROM company_settings
    WHERE id = 1
  `).Scan(
		&cs.CompanyName, &cs.CompanyTRN, &cs.Currency, &cs.VATRate,
		&cs.BankName, &cs.BankAccountNumber, &cs.IBAN, &cs.BankCompanyTRN,
		&cs.ContactNote, &cs.InvoicePrefix, &cs.InvoiceCount, &cs.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

func (s *Store) Update(ctx context.Context, cs CompanySettings) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE company_settings
    SET company_name = $1, company_trn = $2, currency = $3, vat_rate = $4,
        bank_name = $5, bank_account_number = $6, iban = $7, bank_company_trn = $8,
        contact_note = $9, invoice_prefix = $10, updated_at = now()
    WHERE id = 1
  `, cs.CompanyName, cs.CompanyTRN, cs.Currency, cs.VATRate,
		cs.BankName, cs.BankAccountNumber, cs.IBAN, cs.BankCompanyTRN,
		cs.ContactNote, cs.InvoicePrefix)
	return err
}

// IncrementInvoiceCount bumps the running invoice counter and returns the
// previous value, which is what the numbering helper formats against. The
// counter is a best-effort display sequence, not a uniqueness guarantee.
func (s *Store) IncrementInvoiceCount(ctx context.Context) (int, error) {
	var next int
	err := s.DB.QueryRow(ctx, `
    UPDATE company_settings
    SET invoice_count = invoice_count + 1, updated_at = now()
    WHERE id = 1
    RETURNING invoice_count
  `).Scan(&next)
	if err != nil {
		return 0, err
	}
	return next - 1, nil
}
