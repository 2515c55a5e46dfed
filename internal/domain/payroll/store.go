package payroll

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"staffpay/internal/domain/finance"
)

// Store persists payroll records. Derived financials are never stored;
// they are recomputed from these rows on every query.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const recordColumns = `
    id, nurse_id, client_id, contract_amount, salary, transportation,
    overtime_days, fines, start_date, end_date, full_month, created_at`

func (s *Store) List(ctx context.Context) ([]finance.PayrollRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+recordColumns+`
    FROM payroll_records
    ORDER BY created_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []finance.PayrollRecord
	for rows.Next() {
		var r finance.PayrollRecord
		if err := rows.Scan(
			&r.ID, &r.NurseID, &r.ClientID, &r.ContractAmount, &r.Salary, &r.Transportation,
			&r.OvertimeDays, &r.Fines, &r.StartDate, &r.EndDate, &r.FullMonth, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*finance.PayrollRecord, error) {
	var r finance.PayrollRecord
	err := s.DB.QueryRow(ctx, `
    SELECT`+recordColumns+`
    FROM payroll_records
    WHERE id = $1
  `, id).Scan(
		&r.ID, &r.NurseID, &r.ClientID, &r.ContractAmount, &r.Salary, &r.Transportation,
		&r.OvertimeDays, &r.Fines, &r.StartDate, &r.EndDate, &r.FullMonth, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) Create(ctx context.Context, record finance.PayrollRecord) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_records
      (nurse_id, client_id, contract_amount, salary, transportation,
       overtime_days, fines, start_date, end_date, full_month)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    RETURNING id
  `, record.NurseID, record.ClientID, record.ContractAmount, record.Salary, record.Transportation,
		record.OvertimeDays, record.Fines, record.StartDate, record.EndDate, record.FullMonth).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, record finance.PayrollRecord) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE payroll_records
    SET nurse_id = $2, client_id = $3, contract_amount = $4, salary = $5,
        transportation = $6, overtime_days = $7, fines = $8,
        start_date = $9, end_date = $10, full_month = $11
    WHERE id = $1
  `, record.ID, record.NurseID, record.ClientID, record.ContractAmount, record.Salary,
		record.Transportation, record.OvertimeDays, record.Fines,
		record.StartDate, record.EndDate, record.FullMonth)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	return err
}
