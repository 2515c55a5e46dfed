package roster

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists the reference rosters: nurses, internal staff and client
// companies. The calculation engine only reads these by identifier.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListNurses(ctx context.Context) ([]Nurse, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, default_salary, default_transportation, created_at
    FROM nurses
    ORDER BY created_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nurses []Nurse
	for rows.Next() {
		var n Nurse
		if err := rows.Scan(&n.ID, &n.Name, &n.DefaultSalary, &n.DefaultTransportation, &n.CreatedAt); err != nil {
			return nil, err
		}
		nurses = append(nurses, n)
	}
	return nurses, rows.Err()
}

func (s *Store) GetNurse(ctx context.Context, id string) (*Nurse, error) {
	var n Nurse
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, default_salary, default_transportation, created_at
    FROM nurses
    WHERE id = $1
  `, id).Scan(&n.ID, &n.Name, &n.DefaultSalary, &n.DefaultTransportation, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Store) CreateNurse(ctx context.Context, nurse Nurse) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO nurses (name, default_salary, default_transportation)
    VALUES ($1, $2, $3)
    RETURNING id
  `, nurse.Name, nurse.DefaultSalary, nurse.DefaultTransportation).Scan(&id)
	return id, err
}

func (s *Store) UpdateNurse(ctx context.Context, nurse Nurse) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE nurses
    SET name = $2, default_salary = $3, default_transportation = $4
    WHERE id = $1
  `, nurse.ID, nurse.Name, nurse.DefaultSalary, nurse.DefaultTransportation)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteNurse removes the nurse; their payroll records go with them via the
// foreign key cascade.
func (s *Store) DeleteNurse(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM nurses WHERE id = $1`, id)
	return err
}

func (s *Store) ListStaff(ctx context.Context) ([]StaffMember, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, designation, monthly_salary, created_at
    FROM staff_members
    ORDER BY created_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []StaffMember
	for rows.Next() {
		var m StaffMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Designation, &m.MonthlySalary, &m.CreatedAt); err != nil {
			return nil, err
		}
		staff = append(staff, m)
	}
	return staff, rows.Err()
}

func (s *Store) CreateStaff(ctx context.Context, member StaffMember) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO staff_members (name, designation, monthly_salary)
    VALUES ($1, $2, $3)
    RETURNING id
  `, member.Name, member.Designation, member.MonthlySalary).Scan(&id)
	return id, err
}

func (s *Store) UpdateStaff(ctx context.Context, member StaffMember) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE staff_members
    SET name = $2, designation = $3, monthly_salary = $4
    WHERE id = $1
  `, member.ID, member.Name, member.Designation, member.MonthlySalary)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteStaff(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM staff_members WHERE id = $1`, id)
	return err
}

func (s *Store) ListClients(ctx context.Context) ([]ClientCompany, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(trn, ''), created_at
    FROM client_companies
    ORDER BY created_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []ClientCompany
	for rows.Next() {
		var c ClientCompany
		if err := rows.Scan(&c.ID, &c.Name, &c.TRN, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (s *Store) GetClient(ctx context.Context, id string) (*ClientCompany, error) {
	var c ClientCompany
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(trn, ''), created_at
    FROM client_companies
    WHERE id = $1
  `, id).Scan(&c.ID, &c.Name, &c.TRN, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateClient(ctx context.Context, client ClientCompany) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO client_companies (name, trn)
    VALUES ($1, $2)
    RETURNING id
  `, client.Name, client.TRN).Scan(&id)
	return id, err
}

func (s *Store) UpdateClient(ctx context.Context, client ClientCompany) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE client_companies
    SET name = $2, trn = $3
    WHERE id = $1
  `, client.ID, client.Name, client.TRN)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteClient leaves the client's payroll records in place; aggregation
// tolerates the orphaned references by omission.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM client_companies WHERE id = $1`, id)
	return err
}
