package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"staffpay/internal/platform/config"
)

// Seed inserts the single company settings row if it does not exist yet.
// An existing row is never overwritten.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	_, err := pool.Exec(ctx, `
    INSERT INTO company_settings (id, company_name, currency, vat_rate, invoice_prefix, invoice_count)
    VALUES (1, $1, $2, $3, $4, 0)
    ON CONFLICT (id) DO NOTHING
  `, cfg.SeedCompanyName, cfg.SeedCurrency, cfg.SeedVATRate, cfg.SeedInvoicePrefix)
	return err
}
