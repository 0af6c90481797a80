package pgsql

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFiscalPeriodRepository struct {
	BaseRepository
}

func newPgxFiscalPeriodRepository(pool *pgxpool.Pool) *PgxFiscalPeriodRepository {
	return &PgxFiscalPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalPeriodReader = (*PgxFiscalPeriodRepository)(nil)

// FindFiscalPeriodByID retrieves a fiscal period of a tenant.
func (r *PgxFiscalPeriodRepository) FindFiscalPeriodByID(ctx context.Context, tenantID, fiscalPeriodID string) (*domain.FiscalPeriod, error) {
	query := `
		SELECT id, tenant_id, name, start_date, end_date, status
		FROM fiscal_periods
		WHERE tenant_id = $1 AND id = $2;
	`
	var p domain.FiscalPeriod
	err := r.Pool.QueryRow(ctx, query, tenantID, fiscalPeriodID).Scan(
		&p.ID,
		&p.TenantID,
		&p.Name,
		&p.StartDate,
		&p.EndDate,
		&p.Status,
	)
	if err != nil {
		return nil, notFoundOr(err, "fiscal period "+fiscalPeriodID)
	}
	return &p, nil
}
