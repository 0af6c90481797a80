package pgsql

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, tenant_id, code, name, account_type, is_active, balance`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.TenantID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.IsActive,
		&m.Balance,
	)
	return m, err
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND id = $2;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, tenantID, accountID))
	if err != nil {
		return nil, notFoundOr(err, "account "+accountID)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND id = ANY($2);`
	ms, err := r.queryAccounts(ctx, r.Pool, query, tenantID, accountIDs)
	if err != nil {
		return nil, err
	}
	return toDomainAccountMap(ms), nil
}

// FindAccountsByIDsForUpdate selects accounts and locks them for the rest of tx.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	ms, err := r.lockAccounts(ctx, tx, tenantID, accountIDs)
	if err != nil {
		return nil, err
	}
	return toDomainAccountMap(ms), nil
}

// lockAccounts locks the rows in id order so concurrent writers touching the
// same accounts always queue in the same order. Every id must resolve.
func (r *PgxAccountRepository) lockAccounts(ctx context.Context, tx pgx.Tx, tenantID string, accountIDs []string) (map[string]models.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]models.Account{}, nil
	}
	ids := append([]string(nil), accountIDs...)
	sort.Strings(ids)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND id = ANY($2) ORDER BY id FOR UPDATE;`
	ms, err := r.queryAccounts(ctx, tx, query, tenantID, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := ms[id]; !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
	}
	return ms, nil
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, q querier, query string, args ...any) (map[string]models.Account, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := make(map[string]models.Account)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts[m.AccountID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// queueBalanceUpdates adds one balance increment per account to batch.
func queueBalanceUpdates(batch *pgx.Batch, tenantID string, changes map[string]decimal.Decimal, now time.Time) {
	ids := make([]string, 0, len(changes))
	for id := range changes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		batch.Queue(`UPDATE accounts SET balance = balance + $3, last_updated_at = $4 WHERE tenant_id = $1 AND id = $2;`,
			tenantID, id, changes[id], now)
	}
}

func toDomainAccountMap(ms map[string]models.Account) map[string]domain.Account {
	out := make(map[string]domain.Account, len(ms))
	for id, m := range ms {
		out[id] = mapping.ToDomainAccount(m)
	}
	return out
}
