package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const adjustmentColumns = `
	id, tenant_id, session_id, description, amount, adjustment_type, bank_account_id, ledger_account_id,
	ledger_account_code, fiscal_period_id, transaction_date, posted_journal_id, reversal_journal_id,
	reversal_reason, reversed_at, metadata, created_by, created_at`

type PgxAdjustmentRepository struct {
	BaseRepository
	writer *ledgerWriter
}

func newPgxAdjustmentRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxAdjustmentRepository {
	return &PgxAdjustmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		writer:         &ledgerWriter{accounts: accountRepo},
	}
}

var _ portsrepo.AdjustmentRepositoryFacade = (*PgxAdjustmentRepository)(nil)

func scanAdjustment(row pgx.Row) (models.ReconciliationAdjustment, error) {
	var m models.ReconciliationAdjustment
	err := row.Scan(
		&m.ID,
		&m.TenantID,
		&m.SessionID,
		&m.Description,
		&m.Amount,
		&m.AdjustmentType,
		&m.BankAccountID,
		&m.LedgerAccountID,
		&m.LedgerAccountCode,
		&m.FiscalPeriodID,
		&m.TransactionDate,
		&m.PostedJournalID,
		&m.ReversalJournalID,
		&m.ReversalReason,
		&m.ReversedAt,
		&m.Metadata,
		&m.CreatedBy,
		&m.CreatedAt,
	)
	return m, err
}

// FindAdjustmentByID retrieves one adjustment of a tenant.
func (r *PgxAdjustmentRepository) FindAdjustmentByID(ctx context.Context, tenantID, adjustmentID string) (*domain.ReconciliationAdjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM reconciliation_adjustments WHERE tenant_id = $1 AND id = $2;`
	m, err := scanAdjustment(r.Pool.QueryRow(ctx, query, tenantID, adjustmentID))
	if err != nil {
		return nil, notFoundOr(err, "adjustment "+adjustmentID)
	}
	adj := mapping.ToDomainAdjustment(m)
	return &adj, nil
}

// ListAdjustmentsBySession returns the adjustments recorded against a reconciliation session, newest first.
func (r *PgxAdjustmentRepository) ListAdjustmentsBySession(ctx context.Context, tenantID, sessionID string) ([]domain.ReconciliationAdjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM reconciliation_adjustments
		WHERE tenant_id = $1 AND session_id = $2
		ORDER BY created_at DESC, id DESC;`
	rows, err := r.Pool.Query(ctx, query, tenantID, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query adjustments for session "+sessionID, err)
	}
	defer rows.Close()

	out := []domain.ReconciliationAdjustment{}
	for rows.Next() {
		m, err := scanAdjustment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan adjustment row", err)
		}
		out = append(out, mapping.ToDomainAdjustment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating adjustment rows", err)
	}
	return out, nil
}

// SaveAdjustments inserts all adjustments in one transaction.
func (r *PgxAdjustmentRepository) SaveAdjustments(ctx context.Context, adjustments []domain.ReconciliationAdjustment) error {
	if len(adjustments) == 0 {
		return nil
	}
	query := `
		INSERT INTO reconciliation_adjustments (
			id, tenant_id, session_id, description, amount, adjustment_type, bank_account_id, ledger_account_id,
			ledger_account_code, fiscal_period_id, transaction_date, metadata, created_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	return r.inTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, a := range adjustments {
			m := mapping.ToModelAdjustment(a)
			batch.Queue(query,
				m.ID, m.TenantID, m.SessionID, m.Description, m.Amount, m.AdjustmentType, m.BankAccountID, m.LedgerAccountID,
				m.LedgerAccountCode, m.FiscalPeriodID, m.TransactionDate, m.Metadata, m.CreatedBy, m.CreatedAt,
			)
		}
		br := tx.SendBatch(ctx, batch)
		return translateWriteError(br.Close(), fmt.Sprintf("%d adjustments", len(adjustments)))
	})
}

// PostAdjustmentJournal writes the adjustment journal and links it to the adjustment.
func (r *PgxAdjustmentRepository) PostAdjustmentJournal(ctx context.Context, tenantID, adjustmentID string, entry domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) ([]domain.GeneralLedgerEntry, error) {
	var stored []domain.GeneralLedgerEntry
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var posted *string
		err := tx.QueryRow(ctx,
			`SELECT posted_journal_id FROM reconciliation_adjustments WHERE tenant_id = $1 AND id = $2 FOR UPDATE;`,
			tenantID, adjustmentID).Scan(&posted)
		if err != nil {
			return notFoundOr(err, "adjustment "+adjustmentID)
		}
		if posted != nil {
			return fmt.Errorf("%w: adjustment %s already posted as %s", apperrors.ErrConflict, adjustmentID, *posted)
		}

		stored, err = r.writer.write(ctx, tx, []domain.JournalEntry{entry}, ledger, events)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE reconciliation_adjustments SET posted_journal_id = $3 WHERE tenant_id = $1 AND id = $2;`,
			tenantID, adjustmentID, entry.ID)
		return translateWriteError(err, "adjustment "+adjustmentID)
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// ReverseAdjustment writes the reversal journal and claims the reversal slot in the
// same transaction. Losing the claim to a concurrent reversal rolls everything back.
func (r *PgxAdjustmentRepository) ReverseAdjustment(ctx context.Context, tenantID, adjustmentID, reason string, reversedAt time.Time, entry domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) ([]domain.GeneralLedgerEntry, error) {
	var stored []domain.GeneralLedgerEntry
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		stored, err = r.writer.write(ctx, tx, []domain.JournalEntry{entry}, ledger, events)
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
			UPDATE reconciliation_adjustments
			SET reversal_journal_id = $3, reversal_reason = $4, reversed_at = $5
			WHERE tenant_id = $1 AND id = $2 AND reversal_journal_id IS NULL AND posted_journal_id IS NOT NULL;`,
			tenantID, adjustmentID, entry.ID, reason, reversedAt)
		if err != nil {
			return translateWriteError(err, "adjustment "+adjustmentID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: adjustment %s is already reversed", apperrors.ErrDuplicate, adjustmentID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}
