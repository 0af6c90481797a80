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
	"github.com/shopspring/decimal"
)

const sessionColumns = `
	id, tenant_id, bank_account_id, fiscal_period_id, currency, status, transaction_count, posted_count,
	staged_journal_count, staged_gl_count, staged_debits, staged_credits, staged_is_balanced, staged_at,
	production_journal_count, production_gl_count, production_debits, production_credits,
	posted_at, posted_by, archived_at, archived_by, created_at, created_by, last_updated_at, last_updated_by`

type PgxStagingRepository struct {
	BaseRepository
	writer *ledgerWriter
}

func newPgxStagingRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxStagingRepository {
	return &PgxStagingRepository{
		BaseRepository: BaseRepository{Pool: pool},
		writer:         &ledgerWriter{accounts: accountRepo},
	}
}

var _ portsrepo.StagingRepositoryFacade = (*PgxStagingRepository)(nil)

// sessionScanTargets returns the scan destinations matching sessionColumns.
func sessionScanTargets(m *models.BankImportSession) []any {
	return []any{
		&m.ID,
		&m.TenantID,
		&m.BankAccountID,
		&m.FiscalPeriodID,
		&m.Currency,
		&m.Status,
		&m.TransactionCount,
		&m.PostedCount,
		&m.StagedJournals,
		&m.StagedGLRows,
		&m.StagedDebits,
		&m.StagedCredits,
		&m.StagedBalanced,
		&m.StagedAt,
		&m.ProductionJournals,
		&m.ProductionGLRows,
		&m.ProductionDebits,
		&m.ProductionCredits,
		&m.PostedAt,
		&m.PostedBy,
		&m.ArchivedAt,
		&m.ArchivedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	}
}

func findSession(ctx context.Context, q querier, tenantID, sessionID string) (*domain.BankImportSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM bank_import_sessions WHERE tenant_id = $1 AND id = $2;`
	var m models.BankImportSession
	if err := q.QueryRow(ctx, query, tenantID, sessionID).Scan(sessionScanTargets(&m)...); err != nil {
		return nil, notFoundOr(err, "bank import session "+sessionID)
	}
	s := mapping.ToDomainSession(m)
	return &s, nil
}

// FindSessionByID retrieves a bank import session.
func (r *PgxStagingRepository) FindSessionByID(ctx context.Context, tenantID, sessionID string) (*domain.BankImportSession, error) {
	return findSession(ctx, r.Pool, tenantID, sessionID)
}

// CreateSession inserts a new, empty, staged session.
func (r *PgxStagingRepository) CreateSession(ctx context.Context, session domain.BankImportSession) error {
	m := mapping.ToModelSession(session)
	query := `
		INSERT INTO bank_import_sessions (
			id, tenant_id, bank_account_id, fiscal_period_id, currency, status, transaction_count, posted_count,
			staged_journal_count, staged_gl_count, staged_debits, staged_credits, staged_is_balanced, staged_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.TenantID, m.BankAccountID, m.FiscalPeriodID, m.Currency, m.Status, m.TransactionCount, m.PostedCount,
		m.StagedJournals, m.StagedGLRows, m.StagedDebits, m.StagedCredits, m.StagedBalanced, m.StagedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateWriteError(err, "bank import session "+m.ID)
}

// FindStagedEntries returns the session's candidates that are not yet posted, with lines.
func (r *PgxStagingRepository) FindStagedEntries(ctx context.Context, tenantID, sessionID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT id, tenant_id, fiscal_period_id, journal_code, reference, description, source,
		       transaction_date, metadata, created_at, created_by
		FROM staging_journal_entries
		WHERE tenant_id = $1 AND session_id = $2 AND posted_at IS NULL
		ORDER BY transaction_date, created_at, id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query staged entries for session "+sessionID, err)
	}
	defer rows.Close()

	var ms []models.JournalEntry
	ids := []string{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.ID,
			&m.TenantID,
			&m.FiscalPeriodID,
			&m.JournalCode,
			&m.Reference,
			&m.Description,
			&m.Source,
			&m.TransactionDate,
			&m.Metadata,
			&m.CreatedAt,
			&m.CreatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan staged entry row", err)
		}
		sid := sessionID
		m.Status = string(domain.StatusPending)
		m.ImportSessionID = &sid
		m.LastUpdatedAt = m.CreatedAt
		m.LastUpdatedBy = m.CreatedBy
		ms = append(ms, m)
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating staged entry rows", err)
	}
	rows.Close()

	lines, err := r.findStagedLines(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainJournalEntry(m, lines[m.ID])
	}
	return out, nil
}

func (r *PgxStagingRepository) findStagedLines(ctx context.Context, tenantID string, entryIDs []string) (map[string][]models.JournalLine, error) {
	out := make(map[string][]models.JournalLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT l.id, l.journal_entry_id, l.tenant_id, l.line_number, l.account_id, a.code, a.name, a.account_type,
		       l.description, l.debit, l.credit, l.currency
		FROM staging_journal_lines l
		JOIN accounts a ON a.id = l.account_id
		WHERE l.tenant_id = $1 AND l.journal_entry_id = ANY($2)
		ORDER BY l.journal_entry_id, l.line_number;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query staged lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(
			&l.ID,
			&l.JournalEntryID,
			&l.TenantID,
			&l.LineNumber,
			&l.AccountID,
			&l.AccountCode,
			&l.AccountName,
			&l.AccountType,
			&l.Description,
			&l.Debit,
			&l.Credit,
			&l.Currency,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan staged line row", err)
		}
		out[l.JournalEntryID] = append(out[l.JournalEntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating staged line rows", err)
	}
	return out, nil
}

// lockStagedSession locks the session row and requires it to still be staged.
func lockStagedSession(ctx context.Context, tx pgx.Tx, tenantID, sessionID string) error {
	var status string
	err := tx.QueryRow(ctx, `SELECT status FROM bank_import_sessions WHERE tenant_id = $1 AND id = $2 FOR UPDATE;`,
		tenantID, sessionID).Scan(&status)
	if err != nil {
		return notFoundOr(err, "bank import session "+sessionID)
	}
	if status != string(domain.SessionStaged) {
		return fmt.Errorf("%w: session %s is %s", apperrors.ErrConflict, sessionID, status)
	}
	return nil
}

// SaveStagedEntries writes candidates and their staging ledger rows and folds delta into the session snapshot.
func (r *PgxStagingRepository) SaveStagedEntries(ctx context.Context, tenantID, sessionID string, entries []domain.JournalEntry, ledger []domain.GeneralLedgerEntry, delta domain.StagingSnapshot, transactionCount int) (*domain.BankImportSession, error) {
	var updated *domain.BankImportSession
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockStagedSession(ctx, tx, tenantID, sessionID); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, e := range entries {
			m := mapping.ToModelJournalEntry(e)
			batch.Queue(`
				INSERT INTO staging_journal_entries (
					id, session_id, tenant_id, fiscal_period_id, journal_code, reference, description, source,
					transaction_date, bank_transaction_id, mapping_rule_id, metadata, created_at, created_by
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
				m.ID, sessionID, m.TenantID, m.FiscalPeriodID, m.JournalCode, m.Reference, m.Description, m.Source,
				m.TransactionDate, m.Metadata[domain.MetaBankTransactionID], m.Metadata[domain.MetaMappingRuleID], m.Metadata,
				m.CreatedAt, m.CreatedBy,
			)
			for _, l := range e.Lines {
				batch.Queue(`
					INSERT INTO staging_journal_lines (id, journal_entry_id, tenant_id, line_number, account_id, description, debit, credit, currency)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
					l.LineID, e.ID, tenantID, l.LineNumber, l.AccountID, l.Description, l.Debit, l.Credit, l.Currency,
				)
			}
		}
		for _, g := range ledger {
			batch.Queue(`
				INSERT INTO staging_gl_entries (
					id, session_id, tenant_id, journal_entry_id, journal_line_id, account_id, account_code,
					debit, credit, signed_amount, currency, transaction_date, created_at
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
				g.ID, sessionID, tenantID, g.JournalEntryID, g.JournalLineID, g.AccountID, g.AccountCode,
				g.Debit, g.Credit, g.SignedAmount, g.Currency, g.TransactionDate, g.CreatedAt,
			)
		}
		if batch.Len() > 0 {
			br := tx.SendBatch(ctx, batch)
			if err := br.Close(); err != nil {
				return translateWriteError(err, "staged entries of session "+sessionID)
			}
		}

		// Column references in SET see the pre-update values.
		_, err := tx.Exec(ctx, `
			UPDATE bank_import_sessions
			SET staged_journal_count = staged_journal_count + $3,
			    staged_gl_count = staged_gl_count + $4,
			    staged_debits = staged_debits + $5,
			    staged_credits = staged_credits + $6,
			    staged_is_balanced = ABS((staged_debits + $5) - (staged_credits + $6)) < $7,
			    staged_at = $8,
			    transaction_count = transaction_count + $9,
			    last_updated_at = $8
			WHERE tenant_id = $1 AND id = $2;`,
			tenantID, sessionID, delta.JournalEntryCount, delta.GLEntryCount, delta.TotalDebits, delta.TotalCredits,
			domain.BalanceTolerance, delta.StagedAt, transactionCount)
		if err != nil {
			return translateWriteError(err, "session snapshot "+sessionID)
		}

		updated, err = findSession(ctx, tx, tenantID, sessionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// PostStagedSession promotes the staged candidates to production in one transaction.
func (r *PgxStagingRepository) PostStagedSession(ctx context.Context, tenantID, sessionID, postedBy string, postedAt time.Time, entries []domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) (*domain.BankImportSession, error) {
	debits, credits := decimal.Zero, decimal.Zero
	ids := make([]string, len(entries))
	for i, e := range entries {
		d, c := e.Totals()
		debits = debits.Add(d)
		credits = credits.Add(c)
		ids[i] = e.ID
	}

	var posted *domain.BankImportSession
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		// The lock orders this post after any StageTransactions still in flight.
		var (
			status      string
			stagedCount int
		)
		err := tx.QueryRow(ctx, `SELECT status, staged_journal_count FROM bank_import_sessions WHERE tenant_id = $1 AND id = $2 FOR UPDATE;`,
			tenantID, sessionID).Scan(&status, &stagedCount)
		if err != nil {
			return notFoundOr(err, "bank import session "+sessionID)
		}
		if status != string(domain.SessionStaged) {
			return fmt.Errorf("%w: session %s is no longer staged", apperrors.ErrConflict, sessionID)
		}
		if stagedCount != len(entries) {
			return fmt.Errorf("%w: session %s has %d staged entries, %d were prepared", apperrors.ErrStaleStaging, sessionID, stagedCount, len(entries))
		}

		tag, err := tx.Exec(ctx, `
			UPDATE bank_import_sessions
			SET status = 'posted', posted_count = $3,
			    production_journal_count = $3, production_gl_count = $4,
			    production_debits = $5, production_credits = $6,
			    posted_at = $7, posted_by = $8, last_updated_at = $7, last_updated_by = $8
			WHERE tenant_id = $1 AND id = $2 AND status = 'staged';`,
			tenantID, sessionID, len(entries), len(ledger), debits, credits, postedAt, postedBy)
		if err != nil {
			return translateWriteError(err, "session "+sessionID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: session %s is no longer staged", apperrors.ErrConflict, sessionID)
		}

		if _, err := r.writer.write(ctx, tx, entries, ledger, events); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
			UPDATE staging_journal_entries SET posted_at = $3
			WHERE tenant_id = $1 AND session_id = $2 AND id = ANY($4) AND posted_at IS NULL;`,
			tenantID, sessionID, postedAt, ids); err != nil {
			return translateWriteError(err, "staging rows of session "+sessionID)
		}

		posted, err = findSession(ctx, tx, tenantID, sessionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return posted, nil
}
