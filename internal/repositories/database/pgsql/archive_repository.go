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
	"github.com/SscSPs/ledger_engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxArchiveRepository struct {
	BaseRepository
}

func newPgxArchiveRepository(pool *pgxpool.Pool) *PgxArchiveRepository {
	return &PgxArchiveRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ArchiveRepositoryFacade = (*PgxArchiveRepository)(nil)

// CopySessionToArchive copies the session header and every live row it produced
// into the archive tables. Already archived rows are left as they are, so a
// resumed archive only copies what is still missing.
func (r *PgxArchiveRepository) CopySessionToArchive(ctx context.Context, tenantID, sessionID, archivedBy string, archivedAt time.Time) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		batch.Queue(`
			INSERT INTO archived_sessions (`+sessionColumns+`)
			SELECT id, tenant_id, bank_account_id, fiscal_period_id, currency, status, transaction_count, posted_count,
			       staged_journal_count, staged_gl_count, staged_debits, staged_credits, staged_is_balanced, staged_at,
			       production_journal_count, production_gl_count, production_debits, production_credits,
			       posted_at, posted_by, $3, $4, created_at, created_by, last_updated_at, last_updated_by
			FROM bank_import_sessions
			WHERE tenant_id = $1 AND id = $2
			ON CONFLICT (id) DO NOTHING;`,
			tenantID, sessionID, archivedAt, archivedBy)
		batch.Queue(`
			INSERT INTO archived_journal_entries (
				id, session_id, tenant_id, fiscal_period_id, journal_code, reference, description, status, source,
				transaction_date, posting_date, metadata, created_at, created_by, archived_at, archived_by
			)
			SELECT e.id, e.import_session_id, e.tenant_id, e.fiscal_period_id, e.journal_code, e.reference, e.description,
			       e.status, e.source, e.transaction_date, e.posting_date, e.metadata, e.created_at, e.created_by, $3, $4
			FROM journal_entries e
			WHERE e.tenant_id = $1 AND e.import_session_id = $2
			ON CONFLICT (id) DO NOTHING;`,
			tenantID, sessionID, archivedAt, archivedBy)
		batch.Queue(`
			INSERT INTO archived_journal_lines (
				id, journal_entry_id, tenant_id, line_number, account_id, account_code, account_name, account_type,
				description, debit, credit, currency, customer_id, invoice_id, vendor_id
			)
			SELECT l.id, l.journal_entry_id, l.tenant_id, l.line_number, l.account_id, a.code, a.name, a.account_type,
			       l.description, l.debit, l.credit, l.currency, l.customer_id, l.invoice_id, l.vendor_id
			FROM journal_lines l
			JOIN journal_entries e ON e.id = l.journal_entry_id
			JOIN accounts a ON a.id = l.account_id
			WHERE e.tenant_id = $1 AND e.import_session_id = $2
			ON CONFLICT (id) DO NOTHING;`,
			tenantID, sessionID)
		batch.Queue(`
			INSERT INTO archived_gl_entries (
				id, session_id, tenant_id, fiscal_period_id, journal_entry_id, journal_line_id, account_id, account_code,
				account_name, description, debit, credit, signed_amount, running_balance, currency, source, reference,
				transaction_date, posting_date, customer_id, invoice_id, vendor_id, created_at, created_by, archived_at
			)
			SELECT g.id, g.import_session_id, g.tenant_id, g.fiscal_period_id, g.journal_entry_id, g.journal_line_id,
			       g.account_id, g.account_code, g.account_name, g.description, g.debit, g.credit, g.signed_amount,
			       g.running_balance, g.currency, g.source, g.reference, g.transaction_date, g.posting_date,
			       g.customer_id, g.invoice_id, g.vendor_id, g.created_at, g.created_by, $3
			FROM general_ledger_entries g
			WHERE g.tenant_id = $1 AND g.import_session_id = $2
			ON CONFLICT (id) DO NOTHING;`,
			tenantID, sessionID, archivedAt)

		br := tx.SendBatch(ctx, batch)
		return translateWriteError(br.Close(), "archive copy of session "+sessionID)
	})
}

// DeleteLiveSessionPage removes up to pageSize live entries of the session that
// are already present in the archive, ledger rows first.
func (r *PgxArchiveRepository) DeleteLiveSessionPage(ctx context.Context, tenantID, sessionID string, pageSize int) (int, error) {
	if pageSize <= 0 {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("invalid archive page size %d", pageSize), nil)
	}
	deleted := 0
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT e.id FROM journal_entries e
			WHERE e.tenant_id = $1 AND e.import_session_id = $2
			  AND EXISTS (SELECT 1 FROM archived_journal_entries ae WHERE ae.id = e.id)
			ORDER BY e.id
			LIMIT $3
			FOR UPDATE;`,
			tenantID, sessionID, pageSize)
		if err != nil {
			return apperrors.NewAppError(500, "failed to select archive page of session "+sessionID, err)
		}
		ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return apperrors.NewAppError(500, "failed to scan archive page of session "+sessionID, err)
		}
		if len(ids) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		batch.Queue(`DELETE FROM general_ledger_entries WHERE tenant_id = $1 AND journal_entry_id = ANY($2);`, tenantID, ids)
		batch.Queue(`DELETE FROM journal_lines WHERE tenant_id = $1 AND journal_entry_id = ANY($2);`, tenantID, ids)
		batch.Queue(`DELETE FROM journal_entries WHERE tenant_id = $1 AND id = ANY($2);`, tenantID, ids)
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to delete archive page of session "+sessionID, err)
		}
		deleted = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// MarkSessionArchived moves the session from posted to archived and records the archived totals.
func (r *PgxArchiveRepository) MarkSessionArchived(ctx context.Context, tenantID, sessionID, archivedBy string, archivedAt time.Time, totals domain.LedgerTotals, events ...domain.OutboxEvent) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE bank_import_sessions
			SET status = 'archived', archived_at = $3, archived_by = $4, last_updated_at = $3, last_updated_by = $4
			WHERE tenant_id = $1 AND id = $2 AND status = 'posted';`,
			tenantID, sessionID, archivedAt, archivedBy)
		if err != nil {
			return translateWriteError(err, "session "+sessionID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: session %s is not posted", apperrors.ErrConflict, sessionID)
		}

		batch := &pgx.Batch{}
		batch.Queue(`
			UPDATE archived_sessions
			SET status = 'archived', archived_at = $3, archived_by = $4,
			    total_debits = $5, total_credits = $6, row_count = $7,
			    last_updated_at = $3, last_updated_by = $4
			WHERE tenant_id = $1 AND id = $2;`,
			tenantID, sessionID, archivedAt, archivedBy, totals.Debits, totals.Credits, totals.RowCount)
		queueOutboxEvents(batch, events)
		br := tx.SendBatch(ctx, batch)
		return translateWriteError(br.Close(), "archived session "+sessionID)
	})
}

func scanArchivedSession(row pgx.Row) (domain.ArchivedSession, error) {
	var m models.BankImportSession
	var totals domain.LedgerTotals
	dest := append(sessionScanTargets(&m), &totals.Debits, &totals.Credits, &totals.RowCount)
	if err := row.Scan(dest...); err != nil {
		return domain.ArchivedSession{}, err
	}
	return domain.ArchivedSession{BankImportSession: mapping.ToDomainSession(m), ArchivedTotals: totals}, nil
}

// ListArchivedSessions returns archived sessions newest first.
func (r *PgxArchiveRepository) ListArchivedSessions(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.ArchivedSession, *string, error) {
	limit = pageLimit(limit)
	fetchLimit := limit + 1

	query := `SELECT ` + sessionColumns + `, total_debits, total_credits, row_count
		FROM archived_sessions WHERE tenant_id = $1 AND status = 'archived'`
	args := []any{tenantID}
	if nextToken != nil && *nextToken != "" {
		lastArchivedAt, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		query += ` AND archived_at < $2 ORDER BY archived_at DESC LIMIT $3;`
		args = append(args, lastArchivedAt, fetchLimit)
	} else {
		query += ` ORDER BY archived_at DESC LIMIT $2;`
		args = append(args, fetchLimit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query archived sessions for tenant "+tenantID, err)
	}
	defer rows.Close()

	sessions := make([]domain.ArchivedSession, 0, fetchLimit)
	for rows.Next() {
		s, err := scanArchivedSession(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan archived session row", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating archived session rows", err)
	}

	var next *string
	if len(sessions) > limit {
		last := sessions[limit-1]
		if last.ArchivedAt != nil {
			token := pagination.EncodeDateBasedToken(*last.ArchivedAt)
			next = &token
		}
		sessions = sessions[:limit]
	}
	return sessions, next, nil
}

// FindArchivedSession retrieves one fully archived session.
func (r *PgxArchiveRepository) FindArchivedSession(ctx context.Context, tenantID, sessionID string) (*domain.ArchivedSession, error) {
	query := `SELECT ` + sessionColumns + `, total_debits, total_credits, row_count
		FROM archived_sessions WHERE tenant_id = $1 AND id = $2 AND status = 'archived';`
	s, err := scanArchivedSession(r.Pool.QueryRow(ctx, query, tenantID, sessionID))
	if err != nil {
		return nil, notFoundOr(err, "archived session "+sessionID)
	}
	return &s, nil
}

// ListArchivedJournalEntries returns the archived entries of a session with their lines.
func (r *PgxArchiveRepository) ListArchivedJournalEntries(ctx context.Context, tenantID, sessionID string) ([]domain.ArchivedJournalEntry, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, tenant_id, fiscal_period_id, journal_code, reference, description, status, source,
		       transaction_date, posting_date, metadata, created_at, created_by, archived_at, archived_by
		FROM archived_journal_entries
		WHERE tenant_id = $1 AND session_id = $2
		ORDER BY transaction_date, id;`,
		tenantID, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query archived entries of session "+sessionID, err)
	}
	defer rows.Close()

	type archivedRow struct {
		entry      models.JournalEntry
		archivedAt time.Time
		archivedBy string
	}
	var ms []archivedRow
	ids := []string{}
	for rows.Next() {
		var a archivedRow
		m := &a.entry
		if err := rows.Scan(
			&m.ID,
			&m.TenantID,
			&m.FiscalPeriodID,
			&m.JournalCode,
			&m.Reference,
			&m.Description,
			&m.Status,
			&m.Source,
			&m.TransactionDate,
			&m.PostingDate,
			&m.Metadata,
			&m.CreatedAt,
			&m.CreatedBy,
			&a.archivedAt,
			&a.archivedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan archived entry row", err)
		}
		sid := sessionID
		m.ImportSessionID = &sid
		ms = append(ms, a)
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating archived entry rows", err)
	}
	rows.Close()

	lines, err := r.findArchivedLines(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ArchivedJournalEntry, len(ms))
	for i, a := range ms {
		out[i] = domain.ArchivedJournalEntry{
			JournalEntry: mapping.ToDomainJournalEntry(a.entry, lines[a.entry.ID]),
			SessionID:    sessionID,
			ArchivedAt:   a.archivedAt,
			ArchivedBy:   a.archivedBy,
		}
	}
	return out, nil
}

func (r *PgxArchiveRepository) findArchivedLines(ctx context.Context, tenantID string, entryIDs []string) (map[string][]models.JournalLine, error) {
	out := make(map[string][]models.JournalLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT id, journal_entry_id, tenant_id, line_number, account_id, account_code, account_name, account_type,
		       description, debit, credit, currency, customer_id, invoice_id, vendor_id
		FROM archived_journal_lines
		WHERE tenant_id = $1 AND journal_entry_id = ANY($2)
		ORDER BY journal_entry_id, line_number;`,
		tenantID, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query archived lines", err)
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
			&l.CustomerID,
			&l.InvoiceID,
			&l.VendorID,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan archived line row", err)
		}
		out[l.JournalEntryID] = append(out[l.JournalEntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating archived line rows", err)
	}
	return out, nil
}

// ListArchivedGLEntries returns the archived ledger rows ordered by transaction date ascending.
func (r *PgxArchiveRepository) ListArchivedGLEntries(ctx context.Context, tenantID, sessionID string) ([]domain.ArchivedGLEntry, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, tenant_id, fiscal_period_id, journal_entry_id, journal_line_id, account_id, account_code,
		       account_name, description, debit, credit, signed_amount, running_balance, currency, source,
		       reference, transaction_date, posting_date, customer_id, invoice_id, vendor_id,
		       created_at, created_by, archived_at
		FROM archived_gl_entries
		WHERE tenant_id = $1 AND session_id = $2
		ORDER BY transaction_date ASC, journal_entry_id, journal_line_id;`,
		tenantID, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query archived ledger rows of session "+sessionID, err)
	}
	defer rows.Close()

	out := []domain.ArchivedGLEntry{}
	for rows.Next() {
		var g models.GeneralLedgerEntry
		var archivedAt time.Time
		if err := rows.Scan(
			&g.ID,
			&g.TenantID,
			&g.FiscalPeriodID,
			&g.JournalEntryID,
			&g.JournalLineID,
			&g.AccountID,
			&g.AccountCode,
			&g.AccountName,
			&g.Description,
			&g.Debit,
			&g.Credit,
			&g.SignedAmount,
			&g.RunningBalance,
			&g.Currency,
			&g.Source,
			&g.Reference,
			&g.TransactionDate,
			&g.PostingDate,
			&g.CustomerID,
			&g.InvoiceID,
			&g.VendorID,
			&g.CreatedAt,
			&g.CreatedBy,
			&archivedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan archived ledger row", err)
		}
		out = append(out, domain.ArchivedGLEntry{
			GeneralLedgerEntry: mapping.ToDomainLedgerEntry(g),
			SessionID:          sessionID,
			ArchivedAt:         archivedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating archived ledger rows", err)
	}
	return out, nil
}

// SumArchivedTotals aggregates the archived ledger rows of a session.
func (r *PgxArchiveRepository) SumArchivedTotals(ctx context.Context, tenantID, sessionID string) (domain.LedgerTotals, error) {
	return sumTotals(ctx, r.Pool, `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0), COUNT(*)
		FROM archived_gl_entries
		WHERE tenant_id = $1 AND session_id = $2;`,
		tenantID, sessionID)
}

func sumTotals(ctx context.Context, q querier, query string, args ...any) (domain.LedgerTotals, error) {
	var t domain.LedgerTotals
	if err := q.QueryRow(ctx, query, args...).Scan(&t.Debits, &t.Credits, &t.RowCount); err != nil {
		return domain.LedgerTotals{}, apperrors.NewAppError(500, "failed to sum ledger totals", err)
	}
	return t, nil
}
