package pgsql

import (
	"context"
	"strconv"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/SscSPs/ledger_engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	journalEntryColumns = `
		e.id, e.tenant_id, e.fiscal_period_id, e.journal_code, e.reference, e.description, e.status, e.source,
		e.transaction_date, e.posting_date, e.import_session_id, e.reversal_of, e.metadata,
		e.created_at, e.created_by, e.last_updated_at, e.last_updated_by`

	ledgerEntryColumns = `
		g.seq, g.id, g.tenant_id, g.fiscal_period_id, g.journal_entry_id, g.journal_line_id, g.account_id,
		g.account_code, g.account_name, g.description, g.debit, g.credit, g.signed_amount, g.running_balance,
		g.currency, g.source, g.reference, g.transaction_date, g.posting_date, g.customer_id, g.invoice_id,
		g.vendor_id, g.import_session_id, g.created_at, g.created_by`
)

type PgxJournalRepository struct {
	BaseRepository
	writer *ledgerWriter
}

// newPgxJournalRepository creates a new repository for journal and ledger data.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxJournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		writer:         &ledgerWriter{accounts: accountRepo},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// SaveJournalWithLedger saves a journal entry, its lines, its ledger rows, the
// account balance changes and the outbox events within one DB transaction.
func (r *PgxJournalRepository) SaveJournalWithLedger(ctx context.Context, entry domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events ...domain.OutboxEvent) ([]domain.GeneralLedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	stored, err := r.writer.write(ctx, tx, []domain.JournalEntry{entry}, ledger, events)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return stored, nil
}

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
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
		&m.ImportSessionID,
		&m.ReversalOf,
		&m.Metadata,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLedgerEntry(row pgx.Row) (models.GeneralLedgerEntry, error) {
	var g models.GeneralLedgerEntry
	err := row.Scan(
		&g.Seq,
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
		&g.ImportSessionID,
		&g.CreatedAt,
		&g.CreatedBy,
	)
	return g, err
}

// findLines loads the lines of the given live journal entries, joined with the
// chart of accounts, grouped by entry id and ordered by line number.
func findLines(ctx context.Context, q querier, tenantID string, entryIDs []string) (map[string][]models.JournalLine, error) {
	out := make(map[string][]models.JournalLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT l.id, l.journal_entry_id, l.tenant_id, l.line_number, l.account_id, a.code, a.name, a.account_type,
		       l.description, l.debit, l.credit, l.currency, l.customer_id, l.invoice_id, l.vendor_id
		FROM journal_lines l
		JOIN accounts a ON a.id = l.account_id
		WHERE l.tenant_id = $1 AND l.journal_entry_id = ANY($2)
		ORDER BY l.journal_entry_id, l.line_number;
	`
	rows, err := q.Query(ctx, query, tenantID, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
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
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		out[l.JournalEntryID] = append(out[l.JournalEntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return out, nil
}

// withLines attaches lines to a page of entry rows.
func withLines(ctx context.Context, q querier, tenantID string, ms []models.JournalEntry) ([]domain.JournalEntry, error) {
	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	lines, err := findLines(ctx, q, tenantID, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainJournalEntry(m, lines[m.ID])
	}
	return out, nil
}

func (r *PgxJournalRepository) findOne(ctx context.Context, tenantID, what, where string, args ...any) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries e WHERE ` + where + ` LIMIT 1;`
	m, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, what)
	}
	entries, err := withLines(ctx, r.Pool, tenantID, []models.JournalEntry{m})
	if err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// FindJournalByID retrieves a journal entry with its lines.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, tenantID, journalID string) (*domain.JournalEntry, error) {
	return r.findOne(ctx, tenantID, "journal entry "+journalID, `e.tenant_id = $1 AND e.id = $2`, tenantID, journalID)
}

// FindOpeningBalanceEntry returns the opening balance entry of a fiscal period.
func (r *PgxJournalRepository) FindOpeningBalanceEntry(ctx context.Context, tenantID, fiscalPeriodID string) (*domain.JournalEntry, error) {
	return r.findOne(ctx, tenantID, "opening balance for "+fiscalPeriodID,
		`e.tenant_id = $1 AND e.fiscal_period_id = $2 AND e.source = 'opening_balance'`, tenantID, fiscalPeriodID)
}

// ListJournals retrieves a page of journal entries newest first using token-based pagination.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, tenantID string, filter domain.JournalFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	limit = pageLimit(limit)
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	args := []any{tenantID}
	where := `WHERE e.tenant_id = $1`
	addFilter := func(clause string, v any) {
		args = append(args, v)
		where += " AND " + clause + strconv.Itoa(len(args))
	}
	if filter.Source != "" {
		addFilter("e.source = $", string(filter.Source))
	}
	if filter.FiscalPeriodID != "" {
		addFilter("e.fiscal_period_id = $", filter.FiscalPeriodID)
	}
	if filter.ImportSessionID != "" {
		addFilter("e.import_session_id = $", filter.ImportSessionID)
	}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		// Tuple comparison keeps the keyset stable across equal dates.
		args = append(args, cursor.TransactionDate, cursor.CreatedAt, cursor.ID)
		n := len(args)
		where += ` AND (e.transaction_date, e.created_at, e.id) < ($` + strconv.Itoa(n-2) + `, $` + strconv.Itoa(n-1) + `, $` + strconv.Itoa(n) + `)`
	}
	args = append(args, fetchLimit)

	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries e ` + where +
		` ORDER BY e.transaction_date DESC, e.created_at DESC, e.id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries for tenant "+tenantID, err)
	}
	defer rows.Close()

	ms := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	rows.Close()

	var next *string
	if len(ms) > limit {
		last := ms[limit-1] // The last item included in this page
		token := pagination.EncodeCursor(pagination.Cursor{TransactionDate: last.TransactionDate, CreatedAt: last.CreatedAt, ID: last.ID})
		next = &token
		ms = ms[:limit]
	}

	entries, err := withLines(ctx, r.Pool, tenantID, ms)
	if err != nil {
		return nil, nil, err
	}
	return entries, next, nil
}

// FindLedgerEntriesByJournalIDs retrieves ledger rows grouped by journal entry id, in write order.
func (r *PgxJournalRepository) FindLedgerEntriesByJournalIDs(ctx context.Context, tenantID string, journalIDs []string) (map[string][]domain.GeneralLedgerEntry, error) {
	out := make(map[string][]domain.GeneralLedgerEntry, len(journalIDs))
	if len(journalIDs) == 0 {
		return out, nil
	}
	query := `SELECT ` + ledgerEntryColumns + ` FROM general_ledger_entries g WHERE g.tenant_id = $1 AND g.journal_entry_id = ANY($2) ORDER BY g.seq;`
	rows, err := r.Pool.Query(ctx, query, tenantID, journalIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger rows for journal IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		g, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row", err)
		}
		out[g.JournalEntryID] = append(out[g.JournalEntryID], mapping.ToDomainLedgerEntry(g))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger rows", err)
	}

	// Ensure even journals with no ledger rows have an entry (empty slice)
	for _, id := range journalIDs {
		if _, ok := out[id]; !ok {
			out[id] = []domain.GeneralLedgerEntry{}
		}
	}
	return out, nil
}
