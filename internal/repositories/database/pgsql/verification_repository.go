package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// verificationRepository implements the VerificationReader interface
type verificationRepository struct {
	BaseRepository
}

func newVerificationRepository(db *pgxpool.Pool) *verificationRepository {
	return &verificationRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.VerificationReader = (*verificationRepository)(nil)

// TrialBalanceByAccountCode sums live ledger rows of a tenant per account code.
func (r *verificationRepository) TrialBalanceByAccountCode(ctx context.Context, tenantID string) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			account_code,
			MAX(account_name) AS account_name,
			COALESCE(SUM(debit), 0) AS total_debit,
			COALESCE(SUM(credit), 0) AS total_credit
		FROM general_ledger_entries
		WHERE tenant_id = $1
		GROUP BY account_code
		ORDER BY account_code
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountCode, &row.AccountName, &row.Debit, &row.Credit); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return result, nil
}

// FindOrphanedLedgerEntries returns ledger rows whose line reference resolves to nothing.
func (r *verificationRepository) FindOrphanedLedgerEntries(ctx context.Context, tenantID string, limit int) ([]domain.GeneralLedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + `
		FROM general_ledger_entries g
		LEFT JOIN journal_lines l ON l.id = g.journal_line_id AND l.journal_entry_id = g.journal_entry_id
		WHERE g.tenant_id = $1 AND l.id IS NULL
		ORDER BY g.seq
		LIMIT $2
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying orphaned ledger rows: %w", err)
	}
	defer rows.Close()

	result := []domain.GeneralLedgerEntry{}
	for rows.Next() {
		g, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning orphaned ledger row: %w", err)
		}
		result = append(result, mapping.ToDomainLedgerEntry(g))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orphaned ledger rows: %w", err)
	}
	return result, nil
}

// FindDuplicatedLedgerLines returns line ids projected by more than one ledger row.
func (r *verificationRepository) FindDuplicatedLedgerLines(ctx context.Context, tenantID string, limit int) ([]string, error) {
	query := `
		SELECT journal_line_id
		FROM general_ledger_entries
		WHERE tenant_id = $1
		GROUP BY journal_line_id
		HAVING COUNT(*) > 1
		ORDER BY journal_line_id
		LIMIT $2
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying duplicated ledger lines: %w", err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning duplicated ledger line: %w", err)
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating duplicated ledger lines: %w", err)
	}
	return result, nil
}

// FindLinesWithoutLedger returns posted journal lines with no ledger row.
func (r *verificationRepository) FindLinesWithoutLedger(ctx context.Context, tenantID string, limit int) ([]domain.JournalLine, error) {
	query := `
		SELECT l.id, l.journal_entry_id, l.tenant_id, l.line_number, l.account_id, a.code, a.name, a.account_type,
		       l.description, l.debit, l.credit, l.currency, l.customer_id, l.invoice_id, l.vendor_id
		FROM journal_lines l
		JOIN journal_entries e ON e.id = l.journal_entry_id
		JOIN accounts a ON a.id = l.account_id
		LEFT JOIN general_ledger_entries g ON g.journal_line_id = l.id
		WHERE l.tenant_id = $1 AND e.status = 'posted' AND g.id IS NULL
		ORDER BY l.journal_entry_id, l.line_number
		LIMIT $2
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying lines without ledger rows: %w", err)
	}
	defer rows.Close()

	result := []domain.JournalLine{}
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
			return nil, fmt.Errorf("error scanning line without ledger row: %w", err)
		}
		result = append(result, mapping.ToDomainJournalLine(l))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lines without ledger rows: %w", err)
	}
	return result, nil
}

// FindUnbalancedJournals returns posted entries whose lines differ by at least the tolerance.
func (r *verificationRepository) FindUnbalancedJournals(ctx context.Context, tenantID string, limit int) ([]domain.JournalTotals, error) {
	query := `
		SELECT e.id, COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_entries e
		LEFT JOIN journal_lines l ON l.journal_entry_id = e.id
		WHERE e.tenant_id = $1 AND e.status = 'posted'
		GROUP BY e.id
		HAVING ABS(COALESCE(SUM(l.debit), 0) - COALESCE(SUM(l.credit), 0)) >= $2
		ORDER BY e.id
		LIMIT $3
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, domain.BalanceTolerance, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying unbalanced journals: %w", err)
	}
	defer rows.Close()

	result := []domain.JournalTotals{}
	for rows.Next() {
		var t domain.JournalTotals
		if err := rows.Scan(&t.JournalEntryID, &t.Debits, &t.Credits); err != nil {
			return nil, fmt.Errorf("error scanning unbalanced journal: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unbalanced journals: %w", err)
	}
	return result, nil
}

// SumSessionLedgerTotals aggregates the live ledger rows produced by an import session.
func (r *verificationRepository) SumSessionLedgerTotals(ctx context.Context, tenantID, sessionID string) (domain.LedgerTotals, error) {
	return sumTotals(ctx, r.Pool, `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0), COUNT(*)
		FROM general_ledger_entries
		WHERE tenant_id = $1 AND import_session_id = $2;`,
		tenantID, sessionID)
}
