package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	insertJournalEntrySQL = `
		INSERT INTO journal_entries (
			id, tenant_id, fiscal_period_id, journal_code, reference, description, status, source,
			transaction_date, posting_date, import_session_id, reversal_of, metadata,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	insertJournalLineSQL = `
		INSERT INTO journal_lines (
			id, journal_entry_id, tenant_id, line_number, account_id, description,
			debit, credit, currency, customer_id, invoice_id, vendor_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	insertLedgerEntrySQL = `
		INSERT INTO general_ledger_entries (
			id, tenant_id, fiscal_period_id, journal_entry_id, journal_line_id, account_id, account_code,
			account_name, description, debit, credit, signed_amount, running_balance, currency, source,
			reference, transaction_date, posting_date, customer_id, invoice_id, vendor_id,
			import_session_id, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	insertOutboxSQL = `
		INSERT INTO ledger_outbox (id, tenant_id, event_type, aggregate_id, payload, status, attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7);
	`
)

// ledgerWriter performs the one write every posting path shares: journal
// entries, their lines, their ledger rows, the account balance increments and
// the outbox events, inside a caller-owned transaction.
type ledgerWriter struct {
	accounts *PgxAccountRepository
}

// write locks every touched account, derives running balances from the locked
// balances in row order, and queues everything in a single batch. The returned
// rows carry the running balances that were stored.
func (w *ledgerWriter) write(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry, ledger []domain.GeneralLedgerEntry, events []domain.OutboxEvent) ([]domain.GeneralLedgerEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	tenantID := entries[0].TenantID

	sessionOf := make(map[string]*string, len(entries))
	for _, e := range entries {
		if e.TenantID != tenantID {
			return nil, apperrors.NewAppError(500, fmt.Sprintf("journal entry %s belongs to another tenant", e.ID), nil)
		}
		sessionOf[e.ID] = e.ImportSessionID
	}

	accountIDs := make([]string, 0, len(ledger))
	seen := make(map[string]struct{}, len(ledger))
	for _, row := range ledger {
		if _, ok := seen[row.AccountID]; ok {
			continue
		}
		seen[row.AccountID] = struct{}{}
		accountIDs = append(accountIDs, row.AccountID)
	}
	locked, err := w.accounts.lockAccounts(ctx, tx, tenantID, accountIDs)
	if err != nil {
		return nil, err
	}

	running := make(map[string]decimal.Decimal, len(locked))
	for id, acc := range locked {
		running[id] = acc.Balance
	}
	changes := make(map[string]decimal.Decimal, len(locked))

	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelJournalEntry(e)
		batch.Queue(insertJournalEntrySQL,
			m.ID, m.TenantID, m.FiscalPeriodID, m.JournalCode, m.Reference, m.Description, m.Status, m.Source,
			m.TransactionDate, m.PostingDate, m.ImportSessionID, m.ReversalOf, m.Metadata,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		for _, l := range e.Lines {
			ml := mapping.ToModelJournalLine(e.TenantID, l)
			batch.Queue(insertJournalLineSQL,
				ml.ID, e.ID, ml.TenantID, ml.LineNumber, ml.AccountID, ml.Description,
				ml.Debit, ml.Credit, ml.Currency, ml.CustomerID, ml.InvoiceID, ml.VendorID,
			)
		}
	}

	stored := make([]domain.GeneralLedgerEntry, len(ledger))
	for i, row := range ledger {
		if _, ok := locked[row.AccountID]; !ok {
			return nil, apperrors.NewAppError(500, "internal error: locked account "+row.AccountID+" not found", nil)
		}
		balance := running[row.AccountID].Add(row.SignedAmount)
		running[row.AccountID] = balance
		changes[row.AccountID] = changes[row.AccountID].Add(row.SignedAmount)
		row.RunningBalance = balance
		stored[i] = row

		g := mapping.ToModelLedgerEntry(row, sessionOf[row.JournalEntryID])
		batch.Queue(insertLedgerEntrySQL,
			g.ID, g.TenantID, g.FiscalPeriodID, g.JournalEntryID, g.JournalLineID, g.AccountID, g.AccountCode,
			g.AccountName, g.Description, g.Debit, g.Credit, g.SignedAmount, g.RunningBalance, g.Currency, g.Source,
			g.Reference, g.TransactionDate, g.PostingDate, g.CustomerID, g.InvoiceID, g.VendorID,
			g.ImportSessionID, g.CreatedAt, g.CreatedBy,
		)
	}

	queueBalanceUpdates(batch, tenantID, changes, entries[0].LastUpdatedAt)
	queueOutboxEvents(batch, events)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, translateWriteError(err, "journal entry "+entries[0].ID)
	}
	return stored, nil
}

func queueOutboxEvents(batch *pgx.Batch, events []domain.OutboxEvent) {
	for _, ev := range events {
		status := ev.Status
		if status == "" {
			status = domain.OutboxPending
		}
		batch.Queue(insertOutboxSQL, ev.ID, ev.TenantID, ev.EventType, ev.AggregateID, ev.Payload, string(status), ev.CreatedAt)
	}
}
