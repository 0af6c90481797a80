package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account code in a trial balance.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance is the per-account debit/credit summary of a tenant's ledger.
type TrialBalance struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	IsBalanced   bool              `json:"isBalanced"`
}

// NewTrialBalance totals rows and evaluates the balance rule.
func NewTrialBalance(rows []TrialBalanceRow) TrialBalance {
	tb := TrialBalance{Rows: rows, TotalDebits: decimal.Zero, TotalCredits: decimal.Zero}
	for _, r := range rows {
		tb.TotalDebits = tb.TotalDebits.Add(r.Debit)
		tb.TotalCredits = tb.TotalCredits.Add(r.Credit)
	}
	tb.IsBalanced = WithinTolerance(tb.TotalDebits, tb.TotalCredits)
	return tb
}

// Finding is one problem detected by a consistency check.
type Finding struct {
	Diagnosis string `json:"diagnosis"`
	Reference string `json:"reference,omitempty"`
	Detail    string `json:"detail"`
}

// TotalsComparison is the outcome of comparing ledger totals against a baseline.
type TotalsComparison struct {
	Expected  LedgerTotals     `json:"expected"`
	Actual    LedgerTotals     `json:"actual"`
	Ratio     *decimal.Decimal `json:"ratio,omitempty"`
	Diagnosis string           `json:"diagnosis,omitempty"`
}

// VerificationReport is the read-only result of a consistency run.
type VerificationReport struct {
	TenantID     string            `json:"tenantID"`
	SessionID    string            `json:"sessionID,omitempty"`
	CheckedAt    time.Time         `json:"checkedAt"`
	TrialBalance *TrialBalance     `json:"trialBalance,omitempty"`
	Comparison   *TotalsComparison `json:"comparison,omitempty"`
	Findings     []Finding         `json:"findings"`
}

// Healthy reports whether the run produced no findings.
func (r VerificationReport) Healthy() bool {
	return len(r.Findings) == 0
}
