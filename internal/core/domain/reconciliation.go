package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentType classifies a reconciliation adjustment.
type AdjustmentType string

const (
	AdjustmentFee      AdjustmentType = "fee"
	AdjustmentInterest AdjustmentType = "interest"
	AdjustmentTiming   AdjustmentType = "timing"
	AdjustmentOther    AdjustmentType = "other"
)

// Valid reports whether t is a known adjustment type.
func (t AdjustmentType) Valid() bool {
	switch t {
	case AdjustmentFee, AdjustmentInterest, AdjustmentTiming, AdjustmentOther:
		return true
	}
	return false
}

// ReconciliationAdjustment records the intent to correct a reconciliation
// difference. It is written before its journal exists.
type ReconciliationAdjustment struct {
	ID                string            `json:"id"`
	TenantID          string            `json:"tenantID"`
	SessionID         string            `json:"sessionID"`
	Description       string            `json:"description"`
	Amount            decimal.Decimal   `json:"amount"`
	AdjustmentType    AdjustmentType    `json:"adjustmentType"`
	BankAccountID     string            `json:"bankAccountID"`
	LedgerAccountID   string            `json:"ledgerAccountID"`
	LedgerAccountCode string            `json:"ledgerAccountCode"`
	FiscalPeriodID    string            `json:"fiscalPeriodID"`
	TransactionDate   time.Time         `json:"transactionDate"`
	PostedJournalID   *string           `json:"postedJournalID,omitempty"`
	ReversalJournalID *string           `json:"reversalJournalID,omitempty"`
	ReversalReason    string            `json:"reversalReason,omitempty"`
	ReversedAt        *time.Time        `json:"reversedAt,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	CreatedBy         string            `json:"createdBy"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// IsPosted reports whether the adjustment journal has been written.
func (a ReconciliationAdjustment) IsPosted() bool {
	return a.PostedJournalID != nil
}

// IsReversed reports whether the adjustment has already been reversed.
func (a ReconciliationAdjustment) IsReversed() bool {
	return a.ReversalJournalID != nil
}

// AdjustmentBalanceCheck compares recorded adjustments with the difference they must explain.
type AdjustmentBalanceCheck struct {
	SessionID          string          `json:"sessionID"`
	ExpectedDifference decimal.Decimal `json:"expectedDifference"`
	AdjustmentTotal    decimal.Decimal `json:"adjustmentTotal"`
	Remaining          decimal.Decimal `json:"remaining"`
	IsBalanced         bool            `json:"isBalanced"`
}
