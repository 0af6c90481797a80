package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordAdjustmentRequest defines a reconciliation adjustment to record.
// A positive fee is money out of the bank, a positive interest is money in.
type RecordAdjustmentRequest struct {
	Description     string            `json:"description" binding:"required"`
	Amount          decimal.Decimal   `json:"amount"`
	AdjustmentType  string            `json:"adjustmentType" binding:"required,adjustment_type"`
	BankAccountID   string            `json:"bankAccountID" binding:"required"`
	LedgerAccountID string            `json:"ledgerAccountID" binding:"required"`
	FiscalPeriodID  string            `json:"fiscalPeriodID"`
	TransactionDate *time.Time        `json:"transactionDate"`
	Metadata        map[string]string `json:"metadata"`
	Post            bool              `json:"post"`
}

// BulkRecordAdjustmentsRequest wraps several adjustments recorded together.
// When ExpectedDifference is set, the batch is refused unless the adjustments
// in effect plus the new ones settle it within tolerance.
type BulkRecordAdjustmentsRequest struct {
	Adjustments        []RecordAdjustmentRequest `json:"adjustments" binding:"required,min=1,dive"`
	ExpectedDifference *decimal.Decimal          `json:"expectedDifference"`
}

// ReverseAdjustmentRequest carries the mandatory reversal reason.
type ReverseAdjustmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}
