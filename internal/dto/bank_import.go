package dto

import (
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankImportRequest opens a new staging session for a bank account.
type CreateBankImportRequest struct {
	BankAccountID  string `json:"bankAccountID" binding:"required"`
	FiscalPeriodID string `json:"fiscalPeriodID"`
	Currency       string `json:"currency" binding:"omitempty,len=3"`
}

// BankTransactionRequest is one raw statement line.
type BankTransactionRequest struct {
	TransactionID string          `json:"transactionID" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" binding:"omitempty,len=3"`
}

// StageTransactionsRequest wraps a batch of statement lines.
type StageTransactionsRequest struct {
	Transactions []BankTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

// ToBankTransactions converts the request lines to domain transactions.
func (r StageTransactionsRequest) ToBankTransactions() []domain.BankTransaction {
	txns := make([]domain.BankTransaction, len(r.Transactions))
	for i, t := range r.Transactions {
		txns[i] = domain.BankTransaction{
			TransactionID: t.TransactionID,
			Date:          t.Date,
			Description:   t.Description,
			Reference:     t.Reference,
			Amount:        t.Amount,
			Currency:      t.Currency,
		}
	}
	return txns
}
