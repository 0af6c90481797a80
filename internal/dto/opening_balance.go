package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalanceLineRequest is one account balance, signed by the account's normal side.
type OpeningBalanceLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	AccountType string          `json:"accountType,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateOpeningBalanceRequest defines the data needed to initialise a fiscal period.
type CreateOpeningBalanceRequest struct {
	FiscalPeriodID            string                      `json:"fiscalPeriodID" binding:"required"`
	AsOfDate                  time.Time                   `json:"asOfDate" binding:"required"`
	RetainedEarningsAccountID string                      `json:"retainedEarningsAccountID" binding:"required"`
	Currency                  string                      `json:"currency" binding:"omitempty,len=3"`
	Balances                  []OpeningBalanceLineRequest `json:"balances" binding:"required,min=1,dive"`
}
