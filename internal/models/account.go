package models

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is a row of the chart of accounts catalogue.
// Balance is the ledger-maintained running balance and is only written under row lock.
type Account struct {
	AccountID   string          `db:"id"`
	TenantID    string          `db:"tenant_id"`
	Code        string          `db:"code"`
	Name        string          `db:"name"`
	AccountType AccountType     `db:"account_type"`
	IsActive    bool            `db:"is_active"`
	Balance     decimal.Decimal `db:"balance"`
}
