package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the account's normal side to a journal line.
// This is used by the projector and the running balance calculation so both agree.
func SignedAmount(line domain.JournalLine) (decimal.Decimal, error) {
	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch line.AccountType {
	case domain.Asset, domain.Expense:
		return line.Debit.Sub(line.Credit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return line.Credit.Sub(line.Debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", line.AccountType, line.AccountID)
	}
}

// SplitSignedBalance converts a signed balance into debit and credit amounts.
// Positive balances land on the account type's normal side, negative ones on the other.
func SplitSignedBalance(accountType domain.AccountType, amount decimal.Decimal) (debit, credit decimal.Decimal, err error) {
	if !accountType.Valid() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
	abs := amount.Abs()
	positive := amount.IsPositive()
	if accountType.DebitNormal() == positive {
		return abs, decimal.Zero, nil
	}
	return decimal.Zero, abs, nil
}

// BalancingAmounts returns the line that offsets difference = Σdebit − Σcredit.
// A positive difference is credited, anything else is debited by its magnitude.
func BalancingAmounts(difference decimal.Decimal) (debit, credit decimal.Decimal) {
	if difference.IsPositive() {
		return decimal.Zero, difference
	}
	return difference.Abs(), decimal.Zero
}

// SumLines totals the debit and credit sides of lines.
func SumLines(lines []domain.JournalLine) (debit, credit decimal.Decimal) {
	return domain.JournalEntry{Lines: lines}.Totals()
}
