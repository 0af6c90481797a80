package services_test

import (
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const (
	testTenantID = "tenant-1"
	testUserID   = "user-1"

	cashID          = "acc-cash"
	payablesID      = "acc-ap"
	retainedID      = "acc-re"
	bankChargesID   = "acc-bank-charges"
	operatingBankID = "acc-operating-bank"
	interestID      = "acc-interest"
	salesID         = "acc-sales"
)

var fixedNow = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testAccounts() map[string]domain.Account {
	accounts := []domain.Account{
		{AccountID: cashID, Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true},
		{AccountID: operatingBankID, Code: "1010", Name: "Operating Bank Account", AccountType: domain.Asset, IsActive: true},
		{AccountID: payablesID, Code: "2000", Name: "Accounts Payable", AccountType: domain.Liability, IsActive: true},
		{AccountID: retainedID, Code: "3000", Name: "Retained Earnings", AccountType: domain.Equity, IsActive: true},
		{AccountID: salesID, Code: "4000", Name: "Sales", AccountType: domain.Revenue, IsActive: true},
		{AccountID: interestID, Code: "4100", Name: "Interest Income", AccountType: domain.Revenue, IsActive: true},
		{AccountID: bankChargesID, Code: "6100", Name: "Bank Charges", AccountType: domain.Expense, IsActive: true},
	}
	m := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		a.TenantID = testTenantID
		m[a.AccountID] = a
	}
	return m
}

func testBase() services.BaseService {
	return services.BaseService{Clock: func() time.Time { return fixedNow }}
}

// newTestPreparer wires the shared posting steps over mocks that know the
// test chart of accounts and treat every fiscal period as open.
func newTestPreparer(accounts *MockAccountRepository, periods *MockFiscalPeriodRepository) *services.JournalPreparer {
	accounts.On("FindAccountsByIDs", mock.Anything, testTenantID, mock.Anything).Return(testAccounts(), nil).Maybe()
	periods.On("FindFiscalPeriodByID", mock.Anything, testTenantID, mock.Anything).
		Return(&domain.FiscalPeriod{ID: "2024-03", TenantID: testTenantID, Name: "March 2024", Status: domain.FiscalPeriodOpen}, nil).Maybe()
	validator := services.NewJournalValidator(accounts, "ZAR")
	return services.NewJournalPreparer(testBase(), validator, services.NewLedgerProjector(), periods)
}

func debitLine(accountID, amount string) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, Debit: dec(amount), Credit: decimal.Zero}
}

func creditLine(accountID, amount string) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, Debit: decimal.Zero, Credit: dec(amount)}
}

func lineFor(lines []domain.JournalLine, accountID string) (domain.JournalLine, bool) {
	for _, l := range lines {
		if l.AccountID == accountID {
			return l, true
		}
	}
	return domain.JournalLine{}, false
}
