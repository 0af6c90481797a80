package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/core/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OpeningBalanceServiceTestSuite struct {
	suite.Suite
	accounts *MockAccountRepository
	periods  *MockFiscalPeriodRepository
	journals *MockJournalRepository
	service  portssvc.OpeningBalanceSvc
}

func (suite *OpeningBalanceServiceTestSuite) SetupTest() {
	suite.accounts = new(MockAccountRepository)
	suite.periods = new(MockFiscalPeriodRepository)
	suite.journals = new(MockJournalRepository)
	suite.service = services.NewOpeningBalanceService(suite.accounts, suite.journals, newTestPreparer(suite.accounts, suite.periods))
}

func (suite *OpeningBalanceServiceTestSuite) scenarioA() dto.CreateOpeningBalanceRequest {
	return dto.CreateOpeningBalanceRequest{
		FiscalPeriodID:            "fy-2024",
		AsOfDate:                  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		RetainedEarningsAccountID: retainedID,
		Balances: []dto.OpeningBalanceLineRequest{
			{AccountID: cashID, AccountType: "asset", Amount: dec("1000")},
			{AccountID: payablesID, AccountType: "liability", Amount: dec("400")},
		},
	}
}

func (suite *OpeningBalanceServiceTestSuite) TestCreateOpeningBalance_BalancesThroughRetainedEarnings() {
	suite.journals.On("FindOpeningBalanceEntry", mock.Anything, testTenantID, "fy-2024").Return(nil, apperrors.ErrNotFound).Once()
	var saved domain.JournalEntry
	var ledger []domain.GeneralLedgerEntry
	suite.journals.On("SaveJournalWithLedger", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.JournalEntry)
			ledger = args.Get(2).([]domain.GeneralLedgerEntry)
		}).
		Return([]domain.GeneralLedgerEntry{}, nil).Once()

	_, err := suite.service.CreateOpeningBalance(context.Background(), testTenantID, testUserID, suite.scenarioA())
	suite.Require().NoError(err)

	suite.Equal(domain.SourceOpeningBalance, saved.Source)
	suite.Equal("OB", saved.JournalCode)
	suite.Equal("OB-fy-2024", saved.Reference)
	suite.Equal("Opening balances as of 2024-01-01", saved.Description)
	suite.Equal(domain.StatusPosted, saved.Status)
	suite.Require().Len(saved.Lines, 3)

	cash, _ := lineFor(saved.Lines, cashID)
	suite.True(dec("1000").Equal(cash.Debit))
	suite.Equal("Opening balance - Cash", cash.Description)
	ap, _ := lineFor(saved.Lines, payablesID)
	suite.True(dec("400").Equal(ap.Credit))
	re, _ := lineFor(saved.Lines, retainedID)
	suite.True(dec("600").Equal(re.Credit))
	suite.True(re.Debit.IsZero())
	suite.Equal("Balancing entry for opening balances", re.Description)

	debits, credits := saved.Totals()
	suite.True(dec("1000").Equal(debits))
	suite.True(dec("1000").Equal(credits))
	suite.Len(ledger, 3)
}

func (suite *OpeningBalanceServiceTestSuite) TestCreateOpeningBalance_NegativeDifferenceDebitsRetainedEarnings() {
	suite.journals.On("FindOpeningBalanceEntry", mock.Anything, testTenantID, "fy-2024").Return(nil, apperrors.ErrNotFound)
	var saved domain.JournalEntry
	suite.journals.On("SaveJournalWithLedger", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.JournalEntry) }).
		Return([]domain.GeneralLedgerEntry{}, nil)

	req := suite.scenarioA()
	req.Balances = []dto.OpeningBalanceLineRequest{
		{AccountID: payablesID, Amount: dec("700")},
		{AccountID: cashID, Amount: dec("0")},
	}
	_, err := suite.service.CreateOpeningBalance(context.Background(), testTenantID, testUserID, req)
	suite.Require().NoError(err)

	suite.Require().Len(saved.Lines, 2, "zero balances are skipped")
	re, _ := lineFor(saved.Lines, retainedID)
	suite.True(dec("700").Equal(re.Debit))
}

func (suite *OpeningBalanceServiceTestSuite) TestCreateOpeningBalance_ExistingEntryIsDuplicate() {
	suite.journals.On("FindOpeningBalanceEntry", mock.Anything, testTenantID, "fy-2024").Return(&domain.JournalEntry{ID: "je-ob"}, nil)

	_, err := suite.service.CreateOpeningBalance(context.Background(), testTenantID, testUserID, suite.scenarioA())

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal("Opening balance already exists for this fiscal period. Please delete the existing entry first.", apperrors.PublicMessage(err))
	suite.journals.AssertNotCalled(suite.T(), "SaveJournalWithLedger", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestCreateOpeningBalance_LostRaceIsDuplicate() {
	suite.journals.On("FindOpeningBalanceEntry", mock.Anything, testTenantID, "fy-2024").Return(nil, apperrors.ErrNotFound)
	suite.journals.On("SaveJournalWithLedger", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("insert journal entry: %w", apperrors.ErrDuplicate))

	_, err := suite.service.CreateOpeningBalance(context.Background(), testTenantID, testUserID, suite.scenarioA())

	var de *apperrors.DuplicateError
	suite.Require().True(errors.As(err, &de))
	suite.Equal("opening_balance:fy-2024", de.Key)
	suite.Equal(testTenantID, de.TenantID)
}

func (suite *OpeningBalanceServiceTestSuite) TestCreateOpeningBalance_InputErrors() {
	suite.journals.On("FindOpeningBalanceEntry", mock.Anything, testTenantID, mock.Anything).Return(nil, apperrors.ErrNotFound).Maybe()

	duplicateAccounts := suite.scenarioA()
	duplicateAccounts.Balances = append(duplicateAccounts.Balances, dto.OpeningBalanceLineRequest{AccountID: cashID, Amount: dec("1")})

	wrongType := suite.scenarioA()
	wrongType.Balances[0].AccountType = "liability"

	unknown := suite.scenarioA()
	unknown.Balances[0].AccountID = "acc-missing"

	allZero := suite.scenarioA()
	allZero.Balances = []dto.OpeningBalanceLineRequest{{AccountID: cashID, Amount: dec("0")}}

	for name, req := range map[string]dto.CreateOpeningBalanceRequest{
		"duplicate accounts": duplicateAccounts,
		"type mismatch":      wrongType,
		"unknown account":    unknown,
		"all zero":           allZero,
	} {
		_, err := suite.service.CreateOpeningBalance(context.Background(), testTenantID, testUserID, req)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
	}
}

func (suite *OpeningBalanceServiceTestSuite) TestGetOpeningBalance_NotFound() {
	suite.journals.On("FindOpeningBalanceEntry", mock.Anything, testTenantID, "fy-1999").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.GetOpeningBalance(context.Background(), testTenantID, "fy-1999")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestOpeningBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OpeningBalanceServiceTestSuite))
}
