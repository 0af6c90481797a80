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

type ReconciliationServiceTestSuite struct {
	suite.Suite
	accounts    *MockAccountRepository
	periods     *MockFiscalPeriodRepository
	journals    *MockJournalRepository
	adjustments *MockAdjustmentRepository
	service     portssvc.ReconciliationSvcFacade
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.accounts = new(MockAccountRepository)
	suite.periods = new(MockFiscalPeriodRepository)
	suite.journals = new(MockJournalRepository)
	suite.adjustments = new(MockAdjustmentRepository)
	suite.service = services.NewReconciliationService(suite.accounts, suite.journals, suite.adjustments, newTestPreparer(suite.accounts, suite.periods))
}

func feeAdjustment() *domain.ReconciliationAdjustment {
	return &domain.ReconciliationAdjustment{
		ID:              "adj-1",
		TenantID:        testTenantID,
		SessionID:       "rec-1",
		Description:     "March bank fee",
		Amount:          dec("25"),
		AdjustmentType:  domain.AdjustmentFee,
		BankAccountID:   operatingBankID,
		LedgerAccountID: bankChargesID,
		FiscalPeriodID:  "2024-03",
		TransactionDate: time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC),
		CreatedBy:       testUserID,
		CreatedAt:       fixedNow,
	}
}

// postAndCapture posts adj through the service and returns the journal handed to the repository.
func (suite *ReconciliationServiceTestSuite) postAndCapture(adj *domain.ReconciliationAdjustment) (*domain.ReconciliationAdjustment, domain.JournalEntry) {
	suite.adjustments.On("FindAdjustmentByID", mock.Anything, testTenantID, adj.ID).Return(adj, nil).Once()
	var entry domain.JournalEntry
	suite.adjustments.On("PostAdjustmentJournal", mock.Anything, testTenantID, adj.ID, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { entry = args.Get(3).(domain.JournalEntry) }).
		Return([]domain.GeneralLedgerEntry{}, nil).Once()

	posted, err := suite.service.PostAdjustment(context.Background(), testTenantID, testUserID, adj.ID)
	suite.Require().NoError(err)
	return posted, entry
}

func (suite *ReconciliationServiceTestSuite) TestPostAdjustment_FeeDebitsLedgerAccount() {
	posted, entry := suite.postAndCapture(feeAdjustment())

	suite.Equal(domain.SourceAdjustment, entry.Source)
	suite.Equal("RECONCILIATION_ADJ", entry.JournalCode)
	suite.Equal("ADJ-adj-1", entry.Reference)
	suite.Equal("Reconciliation adjustment: March bank fee", entry.Description)
	suite.Equal("adj-1", entry.Metadata[domain.MetaAdjustmentID])
	suite.Equal("fee", entry.Metadata[domain.MetaAdjustmentType])
	suite.Equal("rec-1", entry.Metadata[domain.MetaReconciliationID])

	suite.Require().Len(entry.Lines, 2)
	charges, _ := lineFor(entry.Lines, bankChargesID)
	suite.True(dec("25").Equal(charges.Debit))
	bank, _ := lineFor(entry.Lines, operatingBankID)
	suite.True(dec("25").Equal(bank.Credit))

	suite.Require().NotNil(posted.PostedJournalID)
	suite.Equal(entry.ID, *posted.PostedJournalID)
}

func (suite *ReconciliationServiceTestSuite) TestPostAdjustment_Directions() {
	tests := []struct {
		name        string
		adjType     domain.AdjustmentType
		amount      string
		debitAcct   string
		creditAcct  string
		ledgerAcct  string
		description string
	}{
		{"interest credits income", domain.AdjustmentInterest, "12.50", operatingBankID, interestID, interestID, "interest"},
		{"negative fee refunds", domain.AdjustmentFee, "-25", operatingBankID, bankChargesID, bankChargesID, "fee refund"},
		{"negative interest", domain.AdjustmentInterest, "-3", interestID, operatingBankID, interestID, "interest clawback"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			adj := feeAdjustment()
			adj.ID = "adj-" + tt.description
			adj.AdjustmentType = tt.adjType
			adj.Amount = dec(tt.amount)
			adj.LedgerAccountID = tt.ledgerAcct
			adj.Description = tt.description

			_, entry := suite.postAndCapture(adj)

			debit, _ := lineFor(entry.Lines, tt.debitAcct)
			credit, _ := lineFor(entry.Lines, tt.creditAcct)
			suite.True(dec(tt.amount).Abs().Equal(debit.Debit))
			suite.True(dec(tt.amount).Abs().Equal(credit.Credit))
		})
	}
}

func (suite *ReconciliationServiceTestSuite) TestPostAdjustment_AlreadyPostedIsNoop() {
	adj := feeAdjustment()
	journalID := "je-existing"
	adj.PostedJournalID = &journalID
	suite.adjustments.On("FindAdjustmentByID", mock.Anything, testTenantID, adj.ID).Return(adj, nil)

	got, err := suite.service.PostAdjustment(context.Background(), testTenantID, testUserID, adj.ID)

	suite.Require().NoError(err)
	suite.Equal("je-existing", *got.PostedJournalID)
	suite.adjustments.AssertNotCalled(suite.T(), "PostAdjustmentJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestPostAdjustment_LostRaceReturnsWinner() {
	adj := feeAdjustment()
	winnerID := "je-winner"
	winner := feeAdjustment()
	winner.PostedJournalID = &winnerID
	suite.adjustments.On("FindAdjustmentByID", mock.Anything, testTenantID, adj.ID).Return(adj, nil).Once()
	suite.adjustments.On("FindAdjustmentByID", mock.Anything, testTenantID, adj.ID).Return(winner, nil).Once()
	suite.adjustments.On("PostAdjustmentJournal", mock.Anything, testTenantID, adj.ID, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrConflict)

	got, err := suite.service.PostAdjustment(context.Background(), testTenantID, testUserID, adj.ID)

	suite.Require().NoError(err)
	suite.Equal("je-winner", *got.PostedJournalID)
}

func (suite *ReconciliationServiceTestSuite) postedFee() (*domain.ReconciliationAdjustment, *domain.JournalEntry) {
	adj := feeAdjustment()
	journalID := "je-adj-1"
	adj.PostedJournalID = &journalID
	original := &domain.JournalEntry{
		ID:              journalID,
		TenantID:        testTenantID,
		FiscalPeriodID:  "2024-03",
		JournalCode:     "RECONCILIATION_ADJ",
		Reference:       "ADJ-adj-1",
		Description:     "Reconciliation adjustment: March bank fee",
		Status:          domain.StatusPosted,
		Source:          domain.SourceAdjustment,
		TransactionDate: adj.TransactionDate,
		Metadata:        map[string]string{domain.MetaAdjustmentID: adj.ID},
		Lines: []domain.JournalLine{
			{LineID: "l1", JournalEntryID: journalID, LineNumber: 1, AccountID: bankChargesID, AccountType: domain.Expense, Description: "March bank fee", Debit: dec("25"), Credit: dec("0"), Currency: "ZAR"},
			{LineID: "l2", JournalEntryID: journalID, LineNumber: 2, AccountID: operatingBankID, AccountType: domain.Asset, Description: "March bank fee", Debit: dec("0"), Credit: dec("25"), Currency: "ZAR"},
		},
	}
	return adj, original
}

func (suite *ReconciliationServiceTestSuite) TestReverseAdjustment_MirrorsOriginal() {
	adj, original := suite.postedFee()
	suite.adjustments.On("FindAdjustmentByID", mock.Anything, testTenantID, adj.ID).Return(adj, nil)
	suite.journals.On("FindJournalByID", mock.Anything, testTenantID, original.ID).Return(original, nil)
	var reversal domain.JournalEntry
	var events []domain.OutboxEvent
	suite.adjustments.On("ReverseAdjustment", mock.Anything, testTenantID, adj.ID, "duplicate fee", fixedNow, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			reversal = args.Get(5).(domain.JournalEntry)
			events = args.Get(7).([]domain.OutboxEvent)
		}).
		Return([]domain.GeneralLedgerEntry{}, nil)

	got, err := suite.service.ReverseAdjustment(context.Background(), testTenantID, testUserID, adj.ID, "  duplicate fee ")
	suite.Require().NoError(err)

	suite.Equal(domain.SourceReversal, reversal.Source)
	suite.Equal("RECONCILIATION_REV", reversal.JournalCode)
	suite.Equal("REV-ADJ-adj-1", reversal.Reference)
	suite.Equal("Reversal of Reconciliation adjustment: March bank fee - Reason: duplicate fee", reversal.Description)
	suite.Equal("2024-03", reversal.FiscalPeriodID)
	suite.Equal(fixedNow, reversal.TransactionDate)
	suite.Require().NotNil(reversal.ReversalOf)
	suite.Equal(original.ID, *reversal.ReversalOf)

	charges, _ := lineFor(reversal.Lines, bankChargesID)
	suite.True(dec("25").Equal(charges.Credit))
	suite.Equal("Reversal: March bank fee", charges.Description)
	bank, _ := lineFor(reversal.Lines, operatingBankID)
	suite.True(dec("25").Equal(bank.Debit))
	suite.NotEqual("l1", charges.LineID)

	// Original untouched.
	suite.True(dec("25").Equal(original.Lines[0].Debit))
	suite.Equal("l1", original.Lines[0].LineID)
	suite.Equal(domain.StatusPosted, original.Status)

	suite.Require().Len(events, 2)
	suite.Equal(domain.EventJournalPosted, events[0].EventType)
	suite.Equal(domain.EventAdjustmentReversed, events[1].EventType)

	suite.Require().NotNil(got.ReversalJournalID)
	suite.Equal(reversal.ID, *got.ReversalJournalID)
	suite.Equal("duplicate fee", got.ReversalReason)
}

func (suite *ReconciliationServiceTestSuite) TestReverseAdjustment_SecondReversalIsDuplicate() {
	adj, _ := suite.postedFee()
	reversalID := "je-rev"
	adj.ReversalJournalID = &reversalID
	suite.adjustments.On("FindAdjustmentByID", mock.Anything, testTenantID, adj.ID).Return(adj, nil)

	_, err := suite.service.ReverseAdjustment(context.Background(), testTenantID, testUserID, adj.ID, "again")

	var de *apperrors.DuplicateError
	suite.Require().True(errors.As(err, &de))
	suite.Equal("adjustment:adj-1:reversal", de.Key)
	suite.journals.AssertNotCalled(suite.T(), "FindJournalByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestReverseAdjustment_LostClaimIsDuplicate() {
	adj, original := suite.postedFee()
	suite.adjustments.On("FindAdjustmentByID", mock.Anything, testTenantID, adj.ID).Return(adj, nil)
	suite.journals.On("FindJournalByID", mock.Anything, testTenantID, original.ID).Return(original, nil)
	suite.adjustments.On("ReverseAdjustment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("claim reversal: %w", apperrors.ErrDuplicate))

	_, err := suite.service.ReverseAdjustment(context.Background(), testTenantID, testUserID, adj.ID, "race")

	var de *apperrors.DuplicateError
	suite.Require().True(errors.As(err, &de))
	suite.Equal("rec-1", de.SessionID)
}

func (suite *ReconciliationServiceTestSuite) TestReverseAdjustment_Rejections() {
	unposted := feeAdjustment()
	suite.adjustments.On("FindAdjustmentByID", mock.Anything, testTenantID, unposted.ID).Return(unposted, nil)
	suite.adjustments.On("FindAdjustmentByID", mock.Anything, testTenantID, "adj-missing").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.ReverseAdjustment(context.Background(), testTenantID, testUserID, unposted.ID, "")
	suite.ErrorIs(err, apperrors.ErrValidation, "reason is required")

	_, err = suite.service.ReverseAdjustment(context.Background(), testTenantID, testUserID, unposted.ID, "why")
	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	suite.Equal(apperrors.RuleSessionState, ve.Rule)

	_, err = suite.service.ReverseAdjustment(context.Background(), testTenantID, testUserID, "adj-missing", "why")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestRecordAdjustment_StoresIntentOnly() {
	var saved []domain.ReconciliationAdjustment
	suite.adjustments.On("SaveAdjustments", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).([]domain.ReconciliationAdjustment) }).
		Return(nil)

	adj, err := suite.service.RecordAdjustment(context.Background(), testTenantID, testUserID, "rec-1", dto.RecordAdjustmentRequest{
		Description:     "March bank fee",
		Amount:          dec("25"),
		AdjustmentType:  "FEE",
		BankAccountID:   operatingBankID,
		LedgerAccountID: bankChargesID,
	})

	suite.Require().NoError(err)
	suite.Require().Len(saved, 1)
	suite.Equal(domain.AdjustmentFee, adj.AdjustmentType)
	suite.Equal("6100", adj.LedgerAccountCode)
	suite.Equal("2024-03", adj.FiscalPeriodID)
	suite.Equal(fixedNow, adj.TransactionDate)
	suite.Nil(adj.PostedJournalID)
	suite.adjustments.AssertNotCalled(suite.T(), "PostAdjustmentJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestBulkRecordAdjustments_RejectsWholeBatch() {
	reqs := []dto.RecordAdjustmentRequest{
		{Description: "ok", Amount: dec("5"), AdjustmentType: "fee", BankAccountID: operatingBankID, LedgerAccountID: bankChargesID},
		{Description: "same account", Amount: dec("5"), AdjustmentType: "fee", BankAccountID: operatingBankID, LedgerAccountID: operatingBankID},
	}

	_, err := suite.service.BulkRecordAdjustments(context.Background(), testTenantID, testUserID, "rec-1", dto.BulkRecordAdjustmentsRequest{Adjustments: reqs})

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	suite.Contains(ve.Detail, "adjustment 2")
	suite.Equal("rec-1", ve.SessionID)
	suite.adjustments.AssertNotCalled(suite.T(), "SaveAdjustments", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestBulkRecordAdjustments_RefusesBatchLeavingDifference() {
	existing := *feeAdjustment()
	existing.Amount = dec("10")
	suite.adjustments.On("ListAdjustmentsBySession", mock.Anything, testTenantID, "rec-1").
		Return([]domain.ReconciliationAdjustment{existing}, nil)
	expected := dec("40")
	bulk := dto.BulkRecordAdjustmentsRequest{
		Adjustments: []dto.RecordAdjustmentRequest{
			{Description: "fee", Amount: dec("25"), AdjustmentType: "fee", BankAccountID: operatingBankID, LedgerAccountID: bankChargesID},
		},
		ExpectedDifference: &expected,
	}

	_, err := suite.service.BulkRecordAdjustments(context.Background(), testTenantID, testUserID, "rec-1", bulk)

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	suite.Equal(apperrors.RuleAdjustmentBalance, ve.Rule)
	suite.Equal("adjustments would leave a difference of 5.00", ve.Detail)
	suite.Equal("rec-1", ve.SessionID)
	suite.adjustments.AssertNotCalled(suite.T(), "SaveAdjustments", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestBulkRecordAdjustments_SettlingBatchIsSaved() {
	existing := *feeAdjustment()
	existing.Amount = dec("10")
	suite.adjustments.On("ListAdjustmentsBySession", mock.Anything, testTenantID, "rec-1").
		Return([]domain.ReconciliationAdjustment{existing}, nil)
	suite.adjustments.On("SaveAdjustments", mock.Anything, mock.AnythingOfType("[]domain.ReconciliationAdjustment")).Return(nil).Once()
	expected := dec("40.004")
	bulk := dto.BulkRecordAdjustmentsRequest{
		Adjustments: []dto.RecordAdjustmentRequest{
			{Description: "fee", Amount: dec("25"), AdjustmentType: "fee", BankAccountID: operatingBankID, LedgerAccountID: bankChargesID},
			{Description: "second fee", Amount: dec("5"), AdjustmentType: "fee", BankAccountID: operatingBankID, LedgerAccountID: bankChargesID},
		},
		ExpectedDifference: &expected,
	}

	saved, err := suite.service.BulkRecordAdjustments(context.Background(), testTenantID, testUserID, "rec-1", bulk)

	suite.Require().NoError(err)
	suite.Len(saved, 2)
	suite.adjustments.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestValidateAdjustmentBalance_IgnoresReversed() {
	reversedID := "je-rev"
	reversed := *feeAdjustment()
	reversed.ReversalJournalID = &reversedID
	reversed.Amount = dec("100")
	active := *feeAdjustment()
	active.Amount = dec("25")
	interest := *feeAdjustment()
	interest.Amount = dec("-5.004")
	suite.adjustments.On("ListAdjustmentsBySession", mock.Anything, testTenantID, "rec-1").
		Return([]domain.ReconciliationAdjustment{reversed, active, interest}, nil)

	check, err := suite.service.ValidateAdjustmentBalance(context.Background(), testTenantID, "rec-1", dec("20"))

	suite.Require().NoError(err)
	suite.True(dec("19.996").Equal(check.AdjustmentTotal))
	suite.True(check.IsBalanced)

	check, err = suite.service.ValidateAdjustmentBalance(context.Background(), testTenantID, "rec-1", dec("21"))
	suite.Require().NoError(err)
	suite.False(check.IsBalanced)
	suite.True(dec("1.004").Equal(check.Remaining))
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
