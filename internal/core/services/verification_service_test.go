package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func TestDiagnoseTotals(t *testing.T) {
	tests := []struct {
		name      string
		expected  domain.LedgerTotals
		actual    domain.LedgerTotals
		diagnosis string
		ratio     string
	}{
		{"equal", totals("1000", "1000", 4), totals("1000", "1000", 4), "", ""},
		{"within tolerance", totals("1000", "1000", 4), totals("1000.009", "1000", 4), "", ""},
		{"doubled", totals("1000", "1000", 4), totals("2000", "2000", 8), apperrors.DiagnosisProbableDuplicatePosting, "2"},
		{"tripled", totals("1000", "1000", 4), totals("3000", "3000", 12), apperrors.DiagnosisProbableDuplicatePosting, "3"},
		{"partial", totals("1000", "1000", 4), totals("1500", "1500", 6), apperrors.DiagnosisTotalsMismatch, "1.5"},
		{"missing rows", totals("1000", "1000", 4), totals("500", "500", 2), apperrors.DiagnosisTotalsMismatch, "0.5"},
		{"row count only", totals("1000", "1000", 4), totals("1000", "1000", 5), apperrors.DiagnosisTotalsMismatch, "1"},
		{"empty baseline", totals("0", "0", 0), totals("10", "10", 2), apperrors.DiagnosisTotalsMismatch, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := services.DiagnoseTotals(tt.expected, tt.actual)
			assert.Equal(t, tt.diagnosis, cmp.Diagnosis)
			if tt.ratio == "" {
				assert.Nil(t, cmp.Ratio)
				return
			}
			if assert.NotNil(t, cmp.Ratio) {
				assert.True(t, dec(tt.ratio).Equal(*cmp.Ratio), "ratio %s", cmp.Ratio)
			}
		})
	}
}

type VerificationServiceTestSuite struct {
	suite.Suite
	verification *MockVerificationRepository
	staging      *MockStagingRepository
	archive      *MockArchiveRepository
	service      portssvc.VerificationSvc
}

func (suite *VerificationServiceTestSuite) SetupTest() {
	suite.verification = new(MockVerificationRepository)
	suite.staging = new(MockStagingRepository)
	suite.archive = new(MockArchiveRepository)
	suite.service = services.NewVerificationService(suite.verification, suite.staging, suite.archive, services.WithFindingLimit(10))
}

func (suite *VerificationServiceTestSuite) healthyChecks() {
	suite.verification.On("FindDuplicatedLedgerLines", mock.Anything, testTenantID, 10).Return([]string{}, nil).Maybe()
	suite.verification.On("FindOrphanedLedgerEntries", mock.Anything, testTenantID, 10).Return([]domain.GeneralLedgerEntry{}, nil).Maybe()
	suite.verification.On("FindLinesWithoutLedger", mock.Anything, testTenantID, 10).Return([]domain.JournalLine{}, nil).Maybe()
	suite.verification.On("FindUnbalancedJournals", mock.Anything, testTenantID, 10).Return([]domain.JournalTotals{}, nil).Maybe()
	suite.verification.On("TrialBalanceByAccountCode", mock.Anything, testTenantID).Return([]domain.TrialBalanceRow{
		{AccountCode: "1000", AccountName: "Cash", Debit: dec("1000"), Credit: dec("0")},
		{AccountCode: "2000", AccountName: "Accounts Payable", Debit: dec("0"), Credit: dec("400")},
		{AccountCode: "3000", AccountName: "Retained Earnings", Debit: dec("0"), Credit: dec("600")},
	}, nil).Maybe()
}

func (suite *VerificationServiceTestSuite) TestVerifyTenant_Healthy() {
	suite.healthyChecks()

	report, err := suite.service.VerifyTenant(context.Background(), testTenantID)

	suite.Require().NoError(err)
	suite.True(report.Healthy())
	suite.Empty(report.Findings)
	suite.Require().NotNil(report.TrialBalance)
	suite.True(report.TrialBalance.IsBalanced)
	suite.True(dec("1000").Equal(report.TrialBalance.TotalCredits))
}

func (suite *VerificationServiceTestSuite) TestVerifyTenant_OrphansReported() {
	suite.verification.On("FindOrphanedLedgerEntries", mock.Anything, testTenantID, 10).Return([]domain.GeneralLedgerEntry{
		{ID: "gl-9", JournalEntryID: "je-gone", JournalLineID: "line-gone"},
	}, nil)
	suite.verification.On("FindUnbalancedJournals", mock.Anything, testTenantID, 10).Return([]domain.JournalTotals{
		{JournalEntryID: "je-7", Debits: dec("10"), Credits: dec("9")},
	}, nil)
	suite.healthyChecks()

	report, err := suite.service.VerifyTenant(context.Background(), testTenantID)

	var ie *apperrors.IntegrityError
	suite.Require().True(errors.As(err, &ie))
	suite.Equal(apperrors.DiagnosisOrphanedLedgerRow, ie.Diagnosis)
	suite.Require().Len(report.Findings, 2)
	suite.Equal("gl-9", report.Findings[0].Reference)
	suite.Equal(apperrors.DiagnosisUnbalancedJournal, report.Findings[1].Diagnosis)
	suite.Equal("je-7", report.Findings[1].Reference)
}

func (suite *VerificationServiceTestSuite) TestVerifyTenant_DuplicatesComeFirst() {
	suite.verification.On("FindDuplicatedLedgerLines", mock.Anything, testTenantID, 10).Return([]string{"line-1"}, nil)
	suite.verification.On("TrialBalanceByAccountCode", mock.Anything, testTenantID).Return([]domain.TrialBalanceRow{
		{AccountCode: "1000", Debit: dec("2000"), Credit: dec("0")},
		{AccountCode: "4000", Debit: dec("0"), Credit: dec("1000")},
	}, nil)
	suite.healthyChecks()

	report, err := suite.service.VerifyTenant(context.Background(), testTenantID)

	suite.True(apperrors.IsProbableDuplicate(err))
	suite.Require().Len(report.Findings, 2)
	suite.Equal(apperrors.DiagnosisTrialBalanceMismatch, report.Findings[1].Diagnosis)
	suite.False(report.TrialBalance.IsBalanced)
}

// A session whose ledger holds every staged row twice.
func (suite *VerificationServiceTestSuite) TestVerifySession_DoublePostingDiagnosed() {
	session := postedSession()
	session.Staging = balancedSnapshot(2, 4, "1000")
	suite.staging.On("FindSessionByID", mock.Anything, testTenantID, testSessionID).Return(session, nil)
	suite.verification.On("SumSessionLedgerTotals", mock.Anything, testTenantID, testSessionID).Return(totals("2000", "2000", 8), nil)

	report, err := suite.service.VerifySession(context.Background(), testTenantID, testSessionID)

	suite.True(apperrors.IsProbableDuplicate(err))
	var ie *apperrors.IntegrityError
	suite.Require().True(errors.As(err, &ie))
	suite.Equal(testSessionID, ie.SessionID)
	suite.Require().NotNil(report.Comparison)
	suite.True(dec("2").Equal(*report.Comparison.Ratio))
	suite.Len(report.Findings, 1)
}

func (suite *VerificationServiceTestSuite) TestVerifySession_ByStatus() {
	matching := postedSession()
	suite.staging.On("FindSessionByID", mock.Anything, testTenantID, "sess-posted").Return(matching, nil)
	suite.verification.On("SumSessionLedgerTotals", mock.Anything, testTenantID, "sess-posted").Return(totals("125", "125", 4), nil)

	archived := postedSession()
	archived.Status = domain.SessionArchived
	suite.staging.On("FindSessionByID", mock.Anything, testTenantID, "sess-archived").Return(archived, nil)
	suite.archive.On("SumArchivedTotals", mock.Anything, testTenantID, "sess-archived").Return(totals("125", "125", 4), nil)

	suite.staging.On("FindSessionByID", mock.Anything, testTenantID, "sess-staged").Return(stagedSession(), nil)
	suite.staging.On("FindSessionByID", mock.Anything, testTenantID, "sess-missing").Return(nil, apperrors.ErrNotFound)

	report, err := suite.service.VerifySession(context.Background(), testTenantID, "sess-posted")
	suite.Require().NoError(err)
	suite.True(report.Healthy())

	report, err = suite.service.VerifySession(context.Background(), testTenantID, "sess-archived")
	suite.Require().NoError(err)
	suite.True(report.Healthy())

	_, err = suite.service.VerifySession(context.Background(), testTenantID, "sess-staged")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.VerifySession(context.Background(), testTenantID, "sess-missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestVerificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VerificationServiceTestSuite))
}
