package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/handlers"
	"github.com/SscSPs/ledger_engine/internal/platform/config"
	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testTenant = "tenant-1"
	testUser   = "user-1"
)

type HandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	jwtSecret      string
	journal        *MockJournalService
	openingBalance *MockOpeningBalanceService
	reconciliation *MockReconciliationService
	staging        *MockStagingService
	archive        *MockArchiveService
	verification   *MockVerificationService
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.journal = new(MockJournalService)
	suite.openingBalance = new(MockOpeningBalanceService)
	suite.reconciliation = new(MockReconciliationService)
	suite.staging = new(MockStagingService)
	suite.archive = new(MockArchiveService)
	suite.verification = new(MockVerificationService)

	cfg := &config.Config{
		JWTSecret:          suite.jwtSecret,
		RateLimit:          "1000-M",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
	err := handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Journal:        suite.journal,
		OpeningBalance: suite.openingBalance,
		Reconciliation: suite.reconciliation,
		Staging:        suite.staging,
		Archive:        suite.archive,
		Verification:   suite.verification,
	})
	suite.Require().NoError(err)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.journal.AssertExpectations(suite.T())
	suite.openingBalance.AssertExpectations(suite.T())
	suite.reconciliation.AssertExpectations(suite.T())
	suite.staging.AssertExpectations(suite.T())
	suite.archive.AssertExpectations(suite.T())
	suite.verification.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) token() string {
	token, err := utils.GenerateJWT(testUser, testTenant, suite.jwtSecret, time.Hour, "ledger-test")
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.token())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorOf(w *httptest.ResponseRecorder) string {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func postedJournal() *domain.JournalWithLedger {
	amount := decimal.NewFromInt(100)
	return &domain.JournalWithLedger{
		Entry: domain.JournalEntry{
			ID:          "je-1",
			TenantID:    testTenant,
			Status:      domain.StatusPosted,
			Source:      domain.SourceManual,
			Description: "Cash sale",
			Lines: []domain.JournalLine{
				{LineID: "l1", AccountID: "acc-bank", Debit: amount, Credit: decimal.Zero},
				{LineID: "l2", AccountID: "acc-sales", Debit: decimal.Zero, Credit: amount},
			},
		},
		Ledger: []domain.GeneralLedgerEntry{{ID: "gl-1", JournalLineID: "l1"}, {ID: "gl-2", JournalLineID: "l2"}},
	}
}

const journalBody = `{
	"source": "manual",
	"fiscalPeriodID": "2026-01",
	"description": "Cash sale",
	"transactionDate": "2026-01-10T00:00:00Z",
	"lines": [
		{"accountID": "acc-bank", "debit": "100.00"},
		{"accountID": "acc-sales", "credit": "100.00"}
	]
}`

func (suite *HandlerTestSuite) TestHealthIsPublic() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestSwaggerServedOutsideProduction() {
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "/reconciliations/{sessionID}/adjustments/bulk")
	suite.Contains(w.Body.String(), `"basePath": "/api/v1"`)
}

func (suite *HandlerTestSuite) TestSwaggerHiddenInProduction() {
	r := gin.New()
	cfg := &config.Config{JWTSecret: suite.jwtSecret, RateLimit: "1000-M", IsProduction: true}
	suite.Require().NoError(handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{
		Journal:        suite.journal,
		OpeningBalance: suite.openingBalance,
		Reconciliation: suite.reconciliation,
		Staging:        suite.staging,
		Archive:        suite.archive,
		Verification:   suite.verification,
	}))

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestRequiresToken() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/journals", nil))
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestPostJournal_Success() {
	matches := mock.MatchedBy(func(r dto.PostJournalRequest) bool {
		return r.Source == "manual" && len(r.Lines) == 2 && r.Lines[0].Debit.Equal(decimal.NewFromInt(100))
	})
	suite.journal.On("PostJournal", mock.Anything, testTenant, testUser, matches).Return(postedJournal(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals", journalBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("je-1", resp.ID)
	suite.True(resp.TotalDebits.Equal(resp.TotalCredits))
	suite.Len(resp.Ledger, 2)
}

func (suite *HandlerTestSuite) TestPostJournal_EngineOwnedSourceRejected() {
	body := strings.Replace(journalBody, `"manual"`, `"opening_balance"`, 1)

	w := suite.do(http.MethodPost, "/api/v1/journals", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.journal.AssertNotCalled(suite.T(), "PostJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostJournal_ValidationError() {
	suite.journal.On("PostJournal", mock.Anything, testTenant, testUser, mock.Anything).
		Return(nil, apperrors.NewValidationError(testTenant, apperrors.RuleUnbalanced, "debits 100.00 do not equal credits 90.00")).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals", journalBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Rejected: debits 100.00 do not equal credits 90.00", suite.errorOf(w))
}

func (suite *HandlerTestSuite) TestGetJournal_NotFound() {
	suite.journal.On("GetJournalWithLedger", mock.Anything, testTenant, "missing").
		Return(nil, apperrors.NewNotFoundError(testTenant, "journal entry", "missing")).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals/missing", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("journal entry not found", suite.errorOf(w))
}

func (suite *HandlerTestSuite) TestListJournals_BindsFilters() {
	params := dto.ListJournalsParams{Limit: 5, Source: "bank", SessionID: "s-1"}
	suite.journal.On("ListJournalsWithLedger", mock.Anything, testTenant, params).
		Return(&dto.ListJournalsResponse{Journals: []dto.JournalResponse{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals?limit=5&source=bank&sessionID=s-1", "")
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/journals?source=nonsense", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateOpeningBalance_Duplicate() {
	remediation := "Opening balance already exists for this fiscal period. Please delete the existing entry first."
	suite.openingBalance.On("CreateOpeningBalance", mock.Anything, testTenant, testUser, mock.Anything).
		Return(nil, &apperrors.DuplicateError{TenantID: testTenant, Key: "opening_balance:2026-01", Remediation: remediation}).Once()

	body := `{"fiscalPeriodID":"2026-01","asOfDate":"2026-01-01T00:00:00Z","retainedEarningsAccountID":"acc-re","balances":[{"accountID":"acc-bank","amount":"1000"}]}`
	w := suite.do(http.MethodPost, "/api/v1/opening-balances", body)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(remediation, suite.errorOf(w))
}

func (suite *HandlerTestSuite) TestRecordAdjustment_BadType() {
	body := `{"description":"x","amount":"5","adjustmentType":"bribe","bankAccountID":"b","ledgerAccountID":"l"}`

	w := suite.do(http.MethodPost, "/api/v1/reconciliations/s-1/adjustments", body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRecordAdjustment_Created() {
	adj := &domain.ReconciliationAdjustment{ID: "adj-1", SessionID: "s-1", AdjustmentType: domain.AdjustmentFee}
	suite.reconciliation.On("RecordAdjustment", mock.Anything, testTenant, testUser, "s-1", mock.MatchedBy(func(r dto.RecordAdjustmentRequest) bool {
		return r.AdjustmentType == "fee" && r.Post
	})).Return(adj, nil).Once()

	body := `{"description":"Bank fee","amount":"12.50","adjustmentType":"fee","bankAccountID":"b","ledgerAccountID":"l","post":true}`
	w := suite.do(http.MethodPost, "/api/v1/reconciliations/s-1/adjustments", body)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestBulkRecordAdjustments_PassesExpectedDifference() {
	suite.reconciliation.On("BulkRecordAdjustments", mock.Anything, testTenant, testUser, "s-1", mock.MatchedBy(func(r dto.BulkRecordAdjustmentsRequest) bool {
		return len(r.Adjustments) == 1 && r.ExpectedDifference != nil && r.ExpectedDifference.Equal(decimal.RequireFromString("12.5"))
	})).Return(nil, apperrors.NewValidationError(testTenant, apperrors.RuleAdjustmentBalance, "adjustments would leave a difference of 2.50")).Once()

	body := `{"expectedDifference":"12.5","adjustments":[{"description":"Bank fee","amount":"10","adjustmentType":"fee","bankAccountID":"b","ledgerAccountID":"l"}]}`
	w := suite.do(http.MethodPost, "/api/v1/reconciliations/s-1/adjustments/bulk", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorOf(w), "difference of 2.50")
}

func (suite *HandlerTestSuite) TestReverseAdjustment() {
	reversal := "je-rev"
	suite.reconciliation.On("ReverseAdjustment", mock.Anything, testTenant, testUser, "adj-1", "posted twice").
		Return(&domain.ReconciliationAdjustment{ID: "adj-1", ReversalJournalID: &reversal}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/adjustments/adj-1/reverse", `{"reason":"posted twice"}`)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/adjustments/adj-1/reverse", `{}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestBalanceCheck() {
	expected := decimal.RequireFromString("12.5")
	suite.reconciliation.On("ValidateAdjustmentBalance", mock.Anything, testTenant, "s-1", expected).
		Return(&domain.AdjustmentBalanceCheck{SessionID: "s-1", IsBalanced: true}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reconciliations/s-1/balance-check?expectedDifference=12.5", "")
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/reconciliations/s-1/balance-check?expectedDifference=abc", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestStageTransactions() {
	result := &domain.StageResult{StagedCount: 1, Unmapped: []domain.UnmappedTransaction{{Reason: "no rule"}}}
	suite.staging.On("StageTransactions", mock.Anything, testTenant, testUser, "s-1", mock.MatchedBy(func(txns []domain.BankTransaction) bool {
		return len(txns) == 2 && txns[0].TransactionID == "bt-1"
	})).Return(result, nil).Once()

	body := `{"transactions":[
		{"transactionID":"bt-1","date":"2026-01-05T00:00:00Z","description":"Card sale","amount":"120"},
		{"transactionID":"bt-2","date":"2026-01-06T00:00:00Z","description":"Unknown","amount":"-3"}
	]}`
	w := suite.do(http.MethodPost, "/api/v1/bank-imports/s-1/stage", body)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.StageResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(1, got.StagedCount)
	suite.Len(got.Unmapped, 1)
}

func (suite *HandlerTestSuite) TestPostSession_Conflict() {
	suite.staging.On("PostSession", mock.Anything, testTenant, testUser, "s-1").Return(nil, apperrors.ErrConflict).Once()

	w := suite.do(http.MethodPost, "/api/v1/bank-imports/s-1/post", "")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestArchiveSession_IntegrityFailure() {
	suite.staging.On("ArchiveSession", mock.Anything, testTenant, testUser, "s-1").
		Return(nil, &apperrors.IntegrityError{TenantID: testTenant, SessionID: "s-1", Diagnosis: apperrors.DiagnosisArchiveTotalsMismatch}).Once()

	w := suite.do(http.MethodPost, "/api/v1/bank-imports/s-1/archive", "")

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(suite.errorOf(w), apperrors.DiagnosisArchiveTotalsMismatch)
}

func (suite *HandlerTestSuite) TestArchives() {
	suite.archive.On("ListArchivedSessions", mock.Anything, testTenant, dto.ListArchivedSessionsParams{Limit: 10}).
		Return(&dto.ListArchivedSessionsResponse{Sessions: []domain.ArchivedSession{}}, nil).Once()
	suite.archive.On("GetArchivedSessionDetail", mock.Anything, testTenant, "s-1").
		Return(&domain.ArchivedSessionDetail{}, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/archives?limit=10", "").Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/archives/s-1", "").Code)
}

func (suite *HandlerTestSuite) TestVerification() {
	tb := domain.NewTrialBalance([]domain.TrialBalanceRow{{AccountCode: "1000", Debit: decimal.NewFromInt(5), Credit: decimal.Zero}})
	suite.verification.On("TrialBalance", mock.Anything, testTenant).Return(&tb, nil).Once()
	suite.verification.On("VerifyTenant", mock.Anything, testTenant).Return(&domain.VerificationReport{
		TenantID: testTenant,
		Findings: []domain.Finding{{Diagnosis: apperrors.DiagnosisTrialBalanceMismatch}},
	}, &apperrors.IntegrityError{TenantID: testTenant, Diagnosis: apperrors.DiagnosisTrialBalanceMismatch}).Once()
	suite.verification.On("VerifySession", mock.Anything, testTenant, "s-1").Return(&domain.VerificationReport{TenantID: testTenant, SessionID: "s-1"}, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/verification/trial-balance", "").Code)

	w := suite.do(http.MethodGet, "/api/v1/verification/tenant", "")
	suite.Equal(http.StatusOK, w.Code)
	var report domain.VerificationReport
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &report))
	suite.False(report.Healthy())

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/verification/sessions/s-1", "").Code)
}

func (suite *HandlerTestSuite) TestVerifySessionNotFound() {
	suite.verification.On("VerifySession", mock.Anything, testTenant, "missing").
		Return(nil, apperrors.NewNotFoundError(testTenant, "bank import session", "missing")).Once()

	w := suite.do(http.MethodGet, "/api/v1/verification/sessions/missing", "")
	suite.Equal(http.StatusNotFound, w.Code)
}
