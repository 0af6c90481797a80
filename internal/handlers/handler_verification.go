package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// verificationHandler exposes the consistency checks. A report with findings
// is still a 200: the findings are the answer.
type verificationHandler struct {
	verificationService portssvc.VerificationSvc
}

func registerVerificationRoutes(group *gin.RouterGroup, svc portssvc.VerificationSvc) {
	h := &verificationHandler{verificationService: svc}

	v := group.Group("/verification")
	{
		v.GET("/trial-balance", h.trialBalance)
		v.GET("/tenant", h.verifyTenant)
		v.GET("/sessions/:sessionID", h.verifySession)
	}
}

// trialBalance godoc
// @Summary Trial balance
// @Description Sums the live and archived ledger per account
// @Tags verification
// @Produce  json
// @Success 200 {object} domain.TrialBalance
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build trial balance"
// @Security BearerAuth
// @Router /verification/trial-balance [get]
func (h *verificationHandler) trialBalance(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	tb, err := h.verificationService.TrialBalance(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to build trial balance")
		return
	}
	c.JSON(http.StatusOK, tb)
}

// verifyTenant godoc
// @Summary Verify the tenant ledger
// @Description Runs the consistency checks over the whole tenant. Findings are reported with status 200
// @Tags verification
// @Produce  json
// @Success 200 {object} domain.VerificationReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to verify tenant ledger"
// @Security BearerAuth
// @Router /verification/tenant [get]
func (h *verificationHandler) verifyTenant(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	report, err := h.verificationService.VerifyTenant(c.Request.Context(), tenantID)
	if !reportable(report, err) {
		respondError(c, err, "Failed to verify tenant ledger")
		return
	}
	if !report.Healthy() {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Ledger verification found problems", slog.Int("findings", len(report.Findings)))
	}
	c.JSON(http.StatusOK, report)
}

// verifySession godoc
// @Summary Verify a bank import session
// @Description Compares the session's recorded totals with its ledger rows. Findings are reported with status 200
// @Tags verification
// @Produce  json
// @Param   sessionID path string true "Bank import session ID"
// @Success 200 {object} domain.VerificationReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Failed to verify session"
// @Security BearerAuth
// @Router /verification/sessions/{sessionID} [get]
func (h *verificationHandler) verifySession(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}
	sessionID := c.Param("sessionID")

	report, err := h.verificationService.VerifySession(c.Request.Context(), tenantID, sessionID)
	if !reportable(report, err) {
		respondError(c, err, "Failed to verify session")
		return
	}
	if !report.Healthy() {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Session verification found problems",
			slog.String("session_id", sessionID),
			slog.Int("findings", len(report.Findings)))
	}
	c.JSON(http.StatusOK, report)
}

// reportable is true when the run completed, with or without findings.
func reportable(report *domain.VerificationReport, err error) bool {
	return report != nil && (err == nil || errors.Is(err, apperrors.ErrIntegrity))
}
