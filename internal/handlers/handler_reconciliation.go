package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// reconciliationHandler serves reconciliation adjustments. Adjustments belong to
// a bank import session; posting and reversal address the adjustment directly.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(svc portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: svc}
}

func registerReconciliationRoutes(group *gin.RouterGroup, svc portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(svc)

	sessions := group.Group("/reconciliations/:sessionID")
	{
		sessions.POST("/adjustments", h.recordAdjustment)
		sessions.POST("/adjustments/bulk", h.bulkRecordAdjustments)
		sessions.GET("/adjustments", h.listAdjustments)
		sessions.GET("/balance-check", h.balanceCheck)
	}

	adjustments := group.Group("/adjustments/:adjustmentID")
	{
		adjustments.POST("/post", h.postAdjustment)
		adjustments.POST("/reverse", h.reverseAdjustment)
	}
}

// recordAdjustment godoc
// @Summary Record a reconciliation adjustment
// @Description Records an adjustment against a session and optionally posts it
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   sessionID path string true "Bank import session ID"
// @Param   adjustment body dto.RecordAdjustmentRequest true "Adjustment"
// @Success 201 {object} domain.ReconciliationAdjustment
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record adjustment"
// @Security BearerAuth
// @Router /reconciliations/{sessionID}/adjustments [post]
func (h *reconciliationHandler) recordAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "RecordAdjustmentRequest")
		return
	}
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}
	sessionID := c.Param("sessionID")

	adj, err := h.reconciliationService.RecordAdjustment(c.Request.Context(), tenantID, userID, sessionID, req)
	if err != nil {
		respondError(c, err, "Failed to record adjustment")
		return
	}

	logger.Info("Adjustment recorded", slog.String("adjustment_id", adj.ID), slog.Bool("posted", adj.IsPosted()))
	c.JSON(http.StatusCreated, adj)
}

// bulkRecordAdjustments records the adjustments in one transaction. Posting
// the ones flagged post happens afterwards and can stop part way.
//
// @Summary Record several reconciliation adjustments
// @Description Records every adjustment in one transaction, then posts the ones flagged post. With expectedDifference set, a batch that would not settle it is refused
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   sessionID path string true "Bank import session ID"
// @Param   adjustments body dto.BulkRecordAdjustmentsRequest true "Adjustments"
// @Success 201 {object} map[string][]domain.ReconciliationAdjustment
// @Failure 400 {object} map[string]string "Invalid input format, validation error or unsettled difference"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record adjustments"
// @Security BearerAuth
// @Router /reconciliations/{sessionID}/adjustments/bulk [post]
func (h *reconciliationHandler) bulkRecordAdjustments(c *gin.Context) {
	var req dto.BulkRecordAdjustmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "BulkRecordAdjustmentsRequest")
		return
	}
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	adjustments, err := h.reconciliationService.BulkRecordAdjustments(c.Request.Context(), tenantID, userID, c.Param("sessionID"), req)
	if err != nil {
		respondError(c, err, "Failed to record adjustments")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"adjustments": adjustments})
}

// listAdjustments godoc
// @Summary List the adjustments of a session
// @Description Returns every adjustment of the session, reversed ones included
// @Tags reconciliations
// @Produce  json
// @Param   sessionID path string true "Bank import session ID"
// @Success 200 {object} map[string][]domain.ReconciliationAdjustment
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list adjustments"
// @Security BearerAuth
// @Router /reconciliations/{sessionID}/adjustments [get]
func (h *reconciliationHandler) listAdjustments(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	adjustments, err := h.reconciliationService.ListAdjustmentHistory(c.Request.Context(), tenantID, c.Param("sessionID"))
	if err != nil {
		respondError(c, err, "Failed to list adjustments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"adjustments": adjustments})
}

// balanceCheck compares the session's effective adjustments with ?expectedDifference=.
//
// @Summary Check adjustments against an expected difference
// @Tags reconciliations
// @Produce  json
// @Param   sessionID path string true "Bank import session ID"
// @Param   expectedDifference query string true "Difference the adjustments should settle"
// @Success 200 {object} domain.AdjustmentBalanceCheck
// @Failure 400 {object} map[string]string "expectedDifference is not a decimal"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to check adjustment balance"
// @Security BearerAuth
// @Router /reconciliations/{sessionID}/balance-check [get]
func (h *reconciliationHandler) balanceCheck(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	expected, err := decimal.NewFromString(c.Query("expectedDifference"))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid expectedDifference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "expectedDifference must be a decimal amount"})
		return
	}

	check, err := h.reconciliationService.ValidateAdjustmentBalance(c.Request.Context(), tenantID, c.Param("sessionID"), expected)
	if err != nil {
		respondError(c, err, "Failed to check adjustment balance")
		return
	}
	c.JSON(http.StatusOK, check)
}

// postAdjustment godoc
// @Summary Post a reconciliation adjustment
// @Description Posts the two-line adjustment journal. Posting an already posted adjustment returns it unchanged
// @Tags reconciliations
// @Produce  json
// @Param   adjustmentID path string true "Adjustment ID"
// @Success 200 {object} domain.ReconciliationAdjustment
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Adjustment not found"
// @Failure 500 {object} map[string]string "Failed to post adjustment"
// @Security BearerAuth
// @Router /adjustments/{adjustmentID}/post [post]
func (h *reconciliationHandler) postAdjustment(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	adj, err := h.reconciliationService.PostAdjustment(c.Request.Context(), tenantID, userID, c.Param("adjustmentID"))
	if err != nil {
		respondError(c, err, "Failed to post adjustment")
		return
	}
	c.JSON(http.StatusOK, adj)
}

// reverseAdjustment godoc
// @Summary Reverse a posted adjustment
// @Description Posts the mirror journal and records the reason
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   adjustmentID path string true "Adjustment ID"
// @Param   reversal body dto.ReverseAdjustmentRequest true "Reversal reason"
// @Success 200 {object} domain.ReconciliationAdjustment
// @Failure 400 {object} map[string]string "Invalid input format or adjustment not posted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Adjustment not found"
// @Failure 409 {object} map[string]string "Adjustment already reversed"
// @Failure 500 {object} map[string]string "Failed to reverse adjustment"
// @Security BearerAuth
// @Router /adjustments/{adjustmentID}/reverse [post]
func (h *reconciliationHandler) reverseAdjustment(c *gin.Context) {
	var req dto.ReverseAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "ReverseAdjustmentRequest")
		return
	}
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	adj, err := h.reconciliationService.ReverseAdjustment(c.Request.Context(), tenantID, userID, c.Param("adjustmentID"), req.Reason)
	if err != nil {
		respondError(c, err, "Failed to reverse adjustment")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Adjustment reversed", slog.String("adjustment_id", adj.ID))
	c.JSON(http.StatusOK, adj)
}
