package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankImportHandler drives a bank import session through staged, posted and archived.
type bankImportHandler struct {
	stagingService portssvc.StagingSvc
}

func newBankImportHandler(svc portssvc.StagingSvc) *bankImportHandler {
	return &bankImportHandler{stagingService: svc}
}

func registerBankImportRoutes(group *gin.RouterGroup, svc portssvc.StagingSvc) {
	h := newBankImportHandler(svc)

	imports := group.Group("/bank-imports")
	{
		imports.POST("", h.createSession)
		imports.GET("/:sessionID", h.getSession)
		imports.POST("/:sessionID/stage", h.stageTransactions)
		imports.POST("/:sessionID/post", h.postSession)
		imports.POST("/:sessionID/archive", h.archiveSession)
	}
}

// createSession godoc
// @Summary Open a bank import session
// @Tags bank-imports
// @Accept  json
// @Produce  json
// @Param   session body dto.CreateBankImportRequest true "Session details"
// @Success 201 {object} domain.BankImportSession
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create bank import session"
// @Security BearerAuth
// @Router /bank-imports [post]
func (h *bankImportHandler) createSession(c *gin.Context) {
	var req dto.CreateBankImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateBankImportRequest")
		return
	}
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	session, err := h.stagingService.CreateSession(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to create bank import session")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// getSession godoc
// @Summary Get a bank import session
// @Tags bank-imports
// @Produce  json
// @Param   sessionID path string true "Bank import session ID"
// @Success 200 {object} domain.BankImportSession
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Failed to get bank import session"
// @Security BearerAuth
// @Router /bank-imports/{sessionID} [get]
func (h *bankImportHandler) getSession(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	session, err := h.stagingService.GetSession(c.Request.Context(), tenantID, c.Param("sessionID"))
	if err != nil {
		respondError(c, err, "Failed to get bank import session")
		return
	}
	c.JSON(http.StatusOK, session)
}

// stageTransactions maps and stages bank lines. Lines no rule matched come
// back under "unmapped" and nothing is staged for them.
//
// @Summary Stage bank transactions
// @Description Maps statement lines through the tenant's rules and stages a journal per mapped line
// @Tags bank-imports
// @Accept  json
// @Produce  json
// @Param   sessionID path string true "Bank import session ID"
// @Param   transactions body dto.StageTransactionsRequest true "Statement lines"
// @Success 200 {object} domain.StageResult
// @Failure 400 {object} map[string]string "Invalid input format or session not staged"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Duplicate transaction"
// @Failure 500 {object} map[string]string "Failed to stage bank transactions"
// @Security BearerAuth
// @Router /bank-imports/{sessionID}/stage [post]
func (h *bankImportHandler) stageTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.StageTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "StageTransactionsRequest")
		return
	}
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}
	sessionID := c.Param("sessionID")

	result, err := h.stagingService.StageTransactions(c.Request.Context(), tenantID, userID, sessionID, req.ToBankTransactions())
	if err != nil {
		respondError(c, err, "Failed to stage bank transactions")
		return
	}

	logger.Info("Bank transactions staged",
		slog.String("session_id", sessionID),
		slog.Int("staged", result.StagedCount),
		slog.Int("unmapped", len(result.Unmapped)))
	c.JSON(http.StatusOK, result)
}

// postSession godoc
// @Summary Post a bank import session
// @Description Posts every staged entry in one transaction. Posting a posted session returns it unchanged
// @Tags bank-imports
// @Produce  json
// @Param   sessionID path string true "Bank import session ID"
// @Success 200 {object} domain.BankImportSession
// @Failure 400 {object} map[string]string "Session cannot be posted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Entries were staged during the post, retry"
// @Failure 500 {object} map[string]string "Failed to post bank import session"
// @Security BearerAuth
// @Router /bank-imports/{sessionID}/post [post]
func (h *bankImportHandler) postSession(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	session, err := h.stagingService.PostSession(c.Request.Context(), tenantID, userID, c.Param("sessionID"))
	if err != nil {
		respondError(c, err, "Failed to post bank import session")
		return
	}
	c.JSON(http.StatusOK, session)
}

// archiveSession godoc
// @Summary Archive a posted bank import session
// @Description Copies the session's ledger rows to the archive and prunes the live rows once the totals match
// @Tags bank-imports
// @Produce  json
// @Param   sessionID path string true "Bank import session ID"
// @Success 200 {object} domain.ArchivedSession
// @Failure 400 {object} map[string]string "Session is not posted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 422 {object} map[string]string "Archived totals do not match"
// @Failure 500 {object} map[string]string "Failed to archive bank import session"
// @Security BearerAuth
// @Router /bank-imports/{sessionID}/archive [post]
func (h *bankImportHandler) archiveSession(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	archived, err := h.stagingService.ArchiveSession(c.Request.Context(), tenantID, userID, c.Param("sessionID"))
	if err != nil {
		respondError(c, err, "Failed to archive bank import session")
		return
	}
	c.JSON(http.StatusOK, archived)
}
