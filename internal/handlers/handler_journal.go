package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// registerJournalRoutes registers journal specific routes
func registerJournalRoutes(group *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := group.Group("/journals")
	{
		journals.POST("", h.postJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
	}
}

// postJournal validates, projects and posts a client journal in one step.
// Engine-owned sources (bank, opening_balance, adjustment, reversal) are rejected by binding.
//
// @Summary Post a journal entry
// @Description Validates a balanced journal, projects it into the general ledger and posts both atomically
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.PostJournalRequest true "Journal entry"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate journal"
// @Failure 500 {object} map[string]string "Failed to post journal"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "PostJournalRequest")
		return
	}

	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	result, err := h.journalService.PostJournal(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to post journal")
		return
	}

	logger.Info("Journal posted successfully", slog.String("journal_id", result.Entry.ID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(*result))
}

// getJournal godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry with its lines and general ledger rows
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to get journal"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}
	journalID := c.Param("journalID")

	result, err := h.journalService.GetJournalWithLedger(c.Request.Context(), tenantID, journalID)
	if err != nil {
		respondError(c, err, "Failed to get journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(*result))
}

// listJournals godoc
// @Summary List journal entries
// @Description Lists the tenant's journals with ledger detail, newest first
// @Tags journals
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   source query string false "Filter by source"
// @Param   fiscalPeriodID query string false "Filter by fiscal period"
// @Param   sessionID query string false "Filter by bank import session"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list journals"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListJournalsParams")
		return
	}
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	resp, err := h.journalService.ListJournalsWithLedger(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, err, "Failed to list journals")
		return
	}
	c.JSON(http.StatusOK, resp)
}
