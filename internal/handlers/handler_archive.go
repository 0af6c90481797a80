package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/gin-gonic/gin"
)

type archiveHandler struct {
	archiveService portssvc.ArchiveReaderSvc
}

func registerArchiveRoutes(group *gin.RouterGroup, svc portssvc.ArchiveReaderSvc) {
	h := &archiveHandler{archiveService: svc}

	archives := group.Group("/archives")
	{
		archives.GET("", h.listArchivedSessions)
		archives.GET("/:sessionID", h.getArchivedSession)
	}
}

// listArchivedSessions godoc
// @Summary List archived sessions
// @Tags archives
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListArchivedSessionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list archived sessions"
// @Security BearerAuth
// @Router /archives [get]
func (h *archiveHandler) listArchivedSessions(c *gin.Context) {
	var params dto.ListArchivedSessionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListArchivedSessionsParams")
		return
	}
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	resp, err := h.archiveService.ListArchivedSessions(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, err, "Failed to list archived sessions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getArchivedSession godoc
// @Summary Get an archived session
// @Description Returns the archived session with its journal entries and ledger rows
// @Tags archives
// @Produce  json
// @Param   sessionID path string true "Bank import session ID"
// @Success 200 {object} domain.ArchivedSessionDetail
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Archived session not found"
// @Failure 500 {object} map[string]string "Failed to get archived session"
// @Security BearerAuth
// @Router /archives/{sessionID} [get]
func (h *archiveHandler) getArchivedSession(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	detail, err := h.archiveService.GetArchivedSessionDetail(c.Request.Context(), tenantID, c.Param("sessionID"))
	if err != nil {
		respondError(c, err, "Failed to get archived session")
		return
	}
	c.JSON(http.StatusOK, detail)
}
