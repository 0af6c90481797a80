package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

type openingBalanceHandler struct {
	openingBalanceService portssvc.OpeningBalanceSvc
}

func registerOpeningBalanceRoutes(group *gin.RouterGroup, svc portssvc.OpeningBalanceSvc) {
	h := &openingBalanceHandler{openingBalanceService: svc}

	ob := group.Group("/opening-balances")
	{
		ob.POST("", h.createOpeningBalance)
		ob.GET("/:fiscalPeriodID", h.getOpeningBalance)
	}
}

// createOpeningBalance posts the single opening balance entry of a fiscal period.
// A second request for the same period answers 409 with the remediation text.
//
// @Summary Create the opening balance of a fiscal period
// @Description Posts the opening balance entry, balancing any difference through the retained earnings account
// @Tags opening-balances
// @Accept  json
// @Produce  json
// @Param   openingBalance body dto.CreateOpeningBalanceRequest true "Opening balances"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Opening balance already exists"
// @Failure 500 {object} map[string]string "Failed to create opening balance"
// @Security BearerAuth
// @Router /opening-balances [post]
func (h *openingBalanceHandler) createOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateOpeningBalanceRequest")
		return
	}
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	result, err := h.openingBalanceService.CreateOpeningBalance(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to create opening balance")
		return
	}

	logger.Info("Opening balance created",
		slog.String("journal_id", result.Entry.ID),
		slog.String("fiscal_period_id", req.FiscalPeriodID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(*result))
}

// getOpeningBalance godoc
// @Summary Get the opening balance of a fiscal period
// @Tags opening-balances
// @Produce  json
// @Param   fiscalPeriodID path string true "Fiscal period ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Opening balance not found"
// @Failure 500 {object} map[string]string "Failed to get opening balance"
// @Security BearerAuth
// @Router /opening-balances/{fiscalPeriodID} [get]
func (h *openingBalanceHandler) getOpeningBalance(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	result, err := h.openingBalanceService.GetOpeningBalance(c.Request.Context(), tenantID, c.Param("fiscalPeriodID"))
	if err != nil {
		respondError(c, err, "Failed to get opening balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(*result))
}
