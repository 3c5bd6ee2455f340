package handlers

import (
	"net/http"

	portssvc "github.com/calyxerp/calyx_backend/internal/core/ports/services"
	"github.com/calyxerp/calyx_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the read side of the ledger.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/summary", h.getSummary)
	}

	rg.GET("/accounts/:accountID/balance", h.getAccountBalance)
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description One row per active account with raw debit-normal balances. The balanceTotal field is zero when the ledger is consistent.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows))
}

// getSummary godoc
// @Summary Get the accounting summary
// @Description Headline figures with type-aware netting: assets and expenses debit-normal, liabilities and revenue credit-normal
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getAccountBalance godoc
// @Summary Get one account's balance
// @Description Aggregated debits, credits and raw debit-normal balance over all committed lines
// @Tags reports
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/balance [get]
func (h *reportingHandler) getAccountBalance(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	balance, err := h.reportingService.AccountBalance(c.Request.Context(), tenantID, c.Param("accountID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(balance))
}
