package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/calyxerp/calyx_backend/internal/core/ports/services"
	"github.com/calyxerp/calyx_backend/internal/dto"
	"github.com/calyxerp/calyx_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for journal entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

// registerLedgerRoutes registers journal entry routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/entries", h.createEntry)
		ledger.GET("/entries", h.listEntries)
		ledger.GET("/entries/:entryID", h.getEntry)
		ledger.POST("/entries/:entryID/reverse", h.reverseEntry)
	}
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates a balanced journal entry atomically. When sourceType and sourceID are both set and were already posted, the existing entry is returned.
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry header and lines"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or amounts"
// @Failure 404 {object} map[string]string "An account code does not exist"
// @Failure 422 {object} map[string]string "Debits and credits do not balance"
// @Security BearerAuth
// @Router /ledger/entries [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, actorID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), tenantID, req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entry headers newest first with cursor pagination
// @Tags ledger
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Security BearerAuth
// @Router /ledger/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	page, err := h.ledgerService.ListEntries(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// getEntry godoc
// @Summary Get a journal entry by ID
// @Description Returns the entry header with all of its lines
// @Tags ledger
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /ledger/entries/{entryID} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), tenantID, c.Param("entryID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// reverseEntry godoc
// @Summary Reverse a journal entry
// @Description Posts a correcting entry with debits and credits swapped. Reversing the same entry twice returns the first reversal.
// @Tags ledger
// @Produce json
// @Param entryID path string true "Entry ID to reverse"
// @Success 201 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /ledger/entries/{entryID}/reverse [post]
func (h *ledgerHandler) reverseEntry(c *gin.Context) {
	tenantID, actorID, ok := requestIdentity(c)
	if !ok {
		return
	}

	reversal, err := h.ledgerService.ReverseEntry(c.Request.Context(), tenantID, c.Param("entryID"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(reversal))
}
