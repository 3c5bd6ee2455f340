package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/calyxerp/calyx_backend/internal/core/ports/services"
	"github.com/calyxerp/calyx_backend/internal/dto"
	"github.com/calyxerp/calyx_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// postingHandler exposes the adapters that collaborator modules (POS sync,
// invoicing, purchasing) call to post their events into the ledger.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newPostingHandler(postingService portssvc.PostingSvcFacade) *postingHandler {
	return &postingHandler{postingService: postingService}
}

// registerPostingRoutes registers the posting adapter routes.
func registerPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newPostingHandler(postingService)

	postings := rg.Group("/postings")
	{
		postings.POST("/sales", h.postSale)
		postings.POST("/invoices", h.postInvoice)
		postings.POST("/bills", h.postBill)
	}
}

// postSale godoc
// @Summary Post a completed sale into the ledger
// @Description Debits the cash account for the total, credits revenue for the subtotal and the tax liability for any collected tax. Replaying the same sale returns the original entry.
// @Tags postings
// @Accept json
// @Produce json
// @Param sale body dto.PostSaleRequest true "Sale event"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 422 {object} map[string]string "Missing account configuration"
// @Security BearerAuth
// @Router /postings/sales [post]
func (h *postingHandler) postSale(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.PostSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, actorID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.postingService.PostSale(c.Request.Context(), tenantID, req.ToSaleEvent(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// postInvoice godoc
// @Summary Post an issued invoice into the ledger
// @Description Debits accounts receivable for the total, credits revenue for the subtotal and the tax liability for any charged tax. Replaying the same invoice returns the original entry.
// @Tags postings
// @Accept json
// @Produce json
// @Param invoice body dto.PostInvoiceRequest true "Invoice event"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 422 {object} map[string]string "Missing account configuration"
// @Security BearerAuth
// @Router /postings/invoices [post]
func (h *postingHandler) postInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.PostInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, actorID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.postingService.PostInvoice(c.Request.Context(), tenantID, req.ToInvoiceEvent(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// postBill godoc
// @Summary Post a vendor bill into the ledger
// @Description Debits the expense account for the subtotal and recoverable input tax for any paid tax, credits accounts payable for the total. Replaying the same bill returns the original entry.
// @Tags postings
// @Accept json
// @Produce json
// @Param bill body dto.PostBillRequest true "Bill event"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 422 {object} map[string]string "Missing account configuration"
// @Security BearerAuth
// @Router /postings/bills [post]
func (h *postingHandler) postBill(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.PostBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, actorID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.postingService.PostBill(c.Request.Context(), tenantID, req.ToBillEvent(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}
