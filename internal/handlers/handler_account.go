package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/calyxerp/calyx_backend/internal/core/domain"
	portssvc "github.com/calyxerp/calyx_backend/internal/core/ports/services"
	"github.com/calyxerp/calyx_backend/internal/dto"
	"github.com/calyxerp/calyx_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for the chart of accounts.
type accountHandler struct {
	coaService portssvc.CoASvcFacade
}

func newAccountHandler(coaService portssvc.CoASvcFacade) *accountHandler {
	return &accountHandler{coaService: coaService}
}

// registerAccountRoutes registers chart-of-accounts routes.
func registerAccountRoutes(rg *gin.RouterGroup, coaService portssvc.CoASvcFacade) {
	h := newAccountHandler(coaService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("/setup", h.setupChartOfAccounts)
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID/parent", h.setParentAccount)
		accounts.DELETE("/:accountID", h.deactivateAccount)
		accounts.PUT("/config", h.upsertAccountConfig)
		accounts.GET("/config", h.listAccountConfigs)
	}
}

// setupChartOfAccounts godoc
// @Summary Seed the chart of accounts from an industry template
// @Description Creates the template accounts that do not exist yet and seeds default posting role mappings. Safe to call repeatedly.
// @Tags accounts
// @Accept json
// @Produce json
// @Param setup body dto.SetupChartOfAccountsRequest true "Industry key (retail, service, pharmacy)"
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /accounts/setup [post]
func (h *accountHandler) setupChartOfAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SetupChartOfAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetupChartOfAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, actorID, ok := requestIdentity(c)
	if !ok {
		return
	}

	accounts, err := h.coaService.SetupChartOfAccounts(c.Request.Context(), tenantID, req.IndustryKey, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// createAccount godoc
// @Summary Create a new account
// @Description Adds a manually defined account to the tenant's chart of accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or duplicate code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, actorID, ok := requestIdentity(c)
	if !ok {
		return
	}

	account, err := h.coaService.CreateAccount(c.Request.Context(), tenantID, req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the tenant's accounts ordered by code
// @Tags accounts
// @Produce json
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	accounts, err := h.coaService.ListAccounts(c.Request.Context(), tenantID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	account, err := h.coaService.GetAccountByID(c.Request.Context(), tenantID, c.Param("accountID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// setParentAccount godoc
// @Summary Assign or clear an account's parent
// @Description Validates that the new parent link does not create a cycle before storing it
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param parent body dto.SetParentAccountRequest true "Parent account ID, or null to clear"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Cyclic hierarchy or invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/parent [put]
func (h *accountHandler) setParentAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SetParentAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetParentAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, actorID, ok := requestIdentity(c)
	if !ok {
		return
	}

	account, err := h.coaService.SetParentAccount(c.Request.Context(), tenantID, c.Param("accountID"), req.ParentAccountID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Marks the account inactive; historical ledger lines keep their reference
// @Tags accounts
// @Param accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	tenantID, actorID, ok := requestIdentity(c)
	if !ok {
		return
	}

	if err := h.coaService.DeactivateAccount(c.Request.Context(), tenantID, c.Param("accountID"), actorID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// upsertAccountConfig godoc
// @Summary Map a posting role to an account code
// @Description Creates or replaces the tenant's mapping for one posting role
// @Tags accounts
// @Accept json
// @Produce json
// @Param config body dto.UpsertAccountConfigRequest true "Role and account code"
// @Success 200 {object} dto.AccountConfigResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Account code does not resolve"
// @Security BearerAuth
// @Router /accounts/config [put]
func (h *accountHandler) upsertAccountConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.UpsertAccountConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertAccountConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenantID, actorID, ok := requestIdentity(c)
	if !ok {
		return
	}

	config, err := h.coaService.UpsertAccountConfig(c.Request.Context(), tenantID, domain.AccountRole(req.Role), req.AccountCode, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountConfigResponse{Role: string(config.Role), AccountCode: config.AccountCode})
}

// listAccountConfigs godoc
// @Summary List posting role mappings
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountConfigResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /accounts/config [get]
func (h *accountHandler) listAccountConfigs(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	configs, err := h.coaService.ListAccountConfigs(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountConfigResponses(configs))
}
