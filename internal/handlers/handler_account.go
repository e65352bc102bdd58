package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService   portssvc.AccountSvcFacade
	dashboardService portssvc.DashboardSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade, ds portssvc.DashboardSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:   as,
		dashboardService: ds,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, dashboardService portssvc.DashboardSvcFacade) {
	h := newAccountHandler(accountService, dashboardService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/balances", h.listAccountBalances)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a new account in the tenant
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a member of the tenant"
// @Failure 500 {object} ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger.Info("Received request to create account", slog.String("account_name", req.Name))

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), tenantID(c), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve account"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByID(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List the tenant's accounts
// @Description Retrieves every account of the tenant ordered by name
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 500 {object} ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context(), tenantID(c))
	if err != nil {
		respondWithError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// listAccountBalances godoc
// @Summary List derived account balances
// @Description Balances are income minus expense over confirmed transactions. Unused accounts report 0.
// @Tags accounts
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.AccountBalancesResponse
// @Failure 500 {object} ErrorResponse "Failed to compute balances"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/accounts/balances [get]
func (h *accountHandler) listAccountBalances(c *gin.Context) {
	balances, err := h.dashboardService.ListAccountBalances(c.Request.Context(), tenantID(c))
	if err != nil {
		respondWithError(c, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountBalancesResponse(balances))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates name, bank name or type
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   id path string true "Account ID to update"
// @Param   account body dto.UpdateAccountRequest true "Account details to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to update account"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	updated, err := h.accountService.UpdateAccount(c.Request.Context(), tenantID(c), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(updated))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes an account that no transaction references
// @Tags accounts
// @Param   tenant_id path string true "Tenant ID"
// @Param   id path string true "Account ID to delete"
// @Param   strict query bool false "Answer 404 when nothing was deleted"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Account not found (strict only)"
// @Failure 409 {object} ErrorResponse "Account still referenced by transactions"
// @Failure 500 {object} ErrorResponse "Failed to delete account"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	res, err := h.accountService.DeleteAccount(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to delete account")
		return
	}
	respondDeleted(c, res, "Account")
}
