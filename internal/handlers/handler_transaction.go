package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles single-sided postings and transfers.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	transferService    portssvc.TransferSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, transferService portssvc.TransferSvcFacade) {
	h := &transactionHandler{
		transactionService: transactionService,
		transferService:    transferService,
	}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.PATCH("/:id/status", h.updateTransactionStatus)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
	rg.POST("/transfers", h.createTransfer)
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records an income or expense. Status defaults to PENDING and competenceDate to date.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} domain.TransactionDetail
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Referenced entity not found"
// @Failure 422 {object} ErrorResponse "Referenced entity belongs to another tenant"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	detail, err := h.transactionService.CreateTransaction(c.Request.Context(), tenantID(c), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", detail.TransactionID))
	c.JSON(http.StatusCreated, detail)
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest date first. Without limit every matching row is returned; with limit a nextToken pages through the rest.
// @Tags transactions
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   type query string false "INCOME or EXPENSE"
// @Param   status query string false "PENDING or CONFIRMED"
// @Param   limit query int false "Page size, 0 for all"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	filter, err := transactionFilterFromParams(params)
	if err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), tenantID(c), filter)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}

	resp := dto.ListTransactionsResponse{Transactions: page.Transactions}
	if page.NextCursor != nil {
		token := pagination.EncodeTransactionCursor(*page.NextCursor)
		resp.NextToken = &token
	}
	c.JSON(http.StatusOK, resp)
}

func transactionFilterFromParams(params dto.ListTransactionsParams) (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter
	var err error
	if filter.StartDate, err = dto.ParseOptionalDate(params.StartDate); err != nil {
		return filter, err
	}
	if filter.EndDate, err = dto.ParseOptionalDate(params.EndDate); err != nil {
		return filter, err
	}
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		filter.Type = &t
	}
	if params.Status != "" {
		s := domain.TransactionStatus(params.Status)
		filter.Status = &s
	}
	filter.Limit = params.Limit
	if params.NextToken != "" {
		if filter.After, err = pagination.DecodeTransactionCursor(params.NextToken); err != nil {
			return filter, err
		}
	}
	return filter, nil
}

// updateTransactionStatus godoc
// @Summary Change a transaction's status
// @Description Moves a transaction between PENDING and CONFIRMED. Transfer legs stay CONFIRMED.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   id path string true "Transaction ID"
// @Param   strict query bool false "Answer 404 when nothing was updated"
// @Param   status body dto.UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} dto.MutationResponse
// @Failure 422 {object} ErrorResponse "Transfer leg cannot leave CONFIRMED"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/transactions/{id}/status [patch]
func (h *transactionHandler) updateTransactionStatus(c *gin.Context) {
	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	res, err := h.transactionService.UpdateTransactionStatus(c.Request.Context(), tenantID(c), c.Param("id"), req.Status, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update transaction status")
		return
	}
	respondUpdated(c, res, "Transaction")
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deleting either leg of a transfer removes both legs
// @Tags transactions
// @Param   tenant_id path string true "Tenant ID"
// @Param   id path string true "Transaction ID"
// @Param   strict query bool false "Answer 404 when nothing was deleted"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	res, err := h.transactionService.DeleteTransaction(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to delete transaction")
		return
	}
	respondDeleted(c, res, "Transaction")
}

// createTransfer godoc
// @Summary Transfer between two accounts
// @Description Writes a CONFIRMED withdrawal and deposit linked to each other, atomically
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   transfer body dto.CreateTransferRequest true "Transfer"
// @Success 201 {object} domain.Transfer
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Same account, non-positive amount or foreign account"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/transfers [post]
func (h *transactionHandler) createTransfer(c *gin.Context) {
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), tenantID(c), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create transfer")
		return
	}
	c.JSON(http.StatusCreated, transfer)
}
