package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body written by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError maps service errors to HTTP statuses. Anything unrecognised
// is logged and answered with 500 and the fallback message.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrTenantMismatch), errors.Is(err, apperrors.ErrTransferInvariant):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.As(err, &appErr) && appErr.Code > 0:
		status = appErr.Code
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, prefix string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn(prefix, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: prefix + ": " + err.Error()})
}

// strictRequested reports whether the caller asked for ?strict=true.
func strictRequested(c *gin.Context) bool {
	strict, _ := strconv.ParseBool(c.Query("strict"))
	return strict
}

// respondDeleted answers 204, or 404 when nothing was deleted and the caller is strict.
func respondDeleted(c *gin.Context, res domain.MutationResult, what string) {
	if !res.Found() && strictRequested(c) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: what + " not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// respondUpdated answers 200 with the affected count, or 404 under the same rule as respondDeleted.
func respondUpdated(c *gin.Context, res domain.MutationResult, what string) {
	if !res.Found() && strictRequested(c) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: what + " not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToMutationResponse(res))
}

// requireUserID fetches the authenticated user set by AuthMiddleware.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return userID, ok
}

func tenantID(c *gin.Context) string {
	return c.Param(middleware.TenantParam)
}
