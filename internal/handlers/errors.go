package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrIntegrity):
		return http.StatusUnprocessableEntity
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the sanitized message for err. Client errors are logged
// at warn, everything else at error with the tenant and session it carries.
func respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	if status >= http.StatusInternalServerError || status == http.StatusUnprocessableEntity {
		logger.Error(msg, apperrors.LogAttrs(err)...)
	} else {
		logger.Warn(msg, apperrors.LogAttrs(err)...)
	}
	c.JSON(status, gin.H{"error": apperrors.PublicMessage(err)})
}

func respondBindError(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
}

// identity returns the tenant and acting user placed in the context by AuthMiddleware.
func identity(c *gin.Context) (tenantID, userID string, ok bool) {
	tenantID, tok := middleware.GetTenantIDFromContext(c)
	userID, uok := middleware.GetUserIDFromContext(c)
	if !tok || !uok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Tenant or user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return tenantID, userID, true
}
