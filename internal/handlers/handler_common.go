package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/calyxerp/calyx_backend/internal/apperrors"
	"github.com/calyxerp/calyx_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestIdentity pulls the authenticated tenant and actor from the context.
// Both are set by the auth middleware; missing values mean the route was wired
// without it, which is a server-side misconfiguration.
func requestIdentity(c *gin.Context) (tenantID, actorID string, ok bool) {
	logger := middleware.GetLoggerFromContext(c)
	tenantID, ok = middleware.GetTenantIDFromContext(c)
	if !ok {
		logger.Error("Tenant ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	actorID, ok = middleware.GetActorIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return tenantID, actorID, true
}

// respondError maps service errors onto HTTP statuses. Domain rule violations
// that a well-formed client can hit (imbalanced entries, missing role config)
// get 422; malformed input gets 400; unknown resources get 404.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, apperrors.ErrImbalancedEntry),
		errors.Is(err, apperrors.ErrMissingAccountConfig):
		logger.Warn("Request rejected by ledger rule", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrCyclicHierarchy),
		errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
