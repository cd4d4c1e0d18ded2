package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/middleware"
)

// ErrorResponse is the error body every endpoint emits: a single
// machine-readable code under "error".
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps a service error to its HTTP status and wire code.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := apperrors.CodeOf(err)

	var status int
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.String("code", code), slog.Int("status", status))
	}
	c.JSON(status, ErrorResponse{Error: code})
}

// respondBindError rejects a request whose body failed binding. Tag
// failures (required, oneof, len) report missing_fields; anything else is
// a malformed body.
func respondBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request body", slog.String("error", err.Error()))

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing_fields"})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request_body"})
}

// callerID pulls the authenticated user ID set by the auth middleware.
// Routes behind AuthMiddleware always have it; a miss means a wiring bug.
func callerID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	return userID, true
}
