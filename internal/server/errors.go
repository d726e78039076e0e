package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/username/calendar-pdf-service/internal/auth"
	"github.com/username/calendar-pdf-service/internal/calendar"
	"github.com/username/calendar-pdf-service/internal/drive"
	"github.com/username/calendar-pdf-service/internal/pdf"
)

// errorResponse is the structured error body of every failed request
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// writeError maps a typed error from the core or an adapter to its HTTP
// status and structured body. Anything unrecognized becomes a generic 500
// with no internal detail leaked.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var (
		validationErr *calendar.ValidationError
		dateErr       *calendar.InvalidDateError
		authErr       *auth.AuthError
		renderErr     *pdf.RenderError
		storageErr    *drive.StorageError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "VALIDATION_ERROR",
			Message: validationErr.Message,
		})

	case errors.As(err, &dateErr):
		c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid year or month",
		})

	case errors.As(err, &authErr):
		c.JSON(authErr.Status, errorResponse{
			Code:    authErr.Code,
			Message: authErr.Message,
		})

	case errors.As(err, &renderErr):
		logger.Error("PDF rendering failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(renderErr.Err))
		c.JSON(http.StatusInternalServerError, errorResponse{
			Code:    "PDF_GENERATION_ERROR",
			Message: "PDF generation failed",
		})

	case errors.As(err, &storageErr):
		logger.Error("Drive upload failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("details", storageErr.Details))
		c.JSON(http.StatusInternalServerError, errorResponse{
			Code:    storageErr.Code,
			Message: storageErr.Message,
			Details: storageErr.Details,
		})

	default:
		logger.Error("Unexpected error",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "Internal server error",
		})
	}
}
