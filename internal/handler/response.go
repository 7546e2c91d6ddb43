package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/model"
)

// Common error messages
const (
	ErrInvalidQueryParams = "Invalid query parameters"
	ErrInvalidReportRange = "Invalid report range"
	ErrStoreUnavailable   = "Reporting database is unavailable"
	ErrInternalServer     = "Internal server error"
	ErrExportFailed       = "Failed to export report"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, message string, details ...model.ErrorDetail) {
	response := model.ErrorResponse{
		Status:  http.StatusText(statusCode),
		Message: message,
		Details: details,
	}
	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, http.StatusBadRequest, message, details...)
}

// respondInternalServerError sends a 500 Internal Server Error response
func respondInternalServerError(c *gin.Context, message string) {
	respondWithError(c, http.StatusInternalServerError, message)
}

// respondOK sends a 200 OK response with data
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// reportErrorStatus maps a report failure onto an HTTP status
func reportErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest, ErrInvalidReportRange
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrStoreUnavailable
	default:
		return http.StatusInternalServerError, ErrInternalServer
	}
}

// respondReportError logs err and sends the mapped error response
func respondReportError(c *gin.Context, err error) {
	status, message := reportErrorStatus(err)
	_ = c.Error(err)

	var details []model.ErrorDetail
	if status == http.StatusBadRequest {
		details = append(details, model.ErrorDetail{Field: "query", Message: err.Error()})
	} else {
		logError(c, "report_failed", err)
	}
	respondWithError(c, status, message, details...)
}
