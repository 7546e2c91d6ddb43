package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/logger"
	"github.com/ridwanfathin/shop-admin-service/internal/model"
)

// bindQuery binds query parameters, answering 400 on failure
func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, model.BindingDetail(err))
		return false
	}
	return true
}

// checkDetails answers 400 when parameter parsing produced details
func checkDetails(c *gin.Context, details []model.ErrorDetail) bool {
	if len(details) > 0 {
		respondBadRequest(c, ErrInvalidQueryParams, details...)
		return false
	}
	return true
}

// logError logs a handler failure with request correlation fields
func logError(c *gin.Context, event string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	var reportErr *domain.ReportError
	if errors.As(err, &reportErr) {
		fields = append(fields, zap.String("report", reportErr.Report), zap.Any("params", reportErr.Params))
	}
	logger.FromContext(c.Request.Context()).Error(event, fields...)
}
