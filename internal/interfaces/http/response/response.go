package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps a domain error onto an HTTP response. Handlers pass
// usecase errors straight through; the sentinel wrapped inside decides
// the status code.
func Error(c *gin.Context, err error) {
	status := statusOf(err)

	message := err.Error()
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	if status == http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "unhandled error", zap.Error(err))
		message = "internal server error"
	}

	c.JSON(status, gin.H{
		"error": message,
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound),
		errors.Is(err, domainerrors.ErrProductUnavailable):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrInvalidPhone):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden),
		errors.Is(err, domainerrors.ErrMerchantNotActive):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrBelowMinimum),
		errors.Is(err, domainerrors.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerrors.ErrGatewayUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
