package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tracker-rental/internal/logger"
	"tracker-rental/pkg/apierr"
)

// SuccessResponse writes the standard success envelope.
func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"sucesso":  true,
		"dados":    data,
		"mensagem": message,
	})
}

// DataResponse writes a success envelope without a message, used by findOne.
func DataResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"sucesso": true,
		"dados":   data,
	})
}

// ErrorResponse writes the error envelope with the status repeated as codigo.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"erro":     true,
		"mensagem": message,
		"codigo":   status,
	})
}

// HandleError maps a service failure to the error envelope. Typed failures
// carry their own status; everything else becomes a 500.
func HandleError(c *gin.Context, err error) {
	var apiErr *apierr.APIError
	if errors.As(err, &apiErr) {
		ErrorResponse(c, apiErr.Status, apiErr.Message)
		return
	}

	logger.Error("Unhandled error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	ErrorResponse(c, http.StatusInternalServerError, "Erro interno do servidor")
}
