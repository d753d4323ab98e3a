package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Workflow error codes. NotFound and Conflict get distinct status
// signaling; everything unclassified collapses to an internal failure.
const (
	CodeNotFound         = "notFound"
	CodeConflict         = "conflict"
	CodeValidation       = "validationFailure"
	CodeExternalProvider = "externalProviderFailure"
	CodeInternal         = "internalFailure"
)

// WorkflowError is a classified failure raised by a service operation.
type WorkflowError struct {
	Code    string
	Message string
}

func (e *WorkflowError) Error() string {
	return e.Message
}

func NewNotFoundError(msg string) error {
	return &WorkflowError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &WorkflowError{Code: CodeConflict, Message: msg}
}

func NewValidationError(msg string) error {
	return &WorkflowError{Code: CodeValidation, Message: msg}
}

func NewProviderError(msg string) error {
	return &WorkflowError{Code: CodeExternalProvider, Message: msg}
}

// ErrorCode extracts the workflow code from err, walking wrapped chains.
func ErrorCode(err error) string {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we.Code
	}
	return CodeInternal
}

// HTTPStatus maps a workflow error to the status its code signals.
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeValidation:
		return http.StatusBadRequest
	case CodeExternalProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
