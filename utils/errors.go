package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError API error with status code and machine-readable code
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

// Error implements the error interface.
func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError creates an API error.
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateNotFoundError resource not found
func CreateNotFoundError(resource string) *ApiError {
	return NewApiError(resource+" not found", http.StatusNotFound, "RESOURCE_NOT_FOUND")
}

// CreateUnauthorizedError missing or invalid credentials
func CreateUnauthorizedError() *ApiError {
	return NewApiError("unauthorized", http.StatusUnauthorized, "UNAUTHORIZED")
}

// CreateForbiddenError authenticated but not allowed
func CreateForbiddenError() *ApiError {
	return NewApiError("forbidden", http.StatusForbidden, "FORBIDDEN")
}

// CreateValidationError input rejected before any store call
func CreateValidationError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, "VALIDATION_ERROR")
}

// CreateDuplicateTagError adding a tag that is already on the lead
func CreateDuplicateTagError(tag string) *ApiError {
	return NewApiError(fmt.Sprintf("tag %q already exists on this lead", tag), http.StatusConflict, "DUPLICATE_TAG")
}

// CreateLeadLimitError monthly quota exhausted; points the client at the upgrade flow
func CreateLeadLimitError(remaining int) *ApiError {
	return NewApiError(
		fmt.Sprintf("monthly lead limit reached (%d remaining) - upgrade your plan to keep prospecting", remaining),
		http.StatusForbidden,
		"LEAD_LIMIT_REACHED",
	)
}

// HandleError logs the error and writes the appropriate response.
func HandleError(c *gin.Context, err error) {
	if c == nil {
		return
	}

	errorMessage := err.Error()
	LogError(err, map[string]interface{}{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}, errorMessage)

	if apiErr, ok := err.(*ApiError); ok {
		response := gin.H{"success": false, "error": apiErr.Message}
		if apiErr.ErrorCode != "" {
			response["code"] = apiErr.ErrorCode
		}
		c.JSON(apiErr.StatusCode, response)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   errorMessage,
	})
}

// SuccessResponse writes a success envelope.
func SuccessResponse(c *gin.Context, data interface{}, message string, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := gin.H{"success": true}
	if data != nil {
		response["data"] = data
	}
	if message != "" {
		response["message"] = message
	}

	c.JSON(code, response)
}

// ErrorResponse writes an error envelope.
func ErrorResponse(c *gin.Context, message string, statusCode int) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
