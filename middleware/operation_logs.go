package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/leadflowbr/leadflow_end/models"
	"github.com/leadflowbr/leadflow_end/repository"
	"github.com/leadflowbr/leadflow_end/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// mutating methods worth auditing
var loggedMethods = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodPatch:  true,
}

var excludedPaths = map[string]bool{
	"/api/health":        true,
	"/api/db-status":     true,
	"/api/auth/login":    true,
	"/api/auth/register": true,
}

// OperationLoggerMiddleware persists an audit record for every mutating request.
func OperationLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !shouldLogOperation(c) {
			c.Next()
			return
		}

		startTime := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		var requestBody interface{}
		if c.Request.Body != nil {
			requestBodyBytes, err := io.ReadAll(c.Request.Body)
			if err == nil {
				c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBodyBytes))
				if strings.Contains(c.Request.Header.Get("Content-Type"), "application/json") {
					if err := json.Unmarshal(requestBodyBytes, &requestBody); err != nil {
						requestBody = string(requestBodyBytes)
					}
				} else {
					requestBody = string(requestBodyBytes)
				}
			}
		}

		c.Next()

		responseTime := time.Since(startTime).Milliseconds()

		var errorMessage string
		if len(c.Errors) > 0 {
			errorMessage = c.Errors.String()
		}

		operatorID, operatorName := extractUserInfo(c)

		operationLog := models.OperationLog{
			Method:        method,
			Path:          path,
			OperatorID:    operatorID,
			OperatorName:  operatorName,
			RequestBody:   sanitizeData(requestBody),
			StatusCode:    c.Writer.Status(),
			Success:       c.Writer.Status() < http.StatusBadRequest,
			ErrorMessage:  errorMessage,
			OperationTime: startTime,
			ResponseTime:  responseTime,
			IPAddress:     c.ClientIP(),
			UserAgent:     c.Request.UserAgent(),
		}

		if err := saveOperationLog(&operationLog); err != nil {
			utils.Logger.Error().Err(err).Msg("saving operation log failed")
		}
	}
}

// shouldLogOperation filters which requests get audited.
func shouldLogOperation(c *gin.Context) bool {
	if _, excluded := excludedPaths[c.Request.URL.Path]; excluded {
		return false
	}
	return loggedMethods[c.Request.Method]
}

// extractUserInfo pulls the operator identity out of the auth claims.
func extractUserInfo(c *gin.Context) (string, string) {
	operatorID := "anonymous"
	operatorName := "anonymous"

	userClaims, exists := c.Get("user")
	if !exists {
		return operatorID, operatorName
	}

	switch v := userClaims.(type) {
	case jwt.MapClaims:
		if id, ok := v["id"].(string); ok {
			operatorID = id
		}
		if email, ok := v["email"].(string); ok {
			operatorName = email
		}
	case map[string]interface{}:
		if id, ok := v["id"].(string); ok {
			operatorID = id
		}
		if email, ok := v["email"].(string); ok {
			operatorName = email
		}
	}

	return operatorID, operatorName
}

// sanitizeData strips credential fields from logged bodies.
func sanitizeData(data interface{}) interface{} {
	m, ok := data.(map[string]interface{})
	if !ok {
		return data
	}

	cleaned := make(map[string]interface{}, len(m))
	for k, v := range m {
		lower := strings.ToLower(k)
		if lower == "password" || lower == "secret" || lower == "token" {
			cleaned[k] = "***"
			continue
		}
		cleaned[k] = v
	}
	return cleaned
}

// saveOperationLog writes the audit record.
func saveOperationLog(operationLog *models.OperationLog) error {
	_, err := repository.Collection(repository.OperationLogsCollection).
		InsertOne(repository.GetContext(), operationLog)
	return err
}
