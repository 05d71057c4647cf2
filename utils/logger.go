package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger global logger
var Logger zerolog.Logger

// InitLogger sets up the global zerolog logger.
func InitLogger() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	Logger = zerolog.New(output).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(zerolog.InfoLevel)

	if os.Getenv("GIN_MODE") == "debug" {
		Logger = Logger.Level(zerolog.DebugLevel)
	}

	Logger.Info().Msg("logger initialized")
}

// LogApiRequest logs an incoming API request.
func LogApiRequest(method, url string, params, body interface{}, headers map[string]string) {
	// never log full credentials
	if headers != nil && headers["Authorization"] != "" {
		if len(headers["Authorization"]) > 15 {
			headers["Authorization"] = headers["Authorization"][:15] + "..."
		}
	}

	Logger.Info().
		Str("method", method).
		Str("url", url).
		Interface("params", params).
		Interface("body", body).
		Interface("headers", headers).
		Msg("api request")
}

// LogApiResponse logs an API response.
func LogApiResponse(method, url string, statusCode int, responseTime time.Duration, responseBody interface{}) {
	event := Logger.Info()
	if statusCode >= 400 {
		event = Logger.Error()
	}
	event.
		Str("method", method).
		Str("url", url).
		Int("statusCode", statusCode).
		Dur("responseTime", responseTime).
		Interface("body", responseBody).
		Msg("api response")
}

// LogInfo logs an informational message with context fields.
func LogInfo(context map[string]interface{}, message string) {
	Logger.Info().
		Interface("context", context).
		Msg(message)
}

// LogError logs an error with context fields.
func LogError(err error, context map[string]interface{}, message string) {
	Logger.Error().
		Err(err).
		Interface("context", context).
		Msg(message)
}

// LogDbOperation logs a database operation at debug level.
func LogDbOperation(operation string, collection string, query interface{}, result interface{}) {
	Logger.Debug().
		Str("operation", operation).
		Str("collection", collection).
		Interface("query", query).
		Interface("result", result).
		Msg("db operation")
}
