package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"labelscan/internal/domain"
	"labelscan/internal/middleware"
	"labelscan/internal/parser"
)

// APIResponse is the standard envelope for error and informational responses.
// Successful extraction responses return the bare ExtractionResult instead.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; only application/pdf is accepted"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "AI processing timed out; try a smaller PDF or fewer pages"
	case errors.Is(err, domain.ErrUpstreamFailure):
		return http.StatusInternalServerError, "UPSTREAM_FAILURE", "AI processing failed: " + err.Error()
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusInternalServerError, "MISSING_API_KEY", "model API key is not configured"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Provider throttling carries its backoff to the client as a Retry-After
// header.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)

	var rateLimited *parser.RateLimitError
	if errors.As(err, &rateLimited) {
		c.Header("Retry-After", strconv.Itoa(rateLimited.RetryAfterSeconds()))
	}

	if status >= 500 {
		log.Printf("handler.HandleError: [%s] %v", c.GetString(middleware.RequestIDKey), err)
	}
	RespondError(c, status, code, msg)
}
