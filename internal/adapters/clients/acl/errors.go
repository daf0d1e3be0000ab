package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/portfolio-service/internal/adapters/clients"
	"github.com/jsamuelsen/portfolio-service/internal/domain"
)

// maxErrorBody bounds how much of an error body is read for context.
const maxErrorBody = 64 << 10

// ErrorResponse is an error body from a downstream API. Both the nested
// {"error":{"code","message"}} and the flat {"code","message"} shapes parse.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorDetail is the nested part of an ErrorResponse.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// GetCode returns the nested code, or the flat one.
func (e *ErrorResponse) GetCode() string {
	if e.Error.Code != "" {
		return e.Error.Code
	}

	return e.Code
}

// GetMessage returns the nested message, or the flat one.
func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// Error codes a downstream may put in its body.
const (
	ExternalCodeNotFound     = "NOT_FOUND"
	ExternalCodeConflict     = "CONFLICT"
	ExternalCodeValidation   = "VALIDATION_ERROR"
	ExternalCodeForbidden    = "FORBIDDEN"
	ExternalCodeUnauthorized = "UNAUTHORIZED"
)

// ErrorContext names what was being done when a call failed.
type ErrorContext struct {
	Service   string // downstream name, e.g. "todo-api"
	Operation string // e.g. "toggle todo"
	Entity    string // entity for not-found errors, e.g. "todo"
	ID        string // entity id, empty for collection calls
}

// ParseErrorResponse decodes an error body. It returns nil when the body is
// empty, not JSON, or carries neither code nor message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetCode() == "" && errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError turns a failed call into a domain error. clientErr is the
// transport error, if any; otherwise resp must be a non-2xx response.
// 2xx responses map to nil.
func MapHTTPError(resp *http.Response, clientErr error, ec ErrorContext) error {
	if clientErr != nil {
		return mapClientError(clientErr, ec)
	}

	if resp == nil {
		return domain.NewUnavailableError(ec.Service, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, ec)
}

func mapClientError(err error, ec ErrorContext) error {
	if errors.Is(err, clients.ErrCircuitOpen) {
		return domain.NewUnavailableError(ec.Service, "circuit breaker open during "+ec.Operation)
	}

	return domain.NewUnavailableError(ec.Service, fmt.Sprintf("%s failed: %v", ec.Operation, err))
}

func mapStatusCode(status int, errResp *ErrorResponse, ec ErrorContext) error {
	message := defaultMessageForStatus(status, ec.Operation)
	if errResp != nil && errResp.GetMessage() != "" {
		message = errResp.GetMessage()
	}

	if errResp != nil && status < http.StatusInternalServerError {
		if err := MapExternalCode(errResp.GetCode(), message, ec); err != nil {
			return err
		}
	}

	switch status {
	case http.StatusNotFound:
		return domain.NewNotFoundError(ec.Entity, ec.ID)
	case http.StatusConflict:
		return domain.NewConflictError(ec.Entity, message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if errResp != nil {
			for field, msg := range errResp.Error.Details {
				return domain.NewValidationError(field, msg)
			}
		}

		return domain.NewValidationError("", message)
	case http.StatusForbidden:
		return domain.NewForbiddenError(ec.Operation, message)
	case http.StatusUnauthorized:
		return domain.NewForbiddenError(ec.Operation, "authentication required")
	case http.StatusTooManyRequests:
		return domain.NewUnavailableError(ec.Service, "rate limit exceeded")
	default:
		if status >= http.StatusInternalServerError {
			return domain.NewUnavailableError(ec.Service, message)
		}

		return domain.NewValidationError("", message)
	}
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusConflict:
		return "resource conflict"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusForbidden:
		return "access denied"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}

// MapExternalCode maps a known body error code to a domain error. Unknown
// codes return nil so the status code decides.
func MapExternalCode(code, message string, ec ErrorContext) error {
	switch code {
	case ExternalCodeNotFound:
		return domain.NewNotFoundError(ec.Entity, ec.ID)
	case ExternalCodeConflict:
		return domain.NewConflictError(ec.Entity, message)
	case ExternalCodeValidation:
		return domain.NewValidationError("", message)
	case ExternalCodeForbidden:
		return domain.NewForbiddenError(ec.Operation, message)
	case ExternalCodeUnauthorized:
		return domain.NewForbiddenError(ec.Operation, "authentication required")
	default:
		return nil
	}
}
