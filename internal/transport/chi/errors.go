package chi

import (
	"errors"
	"net/http"

	"github.com/kailas-cloud/resrank/internal/domain"
)

// ErrorCode is a machine-readable error code in API responses.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest          ErrorCode = "bad_request"
	CodeValidationFailed    ErrorCode = "validation_failed"
	CodePayloadTooLarge     ErrorCode = "payload_too_large"
	CodeUnauthorized        ErrorCode = "unauthorized"
	CodeNoReadableDocuments ErrorCode = "no_readable_documents"
	CodeCannotRank          ErrorCode = "cannot_rank"
	CodeRateLimited         ErrorCode = "rate_limited"
	CodeUnavailable         ErrorCode = "service_unavailable"
	CodeInternalError       ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// apiError is a classified error ready to be rendered as JSON or HTML.
type apiError struct {
	status  int
	code    ErrorCode
	message string
}

// errorHandler classifies a domain error. Returns false if it does not apply.
type errorHandler func(err error) (apiError, bool)

func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		payloadTooLargeHandler,
		detailHandler(domain.ErrInvalidRequest, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrNoReadableDocuments, http.StatusUnprocessableEntity, CodeNoReadableDocuments,
			"None of the uploaded resumes could be read. Please re-upload text-based PDF or plain text files."),
		sentinelHandler(domain.ErrDegenerateCorpus, http.StatusUnprocessableEntity, CodeCannotRank,
			"Cannot rank: the job description and resumes contain no meaningful words."),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, CodeRateLimited,
			"Too many ranking requests, please retry shortly."),
		sentinelHandler(domain.ErrUnauthorized, http.StatusUnauthorized, CodeUnauthorized, "unauthorized"),
		sentinelHandler(domain.ErrResourcesUnavailable, http.StatusServiceUnavailable, CodeUnavailable,
			"Language resources are unavailable."),
	}
}

// sentinelHandler maps a sentinel to a fixed, client-safe message.
func sentinelHandler(sentinel error, status int, code ErrorCode, message string) errorHandler {
	return func(err error) (apiError, bool) {
		if !errors.Is(err, sentinel) {
			return apiError{}, false
		}
		return apiError{status: status, code: code, message: message}, true
	}
}

// detailHandler maps a sentinel and passes the error text through.
// Only for errors whose text is built from user input (validation).
func detailHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(err error) (apiError, bool) {
		if !errors.Is(err, sentinel) {
			return apiError{}, false
		}
		return apiError{status: status, code: code, message: err.Error()}, true
	}
}

func payloadTooLargeHandler(err error) (apiError, bool) {
	var mbe *http.MaxBytesError
	if !errors.As(err, &mbe) {
		return apiError{}, false
	}
	return apiError{
		status:  http.StatusRequestEntityTooLarge,
		code:    CodePayloadTooLarge,
		message: "upload too large",
	}, true
}

var internalError = apiError{
	status:  http.StatusInternalServerError,
	code:    CodeInternalError,
	message: "internal error",
}
