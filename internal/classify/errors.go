package classify

import (
	"errors"
	"net/http"

	"github.com/kpdinfo/kpdinfo/internal/provider/openai"
)

// Machine-readable error kinds carried in the error envelope. Control flow
// and HTTP mapping switch on these, never on message text.
const (
	KindBadRequest = "BAD_REQUEST"
	KindConfig     = "CONFIG_ERROR"
	KindTransport  = "TRANSPORT_ERROR"
	KindTimeout    = "TIMEOUT"
	KindParse      = "PARSE_ERROR"
	KindGrounding  = "GROUNDING_ERROR"
	KindValidation = "VALIDATION_ERROR"
	KindInternal   = "INTERNAL_ERROR"
)

// Domain errors for classification operations.
var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrInputTooLong = errors.New("input text exceeds the maximum accepted length")
	ErrInvalidBody  = errors.New("request body is not a valid JSON object")

	// Configuration failures are fatal for the request and never retried.
	ErrMissingCredential = errors.New("provider API credential is not configured")
	ErrMissingCorpus     = errors.New("no retrieval corpus identifiers are configured")

	// ErrNotGrounded rejects an answer produced without demonstrable use of
	// the reference documents.
	ErrNotGrounded = errors.New("answer rejected because it is not grounded in the reference documents")

	// ErrValidation marks shape or pattern violations in a decoded result.
	ErrValidation = errors.New("invalid classification result")
)

// Kind maps an error to its machine-readable kind string.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput),
		errors.Is(err, ErrInputTooLong),
		errors.Is(err, ErrInvalidBody):
		return KindBadRequest
	case errors.Is(err, ErrMissingCredential),
		errors.Is(err, ErrMissingCorpus):
		return KindConfig
	case errors.Is(err, openai.ErrTimeout):
		return KindTimeout
	case errors.Is(err, openai.ErrParse):
		return KindParse
	case errors.Is(err, ErrNotGrounded):
		return KindGrounding
	case errors.Is(err, ErrValidation):
		return KindValidation
	}

	var te *openai.TransportError
	if errors.As(err, &te) {
		return KindTransport
	}

	return KindInternal
}

// MapHTTPStatus maps classification errors to HTTP status codes.
// Invalid input is the caller's fault; everything else is a server-side
// or upstream failure.
func MapHTTPStatus(err error) int {
	if Kind(err) == KindBadRequest {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
