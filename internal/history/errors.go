package history

import (
	"errors"
	"net/http"
)

// Domain errors for history operations.
var (
	ErrNotFound = errors.New("history entry not found")
)

// MapHTTPStatus maps history domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
