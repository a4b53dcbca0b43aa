package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RayHeader is the inbound header carrying a caller-supplied correlation identifier.
const RayHeader = "X-Ray-Id"

type rayKey struct{}

// Ray returns middleware that attaches a correlation identifier to the request
// context. The identifier is taken from the X-Ray-Id header when present,
// otherwise generated. The identifier is echoed on the response.
func Ray() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ray := r.Header.Get(RayHeader)
			if ray == "" {
				ray = uuid.NewString()
			}

			w.Header().Set(RayHeader, ray)
			ctx := context.WithValue(r.Context(), rayKey{}, ray)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RayFromContext returns the correlation identifier attached by Ray,
// or an empty string when none is present.
func RayFromContext(ctx context.Context) string {
	if ray, ok := ctx.Value(rayKey{}).(string); ok {
		return ray
	}
	return ""
}
