package middleware

import (
	"net/http"

	apperrors "hoteldesk/pkg/errors"
)

// MaxRequestSize caps the request body at maxBytes. Requests announcing a
// larger Content-Length are refused up front; others fail on read once the
// limit is crossed.
func MaxRequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				reject(w, http.StatusRequestEntityTooLarge, apperrors.CodeInvalidInput, "Request body too large")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
