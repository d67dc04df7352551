package middleware

import (
	"context"
	"net/http"

	httputil "hoteldesk/pkg/http"
)

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// reject answers with the same {message, code} body handlers use.
func reject(w http.ResponseWriter, status int, code, message string) {
	_ = httputil.WriteJSON(w, status, httputil.ErrorResponse{
		Message: message,
		Code:    code,
	})
}
