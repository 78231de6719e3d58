package middleware

import (
	"net/http"

	"github.com/google/uuid"

	gcontext "ctgapi/context"
)

const RequestIDHeader = "X-Request-ID"

// RequestID takes the request id from the X-Request-ID header, or makes a
// new one, and puts it in the context and on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if len(requestID) == 0 || len(requestID) > 128 {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		r = r.WithContext(gcontext.WithRequestID(r.Context(), requestID))

		next.ServeHTTP(w, r)
	})
}
