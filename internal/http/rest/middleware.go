package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/eventure/eventure_api/util/tracing"
	"github.com/eventure/eventure_api/util/values"
	"github.com/lucsky/cuid"
)

// RequestTracing handles the request tracing context
func RequestTracing(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestSource := r.Header.Get(values.HeaderRequestSource)
		if requestSource == "" {
			requestSource = "unknown"
		}

		requestID := r.Header.Get(values.HeaderRequestID)
		if requestID == "" {
			requestID = cuid.New()
		}

		tracingContext := tracing.Context{
			RequestID:     requestID,
			RequestSource: requestSource,
		}

		ctx = context.WithValue(ctx, values.ContextTracingKey, tracingContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}

// RequireUser reads the acting user's id from the X-User-ID header. There is
// no authentication behind it; the header stands in for a session until a
// real identity provider exists.
func (api *API) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(values.HeaderUserID)
		if userID == "" {
			writeErrorResponse(w, errors.New("missing X-User-ID header"), values.NotAuthorised, "not-authorized")
			return
		}

		ctx := context.WithValue(r.Context(), "user_id", userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tracingFromRequest(r *http.Request) tracing.Context {
	tc, _ := r.Context().Value(values.ContextTracingKey).(tracing.Context)
	return tc
}
