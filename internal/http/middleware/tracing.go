package middleware

import (
	"context"
	"net/http"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

// sensitiveQueryParams are removed from the URL before the span records it
var sensitiveQueryParams = []string{"access_token", "token"}

// TracingMiddleware adds OpenCensus tracing to HTTP requests
func TracingMiddleware(next http.Handler) http.Handler {
	annotated := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if span := trace.FromContext(ctx); span != nil {
			span.AddAttributes(
				trace.StringAttribute("http.host", r.Host),
				trace.StringAttribute("http.user_agent", r.UserAgent()),
				trace.StringAttribute("http.method", r.Method),
				trace.StringAttribute("http.path", r.URL.Path),
			)
			if r.URL.RawQuery != "" {
				span.AddAttributes(trace.StringAttribute("http.query", r.URL.RawQuery))
			}
			if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
				span.AddAttributes(trace.StringAttribute("http.request_id", requestID))
			}
		}

		rw := &traceResponseWriter{
			ResponseWriter: w,
			ctx:            ctx,
		}
		next.ServeHTTP(rw, r)
	})

	handler := &ochttp.Handler{
		Handler: annotated,
		FormatSpanName: func(r *http.Request) string {
			return r.Method + " " + r.URL.Path
		},
		IsPublicEndpoint: true,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, stripQueryCredentials(r))
	})
}

// stripQueryCredentials removes sensitive query parameters from the URL.
// An access_token becomes the Authorization header unless one is already set.
func stripQueryCredentials(r *http.Request) *http.Request {
	if r.URL.RawQuery == "" {
		return r
	}
	values := r.URL.Query()
	found := false
	for _, key := range sensitiveQueryParams {
		if values.Has(key) {
			found = true
		}
	}
	if !found {
		return r
	}

	token := values.Get("access_token")
	for _, key := range sensitiveQueryParams {
		values.Del(key)
	}

	clone := r.Clone(r.Context())
	clone.URL.RawQuery = values.Encode()
	clone.RequestURI = clone.URL.RequestURI()
	if token != "" && clone.Header.Get("Authorization") == "" {
		clone.Header.Set("Authorization", "Bearer "+token)
	}
	return clone
}

// traceResponseWriter records the status code on the request span
type traceResponseWriter struct {
	http.ResponseWriter
	ctx        context.Context
	statusCode int
}

func (trw *traceResponseWriter) WriteHeader(code int) {
	trw.statusCode = code

	if span := trace.FromContext(trw.ctx); span != nil {
		span.AddAttributes(trace.Int64Attribute("http.status_code", int64(code)))
		if code >= 500 {
			span.SetStatus(trace.Status{
				Code:    trace.StatusCodeUnknown,
				Message: http.StatusText(code),
			})
		}
	}

	trw.ResponseWriter.WriteHeader(code)
}

// Flush keeps the realtime SSE stream working behind the tracer
func (trw *traceResponseWriter) Flush() {
	if flusher, ok := trw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

var _ http.ResponseWriter = (*traceResponseWriter)(nil)
var _ http.Flusher = (*traceResponseWriter)(nil)
