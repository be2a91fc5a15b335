package tracing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opencensus.io/trace"
)

// StartServiceSpan starts a span named "<service>.<method>"
func StartServiceSpan(ctx context.Context, serviceName, methodName string) (context.Context, *trace.Span) {
	return trace.StartSpan(ctx, fmt.Sprintf("%s.%s", serviceName, methodName))
}

// EndSpan ends a span and records err on it
func EndSpan(span *trace.Span, err error) {
	if err != nil {
		span.SetStatus(trace.Status{
			Code:    trace.StatusCodeUnknown,
			Message: err.Error(),
		})
	}
	span.End()
}

// AddAttribute adds an attribute to the current span
func AddAttribute(ctx context.Context, key string, value interface{}) {
	span := trace.FromContext(ctx)
	if span == nil {
		return
	}

	switch v := value.(type) {
	case string:
		span.AddAttributes(trace.StringAttribute(key, v))
	case int:
		span.AddAttributes(trace.Int64Attribute(key, int64(v)))
	case int64:
		span.AddAttributes(trace.Int64Attribute(key, v))
	case bool:
		span.AddAttributes(trace.BoolAttribute(key, v))
	default:
		span.AddAttributes(trace.StringAttribute(key, fmt.Sprintf("%v", v)))
	}
}

// WrapHTTPClient wraps an http.Client with OpenCensus tracing
func WrapHTTPClient(client *http.Client) *http.Client {
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	transport := GetHTTPOptions()
	transport.Base = client.Transport

	return &http.Client{
		Transport:     &transport,
		Timeout:       client.Timeout,
		Jar:           client.Jar,
		CheckRedirect: client.CheckRedirect,
	}
}
