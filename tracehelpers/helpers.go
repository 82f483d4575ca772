package tracehelpers

import (
	"context"
	"errors"

	"go.opencensus.io/trace"
	"google.golang.org/grpc/status"
)

// httpStatusError is implemented by errors carrying an HTTP response status.
type httpStatusError interface {
	HTTPStatusCode() int
}

func SetStatus(err error, span *trace.Span) {
	span.SetStatus(StatusFromError(err))
}

func StatusFromError(err error) trace.Status {
	if err == nil {
		return trace.Status{Code: trace.StatusCodeOK}
	}

	if grpcStatus, ok := status.FromError(err); ok {
		return trace.Status{
			Code:    int32(grpcStatus.Code()),
			Message: grpcStatus.Message(),
		}
	}

	var httpErr httpStatusError
	if errors.As(err, &httpErr) {
		return trace.Status{
			Code:    codeFromHTTP(httpErr.HTTPStatusCode()),
			Message: err.Error(),
		}
	}

	code := trace.StatusCodeUnknown
	switch {
	case errors.Is(err, context.Canceled):
		code = trace.StatusCodeCancelled
	case errors.Is(err, context.DeadlineExceeded):
		code = trace.StatusCodeDeadlineExceeded
	}

	return trace.Status{
		Code:    int32(code),
		Message: err.Error(),
	}
}

func codeFromHTTP(code int) int32 {
	switch {
	case code < 200:
		return trace.StatusCodeUnknown
	case code < 400:
		return trace.StatusCodeOK
	}
	switch code {
	case 400:
		return trace.StatusCodeInvalidArgument
	case 401:
		return trace.StatusCodeUnauthenticated
	case 403:
		return trace.StatusCodePermissionDenied
	case 404:
		return trace.StatusCodeNotFound
	case 429:
		return trace.StatusCodeResourceExhausted
	case 501:
		return trace.StatusCodeUnimplemented
	case 503:
		return trace.StatusCodeUnavailable
	case 504:
		return trace.StatusCodeDeadlineExceeded
	}
	if code >= 500 {
		return trace.StatusCodeInternal
	}
	return trace.StatusCodeUnknown
}
