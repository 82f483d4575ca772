package tracehelpers

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gotest.tools/assert"
)

type fakeHTTPError int

func (f fakeHTTPError) Error() string       { return fmt.Sprintf("http %d", int(f)) }
func (f fakeHTTPError) HTTPStatusCode() int { return int(f) }

func TestStatusFromError(t *testing.T) {
	assert.Assert(t, StatusFromError(nil) == trace.Status{Code: trace.StatusCodeOK})
	assert.Assert(t, StatusFromError(status.Error(codes.NotFound, "foo")) == trace.Status{Message: "foo", Code: trace.StatusCodeNotFound})

	st := StatusFromError(errors.Wrap(context.DeadlineExceeded, "report"))
	assert.Equal(t, st.Code, int32(trace.StatusCodeDeadlineExceeded))

	st = StatusFromError(errors.Wrap(fakeHTTPError(500), "upload"))
	assert.Equal(t, st.Code, int32(trace.StatusCodeInternal))
	st = StatusFromError(fakeHTTPError(429))
	assert.Equal(t, st.Code, int32(trace.StatusCodeResourceExhausted))
}
