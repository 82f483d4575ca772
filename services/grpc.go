package services

import (
	"context"
	"time"

	"github.com/Netflix/titus-fn-executor/logger"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	MethodTag     = tag.MustNewKey("method")
	ReturnCodeTag = tag.MustNewKey("returnCode")

	rpcLatency = stats.Float64("titus.fnexecutor.rpc.latency", "Latency of unary controller RPCs", stats.UnitMilliseconds)

	// Views are the RPC views recorded by the interceptors in this package.
	Views = []*view.View{
		{
			Name:        "titus.fnexecutor.rpc.count",
			Description: "Unary RPCs by method and return code",
			Measure:     rpcLatency,
			TagKeys:     []tag.Key{MethodTag, ReturnCodeTag},
			Aggregation: view.Count(),
		},
		{
			Name:        "titus.fnexecutor.rpc.latency",
			Description: "Latency of unary RPCs",
			Measure:     rpcLatency,
			TagKeys:     []tag.Key{MethodTag},
			Aggregation: view.Distribution(1, 5, 10, 50, 100, 500, 1000, 5000, 30000),
		},
	}
)

func UnaryMetricsHandler(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	ctx, err := tag.New(ctx, tag.Upsert(MethodTag, info.FullMethod))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := handler(ctx, req)

	st, _ := status.FromError(err)
	duration := time.Since(start)
	l := logger.G(ctx).WithField("method", info.FullMethod).WithField("statusCode", st.Code().String()).WithField("duration", duration.String())
	fun := l.Debug
	if err != nil {
		fun = l.WithError(err).Warn
	}

	fun("Finished unary call")
	record(ctx, st.Code().String(), duration)
	return result, err
}

// UnaryClientMetricsHandler records the same measurements for calls made to the controller.
func UnaryClientMetricsHandler(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	ctx, err := tag.New(ctx, tag.Upsert(MethodTag, method))
	if err != nil {
		return err
	}

	start := time.Now()
	err = invoker(ctx, method, req, reply, cc, opts...)
	st, _ := status.FromError(err)
	record(ctx, st.Code().String(), time.Since(start))
	return err
}

func record(ctx context.Context, code string, duration time.Duration) {
	_ = stats.RecordWithTags(ctx, []tag.Mutator{tag.Upsert(ReturnCodeTag, code)},
		rpcLatency.M(float64(duration)/float64(time.Millisecond)))
}
