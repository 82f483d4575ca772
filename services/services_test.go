package services

import (
	"context"
	"testing"

	"github.com/Netflix/spectator-go"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gotest.tools/assert"
)

func TestSpectatorExporterConvertsCountsToDeltas(t *testing.T) {
	registry := spectator.NewRegistry(&spectator.Config{})
	exporter := NewSpectatorExporter(registry)

	v := &view.View{Name: "test.count"}
	row := func(count int64) *view.Data {
		return &view.Data{
			View: v,
			Rows: []*view.Row{{
				Tags: []tag.Tag{{Key: MethodTag, Value: "report"}},
				Data: &view.CountData{Value: count},
			}},
		}
	}

	exporter.ExportView(row(3))
	exporter.ExportView(row(5))

	counter := registry.CounterWithId(registry.NewId("test.count", map[string]string{"method": "report"}))
	assert.Equal(t, counter.Count(), float64(5))
}

func TestSpectatorExporterLastValue(t *testing.T) {
	registry := spectator.NewRegistry(&spectator.Config{})
	exporter := NewSpectatorExporter(registry)

	exporter.ExportView(&view.Data{
		View: &view.View{Name: "test.gauge"},
		Rows: []*view.Row{{Data: &view.LastValueData{Value: 42}}},
	})

	gauge := registry.GaugeWithId(registry.NewId("test.gauge", map[string]string{}))
	assert.Equal(t, gauge.Get(), float64(42))
}

func TestUnaryMetricsHandlerPassesThroughErrors(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/executor_api_pb.ExecutorAPI/report_executor_state"}
	_, err := UnaryMetricsHandler(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		method, ok := tag.FromContext(ctx).Value(MethodTag)
		assert.Assert(t, ok)
		assert.Equal(t, method, info.FullMethod)
		return nil, status.Error(codes.Unavailable, "down")
	})
	assert.Equal(t, status.Code(err), codes.Unavailable)
}

func TestCommonTagsFromEnvironment(t *testing.T) {
	t.Setenv("NETFLIX_STACK", "test")
	t.Setenv("NETFLIX_APP", "")
	tags := CommonTags()
	assert.Equal(t, tags["nf.stack"], "test")
	_, ok := tags["nf.app"]
	assert.Assert(t, !ok)
}
