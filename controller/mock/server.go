package mock

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/Netflix/titus-fn-executor/services"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_logrus "github.com/grpc-ecosystem/go-grpc-middleware/logging/logrus"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/soheilhy/cmux"
	"go.opencensus.io/plugin/ocgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
)

// NewGRPCServer returns a server with the controller and a health service registered.
func (c *Controller) NewGRPCServer(ctx context.Context) *grpc.Server {
	logrusEntry := logger.G(ctx).WithField("origin", "grpc")

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(&ocgrpc.ServerHandler{}),
		grpc_middleware.WithUnaryServerChain(
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_logrus.UnaryServerInterceptor(logrusEntry),
			services.UnaryMetricsHandler,
		),
		grpc_middleware.WithStreamServerChain(
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_logrus.StreamServerInterceptor(logrusEntry),
		),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     30 * time.Second,
			MaxConnectionAge:      30 * time.Minute,
			MaxConnectionAgeGrace: 5 * time.Minute,
			Time:                  45 * time.Second,
		}))

	grpc_health_v1.RegisterHealthServer(grpcServer, &healthcheck{})
	executorapi.RegisterExecutorAPIServer(grpcServer, c)
	return grpcServer
}

// Serve runs gRPC and HTTP on one listener until ctx is done.
func (c *Controller) Serve(ctx context.Context, listener net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)

	grpc_logrus.ReplaceGrpcLogger(logger.G(ctx).WithField("origin", "grpc"))
	grpcServer := c.NewGRPCServer(ctx)
	httpServer := &http.Server{
		Handler:           c.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	m := cmux.New(listener)

	go func() {
		<-ctx.Done()
		logger.G(ctx).Info("Mock controller shutting down")
		time.AfterFunc(5*time.Second, func() {
			logger.G(ctx).Warning("GRPC Server force shutting down")
			grpcServer.Stop()
		})
		_ = httpServer.Close()
		grpcServer.GracefulStop()
		m.Close()
	}()
	logger.G(ctx).WithField("address", listener.Addr().String()).Info("Mock controller starting up")

	http1Listener := m.Match(cmux.HTTP1Fast())
	anyListener := m.Match(cmux.Any())

	group.Go(func() error { return grpcServer.Serve(anyListener) })
	group.Go(func() error { return httpServer.Serve(http1Listener) })
	group.Go(m.Serve)

	err := group.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

type healthcheck struct {
}

func (hc *healthcheck) Check(ctx context.Context, r *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	switch r.Service {
	case "", executorapi.ExecutorAPI_ServiceDesc.ServiceName:
	default:
		return nil, status.Errorf(codes.NotFound, "Service %q not found", r.Service)
	}

	return &grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	}, nil
}

func (hc *healthcheck) Watch(*grpc_health_v1.HealthCheckRequest, grpc_health_v1.Health_WatchServer) error {
	return status.Error(codes.Unimplemented, "Streaming healthchecks are not yet implemented")
}
