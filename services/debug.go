package services

import (
	"context"
	"expvar"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"contrib.go.opencensus.io/exporter/zipkin"
	"github.com/Netflix/titus-fn-executor/logger"
	openzipkin "github.com/openzipkin/zipkin-go"
	zipkinHTTP "github.com/openzipkin/zipkin-go/reporter/http"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
	"go.opencensus.io/zpages"
)

// SetupDebugServer serves pprof, expvar and zpages on address until ctx is done.
func SetupDebugServer(ctx context.Context, address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return errors.Wrap(err, "Cannot setup listener for debug server")
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/vars", expvar.Handler())
	zpages.Handle(mux, "/trace")

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	go func() {
		err := http.Serve(listener, mux)
		if err != nil && ctx.Err() == nil {
			logger.G(ctx).WithError(err).Error("Debug server exited problematically")
		}
	}()

	logger.G(ctx).WithField("address", listener.Addr().String()).Info("Debug server listening")
	return nil
}

// SetupZipkin registers a zipkin trace exporter reporting as serviceName.
func SetupZipkin(ctx context.Context, zipkinURL, serviceName string) error {
	reporter := zipkinHTTP.NewReporter(zipkinURL,
		zipkinHTTP.BatchInterval(time.Second*5),
		zipkinHTTP.BatchSize(1000),
		zipkinHTTP.MaxBacklog(100000),
	)
	hostname, err := os.Hostname()
	if err != nil {
		return errors.Wrap(err, "Unable to fetch hostname")
	}
	endpoint, err := openzipkin.NewEndpoint(serviceName, hostname)
	if err != nil {
		return errors.Wrap(err, "Failed to create the local zipkinEndpoint")
	}
	logger.G(ctx).WithField("endpoint", endpoint).WithField("url", zipkinURL).Info("Setting up tracing")
	trace.RegisterExporter(zipkin.NewExporter(reporter, endpoint))
	return nil
}
