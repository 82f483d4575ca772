package main

import (
	"context"
	"os"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/cmd/common"
	"github.com/Netflix/titus-fn-executor/config"
	"github.com/Netflix/titus-fn-executor/executor/agent"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/Netflix/titus-fn-executor/logsutil"
	"github.com/Netflix/titus-fn-executor/services"
	"github.com/Netflix/titus-fn-executor/tag"
	grpc_logrus "github.com/grpc-ecosystem/go-grpc-middleware/logging/logrus"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	pkgviper "github.com/spf13/viper"
	"go.opencensus.io/plugin/ocgrpc"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

const (
	serviceName   = "titus-fn-executor"
	shutdownGrace = 2 * time.Minute
)

func dialController(ctx context.Context, address string) (*grpc.ClientConn, error) {
	return grpc.DialContext(ctx, address,
		grpc.WithInsecure(),
		grpc.WithStatsHandler(&ocgrpc.ClientHandler{}),
		grpc.WithChainUnaryInterceptor(services.UnaryClientMetricsHandler),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             10 * time.Second,
			PermitWithoutStream: true,
		}),
	)
}

func run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go common.CancelOnSignal(ctx, cancel, shutdownGrace)

	if cfg.DebugAddress != "" {
		if err := services.SetupDebugServer(ctx, cfg.DebugAddress); err != nil {
			return err
		}
	}
	if cfg.ZipkinURL != "" {
		if err := services.SetupZipkin(ctx, cfg.ZipkinURL, serviceName); err != nil {
			return err
		}
	}

	m := metrics.Discard
	if cfg.AtlasAddr != "" {
		registry, err := services.StartSpectator(cfg.AtlasAddr)
		if err != nil {
			return errors.Wrap(err, "cannot start spectator registry")
		}
		defer registry.Stop()
		m = metrics.WithURL(ctx, logrus.StandardLogger(), cfg.AtlasAddr, tag.Defaults(cfg.Flavor))
		defer m.Flush()
	}

	conn, err := dialController(ctx, cfg.ControllerAddress)
	if err != nil {
		return errors.Wrap(err, "cannot dial controller")
	}
	defer conn.Close()

	a, err := agent.New(ctx, cfg, conn, m, agent.Options{Version: common.Version})
	if err != nil {
		return err
	}
	return a.Run(ctx)
}

func main() {
	go common.HandleQuitSignal()
	ctx := context.Background()

	logrusLogger := logrus.StandardLogger()
	ctx = logger.WithLogger(ctx, logrusLogger)

	v := pkgviper.New()
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.AlwaysSample()})

	var cfg *config.Config
	rootCmd := &cobra.Command{
		Use:          serviceName,
		Short:        "Runs function executors on behalf of the controller",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			var err error
			cfg, err = config.FromViper(v)
			if err != nil {
				return err
			}
			if cfg.Debug {
				logrusLogger.SetLevel(logrus.DebugLevel)
			}
			if cfg.LogJSON {
				logrusLogger.SetFormatter(&logrus.JSONFormatter{})
			}
			if cfg.Journald {
				logsutil.EnableJournald(true)
			}
			grpc_logrus.ReplaceGrpcLogger(logrusLogger.WithField("origin", "grpc"))
			view.SetReportingPeriod(time.Second * 1)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(ctx, cfg)
		},
	}
	rootCmd.Flags().AddFlagSet(config.NewFlagSet())
	config.BindEnv(v)

	if err := rootCmd.Execute(); err != nil {
		logger.G(ctx).WithError(err).Error("titus-fn-executor terminated")
		os.Exit(1)
	}
}
