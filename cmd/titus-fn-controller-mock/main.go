package main

import (
	"context"
	"io/ioutil"
	"net"
	"os"
	"time"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/cmd/common"
	"github.com/Netflix/titus-fn-executor/controller/mock"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/Netflix/titus-fn-executor/services"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	pkgviper "github.com/spf13/viper"
	"google.golang.org/protobuf/encoding/protojson"
)

const (
	addressFlagName      = "address"
	debugFlagName        = "debug"
	debugAddressFlagName = "debug-address"
	executorIDFlagName   = "executor-id"
	desiredStateFlagName = "desired-state"
)

// loadDesiredState reads a DesiredExecutorState in its protobuf JSON form.
func loadDesiredState(path string) (*executorapi.DesiredExecutorState, error) {
	data, err := ioutil.ReadFile(path) // nolint: gosec
	if err != nil {
		return nil, errors.Wrap(err, "cannot read desired state")
	}
	var desired executorapi.DesiredExecutorState
	if err = protojson.Unmarshal(data, &desired); err != nil {
		return nil, errors.Wrapf(err, "cannot parse desired state in %s", path)
	}
	return &desired, nil
}

func main() {
	go common.HandleQuitSignal()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logrusLogger := logrus.StandardLogger()
	ctx = logger.WithLogger(ctx, logrusLogger)
	v := pkgviper.New()

	rootCmd := &cobra.Command{
		Use:          "titus-fn-controller-mock",
		Short:        "In-memory controller for running an executor locally",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if v.GetBool(debugFlagName) {
				logrusLogger.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			go common.CancelOnSignal(ctx, cancel, 30*time.Second)
			if addr := v.GetString(debugAddressFlagName); addr != "" {
				if err := services.SetupDebugServer(ctx, addr); err != nil {
					return err
				}
			}

			controller := mock.New()
			if path := v.GetString(desiredStateFlagName); path != "" {
				executorID := v.GetString(executorIDFlagName)
				if executorID == "" {
					return errors.New("--executor-id is required with --desired-state")
				}
				desired, err := loadDesiredState(path)
				if err != nil {
					return err
				}
				controller.PushDesiredState(executorID, desired)
			}

			listener, err := net.Listen("tcp", v.GetString(addressFlagName))
			if err != nil {
				return errors.Wrap(err, "cannot listen")
			}
			return controller.Serve(ctx, listener)
		},
	}
	rootCmd.Flags().String(addressFlagName, ":8901", "Address serving both gRPC and the HTTP ingest endpoint")
	rootCmd.Flags().Bool(debugFlagName, false, "Turn on debug logging")
	rootCmd.Flags().String(debugAddressFlagName, "", "Address for zpages, pprof")
	rootCmd.Flags().String(executorIDFlagName, "", "Executor the desired state is served to")
	rootCmd.Flags().String(desiredStateFlagName, "", "JSON file with a desired state to serve at startup")
	v.AutomaticEnv()

	if err := rootCmd.Execute(); err != nil {
		logger.G(ctx).WithError(err).Error("Mock controller terminated")
		os.Exit(1)
	}
}
