// Package agent runs an executor: it keeps the controller informed of the
// executor's state and converges towards the desired state it streams back.
package agent

import (
	"context"
	"sync"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/config"
	"github.com/Netflix/titus-fn-executor/executor/fnexecutor"
	"github.com/Netflix/titus-fn-executor/executor/hostresources"
	"github.com/Netflix/titus-fn-executor/executor/outcome"
	"github.com/Netflix/titus-fn-executor/executor/reconciler"
	"github.com/Netflix/titus-fn-executor/executor/state"
	"github.com/Netflix/titus-fn-executor/executor/statesync"
	"github.com/Netflix/titus-fn-executor/executor/taskrunner"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const (
	executorStatusMetric = "titus.fnexecutor.executorStatus"

	defaultShutdownTimeout = time.Minute
	maxReportBackoff       = 2 * time.Minute
)

// Options replace the agent's default collaborators. Zero values keep the default.
type Options struct {
	Version string
	// Manager defaults to a ProcessManager running cfg.FunctionExecutorCommand.
	Manager reconciler.Manager
	// Invoker defaults to a CommandInvoker running cfg.TaskCommand.
	Invoker taskrunner.Invoker
	// Resources defaults to probing the host.
	Resources       *executorapi.HostResources
	ShutdownTimeout time.Duration
}

type Agent struct {
	config  *config.Config
	options Options
	metrics metrics.Reporter
	info    state.StaticInfo

	store      *state.Store
	queue      *statesync.Queue
	reporter   *statesync.Reporter
	watcher    *statesync.Watcher
	reconciler *reconciler.Reconciler
	runner     *taskrunner.Runner
	manager    reconciler.Manager
	// closeManager releases what the default manager holds, nil for injected managers.
	closeManager func(context.Context) error

	statusLock sync.Mutex
	status     executorapi.ExecutorStatus
}

// New builds an agent talking to the controller over conn.
func New(ctx context.Context, cfg *config.Config, conn grpc.ClientConnInterface, m metrics.Reporter, opts Options) (*Agent, error) {
	flavor, err := cfg.ExecutorFlavor()
	if err != nil {
		return nil, err
	}
	allowed, err := cfg.AllowedFunctionList()
	if err != nil {
		return nil, err
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}
	if opts.Resources == nil {
		opts.Resources = hostresources.NewDetector(cfg.DiskPath).Detect(ctx)
	}

	client := executorapi.NewExecutorAPIClient(conn)
	a := &Agent{
		config:  cfg,
		options: opts,
		metrics: m,
		info: state.StaticInfo{
			ExecutorID:       cfg.ExecutorID,
			Hostname:         cfg.Hostname,
			Version:          opts.Version,
			Flavor:           flavor,
			DevelopmentMode:  cfg.DevelopmentMode,
			Labels:           cfg.Labels,
			AllowedFunctions: allowed,
			TotalResources:   opts.Resources,
		},
		store:  state.NewStore(),
		queue:  statesync.NewQueue(cfg.DesiredStateQueueSize),
		status: executorapi.ExecutorStatus_EXECUTOR_STATUS_STARTING_UP,
	}

	var outcomes outcome.Reporter
	switch cfg.OutcomeTransport {
	case config.OutcomeTransportGRPC:
		outcomes = outcome.NewGRPCReporter(client, cfg.ExecutorID, m)
	default:
		outcomes = outcome.NewHTTPReporter(outcome.HTTPConfig{
			BaseURL:        cfg.IngestURL,
			ExecutorID:     cfg.ExecutorID,
			ConnectTimeout: cfg.OutcomeConnectTimeout,
			ReadTimeout:    cfg.OutcomeReadTimeout,
		}, m)
	}

	invoker := opts.Invoker
	if invoker == nil {
		invoker = &taskrunner.CommandInvoker{
			Command:    cfg.TaskCommand,
			ExecutorID: cfg.ExecutorID,
		}
	}
	a.runner = taskrunner.New(taskrunner.Config{
		MaxConcurrent:     cfg.MaxConcurrentTasks,
		MaxReportAttempts: cfg.OutcomeMaxAttempts,
		ReportBackoff:     cfg.OutcomeRetryBackoff,
		MaxReportBackoff:  maxReportBackoff,
	}, invoker, outcomes, m)

	a.manager = opts.Manager
	var processManager *fnexecutor.ProcessManager
	if a.manager == nil {
		processManager, err = fnexecutor.NewProcessManager(fnexecutor.Config{
			Command:    cfg.FunctionExecutorCommand,
			StateDir:   cfg.StateDir,
			ExecutorID: cfg.ExecutorID,
			StopGrace:  cfg.FunctionExecutorStopGrace,
			ReadyDelay: time.Second,
		}, m)
		if err != nil {
			return nil, errors.Wrap(err, "cannot set up function executor manager")
		}
		a.manager = processManager
		a.closeManager = processManager.Close
	}

	a.reporter = statesync.NewReporter(client, a.Snapshot, statesync.ReporterConfig{
		Interval:   cfg.ReportInterval,
		Timeout:    cfg.ReportTimeout,
		MinSpacing: cfg.ReportMinSpacing,
	}, m)
	a.watcher = statesync.NewWatcher(client, a.queue, statesync.WatcherConfig{
		ExecutorID:     cfg.ExecutorID,
		InitialBackoff: cfg.ReconnectInitialBackoff,
		MaxBackoff:     cfg.ReconnectMaxBackoff,
	}, m)
	a.reconciler = reconciler.New(reconciler.Config{
		ExecutorID:       cfg.ExecutorID,
		AllowedFunctions: allowed,
		FinishedTaskTTL:  cfg.FinishedTaskTTL,
	}, a.store, a.queue, a.manager, a.runner, a.reporter, m)

	a.runner.SetEvents(a.reconciler)
	if processManager != nil {
		processManager.SetEvents(a.reconciler)
	}
	return a, nil
}

// Status is the executor status currently reported to the controller.
func (a *Agent) Status() executorapi.ExecutorStatus {
	a.statusLock.Lock()
	defer a.statusLock.Unlock()
	return a.status
}

func (a *Agent) setStatus(ctx context.Context, status executorapi.ExecutorStatus) {
	a.statusLock.Lock()
	prev := a.status
	a.status = status
	a.statusLock.Unlock()
	if prev == status {
		return
	}
	logger.G(ctx).WithField("from", prev.String()).WithField("to", status.String()).Info("Executor status changed")
	a.metrics.Gauge(executorStatusMetric, int(status), nil)
	a.reporter.Trigger()
}

// Snapshot is the full executor state as reported to the controller.
func (a *Agent) Snapshot() *executorapi.ExecutorState {
	return a.store.Snapshot(a.info, a.Status())
}

// Run blocks until ctx is done, then shuts the executor down and sends a final report.
func (a *Agent) Run(ctx context.Context) error {
	ctx = logger.WithExecutor(ctx, a.config.ExecutorID)
	logger.G(ctx).WithField("controller", a.config.ControllerAddress).WithField("flavor", a.info.Flavor.String()).Info("Starting executor")

	// Reporting runs until the final report, so it outlives ctx.
	reportCtx, stopReporting := context.WithCancel(logger.WithLogger(context.Background(), logger.G(ctx)))
	defer stopReporting()
	reportDone := make(chan error, 1)
	go func() {
		reportDone <- a.reporter.Run(reportCtx)
	}()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return a.watcher.Run(groupCtx)
	})
	group.Go(func() error {
		return a.reconciler.Run(groupCtx)
	})
	group.Go(func() error {
		select {
		case <-a.reconciler.Applied():
			a.setStatus(groupCtx, executorapi.ExecutorStatus_EXECUTOR_STATUS_RUNNING)
		case <-groupCtx.Done():
		}
		return nil
	})
	runErr := group.Wait()

	shutdownErr := a.shutdown(logger.WithLogger(context.Background(), logger.G(ctx)))
	stopReporting()
	<-reportDone

	var result *multierror.Error
	if runErr != nil {
		result = multierror.Append(result, runErr)
	}
	if shutdownErr != nil {
		result = multierror.Append(result, shutdownErr)
	}
	return result.ErrorOrNil()
}

func (a *Agent) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.options.ShutdownTimeout)
	defer cancel()

	a.setStatus(ctx, executorapi.ExecutorStatus_EXECUTOR_STATUS_STOPPING)
	logger.G(ctx).Info("Shutting down executor")

	for _, alloc := range a.store.Allocations() {
		a.runner.Cancel(alloc.TaskID())
	}
	var result *multierror.Error
	if err := a.runner.Stop(ctx); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "tasks did not finish"))
	}
	if err := a.reconciler.Shutdown(ctx); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "cannot stop function executors"))
	}
	if a.closeManager != nil {
		if err := a.closeManager(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}

	a.setStatus(ctx, executorapi.ExecutorStatus_EXECUTOR_STATUS_STOPPED)
	if err := a.reporter.ReportOnce(ctx); err != nil {
		logger.G(ctx).WithError(err).Warn("Could not send final executor state")
	}
	return result.ErrorOrNil()
}
