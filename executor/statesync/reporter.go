package statesync

import (
	"context"
	"sync"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/Netflix/titus-fn-executor/tracehelpers"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
	"golang.org/x/time/rate"
)

const (
	stateReportMetric        = "titus.fnexecutor.stateReport"
	stateReportLatencyMetric = "titus.fnexecutor.stateReportLatency"
)

// SnapshotFunc returns the executor's current full state.
type SnapshotFunc func() *executorapi.ExecutorState

type ReporterConfig struct {
	// Interval between periodic reports.
	Interval time.Duration
	// Timeout bounds a single report call.
	Timeout time.Duration
	// MinSpacing rate limits reports caused by Trigger.
	MinSpacing time.Duration
}

// Reporter pushes full executor state snapshots to the controller periodically
// and whenever the local state changes. Failures are never fatal; the next
// report carries the complete state again.
type Reporter struct {
	client   executorapi.ExecutorAPIClient
	snapshot SnapshotFunc
	config   ReporterConfig
	metrics  metrics.Reporter
	limiter  *rate.Limiter
	trigger  chan struct{}

	lock          sync.Mutex
	lastErr       error
	lastStateHash string
	reports       int
	failures      int
}

func NewReporter(client executorapi.ExecutorAPIClient, snapshot SnapshotFunc, cfg ReporterConfig, m metrics.Reporter) *Reporter {
	limit := rate.Inf
	if cfg.MinSpacing > 0 {
		limit = rate.Every(cfg.MinSpacing)
	}
	return &Reporter{
		client:   client,
		snapshot: snapshot,
		config:   cfg,
		metrics:  m,
		limiter:  rate.NewLimiter(limit, 1),
		trigger:  make(chan struct{}, 1),
	}
}

// Trigger asks for a report soon. Calls coalesce while one is pending.
func (r *Reporter) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// Run reports immediately, then on every tick and trigger, until ctx is done.
func (r *Reporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	_ = r.ReportOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-r.trigger:
			if err := r.limiter.Wait(ctx); err != nil {
				return nil
			}
		}
		_ = r.ReportOnce(ctx)
	}
}

// ReportOnce sends one snapshot. The error is also kept for LastError.
func (r *Reporter) ReportOnce(ctx context.Context) (retErr error) {
	ctx, span := trace.StartSpan(ctx, "reportExecutorState")
	defer span.End()
	defer func() {
		tracehelpers.SetStatus(retErr, span)
	}()

	state := r.snapshot()
	span.AddAttributes(trace.StringAttribute("stateHash", state.GetStateHash()))

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	_, err := r.client.ReportExecutorState(ctx, &executorapi.ReportExecutorStateRequest{ExecutorState: state})
	r.metrics.Timer(stateReportLatencyMetric, time.Since(start), nil)

	r.lock.Lock()
	defer r.lock.Unlock()
	r.reports++
	if err != nil {
		r.failures++
		r.lastErr = errors.Wrap(err, "cannot report executor state")
		r.metrics.Counter(stateReportMetric, 1, map[string]string{"result": "failure"})
		logger.G(ctx).WithError(err).WithField("failures", r.failures).Warn("Failed to report executor state, will retry on next report")
		return r.lastErr
	}
	r.lastErr = nil
	r.metrics.Counter(stateReportMetric, 1, map[string]string{"result": "success"})
	if state.GetStateHash() != r.lastStateHash {
		logger.G(ctx).WithField("stateHash", state.GetStateHash()).WithField("status", state.GetStatus().String()).Debug("Reported changed executor state")
		r.lastStateHash = state.GetStateHash()
	}
	return nil
}

// LastError is the error of the most recent report, nil if it succeeded.
func (r *Reporter) LastError() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.lastErr
}

// Stats returns the number of attempted and failed reports.
func (r *Reporter) Stats() (reports, failures int) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.reports, r.failures
}
