package statesync

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"k8s.io/apimachinery/pkg/util/wait"
)

const (
	desiredStateReceivedMetric = "titus.fnexecutor.desiredStateReceived"
	desiredStateDroppedMetric  = "titus.fnexecutor.desiredStateDropped"
	streamReconnectMetric      = "titus.fnexecutor.desiredStateReconnect"
)

var errStreamClosed = errors.New("desired state stream closed by controller")

type WatcherConfig struct {
	ExecutorID     string
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Watcher keeps a desired state stream open and feeds every snapshot into the
// queue. Lost streams are reopened with jittered exponential backoff; nothing
// is replayed, the next snapshot received is the current truth.
type Watcher struct {
	client  executorapi.ExecutorAPIClient
	queue   *Queue
	config  WatcherConfig
	metrics metrics.Reporter
	// sleep is replaced in tests
	sleep func(ctx context.Context, d time.Duration) error
}

func NewWatcher(client executorapi.ExecutorAPIClient, queue *Queue, cfg WatcherConfig, m metrics.Reporter) *Watcher {
	return &Watcher{
		client:  client,
		queue:   queue,
		config:  cfg,
		metrics: m,
		sleep:   sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (w *Watcher) newBackoff() wait.Backoff {
	return wait.Backoff{
		Duration: w.config.InitialBackoff,
		Factor:   2,
		Jitter:   0.2,
		Steps:    math.MaxInt32,
		Cap:      w.config.MaxBackoff,
	}
}

// Run returns only once ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	ctx = logger.WithExecutor(ctx, w.config.ExecutorID)
	backoff := w.newBackoff()
	for {
		received, err := w.watchOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if received > 0 {
			backoff = w.newBackoff()
		}
		delay := backoff.Step()
		w.metrics.Counter(streamReconnectMetric, 1, nil)
		logger.G(ctx).WithError(err).WithField("received", received).WithField("delay", delay.String()).Warn("Desired state stream ended, reconnecting")
		if w.sleep(ctx, delay) != nil {
			return nil
		}
	}
}

func (w *Watcher) watchOnce(ctx context.Context) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := w.client.GetDesiredExecutorStates(ctx, &executorapi.GetDesiredExecutorStatesRequest{
		ExecutorId: proto.String(w.config.ExecutorID),
	})
	if err != nil {
		return 0, errors.Wrap(err, "cannot open desired state stream")
	}
	logger.G(ctx).Info("Opened desired state stream")

	received := 0
	for {
		desired, err := stream.Recv()
		if err == io.EOF {
			return received, errStreamClosed
		} else if err != nil {
			return received, errors.Wrap(err, "desired state stream failed")
		}
		received++
		w.metrics.Counter(desiredStateReceivedMetric, 1, nil)
		if w.queue.Push(desired) {
			w.metrics.Counter(desiredStateDroppedMetric, 1, nil)
			logger.G(ctx).WithField(logger.ClockField, desired.GetClock()).Debug("Desired state queue full, discarded lowest clock snapshot")
		}
	}
}
